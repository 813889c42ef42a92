package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/GameCatalog_Go/internal/domain"
)

func TestCheckUserScope(t *testing.T) {
	policy := NewPolicy()

	tests := []struct {
		name          string
		actor         domain.Actor
		subjectUserID int
		wantErr       error
	}{
		{
			name:          "player acting on own resources",
			actor:         domain.Actor{UserID: 2, Role: domain.RolePlayer},
			subjectUserID: 2,
			wantErr:       nil,
		},
		{
			name:          "player acting on another user",
			actor:         domain.Actor{UserID: 2, Role: domain.RolePlayer},
			subjectUserID: 3,
			wantErr:       domain.ErrForbidden,
		},
		{
			name:          "admin acting on any user",
			actor:         domain.Actor{UserID: 1, Role: domain.RoleAdmin},
			subjectUserID: 3,
			wantErr:       nil,
		},
		{
			name:          "unknown role fails closed even on matching id mismatch",
			actor:         domain.Actor{UserID: 4, Role: domain.RoleUnknown},
			subjectUserID: 5,
			wantErr:       domain.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.CheckUserScope(tt.actor, tt.subjectUserID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
