package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/GameCatalog_Go/internal/access"
	"github.com/osse101/GameCatalog_Go/internal/auth"
	"github.com/osse101/GameCatalog_Go/internal/catalog"
	"github.com/osse101/GameCatalog_Go/internal/category"
	"github.com/osse101/GameCatalog_Go/internal/domain"
	"github.com/osse101/GameCatalog_Go/internal/inventory"
	"github.com/osse101/GameCatalog_Go/internal/item"
	"github.com/osse101/GameCatalog_Go/internal/middleware"
)

// testEnv wires real services over in-memory fakes behind a chi router, so
// handler tests exercise routing, decoding, validation and error mapping
// end to end.
type testEnv struct {
	router        chi.Router
	categoryRepo  *category.FakeRepository
	itemRepo      *item.FakeRepository
	inventoryRepo *inventory.FakeRepository
	userRepo      *auth.FakeRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	InitValidator()

	env := &testEnv{
		router:        chi.NewRouter(),
		categoryRepo:  category.NewFakeRepository(),
		itemRepo:      item.NewFakeRepository(),
		inventoryRepo: inventory.NewFakeRepository(),
		userRepo:      auth.NewFakeRepository(),
	}

	categorySvc := category.NewService(env.categoryRepo)
	itemSvc := item.NewService(env.itemRepo)
	inventorySvc := inventory.NewService(env.inventoryRepo, env.itemRepo)
	catalogSvc := catalog.NewService(itemSvc, inventorySvc, access.NewPolicy())

	r := env.router
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", HandleListCategories(categorySvc))
		r.Get("/{id}", HandleGetCategory(categorySvc))
		r.Post("/", HandleCreateCategory(categorySvc))
		r.Put("/{id}", HandleUpdateCategory(categorySvc))
		r.Delete("/{id}", HandleDeleteCategory(categorySvc))
	})
	r.Route("/items", func(r chi.Router) {
		r.Get("/", HandleListItems(catalogSvc))
		r.Get("/search", HandleSearchItems(catalogSvc))
		r.Get("/{id}", HandleGetItem(itemSvc))
		r.Post("/", HandleCreateItem(itemSvc))
		r.Put("/{id}", HandleUpdateItem(itemSvc))
		r.Delete("/{id}", HandleDeleteItem(itemSvc))
	})
	r.Route("/users/{userID}/inventory", func(r chi.Router) {
		r.Get("/", HandleGetInventory(catalogSvc))
		r.Post("/", HandleAddInventoryItem(catalogSvc))
		r.Put("/{itemID}", HandleSetInventoryQuantity(catalogSvc))
		r.Delete("/{itemID}", HandleRemoveInventoryItem(catalogSvc))
	})

	return env
}

// do performs a request against the test router, optionally as an actor
func (env *testEnv) do(method, target, body string, actor *domain.Actor) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if actor != nil {
		req = req.WithContext(middleware.WithActor(context.Background(), *actor))
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func actorPtr(userID int, role domain.Role) *domain.Actor {
	return &domain.Actor{UserID: userID, Username: "tester", Role: role}
}
