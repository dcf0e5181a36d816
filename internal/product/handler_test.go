package product

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestProductRoutes(t *testing.T) {
	handler := NewHandler(NewService(NewInMemoryRepository(DefaultCatalog())))
	app := fiber.New()
	handler.RegisterPublicRoutes(app)

	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/products", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for listing, got %d", res.StatusCode)
	}
	var products []Product
	if err := json.NewDecoder(res.Body).Decode(&products); err != nil {
		t.Fatalf("failed to decode products: %v", err)
	}
	if len(products) != len(DefaultCatalog()) {
		t.Fatalf("expected %d products, got %d", len(DefaultCatalog()), len(products))
	}

	res, _ = app.Test(httptest.NewRequest("GET", "/api/v1/products/1", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for product 1, got %d", res.StatusCode)
	}
	var p Product
	if err := json.NewDecoder(res.Body).Decode(&p); err != nil {
		t.Fatalf("failed to decode product: %v", err)
	}
	if p.Name == "" || p.Price <= 0 {
		t.Fatalf("unexpected product %+v", p)
	}

	res, _ = app.Test(httptest.NewRequest("GET", "/api/v1/products/999", nil))
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown product, got %d", res.StatusCode)
	}

	res, _ = app.Test(httptest.NewRequest("GET", "/api/v1/products/abc", nil))
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", res.StatusCode)
	}
}

func TestInMemoryRepository_CopiesOnList(t *testing.T) {
	repo := NewInMemoryRepository(DefaultCatalog())
	list := repo.List()
	list[0].Name = "mutated"

	fresh, err := repo.GetByID(list[0].ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if fresh.Name == "mutated" {
		t.Fatalf("List must not alias internal storage")
	}
}
