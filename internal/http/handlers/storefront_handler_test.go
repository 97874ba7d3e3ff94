package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/storelink/go-store-backend/internal/domain"
	"github.com/storelink/go-store-backend/internal/http/middleware"
	"github.com/storelink/go-store-backend/internal/services"
)

func TestGetStorefront_UnknownSlug(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodGet, "/store/no-such-shop", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if code := errCode(t, w); code != ErrCodeStoreNotFound {
		t.Fatalf("code = %q, want %q", code, ErrCodeStoreNotFound)
	}
}

func TestGetStorefront_FiltersPrivateCatalogues(t *testing.T) {
	r, _ := newTestAPI(t)

	doJSON(t, r, http.MethodPost, "/catalogues", CreateCatalogueRequest{Name: "Public", IsPublic: true}, nil)
	doJSON(t, r, http.MethodPost, "/catalogues", CreateCatalogueRequest{Name: "Private"}, nil)

	w := doJSON(t, r, http.MethodGet, "/store/my-store", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var sf services.Storefront
	decodeJSON(t, w, &sf)
	if sf.Store == nil || sf.Store.StoreName != "My WhatsApp Store" {
		t.Fatalf("unexpected store: %+v", sf.Store)
	}
	if len(sf.Catalogues) != 1 || sf.Catalogues[0].Name != "Public" {
		t.Fatalf("private catalogue leaked: %+v", sf.Catalogues)
	}
}

func TestGetStorefrontCatalogue_CountsView(t *testing.T) {
	r, _ := newTestAPI(t)

	doJSON(t, r, http.MethodPost, "/catalogues", CreateCatalogueRequest{Name: "Picks", IsPublic: true}, nil)
	doJSON(t, r, http.MethodPost, "/products", CreateProductRequest{Name: "Mug", Price: 8}, nil)
	doJSON(t, r, http.MethodPost, "/catalogues/1/products", AddCatalogueProductRequest{ProductID: 1}, nil)

	w := doJSON(t, r, http.MethodGet, "/store/my-store/catalogues/1", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var resp StorefrontCatalogueResponse
	decodeJSON(t, w, &resp)
	if resp.Catalogue.ViewCount != 1 {
		t.Fatalf("ViewCount = %d, want 1", resp.Catalogue.ViewCount)
	}
	if len(resp.Products) != 1 || resp.Products[0].Name != "Mug" {
		t.Fatalf("unexpected products: %+v", resp.Products)
	}

	doJSON(t, r, http.MethodGet, "/store/my-store/catalogues/1", nil, nil)
	w = doJSON(t, r, http.MethodGet, "/catalogues/1", nil, nil)
	var cl domain.Catalogue
	decodeJSON(t, w, &cl)
	if cl.ViewCount != 2 {
		t.Fatalf("ViewCount = %d, want 2 after two storefront fetches", cl.ViewCount)
	}
}

func TestGetStorefrontCatalogue_PrivateHidden(t *testing.T) {
	r, _ := newTestAPI(t)

	doJSON(t, r, http.MethodPost, "/catalogues", CreateCatalogueRequest{Name: "Drafts"}, nil)

	w := doJSON(t, r, http.MethodGet, "/store/my-store/catalogues/1", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 for private catalogue", w.Code)
	}
	if code := errCode(t, w); code != ErrCodePrivateCatalogue {
		t.Fatalf("code = %q, want %q", code, ErrCodePrivateCatalogue)
	}
}

func TestGetStorefrontCatalogue_UnknownID(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodGet, "/store/my-store/catalogues/7", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if code := errCode(t, w); code != ErrCodeNotFound {
		t.Fatalf("code = %q, want %q", code, ErrCodeNotFound)
	}
}

func TestShareStorefrontCatalogue(t *testing.T) {
	r, _ := newTestAPI(t)

	doJSON(t, r, http.MethodPost, "/catalogues", CreateCatalogueRequest{Name: "Summer Sale", IsPublic: true}, nil)

	w := doJSON(t, r, http.MethodPost, "/store/my-store/catalogues/1/share", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var resp ShareResponse
	decodeJSON(t, w, &resp)

	want := "https://wa.me/15551234567?text=" + url.QueryEscape(
		"Check out Summer Sale from My WhatsApp Store! https://shop.example.com/store/my-store/catalogues/1")
	if resp.ShareURL != want {
		t.Fatalf("ShareURL = %q, want %q", resp.ShareURL, want)
	}
	if resp.Catalogue.ShareCount != 1 {
		t.Fatalf("ShareCount = %d, want 1", resp.Catalogue.ShareCount)
	}
}

func TestCreateStorefrontOrder(t *testing.T) {
	r, _ := newTestAPI(t)
	pid := seedProduct(t, r, "Mug", 8)

	w := doJSON(t, r, http.MethodPost, "/store/my-store/orders", CreateOrderRequest{
		CustomerName: "Chidi Eze",
		Items:        []OrderLineRequest{{ProductID: pid, Quantity: 2}},
	}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	var resp OrderResponse
	decodeJSON(t, w, &resp)
	if resp.Order.Status != domain.StatusPending || resp.Order.TotalAmount != 16 {
		t.Fatalf("unexpected order: %+v", resp.Order)
	}
}

func TestCreateStorefrontOrder_UnknownSlug(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodPost, "/store/ghost/orders", CreateOrderRequest{
		CustomerName: "Chidi Eze",
		Items:        []OrderLineRequest{{ProductID: 1, Quantity: 1}},
	}, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestCreateStorefrontOrder_ReplaysOnIdempotencyKey(t *testing.T) {
	r, st := newTestAPI(t)
	pid := seedProduct(t, r, "Mug", 8)

	hdr := map[string]string{middleware.HeaderIdempotencyKey: "retry-abc.1"}
	body := CreateOrderRequest{
		CustomerName: "Chidi Eze",
		Items:        []OrderLineRequest{{ProductID: pid, Quantity: 1}},
	}

	w := doJSON(t, r, http.MethodPost, "/store/my-store/orders", body, hdr)
	if w.Code != http.StatusCreated {
		t.Fatalf("first attempt status = %d, want 201: %s", w.Code, w.Body.String())
	}
	var first OrderResponse
	decodeJSON(t, w, &first)

	w = doJSON(t, r, http.MethodPost, "/store/my-store/orders", body, hdr)
	if w.Code != http.StatusOK {
		t.Fatalf("retry status = %d, want 200 replay: %s", w.Code, w.Body.String())
	}
	var second OrderResponse
	decodeJSON(t, w, &second)
	if second.Order.ID != first.Order.ID {
		t.Fatalf("replay returned order %d, want %d", second.Order.ID, first.Order.ID)
	}

	if got := st.ListOrders(merchantID, 0); len(got) != 1 {
		t.Fatalf("store has %d orders, want 1", len(got))
	}
}

func TestCreateStorefrontOrder_DistinctKeysCreateDistinctOrders(t *testing.T) {
	r, st := newTestAPI(t)
	pid := seedProduct(t, r, "Mug", 8)

	body := CreateOrderRequest{
		CustomerName: "Chidi Eze",
		Items:        []OrderLineRequest{{ProductID: pid, Quantity: 1}},
	}
	for _, key := range []string{"key-one", "key-two"} {
		w := doJSON(t, r, http.MethodPost, "/store/my-store/orders", body,
			map[string]string{middleware.HeaderIdempotencyKey: key})
		if w.Code != http.StatusCreated {
			t.Fatalf("key %q status = %d, want 201", key, w.Code)
		}
	}
	if got := st.ListOrders(merchantID, 0); len(got) != 2 {
		t.Fatalf("store has %d orders, want 2", len(got))
	}
}

func TestCreateStorefrontOrder_RejectsMalformedKey(t *testing.T) {
	r, _ := newTestAPI(t)
	pid := seedProduct(t, r, "Mug", 8)

	w := doJSON(t, r, http.MethodPost, "/store/my-store/orders", CreateOrderRequest{
		CustomerName: "Chidi Eze",
		Items:        []OrderLineRequest{{ProductID: pid, Quantity: 1}},
	}, map[string]string{middleware.HeaderIdempotencyKey: "spaces are invalid"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 from key validation", w.Code)
	}
}
