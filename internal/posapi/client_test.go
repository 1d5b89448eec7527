package posapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodrepublic/internal/cart"
	"foodrepublic/internal/domain"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/tables", func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"tables": []domain.Table{{ID: "t1", Name: "table-1"}},
		})
	})
	mux.HandleFunc("GET /api/get-fast-food", func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"items": []domain.MenuItem{{ID: "m1", ItemName: "chicken-burger", ItemPrice: 650}},
		})
	})
	mux.HandleFunc("GET /api/get-members", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("search") != "01700000000" {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"member": domain.Member{ID: "mb1", Mobile: "01700000000", DiscountValue: 10},
		})
	})
	mux.HandleFunc("POST /api/post-sold-invoices", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			TableName     string               `json:"table_name"`
			Items         []domain.InvoiceLine `json:"items"`
			TotalBill     int64                `json:"total_bill"`
			TotalDiscount int64                `json:"total_discount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.TableName == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid request body"})
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"insertedId": "inv-1"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Tables(t *testing.T) {
	srv := testServer(t)
	client := New(srv.URL, nil)

	tables, err := client.Tables(context.Background())
	if err != nil {
		t.Fatalf("tables: %v", err)
	}
	if len(tables) != 1 || tables[0].Name != "table-1" {
		t.Fatalf("unexpected tables %+v", tables)
	}
}

func TestClient_MenuItems(t *testing.T) {
	srv := testServer(t)
	client := New(srv.URL, nil)

	items, err := client.MenuItems(context.Background(), domain.CategoryFastFood)
	if err != nil {
		t.Fatalf("menu items: %v", err)
	}
	if len(items) != 1 || items[0].ItemName != "chicken-burger" {
		t.Fatalf("unexpected items %+v", items)
	}

	if _, err := client.MenuItems(context.Background(), "desserts"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for unknown category, got %v", err)
	}
}

func TestClient_MemberDiscount(t *testing.T) {
	srv := testServer(t)
	client := New(srv.URL, nil)

	percent, err := client.MemberDiscount(context.Background(), "01700000000")
	if err != nil {
		t.Fatalf("member discount: %v", err)
	}
	if percent != 10 {
		t.Fatalf("expected 10 percent, got %d", percent)
	}

	if _, err := client.MemberDiscount(context.Background(), "999"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_CreateInvoice(t *testing.T) {
	srv := testServer(t)
	client := New(srv.URL, nil)

	lines := []cart.Line{
		{ItemID: "a", ItemName: "iced-tea", UnitPrice: 250, Quantity: 2, TableName: "table-3"},
	}
	id, err := client.CreateInvoice(context.Background(), "table-3", lines, 500, 50)
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	if id != "inv-1" {
		t.Fatalf("expected inv-1, got %s", id)
	}

	if _, err := client.CreateInvoice(context.Background(), "", nil, 0, 0); err == nil {
		t.Fatal("expected error for rejected invoice")
	}
}
