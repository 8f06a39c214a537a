package storeclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	storedomain "github.com/vfg2006/backoffice-api/infrastructure/integrator/store/domain"
	"github.com/vfg2006/backoffice-api/internal/config"
)

func testClient(baseURL string) Client {
	return NewClient(&config.Config{
		Store: config.Store{
			BaseURL:     baseURL,
			AccessToken: "token-de-teste",
		},
	})
}

func TestListOrdersTraduzFiltrosParaQueryDoJSONServer(t *testing.T) {
	var captured *http.Request

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r

		w.Header().Set("X-Total-Count", "57")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]*storedomain.Order{{ID: 1, Status: "paid"}})
	}))
	defer server.Close()

	customerID := 7
	client := testClient(server.URL)

	orders, total, err := client.ListOrders(context.Background(), storedomain.OrderListParams{
		Status:     "paid",
		CustomerID: &customerID,
		DateFrom:   "2025-01-01",
		DateTo:     "2025-06-30",
		Page:       2,
		Limit:      25,
		Sort:       "createdAt",
	})

	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, 57, total)

	query := captured.URL.Query()
	assert.Equal(t, "paid", query.Get("status"))
	assert.Equal(t, "7", query.Get("customerId"))
	assert.Equal(t, "2025-01-01", query.Get("createdAt_gte"))
	assert.Equal(t, "2025-06-30", query.Get("createdAt_lte"))
	assert.Equal(t, "2", query.Get("_page"))
	assert.Equal(t, "25", query.Get("_limit"))
	assert.Equal(t, "createdAt", query.Get("_sort"))
	assert.Equal(t, "desc", query.Get("_order"), "ordenação padrão é decrescente")

	assert.Equal(t, "Bearer token-de-teste", captured.Header.Get("Authorization"))
}

func TestListOrdersSemCabecalhoDeTotal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]*storedomain.Order{{ID: 1}, {ID: 2}})
	}))
	defer server.Close()

	client := testClient(server.URL)

	orders, total, err := client.ListOrders(context.Background(), storedomain.OrderListParams{})

	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, TotalUnknown, total)
}

func TestGetOrderNaoEncontrado(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := testClient(server.URL)

	_, err := client.GetOrder(context.Background(), 999)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetOrderErroDoServidor(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := testClient(server.URL)

	_, err := client.GetOrder(context.Background(), 1)

	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestPatchOrderStatusEnviaSomenteOStatus(t *testing.T) {
	var captured map[string]string
	var capturedMethod string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedMethod = r.Method
		json.NewDecoder(r.Body).Decode(&captured)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(&storedomain.Order{ID: 10, Status: captured["status"]})
	}))
	defer server.Close()

	client := testClient(server.URL)

	order, err := client.PatchOrderStatus(context.Background(), 10, "shipped")

	assert.NoError(t, err)
	assert.Equal(t, http.MethodPatch, capturedMethod)
	assert.Equal(t, map[string]string{"status": "shipped"}, captured)
	assert.Equal(t, "shipped", order.Status)
}

func TestListProductsComFiltroDeEstoqueBaixo(t *testing.T) {
	var captured *http.Request

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r

		w.Header().Set("X-Total-Count", "3")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]*storedomain.Product{{ID: 1, Name: "Teclado"}})
	}))
	defer server.Close()

	client := testClient(server.URL)

	_, total, err := client.ListProducts(context.Background(), storedomain.ProductListParams{
		LowStock: true,
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, "9", captured.URL.Query().Get("stock_lte"))
}
