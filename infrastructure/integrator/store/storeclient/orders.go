package storeclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	storedomain "github.com/vfg2006/backoffice-api/infrastructure/integrator/store/domain"
)

// ListOrders lista pedidos com filtros, ordenação e paginação no estilo
// json-server. O total vem do cabeçalho x-total-count quando presente.
func (c *StoreClient) ListOrders(ctx context.Context, params storedomain.OrderListParams) ([]*storedomain.Order, int, error) {
	query := url.Values{}

	if params.Status != "" {
		query.Set("status", params.Status)
	}
	if params.CustomerID != nil {
		query.Set("customerId", strconv.Itoa(*params.CustomerID))
	}
	if params.PaymentMethod != "" {
		query.Set("paymentMethod", params.PaymentMethod)
	}
	if params.DateFrom != "" {
		query.Set("createdAt_gte", params.DateFrom)
	}
	if params.DateTo != "" {
		query.Set("createdAt_lte", params.DateTo)
	}
	if params.Page > 0 {
		query.Set("_page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("_limit", strconv.Itoa(params.Limit))
	}
	if params.Sort != "" {
		query.Set("_sort", params.Sort)
		order := params.Order
		if order == "" {
			order = "desc"
		}
		query.Set("_order", order)
	}

	var orders []*storedomain.Order
	header, err := c.do(ctx, http.MethodGet, "/orders", query, nil, &orders)
	if err != nil {
		return nil, 0, err
	}

	return orders, totalFromHeader(header), nil
}

func (c *StoreClient) GetOrder(ctx context.Context, id int) (*storedomain.Order, error) {
	var order storedomain.Order

	_, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, nil, &order)
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// PatchOrderStatus atualiza somente o campo status do pedido
func (c *StoreClient) PatchOrderStatus(ctx context.Context, id int, status string) (*storedomain.Order, error) {
	var order storedomain.Order

	body := map[string]string{"status": status}
	_, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/orders/%d", id), nil, body, &order)
	if err != nil {
		return nil, err
	}

	return &order, nil
}
