package storeclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	storedomain "github.com/vfg2006/backoffice-api/infrastructure/integrator/store/domain"
)

// ListOrderItems lista as linhas de pedido; orderID nulo traz a coleção
// completa (usada pelas agregações do dashboard)
func (c *StoreClient) ListOrderItems(ctx context.Context, orderID *int) ([]*storedomain.OrderItem, error) {
	var query url.Values
	if orderID != nil {
		query = url.Values{}
		query.Set("orderId", strconv.Itoa(*orderID))
	}

	var items []*storedomain.OrderItem
	_, err := c.do(ctx, http.MethodGet, "/orderItems", query, nil, &items)
	if err != nil {
		return nil, err
	}

	return items, nil
}
