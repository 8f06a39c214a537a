package storeclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	storedomain "github.com/vfg2006/backoffice-api/infrastructure/integrator/store/domain"
)

// ListProducts lista produtos com filtros de categoria, situação e estoque
// baixo. No modo busca (sem paginação) o front filtra o texto livre sobre o
// conjunto completo.
func (c *StoreClient) ListProducts(ctx context.Context, params storedomain.ProductListParams) ([]*storedomain.Product, int, error) {
	query := url.Values{}

	if params.Category != "" {
		query.Set("category", params.Category)
	}
	if params.Active != nil {
		query.Set("active", strconv.FormatBool(*params.Active))
	}
	if params.LowStock {
		query.Set("stock_lte", "9")
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
			order = "asc"
		}
		query.Set("_order", order)
	}

	var products []*storedomain.Product
	header, err := c.do(ctx, http.MethodGet, "/products", query, nil, &products)
	if err != nil {
		return nil, 0, err
	}

	return products, totalFromHeader(header), nil
}

func (c *StoreClient) GetProduct(ctx context.Context, id int) (*storedomain.Product, error) {
	var product storedomain.Product

	_, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, nil, &product)
	if err != nil {
		return nil, err
	}

	return &product, nil
}

// CreateProduct cria um produto; o id é atribuído pelo store
func (c *StoreClient) CreateProduct(ctx context.Context, product *storedomain.Product) (*storedomain.Product, error) {
	var created storedomain.Product

	_, err := c.do(ctx, http.MethodPost, "/products", nil, product, &created)
	if err != nil {
		return nil, err
	}

	return &created, nil
}
