package storeclient

import (
	"context"
	"fmt"
	"net/http"

	storedomain "github.com/vfg2006/backoffice-api/infrastructure/integrator/store/domain"
)

// ListCustomers traz a coleção completa de clientes; a busca livre e a
// distribuição por continente filtram e agregam em memória
func (c *StoreClient) ListCustomers(ctx context.Context) ([]*storedomain.Customer, error) {
	var customers []*storedomain.Customer

	_, err := c.do(ctx, http.MethodGet, "/customers", nil, nil, &customers)
	if err != nil {
		return nil, err
	}

	return customers, nil
}

func (c *StoreClient) GetCustomer(ctx context.Context, id int) (*storedomain.Customer, error) {
	var customer storedomain.Customer

	_, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/customers/%d", id), nil, nil, &customer)
	if err != nil {
		return nil, err
	}

	return &customer, nil
}

// CreateCustomer cria um cliente; o id é atribuído pelo store
func (c *StoreClient) CreateCustomer(ctx context.Context, customer *storedomain.Customer) (*storedomain.Customer, error) {
	var created storedomain.Customer

	_, err := c.do(ctx, http.MethodPost, "/customers", nil, customer, &created)
	if err != nil {
		return nil, err
	}

	return &created, nil
}
