package store

import (
	"context"

	"github.com/sirupsen/logrus"
	storedomain "github.com/vfg2006/backoffice-api/infrastructure/integrator/store/domain"
	"github.com/vfg2006/backoffice-api/infrastructure/integrator/store/storeclient"
	"github.com/vfg2006/backoffice-api/internal/config"
)

// StoreIntegrator é a camada de acesso a dados consumida pelos usecases.
// Todas as coleções retornadas são snapshots imutáveis do store externo.
type StoreIntegrator interface {
	ListOrders(ctx context.Context, params storedomain.OrderListParams) ([]*storedomain.Order, int, error)
	ListAllOrders(ctx context.Context) ([]*storedomain.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID int) ([]*storedomain.Order, error)
	GetOrder(ctx context.Context, id int) (*storedomain.Order, error)
	UpdateOrderStatus(ctx context.Context, id int, status string) (*storedomain.Order, error)

	ListOrderItemsByOrder(ctx context.Context, orderID int) ([]*storedomain.OrderItem, error)
	ListAllOrderItems(ctx context.Context) ([]*storedomain.OrderItem, error)

	ListProducts(ctx context.Context, params storedomain.ProductListParams) ([]*storedomain.Product, int, error)
	ListAllProducts(ctx context.Context) ([]*storedomain.Product, error)
	GetProduct(ctx context.Context, id int) (*storedomain.Product, error)
	CreateProduct(ctx context.Context, product *storedomain.Product) (*storedomain.Product, error)

	ListAllCustomers(ctx context.Context) ([]*storedomain.Customer, error)
	GetCustomer(ctx context.Context, id int) (*storedomain.Customer, error)
	CreateCustomer(ctx context.Context, customer *storedomain.Customer) (*storedomain.Customer, error)

	FindUsersByUsername(ctx context.Context, username string) ([]*storedomain.User, error)
	CreateUser(ctx context.Context, user *storedomain.User) (*storedomain.User, error)

	GetSettings(ctx context.Context) (*storedomain.Settings, error)
}

type StoreService struct {
	cfg    *config.Config
	Client storeclient.Client
}

func New(cfg *config.Config, client storeclient.Client) StoreIntegrator {
	return &StoreService{
		cfg:    cfg,
		Client: client,
	}
}

// ListOrders lista pedidos paginados. Quando o store não devolve o
// cabeçalho x-total-count, o total é obtido contando o conjunto filtrado
// completo.
func (s *StoreService) ListOrders(ctx context.Context, params storedomain.OrderListParams) ([]*storedomain.Order, int, error) {
	orders, total, err := s.Client.ListOrders(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	if total == storeclient.TotalUnknown {
		total, err = s.countOrders(ctx, params)
		if err != nil {
			return nil, 0, err
		}
	}

	return orders, total, nil
}

// countOrders conta o conjunto filtrado completo, sem paginação
func (s *StoreService) countOrders(ctx context.Context, params storedomain.OrderListParams) (int, error) {
	logrus.WithFields(logrus.Fields{
		"status": params.Status,
	}).Debug("Cabeçalho x-total-count ausente, contando o conjunto completo de pedidos")

	unpaged := params
	unpaged.Page = 0
	unpaged.Limit = 0

	all, _, err := s.Client.ListOrders(ctx, unpaged)
	if err != nil {
		return 0, err
	}

	return len(all), nil
}

func (s *StoreService) ListAllOrders(ctx context.Context) ([]*storedomain.Order, error) {
	orders, _, err := s.Client.ListOrders(ctx, storedomain.OrderListParams{})
	return orders, err
}

func (s *StoreService) ListOrdersByCustomer(ctx context.Context, customerID int) ([]*storedomain.Order, error) {
	orders, _, err := s.Client.ListOrders(ctx, storedomain.OrderListParams{CustomerID: &customerID})
	return orders, err
}

func (s *StoreService) GetOrder(ctx context.Context, id int) (*storedomain.Order, error) {
	return s.Client.GetOrder(ctx, id)
}

func (s *StoreService) UpdateOrderStatus(ctx context.Context, id int, status string) (*storedomain.Order, error) {
	return s.Client.PatchOrderStatus(ctx, id, status)
}

func (s *StoreService) ListOrderItemsByOrder(ctx context.Context, orderID int) ([]*storedomain.OrderItem, error) {
	return s.Client.ListOrderItems(ctx, &orderID)
}

func (s *StoreService) ListAllOrderItems(ctx context.Context) ([]*storedomain.OrderItem, error) {
	return s.Client.ListOrderItems(ctx, nil)
}

// ListProducts aplica o mesmo fallback de contagem da listagem de pedidos
func (s *StoreService) ListProducts(ctx context.Context, params storedomain.ProductListParams) ([]*storedomain.Product, int, error) {
	products, total, err := s.Client.ListProducts(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	if total == storeclient.TotalUnknown {
		unpaged := params
		unpaged.Page = 0
		unpaged.Limit = 0

		all, _, err := s.Client.ListProducts(ctx, unpaged)
		if err != nil {
			return nil, 0, err
		}
		total = len(all)
	}

	return products, total, nil
}

func (s *StoreService) ListAllProducts(ctx context.Context) ([]*storedomain.Product, error) {
	products, _, err := s.Client.ListProducts(ctx, storedomain.ProductListParams{})
	return products, err
}

func (s *StoreService) GetProduct(ctx context.Context, id int) (*storedomain.Product, error) {
	return s.Client.GetProduct(ctx, id)
}

func (s *StoreService) CreateProduct(ctx context.Context, product *storedomain.Product) (*storedomain.Product, error) {
	return s.Client.CreateProduct(ctx, product)
}

func (s *StoreService) ListAllCustomers(ctx context.Context) ([]*storedomain.Customer, error) {
	return s.Client.ListCustomers(ctx)
}

func (s *StoreService) GetCustomer(ctx context.Context, id int) (*storedomain.Customer, error) {
	return s.Client.GetCustomer(ctx, id)
}

func (s *StoreService) CreateCustomer(ctx context.Context, customer *storedomain.Customer) (*storedomain.Customer, error) {
	return s.Client.CreateCustomer(ctx, customer)
}

func (s *StoreService) FindUsersByUsername(ctx context.Context, username string) ([]*storedomain.User, error) {
	return s.Client.ListUsers(ctx, username)
}

func (s *StoreService) CreateUser(ctx context.Context, user *storedomain.User) (*storedomain.User, error) {
	return s.Client.CreateUser(ctx, user)
}

func (s *StoreService) GetSettings(ctx context.Context) (*storedomain.Settings, error) {
	return s.Client.GetSettings(ctx)
}
