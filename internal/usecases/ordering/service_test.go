package ordering

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	storedomain "github.com/vfg2006/backoffice-api/infrastructure/integrator/store/domain"
	"github.com/vfg2006/backoffice-api/infrastructure/integrator/store/mocks"
	"github.com/vfg2006/backoffice-api/internal/config"
	"github.com/vfg2006/backoffice-api/internal/domain"
	"github.com/vfg2006/backoffice-api/pkg/debounce"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Store: config.Store{
			TimeoutSeconds: 5,
		},
		Analytics: config.Analytics{
			SearchDebounceMS: 0, // Sem janela de silêncio nos testes
		},
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestListAplicaPadroesDePaginacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeService := mocks.NewMockStoreIntegrator(ctrl)
	storeService.EXPECT().
		ListOrders(gomock.Any(), storedomain.OrderListParams{
			Page:  1,
			Limit: 10,
			Sort:  "createdAt",
			Order: "desc",
		}).
		Return([]*storedomain.Order{{ID: 1}}, 42, nil)

	service := NewService(testConfig(), storeService)

	page, err := service.List(context.Background(), domain.OrderListFilters{})

	assert.NoError(t, err)
	assert.Equal(t, 42, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.Limit)
	assert.Len(t, page.Items, 1)
}

func TestListRepassaOsFiltrosParaOStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	status := domain.OrderStatusPaid
	customerID := 7
	dateFrom := "2025-01-01"

	storeService := mocks.NewMockStoreIntegrator(ctrl)
	storeService.EXPECT().
		ListOrders(gomock.Any(), storedomain.OrderListParams{
			Status:     "paid",
			CustomerID: &customerID,
			DateFrom:   "2025-01-01",
			Page:       3,
			Limit:      25,
			Sort:       "total",
			Order:      "asc",
		}).
		Return([]*storedomain.Order{}, 0, nil)

	service := NewService(testConfig(), storeService)

	_, err := service.List(context.Background(), domain.OrderListFilters{
		Status:     &status,
		CustomerID: &customerID,
		DateFrom:   &dateFrom,
		Page:       3,
		Limit:      25,
		Sort:       "total",
		Order:      "asc",
	})

	assert.NoError(t, err)
}

func TestDetailJuntaItensEClienteEmParalelo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeService := mocks.NewMockStoreIntegrator(ctrl)
	storeService.EXPECT().
		GetOrder(gomock.Any(), 10).
		Return(&storedomain.Order{ID: 10, CustomerID: 3, Status: "paid"}, nil)
	storeService.EXPECT().
		ListOrderItemsByOrder(gomock.Any(), 10).
		Return([]*storedomain.OrderItem{{ID: 1, OrderID: 10, ProductID: 5, Qty: 2}}, nil)
	storeService.EXPECT().
		GetCustomer(gomock.Any(), 3).
		Return(&storedomain.Customer{ID: 3, Name: "Ana Souza"}, nil)

	service := NewService(testConfig(), storeService)

	detail, err := service.Detail(context.Background(), 10)

	assert.NoError(t, err)
	assert.Equal(t, 10, detail.Order.ID)
	assert.Len(t, detail.Items, 1)
	assert.Equal(t, "Ana Souza", detail.Customer.Name)
}

func TestDetailClienteAusenteNaoDerrubaOPedido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeService := mocks.NewMockStoreIntegrator(ctrl)
	storeService.EXPECT().
		GetOrder(gomock.Any(), 10).
		Return(&storedomain.Order{ID: 10, CustomerID: 3}, nil)
	storeService.EXPECT().
		ListOrderItemsByOrder(gomock.Any(), 10).
		Return([]*storedomain.OrderItem{}, nil)
	storeService.EXPECT().
		GetCustomer(gomock.Any(), 3).
		Return(nil, errors.New("cliente sumiu"))

	service := NewService(testConfig(), storeService)

	detail, err := service.Detail(context.Background(), 10)

	assert.NoError(t, err)
	assert.Nil(t, detail.Customer)
}

func TestUpdateStatusRejeitaStatusForaDaEnumeracao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeService := mocks.NewMockStoreIntegrator(ctrl)

	service := NewService(testConfig(), storeService)

	_, err := service.UpdateStatus(context.Background(), 10, domain.OrderStatus("teleported"))

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatusTransicaoForaDaTabelaNaoEBloqueada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// refunded -> pending não está na tabela consultiva, mas o store decide
	storeService := mocks.NewMockStoreIntegrator(ctrl)
	storeService.EXPECT().
		GetOrder(gomock.Any(), 10).
		Return(&storedomain.Order{ID: 10, Status: "refunded"}, nil)
	storeService.EXPECT().
		UpdateOrderStatus(gomock.Any(), 10, "pending").
		Return(&storedomain.Order{ID: 10, Status: "pending"}, nil)

	service := NewService(testConfig(), storeService)

	updated, err := service.UpdateStatus(context.Background(), 10, domain.OrderStatusPending)

	assert.NoError(t, err)
	assert.Equal(t, "pending", updated.Status)
}

func TestSearchJuntaNomeDoClienteEFiltra(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeService := mocks.NewMockStoreIntegrator(ctrl)
	storeService.EXPECT().
		ListAllOrders(gomock.Any()).
		Return([]*storedomain.Order{
			{ID: 1, CustomerID: 3, Total: floatPtr(100), Currency: "USD", CreatedAt: "2025-01-15T10:00:00Z"},
			{ID: 2, CustomerID: 4, Total: floatPtr(50), Currency: "EUR", CreatedAt: "2025-02-01T08:00:00Z"},
		}, nil)
	storeService.EXPECT().
		ListAllCustomers(gomock.Any()).
		Return([]*storedomain.Customer{
			{ID: 3, Name: "Ana Souza"},
			{ID: 4, Name: "Bruno Lima"},
		}, nil)

	service := NewService(testConfig(), storeService)

	results, err := service.Search(context.Background(), "ana")

	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, 1, results[0].ID)
	assert.Equal(t, "Ana Souza", results[0].CustomerName)
}

func TestSearchEncontraPorDataEMoeda(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orders := []*storedomain.Order{
		{ID: 1, CustomerID: 3, Currency: "USD", CreatedAt: "2025-01-15T10:00:00Z"},
		{ID: 2, CustomerID: 4, Currency: "EUR", CreatedAt: "2025-02-01T08:00:00Z"},
	}
	customers := []*storedomain.Customer{{ID: 3, Name: "Ana"}, {ID: 4, Name: "Bruno"}}

	storeService := mocks.NewMockStoreIntegrator(ctrl)
	storeService.EXPECT().ListAllOrders(gomock.Any()).Return(orders, nil).Times(2)
	storeService.EXPECT().ListAllCustomers(gomock.Any()).Return(customers, nil).Times(2)

	service := NewService(testConfig(), storeService)

	byDate, err := service.Search(context.Background(), "2025-01-15")
	assert.NoError(t, err)
	assert.Len(t, byDate, 1)
	assert.Equal(t, 1, byDate[0].ID)

	byCurrency, err := service.Search(context.Background(), "eur")
	assert.NoError(t, err)
	assert.Len(t, byCurrency, 1)
	assert.Equal(t, 2, byCurrency[0].ID)
}

func TestSearchDigitacaoProgressivaSuperaAConsultaAnterior(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// "an" seguido de "ana" é a mesma caixa de busca: só a consulta mais
	// recente chega ao store, mesmo com textos diferentes
	storeService := mocks.NewMockStoreIntegrator(ctrl)
	storeService.EXPECT().
		ListAllOrders(gomock.Any()).
		Return([]*storedomain.Order{{ID: 1, CustomerID: 3, Currency: "USD", CreatedAt: "2025-01-15T10:00:00Z"}}, nil).
		Times(1)
	storeService.EXPECT().
		ListAllCustomers(gomock.Any()).
		Return([]*storedomain.Customer{{ID: 3, Name: "Ana Souza"}}, nil).
		Times(1)

	service := &Service{
		cfg:          testConfig(),
		storeService: storeService,
		debouncer:    debounce.New(60 * time.Millisecond),
	}

	firstErr := make(chan error, 1)

	go func() {
		_, err := service.Search(context.Background(), "an")
		firstErr <- err
	}()

	time.Sleep(10 * time.Millisecond)

	results, err := service.Search(context.Background(), "ana")
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "Ana Souza", results[0].CustomerName)

	assert.ErrorIs(t, <-firstErr, ErrSearchSuperseded)
}

func TestSearchSuperadaRetornaErroSentinela(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Somente a última digitação chega ao store
	storeService := mocks.NewMockStoreIntegrator(ctrl)
	storeService.EXPECT().ListAllOrders(gomock.Any()).Return([]*storedomain.Order{}, nil)
	storeService.EXPECT().ListAllCustomers(gomock.Any()).Return([]*storedomain.Customer{}, nil)

	service := &Service{
		cfg:          testConfig(),
		storeService: storeService,
		debouncer:    debounce.New(60 * time.Millisecond),
	}

	type outcome struct {
		err error
	}
	first := make(chan outcome, 1)

	go func() {
		_, err := service.Search(context.Background(), "ana")
		first <- outcome{err: err}
	}()

	time.Sleep(10 * time.Millisecond)

	_, err := service.Search(context.Background(), "ana")
	assert.NoError(t, err)

	result := <-first
	assert.ErrorIs(t, result.err, ErrSearchSuperseded)
}
