package analyzing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	storedomain "github.com/vfg2006/backoffice-api/infrastructure/integrator/store/domain"
	"github.com/vfg2006/backoffice-api/infrastructure/integrator/store/mocks"
	"github.com/vfg2006/backoffice-api/internal/config"
	"github.com/vfg2006/backoffice-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Store: config.Store{TimeoutSeconds: 5},
		Analytics: config.Analytics{
			CacheTTLSeconds:  60,
			TopProductsLimit: 5,
		},
	}
}

func TestRevenueKPIsUsaCachePorMoeda(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStoreIntegrator(ctrl)
	mockStore.EXPECT().
		ListAllOrders(gomock.Any()).
		Return(sampleOrders(), nil).
		Times(1)

	service := NewService(testConfig(), mockStore)

	// Moeda vazia cai no filtro ALL
	kpis, err := service.RevenueKPIs(context.Background(), "")
	assert.NoError(t, err)
	assert.Equal(t, 150.0, kpis.TotalRevenue)
	assert.Equal(t, 75.0, kpis.AvgMonthlyRevenue)
	assert.Equal(t, "ALL", kpis.Currency)

	// Segunda chamada com os mesmos parâmetros é servida pelo cache
	again, err := service.RevenueKPIs(context.Background(), "ALL")
	assert.NoError(t, err)
	assert.Equal(t, kpis, again)
}

func TestRevenueKPIsErroNaoEntraNoCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStoreIntegrator(ctrl)
	gomock.InOrder(
		mockStore.EXPECT().
			ListAllOrders(gomock.Any()).
			Return(nil, errors.New("store indisponível")),
		mockStore.EXPECT().
			ListAllOrders(gomock.Any()).
			Return(sampleOrders(), nil),
	)

	service := NewService(testConfig(), mockStore)

	_, err := service.RevenueKPIs(context.Background(), "ALL")
	assert.Error(t, err)

	// A falha não ficou memoizada: a chamada seguinte busca de novo
	kpis, err := service.RevenueKPIs(context.Background(), "ALL")
	assert.NoError(t, err)
	assert.Equal(t, 150.0, kpis.TotalRevenue)
}

func TestTopProductsBuscaColecoesEmParalelo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStoreIntegrator(ctrl)
	mockStore.EXPECT().
		ListAllOrderItems(gomock.Any()).
		Return([]*storedomain.OrderItem{
			{OrderID: 1, ProductID: 1, Qty: 2, Price: 100},
			{OrderID: 1, ProductID: 2, Qty: 1, Price: 500},
			{OrderID: 2, ProductID: 3, Qty: 3, Price: 10},
		}, nil).
		Times(1)
	mockStore.EXPECT().
		ListAllProducts(gomock.Any()).
		Return([]*storedomain.Product{
			{ID: 1, Name: "Teclado"},
			{ID: 2, Name: "Monitor"},
			{ID: 3, Name: "Cabo"},
		}, nil).
		Times(1)

	cfg := testConfig()
	cfg.Analytics.TopProductsLimit = 2

	service := NewService(cfg, mockStore)

	// Limite zero usa o padrão da configuração
	ranking, err := service.TopProducts(context.Background(), domain.TopProductByRevenue, 0)
	assert.NoError(t, err)
	assert.Len(t, ranking, 2)
	assert.Equal(t, "Monitor", ranking[0].Name)
	assert.Equal(t, "Teclado", ranking[1].Name)
}

func TestOrderStatusesMontaVisaoCompleta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStoreIntegrator(ctrl)
	mockStore.EXPECT().
		ListAllOrders(gomock.Any()).
		Return([]*storedomain.Order{
			{Status: "paid", CreatedAt: "2025-01-10"},
			{Status: "pending", CreatedAt: "2025-01-20"},
			{Status: "paid", CreatedAt: "2025-02-05"},
			{Status: "shipped", CreatedAt: "2025-02-06"},
			{Status: "paid", CreatedAt: "2025-02-07"},
		}, nil).
		Times(1)

	service := NewService(testConfig(), mockStore)

	view, err := service.OrderStatuses(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 5, view.TotalOrders)
	assert.Len(t, view.Statuses, 3)

	// Janeiro: 2 pedidos, fevereiro: 3 -> crescimento 0.5
	assert.NotNil(t, view.Growth)
	assert.InDelta(t, 0.5, *view.Growth, 1e-9)
}

func TestViewVencidaServeValorAntigoEnquantoReaquece(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := []*storedomain.Order{{Status: "paid", Total: floatPtr(10), CreatedAt: "2025-01-01"}}
	second := []*storedomain.Order{{Status: "paid", Total: floatPtr(99), CreatedAt: "2025-01-01"}}

	refreshed := make(chan struct{})

	mockStore := mocks.NewMockStoreIntegrator(ctrl)
	gomock.InOrder(
		mockStore.EXPECT().
			ListAllOrders(gomock.Any()).
			Return(first, nil),
		mockStore.EXPECT().
			ListAllOrders(gomock.Any()).
			DoAndReturn(func(context.Context) ([]*storedomain.Order, error) {
				defer close(refreshed)
				return second, nil
			}),
	)

	service := NewService(testConfig(), mockStore)
	service.ttl = 30 * time.Millisecond

	series, err := service.MonthlyRevenue(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 10.0, series[0].Revenue)

	time.Sleep(50 * time.Millisecond)

	// Entrada vencida: a resposta é o valor antigo, o recálculo corre em
	// segundo plano
	stale, err := service.MonthlyRevenue(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 10.0, stale[0].Revenue)

	<-refreshed
	time.Sleep(10 * time.Millisecond)

	fresh, err := service.MonthlyRevenue(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 99.0, fresh[0].Revenue)
}

func TestRefreshSnapshotsReaqueceTodasAsVisoes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStoreIntegrator(ctrl)
	// KPIs, série mensal e status consultam a coleção de pedidos
	mockStore.EXPECT().ListAllOrders(gomock.Any()).Return(sampleOrders(), nil).Times(3)
	// Histograma de notas e ranking consultam a coleção de produtos
	mockStore.EXPECT().ListAllProducts(gomock.Any()).Return([]*storedomain.Product{}, nil).Times(2)
	mockStore.EXPECT().ListAllOrderItems(gomock.Any()).Return([]*storedomain.OrderItem{}, nil).Times(1)
	mockStore.EXPECT().ListAllCustomers(gomock.Any()).Return([]*storedomain.Customer{}, nil).Times(1)

	service := NewService(testConfig(), mockStore)

	err := service.RefreshSnapshots(context.Background())
	assert.NoError(t, err)

	// Depois do reaquecimento as visões padrão saem direto do cache
	kpis, err := service.RevenueKPIs(context.Background(), "ALL")
	assert.NoError(t, err)
	assert.Equal(t, 150.0, kpis.TotalRevenue)

	view, err := service.OrderStatuses(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 3, view.TotalOrders)
}
