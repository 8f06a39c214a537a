package cataloging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	storedomain "github.com/vfg2006/backoffice-api/infrastructure/integrator/store/domain"
	"github.com/vfg2006/backoffice-api/infrastructure/integrator/store/mocks"
	"github.com/vfg2006/backoffice-api/internal/config"
	"github.com/vfg2006/backoffice-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Analytics: config.Analytics{
			SearchDebounceMS: 0, // Sem janela de silêncio nos testes
		},
	}
}

func TestListSemBuscaUsaPaginacaoDoStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeService := mocks.NewMockStoreIntegrator(ctrl)
	storeService.EXPECT().
		ListProducts(gomock.Any(), storedomain.ProductListParams{
			Category: "audio",
			Page:     2,
			Limit:    5,
		}).
		Return([]*storedomain.Product{{ID: 1, Name: "Fone"}}, 12, nil)

	service := NewService(testConfig(), storeService)

	page, err := service.List(context.Background(), domain.ProductListFilters{
		Category: "audio",
		Page:     2,
		Limit:    5,
	})

	assert.NoError(t, err)
	assert.Equal(t, 12, page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Len(t, page.Items, 1)
}

func TestListComBuscaFiltraPorNomeOuSKUEmMemoria(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No modo busca a paginação não vai ao store
	storeService := mocks.NewMockStoreIntegrator(ctrl)
	storeService.EXPECT().
		ListProducts(gomock.Any(), storedomain.ProductListParams{}).
		Return([]*storedomain.Product{
			{ID: 1, Name: "Teclado Mecânico", SKU: "KB-100"},
			{ID: 2, Name: "Mouse Gamer", SKU: "MS-200"},
			{ID: 3, Name: "Headset", SKU: "KB-300"},
		}, 3, nil)

	service := NewService(testConfig(), storeService)

	page, err := service.List(context.Background(), domain.ProductListFilters{Search: "kb-"})

	assert.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 1, page.Items[0].ID)
	assert.Equal(t, 3, page.Items[1].ID)
}

func TestListComBuscaPaginaEmMemoria(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	all := []*storedomain.Product{
		{ID: 1, Name: "Cabo A"},
		{ID: 2, Name: "Cabo B"},
		{ID: 3, Name: "Cabo C"},
	}

	storeService := mocks.NewMockStoreIntegrator(ctrl)
	storeService.EXPECT().
		ListProducts(gomock.Any(), storedomain.ProductListParams{}).
		Return(all, 3, nil).
		Times(2)

	service := NewService(testConfig(), storeService)

	first, err := service.List(context.Background(), domain.ProductListFilters{Search: "cabo", Page: 1, Limit: 2})
	assert.NoError(t, err)
	assert.Equal(t, 3, first.Total)
	assert.Len(t, first.Items, 2)

	// Página além do conjunto volta vazia, sem erro
	beyond, err := service.List(context.Background(), domain.ProductListFilters{Search: "cabo", Page: 5, Limit: 2})
	assert.NoError(t, err)
	assert.Empty(t, beyond.Items)
	assert.Equal(t, 3, beyond.Total)
}

func TestCreateExigeNome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(testConfig(), mocks.NewMockStoreIntegrator(ctrl))

	_, err := service.Create(context.Background(), &storedomain.Product{Name: "   "})

	assert.ErrorIs(t, err, ErrMissingName)
}

func TestCreateRepassaOProdutoParaOStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeService := mocks.NewMockStoreIntegrator(ctrl)
	storeService.EXPECT().
		CreateProduct(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, product *storedomain.Product) (*storedomain.Product, error) {
			product.ID = 42
			return product, nil
		})

	service := NewService(testConfig(), storeService)

	created, err := service.Create(context.Background(), &storedomain.Product{Name: "Webcam"})

	assert.NoError(t, err)
	assert.Equal(t, 42, created.ID)
}
