package cataloging

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/vfg2006/backoffice-api/infrastructure/integrator/store"
	storedomain "github.com/vfg2006/backoffice-api/infrastructure/integrator/store/domain"
	"github.com/vfg2006/backoffice-api/internal/config"
	"github.com/vfg2006/backoffice-api/internal/domain"
	"github.com/vfg2006/backoffice-api/pkg/debounce"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// Erros de negócio do catálogo
var (
	ErrMissingName      = errors.New("nome do produto é obrigatório")
	ErrSearchSuperseded = errors.New("busca superada por uma consulta mais recente")
)

// ProductPage é uma página da listagem de produtos com o total do conjunto filtrado
type ProductPage struct {
	Items []*storedomain.Product `json:"items"`
	Total int                    `json:"total"`
	Page  int                    `json:"page"`
	Limit int                    `json:"limit"`
}

type Cataloger interface {
	List(ctx context.Context, filters domain.ProductListFilters) (*ProductPage, error)
	Get(ctx context.Context, id int) (*storedomain.Product, error)
	Create(ctx context.Context, product *storedomain.Product) (*storedomain.Product, error)
}

type Service struct {
	cfg          *config.Config
	storeService store.StoreIntegrator
	debouncer    *debounce.Debouncer
}

func NewService(cfg *config.Config, storeService store.StoreIntegrator) Cataloger {
	return &Service{
		cfg:          cfg,
		storeService: storeService,
		debouncer:    debounce.New(time.Duration(cfg.Analytics.SearchDebounceMS) * time.Millisecond),
	}
}

// List traz uma página de produtos. Sem texto livre, a paginação fica no
// store; com texto livre, o conjunto completo (já com os filtros de
// servidor) é filtrado por nome ou SKU e paginado em memória.
func (s *Service) List(ctx context.Context, filters domain.ProductListFilters) (*ProductPage, error) {
	page := filters.Page
	if page <= 0 {
		page = defaultPage
	}
	limit := filters.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	params := storedomain.ProductListParams{
		Category: filters.Category,
		Active:   filters.Active,
		LowStock: filters.LowStock,
		Sort:     filters.Sort,
		Order:    filters.Order,
	}

	search := strings.ToLower(strings.TrimSpace(filters.Search))
	if search == "" {
		params.Page = page
		params.Limit = limit

		products, total, err := s.storeService.ListProducts(ctx, params)
		if err != nil {
			return nil, err
		}

		return &ProductPage{Items: products, Total: total, Page: page, Limit: limit}, nil
	}

	// Digitações rápidas na busca são coalescidas pela chave da caixa de
	// busca; qualquer consulta mais nova supera a anterior e a superada é
	// descartada
	if !s.debouncer.Wait(ctx, "products") {
		return nil, ErrSearchSuperseded
	}

	all, _, err := s.storeService.ListProducts(ctx, params)
	if err != nil {
		return nil, err
	}

	filtered := []*storedomain.Product{}
	for _, product := range all {
		if product == nil {
			continue
		}
		if strings.Contains(strings.ToLower(product.Name), search) ||
			strings.Contains(strings.ToLower(product.SKU), search) {
			filtered = append(filtered, product)
		}
	}

	total := len(filtered)

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &ProductPage{
		Items: filtered[start:end],
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (s *Service) Get(ctx context.Context, id int) (*storedomain.Product, error) {
	return s.storeService.GetProduct(ctx, id)
}

// Create cria um produto no store; o id é atribuído lá
func (s *Service) Create(ctx context.Context, product *storedomain.Product) (*storedomain.Product, error) {
	if strings.TrimSpace(product.Name) == "" {
		return nil, ErrMissingName
	}

	return s.storeService.CreateProduct(ctx, product)
}
