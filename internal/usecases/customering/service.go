package customering

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/vfg2006/backoffice-api/infrastructure/integrator/store"
	storedomain "github.com/vfg2006/backoffice-api/infrastructure/integrator/store/domain"
	"github.com/vfg2006/backoffice-api/internal/config"
	"github.com/vfg2006/backoffice-api/internal/domain"
	"github.com/vfg2006/backoffice-api/pkg/debounce"
	"github.com/vfg2006/backoffice-api/pkg/utils"
)

// Erros de negócio da gestão de clientes
var (
	ErrMissingName      = errors.New("nome do cliente é obrigatório")
	ErrSearchSuperseded = errors.New("busca superada por uma consulta mais recente")
)

// CustomerView é um cliente com os metadados de exibição de gênero resolvidos
type CustomerView struct {
	*storedomain.Customer
	Gender domain.GenderMeta `json:"genderMeta"`
}

// CustomerDetail agrega o cliente com o histórico de pedidos dele
type CustomerDetail struct {
	Customer *CustomerView        `json:"customer"`
	Orders   []*storedomain.Order `json:"orders"`
}

type Customerer interface {
	Search(ctx context.Context, query string) ([]*CustomerView, error)
	Detail(ctx context.Context, id int) (*CustomerDetail, error)
	Create(ctx context.Context, customer *storedomain.Customer) (*storedomain.Customer, error)
}

type Service struct {
	cfg          *config.Config
	storeService store.StoreIntegrator
	debouncer    *debounce.Debouncer
}

func NewService(cfg *config.Config, storeService store.StoreIntegrator) Customerer {
	return &Service{
		cfg:          cfg,
		storeService: storeService,
		debouncer:    debounce.New(time.Duration(cfg.Analytics.SearchDebounceMS) * time.Millisecond),
	}
}

// Search faz a busca livre sobre a coleção completa de clientes. Consulta
// vazia lista todos. Digitações rápidas são coalescidas pela janela de
// silêncio, chaveada pela caixa de busca: qualquer consulta mais nova
// supera a anterior, mesmo com texto diferente. Chamadas superadas são
// descartadas.
func (s *Service) Search(ctx context.Context, query string) ([]*CustomerView, error) {
	needle := strings.ToLower(strings.TrimSpace(query))

	if needle != "" {
		if !s.debouncer.Wait(ctx, "customers") {
			return nil, ErrSearchSuperseded
		}
	}

	customers, err := s.storeService.ListAllCustomers(ctx)
	if err != nil {
		return nil, err
	}

	views := []*CustomerView{}
	for _, customer := range customers {
		if customer == nil {
			continue
		}

		if needle != "" && !matchesCustomer(customer, needle) {
			continue
		}

		views = append(views, &CustomerView{
			Customer: customer,
			Gender:   domain.MetaForGender(domain.Gender(customer.Gender)),
		})
	}

	return views, nil
}

// matchesCustomer aplica a busca livre sobre as representações textuais do
// cliente: nome, país e a data de criação em quatro formas (ISO completa,
// só a data, ano-mês e somente dígitos para consultas numéricas parciais
// de pelo menos quatro dígitos)
func matchesCustomer(customer *storedomain.Customer, needle string) bool {
	name := strings.ToLower(strings.TrimSpace(customer.Name))
	if strings.Contains(name, needle) {
		return true
	}

	country := strings.ToLower(strings.TrimSpace(customer.Country))
	if strings.Contains(country, needle) {
		return true
	}

	full := strings.ToLower(customer.CreatedAt)
	dateOnly := utils.DateOnlyKey(full)
	month := utils.YearMonthKey(dateOnly)

	if strings.Contains(full, needle) ||
		strings.Contains(dateOnly, needle) ||
		strings.Contains(month, needle) {
		return true
	}

	needleDigits := utils.DigitsOnly(needle)
	if len(needleDigits) >= 4 {
		return strings.Contains(utils.DigitsOnly(dateOnly), needleDigits)
	}

	return false
}

// Detail busca o cliente e o histórico de pedidos dele em paralelo
func (s *Service) Detail(ctx context.Context, id int) (*CustomerDetail, error) {
	var (
		customer    *storedomain.Customer
		orders      []*storedomain.Order
		customerErr error
		ordersErr   error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		customer, customerErr = s.storeService.GetCustomer(ctx, id)
	}()

	go func() {
		defer wg.Done()
		orders, ordersErr = s.storeService.ListOrdersByCustomer(ctx, id)
	}()

	wg.Wait()

	if customerErr != nil {
		return nil, customerErr
	}
	if ordersErr != nil {
		return nil, ordersErr
	}

	return &CustomerDetail{
		Customer: &CustomerView{
			Customer: customer,
			Gender:   domain.MetaForGender(domain.Gender(customer.Gender)),
		},
		Orders: orders,
	}, nil
}

// Create cria um cliente no store; o id é atribuído lá
func (s *Service) Create(ctx context.Context, customer *storedomain.Customer) (*storedomain.Customer, error) {
	if strings.TrimSpace(customer.Name) == "" {
		return nil, ErrMissingName
	}

	return s.storeService.CreateCustomer(ctx, customer)
}
