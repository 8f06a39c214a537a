package ordering

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/backoffice-api/infrastructure/integrator/store"
	storedomain "github.com/vfg2006/backoffice-api/infrastructure/integrator/store/domain"
	"github.com/vfg2006/backoffice-api/internal/config"
	"github.com/vfg2006/backoffice-api/internal/domain"
	"github.com/vfg2006/backoffice-api/pkg/debounce"
	"github.com/vfg2006/backoffice-api/pkg/utils"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	defaultSort  = "createdAt"
)

// OrderPage é uma página da listagem de pedidos com o total do conjunto filtrado
type OrderPage struct {
	Items []*storedomain.Order `json:"items"`
	Total int                  `json:"total"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
}

// OrderDetail agrega o pedido com os itens e o cliente, resolvidos em paralelo
type OrderDetail struct {
	Order    *storedomain.Order       `json:"order"`
	Items    []*storedomain.OrderItem `json:"items"`
	Customer *storedomain.Customer    `json:"customer,omitempty"`
}

// OrderSearchResult é uma entrada da busca livre, com o nome do cliente já juntado
type OrderSearchResult struct {
	*storedomain.Order
	CustomerName string `json:"customerName,omitempty"`
}

type Orderer interface {
	List(ctx context.Context, filters domain.OrderListFilters) (*OrderPage, error)
	Detail(ctx context.Context, id int) (*OrderDetail, error)
	UpdateStatus(ctx context.Context, id int, next domain.OrderStatus) (*storedomain.Order, error)
	Search(ctx context.Context, query string) ([]*OrderSearchResult, error)
}

type Service struct {
	cfg          *config.Config
	storeService store.StoreIntegrator
	debouncer    *debounce.Debouncer
}

func NewService(cfg *config.Config, storeService store.StoreIntegrator) Orderer {
	return &Service{
		cfg:          cfg,
		storeService: storeService,
		debouncer:    debounce.New(time.Duration(cfg.Analytics.SearchDebounceMS) * time.Millisecond),
	}
}

// List traz uma página de pedidos do store, com os padrões da listagem do
// back office (mais recentes primeiro)
func (s *Service) List(ctx context.Context, filters domain.OrderListFilters) (*OrderPage, error) {
	params := storedomain.OrderListParams{
		CustomerID: filters.CustomerID,
		Page:       filters.Page,
		Limit:      filters.Limit,
		Sort:       filters.Sort,
		Order:      filters.Order,
	}

	if filters.Status != nil {
		params.Status = string(*filters.Status)
	}
	if filters.PaymentMethod != nil {
		params.PaymentMethod = *filters.PaymentMethod
	}
	if filters.DateFrom != nil {
		params.DateFrom = *filters.DateFrom
	}
	if filters.DateTo != nil {
		params.DateTo = *filters.DateTo
	}

	if params.Page <= 0 {
		params.Page = defaultPage
	}
	if params.Limit <= 0 {
		params.Limit = defaultLimit
	}
	if params.Sort == "" {
		params.Sort = defaultSort
		params.Order = "desc"
	}

	orders, total, err := s.storeService.ListOrders(ctx, params)
	if err != nil {
		return nil, err
	}

	return &OrderPage{
		Items: orders,
		Total: total,
		Page:  params.Page,
		Limit: params.Limit,
	}, nil
}

// Detail busca o pedido e resolve itens e cliente em paralelo. O cliente só
// é buscado quando o pedido tem referência; a junção espera as duas buscas
// resolverem antes de montar a resposta.
func (s *Service) Detail(ctx context.Context, id int) (*OrderDetail, error) {
	order, err := s.storeService.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	var (
		items       []*storedomain.OrderItem
		customer    *storedomain.Customer
		itemsErr    error
		customerErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		items, itemsErr = s.storeService.ListOrderItemsByOrder(ctx, id)
	}()

	go func() {
		defer wg.Done()
		if order.CustomerID != 0 {
			customer, customerErr = s.storeService.GetCustomer(ctx, order.CustomerID)
		}
	}()

	wg.Wait()

	if itemsErr != nil {
		return nil, itemsErr
	}
	if customerErr != nil {
		// Cliente ausente não derruba o detalhe do pedido
		logrus.WithError(customerErr).WithFields(logrus.Fields{
			"orderId":    id,
			"customerId": order.CustomerID,
		}).Warn("Falha ao buscar o cliente do pedido")
	}

	return &OrderDetail{
		Order:    order,
		Items:    items,
		Customer: customer,
	}, nil
}

// UpdateStatus aplica a transição de status no store. A máquina de estados
// é consultiva: transições fora da tabela geram aviso no log, mas não são
// bloqueadas, porque o store externo é a autoridade final.
func (s *Service) UpdateStatus(ctx context.Context, id int, next domain.OrderStatus) (*storedomain.Order, error) {
	if _, ok := domain.StatusMetaByStatus[next]; !ok {
		return nil, ErrInvalidStatus
	}

	current, err := s.storeService.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	from := domain.OrderStatus(current.Status)
	if !domain.IsAllowedTransition(from, next) {
		logrus.WithFields(logrus.Fields{
			"orderId": id,
			"from":    from,
			"to":      next,
		}).Warn("Transição de status fora da tabela consultiva")
	}

	return s.storeService.UpdateOrderStatus(ctx, id, string(next))
}

// Search faz a busca livre sobre o conjunto completo de pedidos, com o nome
// do cliente juntado em memória. Digitações rápidas são coalescidas pela
// janela de silêncio; a chave é a caixa de busca, então qualquer consulta
// mais nova supera a anterior, mesmo com texto diferente. Chamadas superadas
// retornam ErrSearchSuperseded e o resultado é descartado.
func (s *Service) Search(ctx context.Context, query string) ([]*OrderSearchResult, error) {
	if !s.debouncer.Wait(ctx, "orders") {
		return nil, ErrSearchSuperseded
	}

	var (
		orders       []*storedomain.Order
		customers    []*storedomain.Customer
		ordersErr    error
		customersErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		orders, ordersErr = s.storeService.ListAllOrders(ctx)
	}()

	go func() {
		defer wg.Done()
		customers, customersErr = s.storeService.ListAllCustomers(ctx)
	}()

	wg.Wait()

	if ordersErr != nil {
		return nil, ordersErr
	}
	if customersErr != nil {
		return nil, customersErr
	}

	namesByCustomer := make(map[int]string, len(customers))
	for _, customer := range customers {
		if customer == nil {
			continue
		}
		namesByCustomer[customer.ID] = customer.Name
	}

	needle := strings.ToLower(strings.TrimSpace(query))

	results := []*OrderSearchResult{}
	for _, order := range orders {
		if order == nil {
			continue
		}

		result := &OrderSearchResult{
			Order:        order,
			CustomerName: namesByCustomer[order.CustomerID],
		}

		if needle == "" || matchesOrder(result, needle) {
			results = append(results, result)
		}
	}

	return results, nil
}

// matchesOrder aplica a busca livre sobre as representações textuais do
// pedido: data de criação (completa e só a data), nome e id do cliente e
// a moeda
func matchesOrder(order *OrderSearchResult, needle string) bool {
	created := strings.ToLower(order.CreatedAt)
	if strings.Contains(created, needle) || strings.Contains(utils.DateOnlyKey(created), needle) {
		return true
	}

	if strings.Contains(strings.ToLower(order.CustomerName), needle) {
		return true
	}
	if order.CustomerID != 0 && strings.Contains(strconv.Itoa(order.CustomerID), needle) {
		return true
	}

	return strings.Contains(strings.ToLower(order.Currency), needle)
}
