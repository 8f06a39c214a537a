package analyzing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/backoffice-api/infrastructure/integrator/store"
	storedomain "github.com/vfg2006/backoffice-api/infrastructure/integrator/store/domain"
	"github.com/vfg2006/backoffice-api/internal/config"
	"github.com/vfg2006/backoffice-api/internal/domain"
	"github.com/vfg2006/backoffice-api/pkg/utils"
)

// cacheEntry guarda uma visão derivada com o instante em que foi calculada
type cacheEntry struct {
	value      any
	computedAt time.Time
}

// Service implementa Analyzer com um cache por visão, chaveado pelo conjunto
// completo de parâmetros da chamada. Entradas vencidas continuam sendo
// servidas enquanto um recálculo roda em segundo plano (stale-while-
// revalidate); respostas atrasadas de parâmetros antigos nunca sobrescrevem
// chaves mais novas, porque cada combinação de parâmetros tem a sua chave.
type Service struct {
	cfg          *config.Config
	storeService store.StoreIntegrator

	mu         sync.Mutex
	cache      map[string]*cacheEntry
	refreshing map[string]bool
	ttl        time.Duration
}

func NewService(cfg *config.Config, storeService store.StoreIntegrator) *Service {
	return &Service{
		cfg:          cfg,
		storeService: storeService,
		cache:        map[string]*cacheEntry{},
		refreshing:   map[string]bool{},
		ttl:          time.Duration(cfg.Analytics.CacheTTLSeconds) * time.Second,
	}
}

// derive resolve uma visão pelo cache. Entrada fresca retorna direto;
// entrada vencida retorna o valor antigo e dispara o recálculo em segundo
// plano; sem entrada, o cálculo roda de forma síncrona.
func (s *Service) derive(ctx context.Context, key string, compute func(context.Context) (any, error)) (any, error) {
	s.mu.Lock()
	entry, ok := s.cache[key]

	if ok && time.Since(entry.computedAt) < s.ttl {
		s.mu.Unlock()
		return entry.value, nil
	}

	if ok {
		// Vencida: serve o valor antigo e reaquece fora do caminho da requisição
		if !s.refreshing[key] {
			s.refreshing[key] = true
			go s.revalidate(key, compute)
		}
		s.mu.Unlock()
		return entry.value, nil
	}
	s.mu.Unlock()

	value, err := compute(ctx)
	if err != nil {
		return nil, err
	}

	s.put(key, value)
	return value, nil
}

// revalidate recalcula uma visão vencida. Em caso de falha o valor antigo
// permanece no cache, mantendo o dashboard visível com dados anteriores.
func (s *Service) revalidate(key string, compute func(context.Context) (any, error)) {
	defer func() {
		s.mu.Lock()
		delete(s.refreshing, key)
		s.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(s.cfg.Store.TimeoutSeconds)*time.Second)
	defer cancel()

	value, err := compute(ctx)
	if err != nil {
		logrus.WithError(err).WithField("view", key).Warn("Falha ao reaquecer visão analítica, mantendo valor anterior")
		return
	}

	s.put(key, value)
}

func (s *Service) put(key string, value any) {
	s.mu.Lock()
	s.cache[key] = &cacheEntry{value: value, computedAt: time.Now()}
	s.mu.Unlock()
}

func (s *Service) RevenueKPIs(ctx context.Context, currency string) (*domain.RevenueKPIs, error) {
	if currency == "" {
		currency = AllCurrencies
	}

	value, err := s.derive(ctx, "kpis:"+currency, func(ctx context.Context) (any, error) {
		return s.computeRevenueKPIs(ctx, currency)
	})
	if err != nil {
		return nil, err
	}

	return value.(*domain.RevenueKPIs), nil
}

func (s *Service) computeRevenueKPIs(ctx context.Context, currency string) (*domain.RevenueKPIs, error) {
	orders, err := s.storeService.ListAllOrders(ctx)
	if err != nil {
		return nil, err
	}

	qualifying := FilterQualifyingOrders(orders, currency)

	return &domain.RevenueKPIs{
		TotalRevenue:      utils.RoundWithTwoDecimalPlace(TotalRevenue(qualifying)),
		AvgMonthlyRevenue: utils.RoundWithTwoDecimalPlace(AvgMonthlyByActiveMonths(qualifying)),
		Currency:          currency,
	}, nil
}

func (s *Service) MonthlyRevenue(ctx context.Context) ([]domain.MonthlyRevenuePoint, error) {
	value, err := s.derive(ctx, "revenue:monthly", func(ctx context.Context) (any, error) {
		return s.computeMonthlyRevenue(ctx)
	})
	if err != nil {
		return nil, err
	}

	return value.([]domain.MonthlyRevenuePoint), nil
}

func (s *Service) computeMonthlyRevenue(ctx context.Context) ([]domain.MonthlyRevenuePoint, error) {
	orders, err := s.storeService.ListAllOrders(ctx)
	if err != nil {
		return nil, err
	}
	return MonthlyRevenueSeries(orders), nil
}

func (s *Service) OrderStatuses(ctx context.Context) (*domain.OrderStatusView, error) {
	value, err := s.derive(ctx, "orders:status", func(ctx context.Context) (any, error) {
		return s.computeOrderStatuses(ctx)
	})
	if err != nil {
		return nil, err
	}

	return value.(*domain.OrderStatusView), nil
}

func (s *Service) computeOrderStatuses(ctx context.Context) (*domain.OrderStatusView, error) {
	orders, err := s.storeService.ListAllOrders(ctx)
	if err != nil {
		return nil, err
	}

	statuses := OrderStatusHistogram(orders)

	var total int
	for _, status := range statuses {
		total += status.Count
	}

	return &domain.OrderStatusView{
		Statuses:    statuses,
		TotalOrders: total,
		Growth:      OrdersGrowth(orders),
	}, nil
}

func (s *Service) ProductRatings(ctx context.Context) ([]domain.RatingBucket, error) {
	value, err := s.derive(ctx, "products:rating", func(ctx context.Context) (any, error) {
		return s.computeProductRatings(ctx)
	})
	if err != nil {
		return nil, err
	}

	return value.([]domain.RatingBucket), nil
}

func (s *Service) computeProductRatings(ctx context.Context) ([]domain.RatingBucket, error) {
	products, err := s.storeService.ListAllProducts(ctx)
	if err != nil {
		return nil, err
	}
	return ProductRatingHistogram(products), nil
}

func (s *Service) TopProducts(ctx context.Context, metric domain.TopProductMetric, limit int) ([]domain.TopProduct, error) {
	if metric != domain.TopProductByQty {
		metric = domain.TopProductByRevenue
	}
	if limit <= 0 {
		limit = s.cfg.Analytics.TopProductsLimit
	}

	key := fmt.Sprintf("products:top:%s:%d", metric, limit)

	value, err := s.derive(ctx, key, func(ctx context.Context) (any, error) {
		return s.computeTopProducts(ctx, metric, limit)
	})
	if err != nil {
		return nil, err
	}

	return value.([]domain.TopProduct), nil
}

// computeTopProducts junta duas coleções; as buscas correm em paralelo e o
// cálculo só começa quando as duas resolverem
func (s *Service) computeTopProducts(ctx context.Context, metric domain.TopProductMetric, limit int) ([]domain.TopProduct, error) {
	var (
		items      []*storedomain.OrderItem
		products   []*storedomain.Product
		itemsErr   error
		productErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		items, itemsErr = s.storeService.ListAllOrderItems(ctx)
	}()

	go func() {
		defer wg.Done()
		products, productErr = s.storeService.ListAllProducts(ctx)
	}()

	wg.Wait()

	if itemsErr != nil {
		return nil, itemsErr
	}
	if productErr != nil {
		return nil, productErr
	}

	return TopProducts(items, products, metric, limit), nil
}

func (s *Service) CustomerContinents(ctx context.Context) (*domain.CustomerDistribution, error) {
	value, err := s.derive(ctx, "customers:continents", func(ctx context.Context) (any, error) {
		return s.computeCustomerContinents(ctx)
	})
	if err != nil {
		return nil, err
	}

	return value.(*domain.CustomerDistribution), nil
}

func (s *Service) computeCustomerContinents(ctx context.Context) (*domain.CustomerDistribution, error) {
	customers, err := s.storeService.ListAllCustomers(ctx)
	if err != nil {
		return nil, err
	}

	distribution := CustomerContinentDistribution(customers)
	return &distribution, nil
}

// RefreshSnapshots recalcula as visões padrão do dashboard diretamente no
// cache, para que a primeira requisição após o reaquecimento já encontre
// tudo fresco. Falha em uma visão não interrompe as demais e mantém o
// valor anterior daquela chave no cache.
func (s *Service) RefreshSnapshots(ctx context.Context) error {
	var firstErr error

	record := func(key string, value any, err error) {
		if err != nil {
			logrus.WithError(err).WithField("view", key).Warn("Falha ao reaquecer visão analítica")
			if firstErr == nil {
				firstErr = err
			}
			return
		}
		s.put(key, value)
	}

	kpis, err := s.computeRevenueKPIs(ctx, AllCurrencies)
	record("kpis:"+AllCurrencies, kpis, err)

	monthly, err := s.computeMonthlyRevenue(ctx)
	record("revenue:monthly", monthly, err)

	statuses, err := s.computeOrderStatuses(ctx)
	record("orders:status", statuses, err)

	ratings, err := s.computeProductRatings(ctx)
	record("products:rating", ratings, err)

	limit := s.cfg.Analytics.TopProductsLimit
	top, err := s.computeTopProducts(ctx, domain.TopProductByRevenue, limit)
	record(fmt.Sprintf("products:top:%s:%d", domain.TopProductByRevenue, limit), top, err)

	continents, err := s.computeCustomerContinents(ctx)
	record("customers:continents", continents, err)

	return firstErr
}
