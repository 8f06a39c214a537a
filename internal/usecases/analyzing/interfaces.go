package analyzing

import (
	"context"

	"github.com/vfg2006/backoffice-api/internal/domain"
)

// Analyzer define as visões analíticas do dashboard. Cada visão é derivada
// sob demanda das coleções cruas do store e memoizada pelo conjunto
// completo de parâmetros da chamada.
type Analyzer interface {
	// RevenueKPIs calcula os indicadores de receita do topo do dashboard
	RevenueKPIs(ctx context.Context, currency string) (*domain.RevenueKPIs, error)

	// MonthlyRevenue monta a série mensal de receita de todos os pedidos
	MonthlyRevenue(ctx context.Context) ([]domain.MonthlyRevenuePoint, error)

	// OrderStatuses monta o histograma de status com o crescimento mês a mês
	OrderStatuses(ctx context.Context) (*domain.OrderStatusView, error)

	// ProductRatings monta o histograma de avaliação dos produtos
	ProductRatings(ctx context.Context) ([]domain.RatingBucket, error)

	// TopProducts monta o ranking dos produtos mais vendidos pelo critério pedido
	TopProducts(ctx context.Context, metric domain.TopProductMetric, limit int) ([]domain.TopProduct, error)

	// CustomerContinents monta a distribuição de clientes por continente
	CustomerContinents(ctx context.Context) (*domain.CustomerDistribution, error)

	// RefreshSnapshots reaquece o cache das visões sem parâmetro, usado pelo agendador
	RefreshSnapshots(ctx context.Context) error
}
