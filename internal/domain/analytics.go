package domain

// TopProductMetric define o critério de ordenação do ranking de produtos
type TopProductMetric string

const (
	TopProductByRevenue TopProductMetric = "revenue"
	TopProductByQty     TopProductMetric = "qty"
)

// RevenueKPIs são os indicadores do topo do dashboard
type RevenueKPIs struct {
	TotalRevenue      float64 `json:"total_revenue"`
	AvgMonthlyRevenue float64 `json:"avg_monthly_revenue"`
	Currency          string  `json:"currency"`
}

// MonthlyRevenuePoint é um ponto da série mensal de receita.
// Month usa a chave ano-mês "YYYY-MM".
type MonthlyRevenuePoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// TopProduct é uma entrada do ranking de produtos mais vendidos
type TopProduct struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Thumbnail string  `json:"thumbnail,omitempty"`
	Qty       float64 `json:"qty"`
	Revenue   float64 `json:"revenue"`
}

// StatusCount é uma entrada do histograma de status dos pedidos,
// com os metadados de exibição já resolvidos
type StatusCount struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Color  string `json:"color"`
	Count  int    `json:"count"`
}

// OrderStatusView é a visão completa do gráfico de status: histograma
// mais o crescimento mês a mês. Growth é nulo quando não há meses
// suficientes para comparação ou quando o mês anterior tem contagem zero.
type OrderStatusView struct {
	Statuses    []StatusCount `json:"statuses"`
	TotalOrders int           `json:"total_orders"`
	Growth      *float64      `json:"growth"`
}

// RatingBucket é uma entrada do histograma de avaliação de produtos,
// onde Rating é o piso inteiro da nota bruta
type RatingBucket struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

// ContinentCount é uma entrada da distribuição de clientes por continente
type ContinentCount struct {
	Continent string `json:"continent"`
	Count     int    `json:"count"`
}

// CustomerDistribution agrega a distribuição de clientes por continente.
// TotalCustomers soma todos os clientes contados, inclusive os do balde "others".
type CustomerDistribution struct {
	Continents     []ContinentCount `json:"continents"`
	TotalCustomers int              `json:"total_customers"`
}
