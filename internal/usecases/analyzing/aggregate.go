package analyzing

import (
	"math"
	"sort"
	"strconv"

	storedomain "github.com/vfg2006/backoffice-api/infrastructure/integrator/store/domain"
	"github.com/vfg2006/backoffice-api/internal/domain"
	"github.com/vfg2006/backoffice-api/pkg/utils"
)

// AllCurrencies desliga o filtro de moeda nas agregações de receita
const AllCurrencies = "ALL"

// Funções puras de agregação. Nenhuma delas faz I/O nem altera as coleções
// de entrada; registros nulos são ignorados, nunca tratados como erro.

// FilterQualifyingOrders retém apenas pedidos que contam para receita:
// status paid ou shipped, na moeda filtrada. Pedidos pending, cancelled e
// refunded ficam fora de todo cálculo de receita, inclusive da série mensal
// de indicadores.
func FilterQualifyingOrders(orders []*storedomain.Order, currency string) []*storedomain.Order {
	qualifying := make([]*storedomain.Order, 0, len(orders))

	for _, order := range orders {
		if order == nil {
			continue
		}

		status := domain.OrderStatus(order.Status)
		if status != domain.OrderStatusPaid && status != domain.OrderStatusShipped {
			continue
		}

		if currency != "" && currency != AllCurrencies && order.Currency != currency {
			continue
		}

		qualifying = append(qualifying, order)
	}

	return qualifying
}

// TotalRevenue soma os totais da coleção; totais ausentes contam como zero
func TotalRevenue(orders []*storedomain.Order) float64 {
	var total float64

	for _, order := range orders {
		if order == nil {
			continue
		}
		total += utils.NumberOrZero(order.Total)
	}

	return total
}

// AvgMonthlyByActiveMonths calcula a média aritmética da receita mensal
// considerando apenas os meses que têm ao menos um pedido qualificado.
// Meses sem pedido não entram no denominador. Sem meses ativos, retorna 0.
func AvgMonthlyByActiveMonths(orders []*storedomain.Order) float64 {
	monthTotals := map[string]float64{}

	for _, order := range orders {
		if order == nil {
			continue
		}
		monthTotals[utils.YearMonthKey(order.CreatedAt)] += utils.NumberOrZero(order.Total)
	}

	if len(monthTotals) == 0 {
		return 0
	}

	var sum float64
	for _, monthTotal := range monthTotals {
		sum += monthTotal
	}

	return sum / float64(len(monthTotals))
}

// MonthlyRevenueSeries agrupa TODOS os pedidos (sem filtro de status) pela
// chave ano-mês, somando os totais. A série preserva a ordem de primeira
// aparição de cada mês na coleção de origem, sem reordenar; o store devolve
// os pedidos em ordem cronológica e a série herda essa ordem.
func MonthlyRevenueSeries(orders []*storedomain.Order) []domain.MonthlyRevenuePoint {
	series := []domain.MonthlyRevenuePoint{}
	indexByMonth := map[string]int{}

	for _, order := range orders {
		if order == nil {
			continue
		}

		month := utils.YearMonthKey(order.CreatedAt)
		total := utils.NumberOrZero(order.Total)

		if idx, ok := indexByMonth[month]; ok {
			series[idx].Revenue += total
			continue
		}

		indexByMonth[month] = len(series)
		series = append(series, domain.MonthlyRevenuePoint{Month: month, Revenue: total})
	}

	return series
}

// TopProducts monta o ranking dos produtos mais vendidos: agrupa os itens
// de pedido por produto acumulando quantidade e receita (qty * price),
// junta nome e thumbnail da coleção de produtos e ordena pelo critério
// pedido. Produto sem cadastro recebe o rótulo sintético "#<id>". A
// ordenação é estável: empates preservam a ordem de primeira aparição.
func TopProducts(
	items []*storedomain.OrderItem,
	products []*storedomain.Product,
	metric domain.TopProductMetric,
	limit int,
) []domain.TopProduct {
	productsByID := make(map[int]*storedomain.Product, len(products))
	for _, product := range products {
		if product == nil {
			continue
		}
		productsByID[product.ID] = product
	}

	ranking := []domain.TopProduct{}
	indexByProduct := map[int]int{}

	for _, item := range items {
		if item == nil {
			continue
		}

		idx, ok := indexByProduct[item.ProductID]
		if !ok {
			entry := domain.TopProduct{
				ProductID: strconv.Itoa(item.ProductID),
				Name:      "#" + strconv.Itoa(item.ProductID),
			}
			if product, found := productsByID[item.ProductID]; found {
				entry.Name = product.Name
				entry.Thumbnail = product.Thumbnail
			}

			idx = len(ranking)
			indexByProduct[item.ProductID] = idx
			ranking = append(ranking, entry)
		}

		ranking[idx].Qty += item.Qty
		ranking[idx].Revenue += item.Qty * item.Price
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		if metric == domain.TopProductByQty {
			return ranking[i].Qty > ranking[j].Qty
		}
		return ranking[i].Revenue > ranking[j].Revenue
	})

	if limit > 0 && limit < len(ranking) {
		ranking = ranking[:limit]
	}

	return ranking
}

// ProductRatingHistogram agrupa os produtos pelo piso inteiro da nota.
// Produtos sem nota numérica definida ficam fora do histograma, de modo que
// a soma dos baldes é igual à quantidade de produtos com nota válida.
func ProductRatingHistogram(products []*storedomain.Product) []domain.RatingBucket {
	counts := map[int]int{}

	for _, product := range products {
		if product == nil || product.Rating == nil {
			continue
		}

		rating := *product.Rating
		if math.IsNaN(rating) {
			continue
		}

		counts[int(math.Floor(rating))]++
	}

	buckets := make([]domain.RatingBucket, 0, len(counts))
	for rating, count := range counts {
		buckets = append(buckets, domain.RatingBucket{Rating: rating, Count: count})
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Rating < buckets[j].Rating
	})

	return buckets
}

// OrderStatusHistogram conta pedidos por status, usando a string do registro
// sem normalização. Status ausente vira o balde de chave vazia, reproduzindo
// a entrada fielmente. A ordem de saída é a de primeira aparição de cada
// status na coleção.
func OrderStatusHistogram(orders []*storedomain.Order) []domain.StatusCount {
	statuses := []domain.StatusCount{}
	indexByStatus := map[string]int{}

	for _, order := range orders {
		if order == nil {
			continue
		}

		if idx, ok := indexByStatus[order.Status]; ok {
			statuses[idx].Count++
			continue
		}

		meta := domain.MetaForStatus(domain.OrderStatus(order.Status))
		indexByStatus[order.Status] = len(statuses)
		statuses = append(statuses, domain.StatusCount{
			Status: order.Status,
			Label:  meta.Label,
			Color:  meta.Color,
			Count:  1,
		})
	}

	return statuses
}

// OrdersGrowth calcula o crescimento mês a mês da quantidade de pedidos:
// (último - anterior) / anterior sobre as chaves ano-mês em ordem
// lexicográfica crescente. Retorna nulo com menos de dois meses distintos
// ou quando o mês anterior tem contagem zero.
func OrdersGrowth(orders []*storedomain.Order) *float64 {
	countsByMonth := map[string]int{}

	for _, order := range orders {
		if order == nil {
			continue
		}
		countsByMonth[utils.YearMonthKey(order.CreatedAt)]++
	}

	if len(countsByMonth) < 2 {
		return nil
	}

	months := make([]string, 0, len(countsByMonth))
	for month := range countsByMonth {
		months = append(months, month)
	}
	sort.Strings(months)

	latest := countsByMonth[months[len(months)-1]]
	previous := countsByMonth[months[len(months)-2]]

	if previous == 0 {
		return nil
	}

	growth := float64(latest-previous) / float64(previous)
	return &growth
}

// CustomerContinentDistribution agrupa clientes por continente via a tabela
// estática país -> continente. Países não mapeados, vazios ou ausentes
// somam no balde "others"; nenhum cliente fica de fora da contagem.
// A ordem de saída é a de primeira aparição de cada continente.
func CustomerContinentDistribution(customers []*storedomain.Customer) domain.CustomerDistribution {
	distribution := domain.CustomerDistribution{
		Continents: []domain.ContinentCount{},
	}
	indexByContinent := map[string]int{}

	for _, customer := range customers {
		if customer == nil {
			continue
		}

		continent := domain.ContinentForCountry(customer.Country)
		distribution.TotalCustomers++

		if idx, ok := indexByContinent[continent]; ok {
			distribution.Continents[idx].Count++
			continue
		}

		indexByContinent[continent] = len(distribution.Continents)
		distribution.Continents = append(distribution.Continents, domain.ContinentCount{
			Continent: continent,
			Count:     1,
		})
	}

	return distribution
}
