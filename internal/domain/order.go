package domain

// OrderStatus representa o status de um pedido no back office
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusRefunded  OrderStatus = "refunded"
)

// AllowedStatusTransitions define a máquina de estados consultiva dos pedidos.
// Transições fora da tabela são registradas como aviso, mas não bloqueadas
// (o store externo é a autoridade final sobre os dados).
var AllowedStatusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusPaid, OrderStatusCancelled},
	OrderStatusPaid:      {OrderStatusShipped, OrderStatusRefunded},
	OrderStatusShipped:   {},
	OrderStatusCancelled: {},
	OrderStatusRefunded:  {},
}

// IsAllowedTransition verifica se a transição de status consta na tabela consultiva
func IsAllowedTransition(from, to OrderStatus) bool {
	for _, next := range AllowedStatusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// StatusMeta contém o rótulo e a cor usados pelo front para cada status
type StatusMeta struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// StatusMetaByStatus é configuração estática imutável; status desconhecidos
// devem receber DefaultStatusMeta
var StatusMetaByStatus = map[OrderStatus]StatusMeta{
	OrderStatusPaid:      {Label: "Paid", Color: "#EAB308"},
	OrderStatusShipped:   {Label: "Shipped", Color: "#3B82F6"},
	OrderStatusCancelled: {Label: "Cancelled", Color: "#EF4444"},
	OrderStatusRefunded:  {Label: "Refunded", Color: "#22C55E"},
	OrderStatusPending:   {Label: "Pending", Color: "#A855F7"},
}

// DefaultStatusMeta é usada para status fora da enumeração
var DefaultStatusMeta = StatusMeta{Label: "", Color: "#9CA3AF"}

// MetaForStatus retorna os metadados de exibição de um status
func MetaForStatus(status OrderStatus) StatusMeta {
	if meta, ok := StatusMetaByStatus[status]; ok {
		return meta
	}
	meta := DefaultStatusMeta
	meta.Label = string(status)
	return meta
}

// OrderListFilters são os filtros aceitos pela listagem de pedidos
type OrderListFilters struct {
	Status        *OrderStatus
	CustomerID    *int
	PaymentMethod *string
	DateFrom      *string // ISO-8601, limite inferior inclusivo
	DateTo        *string // ISO-8601, limite superior inclusivo
	Page          int
	Limit         int
	Sort          string
	Order         string // asc | desc
}
