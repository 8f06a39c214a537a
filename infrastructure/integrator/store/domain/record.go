package storedomain

// Tipos de registro servidos pelo data store de coleções (estilo json-server).
// Os registros são snapshots imutáveis: o store é o único dono da mutação,
// este serviço nunca altera um registro recebido.

// Order é um pedido da coleção "orders".
// Total é ponteiro porque registros antigos podem não ter o campo;
// ausência conta como zero nas agregações.
type Order struct {
	ID            int      `json:"id,omitempty"`
	CustomerID    int      `json:"customerId,omitempty"`
	Status        string   `json:"status,omitempty"`
	Total         *float64 `json:"total,omitempty"`
	Currency      string   `json:"currency,omitempty"`
	PaymentMethod string   `json:"paymentMethod,omitempty"`
	CreatedAt     string   `json:"createdAt,omitempty"`
}

// OrderItem é uma linha de pedido da coleção "orderItems"
type OrderItem struct {
	ID        int     `json:"id,omitempty"`
	OrderID   int     `json:"orderId,omitempty"`
	ProductID int     `json:"productId,omitempty"`
	Qty       float64 `json:"qty,omitempty"`
	Price     float64 `json:"price,omitempty"`
}

// Product é um produto da coleção "products".
// Rating é ponteiro para distinguir nota ausente de nota zero.
type Product struct {
	ID        int      `json:"id,omitempty"`
	Name      string   `json:"name,omitempty"`
	SKU       string   `json:"sku,omitempty"`
	Rating    *float64 `json:"rating,omitempty"`
	Thumbnail string   `json:"thumbnail,omitempty"`
	Category  string   `json:"category,omitempty"`
	Active    bool     `json:"active"`
	Stock     int      `json:"stock"`
}

// Customer é um cliente da coleção "customers"
type Customer struct {
	ID        int    `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	Country   string `json:"country,omitempty"`
	Gender    string `json:"gender,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// User é um usuário do back office na coleção "users"
type User struct {
	ID        int    `json:"id,omitempty"`
	Username  string `json:"username,omitempty"`
	Password  string `json:"password,omitempty"`
	Role      string `json:"role,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Settings é o documento único da coleção "settings"
type Settings struct {
	InviteCode string `json:"inviteCode,omitempty"`
}

// OrderListParams são os filtros da listagem paginada de pedidos.
// DateFrom/DateTo usam os operadores *_gte/*_lte do store sobre createdAt.
type OrderListParams struct {
	Status        string
	CustomerID    *int
	PaymentMethod string
	DateFrom      string
	DateTo        string
	Page          int
	Limit         int
	Sort          string
	Order         string
}

// ProductListParams são os filtros da listagem de produtos.
// Quando LowStock é verdadeiro aplica-se stock_lte=9.
// Page/Limit iguais a zero listam o conjunto completo (modo busca).
type ProductListParams struct {
	Category string
	Active   *bool
	LowStock bool
	Page     int
	Limit    int
	Sort     string
	Order    string
}
