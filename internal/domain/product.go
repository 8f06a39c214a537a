package domain

// ProductListFilters são os filtros aceitos pela listagem de produtos.
// Quando Search não é vazio, a listagem busca o conjunto completo com os
// filtros de servidor e aplica o texto livre e a paginação em memória.
type ProductListFilters struct {
	Search   string
	Category string
	Active   *bool
	LowStock bool // estoque abaixo de dez unidades
	Page     int
	Limit    int
	Sort     string
	Order    string // asc | desc
}
