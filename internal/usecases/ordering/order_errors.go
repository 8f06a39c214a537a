package ordering

import "errors"

// Erros de negócio da gestão de pedidos
var (
	ErrOrderNotFound    = errors.New("pedido não encontrado")
	ErrInvalidStatus    = errors.New("status de pedido inválido")
	ErrSearchSuperseded = errors.New("busca superada por uma consulta mais recente")
)
