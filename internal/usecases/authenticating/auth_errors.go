package authenticating

import "errors"

// Erros de autenticação do back office
var (
	ErrInvalidCredentials  = errors.New("credenciais inválidas")
	ErrUserNotFound        = errors.New("usuário não encontrado")
	ErrUserAlreadyExists   = errors.New("nome de usuário já cadastrado")
	ErrInvalidInviteCode   = errors.New("código de convite inválido")
	ErrInvalidToken        = errors.New("token inválido")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
)
