package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API do back office
const (
	// Erros de autenticação (AUTH_*)
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrUserNotFound          = "AUTH_002" // Usuário não encontrado
	ErrInvalidToken          = "AUTH_003" // Token inválido
	ErrUserAlreadyExists     = "AUTH_004" // Nome de usuário já cadastrado
	ErrInvalidInviteCode     = "AUTH_005" // Código de convite inválido
	ErrInsufficientPrivilege = "AUTH_006" // Perfil sem permissão para o recurso

	// Erros de validação (VAL_*)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de negócio (BUS_*)
	ErrRecordNotFound = "BUS_001" // Registro não encontrado no store
	ErrInvalidStatus  = "BUS_002" // Status de pedido fora da enumeração

	// Erros do servidor (SRV_*)
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrExternalService = "SRV_002" // Erro no data store externo
	ErrCommunication   = "SRV_003" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrInvalidInviteCode:     http.StatusForbidden,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrRecordNotFound:        http.StatusNotFound,
	ErrInvalidStatus:         http.StatusBadRequest,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
