package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API
const (
	// Erros de autenticação (1000-1999)
	ErrInvalidToken          = "AUTH_001" // Token inválido
	ErrExpiredToken          = "AUTH_002" // Token expirado
	ErrInsufficientPrivilege = "AUTH_003" // Privilégios insuficientes

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de obras e custos (3000-3999)
	ErrObraNotFound        = "OBR_001" // Obra não encontrada
	ErrCustoNotFound       = "OBR_002" // Custo mensal não encontrado
	ErrMonthConflict       = "OBR_003" // Mês destino já possui custos
	ErrNonSequentialMonth  = "OBR_004" // Mês fora de sequência na linhagem
	ErrBudgetNotApproved   = "OBR_005" // Orçamento não aprovado
	ErrSinaleiroLimit      = "OBR_006" // Obra já possui principal e reserva
	ErrIncompleteDocuments = "OBR_007" // Documentos do sinaleiro incompletos
	ErrSinaleiroNotFound   = "OBR_008" // Sinaleiro não encontrado
	ErrConcurrentUpdate    = "OBR_009" // Registro alterado por outra escrita

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrObraNotFound:          http.StatusNotFound,
	ErrCustoNotFound:         http.StatusNotFound,
	ErrSinaleiroNotFound:     http.StatusNotFound,
	ErrMonthConflict:         http.StatusConflict,
	ErrNonSequentialMonth:    http.StatusUnprocessableEntity,
	ErrBudgetNotApproved:     http.StatusUnprocessableEntity,
	ErrSinaleiroLimit:        http.StatusConflict,
	ErrIncompleteDocuments:   http.StatusUnprocessableEntity,
	ErrConcurrentUpdate:      http.StatusConflict,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
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
