package gatekeeping

import (
	"errors"
	"fmt"
)

// Erros específicos para a validação de documentos de sinaleiros
var (
	ErrSinaleiroNaoEncontrado = errors.New("sinaleiro não encontrado")
	ErrConsultaDocumentos     = errors.New("não foi possível consultar os documentos do sinaleiro")
	ErrOperacaoBanco          = errors.New("erro de operação no banco de dados")
)

// GateError é um erro com contexto adicional para o portão de documentos
type GateError struct {
	Err         error  // Erro base
	Code        string // Código de erro para API
	SinaleiroID string // ID do sinaleiro envolvido
	Details     string // Detalhes adicionais
}

// Error implementa a interface error
func (e *GateError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *GateError) Unwrap() error {
	return e.Err
}

// NewGateError cria um novo GateError
func NewGateError(err error, code string, sinaleiroID string, details string) *GateError {
	return &GateError{
		Err:         err,
		Code:        code,
		SinaleiroID: sinaleiroID,
		Details:     details,
	}
}
