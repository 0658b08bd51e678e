package importing

import (
	"errors"
	"fmt"
)

// Erros específicos para a importação de orçamentos
var (
	ErrOrcamentoNaoEncontrado = errors.New("orçamento não encontrado")
	ErrOrcamentoNaoAprovado   = errors.New("orçamento não está aprovado")
	ErrOrcamentoVazio         = errors.New("orçamento não possui linhas a importar")
	ErrMesInvalido            = errors.New("mês inicial inválido")
	ErrMesOcupado             = errors.New("a obra já possui custos para o mês inicial")
	ErrOperacaoBanco          = errors.New("erro de operação no banco de dados")
)

// ImportError é um erro com contexto adicional para importações
type ImportError struct {
	Err         error  // Erro base
	Code        string // Código de erro para API
	OrcamentoID string // ID do orçamento envolvido
	Details     string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ImportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ImportError) Unwrap() error {
	return e.Err
}

// NewImportError cria um novo ImportError
func NewImportError(err error, code string, orcamentoID string, details string) *ImportError {
	return &ImportError{
		Err:         err,
		Code:        code,
		OrcamentoID: orcamentoID,
		Details:     details,
	}
}
