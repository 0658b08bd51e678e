package ledger

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto do ledger de custos
var (
	// Erros de validação
	ErrQuantidadeInvalida = errors.New("quantidade não pode ser negativa")
	ErrMesInvalido        = errors.New("mês inválido")

	// Erros de consulta
	ErrCustoNaoEncontrado = errors.New("custo mensal não encontrado")
	ErrObraNaoEncontrada  = errors.New("obra não encontrada")

	// Erros de sequência
	ErrLinhagemForaDeSequencia = errors.New("entrada fora de sequência na linhagem do custo")

	// Erros de concorrência
	ErrAtualizacaoConcorrente = errors.New("custo alterado por outra atualização")

	// Erros de banco de dados
	ErrOperacaoBanco = errors.New("erro de operação no banco de dados")
)

// LedgerError é um erro com contexto adicional para o ledger
type LedgerError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	CustoID string // ID do custo envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *LedgerError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError cria um novo LedgerError
func NewLedgerError(err error, code string, details string) *LedgerError {
	return &LedgerError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewLedgerErrorWithID cria um novo LedgerError com o ID do custo
func NewLedgerErrorWithID(err error, code string, custoID string, details string) *LedgerError {
	return &LedgerError{
		Err:     err,
		Code:    code,
		CustoID: custoID,
		Details: details,
	}
}
