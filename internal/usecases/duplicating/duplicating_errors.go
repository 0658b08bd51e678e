package duplicating

import (
	"errors"
	"fmt"
)

// Erros específicos para a replicação de meses do ledger
var (
	ErrMesInvalido       = errors.New("mês inválido")
	ErrMesOrigemVazio    = errors.New("mês de origem não possui custos")
	ErrMesDestinoOcupado = errors.New("mês de destino já possui custos")
	ErrMesForaDeOrdem    = errors.New("mês de destino precisa ser posterior aos meses existentes")
	ErrOperacaoBanco     = errors.New("erro de operação no banco de dados")
)

// DuplicationError é um erro com contexto adicional para replicações
type DuplicationError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	ObraID  string // ID da obra envolvida
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *DuplicationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *DuplicationError) Unwrap() error {
	return e.Err
}

// NewDuplicationError cria um novo DuplicationError
func NewDuplicationError(err error, code string, obraID string, details string) *DuplicationError {
	return &DuplicationError{
		Err:     err,
		Code:    code,
		ObraID:  obraID,
		Details: details,
	}
}
