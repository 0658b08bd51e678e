package provisioning

import (
	"errors"
	"fmt"
	"strings"
)

// Erros específicos para o provisionamento de obras
var (
	ErrRequisicaoInvalida = errors.New("requisição de provisionamento inválida")
	ErrCriacaoObra        = errors.New("erro ao criar a obra")
	ErrObraNaoEncontrada  = errors.New("obra não encontrada")
	ErrLimiteSinaleiros   = errors.New("obra já possui sinaleiro principal e reserva")
	ErrOperacaoBanco      = errors.New("erro de operação no banco de dados")
)

// ValidationIssue aponta um campo rejeitado na validação do provisionamento
type ValidationIssue struct {
	Campo  string `json:"campo"`
	Motivo string `json:"motivo"`
}

// ProvisioningError é um erro com contexto adicional para o provisionamento.
// Issues carrega a lista completa de problemas de validação, nunca apenas o
// primeiro encontrado.
type ProvisioningError struct {
	Err     error             // Erro base
	Code    string            // Código de erro para API
	Issues  []ValidationIssue // Problemas de validação (quando aplicável)
	Details string            // Detalhes adicionais
}

// Error implementa a interface error
func (e *ProvisioningError) Error() string {
	if len(e.Issues) > 0 {
		campos := make([]string, 0, len(e.Issues))
		for _, issue := range e.Issues {
			campos = append(campos, issue.Campo)
		}
		return fmt.Sprintf("%s: %s", e.Err.Error(), strings.Join(campos, ", "))
	}
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ProvisioningError) Unwrap() error {
	return e.Err
}

// NewProvisioningError cria um novo ProvisioningError
func NewProvisioningError(err error, code string, details string) *ProvisioningError {
	return &ProvisioningError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewValidationError cria um erro de validação com a lista completa de
// problemas encontrados
func NewValidationError(code string, issues []ValidationIssue) *ProvisioningError {
	return &ProvisioningError{
		Err:    ErrRequisicaoInvalida,
		Code:   code,
		Issues: issues,
	}
}
