package domain

import "time"

// StatusOrcamento é o estado comercial de um orçamento
type StatusOrcamento string

const (
	StatusOrcamentoRascunho  StatusOrcamento = "rascunho"
	StatusOrcamentoEnviado   StatusOrcamento = "enviado"
	StatusOrcamentoAprovado  StatusOrcamento = "aprovado"
	StatusOrcamentoRecusado  StatusOrcamento = "recusado"
	StatusOrcamentoCancelado StatusOrcamento = "cancelado"
)

// Orcamento é a proposta comercial aprovada cujas linhas semeiam o ledger
// de custos de uma obra. Este serviço só lê orçamentos, nunca os altera.
type Orcamento struct {
	ID        string          `json:"id"`
	ClienteID string          `json:"cliente_id"`
	Status    StatusOrcamento `json:"status"`
	Itens     []OrcamentoItem `json:"itens"`
	CreatedAt time.Time       `json:"created_at"`
}

// OrcamentoItem é uma linha mensal do orçamento
type OrcamentoItem struct {
	ID          string  `json:"id"`
	Descricao   string  `json:"descricao"`
	ValorMensal float64 `json:"valor_mensal"`
}
