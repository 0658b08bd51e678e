package domain

import (
	"fmt"
	"time"
)

// TipoCusto indica a origem de uma linha de custo mensal
type TipoCusto string

const (
	// TipoCustoContrato marca linhas vindas do orçamento aprovado original
	TipoCustoContrato TipoCusto = "contrato"
	// TipoCustoAditivo marca linhas adicionadas depois da aprovação
	TipoCustoAditivo TipoCusto = "aditivo"
)

// Unidades aceitas para uma linha de custo, conforme o cadastro comercial
var UnidadesValidas = []string{"mês", "und", "und.", "km", "h", "kg", "m²", "m³"}

// CustoMensal representa uma linha de custo de uma obra em um mês (YYYY-MM).
//
// Os campos orçados e descritivos são imutáveis depois da importação. Os
// acumulados correm por linhagem (obra + item + tipo) através dos meses, e os
// saldos são sempre recalculados a partir de orçado e acumulado — nunca
// gravados de forma independente.
type CustoMensal struct {
	ID                  string    `json:"id"`
	ObraID              string    `json:"obra_id"`
	Item                string    `json:"item"`
	Descricao           string    `json:"descricao"`
	Unidade             string    `json:"unidade"`
	QuantidadeOrcamento float64   `json:"quantidade_orcamento"`
	ValorUnitario       float64   `json:"valor_unitario"`
	TotalOrcamento      float64   `json:"total_orcamento"`
	QuantidadeRealizada float64   `json:"quantidade_realizada"`
	ValorRealizado      float64   `json:"valor_realizado"`
	QuantidadeAcumulada float64   `json:"quantidade_acumulada"`
	ValorAcumulado      float64   `json:"valor_acumulado"`
	QuantidadeSaldo     float64   `json:"quantidade_saldo"`
	ValorSaldo          float64   `json:"valor_saldo"`
	Tipo                TipoCusto `json:"tipo"`
	Mes                 string    `json:"mes"`
	Versao              int       `json:"versao"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// LineageKey identifica a linha lógica do orçamento que esta entrada
// representa através dos meses. Entradas de meses diferentes com a mesma
// chave pertencem à mesma linhagem.
func (c *CustoMensal) LineageKey() string {
	return fmt.Sprintf("%s:%s:%s", c.ObraID, c.Item, c.Tipo)
}

// AtualizarRealizadoRequest carrega a atualização de quantidade realizada
// de um custo mensal
type AtualizarRealizadoRequest struct {
	QuantidadeRealizada float64  `json:"quantidade_realizada"`
	ValorRealizado      *float64 `json:"valor_realizado,omitempty"`
}

// ReplicarCustosRequest replica os custos de um mês para o mês seguinte
type ReplicarCustosRequest struct {
	ObraID     string `json:"obra_id"`
	MesOrigem  string `json:"mes_origem"`
	MesDestino string `json:"mes_destino"`
}

// ReplicarCustosResponse descreve o resultado de uma replicação de mês
type ReplicarCustosResponse struct {
	Replicados int    `json:"replicados"`
	MesOrigem  string `json:"mes_origem"`
	MesDestino string `json:"mes_destino"`
	ObraID     string `json:"obra_id"`
}
