package domain

import "time"

// CategoriaResponsavel descreve a área de responsabilidade técnica
type CategoriaResponsavel string

const (
	CategoriaEquipamento      CategoriaResponsavel = "equipamento"
	CategoriaManutencao       CategoriaResponsavel = "manutencao"
	CategoriaMontagemOperacao CategoriaResponsavel = "montagem_operacao"
	CategoriaAdicional        CategoriaResponsavel = "adicional"
)

// ResponsavelTecnico é o profissional habilitado formalmente responsável por
// um aspecto de engenharia da obra ou do equipamento. Para a categoria
// adicional, AreaAdicional complementa o nome exibido.
type ResponsavelTecnico struct {
	ID            string               `json:"id"`
	ObraID        string               `json:"obra_id"`
	Nome          string               `json:"nome"`
	CpfCnpj       string               `json:"cpf_cnpj"`
	Crea          string               `json:"crea,omitempty"`
	Email         string               `json:"email,omitempty"`
	Telefone      string               `json:"telefone,omitempty"`
	Categoria     CategoriaResponsavel `json:"categoria"`
	AreaAdicional string               `json:"area_adicional,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
}

// NomeExibicao devolve o nome com o rótulo da área para categorias adicionais
func (r *ResponsavelTecnico) NomeExibicao() string {
	if r.Categoria == CategoriaAdicional && r.AreaAdicional != "" {
		return r.Nome + " (" + r.AreaAdicional + ")"
	}
	return r.Nome
}

// ResponsavelTecnicoCandidato é um responsável submetido no provisionamento
type ResponsavelTecnicoCandidato struct {
	Nome          string               `json:"nome"`
	CpfCnpj       string               `json:"cpf_cnpj"`
	Crea          string               `json:"crea,omitempty"`
	Email         string               `json:"email,omitempty"`
	Telefone      string               `json:"telefone,omitempty"`
	Categoria     CategoriaResponsavel `json:"categoria"`
	AreaAdicional string               `json:"area_adicional,omitempty"`
}
