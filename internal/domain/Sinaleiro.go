package domain

import "time"

// TipoSinaleiro distingue o sinaleiro titular do reserva
type TipoSinaleiro string

const (
	SinaleiroPrincipal TipoSinaleiro = "principal"
	SinaleiroReserva   TipoSinaleiro = "reserva"
)

// Afiliacao indica a quem o sinaleiro está vinculado. O valor desconhecida
// é tratado de forma conservadora: exige a mesma validação de documentos
// que um sinaleiro do cliente.
type Afiliacao string

const (
	AfiliacaoInterna      Afiliacao = "interna"
	AfiliacaoCliente      Afiliacao = "cliente"
	AfiliacaoDesconhecida Afiliacao = "desconhecida"
)

// RequerValidacaoDocumentos informa se a afiliação obriga a checagem de
// documentos antes do vínculo ser considerado regular
func (a Afiliacao) RequerValidacaoDocumentos() bool {
	return a != AfiliacaoInterna
}

// TipoDocumento identifica um documento de identidade exigido do sinaleiro
type TipoDocumento string

const (
	DocumentoRgFrente           TipoDocumento = "rg_frente"
	DocumentoRgVerso            TipoDocumento = "rg_verso"
	DocumentoComprovanteVinculo TipoDocumento = "comprovante_vinculo"
)

// DocumentosObrigatorios são os três documentos exigidos para um sinaleiro
// não-interno ser considerado regular
var DocumentosObrigatorios = []TipoDocumento{
	DocumentoRgFrente,
	DocumentoRgVerso,
	DocumentoComprovanteVinculo,
}

// NomesDocumentos traduz o tipo de documento para exibição
var NomesDocumentos = map[TipoDocumento]string{
	DocumentoRgFrente:           "RG (Frente)",
	DocumentoRgVerso:            "RG (Verso)",
	DocumentoComprovanteVinculo: "Comprovante de Vínculo",
}

// Sinaleiro é a pessoa certificada que orienta as operações de içamento da
// grua em uma obra. Uma obra mantém no máximo dois: principal e reserva.
type Sinaleiro struct {
	ID        string        `json:"id"`
	ObraID    string        `json:"obra_id"`
	Nome      string        `json:"nome"`
	RgCpf     string        `json:"rg_cpf"`
	Telefone  string        `json:"telefone,omitempty"`
	Email     string        `json:"email,omitempty"`
	Tipo      TipoSinaleiro `json:"tipo"`
	Afiliacao Afiliacao     `json:"afiliacao"`
	CreatedAt time.Time     `json:"created_at"`
}

// SinaleiroCandidato é um sinaleiro ainda não persistido, submetido no
// provisionamento da obra ou no vínculo em lote
type SinaleiroCandidato struct {
	Nome      string        `json:"nome"`
	RgCpf     string        `json:"rg_cpf"`
	Telefone  string        `json:"telefone,omitempty"`
	Email     string        `json:"email,omitempty"`
	Tipo      TipoSinaleiro `json:"tipo"`
	Afiliacao Afiliacao     `json:"afiliacao"`
}

// ValidacaoDocumentos é o resultado da checagem de completude dos
// documentos de um sinaleiro
type ValidacaoDocumentos struct {
	Completo bool            `json:"completo"`
	Faltando []TipoDocumento `json:"documentos_faltando,omitempty"`
}

// VincularSinaleirosRequest vincula um lote de sinaleiros a uma obra
type VincularSinaleirosRequest struct {
	ObraID     string               `json:"-"`
	Sinaleiros []SinaleiroCandidato `json:"sinaleiros"`
}

// VincularSinaleirosResponse descreve o desfecho do vínculo em lote
type VincularSinaleirosResponse struct {
	Vinculados []*Sinaleiro            `json:"vinculados"`
	Falhas     []FalhaProvisionamento  `json:"falhas,omitempty"`
	Pendencias []PendenciaConformidade `json:"pendencias_conformidade,omitempty"`
}
