package domain

import "time"

// StatusObra é o estado operacional de uma obra
type StatusObra string

const (
	StatusObraPlanejamento StatusObra = "Planejamento"
	StatusObraEmAndamento  StatusObra = "Em Andamento"
	StatusObraPausada      StatusObra = "Pausada"
	StatusObraConcluida    StatusObra = "Concluída"
	StatusObraCancelada    StatusObra = "Cancelada"
)

// TiposObra aceitos no cadastro
var TiposObra = []string{"Residencial", "Comercial", "Industrial", "Infraestrutura"}

// Obra é um canteiro de obras atendido pela locação de gruas.
//
// CNO, ART e apólice (número + certificado) são os identificadores
// regulatórios exigidos para a obra ser considerada totalmente provisionada.
// Eles podem ser anexados depois da criação via atualização parcial.
type Obra struct {
	ID             string     `json:"id"`
	Nome           string     `json:"nome"`
	ClienteID      string     `json:"cliente_id"`
	Endereco       string     `json:"endereco"`
	Cidade         string     `json:"cidade"`
	Estado         string     `json:"estado"`
	Cep            string     `json:"cep,omitempty"`
	Tipo           string     `json:"tipo"`
	Status         StatusObra `json:"status"`
	Descricao      string     `json:"descricao,omitempty"`
	DataInicio     *time.Time `json:"data_inicio,omitempty"`
	DataFim        *time.Time `json:"data_fim,omitempty"`
	OrcamentoID    string     `json:"orcamento_id,omitempty"`
	Cno            string     `json:"cno"`
	CnoArquivo     string     `json:"cno_arquivo,omitempty"`
	ArtNumero      string     `json:"art_numero"`
	ArtArquivo     string     `json:"art_arquivo,omitempty"`
	ApoliceNumero  string     `json:"apolice_numero"`
	ApoliceArquivo string     `json:"apolice_arquivo,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// AtualizarDocumentosObraRequest anexa identificadores regulatórios a uma
// obra existente sem revalidar o restante do cadastro
type AtualizarDocumentosObraRequest struct {
	ObraID         string  `json:"-"`
	Cno            *string `json:"cno,omitempty"`
	CnoArquivo     *string `json:"cno_arquivo,omitempty"`
	ArtNumero      *string `json:"art_numero,omitempty"`
	ArtArquivo     *string `json:"art_arquivo,omitempty"`
	ApoliceNumero  *string `json:"apolice_numero,omitempty"`
	ApoliceArquivo *string `json:"apolice_arquivo,omitempty"`
}

// GruaVinculo descreve uma grua a vincular à obra no provisionamento
type GruaVinculo struct {
	GruaID             string  `json:"grua_id"`
	ValorLocacaoMensal float64 `json:"valor_locacao_mensal"`
	TipoBase           string  `json:"tipo_base,omitempty"`
	AlturaFinal        float64 `json:"altura_final,omitempty"`
}

// FuncionarioVinculo descreve um funcionário a alocar na obra
type FuncionarioVinculo struct {
	FuncionarioID string `json:"funcionario_id"`
	Cargo         string `json:"cargo"`
	Nome          string `json:"nome"`
	GruaID        string `json:"grua_id,omitempty"`
	Supervisor    bool   `json:"supervisor,omitempty"`
}

// SupervisorObra é uma pessoa autorizada a aprovar apontamentos de horas
type SupervisorObra struct {
	FuncionarioID string `json:"funcionario_id"`
	Nome          string `json:"nome"`
	Email         string `json:"email,omitempty"`
}

// CategoriaArquivo identifica o tipo de documento da obra a subir
type CategoriaArquivo string

const (
	ArquivoCno              CategoriaArquivo = "cno"
	ArquivoArt              CategoriaArquivo = "art"
	ArquivoApolice          CategoriaArquivo = "apolice"
	ArquivoManualTecnico    CategoriaArquivo = "manual_tecnico"
	ArquivoTermoEntrega     CategoriaArquivo = "termo_entrega"
	ArquivoPlanoCarga       CategoriaArquivo = "plano_carga"
	ArquivoLaudoAterramento CategoriaArquivo = "laudo_aterramento"
)

// ArquivoUpload é um arquivo submetido junto ao provisionamento
type ArquivoUpload struct {
	Categoria CategoriaArquivo `json:"categoria"`
	Nome      string           `json:"nome"`
	Conteudo  []byte           `json:"conteudo"`
}
