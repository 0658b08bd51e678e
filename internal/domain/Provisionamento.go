package domain

import "time"

// EtapaProvisionamento identifica o passo do provisionamento em que um
// resultado parcial foi produzido
type EtapaProvisionamento string

const (
	EtapaValidacao           EtapaProvisionamento = "validacao"
	EtapaCriacaoObra         EtapaProvisionamento = "criacao_obra"
	EtapaImportacaoOrcamento EtapaProvisionamento = "importacao_orcamento"
	EtapaUploadDocumentos    EtapaProvisionamento = "upload_documentos"
	EtapaVinculoGruas        EtapaProvisionamento = "vinculo_gruas"
	EtapaVinculoFuncionarios EtapaProvisionamento = "vinculo_funcionarios"
	EtapaVinculoResponsaveis EtapaProvisionamento = "vinculo_responsaveis"
	EtapaVinculoSinaleiros   EtapaProvisionamento = "vinculo_sinaleiros"
	EtapaVinculoSupervisores EtapaProvisionamento = "vinculo_supervisores"
)

// StatusProvisionamento é o desfecho de um provisionamento de obra
type StatusProvisionamento string

const (
	// ProvisionamentoConcluido indica que tudo foi criado e vinculado sem
	// falhas nem pendências de conformidade
	ProvisionamentoConcluido StatusProvisionamento = "concluido"
	// ProvisionamentoDegradado indica que a obra existe, mas com falhas
	// parciais ou pendências que o chamador precisa tratar
	ProvisionamentoDegradado StatusProvisionamento = "degradado"
)

// CriarObraRequest é a requisição completa de provisionamento de uma obra
// com suas entidades aninhadas. Cada sub-lista é validada de forma
// independente; listas ausentes são legítimas.
type CriarObraRequest struct {
	Nome       string     `json:"nome"`
	ClienteID  string     `json:"cliente_id"`
	Endereco   string     `json:"endereco"`
	Cidade     string     `json:"cidade"`
	Estado     string     `json:"estado"`
	Cep        string     `json:"cep,omitempty"`
	Tipo       string     `json:"tipo"`
	Descricao  string     `json:"descricao,omitempty"`
	DataInicio *time.Time `json:"data_inicio,omitempty"`

	OrcamentoID string `json:"orcamento_id,omitempty"`
	MesInicial  string `json:"mes_inicial,omitempty"`

	Cno           string `json:"cno"`
	ArtNumero     string `json:"art_numero"`
	ApoliceNumero string `json:"apolice_numero"`

	Arquivos []ArquivoUpload `json:"arquivos,omitempty"`

	Gruas        []GruaVinculo        `json:"gruas,omitempty"`
	Funcionarios []FuncionarioVinculo `json:"funcionarios,omitempty"`

	// ResponsavelCliente é o responsável técnico indicado pelo cliente,
	// opcional na criação
	ResponsavelCliente *ResponsavelTecnicoCandidato  `json:"responsavel_cliente,omitempty"`
	Responsaveis       []ResponsavelTecnicoCandidato `json:"responsaveis,omitempty"`

	Sinaleiros   []SinaleiroCandidato `json:"sinaleiros,omitempty"`
	Supervisores []SupervisorObra     `json:"supervisores,omitempty"`
}

// FalhaProvisionamento descreve uma falha parcial não-fatal
type FalhaProvisionamento struct {
	Etapa    EtapaProvisionamento `json:"etapa"`
	Entidade string               `json:"entidade"`
	Motivo   string               `json:"motivo"`
}

// PendenciaConformidade marca um sinaleiro vinculado cuja documentação está
// incompleta. O vínculo não é desfeito, mas a obra não pode ser considerada
// regular até a pendência ser sanada.
type PendenciaConformidade struct {
	SinaleiroID   string          `json:"sinaleiro_id"`
	SinaleiroNome string          `json:"sinaleiro_nome"`
	Faltando      []TipoDocumento `json:"documentos_faltando"`
}

// ProvisioningResult é a resposta estruturada do provisionamento: enumera o
// que deu certo, o que degradou e o que bloqueia a conformidade — nunca um
// booleano simples.
type ProvisioningResult struct {
	Status           StatusProvisionamento       `json:"status"`
	ObraID           string                      `json:"obra_id"`
	Documentos       map[CategoriaArquivo]string `json:"documentos,omitempty"`
	CustosImportados int                         `json:"custos_importados"`
	Falhas           []FalhaProvisionamento      `json:"falhas,omitempty"`
	Pendencias       []PendenciaConformidade     `json:"pendencias_conformidade,omitempty"`
}
