package provisioning

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	arquivosmocks "github.com/gmcamargo/obra-ledger-api/infrastructure/integrator/arquivos/mocks"
	"github.com/gmcamargo/obra-ledger-api/infrastructure/repository/mocks"
	"github.com/gmcamargo/obra-ledger-api/internal/domain"
	"github.com/gmcamargo/obra-ledger-api/internal/usecases/gatekeeping"
	"github.com/gmcamargo/obra-ledger-api/internal/usecases/importing"
)

type provisioningMocks struct {
	obraRepo        *mocks.MockObraRepository
	sinaleiroRepo   *mocks.MockSinaleiroRepository
	gruaRepo        *mocks.MockGruaRepository
	funcionarioRepo *mocks.MockFuncionarioRepository
	responsavelRepo *mocks.MockResponsavelTecnicoRepository
	orcamentoRepo   *mocks.MockOrcamentoRepository
	custoRepo       *mocks.MockCustoMensalRepository
	arquivosService *arquivosmocks.MockService
}

func newProvisioningService(ctrl *gomock.Controller) (*Service, *provisioningMocks) {
	m := &provisioningMocks{
		obraRepo:        mocks.NewMockObraRepository(ctrl),
		sinaleiroRepo:   mocks.NewMockSinaleiroRepository(ctrl),
		gruaRepo:        mocks.NewMockGruaRepository(ctrl),
		funcionarioRepo: mocks.NewMockFuncionarioRepository(ctrl),
		responsavelRepo: mocks.NewMockResponsavelTecnicoRepository(ctrl),
		orcamentoRepo:   mocks.NewMockOrcamentoRepository(ctrl),
		custoRepo:       mocks.NewMockCustoMensalRepository(ctrl),
		arquivosService: arquivosmocks.NewMockService(ctrl),
	}

	service := NewService(
		m.obraRepo,
		m.sinaleiroRepo,
		m.gruaRepo,
		m.funcionarioRepo,
		m.responsavelRepo,
		m.arquivosService,
		gatekeeping.NewService(m.sinaleiroRepo, m.arquivosService),
		importing.NewService(m.orcamentoRepo, m.custoRepo),
	)

	return service, m
}

func requisicaoMinima() *domain.CriarObraRequest {
	return &domain.CriarObraRequest{
		Nome:          "Residencial Alto da Serra",
		ClienteID:     "cl0001",
		Endereco:      "Av. das Torres, 1200",
		Cidade:        "Belo Horizonte",
		Estado:        "MG",
		Tipo:          "Residencial",
		Cno:           "12.345.67890/26",
		ArtNumero:     "ART-2026-0001",
		ApoliceNumero: "AP-88231",
		Arquivos: []domain.ArquivoUpload{
			{Categoria: domain.ArquivoArt, Nome: "art.pdf", Conteudo: []byte("art")},
			{Categoria: domain.ArquivoApolice, Nome: "apolice.pdf", Conteudo: []byte("apolice")},
		},
	}
}

// expectUploadCertificados cobre o envio dos certificados de ART e apólice
// que toda requisição válida carrega
func expectUploadCertificados(m *provisioningMocks) {
	m.arquivosService.EXPECT().
		UploadObraArquivo(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("https://arquivos.internal/doc.pdf", nil).
		Times(2)
	m.obraRepo.EXPECT().AtualizarDocumentos(gomock.Any(), gomock.Any()).Return(nil)
}

func TestCriarObra(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newProvisioningService(ctrl)
	ctx := context.Background()

	tests := []struct {
		name     string
		req      *domain.CriarObraRequest
		setup    func()
		validate func(t *testing.T, result *domain.ProvisioningResult, err error)
	}{
		{
			name: "Requisição inválida - deve devolver todos os problemas de uma vez",
			req: &domain.CriarObraRequest{
				Tipo:        "Galpão",
				OrcamentoID: "or0001",
				Sinaleiros: []domain.SinaleiroCandidato{
					{Nome: "João", Tipo: domain.SinaleiroPrincipal},
					{Nome: "Pedro", Tipo: domain.SinaleiroPrincipal},
				},
			},
			setup: func() {},
			validate: func(t *testing.T, result *domain.ProvisioningResult, err error) {
				assert.Nil(t, result)

				var provErr *ProvisioningError
				assert.ErrorAs(t, err, &provErr)

				campos := make([]string, 0, len(provErr.Issues))
				for _, issue := range provErr.Issues {
					campos = append(campos, issue.Campo)
				}
				assert.Contains(t, campos, "nome")
				assert.Contains(t, campos, "cliente_id")
				assert.Contains(t, campos, "endereco")
				assert.Contains(t, campos, "cidade")
				assert.Contains(t, campos, "estado")
				assert.Contains(t, campos, "tipo")
				assert.Contains(t, campos, "cno")
				assert.Contains(t, campos, "art_numero")
				assert.Contains(t, campos, "apolice_numero")
				assert.Contains(t, campos, "art_arquivo")
				assert.Contains(t, campos, "apolice_arquivo")
				assert.Contains(t, campos, "mes_inicial")
				assert.Contains(t, campos, "sinaleiros[1].tipo")
			},
		},
		{
			name: "Identificadores regulatórios ausentes - validação barra a criação",
			req: &domain.CriarObraRequest{
				Nome:      "Residencial Alto da Serra",
				ClienteID: "cl0001",
				Endereco:  "Av. das Torres, 1200",
				Cidade:    "Belo Horizonte",
				Estado:    "MG",
				Tipo:      "Residencial",
			},
			setup: func() {},
			validate: func(t *testing.T, result *domain.ProvisioningResult, err error) {
				assert.Nil(t, result)

				var provErr *ProvisioningError
				assert.ErrorAs(t, err, &provErr)

				campos := make([]string, 0, len(provErr.Issues))
				for _, issue := range provErr.Issues {
					campos = append(campos, issue.Campo)
				}
				assert.ElementsMatch(t, []string{
					"cno",
					"art_numero",
					"apolice_numero",
					"art_arquivo",
					"apolice_arquivo",
				}, campos)
			},
		},
		{
			name: "Falha ao gravar a obra - deve ser fatal",
			req:  requisicaoMinima(),
			setup: func() {
				m.obraRepo.EXPECT().Criar(gomock.Any(), gomock.Any()).Return(errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, result *domain.ProvisioningResult, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, ErrCriacaoObra)
			},
		},
		{
			name: "Requisição mínima válida - deve concluir sem falhas nem pendências",
			req:  requisicaoMinima(),
			setup: func() {
				m.obraRepo.EXPECT().Criar(gomock.Any(), gomock.Any()).Return(nil)
				expectUploadCertificados(m)
			},
			validate: func(t *testing.T, result *domain.ProvisioningResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.ProvisionamentoConcluido, result.Status)
				assert.NotEmpty(t, result.ObraID)
				assert.Empty(t, result.Falhas)
				assert.Empty(t, result.Pendencias)
			},
		},
		{
			name: "Orçamento inexistente - obra permanece e o provisionamento degrada",
			req: func() *domain.CriarObraRequest {
				req := requisicaoMinima()
				req.OrcamentoID = "or9999"
				req.MesInicial = "2026-02"
				return req
			}(),
			setup: func() {
				m.obraRepo.EXPECT().Criar(gomock.Any(), gomock.Any()).Return(nil)
				expectUploadCertificados(m)
				m.orcamentoRepo.EXPECT().GetByID(gomock.Any(), "or9999").Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.ProvisioningResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.ProvisionamentoDegradado, result.Status)
				assert.Len(t, result.Falhas, 1)
				assert.Equal(t, domain.EtapaImportacaoOrcamento, result.Falhas[0].Etapa)
				assert.Zero(t, result.CustosImportados)
			},
		},
		{
			name: "Provisionamento completo - todas as entidades vinculadas",
			req: func() *domain.CriarObraRequest {
				req := requisicaoMinima()
				req.OrcamentoID = "or0001"
				req.MesInicial = "2026-02"
				req.Gruas = []domain.GruaVinculo{{GruaID: "gr0001", ValorLocacaoMensal: 45000}}
				req.Funcionarios = []domain.FuncionarioVinculo{{FuncionarioID: "fn0001", Cargo: "Operador"}}
				req.Responsaveis = []domain.ResponsavelTecnicoCandidato{
					{Nome: "Eng. Marcos", CpfCnpj: "12345678901", Categoria: domain.CategoriaEquipamento},
				}
				req.Sinaleiros = []domain.SinaleiroCandidato{
					{Nome: "João", RgCpf: "123.456.789-01", Tipo: domain.SinaleiroPrincipal, Afiliacao: domain.AfiliacaoInterna},
				}
				req.Supervisores = []domain.SupervisorObra{{FuncionarioID: "fn0002", Nome: "Supervisor"}}
				return req
			}(),
			setup: func() {
				m.obraRepo.EXPECT().Criar(gomock.Any(), gomock.Any()).Return(nil)
				expectUploadCertificados(m)

				m.orcamentoRepo.EXPECT().GetByID(gomock.Any(), "or0001").Return(&domain.Orcamento{
					ID:     "or0001",
					Status: domain.StatusOrcamentoAprovado,
					Itens: []domain.OrcamentoItem{
						{Descricao: "Locação de grua", ValorMensal: 45000},
						{Descricao: "Equipe de operação", ValorMensal: 18500},
					},
				}, nil)
				m.custoRepo.EXPECT().ExistsForMonth(gomock.Any(), gomock.Any(), "2026-02").Return(false, nil)
				m.custoRepo.EXPECT().BulkInsert(gomock.Any(), gomock.Any()).Return(nil)

				m.gruaRepo.EXPECT().Exists(gomock.Any(), "gr0001").Return(true, nil)
				m.gruaRepo.EXPECT().AttachToObra(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

				m.funcionarioRepo.EXPECT().Exists(gomock.Any(), "fn0001").Return(true, nil)
				m.funcionarioRepo.EXPECT().AttachToObra(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

				m.responsavelRepo.EXPECT().Criar(gomock.Any(), gomock.Any()).Return(nil)

				m.sinaleiroRepo.EXPECT().ListarPorObra(gomock.Any(), gomock.Any()).Return(nil, nil)
				m.sinaleiroRepo.EXPECT().
					VincularLote(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, sinaleiros []*domain.Sinaleiro) error {
						assert.Len(t, sinaleiros, 1)
						assert.Equal(t, "12345678901", sinaleiros[0].RgCpf)
						return nil
					})

				m.obraRepo.EXPECT().VincularSupervisor(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result *domain.ProvisioningResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.ProvisionamentoConcluido, result.Status)
				assert.Equal(t, 2, result.CustosImportados)
				assert.Empty(t, result.Falhas)
				assert.Empty(t, result.Pendencias)
			},
		},
		{
			name: "Sinaleiro com documento inválido - descartado sem impedir o outro",
			req: func() *domain.CriarObraRequest {
				req := requisicaoMinima()
				req.Sinaleiros = []domain.SinaleiroCandidato{
					{Nome: "João", RgCpf: "123", Tipo: domain.SinaleiroPrincipal, Afiliacao: domain.AfiliacaoInterna},
					{Nome: "Pedro", RgCpf: "MG-12.345.678", Tipo: domain.SinaleiroReserva, Afiliacao: domain.AfiliacaoInterna},
				}
				return req
			}(),
			setup: func() {
				m.obraRepo.EXPECT().Criar(gomock.Any(), gomock.Any()).Return(nil)
				expectUploadCertificados(m)
				m.sinaleiroRepo.EXPECT().ListarPorObra(gomock.Any(), gomock.Any()).Return(nil, nil)
				m.sinaleiroRepo.EXPECT().
					VincularLote(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, sinaleiros []*domain.Sinaleiro) error {
						assert.Len(t, sinaleiros, 1)
						assert.Equal(t, "Pedro", sinaleiros[0].Nome)
						return nil
					})
			},
			validate: func(t *testing.T, result *domain.ProvisioningResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.ProvisionamentoDegradado, result.Status)
				assert.Len(t, result.Falhas, 1)
				assert.Equal(t, domain.EtapaVinculoSinaleiros, result.Falhas[0].Etapa)
				assert.Equal(t, "João", result.Falhas[0].Entidade)
			},
		},
		{
			name: "Documentação incompleta de sinaleiro externo - vínculo fica com pendência",
			req: func() *domain.CriarObraRequest {
				req := requisicaoMinima()
				req.Sinaleiros = []domain.SinaleiroCandidato{
					{Nome: "Carlos", RgCpf: "987.654.321-00", Tipo: domain.SinaleiroPrincipal, Afiliacao: domain.AfiliacaoCliente},
				}
				return req
			}(),
			setup: func() {
				m.obraRepo.EXPECT().Criar(gomock.Any(), gomock.Any()).Return(nil)
				expectUploadCertificados(m)
				m.sinaleiroRepo.EXPECT().ListarPorObra(gomock.Any(), gomock.Any()).Return(nil, nil)
				m.sinaleiroRepo.EXPECT().VincularLote(gomock.Any(), gomock.Any()).Return(nil)
				m.arquivosService.EXPECT().
					ListSinaleiroDocumentos(gomock.Any(), gomock.Any()).
					Return(map[domain.TipoDocumento]bool{domain.DocumentoRgFrente: true}, nil)
			},
			validate: func(t *testing.T, result *domain.ProvisioningResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.ProvisionamentoDegradado, result.Status)
				assert.Empty(t, result.Falhas)
				assert.Len(t, result.Pendencias, 1)
				assert.Equal(t, "Carlos", result.Pendencias[0].SinaleiroNome)
				assert.Equal(t, []domain.TipoDocumento{
					domain.DocumentoRgVerso,
					domain.DocumentoComprovanteVinculo,
				}, result.Pendencias[0].Faltando)
			},
		},
		{
			name: "Guarda de arquivos fora do ar - pendência cobre todos os documentos",
			req: func() *domain.CriarObraRequest {
				req := requisicaoMinima()
				req.Sinaleiros = []domain.SinaleiroCandidato{
					{Nome: "Carlos", RgCpf: "987.654.321-00", Tipo: domain.SinaleiroPrincipal, Afiliacao: domain.AfiliacaoCliente},
				}
				return req
			}(),
			setup: func() {
				m.obraRepo.EXPECT().Criar(gomock.Any(), gomock.Any()).Return(nil)
				expectUploadCertificados(m)
				m.sinaleiroRepo.EXPECT().ListarPorObra(gomock.Any(), gomock.Any()).Return(nil, nil)
				m.sinaleiroRepo.EXPECT().VincularLote(gomock.Any(), gomock.Any()).Return(nil)
				m.arquivosService.EXPECT().
					ListSinaleiroDocumentos(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, result *domain.ProvisioningResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.ProvisionamentoDegradado, result.Status)
				assert.Empty(t, result.Falhas)
				assert.Len(t, result.Pendencias, 1)
				assert.Equal(t, domain.DocumentosObrigatorios, result.Pendencias[0].Faltando)
			},
		},
		{
			name: "Grua não cadastrada - falha parcial no grupo de gruas",
			req: func() *domain.CriarObraRequest {
				req := requisicaoMinima()
				req.Gruas = []domain.GruaVinculo{{GruaID: "gr9999"}}
				return req
			}(),
			setup: func() {
				m.obraRepo.EXPECT().Criar(gomock.Any(), gomock.Any()).Return(nil)
				expectUploadCertificados(m)
				m.gruaRepo.EXPECT().Exists(gomock.Any(), "gr9999").Return(false, nil)
			},
			validate: func(t *testing.T, result *domain.ProvisioningResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.ProvisionamentoDegradado, result.Status)
				assert.Len(t, result.Falhas, 1)
				assert.Equal(t, domain.EtapaVinculoGruas, result.Falhas[0].Etapa)
				assert.Equal(t, "gr9999", result.Falhas[0].Entidade)
			},
		},
		{
			name: "Upload de documento falha - os demais uploads seguem",
			req: func() *domain.CriarObraRequest {
				req := requisicaoMinima()
				req.Arquivos = []domain.ArquivoUpload{
					{Categoria: domain.ArquivoCno, Nome: "cno.pdf", Conteudo: []byte("cno")},
					{Categoria: domain.ArquivoArt, Nome: "art.pdf", Conteudo: []byte("art")},
					{Categoria: domain.ArquivoApolice, Nome: "apolice.pdf", Conteudo: []byte("apolice")},
				}
				return req
			}(),
			setup: func() {
				m.obraRepo.EXPECT().Criar(gomock.Any(), gomock.Any()).Return(nil)
				m.arquivosService.EXPECT().
					UploadObraArquivo(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, arquivo *domain.ArquivoUpload) (string, error) {
						if arquivo.Categoria == domain.ArquivoArt {
							return "", errors.New("storage indisponível")
						}
						return "https://arquivos.internal/cno.pdf", nil
					}).
					Times(3)
				m.obraRepo.EXPECT().
					AtualizarDocumentos(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, update *domain.AtualizarDocumentosObraRequest) error {
						assert.NotNil(t, update.CnoArquivo)
						assert.Nil(t, update.ArtArquivo)
						assert.NotNil(t, update.ApoliceArquivo)
						return nil
					})
			},
			validate: func(t *testing.T, result *domain.ProvisioningResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.ProvisionamentoDegradado, result.Status)
				assert.Len(t, result.Falhas, 1)
				assert.Equal(t, domain.EtapaUploadDocumentos, result.Falhas[0].Etapa)
				assert.Equal(t, "https://arquivos.internal/cno.pdf", result.Documentos[domain.ArquivoCno])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.CriarObra(ctx, tt.req)

			tt.validate(t, result, err)
		})
	}
}

func TestVincularSinaleiros(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newProvisioningService(ctrl)
	ctx := context.Background()

	obra := &domain.Obra{ID: "ob0001", Nome: "Residencial Alto da Serra"}

	t.Run("Obra inexistente - deve retornar não encontrada", func(t *testing.T) {
		m.obraRepo.EXPECT().GetByID(gomock.Any(), "ob9999").Return(nil, nil)

		result, err := service.VincularSinaleiros(ctx, &domain.VincularSinaleirosRequest{ObraID: "ob9999"})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrObraNaoEncontrada)
	})

	t.Run("Obra com limite atingido - candidato vira falha sem gravação", func(t *testing.T) {
		existentes := []*domain.Sinaleiro{
			{ID: "sn0001", Tipo: domain.SinaleiroPrincipal},
			{ID: "sn0002", Tipo: domain.SinaleiroReserva},
		}

		m.obraRepo.EXPECT().GetByID(gomock.Any(), "ob0001").Return(obra, nil)
		m.sinaleiroRepo.EXPECT().ListarPorObra(gomock.Any(), "ob0001").Return(existentes, nil).Times(2)

		result, err := service.VincularSinaleiros(ctx, &domain.VincularSinaleirosRequest{
			ObraID: "ob0001",
			Sinaleiros: []domain.SinaleiroCandidato{
				{Nome: "Carlos", RgCpf: "987.654.321-00", Tipo: domain.SinaleiroPrincipal, Afiliacao: domain.AfiliacaoInterna},
			},
		})

		assert.NoError(t, err)
		assert.Len(t, result.Vinculados, 2)
		assert.Len(t, result.Falhas, 1)
		assert.Equal(t, ErrLimiteSinaleiros.Error(), result.Falhas[0].Motivo)
	})

	t.Run("Vaga disponível - candidato vinculado e listado", func(t *testing.T) {
		existentes := []*domain.Sinaleiro{{ID: "sn0001", Tipo: domain.SinaleiroPrincipal}}

		m.obraRepo.EXPECT().GetByID(gomock.Any(), "ob0001").Return(obra, nil)
		m.sinaleiroRepo.EXPECT().ListarPorObra(gomock.Any(), "ob0001").Return(existentes, nil)
		m.sinaleiroRepo.EXPECT().VincularLote(gomock.Any(), gomock.Any()).Return(nil)
		m.sinaleiroRepo.EXPECT().ListarPorObra(gomock.Any(), "ob0001").Return(append(existentes,
			&domain.Sinaleiro{ID: "sn0002", Nome: "Carlos", Tipo: domain.SinaleiroReserva}), nil)

		result, err := service.VincularSinaleiros(ctx, &domain.VincularSinaleirosRequest{
			ObraID: "ob0001",
			Sinaleiros: []domain.SinaleiroCandidato{
				{Nome: "Carlos", RgCpf: "987.654.321-00", Tipo: domain.SinaleiroReserva, Afiliacao: domain.AfiliacaoInterna},
			},
		})

		assert.NoError(t, err)
		assert.Len(t, result.Vinculados, 2)
		assert.Empty(t, result.Falhas)
		assert.Empty(t, result.Pendencias)
	})
}

func TestAtualizarDocumentosObra(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newProvisioningService(ctrl)
	ctx := context.Background()

	t.Run("Obra inexistente - deve retornar não encontrada", func(t *testing.T) {
		m.obraRepo.EXPECT().GetByID(gomock.Any(), "ob9999").Return(nil, nil)

		result, err := service.AtualizarDocumentosObra(ctx, &domain.AtualizarDocumentosObraRequest{ObraID: "ob9999"})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrObraNaoEncontrada)
	})

	t.Run("Atualização parcial - deve gravar e recarregar a obra", func(t *testing.T) {
		cno := "12.345.67890/26"
		req := &domain.AtualizarDocumentosObraRequest{ObraID: "ob0001", Cno: &cno}

		m.obraRepo.EXPECT().GetByID(gomock.Any(), "ob0001").Return(&domain.Obra{ID: "ob0001"}, nil)
		m.obraRepo.EXPECT().AtualizarDocumentos(gomock.Any(), req).Return(nil)
		m.obraRepo.EXPECT().GetByID(gomock.Any(), "ob0001").Return(&domain.Obra{ID: "ob0001", Cno: cno}, nil)

		result, err := service.AtualizarDocumentosObra(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, cno, result.Cno)
	})
}
