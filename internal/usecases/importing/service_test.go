package importing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/gmcamargo/obra-ledger-api/infrastructure/repository/mocks"
	"github.com/gmcamargo/obra-ledger-api/internal/domain"
)

func TestBuildLines(t *testing.T) {
	orcamentoAprovado := func() *domain.Orcamento {
		return &domain.Orcamento{
			ID:        "or0001",
			ClienteID: "cl0001",
			Status:    domain.StatusOrcamentoAprovado,
			Itens: []domain.OrcamentoItem{
				{ID: "oi0001", Descricao: "Locação de grua ascensional", ValorMensal: 45000},
				{ID: "oi0002", Descricao: "Equipe de operação", ValorMensal: 18500.5},
				{ID: "oi0003", Descricao: "Manutenção preventiva", ValorMensal: 3200},
			},
		}
	}

	tests := []struct {
		name        string
		orcamento   *domain.Orcamento
		mesInicial  string
		expectedErr error
		validate    func(t *testing.T, custos []*domain.CustoMensal)
	}{
		{
			name:       "Orçamento aprovado - deve gerar uma linha por item com código posicional",
			orcamento:  orcamentoAprovado(),
			mesInicial: "2026-02",
			validate: func(t *testing.T, custos []*domain.CustoMensal) {
				assert.Len(t, custos, 3)

				assert.Equal(t, "01.01", custos[0].Item)
				assert.Equal(t, "02.02", custos[1].Item)
				assert.Equal(t, "03.03", custos[2].Item)

				for _, custo := range custos {
					assert.Equal(t, "ob0001", custo.ObraID)
					assert.Equal(t, "mês", custo.Unidade)
					assert.Equal(t, 1.0, custo.QuantidadeOrcamento)
					assert.Equal(t, domain.TipoCustoContrato, custo.Tipo)
					assert.Equal(t, "2026-02", custo.Mes)
					assert.Equal(t, 1, custo.Versao)
					assert.Equal(t, 0.0, custo.QuantidadeRealizada)
					assert.Equal(t, 0.0, custo.ValorRealizado)
					assert.Equal(t, 0.0, custo.QuantidadeAcumulada)
					assert.Equal(t, 0.0, custo.ValorAcumulado)
					assert.NotEmpty(t, custo.ID)
				}

				assert.Equal(t, 45000.0, custos[0].TotalOrcamento)
				assert.Equal(t, 18500.5, custos[1].TotalOrcamento)
				assert.Equal(t, 1.0, custos[0].QuantidadeSaldo)
				assert.Equal(t, 45000.0, custos[0].ValorSaldo)
			},
		},
		{
			name: "Orçamento não aprovado - deve rejeitar a importação",
			orcamento: func() *domain.Orcamento {
				o := orcamentoAprovado()
				o.Status = domain.StatusOrcamentoEnviado
				return o
			}(),
			mesInicial:  "2026-02",
			expectedErr: ErrOrcamentoNaoAprovado,
		},
		{
			name: "Orçamento sem itens - deve rejeitar a importação",
			orcamento: func() *domain.Orcamento {
				o := orcamentoAprovado()
				o.Itens = nil
				return o
			}(),
			mesInicial:  "2026-02",
			expectedErr: ErrOrcamentoVazio,
		},
		{
			name:        "Mês inicial mal formado - deve rejeitar a importação",
			orcamento:   orcamentoAprovado(),
			mesInicial:  "fevereiro/2026",
			expectedErr: ErrMesInvalido,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			custos, err := BuildLines(tt.orcamento, "ob0001", tt.mesInicial)

			if tt.expectedErr != nil {
				assert.Nil(t, custos)
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			assert.NoError(t, err)
			tt.validate(t, custos)
		})
	}
}

func TestImportarOrcamento(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrcamentoRepo := mocks.NewMockOrcamentoRepository(ctrl)
	mockCustoRepo := mocks.NewMockCustoMensalRepository(ctrl)

	service := &Service{
		orcamentoRepository: mockOrcamentoRepo,
		custoRepository:     mockCustoRepo,
	}

	ctx := context.Background()

	orcamento := &domain.Orcamento{
		ID:     "or0001",
		Status: domain.StatusOrcamentoAprovado,
		Itens: []domain.OrcamentoItem{
			{ID: "oi0001", Descricao: "Locação de grua ascensional", ValorMensal: 45000},
			{ID: "oi0002", Descricao: "Equipe de operação", ValorMensal: 18500.5},
		},
	}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, linhas int, err error)
	}{
		{
			name: "Orçamento inexistente - deve retornar não encontrado",
			setup: func() {
				mockOrcamentoRepo.EXPECT().GetByID(gomock.Any(), "or0001").Return(nil, nil)
			},
			validate: func(t *testing.T, linhas int, err error) {
				assert.Zero(t, linhas)
				assert.ErrorIs(t, err, ErrOrcamentoNaoEncontrado)
			},
		},
		{
			name: "Mês inicial já possui custos - deve rejeitar a importação",
			setup: func() {
				mockOrcamentoRepo.EXPECT().GetByID(gomock.Any(), "or0001").Return(orcamento, nil)
				mockCustoRepo.EXPECT().ExistsForMonth(gomock.Any(), "ob0001", "2026-02").Return(true, nil)
			},
			validate: func(t *testing.T, linhas int, err error) {
				assert.Zero(t, linhas)
				assert.ErrorIs(t, err, ErrMesOcupado)
			},
		},
		{
			name: "Importação válida - deve gravar as linhas em lote e contar",
			setup: func() {
				mockOrcamentoRepo.EXPECT().GetByID(gomock.Any(), "or0001").Return(orcamento, nil)
				mockCustoRepo.EXPECT().ExistsForMonth(gomock.Any(), "ob0001", "2026-02").Return(false, nil)
				mockCustoRepo.EXPECT().
					BulkInsert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, custos []*domain.CustoMensal) error {
						assert.Len(t, custos, 2)
						return nil
					})
			},
			validate: func(t *testing.T, linhas int, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 2, linhas)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			linhas, err := service.ImportarOrcamento(ctx, "or0001", "ob0001", "2026-02")

			tt.validate(t, linhas, err)
		})
	}
}
