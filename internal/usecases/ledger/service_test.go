package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/gmcamargo/obra-ledger-api/infrastructure/repository"
	"github.com/gmcamargo/obra-ledger-api/infrastructure/repository/mocks"
	"github.com/gmcamargo/obra-ledger-api/internal/domain"
)

func TestDeriveBudgetedTotal(t *testing.T) {
	tests := []struct {
		name          string
		quantidade    float64
		valorUnitario float64
		expected      float64
		expectedErr   error
	}{
		{
			name:          "Quantidade e valor positivos - deve multiplicar e arredondar",
			quantidade:    3,
			valorUnitario: 4500.55,
			expected:      13501.65,
		},
		{
			name:          "Quantidade zero - total orçado zerado é legítimo",
			quantidade:    0,
			valorUnitario: 12000,
			expected:      0,
		},
		{
			name:          "Quantidade negativa - deve rejeitar",
			quantidade:    -1,
			valorUnitario: 12000,
			expectedErr:   ErrQuantidadeInvalida,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := DeriveBudgetedTotal(tt.quantidade, tt.valorUnitario)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, total)
		})
	}
}

func TestRecomputeBalances(t *testing.T) {
	custo := &domain.CustoMensal{
		QuantidadeOrcamento: 1,
		ValorUnitario:       45000,
		TotalOrcamento:      45000,
		QuantidadeRealizada: 0.5,
		ValorRealizado:      21000,
		QuantidadeAcumulada: 2.5,
		ValorAcumulado:      112500,
	}

	RecomputeBalances(custo)

	// O valor realizado fixado por override não pode ser recalculado
	assert.Equal(t, 21000.0, custo.ValorRealizado)
	assert.Equal(t, -1.5, custo.QuantidadeSaldo)
	assert.Equal(t, -67500.0, custo.ValorSaldo)

	// Reaplicar não pode alterar nada: saldos nunca alimentam o próprio cálculo
	RecomputeBalances(custo)

	assert.Equal(t, 21000.0, custo.ValorRealizado)
	assert.Equal(t, -1.5, custo.QuantidadeSaldo)
	assert.Equal(t, -67500.0, custo.ValorSaldo)
}

func TestAtualizarRealizado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCustoRepo := mocks.NewMockCustoMensalRepository(ctrl)

	service := &Service{
		custoRepository: mockCustoRepo,
	}

	ctx := context.Background()

	custoBase := func() *domain.CustoMensal {
		return &domain.CustoMensal{
			ID:                  "cm0002",
			ObraID:              "ob0001",
			Item:                "01.01",
			Descricao:           "Locação de grua ascensional",
			Unidade:             "mês",
			QuantidadeOrcamento: 1,
			ValorUnitario:       45000,
			TotalOrcamento:      45000,
			Tipo:                domain.TipoCustoContrato,
			Mes:                 "2026-02",
			Versao:              1,
		}
	}

	tests := []struct {
		name     string
		custoID  string
		req      *domain.AtualizarRealizadoRequest
		setup    func()
		validate func(t *testing.T, result *domain.CustoMensal, err error)
	}{
		{
			name:    "Quantidade negativa - deve rejeitar sem consultar o banco",
			custoID: "cm0002",
			req:     &domain.AtualizarRealizadoRequest{QuantidadeRealizada: -1},
			setup:   func() {},
			validate: func(t *testing.T, result *domain.CustoMensal, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, ErrQuantidadeInvalida)
			},
		},
		{
			name:    "Custo inexistente - deve retornar não encontrado",
			custoID: "cm9999",
			req:     &domain.AtualizarRealizadoRequest{QuantidadeRealizada: 1},
			setup: func() {
				mockCustoRepo.EXPECT().GetByID(gomock.Any(), "cm9999").Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.CustoMensal, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, ErrCustoNaoEncontrado)
			},
		},
		{
			name:    "Primeiro registro da linhagem - acumulado parte do zero",
			custoID: "cm0002",
			req:     &domain.AtualizarRealizadoRequest{QuantidadeRealizada: 1},
			setup: func() {
				mockCustoRepo.EXPECT().GetByID(gomock.Any(), "cm0002").Return(custoBase(), nil)
				mockCustoRepo.EXPECT().
					LastEntryForLineage(gomock.Any(), "ob0001", "01.01", domain.TipoCustoContrato, "2026-02").
					Return(nil, nil)
				mockCustoRepo.EXPECT().UpdateRealizado(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result *domain.CustoMensal, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1.0, result.QuantidadeRealizada)
				assert.Equal(t, 45000.0, result.ValorRealizado)
				assert.Equal(t, 1.0, result.QuantidadeAcumulada)
				assert.Equal(t, 45000.0, result.ValorAcumulado)
				assert.Equal(t, 0.0, result.QuantidadeSaldo)
				assert.Equal(t, 0.0, result.ValorSaldo)
			},
		},
		{
			name:    "Mês seguinte da linhagem - acumulado soma sobre o mês anterior",
			custoID: "cm0002",
			req:     &domain.AtualizarRealizadoRequest{QuantidadeRealizada: 1},
			setup: func() {
				anterior := custoBase()
				anterior.ID = "cm0001"
				anterior.Mes = "2026-01"
				anterior.QuantidadeAcumulada = 1
				anterior.ValorAcumulado = 45000

				mockCustoRepo.EXPECT().GetByID(gomock.Any(), "cm0002").Return(custoBase(), nil)
				mockCustoRepo.EXPECT().
					LastEntryForLineage(gomock.Any(), "ob0001", "01.01", domain.TipoCustoContrato, "2026-02").
					Return(anterior, nil)
				mockCustoRepo.EXPECT().UpdateRealizado(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result *domain.CustoMensal, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 2.0, result.QuantidadeAcumulada)
				assert.Equal(t, 90000.0, result.ValorAcumulado)
				assert.Equal(t, -1.0, result.QuantidadeSaldo)
				assert.Equal(t, -45000.0, result.ValorSaldo)
			},
		},
		{
			name:    "Linhagem com buraco de meses - deve rejeitar a atualização",
			custoID: "cm0002",
			req:     &domain.AtualizarRealizadoRequest{QuantidadeRealizada: 1},
			setup: func() {
				anterior := custoBase()
				anterior.ID = "cm0000"
				anterior.Mes = "2025-11"
				anterior.QuantidadeAcumulada = 1
				anterior.ValorAcumulado = 45000

				mockCustoRepo.EXPECT().GetByID(gomock.Any(), "cm0002").Return(custoBase(), nil)
				mockCustoRepo.EXPECT().
					LastEntryForLineage(gomock.Any(), "ob0001", "01.01", domain.TipoCustoContrato, "2026-02").
					Return(anterior, nil)
			},
			validate: func(t *testing.T, result *domain.CustoMensal, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, ErrLinhagemForaDeSequencia)
			},
		},
		{
			name:    "Valor realizado informado - deve prevalecer sobre o derivado",
			custoID: "cm0002",
			req: &domain.AtualizarRealizadoRequest{
				QuantidadeRealizada: 1,
				ValorRealizado:      float64Ptr(43250.509),
			},
			setup: func() {
				mockCustoRepo.EXPECT().GetByID(gomock.Any(), "cm0002").Return(custoBase(), nil)
				mockCustoRepo.EXPECT().
					LastEntryForLineage(gomock.Any(), "ob0001", "01.01", domain.TipoCustoContrato, "2026-02").
					Return(nil, nil)
				mockCustoRepo.EXPECT().UpdateRealizado(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result *domain.CustoMensal, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 43250.51, result.ValorRealizado)
				assert.Equal(t, 43250.51, result.ValorAcumulado)
				assert.Equal(t, 1749.49, result.ValorSaldo)
			},
		},
		{
			name:    "Conflito de versão na gravação - deve sinalizar atualização concorrente",
			custoID: "cm0002",
			req:     &domain.AtualizarRealizadoRequest{QuantidadeRealizada: 1},
			setup: func() {
				mockCustoRepo.EXPECT().GetByID(gomock.Any(), "cm0002").Return(custoBase(), nil)
				mockCustoRepo.EXPECT().
					LastEntryForLineage(gomock.Any(), "ob0001", "01.01", domain.TipoCustoContrato, "2026-02").
					Return(nil, nil)
				mockCustoRepo.EXPECT().UpdateRealizado(gomock.Any(), gomock.Any()).Return(repository.ErrVersaoConflito)
			},
			validate: func(t *testing.T, result *domain.CustoMensal, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, ErrAtualizacaoConcorrente)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.AtualizarRealizado(ctx, tt.custoID, tt.req)

			tt.validate(t, result, err)
		})
	}
}

func TestListarCustos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCustoRepo := mocks.NewMockCustoMensalRepository(ctrl)

	service := &Service{
		custoRepository: mockCustoRepo,
	}

	t.Run("Mês inválido - deve rejeitar antes de consultar o banco", func(t *testing.T) {
		custos, err := service.ListarCustos(context.Background(), "ob0001", "02/2026")

		assert.Nil(t, custos)
		assert.ErrorIs(t, err, ErrMesInvalido)
	})

	t.Run("Sem filtro de mês - deve listar todos os custos da obra", func(t *testing.T) {
		mockCustoRepo.EXPECT().
			ListByObraAndMonth(gomock.Any(), "ob0001", "").
			Return([]*domain.CustoMensal{{ID: "cm0001"}, {ID: "cm0002"}}, nil)

		custos, err := service.ListarCustos(context.Background(), "ob0001", "")

		assert.NoError(t, err)
		assert.Len(t, custos, 2)
	})
}

func float64Ptr(v float64) *float64 {
	return &v
}
