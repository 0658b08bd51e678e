package scheduler

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/gmcamargo/obra-ledger-api/infrastructure/repository/mocks"
	"github.com/gmcamargo/obra-ledger-api/internal/domain"
	"github.com/gmcamargo/obra-ledger-api/internal/usecases/duplicating"
	"github.com/gmcamargo/obra-ledger-api/pkg/utils"
)

func newSyncService(mockCustoRepo *mocks.MockCustoMensalRepository) *MonthlyCostsSyncService {
	return &MonthlyCostsSyncService{
		config: MonthlyCostsSyncConfig{
			CronSchedule: "0 5 1 * *",
			SyncEnabled:  true,
		},
		custoRepo:          mockCustoRepo,
		duplicationService: duplicating.NewService(mockCustoRepo),
	}
}

func TestRollForward(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCustoRepo := mocks.NewMockCustoMensalRepository(ctrl)
	service := newSyncService(mockCustoRepo)

	ctx := context.Background()

	origens := []*domain.CustoMensal{
		{ID: "cm0001", ObraID: "ob0001", Item: "01.01", Tipo: domain.TipoCustoContrato, Mes: "2026-01", QuantidadeAcumulada: 1},
	}

	t.Run("Obra em dia - não replica nada", func(t *testing.T) {
		mockCustoRepo.EXPECT().
			ListMonths(gomock.Any(), "ob0001").
			Return([]string{"2026-02", "2026-03"}, nil)

		avancou, err := service.rollForward(ctx, "ob0001", "2026-03")

		assert.NoError(t, err)
		assert.False(t, avancou)
	})

	t.Run("Obra sem custos - nada a fazer", func(t *testing.T) {
		mockCustoRepo.EXPECT().ListMonths(gomock.Any(), "ob0001").Return(nil, nil)

		avancou, err := service.rollForward(ctx, "ob0001", "2026-03")

		assert.NoError(t, err)
		assert.False(t, avancou)
	})

	t.Run("Obra dois meses atrasada - replica mês a mês até o corrente", func(t *testing.T) {
		// rollForward lista os meses, depois cada replicação relê a lista
		mockCustoRepo.EXPECT().
			ListMonths(gomock.Any(), "ob0001").
			Return([]string{"2026-01"}, nil)

		mockCustoRepo.EXPECT().
			ListMonths(gomock.Any(), "ob0001").
			Return([]string{"2026-01"}, nil)
		mockCustoRepo.EXPECT().
			ListByObraAndMonth(gomock.Any(), "ob0001", "2026-01").
			Return(origens, nil)
		mockCustoRepo.EXPECT().
			BulkInsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, clones []*domain.CustoMensal) error {
				assert.Len(t, clones, 1)
				assert.Equal(t, "2026-02", clones[0].Mes)
				return nil
			})

		clone := *origens[0]
		clone.Mes = "2026-02"

		mockCustoRepo.EXPECT().
			ListMonths(gomock.Any(), "ob0001").
			Return([]string{"2026-01", "2026-02"}, nil)
		mockCustoRepo.EXPECT().
			ListByObraAndMonth(gomock.Any(), "ob0001", "2026-02").
			Return([]*domain.CustoMensal{&clone}, nil)
		mockCustoRepo.EXPECT().
			BulkInsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, clones []*domain.CustoMensal) error {
				assert.Equal(t, "2026-03", clones[0].Mes)
				return nil
			})

		avancou, err := service.rollForward(ctx, "ob0001", "2026-03")

		assert.NoError(t, err)
		assert.True(t, avancou)
	})
}

func TestSyncMonthlyCosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCustoRepo := mocks.NewMockCustoMensalRepository(ctrl)
	service := newSyncService(mockCustoRepo)

	mesCorrente := utils.CurrentMonth()

	// A primeira obra falha na listagem de meses, a segunda já está em dia;
	// a falha de uma não interrompe a outra
	mockCustoRepo.EXPECT().
		ListObrasComCustos(gomock.Any()).
		Return([]string{"ob0001", "ob0002"}, nil)
	mockCustoRepo.EXPECT().
		ListMonths(gomock.Any(), "ob0001").
		Return(nil, errors.New("conexão recusada"))
	mockCustoRepo.EXPECT().
		ListMonths(gomock.Any(), "ob0002").
		Return([]string{mesCorrente}, nil)

	service.syncMonthlyCosts(context.Background())

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.NotZero(t, status["last_sync_started_at"])
	assert.NotZero(t, status["last_sync_completed_at"])
}
