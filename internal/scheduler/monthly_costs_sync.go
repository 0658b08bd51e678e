package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gmcamargo/obra-ledger-api/infrastructure/repository"
	"github.com/gmcamargo/obra-ledger-api/internal/config"
	"github.com/gmcamargo/obra-ledger-api/internal/domain"
	"github.com/gmcamargo/obra-ledger-api/internal/usecases/duplicating"
	"github.com/gmcamargo/obra-ledger-api/pkg/utils"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// MonthlyCostsSyncConfig representa a configuração do agendador de virada de mês
type MonthlyCostsSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// MonthlyCostsSyncService replica o ledger de cada obra ativa para o mês
// corrente na virada do mês
type MonthlyCostsSyncService struct {
	scheduler           *gocron.Scheduler
	config              MonthlyCostsSyncConfig
	custoRepo           repository.CustoMensalRepository
	duplicationService  duplicating.DuplicationService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewMonthlyCostsSyncService cria uma nova instância do serviço de virada de mês
func NewMonthlyCostsSyncService(
	custoRepo repository.CustoMensalRepository,
	duplicationService duplicating.DuplicationService,
	appConfig *config.Config,
) *MonthlyCostsSyncService {
	syncConfig := MonthlyCostsSyncConfig{
		CronSchedule: appConfig.MonthlyCostsSync.CronSchedule,
		SyncEnabled:  appConfig.MonthlyCostsSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de virada de mês carregada")

	return &MonthlyCostsSyncService{
		scheduler:          scheduler,
		config:             syncConfig,
		custoRepo:          custoRepo,
		duplicationService: duplicationService,
		syncRunning:        false,
	}
}

// Start inicia o agendador
func (s *MonthlyCostsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Virada de mês automática desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de virada de mês dos custos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncMonthlyCosts(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar virada de mês dos custos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de virada de mês dos custos")
		s.scheduler.Stop()
	}()

	return nil
}

// syncMonthlyCosts replica o último mês de cada obra até alcançar o mês
// corrente. Obras já em dia são ignoradas; uma obra que falha não impede as
// demais.
func (s *MonthlyCostsSyncService) syncMonthlyCosts(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Virada de mês já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando virada de mês do ledger de custos")

	obras, err := s.custoRepo.ListObrasComCustos(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar obras para a virada de mês")
		return
	}

	if len(obras) == 0 {
		logrus.Info("Nenhuma obra com custos para a virada de mês")
		return
	}

	mesCorrente := utils.CurrentMonth()
	replicadas := 0

	for _, obraID := range obras {
		if ctx.Err() != nil {
			logrus.Warn("Virada de mês interrompida pelo contexto")
			break
		}

		avancou, err := s.rollForward(ctx, obraID, mesCorrente)
		if err != nil {
			logrus.WithError(err).WithField("obra_id", obraID).Error("Erro ao virar o mês da obra")
			continue
		}
		if avancou {
			replicadas++
		}
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":   duration.String(),
		"obras":      len(obras),
		"replicadas": replicadas,
	}).Info("Virada de mês do ledger concluída")

	s.lastSyncCompletedAt = time.Now()
}

// rollForward avança o ledger da obra mês a mês até o mês corrente
func (s *MonthlyCostsSyncService) rollForward(ctx context.Context, obraID, mesCorrente string) (bool, error) {
	meses, err := s.custoRepo.ListMonths(ctx, obraID)
	if err != nil {
		return false, fmt.Errorf("erro ao listar meses da obra: %w", err)
	}
	if len(meses) == 0 {
		return false, nil
	}

	avancou := false
	ultimo := meses[len(meses)-1]

	for ultimo < mesCorrente {
		destino, err := utils.NextMonth(ultimo)
		if err != nil {
			return avancou, err
		}

		_, err = s.duplicationService.Replicar(ctx, &domain.ReplicarCustosRequest{
			ObraID:     obraID,
			MesOrigem:  ultimo,
			MesDestino: destino,
		})
		if err != nil {
			return avancou, fmt.Errorf("erro ao replicar %s para %s: %w", ultimo, destino, err)
		}

		logrus.WithFields(logrus.Fields{
			"obra_id":     obraID,
			"mes_origem":  ultimo,
			"mes_destino": destino,
		}).Info("Ledger da obra replicado para o mês seguinte")

		ultimo = destino
		avancou = true
	}

	return avancou, nil
}

// TriggerManualSync inicia manualmente uma virada de mês
func (s *MonthlyCostsSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Virada de mês já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando virada de mês manual do ledger de custos")
	go s.syncMonthlyCosts(context.Background())
}

// GetStatus retorna o status atual da virada de mês
func (s *MonthlyCostsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
