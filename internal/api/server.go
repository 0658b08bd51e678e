package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gmcamargo/obra-ledger-api/internal/api/handler"
	"github.com/gmcamargo/obra-ledger-api/internal/api/handler/router"
	"github.com/gmcamargo/obra-ledger-api/internal/config"
	"github.com/gmcamargo/obra-ledger-api/internal/scheduler"
	"github.com/gmcamargo/obra-ledger-api/internal/usecases/duplicating"
	"github.com/gmcamargo/obra-ledger-api/internal/usecases/gatekeeping"
	"github.com/gmcamargo/obra-ledger-api/internal/usecases/ledger"
	"github.com/gmcamargo/obra-ledger-api/internal/usecases/provisioning"
	"github.com/gmcamargo/obra-ledger-api/pkg/middleware"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	provisioningService provisioning.ProvisioningService,
	ledgerService ledger.LedgerService,
	duplicationService duplicating.DuplicationService,
	gateService gatekeeping.GateService,
	monthlyCostsSyncService *scheduler.MonthlyCostsSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		MonthlyCostsSyncService: monthlyCostsSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Obras(provisioningService, gateService)...),
		router.WithRoutes(handler.CustosMensais(ledgerService, duplicationService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(config.Auth.Secret),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
