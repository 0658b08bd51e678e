package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/gmcamargo/obra-ledger-api/infrastructure/database/postgres"
	"github.com/gmcamargo/obra-ledger-api/infrastructure/integrator/arquivos"
	"github.com/gmcamargo/obra-ledger-api/infrastructure/integrator/arquivos/arquivosclient"
	"github.com/gmcamargo/obra-ledger-api/infrastructure/repository"
	"github.com/gmcamargo/obra-ledger-api/internal/api"
	"github.com/gmcamargo/obra-ledger-api/internal/config"
	"github.com/gmcamargo/obra-ledger-api/internal/scheduler"
	"github.com/gmcamargo/obra-ledger-api/internal/usecases/duplicating"
	"github.com/gmcamargo/obra-ledger-api/internal/usecases/gatekeeping"
	"github.com/gmcamargo/obra-ledger-api/internal/usecases/importing"
	"github.com/gmcamargo/obra-ledger-api/internal/usecases/ledger"
	"github.com/gmcamargo/obra-ledger-api/internal/usecases/provisioning"
	"github.com/gmcamargo/obra-ledger-api/pkg/log"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	obraRepo := repository.NewObraRepository(pgConn)
	custoRepo := repository.NewCustoMensalRepository(pgConn)
	orcamentoRepo := repository.NewOrcamentoRepository(pgConn)
	sinaleiroRepo := repository.NewSinaleiroRepository(pgConn)
	gruaRepo := repository.NewGruaRepository(pgConn)
	funcionarioRepo := repository.NewFuncionarioRepository(pgConn)
	responsavelRepo := repository.NewResponsavelTecnicoRepository(pgConn)

	arquivosClient := arquivosclient.NewClient(&cfg.Arquivos)
	arquivosService := arquivos.NewService(arquivosClient, log.L)

	ledgerService := ledger.NewService(custoRepo)
	importService := importing.NewService(orcamentoRepo, custoRepo)
	duplicationService := duplicating.NewService(custoRepo)
	gateService := gatekeeping.NewService(sinaleiroRepo, arquivosService)

	provisioningService := provisioning.NewService(
		obraRepo,
		sinaleiroRepo,
		gruaRepo,
		funcionarioRepo,
		responsavelRepo,
		arquivosService,
		gateService,
		importService,
	)

	// Inicializa o agendador de virada de mês do ledger
	monthlyCostsSyncService := scheduler.NewMonthlyCostsSyncService(
		custoRepo,
		duplicationService,
		cfg,
	)

	if err := monthlyCostsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de virada de mês dos custos")
	} else {
		logrus.Info("Agendador de virada de mês dos custos iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		provisioningService,
		ledgerService,
		duplicationService,
		gateService,
		monthlyCostsSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
