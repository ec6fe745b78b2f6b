package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-guardian/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-guardian/infrastructure/integrator/meta"
	"github.com/vfg2006/campaign-guardian/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/campaign-guardian/infrastructure/repository"
	"github.com/vfg2006/campaign-guardian/internal/api"
	"github.com/vfg2006/campaign-guardian/internal/config"
	"github.com/vfg2006/campaign-guardian/internal/scheduler"
	"github.com/vfg2006/campaign-guardian/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-guardian/internal/usecases/evaluating"
	"github.com/vfg2006/campaign-guardian/internal/usecases/monitoring"
	"github.com/vfg2006/campaign-guardian/internal/usecases/registry"
	"github.com/vfg2006/campaign-guardian/internal/usecases/scoring"
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

	userRepo := repository.NewUserRepository(pgConn)
	entityRepo := repository.NewMonitoredEntityRepository(pgConn)
	decisionRepo := repository.NewDecisionRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	entityRegistry := registry.NewService(entityRepo)

	scorer := scoring.NewService(cfg)
	evaluator, err := buildEvaluator(cfg)
	if err != nil {
		logrus.Fatal(err)
	}

	monitor := monitoring.NewService(
		metaIntegrator,
		scorer,
		evaluator,
		decisionRepo,
		cfg.Engine.AutoActionsEnabled,
	)

	decisionCycleService := scheduler.NewDecisionCycleService(entityRepo, monitor, cfg)

	if err := decisionCycleService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de ciclos de decisão")
	} else {
		logrus.Info("Agendador de ciclos de decisão iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		entityRegistry,
		monitor,
		authenticator,
		decisionCycleService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// buildEvaluator monta o avaliador de regras a partir do arquivo YAML quando
// configurado, senão com a tabela de regras padrão
func buildEvaluator(cfg *config.Config) (evaluating.Evaluator, error) {
	if cfg.Engine.RulesFile == "" {
		return evaluating.NewService(evaluating.DefaultRules()), nil
	}

	rules, err := evaluating.LoadRulesFile(cfg.Engine.RulesFile)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"rules_file": cfg.Engine.RulesFile,
		"rules":      len(rules),
	}).Info("Tabela de regras carregada do arquivo")

	return evaluating.NewService(rules), nil
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
