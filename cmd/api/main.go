package main

import (
	"context"
	"math/rand"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adgenius/adgenius-api/infrastructure/database/postgres"
	"github.com/adgenius/adgenius-api/infrastructure/integrator/adsource"
	"github.com/adgenius/adgenius-api/infrastructure/integrator/linkfetch"
	"github.com/adgenius/adgenius-api/infrastructure/integrator/openai"
	"github.com/adgenius/adgenius-api/infrastructure/integrator/stripe"
	"github.com/adgenius/adgenius-api/infrastructure/repository"
	"github.com/adgenius/adgenius-api/internal/api"
	"github.com/adgenius/adgenius-api/internal/config"
	"github.com/adgenius/adgenius-api/internal/scheduler"
	"github.com/adgenius/adgenius-api/internal/usecases/activity"
	"github.com/adgenius/adgenius-api/internal/usecases/analyzing"
	"github.com/adgenius/adgenius-api/internal/usecases/authenticating"
	"github.com/adgenius/adgenius-api/internal/usecases/billing"
	"github.com/adgenius/adgenius-api/internal/usecases/campaign"
	"github.com/adgenius/adgenius-api/internal/usecases/discovering"
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
	inspirationRepo := repository.NewInspirationRepository(pgConn)
	adAnalysisRepo := repository.NewAdAnalysisRepository(pgConn)
	campaignAnalysisRepo := repository.NewCampaignAnalysisRepository(pgConn)
	linkAnalysisRepo := repository.NewLinkAnalysisRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	// O catálogo alimenta o conteúdo de fallback de todas as fontes
	catalog := adsource.NewCatalog(rand.New(rand.NewSource(time.Now().UnixNano())))

	sources := []adsource.Source{
		adsource.NewGoogleSource(cfg.Sources, catalog),
		adsource.NewFacebookSource(cfg.Sources, catalog),
		adsource.NewTikTokSource(cfg.Sources, catalog),
		adsource.NewInstagramSource(cfg.Sources, catalog),
		adsource.NewYouTubeSource(cfg.Sources, catalog),
		adsource.NewSemrushSource(cfg.Sources, catalog),
		adsource.NewSpyFuSource(cfg.Sources, catalog),
	}

	openaiClient := openai.NewClient(cfg)
	stripeClient := stripe.NewClient(cfg)
	linkFetcher := linkfetch.New()

	discoverService := discovering.NewService(sources, catalog, inspirationRepo)
	analyzeService := analyzing.NewService(userRepo, adAnalysisRepo)
	campaignService := campaign.NewService(openaiClient, linkFetcher, campaignAnalysisRepo, linkAnalysisRepo)
	historyService := activity.NewService(inspirationRepo, adAnalysisRepo, campaignAnalysisRepo, linkAnalysisRepo)
	billingService := billing.NewService(stripeClient, userRepo)

	// Inicializa o agendador de limpeza de histórico
	historyCleanupService := scheduler.NewHistoryCleanupService(
		inspirationRepo,
		adAnalysisRepo,
		campaignAnalysisRepo,
		linkAnalysisRepo,
		cfg,
	)

	if err := historyCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de histórico")
	} else {
		logrus.Info("Agendador de limpeza de histórico iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		discoverService,
		analyzeService,
		campaignService,
		historyService,
		billingService,
		authenticator,
		historyCleanupService,
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
