package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/adgenius/adgenius-api/internal/api/handler"
	"github.com/adgenius/adgenius-api/internal/api/handler/router"
	"github.com/adgenius/adgenius-api/internal/config"
	"github.com/adgenius/adgenius-api/internal/scheduler"
	"github.com/adgenius/adgenius-api/internal/usecases/activity"
	"github.com/adgenius/adgenius-api/internal/usecases/analyzing"
	"github.com/adgenius/adgenius-api/internal/usecases/authenticating"
	"github.com/adgenius/adgenius-api/internal/usecases/billing"
	"github.com/adgenius/adgenius-api/internal/usecases/campaign"
	"github.com/adgenius/adgenius-api/internal/usecases/discovering"
	"github.com/adgenius/adgenius-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	discoverService discovering.Discoverer,
	analyzeService analyzing.Analyzer,
	campaignService campaign.Analyzer,
	historyService activity.Historian,
	billingService billing.Biller,
	authenticator authenticating.Authenticator,
	historyCleanupService *scheduler.HistoryCleanupService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		HistoryCleanupService: historyCleanupService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Inspirations(discoverService)...),
		router.WithRoutes(handler.Analysis(analyzeService)...),
		router.WithRoutes(handler.Campaigns(campaignService)...),
		router.WithRoutes(handler.History(historyService)...),
		router.WithRoutes(handler.Billing(billingService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
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

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
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
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
