package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/adgenius/adgenius-api/infrastructure/repository"
	"github.com/adgenius/adgenius-api/internal/config"
)

// HistoryCleanupConfig representa a configuração do agendador de limpeza de histórico
type HistoryCleanupConfig struct {
	CronSchedule  string
	RetentionDays int
	Enabled       bool
}

// HistoryCleanupService remove periodicamente as atividades antigas do
// histórico: inspirações e os três tipos de análise.
type HistoryCleanupService struct {
	scheduler          *gocron.Scheduler
	config             HistoryCleanupConfig
	inspirationRepo    repository.InspirationRepository
	adAnalysisRepo     repository.AdAnalysisRepository
	campaignRepo       repository.CampaignAnalysisRepository
	linkRepo           repository.LinkAnalysisRepository
	cleanupRunning     bool
	cleanupMutex       sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

// NewHistoryCleanupService cria uma nova instância do serviço de limpeza de histórico
func NewHistoryCleanupService(
	inspirationRepo repository.InspirationRepository,
	adAnalysisRepo repository.AdAnalysisRepository,
	campaignRepo repository.CampaignAnalysisRepository,
	linkRepo repository.LinkAnalysisRepository,
	appConfig *config.Config,
) *HistoryCleanupService {
	cleanupConfig := HistoryCleanupConfig{
		CronSchedule:  appConfig.HistoryCleanup.CronSchedule,
		RetentionDays: appConfig.HistoryCleanup.RetentionDays,
		Enabled:       appConfig.HistoryCleanup.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  cleanupConfig.CronSchedule,
		"retention_days": cleanupConfig.RetentionDays,
		"enabled":        cleanupConfig.Enabled,
	}).Info("Configuração do agendador de limpeza de histórico carregada")

	return &HistoryCleanupService{
		scheduler:       scheduler,
		config:          cleanupConfig,
		inspirationRepo: inspirationRepo,
		adAnalysisRepo:  adAnalysisRepo,
		campaignRepo:    campaignRepo,
		linkRepo:        linkRepo,
		cleanupRunning:  false,
	}
}

// Start inicia o agendador
func (s *HistoryCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de histórico desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de histórico")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.cleanupHistory()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de histórico: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de histórico")
		s.scheduler.Stop()
	}()

	return nil
}

// cleanupHistory remove as atividades mais antigas que o período de retenção
func (s *HistoryCleanupService) cleanupHistory() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de histórico já em andamento, ignorando")
		return
	}
	s.cleanupRunning = true
	s.cleanupMutex.Unlock()

	startTime := time.Now()
	s.lastRunStartedAt = startTime

	defer func() {
		s.cleanupMutex.Lock()
		s.cleanupRunning = false
		s.cleanupMutex.Unlock()
	}()

	cutoff := time.Now().AddDate(0, 0, -s.config.RetentionDays)

	logrus.WithFields(logrus.Fields{
		"cutoff":         cutoff.Format(time.DateOnly),
		"retention_days": s.config.RetentionDays,
	}).Info("Iniciando limpeza de histórico")

	total := s.purge(cutoff)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":     duration.String(),
		"removed_rows": total,
	}).Info("Limpeza de histórico concluída")

	s.lastRunCompletedAt = time.Now()
}

// purge executa a remoção em cada repositório e soma as linhas removidas.
// Uma falha em um repositório não impede a limpeza dos demais.
func (s *HistoryCleanupService) purge(cutoff time.Time) int64 {
	var total int64

	targets := []struct {
		name   string
		delete func(time.Time) (int64, error)
	}{
		{name: "inspirações", delete: s.inspirationRepo.DeleteOlderThan},
		{name: "análises de anúncio", delete: s.adAnalysisRepo.DeleteOlderThan},
		{name: "análises de campanha", delete: s.campaignRepo.DeleteOlderThan},
		{name: "análises de link", delete: s.linkRepo.DeleteOlderThan},
	}

	for _, target := range targets {
		removed, err := target.delete(cutoff)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"target": target.name,
			}).Error("Erro ao remover atividades antigas do histórico")
			continue
		}

		if removed > 0 {
			logrus.WithFields(logrus.Fields{
				"target":       target.name,
				"removed_rows": removed,
			}).Info("Atividades antigas removidas do histórico")
		}

		total += removed
	}

	return total
}

// TriggerManualCleanup dispara a limpeza fora do agendamento
func (s *HistoryCleanupService) TriggerManualCleanup() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de histórico já em andamento, ignorando solicitação manual")
		return
	}
	s.cleanupMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de histórico")
	go s.cleanupHistory()
}

// GetStatus retorna o status atual da limpeza
func (s *HistoryCleanupService) GetStatus() map[string]any {
	s.cleanupMutex.Lock()
	defer s.cleanupMutex.Unlock()

	return map[string]any{
		"cleanup_running":       s.cleanupRunning,
		"cleanup_cron":          s.config.CronSchedule,
		"cleanup_enabled":       s.config.Enabled,
		"retention_days":        s.config.RetentionDays,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
	}
}
