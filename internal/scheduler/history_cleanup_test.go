package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/adgenius/adgenius-api/infrastructure/repository/mocks"
)

func newCleanupService(t *testing.T) (*HistoryCleanupService, *mocks.MockInspirationRepository, *mocks.MockAdAnalysisRepository, *mocks.MockCampaignAnalysisRepository, *mocks.MockLinkAnalysisRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	inspirationRepo := mocks.NewMockInspirationRepository(ctrl)
	adAnalysisRepo := mocks.NewMockAdAnalysisRepository(ctrl)
	campaignRepo := mocks.NewMockCampaignAnalysisRepository(ctrl)
	linkRepo := mocks.NewMockLinkAnalysisRepository(ctrl)

	service := &HistoryCleanupService{
		config: HistoryCleanupConfig{
			CronSchedule:  "0 4 * * *",
			RetentionDays: 180,
			Enabled:       true,
		},
		inspirationRepo: inspirationRepo,
		adAnalysisRepo:  adAnalysisRepo,
		campaignRepo:    campaignRepo,
		linkRepo:        linkRepo,
	}

	return service, inspirationRepo, adAnalysisRepo, campaignRepo, linkRepo
}

func TestPurge_SomaLinhasRemovidasDeTodosOsRepositorios(t *testing.T) {
	service, inspirationRepo, adAnalysisRepo, campaignRepo, linkRepo := newCleanupService(t)

	cutoff := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	inspirationRepo.EXPECT().DeleteOlderThan(cutoff).Return(int64(3), nil)
	adAnalysisRepo.EXPECT().DeleteOlderThan(cutoff).Return(int64(2), nil)
	campaignRepo.EXPECT().DeleteOlderThan(cutoff).Return(int64(0), nil)
	linkRepo.EXPECT().DeleteOlderThan(cutoff).Return(int64(1), nil)

	total := service.purge(cutoff)

	assert.Equal(t, int64(6), total)
}

func TestPurge_FalhaEmUmRepositorioNaoImpedeOsDemais(t *testing.T) {
	service, inspirationRepo, adAnalysisRepo, campaignRepo, linkRepo := newCleanupService(t)

	cutoff := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	inspirationRepo.EXPECT().DeleteOlderThan(cutoff).Return(int64(0), errors.New("conexão recusada"))
	adAnalysisRepo.EXPECT().DeleteOlderThan(cutoff).Return(int64(2), nil)
	campaignRepo.EXPECT().DeleteOlderThan(cutoff).Return(int64(1), nil)
	linkRepo.EXPECT().DeleteOlderThan(cutoff).Return(int64(1), nil)

	total := service.purge(cutoff)

	assert.Equal(t, int64(4), total)
}

func TestGetStatus(t *testing.T) {
	service, _, _, _, _ := newCleanupService(t)

	status := service.GetStatus()

	assert.Equal(t, false, status["cleanup_running"])
	assert.Equal(t, "0 4 * * *", status["cleanup_cron"])
	assert.Equal(t, true, status["cleanup_enabled"])
	assert.Equal(t, 180, status["retention_days"])
}
