package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/adgenius/adgenius-api/infrastructure/database/postgres"
	"github.com/adgenius/adgenius-api/internal/domain"
)

const campaignAnalysesTable = "campaign_analyses"

type CampaignAnalysisRepository interface {
	SaveCampaignAnalysis(analysis *domain.CampaignAnalysis) error
	ListCampaignAnalyses(userID int, filters domain.HistoryFilters) ([]*domain.CampaignAnalysis, error)
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

type campaignAnalysisRepository struct {
	conn *postgres.Connection
}

func NewCampaignAnalysisRepository(conn *postgres.Connection) CampaignAnalysisRepository {
	return &campaignAnalysisRepository{
		conn: conn,
	}
}

func (r *campaignAnalysisRepository) SaveCampaignAnalysis(analysis *domain.CampaignAnalysis) error {
	queryBuilder := squirrel.
		Insert(campaignAnalysesTable).
		Columns("id", "user_id", "campaign_details", "analysis", "created_at").
		Values(
			analysis.ID,
			analysis.UserID,
			analysis.CampaignDetails,
			analysis.Analysis,
			analysis.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	insertSQL, insertArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	_, err = r.conn.Exec(insertSQL, insertArgs...)
	if err != nil {
		return fmt.Errorf("erro ao salvar análise de campanha: %w", err)
	}

	return nil
}

func (r *campaignAnalysisRepository) ListCampaignAnalyses(userID int, filters domain.HistoryFilters) ([]*domain.CampaignAnalysis, error) {
	queryBuilder := squirrel.
		Select("id", "user_id", "campaign_details", "analysis", "created_at").
		From(campaignAnalysesTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.StartDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"created_at": *filters.StartDate})
	}

	if filters.EndDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"created_at": *filters.EndDate})
	}

	listSQL, listArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.Query(listSQL, listArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar análises de campanha: %w", err)
	}
	defer rows.Close()

	var analyses []*domain.CampaignAnalysis
	for rows.Next() {
		var analysis domain.CampaignAnalysis
		if err := rows.Scan(
			&analysis.ID,
			&analysis.UserID,
			&analysis.CampaignDetails,
			&analysis.Analysis,
			&analysis.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}

		analyses = append(analyses, &analysis)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return analyses, nil
}

func (r *campaignAnalysisRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	queryBuilder := squirrel.
		Delete(campaignAnalysesTable).
		Where(squirrel.Lt{"created_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar)

	deleteSQL, deleteArgs, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	result, err := r.conn.Exec(deleteSQL, deleteArgs...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover análises antigas: %w", err)
	}

	return result.RowsAffected()
}
