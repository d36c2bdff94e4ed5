package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/adgenius/adgenius-api/infrastructure/database/postgres"
	"github.com/adgenius/adgenius-api/internal/domain"
)

const linkAnalysesTable = "link_analyses"

type LinkAnalysisRepository interface {
	SaveLinkAnalysis(analysis *domain.LinkAnalysis) error
	ListLinkAnalyses(userID int, filters domain.HistoryFilters) ([]*domain.LinkAnalysis, error)
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

type linkAnalysisRepository struct {
	conn *postgres.Connection
}

func NewLinkAnalysisRepository(conn *postgres.Connection) LinkAnalysisRepository {
	return &linkAnalysisRepository{
		conn: conn,
	}
}

func (r *linkAnalysisRepository) SaveLinkAnalysis(analysis *domain.LinkAnalysis) error {
	queryBuilder := squirrel.
		Insert(linkAnalysesTable).
		Columns("id", "user_id", "link_url", "analysis", "created_at").
		Values(
			analysis.ID,
			analysis.UserID,
			analysis.LinkURL,
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
		return fmt.Errorf("erro ao salvar análise de link: %w", err)
	}

	return nil
}

func (r *linkAnalysisRepository) ListLinkAnalyses(userID int, filters domain.HistoryFilters) ([]*domain.LinkAnalysis, error) {
	queryBuilder := squirrel.
		Select("id", "user_id", "link_url", "analysis", "created_at").
		From(linkAnalysesTable).
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
		return nil, fmt.Errorf("erro ao listar análises de link: %w", err)
	}
	defer rows.Close()

	var analyses []*domain.LinkAnalysis
	for rows.Next() {
		var analysis domain.LinkAnalysis
		if err := rows.Scan(
			&analysis.ID,
			&analysis.UserID,
			&analysis.LinkURL,
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

func (r *linkAnalysisRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	queryBuilder := squirrel.
		Delete(linkAnalysesTable).
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
