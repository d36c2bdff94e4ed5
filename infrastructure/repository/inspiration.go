package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/adgenius/adgenius-api/infrastructure/database/postgres"
	"github.com/adgenius/adgenius-api/internal/domain"
)

const inspirationsTable = "ad_inspirations"

type InspirationRepository interface {
	SaveInspiration(inspiration *domain.Inspiration) error
	GetInspirationByID(userID int, id string) (*domain.Inspiration, error)
	ListInspirations(userID int, filters domain.HistoryFilters) ([]*domain.Inspiration, error)
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

type inspirationRepository struct {
	conn *postgres.Connection
}

func NewInspirationRepository(conn *postgres.Connection) InspirationRepository {
	return &inspirationRepository{
		conn: conn,
	}
}

func (r *inspirationRepository) SaveInspiration(inspiration *domain.Inspiration) error {
	queryBuilder := squirrel.
		Insert(inspirationsTable).
		Columns("id", "user_id", "platform", "industry", "product", "results", "created_at").
		Values(
			inspiration.ID,
			inspiration.UserID,
			inspiration.Platform,
			inspiration.Industry,
			inspiration.Product,
			inspiration.Results,
			inspiration.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	insertSQL, insertArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	_, err = r.conn.Exec(insertSQL, insertArgs...)
	if err != nil {
		return fmt.Errorf("erro ao salvar inspiração: %w", err)
	}

	return nil
}

func (r *inspirationRepository) GetInspirationByID(userID int, id string) (*domain.Inspiration, error) {
	var inspiration domain.Inspiration
	err := r.conn.QueryRow(
		"SELECT id, user_id, platform, industry, product, results, created_at FROM ad_inspirations WHERE user_id = $1 AND id = $2",
		userID, id,
	).Scan(
		&inspiration.ID,
		&inspiration.UserID,
		&inspiration.Platform,
		&inspiration.Industry,
		&inspiration.Product,
		&inspiration.Results,
		&inspiration.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &inspiration, nil
}

func (r *inspirationRepository) ListInspirations(userID int, filters domain.HistoryFilters) ([]*domain.Inspiration, error) {
	queryBuilder := squirrel.
		Select("id", "user_id", "platform", "industry", "product", "results", "created_at").
		From(inspirationsTable).
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
		return nil, fmt.Errorf("erro ao listar inspirações: %w", err)
	}
	defer rows.Close()

	var inspirations []*domain.Inspiration
	for rows.Next() {
		var inspiration domain.Inspiration
		if err := rows.Scan(
			&inspiration.ID,
			&inspiration.UserID,
			&inspiration.Platform,
			&inspiration.Industry,
			&inspiration.Product,
			&inspiration.Results,
			&inspiration.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}

		inspirations = append(inspirations, &inspiration)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return inspirations, nil
}

// DeleteOlderThan remove inspirações anteriores à data de corte. Usado
// pelo job de limpeza de histórico.
func (r *inspirationRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	queryBuilder := squirrel.
		Delete(inspirationsTable).
		Where(squirrel.Lt{"created_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar)

	deleteSQL, deleteArgs, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	result, err := r.conn.Exec(deleteSQL, deleteArgs...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover inspirações antigas: %w", err)
	}

	return result.RowsAffected()
}
