package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/AyushiSoni2003/Scrape-saas-news/internal/domain"
)

// StatisticsRepository maintains the article_statistics table.
type StatisticsRepository struct {
	db *sqlx.DB
}

// NewStatisticsRepository creates a StatisticsRepository.
func NewStatisticsRepository(db *sqlx.DB) *StatisticsRepository {
	return &StatisticsRepository{db: db}
}

// RecomputeStatistics replaces every count with a fresh aggregate of the
// articles table. Readers see either the old or the new table, never a mix.
func (r *StatisticsRepository) RecomputeStatistics(ctx context.Context) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin statistics transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err = tx.ExecContext(ctx, `DELETE FROM article_statistics`); err != nil {
		return fmt.Errorf("clear statistics: %w", err)
	}

	const insert = `
		INSERT INTO article_statistics (category, count)
		SELECT category, COUNT(*) FROM articles GROUP BY category`
	if _, err = tx.ExecContext(ctx, insert); err != nil {
		return fmt.Errorf("insert statistics: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit statistics transaction: %w", err)
	}
	return nil
}

// ListStatistics returns every category count ordered by category.
func (r *StatisticsRepository) ListStatistics(ctx context.Context) ([]domain.ArticleStatistics, error) {
	stats := make([]domain.ArticleStatistics, 0)
	err := r.db.SelectContext(ctx, &stats,
		`SELECT id, category, count FROM article_statistics ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("list statistics: %w", err)
	}
	return stats, nil
}
