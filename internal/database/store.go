package database

import "github.com/jmoiron/sqlx"

// Store groups the repositories behind one handle.
type Store struct {
	*ArticleRepository
	*StatisticsRepository
}

// NewStore creates a Store over db.
func NewStore(db *sqlx.DB) *Store {
	return &Store{
		ArticleRepository:    NewArticleRepository(db),
		StatisticsRepository: NewStatisticsRepository(db),
	}
}
