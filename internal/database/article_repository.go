package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/AyushiSoni2003/Scrape-saas-news/internal/domain"
)

var (
	ErrNotFound     = errors.New("article not found")
	ErrDuplicateURL = errors.New("article with this url already exists")
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

const articleColumns = `id, headline, url, publication_date, category, sentiment, created_at`

// ArticleRepository reads and writes the articles table.
type ArticleRepository struct {
	db *sqlx.DB
}

// NewArticleRepository creates an ArticleRepository.
func NewArticleRepository(db *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// SaveArticles inserts articles in one transaction, skipping URLs that are
// already stored. It returns how many rows were inserted.
func (r *ArticleRepository) SaveArticles(ctx context.Context, articles []domain.Article) (int, error) {
	if len(articles) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin save transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	const query = `
		INSERT INTO articles (headline, url, publication_date, category, sentiment)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (url) DO NOTHING`

	inserted := 0
	for i := range articles {
		a := &articles[i]
		result, execErr := tx.ExecContext(ctx, query,
			a.Headline, a.URL, a.PublicationDate, a.Category, a.Sentiment)
		if execErr != nil {
			return 0, fmt.Errorf("insert article %s: %w", a.URL, execErr)
		}
		n, affectedErr := result.RowsAffected()
		if affectedErr != nil {
			return 0, fmt.Errorf("rows affected: %w", affectedErr)
		}
		inserted += int(n)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit save transaction: %w", err)
	}
	return inserted, nil
}

// CreateArticle inserts one article and fills in its ID and CreatedAt.
// An existing URL returns ErrDuplicateURL.
func (r *ArticleRepository) CreateArticle(ctx context.Context, a *domain.Article) error {
	const query = `
		INSERT INTO articles (headline, url, publication_date, category, sentiment)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (url) DO NOTHING
		RETURNING id, created_at`

	err := r.db.QueryRowxContext(ctx, query,
		a.Headline, a.URL, a.PublicationDate, a.Category, a.Sentiment,
	).Scan(&a.ID, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrDuplicateURL
	}
	if err != nil {
		return fmt.Errorf("create article: %w", err)
	}
	return nil
}

// GetArticle returns one article by ID.
func (r *ArticleRepository) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	var a domain.Article
	err := r.db.GetContext(ctx, &a, `SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get article %d: %w", id, err)
	}
	return &a, nil
}

// ListArticles returns the filtered page of articles ordered by ID, plus the
// total number of matching rows.
func (r *ArticleRepository) ListArticles(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, int, error) {
	where, args := buildArticleWhere(filter)

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM articles`+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	offset := max(filter.Offset, 0)

	query := fmt.Sprintf(`SELECT %s FROM articles%s ORDER BY id LIMIT $%d OFFSET $%d`,
		articleColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	articles := make([]domain.Article, 0)
	if err := r.db.SelectContext(ctx, &articles, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}
	return articles, total, nil
}

func buildArticleWhere(filter domain.ArticleFilter) (string, []any) {
	var (
		clauses []string
		args    []any
	)
	if filter.Category != "" {
		args = append(args, filter.Category)
		clauses = append(clauses, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.PublishedSince != nil {
		args = append(args, filter.PublishedSince.Format("2006-01-02"))
		clauses = append(clauses, fmt.Sprintf("publication_date >= $%d", len(args)))
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}
