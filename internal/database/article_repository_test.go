package database_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AyushiSoni2003/Scrape-saas-news/internal/database"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/domain"
)

var articleColumns = []string{"id", "headline", "url", "publication_date", "category", "sentiment", "created_at"}

func newStore(t *testing.T) (*database.Store, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	return database.NewStore(sqlx.NewDb(mockDB, "postgres")), mock
}

func expectationsMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	require.NoError(t, mock.ExpectationsWereMet())
}

func sampleArticles() []domain.Article {
	date := time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Article{
		{Headline: "Acme raises", URL: "https://www.thesaasnews.com/news/acme", PublicationDate: &date, Category: "SaaS News", Sentiment: domain.SentimentPositive},
		{Headline: "Beta layoffs", URL: "https://www.thesaasnews.com/news/beta", Category: "Other", Sentiment: domain.SentimentNegative},
	}
}

func TestSaveArticles_SkipsExisting(t *testing.T) {
	t.Parallel()
	store, mock := newStore(t)
	articles := sampleArticles()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO articles .+ ON CONFLICT \\(url\\) DO NOTHING").
		WithArgs(articles[0].Headline, articles[0].URL, articles[0].PublicationDate, articles[0].Category, articles[0].Sentiment).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO articles").
		WithArgs(articles[1].Headline, articles[1].URL, nil, articles[1].Category, articles[1].Sentiment).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	inserted, err := store.SaveArticles(context.Background(), articles)

	require.NoError(t, err)
	assert.Equal(t, 1, inserted)
	expectationsMet(t, mock)
}

func TestSaveArticles_RollsBackOnError(t *testing.T) {
	t.Parallel()
	store, mock := newStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO articles").WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := store.SaveArticles(context.Background(), sampleArticles())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert article")
	expectationsMet(t, mock)
}

func TestSaveArticles_Empty(t *testing.T) {
	t.Parallel()
	store, mock := newStore(t)

	inserted, err := store.SaveArticles(context.Background(), nil)

	require.NoError(t, err)
	assert.Zero(t, inserted)
	expectationsMet(t, mock)
}

func TestCreateArticle(t *testing.T) {
	t.Parallel()
	store, mock := newStore(t)
	a := sampleArticles()[0]
	created := time.Now().UTC()

	mock.ExpectQuery("INSERT INTO articles .+ RETURNING id, created_at").
		WithArgs(a.Headline, a.URL, a.PublicationDate, a.Category, a.Sentiment).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(42, created))

	require.NoError(t, store.CreateArticle(context.Background(), &a))
	assert.EqualValues(t, 42, a.ID)
	assert.Equal(t, created, a.CreatedAt)
	expectationsMet(t, mock)
}

func TestCreateArticle_Duplicate(t *testing.T) {
	t.Parallel()
	store, mock := newStore(t)
	a := sampleArticles()[1]

	mock.ExpectQuery("INSERT INTO articles").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}))

	err := store.CreateArticle(context.Background(), &a)

	require.ErrorIs(t, err, database.ErrDuplicateURL)
	expectationsMet(t, mock)
}

func TestGetArticle(t *testing.T) {
	t.Parallel()
	store, mock := newStore(t)
	date := time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)
	created := time.Now().UTC()

	mock.ExpectQuery("SELECT .+ FROM articles WHERE id = \\$1").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(articleColumns).
			AddRow(7, "Acme raises", "https://www.thesaasnews.com/news/acme", date, "SaaS News", "positive", created))

	got, err := store.GetArticle(context.Background(), 7)

	require.NoError(t, err)
	assert.EqualValues(t, 7, got.ID)
	assert.Equal(t, domain.SentimentPositive, got.Sentiment)
	require.NotNil(t, got.PublicationDate)
	assert.Equal(t, date, *got.PublicationDate)
	expectationsMet(t, mock)
}

func TestGetArticle_NotFound(t *testing.T) {
	t.Parallel()
	store, mock := newStore(t)

	mock.ExpectQuery("SELECT .+ FROM articles WHERE id").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := store.GetArticle(context.Background(), 99)

	require.ErrorIs(t, err, database.ErrNotFound)
	expectationsMet(t, mock)
}

func TestListArticles_DateIsLowerBound(t *testing.T) {
	t.Parallel()
	store, mock := newStore(t)
	since := time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC)
	april := time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM articles WHERE publication_date >= \\$1$").
		WithArgs("2023-03-15").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT .+ FROM articles WHERE publication_date >= \\$1 ORDER BY id LIMIT \\$2 OFFSET \\$3").
		WithArgs("2023-03-15", database.DefaultListLimit, 0).
		WillReturnRows(sqlmock.NewRows(articleColumns).
			AddRow(2, "Beta raises", "https://www.thesaasnews.com/news/beta", april, "AI/ML", "neutral", time.Now()))

	got, total, err := store.ListArticles(context.Background(), domain.ArticleFilter{PublishedSince: &since})

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].PublicationDate)
	assert.True(t, got[0].PublicationDate.After(since))
	expectationsMet(t, mock)
}

func TestListArticles_WithFilters(t *testing.T) {
	t.Parallel()
	store, mock := newStore(t)
	date := time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM articles WHERE category = \\$1 AND publication_date >= \\$2").
		WithArgs("SaaS News", "2023-03-01").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT .+ FROM articles WHERE category = \\$1 AND publication_date >= \\$2 ORDER BY id LIMIT \\$3 OFFSET \\$4").
		WithArgs("SaaS News", "2023-03-01", 10, 5).
		WillReturnRows(sqlmock.NewRows(articleColumns).
			AddRow(1, "Acme raises", "https://www.thesaasnews.com/news/acme", date, "SaaS News", "positive", time.Now()))

	got, total, err := store.ListArticles(context.Background(), domain.ArticleFilter{
		Category:       "SaaS News",
		PublishedSince: &date,
		Limit:          10,
		Offset:         5,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, got, 1)
	assert.Equal(t, "https://www.thesaasnews.com/news/acme", got[0].URL)
	expectationsMet(t, mock)
}

func TestListArticles_DefaultsAndClamp(t *testing.T) {
	t.Parallel()
	store, mock := newStore(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM articles$").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT .+ FROM articles ORDER BY id LIMIT \\$1 OFFSET \\$2").
		WithArgs(database.MaxListLimit, 0).
		WillReturnRows(sqlmock.NewRows(articleColumns))

	got, total, err := store.ListArticles(context.Background(), domain.ArticleFilter{Limit: 5000, Offset: -3})

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	expectationsMet(t, mock)
}
