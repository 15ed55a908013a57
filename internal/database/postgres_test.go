package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AyushiSoni2003/Scrape-saas-news/internal/database"
)

func TestConfig_DSNAndURL(t *testing.T) {
	t.Parallel()

	cfg := database.Config{
		Host: "db", Port: "5432", User: "news", Password: "p@ss", DBName: "saasnews", SSLMode: "disable",
	}

	assert.Equal(t, "host=db port=5432 user=news password=p@ss dbname=saasnews sslmode=disable", cfg.DSN())
	assert.Equal(t, "postgres://news:p%40ss@db:5432/saasnews?sslmode=disable", cfg.URL())
}
