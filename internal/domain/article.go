package domain

import (
	"strings"
	"time"
)

// Sentiment is the polarity label attached to a stored article.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// ParseSentiment accepts a case-insensitive label.
func ParseSentiment(s string) (Sentiment, bool) {
	switch Sentiment(strings.ToLower(strings.TrimSpace(s))) {
	case SentimentPositive:
		return SentimentPositive, true
	case SentimentNeutral:
		return SentimentNeutral, true
	case SentimentNegative:
		return SentimentNegative, true
	default:
		return "", false
	}
}

// Article is a stored article row.
type Article struct {
	ID              int64      `db:"id"               json:"id"`
	Headline        string     `db:"headline"         json:"headline"`
	URL             string     `db:"url"              json:"url"`
	PublicationDate *time.Time `db:"publication_date" json:"publication_date,omitempty"`
	Category        string     `db:"category"         json:"category"`
	Sentiment       Sentiment  `db:"sentiment"        json:"sentiment"`
	CreatedAt       time.Time  `db:"created_at"       json:"created_at"`
}

// ArticleStatistics is the per-category article count.
type ArticleStatistics struct {
	ID       int64  `db:"id"       json:"id"`
	Category string `db:"category" json:"category"`
	Count    int    `db:"count"    json:"count"`
}

// ArticleFilter narrows ListArticles. Zero values mean "no filter".
type ArticleFilter struct {
	Category string
	// PublishedSince keeps articles published on or after this date.
	PublishedSince *time.Time
	Limit          int
	Offset         int
}
