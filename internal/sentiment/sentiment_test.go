package sentiment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AyushiSoni2003/Scrape-saas-news/internal/domain"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/sentiment"
)

func TestLexiconClassifier_Classify(t *testing.T) {
	t.Parallel()

	c := sentiment.NewLexiconClassifier()

	tests := []struct {
		text string
		want domain.Sentiment
	}{
		{"Acme raises $20M Series B to accelerate growth", domain.SentimentPositive},
		{"Acme announces layoffs after revenue decline", domain.SentimentNegative},
		{"Acme appoints new CFO", domain.SentimentNeutral},
		{"", domain.SentimentNeutral},
		{"   \n", domain.SentimentNeutral},
		{"Acme raises funding amid layoffs", domain.SentimentNeutral},
		{"Growth was not strong this quarter", domain.SentimentNeutral},
		{"Deal is not bad", domain.SentimentPositive},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, c.Classify(tt.text))
		})
	}
}

func TestLexiconClassifier_WordBoundaries(t *testing.T) {
	t.Parallel()

	c := sentiment.NewLexiconClassifierWith([]string{"win"}, []string{"cut"})

	assert.Zero(t, c.Polarity("Windows shortcut"))
	assert.InDelta(t, 1.0, c.Polarity("Big WIN!"), 1e-9)
	assert.InDelta(t, -1.0, c.Polarity("budget cut"), 1e-9)
}

func TestLexiconClassifier_PolarityRange(t *testing.T) {
	t.Parallel()

	c := sentiment.NewLexiconClassifierWith([]string{"good", "great"}, []string{"bad"})

	assert.InDelta(t, 1.0/3.0, c.Polarity("good and great but bad"), 1e-9)
	assert.InDelta(t, -1.0, c.Polarity("never good"), 1e-9)
}
