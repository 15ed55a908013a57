// Package sentiment labels article headlines as positive, neutral or negative
// from a polarity score computed over a word lexicon.
package sentiment

import (
	"strings"
	"unicode"

	"github.com/cloudflare/ahocorasick"

	"github.com/AyushiSoni2003/Scrape-saas-news/internal/domain"
)

// Threshold is the polarity magnitude needed to leave neutral.
const Threshold = 0.2

// Classifier labels free text.
type Classifier interface {
	Classify(text string) domain.Sentiment
}

// LexiconClassifier scores text by counting positive and negative lexicon
// words, matched in one pass with an Aho-Corasick automaton.
type LexiconClassifier struct {
	matcher *ahocorasick.Matcher
	entries []entry
}

// entry is one automaton pattern. Negated entries carry the flipped score of
// the word they wrap.
type entry struct {
	word    string
	score   float64
	negated bool
}

// NewLexiconClassifier builds a classifier from the built-in lexicon.
func NewLexiconClassifier() *LexiconClassifier {
	return NewLexiconClassifierWith(positiveWords, negativeWords)
}

// NewLexiconClassifierWith builds a classifier from custom word lists.
// A negator ("not", "no", "never") right before a word flips its polarity.
func NewLexiconClassifierWith(positive, negative []string) *LexiconClassifier {
	c := &LexiconClassifier{}
	patterns := make([]string, 0, (len(positive)+len(negative))*(len(negators)+1))

	add := func(raw string, score float64) {
		word := strings.Join(tokenize(raw), " ")
		if word == "" {
			return
		}
		patterns = append(patterns, " "+word+" ")
		c.entries = append(c.entries, entry{word: word, score: score})
		for _, neg := range negators {
			patterns = append(patterns, " "+neg+" "+word+" ")
			c.entries = append(c.entries, entry{word: word, score: -score, negated: true})
		}
	}
	for _, w := range positive {
		add(w, 1)
	}
	for _, w := range negative {
		add(w, -1)
	}

	c.matcher = ahocorasick.NewStringMatcher(patterns)
	return c
}

// Polarity returns a score in [-1, 1]; 0 when no lexicon word appears.
// Each distinct lexicon word counts once.
func (c *LexiconClassifier) Polarity(text string) float64 {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return 0
	}
	hits := c.matcher.Match([]byte(" " + strings.Join(tokens, " ") + " "))

	negated := make(map[string]bool)
	for _, idx := range hits {
		if e := c.entries[idx]; e.negated {
			negated[e.word] = true
		}
	}

	var pos, neg float64
	for _, idx := range hits {
		e := c.entries[idx]
		if !e.negated && negated[e.word] {
			continue
		}
		if e.score > 0 {
			pos++
		} else {
			neg++
		}
	}
	if pos+neg == 0 {
		return 0
	}
	return (pos - neg) / (pos + neg)
}

// Classify maps Polarity onto a label. Empty text is neutral.
func (c *LexiconClassifier) Classify(text string) domain.Sentiment {
	p := c.Polarity(text)
	switch {
	case p > Threshold:
		return domain.SentimentPositive
	case p < -Threshold:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}

// tokenize lowercases text and splits it on anything that is not a letter
// or digit.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
