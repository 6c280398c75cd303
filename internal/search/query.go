// Package search turns free-text search requests into normalized query terms
// and filters that the repository layer can execute. It holds no state and
// performs no I/O, so it is safe for concurrent use.
//
//   - Unicode-aware tokenization with optional stop-word removal
//   - Functional options for the tokenizer
//   - Deterministic output (terms keep first-seen order)
package search

import (
	"errors"
	"regexp"
	"strings"
)

// Duration filters.
const (
	DurationAny   = ""
	DurationShort = "short"
	DurationLong  = "long"
)

// Sort orders.
const (
	SortDate   = "date"
	SortViews  = "views"
	SortRating = "rating"
)

// ErrEmptyQuery is returned when the query contains no searchable term.
var ErrEmptyQuery = errors.New("search query is required")

// Query is a parsed video search request.
type Query struct {
	Raw      string
	Terms    []string
	Category string
	Duration string
	SortBy   string
}

// Option configures the tokenizer.
type Option func(*config)

type config struct {
	stopwords map[string]struct{}
	maxTerms  int
}

func defaultConfig() config {
	return config{maxTerms: 8}
}

// WithStopwords drops the given words from queries.
func WithStopwords(words []string) Option {
	return func(c *config) {
		if len(words) == 0 {
			return
		}
		m := make(map[string]struct{}, len(words))
		for _, w := range words {
			w = strings.ToLower(strings.TrimSpace(w))
			if w != "" {
				m[w] = struct{}{}
			}
		}
		c.stopwords = m
	}
}

// WithMaxTerms caps how many terms a query may expand to. n <= 0 is ignored.
func WithMaxTerms(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxTerms = n
		}
	}
}

// Parser builds Query values.
type Parser struct {
	cfg config
}

// NewParser returns a Parser with the given options applied.
func NewParser(opts ...Option) *Parser {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &Parser{cfg: cfg}
}

// Parse tokenizes q and normalizes the filters. Unknown duration values are
// treated as "any" and unknown sort orders fall back to SortDate.
func (p *Parser) Parse(q, category, duration, sortBy string) (Query, error) {
	terms := p.Terms(q)
	if len(terms) == 0 {
		return Query{}, ErrEmptyQuery
	}
	out := Query{
		Raw:      strings.TrimSpace(q),
		Terms:    terms,
		Category: strings.TrimSpace(category),
	}
	switch d := strings.ToLower(strings.TrimSpace(duration)); d {
	case DurationShort, DurationLong:
		out.Duration = d
	}
	switch s := strings.ToLower(strings.TrimSpace(sortBy)); s {
	case SortViews, SortRating:
		out.SortBy = s
	default:
		out.SortBy = SortDate
	}
	return out, nil
}

// Terms returns the distinct lower-cased words of s in first-seen order.
// A leading '#' is dropped so "#golang" matches the stored hashtag.
func (p *Parser) Terms(s string) []string {
	words := wordRE.FindAllString(strings.ToLower(s), -1)
	if len(words) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if p.cfg.stopwords != nil {
			if _, skip := p.cfg.stopwords[w]; skip {
				continue
			}
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
		if len(out) == p.cfg.maxTerms {
			break
		}
	}
	return out
}

var wordRE = regexp.MustCompile(`[\p{L}\p{N}_]+`)
