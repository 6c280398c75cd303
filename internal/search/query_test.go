package search

import (
	"errors"
	"reflect"
	"testing"
)

func TestTerms_LowercaseDedupAndHashtag(t *testing.T) {
	p := NewParser()
	got := p.Terms("Go  #golang, GO tutorials! Café")
	want := []string{"go", "golang", "tutorials", "café"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Terms = %v, want %v", got, want)
	}
	if p.Terms("  !!! ") != nil {
		t.Fatalf("expected nil for punctuation-only input")
	}
}

func TestTerms_StopwordsAndCap(t *testing.T) {
	p := NewParser(WithStopwords([]string{" The ", "a", ""}), WithMaxTerms(2))
	got := p.Terms("the quick a brown fox")
	want := []string{"quick", "brown"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Terms = %v, want %v", got, want)
	}

	cfg := defaultConfig()
	WithMaxTerms(0)(&cfg)
	WithStopwords(nil)(&cfg)
	if cfg.maxTerms != 8 || cfg.stopwords != nil {
		t.Fatalf("no-op options changed config: %#v", cfg)
	}
}

func TestParse_Filters(t *testing.T) {
	p := NewParser()

	if _, err := p.Parse("   ", "", "", ""); !errors.Is(err, ErrEmptyQuery) {
		t.Fatalf("want ErrEmptyQuery, got %v", err)
	}

	q, err := p.Parse(" cats ", " Music ", "SHORT", "Views")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if q.Raw != "cats" || q.Category != "Music" || q.Duration != DurationShort || q.SortBy != SortViews {
		t.Fatalf("unexpected query %+v", q)
	}

	q, _ = p.Parse("cats", "", "medium", "bogus")
	if q.Duration != DurationAny || q.SortBy != SortDate {
		t.Fatalf("fallbacks not applied: %+v", q)
	}
}
