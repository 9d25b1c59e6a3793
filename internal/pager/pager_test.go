package pager

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Chackochi310/News/internal/news"
)

func sampleArticles(n int) []news.Article {
	now := time.Now()
	out := make([]news.Article, n)
	for i := range out {
		out[i] = news.Article{
			Title:       fmt.Sprintf("Story %d", i+1),
			Description: fmt.Sprintf("Desc %d", i+1),
			URL:         fmt.Sprintf("https://example.com/%d", i+1),
			PublishedAt: now.Add(-time.Duration(i) * time.Hour),
			Source:      news.Source{Name: "Wire", URL: "https://wire.example.com"},
		}
	}
	return out
}

func titles(articles []news.Article) []string {
	out := make([]string, len(articles))
	for i, a := range articles {
		out[i] = a.Title
	}
	return out
}

func TestFilterEmptyTermIsIdentity(t *testing.T) {
	articles := sampleArticles(4)
	got := Filter(articles, "")
	if len(got) != len(articles) {
		t.Fatalf("expected %d articles, got %d", len(articles), len(got))
	}
	for i := range got {
		if got[i].Title != articles[i].Title {
			t.Errorf("position %d: got %q, want %q", i, got[i].Title, articles[i].Title)
		}
	}
}

func TestFilterFields(t *testing.T) {
	articles := []news.Article{
		{Title: "Rust 2.0 released", Source: news.Source{Name: "LWN"}},
		{Title: "Elections", Description: "Results from the RUST belt", Source: news.Source{Name: "AP"}},
		{Title: "Markets", Source: news.Source{Name: "Rusty Wire"}},
		{Title: "Weather", Content: "A rust-coloured sky", Source: news.Source{Name: "BBC"}},
		{Title: "Sports", Description: "Nothing here", Source: news.Source{Name: "ESPN"}},
	}

	tests := []struct {
		term string
		want []string
	}{
		{"rust", []string{"Rust 2.0 released", "Elections", "Markets", "Weather"}},
		{"RUST", []string{"Rust 2.0 released", "Elections", "Markets", "Weather"}},
		{"espn", []string{"Sports"}},
		{"sky", []string{"Weather"}},
		{"zzz", []string{}},
	}
	for _, tt := range tests {
		got := titles(Filter(articles, tt.term))
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("Filter(%q) = %v, want %v", tt.term, got, tt.want)
		}
	}
}

func TestFilterMissingContentDoesNotMatch(t *testing.T) {
	articles := []news.Article{{Title: "A", Description: "B", Source: news.Source{Name: "C"}}}
	if got := Filter(articles, "d"); len(got) != 0 {
		t.Errorf("expected no match, got %v", titles(got))
	}
}

func TestFilterResultsContainTerm(t *testing.T) {
	articles := sampleArticles(30)
	articles[3].Content = "breaking update"
	for _, term := range []string{"1", "story 2", "DESC", "update", "wire"} {
		needle := strings.ToLower(term)
		for _, a := range Filter(articles, term) {
			found := false
			for _, f := range []string{a.Title, a.Description, a.Source.Name, a.Content} {
				if strings.Contains(strings.ToLower(f), needle) {
					found = true
				}
			}
			if !found {
				t.Errorf("Filter(%q) returned %q which does not contain the term", term, a.Title)
			}
		}
	}
}

func TestPage(t *testing.T) {
	filtered := sampleArticles(7)
	tests := []struct {
		index, size int
		want        int
	}{
		{1, 6, 6},
		{2, 6, 1},
		{3, 6, 0},
		{0, 6, 0},
		{-1, 6, 0},
		{1, 10, 7},
		{1, 0, 0},
	}
	for _, tt := range tests {
		got := Page(filtered, tt.index, tt.size)
		if len(got) != tt.want {
			t.Errorf("Page(7 items, %d, %d) returned %d items, want %d", tt.index, tt.size, len(got), tt.want)
		}
	}
	if got := Page(filtered, 2, 6); got[0].Title != "Story 7" {
		t.Errorf("expected tail remainder Story 7, got %q", got[0].Title)
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		n, size, want int
	}{
		{0, 6, 0},
		{1, 6, 1},
		{6, 6, 1},
		{7, 6, 2},
		{12, 6, 2},
		{13, 6, 3},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.n, tt.size); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.n, tt.size, got, tt.want)
		}
	}
}

func TestNewDefaultsPageSize(t *testing.T) {
	if got := New(0).PageSize(); got != DefaultPageSize {
		t.Errorf("expected page size %d, got %d", DefaultPageSize, got)
	}
	if got := New(10).PageSize(); got != 10 {
		t.Errorf("expected page size 10, got %d", got)
	}
}

func TestSearchTermResetsPage(t *testing.T) {
	p := New(2)
	p.SetArticles(sampleArticles(10))
	p.NextPage()
	p.NextPage()
	if p.PageIndex() != 3 {
		t.Fatalf("expected page 3, got %d", p.PageIndex())
	}

	p.SetSearchTerm("story")
	if p.PageIndex() != 1 {
		t.Errorf("expected page 1 after new term, got %d", p.PageIndex())
	}

	// Same term again still resets.
	p.NextPage()
	p.SetSearchTerm("story")
	if p.PageIndex() != 1 {
		t.Errorf("expected page 1 after repeated term, got %d", p.PageIndex())
	}
}

func TestSetArticlesResetsPage(t *testing.T) {
	p := New(2)
	p.SetArticles(sampleArticles(10))
	p.NextPage()
	p.SetArticles(sampleArticles(3))
	if p.PageIndex() != 1 {
		t.Errorf("expected page 1, got %d", p.PageIndex())
	}
	if p.TotalPages() != 2 {
		t.Errorf("expected 2 pages, got %d", p.TotalPages())
	}
}

func TestNextPreviousBoundaries(t *testing.T) {
	p := New(6)
	p.SetArticles(sampleArticles(13))

	if p.PreviousPage() {
		t.Error("PreviousPage on page 1 should be a no-op")
	}
	if p.PageIndex() != 1 {
		t.Errorf("expected page 1, got %d", p.PageIndex())
	}

	for p.NextPage() {
	}
	if p.PageIndex() != 3 {
		t.Errorf("expected to stop at page 3, got %d", p.PageIndex())
	}
	if p.NextPage() {
		t.Error("NextPage on last page should be a no-op")
	}
	if p.PageIndex() != p.TotalPages() {
		t.Errorf("page %d should equal total %d", p.PageIndex(), p.TotalPages())
	}
	if len(p.CurrentPage()) != 1 {
		t.Errorf("expected 1 article on the last page, got %d", len(p.CurrentPage()))
	}

	if !p.PreviousPage() || p.PageIndex() != 2 {
		t.Errorf("expected PreviousPage to move to 2, at %d", p.PageIndex())
	}
}

func TestCurrentPageNeverExceedsSize(t *testing.T) {
	for n := 0; n < 20; n++ {
		p := New(6)
		p.SetArticles(sampleArticles(n))
		for {
			if got := len(p.CurrentPage()); got > p.PageSize() {
				t.Fatalf("n=%d page=%d: %d articles exceeds page size", n, p.PageIndex(), got)
			}
			if !p.NextPage() {
				break
			}
		}
	}
}

func TestScenarioSearchNarrowsToOnePage(t *testing.T) {
	articles := []news.Article{
		{Title: "Alpha"},
		{Title: "Bravo"},
		{Title: "Charlie"},
		{Title: "Delta"},
		{Title: "Lambda"},
		{Title: "Echo"},
	}
	p := New(6)
	p.SetArticles(articles)
	p.SetSearchTerm("b")

	if p.TotalPages() != 1 {
		t.Errorf("expected 1 page, got %d", p.TotalPages())
	}
	got := titles(p.CurrentPage())
	if strings.Join(got, ",") != "Bravo,Lambda" {
		t.Errorf("expected Bravo,Lambda, got %v", got)
	}
	if p.PageIndex() != 1 {
		t.Errorf("expected page 1, got %d", p.PageIndex())
	}
}

func TestScenarioNoArticles(t *testing.T) {
	p := New(6)
	p.SetArticles(nil)

	if !p.Empty() {
		t.Error("expected empty pager")
	}
	if p.TotalPages() != 0 {
		t.Errorf("expected 0 pages, got %d", p.TotalPages())
	}
	if p.PageIndex() != 1 {
		t.Errorf("expected page index 1, got %d", p.PageIndex())
	}
	if p.NextPage() || p.PreviousPage() {
		t.Error("navigation should be a no-op with no articles")
	}
	if len(p.CurrentPage()) != 0 {
		t.Errorf("expected empty page, got %d", len(p.CurrentPage()))
	}
}
