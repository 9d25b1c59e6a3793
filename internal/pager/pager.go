// Package pager filters a loaded article set by a search term and splits the
// result into fixed-size pages.
package pager

import (
	"strings"

	"github.com/Chackochi310/News/internal/news"
)

// DefaultPageSize is the number of articles shown per page.
const DefaultPageSize = 6

// Filter returns the articles whose title, description, source name or
// content contains term, ignoring case. Order is preserved. An empty term
// matches every article.
func Filter(articles []news.Article, term string) []news.Article {
	if term == "" {
		return articles
	}
	needle := strings.ToLower(term)
	out := make([]news.Article, 0, len(articles))
	for _, a := range articles {
		if matches(a, needle) {
			out = append(out, a)
		}
	}
	return out
}

func matches(a news.Article, needle string) bool {
	for _, field := range []string{a.Title, a.Description, a.Source.Name, a.Content} {
		if field != "" && strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Page returns the 1-based page of filtered. Pages past the end, and indexes
// below 1, are empty.
func Page(filtered []news.Article, index, size int) []news.Article {
	if index < 1 || size < 1 {
		return nil
	}
	start := (index - 1) * size
	if start >= len(filtered) {
		return nil
	}
	end := min(start+size, len(filtered))
	return filtered[start:end]
}

// TotalPages returns ceil(n/size), or 0 when there is nothing to show.
func TotalPages(n, size int) int {
	if n <= 0 || size < 1 {
		return 0
	}
	return (n + size - 1) / size
}

// Pager owns the view state of one load cycle: the fetched articles, the
// search term and the page cursor. The filtered set is recomputed whenever
// the articles or the term change.
type Pager struct {
	articles []news.Article
	filtered []news.Article
	term     string
	index    int
	size     int
}

// New returns an empty Pager. A size below 1 falls back to DefaultPageSize.
func New(size int) *Pager {
	if size < 1 {
		size = DefaultPageSize
	}
	return &Pager{size: size, index: 1}
}

// SetArticles replaces the loaded set and starts over at page 1.
func (p *Pager) SetArticles(articles []news.Article) {
	p.articles = articles
	p.refilter()
}

// SetSearchTerm applies a new filter. The cursor always goes back to page 1,
// even when the term is unchanged.
func (p *Pager) SetSearchTerm(term string) {
	p.term = term
	p.refilter()
}

func (p *Pager) refilter() {
	p.filtered = Filter(p.articles, p.term)
	p.index = 1
}

// NextPage advances the cursor. It reports false at the last page.
func (p *Pager) NextPage() bool {
	if !p.HasNext() {
		return false
	}
	p.index++
	return true
}

// PreviousPage moves the cursor back. It reports false at page 1.
func (p *Pager) PreviousPage() bool {
	if !p.HasPrevious() {
		return false
	}
	p.index--
	return true
}

func (p *Pager) HasNext() bool     { return p.index < p.TotalPages() }
func (p *Pager) HasPrevious() bool { return p.index > 1 }

func (p *Pager) Articles() []news.Article { return p.articles }
func (p *Pager) Filtered() []news.Article { return p.filtered }
func (p *Pager) SearchTerm() string       { return p.term }
func (p *Pager) PageIndex() int           { return p.index }
func (p *Pager) PageSize() int            { return p.size }

// Empty reports whether nothing matches the current term.
func (p *Pager) Empty() bool { return len(p.filtered) == 0 }

func (p *Pager) TotalPages() int {
	return TotalPages(len(p.filtered), p.size)
}

func (p *Pager) CurrentPage() []news.Article {
	return Page(p.filtered, p.index, p.size)
}
