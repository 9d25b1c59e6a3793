package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Chackochi310/News/internal/config"
	"github.com/Chackochi310/News/internal/feed"
	"github.com/Chackochi310/News/internal/news"
	"github.com/Chackochi310/News/internal/pager"
)

var (
	flagSearch string
	flagPage   int
	flagJSON   bool
	flagDirect bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print one page of headlines and exit",
	Long: `Fetch the headlines once, filter them by --search and print the requested
page. With --direct the GNews API is queried without going through the proxy,
which needs an API key in config or GNEWS_API_KEY.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.TimeoutDuration())
		defer cancel()

		articles, err := listFetcher(cfg, flagDirect).Fetch(ctx, clientQuery(cfg))
		if err != nil && !errors.Is(err, feed.ErrEmptyResult) {
			return err
		}

		l := buildListing(articles, flagSearch, flagPage, cfg.GetPageSize())
		if flagJSON {
			return writeListingJSON(cmd.OutOrStdout(), l)
		}
		writeListing(cmd.OutOrStdout(), l)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&flagSearch, "search", "s", "", "only show articles containing this term")
	listCmd.Flags().IntVarP(&flagPage, "page", "p", 1, "page to print")
	listCmd.Flags().BoolVar(&flagJSON, "json", false, "print the page as JSON")
	listCmd.Flags().BoolVar(&flagDirect, "direct", false, "query GNews directly instead of the proxy")
}

func listFetcher(cfg *config.Config, direct bool) feed.Fetcher {
	if direct {
		return feed.NewGNewsClient(cfg.GNews.BaseURL, cfg.APIKey(), cfg.TimeoutDuration())
	}
	return feed.NewProxyClient(cfg.Client.ServerURL, cfg.TimeoutDuration())
}

type listing struct {
	SearchTerm string         `json:"search_term,omitempty"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
	Matched    int            `json:"matched"`
	Loaded     int            `json:"loaded"`
	Articles   []news.Article `json:"articles"`
}

func buildListing(articles []news.Article, term string, page, size int) listing {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = pager.DefaultPageSize
	}
	filtered := pager.Filter(articles, term)
	current := pager.Page(filtered, page, size)
	if current == nil {
		current = []news.Article{}
	}
	return listing{
		SearchTerm: term,
		Page:       page,
		PageSize:   size,
		TotalPages: pager.TotalPages(len(filtered), size),
		Matched:    len(filtered),
		Loaded:     len(articles),
		Articles:   current,
	}
}

func writeListingJSON(w io.Writer, l listing) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(l)
}

func writeListing(w io.Writer, l listing) {
	if l.Matched == 0 {
		if l.SearchTerm == "" {
			fmt.Fprintln(w, "No articles found")
		} else {
			fmt.Fprintf(w, "No articles found for the search term %q\n", l.SearchTerm)
		}
		return
	}
	if len(l.Articles) == 0 {
		fmt.Fprintf(w, "Page %d is past the last page (%d)\n", l.Page, l.TotalPages)
		return
	}

	offset := (l.Page - 1) * l.PageSize
	for i, a := range l.Articles {
		fmt.Fprintf(w, "%2d. %s\n", offset+i+1, a.Title)
		fmt.Fprintf(w, "    %s · %s\n", a.Source.Name, a.PublishedAt.Local().Format("Jan 2, 2006 3:04 PM"))
		fmt.Fprintf(w, "    %s\n", a.URL)
	}
	fmt.Fprintf(w, "\nPage %d of %d\n", l.Page, l.TotalPages)
}
