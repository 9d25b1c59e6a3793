package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Chackochi310/News/internal/config"
	"github.com/Chackochi310/News/internal/feed"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig   string
	flagServer   string
	flagQuery    string
	flagLanguage string
)

var rootCmd = &cobra.Command{
	Use:   "newsdesk",
	Short: "Browse the latest headlines from your terminal",
	Long: `newsdesk fetches the latest headlines through a small proxy in front of
the GNews API and lets you search and page through them in the terminal.

Run "newsdesk serve" to start the proxy, then "newsdesk" to browse.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "", "proxy base URL (overrides client.server_url)")
	rootCmd.PersistentFlags().StringVar(&flagQuery, "query", "", "upstream search query (default \"latest\")")
	rootCmd.PersistentFlags().StringVar(&flagLanguage, "language", "", "two-letter language code (default \"en\")")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "newsdesk %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// loadConfig reads the config file and layers the persistent flags on top.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	applyFlags(cfg)
	return cfg, nil
}

func applyFlags(cfg *config.Config) {
	if flagServer != "" {
		cfg.Client.ServerURL = flagServer
	}
	if flagQuery != "" {
		cfg.Client.Query = flagQuery
	}
	if flagLanguage != "" {
		cfg.Client.Language = flagLanguage
	}
}

// clientQuery is the one request a client session issues.
func clientQuery(cfg *config.Config) feed.Query {
	return feed.Query{
		Query:    cfg.Client.Query,
		Language: cfg.Client.Language,
		Page:     cfg.Client.Page,
	}.Normalize()
}
