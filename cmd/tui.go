package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Chackochi310/News/internal/config"
	"github.com/Chackochi310/News/internal/feed"
	"github.com/Chackochi310/News/internal/logger"
	"github.com/Chackochi310/News/internal/tui"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(tuiLogConfig(cfg.Logging))
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer func() { _ = log.Sync() }()

	fetcher := feed.NewProxyClient(cfg.Client.ServerURL, cfg.TimeoutDuration())
	log.Info("Starting terminal client",
		logger.String("server_url", cfg.Client.ServerURL),
		logger.Int("page_size", cfg.GetPageSize()),
	)

	return tui.Run(tui.RunOpts{
		Fetcher:  fetcher,
		Query:    clientQuery(cfg),
		PageSize: cfg.GetPageSize(),
		Log:      log,
	})
}

// tuiLogConfig keeps log lines off the terminal the TUI is drawing on.
func tuiLogConfig(c logger.Config) logger.Config {
	switch c.Output {
	case "", "stdout", "stderr":
		c.Output = config.LogPath()
	}
	return c
}
