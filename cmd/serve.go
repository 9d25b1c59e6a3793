package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Chackochi310/News/internal/feed"
	"github.com/Chackochi310/News/internal/logger"
	"github.com/Chackochi310/News/internal/server"
)

var (
	flagPort  int
	flagDebug bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the news proxy",
	Long: `Start the HTTP proxy that forwards /news requests to GNews with the
server-held API key.

The key is read from gnews.api_key or the GNEWS_API_KEY environment variable
(a .env file in the working directory is loaded first).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if flagPort != 0 {
			cfg.Server.Port = flagPort
		}

		log, err := logger.New(cfg.Logging)
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		defer func() { _ = log.Sync() }()

		key := cfg.APIKey()
		if key == "" {
			log.Warn("No GNews API key configured, upstream requests will be rejected")
		}
		upstream := feed.NewGNewsClient(cfg.GNews.BaseURL, key, cfg.TimeoutDuration())

		srv := server.New(server.Options{
			Addr:           cfg.ListenAddr(),
			AllowedOrigins: cfg.Server.AllowedOrigins,
			Debug:          flagDebug,
		}, upstream, log)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().IntVar(&flagPort, "port", 0, "listen port (overrides server.port and PORT)")
	serveCmd.Flags().BoolVar(&flagDebug, "debug", false, "run gin in debug mode")
}
