// Package httpd implements the API server command.
package httpd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AyushiSoni2003/Scrape-saas-news/cmd/common"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/api"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/bootstrap"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/database"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/logger"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/scheduler"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/sentiment"
)

// Command returns the serve command.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Aliases: []string{"httpd"},
		Short:   "Start the HTTP API and the scrape scheduler",
		Long: `Serve the article API. When scheduler.enabled is set, scrapes also run
on scheduler.schedule. The server stops gracefully on SIGINT or SIGTERM.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, log, err := common.LoadConfigAndLogger()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			db, err := bootstrap.SetupDatabase(ctx, cfg, log)
			if err != nil {
				return fmt.Errorf("database: %w", err)
			}
			defer func() {
				if closeErr := db.Close(); closeErr != nil {
					log.Error("Failed to close database", logger.Error(closeErr))
				}
			}()

			store := database.NewStore(db)
			svc := bootstrap.NewScrapeService(cfg, store, log)

			if cfg.Scheduler.Enabled {
				sched, schedErr := scheduler.New(cfg.Scheduler, svc, log.With(logger.String("component", "scheduler")))
				if schedErr != nil {
					return schedErr
				}
				sched.Start()
				defer sched.Stop()
			}

			router := api.NewRouter(store, svc, sentiment.NewLexiconClassifier(), log.With(logger.String("component", "api")))
			server := api.NewServer(cfg.Server, router, log)

			if err = server.Run(ctx); err != nil {
				return fmt.Errorf("server: %w", err)
			}
			log.Info("Server stopped")
			return nil
		},
	}
}
