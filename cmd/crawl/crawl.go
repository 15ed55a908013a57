// Package crawl implements the one-shot crawl command.
package crawl

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/AyushiSoni2003/Scrape-saas-news/cmd/common"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/bootstrap"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/database"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/domain"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/logger"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/service"
)

// Command returns the crawl command.
func Command() *cobra.Command {
	var (
		store  bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "crawl",
		Short: "Run one crawl and print a summary",
		Long: `Crawl every category once, normalize the extracted records and print
a per-group summary. With --store the records are saved to PostgreSQL and
the statistics table is recomputed. With --output the normalized records
are written as JSON.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, log, err := common.LoadConfigAndLogger()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			var st service.Store
			if store {
				db, dbErr := bootstrap.SetupDatabase(ctx, cfg, log)
				if dbErr != nil {
					return fmt.Errorf("database: %w", dbErr)
				}
				defer func() {
					if closeErr := db.Close(); closeErr != nil {
						log.Error("Failed to close database", logger.Error(closeErr))
					}
				}()
				st = database.NewStore(db)
			}

			report, err := bootstrap.NewScrapeService(cfg, st, log).Run(ctx)
			if err != nil {
				return err
			}

			if output != "" {
				if err = writeRecords(output, report.Records); err != nil {
					return err
				}
			}

			RenderSummary(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&store, "store", false, "save articles to the database")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write normalized records as JSON to this file")

	return cmd
}

// RenderSummary prints the group counts and run totals as tables.
func RenderSummary(w io.Writer, report *service.RunReport) {
	groups := table.NewWriter()
	groups.SetOutputMirror(w)
	groups.SetStyle(table.StyleLight)
	groups.SetTitle("Articles by group")
	groups.AppendHeader(table.Row{"Group", "Articles"})
	for _, g := range domain.CategoryGroups {
		groups.AppendRow(table.Row{g.String(), report.Groups[g]})
	}
	groups.AppendFooter(table.Row{"Total", report.Groups.Total()})
	groups.Render()

	totals := table.NewWriter()
	totals.SetOutputMirror(w)
	totals.SetStyle(table.StyleLight)
	totals.SetTitle("Run " + report.RunID)
	totals.AppendRows([]table.Row{
		{"Categories", report.Categories},
		{"Failed categories", report.FailedCategories},
		{"Article URLs", report.ArticleURLs},
		{"Failed articles", report.FailedArticles},
		{"Extracted", report.Extracted},
		{"Unique", report.Normalized},
		{"Inserted", insertedCell(report)},
		{"Duration", report.Duration.Round(1e6).String()},
	})
	totals.Render()
}

func insertedCell(report *service.RunReport) any {
	if !report.Stored {
		return "not stored"
	}
	return report.Inserted
}

func writeRecords(path string, records []domain.NormalizedRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err = enc.Encode(records); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
