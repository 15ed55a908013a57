// Package cmd implements the saasnews command-line interface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AyushiSoni2003/Scrape-saas-news/cmd/crawl"
	"github.com/AyushiSoni2003/Scrape-saas-news/cmd/httpd"
	"github.com/AyushiSoni2003/Scrape-saas-news/cmd/migrate"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/config"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=...".
var Version = "dev"

var (
	cfgFile string
	debug   bool

	rootCmd = &cobra.Command{
		Use:   "saasnews",
		Short: "Crawl funding news from thesaasnews.com",
		Long: `saasnews discovers every category on thesaasnews.com, follows each
category's pagination, extracts funding details from every article and
stores the normalized, deduplicated result in PostgreSQL.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := initConfig(); err != nil {
				return fmt.Errorf("initialize configuration: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command until it returns or SIGINT/SIGTERM arrives.
func Execute() error {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is ./config.yaml or ./config/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("saasnews %s\n", Version)
		},
	})

	rootCmd.AddCommand(crawl.Command())
	rootCmd.AddCommand(httpd.Command())
	rootCmd.AddCommand(migrate.Command())
}

// initConfig layers defaults, the config file, the environment and flags
// into the global viper instance.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	config.SetDefaults(viper.GetViper())
	if err := config.BindEnv(viper.GetViper()); err != nil {
		return err
	}

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("read config file %s: %w", cfgFile, err)
		}
		fmt.Fprintf(os.Stderr, "Warning: no config file found, using defaults and environment\n")
	}

	return bindCommandLineFlags()
}

func bindCommandLineFlags() error {
	if err := viper.BindPFlag("app.debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		return fmt.Errorf("bind debug flag: %w", err)
	}
	if flag := rootCmd.PersistentFlags().Lookup("log-level"); flag.Changed {
		viper.Set("logger.level", flag.Value.String())
	}
	return nil
}
