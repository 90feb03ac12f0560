// Package cmd implements the command-line interface for siteleads.
// It provides the root command and subcommands for analyzing websites
// and scoring leads.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonesrussell/siteleads/cmd/analyze"
	cmdleads "github.com/jonesrussell/siteleads/cmd/leads"
	"github.com/jonesrussell/siteleads/cmd/serve"
	"github.com/jonesrussell/siteleads/internal/config"
)

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// Debug enables debug mode for all commands
	Debug bool

	// rootCmd represents the root command for the siteleads CLI.
	rootCmd = &cobra.Command{
		Use:   "siteleads",
		Short: "Website quality assessment and lead scoring",
		Long: `siteleads analyzes small-business websites for quality issues,
scores them as outreach leads, and generates cold email drafts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command
func Execute() error {
	// Load .env file early so environment variables are available
	_ = godotenv.Load()

	// Parse flags early to get debug flag before creating logger
	_ = rootCmd.ParseFlags(os.Args[1:])

	if err := initConfig(); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"config file (default is ./config.yaml or ./config/config.yaml)",
	)
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "enable debug mode")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("siteleads version %s\n", viper.GetString("app.version"))
		},
	})

	rootCmd.AddCommand(analyze.Command())
	rootCmd.AddCommand(cmdleads.Command())
	rootCmd.AddCommand(serve.Command())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Config file is optional, defaults and environment cover everything
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: config file not found: %v (using defaults)\n", err)
	}

	if err := bindFlagsAndEnv(); err != nil {
		return err
	}

	setupDevelopmentLogging()

	return nil
}

// bindFlagsAndEnv binds command-line flags and environment variables to
// config keys.
func bindFlagsAndEnv() error {
	if err := viper.BindPFlag("app.debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		return fmt.Errorf("failed to bind debug flag: %w", err)
	}

	if err := viper.BindEnv("app.environment", "APP_ENV"); err != nil {
		return fmt.Errorf("failed to bind APP_ENV: %w", err)
	}
	if err := viper.BindEnv("logger.level", "LOG_LEVEL"); err != nil {
		return fmt.Errorf("failed to bind LOG_LEVEL: %w", err)
	}
	if err := viper.BindEnv("logger.encoding", "LOG_FORMAT"); err != nil {
		return fmt.Errorf("failed to bind LOG_FORMAT: %w", err)
	}
	if err := viper.BindEnv("postgres.password", "POSTGRES_PASSWORD"); err != nil {
		return fmt.Errorf("failed to bind POSTGRES_PASSWORD: %w", err)
	}

	return nil
}

// setupDevelopmentLogging raises verbosity when debug mode is requested.
func setupDevelopmentLogging() {
	debugFlag := Debug || viper.GetBool("app.debug")
	if debugFlag {
		viper.Set("logger.level", "debug")
	}

	if viper.GetString("app.environment") == "development" {
		viper.Set("logger.development", true)
		viper.Set("logger.encoding", "console")
	}

	Debug = debugFlag
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("app", map[string]any{
		"name":        "siteleads",
		"version":     "1.0.0",
		"environment": "production",
		"debug":       false,
	})

	viper.SetDefault("logger", map[string]any{
		"level":       "info",
		"development": false,
		"encoding":    "json",
	})

	viper.SetDefault("fetcher", map[string]any{
		"timeout":    config.DefaultFetchTimeout.String(),
		"user_agent": config.DefaultUserAgent,
	})

	viper.SetDefault("analyzer", map[string]any{
		"concurrency": config.DefaultConcurrency,
		"leads_dir":   config.DefaultLeadsDir,
	})

	viper.SetDefault("server", map[string]any{
		"address":       config.DefaultServerAddress,
		"read_timeout":  "15s",
		"write_timeout": "15s",
	})

	viper.SetDefault("postgres", map[string]any{
		"enabled": false,
		"host":    "",
		"port":    "5432",
		"user":    "siteleads",
		"dbname":  "siteleads",
		"sslmode": "disable",
	})
}
