// Package cli wires configuration, storage and services into the frisfocus commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/limbo/frisfocus/internal/repository"
	"github.com/limbo/frisfocus/internal/rules"
	"github.com/limbo/frisfocus/pkg/config"
	"github.com/limbo/frisfocus/pkg/logger"
)

var envPath string

var rootCmd = &cobra.Command{
	Use:           "frisfocus",
	Short:         "Focus Points service of the FrisFocus habit tracker",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envPath, "env", "./configs/.env", "path to the env file")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadConfig() *config.Config {
	return config.New(envPath)
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	l, err := logger.New(logger.Options{
		Level: cfg.GetStringOr("LOG_LEVEL", "info"),
		Path:  cfg.GetString("LOG_PATH"),
	})
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	zap.ReplaceGlobals(l)
	return l, nil
}

func pgConfig(cfg *config.Config) *repository.PGCfg {
	return &repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		SSLMode:  cfg.GetStringOr("POSTGRES_SSLMODE", "disable"),
	}
}

func loadRules(cfg *config.Config) (*rules.Table, error) {
	return rules.Load(cfg.GetString("RULES_FILE"))
}
