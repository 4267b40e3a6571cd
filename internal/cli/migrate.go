package cli

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose"
	"github.com/spf13/cobra"
)

var migrationsDir string

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateCmd.PersistentFlags().StringVar(&migrationsDir, "dir", "./migrations", "directory with goose migrations")
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or inspect database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrationDB(func(db *sql.DB) error {
			return goose.Up(db, migrationsDir)
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the latest migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrationDB(func(db *sql.DB) error {
			return goose.Down(db, migrationsDir)
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the state of every migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrationDB(func(db *sql.DB) error {
			return goose.Status(db, migrationsDir)
		})
	},
}

func withMigrationDB(f func(db *sql.DB) error) error {
	cfg := loadConfig()
	db, err := sql.Open("pgx", pgConfig(cfg).ConnString())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()
	if err = goose.SetDialect("postgres"); err != nil {
		return err
	}
	return f(db)
}
