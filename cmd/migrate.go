package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"

	"github.com/amanda-debetaz/PandaExpressPOS/config"
)

var migrateSteps int

func newMigrator() (*migrate.Migrate, error) {
	dir := config.GetEnv("MIGRATIONS_DIR", "db/migrations")
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		user := os.Getenv("MYSQL_USER")
		pass := os.Getenv("MYSQL_PASS")
		host := os.Getenv("MYSQL_HOST")
		port := config.GetEnv("MYSQL_PORT", "3306")
		db := os.Getenv("MYSQL_DB")
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?multiStatements=true", user, pass, host, port, db)
	}
	return migrate.New("file://"+dir, "mysql://"+dsn)
}

var migrateUpCmd = &cobra.Command{
	Use:   "migrate:up",
	Short: "Apply pending database migrations",
	Run: func(cmd *cobra.Command, args []string) {
		m, err := newMigrator()
		if err != nil {
			fmt.Printf("Migrator setup failed: %v\n", err)
			os.Exit(1)
		}
		defer m.Close()
		if err := m.Up(); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				fmt.Println("Database is up to date.")
				return
			}
			fmt.Printf("Migration failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Migrations applied.")
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "migrate:down",
	Short: "Roll back migrations (default 1 step)",
	Run: func(cmd *cobra.Command, args []string) {
		m, err := newMigrator()
		if err != nil {
			fmt.Printf("Migrator setup failed: %v\n", err)
			os.Exit(1)
		}
		defer m.Close()
		if err := m.Steps(-migrateSteps); err != nil {
			fmt.Printf("Rollback failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Rolled back %d step(s).\n", migrateSteps)
	},
}

func init() {
	migrateDownCmd.Flags().IntVarP(&migrateSteps, "steps", "s", 1, "Number of migrations to roll back")
	rootCmd.AddCommand(migrateUpCmd)
	rootCmd.AddCommand(migrateDownCmd)
}
