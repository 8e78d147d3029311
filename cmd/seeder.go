package cmd

import (
	"os"

	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tenanthub/company-management/internal/seed"
	"github.com/tenanthub/company-management/pkg/logger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with baseline data",
	Long: `Idempotently seed the default company, one user per system role,
and the baseline roles and permissions. Safe to rerun: existing rows
are matched by their unique keys and never modified.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			logger.L().Error("failed to load config", "error", err)
			os.Exit(1)
		}

		logger.Init(cfg.Logging.Level, cfg.Logging.Format)
		lg := logger.L()

		db, err := initDB(cfg.Database)
		if err != nil {
			lg.Error("failed to init db", "error", err)
			os.Exit(1)
		}

		gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{})
		if err != nil {
			_ = db.Close()
			lg.Error("failed to init gorm", "error", err)
			os.Exit(1)
		}

		seedErr := seed.New(gormDB, lg).Run()

		// Release the connection regardless of outcome.
		if err := db.Close(); err != nil {
			lg.Error("failed to close database", "error", err)
		}

		if seedErr != nil {
			lg.Error("seeding failed", "error", seedErr)
			os.Exit(1)
		}
	},
}
