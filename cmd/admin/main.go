package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lifemap/internal/config"
	"lifemap/internal/db"
	"lifemap/internal/repository"
	"lifemap/internal/service"
)

var rootCmd = &cobra.Command{
	Use:           "admin",
	Short:         "LifeMap maintenance commands",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withPool(cmd.Context(), func(pool *pgxpool.Pool, logger *zap.Logger) error {
			if err := db.Migrate(cmd.Context(), pool); err != nil {
				return err
			}
			logger.Info("schema applied")
			return nil
		})
	},
}

var seedMentorsCmd = &cobra.Command{
	Use:   "seed-mentors",
	Short: "Insert the sample mentor directory (idempotent)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withPool(cmd.Context(), func(pool *pgxpool.Pool, logger *zap.Logger) error {
			n, err := newAdminService(pool, logger).SeedMentors(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d new mentors\n", n)
			return nil
		})
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print user, mentor, goal and pending request counts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withPool(cmd.Context(), func(pool *pgxpool.Pool, logger *zap.Logger) error {
			stats, err := newAdminService(pool, logger).RefreshStats(cmd.Context())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(stats)
		})
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd, seedMentorsCmd, statsCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// withPool carga la configuracion, abre el pool y lo cierra al terminar.
func withPool(ctx context.Context, fn func(*pgxpool.Pool, *zap.Logger) error) error {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger := zap.NewExample()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	defer pool.Close()

	if err := db.Ping(ctx, pool); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}
	return fn(pool, logger)
}

func newAdminService(pool *pgxpool.Pool, logger *zap.Logger) *service.AdminService {
	return service.NewAdminService(
		logger,
		repository.NewPgUserRepository(pool),
		repository.NewPgMentorRepository(pool),
		repository.NewPgGoalRepository(pool),
		repository.NewPgMentorshipRepository(pool),
		nil,
		0,
	)
}
