package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/van-rental-manager/internal/config"
	"github.com/sbilibin2017/van-rental-manager/internal/db"
	"github.com/sbilibin2017/van-rental-manager/internal/logger"
	"github.com/sbilibin2017/van-rental-manager/internal/notifications"
	"github.com/sbilibin2017/van-rental-manager/internal/repositories"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg, os.Stdout); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run drops and recreates the schema, then runs the notification sweep.
func run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	conn, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer conn.Close()

	mailer, err := notifications.NewMailer(notifications.Config{
		Server:   cfg.MailServer,
		Port:     cfg.MailPort,
		Username: cfg.MailUsername,
		Password: cfg.MailPassword,
		Sender:   cfg.MailDefaultSender,
	})
	if err != nil {
		return err
	}

	rentals := repositories.NewRentalReadRepository(conn, nil)
	if err := db.InitSchema(ctx, conn.DB, rentals, mailer); err != nil {
		return err
	}

	fmt.Fprintln(out, "Database initialized.")
	return nil
}
