// Command expense_admin runs maintenance tasks against the configured database.
//
//	expense_admin init-db       apply pending migrations
//	expense_admin reset-db -y   drop and recreate the schema
//	expense_admin check-config  print the effective configuration
//	expense_admin summary       print the category breakdown
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/services"
	"github.com/SscSPs/expense_tracker/internal/core/validation"
	"github.com/SscSPs/expense_tracker/internal/platform/config"
	"github.com/SscSPs/expense_tracker/internal/repositories"
	"github.com/SscSPs/expense_tracker/internal/utils"
	"github.com/olekukonko/tablewriter"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := runCommand(context.Background(), cfg, os.Args[1], os.Args[2:], os.Stdout); err != nil {
		logger.Error("Command failed", slog.String("command", os.Args[1]), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: expense_admin <init-db|reset-db|check-config|summary> [flags]")
}

func runCommand(ctx context.Context, cfg *config.Config, name string, args []string, out io.Writer) error {
	switch name {
	case "init-db":
		return initDB(ctx, cfg, out)
	case "reset-db":
		return resetDB(cfg, args, out)
	case "check-config":
		return checkConfig(cfg, out)
	case "summary":
		return summary(ctx, cfg, args, out)
	default:
		usage(out)
		return fmt.Errorf("unknown command %q", name)
	}
}

func openStore(cfg *config.Config) (*repositories.Store, error) {
	return repositories.Open(context.Background(), cfg.DatabaseURL, true)
}

func initDB(ctx context.Context, cfg *config.Config, out io.Writer) error {
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	changed, err := store.Migrate()
	if err != nil {
		return err
	}
	if changed {
		fmt.Fprintln(out, "Database initialized successfully.")
	} else {
		fmt.Fprintln(out, "Database already up to date.")
	}

	version, dirty, err := store.SchemaVersion()
	if err != nil {
		return err
	}
	count, err := store.Repos.ExpenseRepo.CountExpenses(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Schema version: %d (dirty: %t)\n", version, dirty)
	fmt.Fprintf(out, "Stored expenses: %d\n", count)
	return nil
}

func resetDB(cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("reset-db", flag.ContinueOnError)
	fs.SetOutput(out)
	confirm := fs.Bool("y", false, "confirm that all data should be dropped")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !*confirm {
		return fmt.Errorf("reset-db drops all data; pass -y to confirm")
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Reset(); err != nil {
		return err
	}
	fmt.Fprintln(out, "Database reset successfully.")
	return nil
}

func checkConfig(cfg *config.Config, out io.Writer) error {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Setting", "Value"})
	table.SetAutoWrapText(false)
	table.AppendBulk(cfg.Settings())
	table.Render()
	return nil
}

func summary(ctx context.Context, cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("summary", flag.ContinueOnError)
	fs.SetOutput(out)
	startFlag := fs.String("start", "", "inclusive lower date bound (ISO 8601)")
	endFlag := fs.String("end", "", "inclusive upper date bound (ISO 8601)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	start, err := optionalDate(*startFlag)
	if err != nil {
		return fmt.Errorf("invalid -start: %w", err)
	}
	end, err := optionalDate(*endFlag)
	if err != nil {
		return fmt.Errorf("invalid -end: %w", err)
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	result, err := services.NewServiceContainer(store.Repos).Reporting.GetSummary(ctx, start, end)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Category", "Amount", "Count"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, c := range result.Categories {
		table.Append([]string{c.Category, utils.FormatAmount(c.Amount), strconv.FormatInt(c.Count, 10)})
	}
	table.SetFooter([]string{"Total", utils.FormatAmount(result.TotalAmount), strconv.FormatInt(result.ExpenseCount, 10)})
	table.Render()
	return nil
}

func optionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := validation.ParseDateTime(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
