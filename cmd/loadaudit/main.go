// Package main provides the CLI entry point for loadaudit.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ukaji3/loadaudit-go/internal/config"
	"github.com/ukaji3/loadaudit-go/internal/logging"
	"github.com/ukaji3/loadaudit-go/pkg/loadaudit"
	"github.com/ukaji3/loadaudit-go/pkg/loadaudit/output"
	"github.com/ukaji3/loadaudit-go/pkg/loadaudit/reconcile"
	"github.com/ukaji3/loadaudit-go/pkg/loadaudit/server"
	"go.uber.org/zap"
)

// cli holds flag values and the state built by setup for one command run.
type cli struct {
	configPath string
	filePath   string
	verbose    bool

	query      string
	status     string
	sortOrder  string
	format     string
	pretty     bool
	outputPath string

	addr  string
	watch bool

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "loadaudit",
		Short: "Audit teaching-load assignments against payroll capacity",
		Long: `loadaudit reads a teaching-plan workbook, reconciles one record per
instructor and flags instructors whose assigned hours exceed their payroll hours.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&c.configPath, "config", "", "Config file path (default "+config.DefaultPath+" if present)")
	rootCmd.PersistentFlags().StringVarP(&c.filePath, "file", "f", "", "Workbook path (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Print the audit report",
		Args:  cobra.NoArgs,
		RunE:  c.runReport,
	}
	reportCmd.Flags().StringVarP(&c.query, "query", "q", "", "Filter by name (case-insensitive) or ID")
	reportCmd.Flags().StringVar(&c.status, "status", "all", "Status filter: all, compliant, overage")
	reportCmd.Flags().StringVar(&c.sortOrder, "sort", "", "Ordering: sheet, name, id (default from config)")
	reportCmd.Flags().StringVar(&c.format, "format", "text", "Output format: text, json")
	reportCmd.Flags().BoolVar(&c.pretty, "pretty", false, "Pretty-print JSON output")
	reportCmd.Flags().StringVarP(&c.outputPath, "output", "o", "", "Output file path (default: stdout)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the audit dashboard",
		Args:  cobra.NoArgs,
		RunE:  c.runServe,
	}
	serveCmd.Flags().StringVar(&c.addr, "addr", "", "Listen address (default from config)")
	serveCmd.Flags().BoolVar(&c.watch, "watch", false, "Reload when the workbook changes")

	rootCmd.AddCommand(reportCmd, serveCmd)
	return rootCmd
}

func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.filePath != "" {
		cfg.Workbook.Path = c.filePath
	}
	c.cfg = cfg

	c.logger, err = logging.New(cfg.Logging.Level, cfg.Logging.Format, c.verbose)
	return err
}

func (c *cli) newAuditor() *loadaudit.Auditor {
	return loadaudit.New(c.cfg.Workbook.Path, c.cfg.LoadOptions(), c.logger)
}

func (c *cli) runReport(cmd *cobra.Command, args []string) error {
	f, err := c.buildFilter()
	if err != nil {
		return err
	}

	report, err := c.newAuditor().Audit(f)
	if err != nil {
		return explain(err)
	}

	var w io.Writer = cmd.OutOrStdout()
	if c.outputPath != "" {
		file, err := os.Create(c.outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer file.Close()
		w = file
	}

	switch c.format {
	case "json":
		data, err := output.ToJSON(report, c.pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "text":
		return output.WriteText(w, report, output.DefaultTextOptions())
	default:
		return fmt.Errorf("invalid format: %s (must be text or json)", c.format)
	}
}

func (c *cli) runServe(cmd *cobra.Command, args []string) error {
	listen := c.cfg.Server.Addr
	if c.addr != "" {
		listen = c.addr
	}

	auditor := c.newAuditor()
	srv, err := server.New(auditor, c.logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if c.watch || c.cfg.Server.Watch {
		go func() {
			if err := auditor.Watch(ctx); err != nil {
				c.logger.Warn("workbook watcher stopped", zap.Error(err))
			}
		}()
	}

	return srv.ListenAndServe(ctx, listen)
}

func (c *cli) buildFilter() (reconcile.Filter, error) {
	st, err := reconcile.ParseStatus(c.status)
	if err != nil {
		return reconcile.Filter{}, err
	}
	orderFlag := c.cfg.Audit.Sort
	if c.sortOrder != "" {
		orderFlag = c.sortOrder
	}
	order, err := reconcile.ParseOrder(orderFlag)
	if err != nil {
		return reconcile.Filter{}, err
	}
	return reconcile.Filter{Query: c.query, Status: st, Order: order}, nil
}

// explain turns halt conditions into messages that tell the user what to fix.
func explain(err error) error {
	var missing *loadaudit.MissingFileError
	var schema *loadaudit.SchemaError
	switch {
	case errors.As(err, &missing):
		return fmt.Errorf("workbook not found; please provide the file %q: %w", missing.FileName(), err)
	case errors.As(err, &schema):
		return fmt.Errorf("column %q not found; check the header row: %w", schema.Column, err)
	}
	return fmt.Errorf("audit failed: %w", err)
}
