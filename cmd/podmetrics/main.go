package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"podcast-metrics/internal/app"
	"podcast-metrics/internal/shared/configs"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "podmetrics [log files...]",
	Short: "Podcast download analytics from web server access logs",
	Long: `podmetrics reads podcast web server access logs, deduplicates the byte
ranges each client received of each episode, classifies downloads as full or
partial and stores privacy-preserving daily counters per episode.

Log files can be passed as arguments; otherwise the configured log directory
is scanned. Gzipped rotations are read transparently.`,
	Args: cobra.ArbitraryArgs,
	RunE: runPipeline,
}

var exportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Export stored daily counters to a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "./configs/configs.yml", "config file path")
	rootCmd.AddCommand(exportCmd)
}

func newApp() (*app.App, error) {
	cfg, err := configs.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return app.New(cfg)
}

func runPipeline(cmd *cobra.Command, args []string) error {
	application, err := newApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err = application.Run(ctx, args)
	return err
}

func runExport(cmd *cobra.Command, args []string) error {
	application, err := newApp()
	if err != nil {
		return err
	}

	path, err := application.ExportCSV(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
