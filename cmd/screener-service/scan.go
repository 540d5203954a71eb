package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"golang-stock-screener/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	saveScan bool
	scanTop  int
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Runs one scan of the configured universe and prints the ranking",
	RunE:  runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := bootstrap(ctx)
	defer func() { _ = a.logger.Sync() }()

	if saveScan && !a.services.Snapshot.Configured() {
		return fmt.Errorf("cannot save scan: KV not configured")
	}

	result, err := a.services.Scan.Run(ctx, saveScan)
	if err != nil {
		a.logger.Error("Scan failed", logger.ErrorField(err))
		return err
	}

	stocks := result.Stocks
	if scanTop > 0 && scanTop < len(stocks) {
		stocks = stocks[:scanTop]
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tTICKER\tPRICE\tCHANGE%\tSCORE")
	for i, s := range stocks {
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%+.2f\t%.1f\n", i+1, s.Ticker, s.Price, s.ChangePercent, s.CompositeScore)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	stats := result.ScanStats
	fmt.Fprintf(cmd.OutOrStdout(), "\nscanned %d, succeeded %d, failed %d, average %.1f, %dms\n",
		stats.TotalScanned, stats.Succeeded, stats.Failed, stats.AverageScore, stats.DurationMs)
	return nil
}
