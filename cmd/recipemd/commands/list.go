package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/recipemd/recipemd/scraper"
	"github.com/recipemd/recipemd/store"
	"github.com/spf13/cobra"
)

var (
	listFlags       recipeFlags
	listMetricsAddr string
)

func init() {
	listFlags.register(listCmd)
	listCmd.Flags().StringVar(&listMetricsAddr, "metrics-addr", "",
		"Prometheus metrics listen address for the duration of the batch run (e.g. :9090).")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list <file>",
	Short: "Saves every recipe URL listed in a file, one per line.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := listFlags.validate(); err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open url list: %w", err)
		}
		defer f.Close()

		s := scraper.New(cfg)
		st := store.New(cfg.OutputDir)

		metricsAddr := listMetricsAddr
		if metricsAddr == "" {
			metricsAddr = cfg.MetricsAddr
		}
		metricsServer := startMetricsServer(metricsAddr, s)
		defer stopMetricsServer(metricsServer)

		// batch flags apply to every recipe except --name, which only
		// makes sense for a single one
		flags := listFlags
		flags.name = ""

		seen, err := lru.New[string, struct{}](1024)
		if err != nil {
			return fmt.Errorf("create dedupe cache: %w", err)
		}

		saved, failed, skipped := 0, 0, 0
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			if err := cmd.Context().Err(); err != nil {
				return err
			}

			url := strings.TrimSpace(scanner.Text())
			if url == "" || strings.HasPrefix(url, "#") {
				continue
			}
			if _, dup := seen.Get(url); dup {
				skipped++
				slog.Debug("skipping duplicate url", slog.String("url", url))
				continue
			}
			seen.Add(url, struct{}{})

			recipe, err := fetchRecipe(cmd.Context(), s, url, flags)
			if err != nil {
				failed++
				slog.Error("recipe failed", slog.String("url", url), slog.Any("error", err))
				continue
			}
			path, err := saveRecipe(cmd.Context(), st, recipe, renderOptions(recipe, flags))
			if err != nil {
				failed++
				slog.Error("save failed", slog.String("url", url), slog.Any("error", err))
				continue
			}
			saved++
			slog.Info("recipe saved", slog.String("path", path))
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read url list: %w", err)
		}

		printBatchSummary(cmd, saved, failed, skipped)

		if saved == 0 && failed > 0 {
			return fmt.Errorf("all %d recipes failed", failed)
		}
		return nil
	},
}

func startMetricsServer(addr string, s *scraper.Scraper) *http.Server {
	if addr == "" || s.Metrics == nil {
		return nil
	}
	server := &http.Server{
		Addr:    addr,
		Handler: promhttp.HandlerFor(s.Metrics.Registry, promhttp.HandlerOpts{}),
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("metrics server failed", slog.Any("error", err))
		}
	}()
	slog.Info("metrics server enabled", slog.String("addr", addr))
	return server
}

func stopMetricsServer(server *http.Server) {
	if server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("metrics server shutdown failed", slog.Any("error", err))
	}
}

func printBatchSummary(cmd *cobra.Command, saved, failed, skipped int) {
	out := cmd.OutOrStdout()
	separator := "--------------------------------------------------"
	fmt.Fprintln(out, separator)
	fmt.Fprintln(out, "Batch complete")
	fmt.Fprintf(out, "  Saved:      %d\n", saved)
	fmt.Fprintf(out, "  Failed:     %d\n", failed)
	fmt.Fprintf(out, "  Duplicates: %d\n", skipped)
	fmt.Fprintln(out, separator)
}
