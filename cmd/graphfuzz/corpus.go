package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphfuzz/generator"
)

// seedStride spreads worker seeds apart (64-bit golden ratio).
const seedStride uint64 = 0x9E3779B97F4A7C15

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Seed a corpus directory with synthesized graphs",
	Long: `corpus synthesizes graphs in parallel and stores each one under its
structural hash, so identical graphs are written once.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		dir, _ := flags.GetString("dir")
		count, _ := flags.GetInt("count")
		workers := a.profile.Workers
		if flags.Changed("jobs") {
			workers, _ = flags.GetInt("jobs")
		}
		showMetrics, _ := flags.GetBool("metrics")
		if count < 0 || workers < 1 {
			return fmt.Errorf("count must be ≥ 0 and jobs ≥ 1 (got %d, %d)", count, workers)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}

		if withShapes, _ := flags.GetBool("shapes"); withShapes {
			n, err := writeShapes(a, dir)
			if err != nil {
				return err
			}
			a.logger.Info("shapes seeded", slog.Int("written", n))
		}

		reg := prometheus.NewRegistry()
		metrics := generator.NewMetrics(reg)

		stats, err := seedCorpus(cmd.Context(), a, dir, count, workers, metrics)
		if err != nil {
			return err
		}
		a.logger.Info("corpus seeded",
			slog.String("dir", dir),
			slog.Int64("written", stats.written.Load()),
			slog.Int64("duplicates", stats.duplicates.Load()))

		if showMetrics {
			return dumpMetrics(cmd, reg)
		}

		return nil
	},
}

func init() {
	corpusCmd.Flags().String("dir", "corpus", "output directory")
	corpusCmd.Flags().IntP("count", "n", 100, "number of graphs to synthesize")
	corpusCmd.Flags().IntP("jobs", "j", 0, "parallel workers (default from profile)")
	corpusCmd.Flags().Bool("shapes", false, "also write canonical shapes (path, cycle, star, wheel, complete, grid, sparse)")
	corpusCmd.Flags().Bool("metrics", false, "print generator metrics in Prometheus text format")
}

type corpusStats struct {
	written    atomic.Int64
	duplicates atomic.Int64
}

// seedCorpus runs one generator per worker; worker w produces items w, w+jobs, ...
func seedCorpus(ctx context.Context, a *app, dir string, count, jobs int, m *generator.Metrics) (*corpusStats, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	c, err := a.wireCodec()
	if err != nil {
		return nil, err
	}
	ext := "." + string(c.Format())
	stats := &corpusStats{}

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < jobs; w++ {
		seed := int64(uint64(a.profile.Seed) + uint64(w)*seedStride)
		gg, err := a.engine(seed, generator.WithMetrics(m))
		if err != nil {
			return nil, err
		}

		g.Go(func() error {
			for i := w; i < count; i += jobs {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				created, err := storeGraph(c, dir, ext, gg.NewInput(a.profile.MaxComplexity))
				if err != nil {
					return err
				}
				if created {
					stats.written.Add(1)
				} else {
					stats.duplicates.Add(1)
				}
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return stats, nil
}

// writeExclusive creates name with data; it reports false if name already exists.
func writeExclusive(name string, data []byte) (bool, error) {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return false, err
	}

	return true, f.Close()
}

func dumpMetrics(cmd *cobra.Command, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(cmd.OutOrStdout(), mf); err != nil {
			return err
		}
	}

	return nil
}
