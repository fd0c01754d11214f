package main

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/mhr3/bytefind/search"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	benchHaystackMiB int
	benchWorkers     int
	benchIterations  int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure search throughput against a generated in-memory corpus",
	Long: `bench builds a random haystack, searches it with a bounded worker
pool to saturate multiple cores, and reports aggregate throughput in GB/s.
It exists for manual calibration outside of "go test -bench", matching the
GB/s reporting style of a dedicated throughput tool rather than the
microbenchmark harness.`,
	RunE: runBench,
}

// bindBenchFlags takes the concrete *pflag.FlagSet cobra.Command.Flags()
// returns, rather than the usual `cmd.Flags().IntVar(...)` chaining.
func bindBenchFlags(fs *pflag.FlagSet) {
	fs.IntVar(&benchHaystackMiB, "size-mib", 64, "haystack size in MiB")
	fs.IntVar(&benchWorkers, "workers", 4, "concurrent searching goroutines")
	fs.IntVar(&benchIterations, "iterations", 100, "searches performed per worker")
}

func init() {
	bindBenchFlags(benchCmd.Flags())
}

func runBench(cmd *cobra.Command, args []string) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	hay := make([]byte, benchHaystackMiB<<20)

	bar := progressbar.Default(int64(len(hay)), "generating corpus")
	const chunk = 1 << 20
	for off := 0; off < len(hay); off += chunk {
		end := off + chunk
		if end > len(hay) {
			end = len(hay)
		}
		for i := off; i < end; i++ {
			hay[i] = byte('a' + rng.Intn(4))
		}
		bar.Add(end - off)
	}

	needle := []byte("needlezz")
	nd, err := search.NewNeedleAuto(needle)
	if err != nil {
		return fmt.Errorf("building needle: %w", err)
	}
	span := search.NewSpan(hay)

	var wg sync.WaitGroup
	start := time.Now()
	for w := 0; w < benchWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < benchIterations; i++ {
				search.Find(span, nd)
			}
		}()
	}
	wg.Wait()
	elapsed := time.Since(start)

	totalBytes := int64(benchWorkers) * int64(benchIterations) * int64(len(hay))
	gbPerSec := float64(totalBytes) / elapsed.Seconds() / 1e9
	fmt.Fprintf(cmd.OutOrStdout(), "%d workers x %d iterations over %d MiB: %.2f GB/s\n",
		benchWorkers, benchIterations, benchHaystackMiB, gbPerSec)
	return nil
}
