// Command cohgen synthesizes a non-stalling, linear-latency cache-coherence
// protocol from a stable-state-only description (§1) and emits the
// elaborated private-cache and shared-memory state machines as CSV and DOT
// artifacts (§6).
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/cohgen/cohgen/emit"
	"github.com/cohgen/cohgen/engine"
	"github.com/cohgen/cohgen/internal/logging"
	"github.com/cohgen/cohgen/loader"
	"github.com/cohgen/cohgen/metrics"
	"github.com/cohgen/cohgen/presets"
	"github.com/cohgen/cohgen/state"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	inputFile   string
	presetName  string
	systemModel string
	verbose     bool
	outDir      string
)

var rootCmd = &cobra.Command{
	Use:   "cohgen",
	Short: "Synthesize a non-stalling cache-coherence protocol from a stable-state description",
	Long: `cohgen elaborates a minimal, stable-state-only coherence protocol (e.g. MSI,
MESI, MOESI) into a transient-state-complete protocol that never forces a
requesting cache to stall on an in-flight peer transaction, and synthesizes
the matching shared-memory directory machine.

Supply either an input file (-i) in cohgen's state/transition grammar, or a
built-in preset (--preset msi|mesi|moesi).`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&inputFile, "ifile", "i", "", "path to an input protocol description")
	rootCmd.Flags().StringVar(&presetName, "preset", "", "use a built-in preset instead of -i (msi, mesi, moesi)")
	rootCmd.Flags().StringVarP(&systemModel, "system-model", "s", "direct", "interconnect model: direct or memory")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log each pipeline stage to stderr")
	rootCmd.Flags().StringVarP(&outDir, "outdir", "o", ".", "directory to write output artifacts to")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cohgen: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log := logging.New(verbose)

	model, err := parseModel(systemModel)
	if err != nil {
		return err
	}

	p, err := loadProtocol()
	if err != nil {
		return err
	}

	collector, err := metrics.NewCollector(prometheus.NewRegistry())
	if err != nil {
		return fmt.Errorf("set up metrics: %w", err)
	}

	stageStart := time.Now()
	pl := &engine.Pipeline{
		P:     p,
		Model: model,
		Observers: []engine.StageObserver{
			func(stage string, p *state.Protocol) {
				elapsed := time.Since(stageStart)
				stageStart = time.Now()

				log.Debug("stage complete",
					"stage", stage,
					"stable", len(p.StableStates),
					"preOrdered", len(p.PreOrdered),
					"postOrdered", len(p.PostOrdered),
					"transitions", len(p.Transitions),
					"elapsedMs", elapsed.Milliseconds(),
				)
				collector.Observe(len(p.StableStates), len(p.PreOrdered)+len(p.PostOrdered), len(p.Transitions))
				collector.RecordStageDuration(stage, float64(elapsed.Milliseconds()))
			},
		},
	}

	if err := pl.Run(); err != nil {
		return err
	}
	collector.StallEdges.Add(int64(p.StallCount))

	return writeArtifacts(p)
}

func parseModel(s string) (engine.ConfigModel, error) {
	switch engine.ConfigModel(s) {
	case engine.Direct, engine.Memory:
		return engine.ConfigModel(s), nil
	default:
		return "", fmt.Errorf("unknown system model %q: want direct or memory", s)
	}
}

func loadProtocol() (*state.Protocol, error) {
	switch {
	case presetName != "" && inputFile != "":
		return nil, fmt.Errorf("specify either --ifile or --preset, not both")
	case presetName != "":
		return presets.Load(presets.Name(presetName))
	case inputFile != "":
		return loader.LoadFile(inputFile)
	default:
		return nil, fmt.Errorf("specify an input file with -i or a preset with --preset")
	}
}

func writeArtifacts(p *state.Protocol) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	writers := []struct {
		file  string
		flags int
		fn    func(*state.Protocol, *os.File) error
	}{
		{"output-private-cache.csv", os.O_APPEND | os.O_CREATE | os.O_WRONLY, func(p *state.Protocol, f *os.File) error { return emit.CacheCSV(p, f) }},
		{"output-shared-memory.csv", os.O_APPEND | os.O_CREATE | os.O_WRONLY, func(p *state.Protocol, f *os.File) error { return emit.MemoryCSV(p, f) }},
		{"private-cache-state-machine.viz", os.O_TRUNC | os.O_CREATE | os.O_WRONLY, func(p *state.Protocol, f *os.File) error { return emit.CacheDOT(p, f) }},
		{"shared-memory-state-machine.viz", os.O_TRUNC | os.O_CREATE | os.O_WRONLY, func(p *state.Protocol, f *os.File) error { return emit.MemoryDOT(p, f) }},
	}

	for _, w := range writers {
		path := filepath.Join(outDir, w.file)
		f, err := os.OpenFile(path, w.flags, 0o644)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		err = w.fn(p, f)
		closeErr := f.Close()
		if err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		if closeErr != nil {
			return fmt.Errorf("close %s: %w", path, closeErr)
		}
	}

	for _, vizName := range []string{"private-cache-state-machine", "shared-memory-state-machine"} {
		vizPath := filepath.Join(outDir, vizName+".viz")
		pdfPath := filepath.Join(outDir, vizName+".pdf")
		if err := emit.RenderPDF(vizPath, pdfPath); err != nil {
			fmt.Fprintf(os.Stderr, "cohgen: %v (CSV and DOT outputs are still written)\n", err)
		}
	}

	return nil
}
