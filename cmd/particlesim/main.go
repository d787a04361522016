// Command particlesim is the CLI front end for the particle/fluid
// kernel: run a named scenario for N frames, persist its frames, list
// and preview stored runs, and dump the built-in presets.
//
// Grounded on cmd/dynsim/main.go's cobra command tree (root command
// with persistent --data flag, run/list/plot-style subcommands) and
// its runSimulation's preset/config-file precedence (preset first,
// then an explicit --config file overriding it).
package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/particlesim/internal/animation"
	"github.com/san-kum/particlesim/internal/config"
	"github.com/san-kum/particlesim/internal/metrics"
	"github.com/san-kum/particlesim/internal/store"
	"github.com/san-kum/particlesim/internal/vecmath"
	"github.com/san-kum/particlesim/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "particlesim",
		Short: "particle and fluid simulation kernel",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".particlesim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a scenario and persist its frames",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().StringVar(&preset, "preset", "", "named preset for the scenario")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml), overrides --preset")
	runCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	previewCmd := &cobra.Command{
		Use:   "preview [runID]",
		Short: "step through a stored run's frames in a terminal viewer",
		Args:  cobra.ExactArgs(1),
		RunE:  previewRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [scenario]",
		Short: "list built-in presets for a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for scenario: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, n := range names {
				fmt.Printf("  %s\n", n)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, previewCmd, presetsCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(scenarioName string) (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	if preset != "" {
		cfg := config.GetPreset(scenarioName, preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q for scenario %q (available: %v)", preset, scenarioName, config.ListPresets(scenarioName))
		}
		return cfg, nil
	}
	cfg := config.DefaultConfig()
	cfg.Scenario = scenarioName
	return cfg, nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	scenarioName := args[0]
	cfg, err := loadConfig(scenarioName)
	if err != nil {
		return err
	}
	cfg.Seed = seed

	sc, err := buildScenario(cfg)
	if err != nil {
		return err
	}

	sc.anim.Update(animation.Frame{Index: 0, TimeIntervalInSeconds: 1.0 / cfg.FrameRate})

	frames := make([]store.FrameSnapshot, 0, cfg.FrameCount)
	series := make([]metrics.Snapshot, 0, cfg.FrameCount)
	for k := uint32(1); k <= uint32(cfg.FrameCount); k++ {
		sc.anim.Update(animation.Frame{Index: k, TimeIntervalInSeconds: 1.0 / cfg.FrameRate})

		positions := append([]vecmath.Vector3(nil), sc.positions()...)
		frames = append(frames, store.FrameSnapshot{
			Frame: k, Time: sc.anim.CurrentTimeInSeconds(), Positions: positions,
		})

		series = append(series, metrics.Compute(k, sc.anim.CurrentTimeInSeconds(), sc.positions(), sc.velocities(), sc.mass(), 9.8))
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runID, err := st.Save(cfg.Scenario, cfg.Seed, cfg.FrameRate, series, frames)
	if err != nil {
		return err
	}
	fmt.Printf("run %s: %d frames stored under %s\n", runID, len(frames), dataDir)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tFRAMES\tFPS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.0f\n",
			run.ID, run.Scenario, run.Timestamp.Format("2006-01-02 15:04:05"), run.FrameCount, run.FrameRate)
	}
	return w.Flush()
}

func previewRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := store.New(dataDir)

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}
	series, err := st.LoadMetrics(runID)
	if err != nil {
		return err
	}

	kinetic := make([]float64, len(series))
	for i, snap := range series {
		kinetic[i] = snap.KineticEnergy
	}

	p := viz.NewPreview(meta.Scenario, frames, kinetic)
	return viz.Run(p)
}
