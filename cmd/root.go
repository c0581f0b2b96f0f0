package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	sim "github.com/pumpsim/pumpsim/sim"
	"github.com/pumpsim/pumpsim/sim/trace"
)

// StartLine is printed before the output header.
const StartLine = "Starting real-time tank filling simulation..."

var (
	// CLI flags for pump, pipe and tank parameters
	flowRate      float64 // Pump flow rate (m³/s)
	pumpHead      float64 // Pump head (m)
	pipeLength    float64 // Pipe length (m)
	pipeDiameter  float64 // Pipe diameter (m)
	pipeRoughness float64 // Pipe roughness (informational)
	density       float64 // Fluid density (kg/m³)
	tankHeight    float64 // Tank height (m)
	tankRadius    float64 // Tank radius (m)
	initialLevel  float64 // Initial water level (m)
	duration      float64 // Simulated duration (s)
	timeStep      float64 // Time step (s)

	// CLI flags for run control and outputs
	realtime         bool   // Pace ticks against the wall clock
	scenarioName     string // Named scenario from the catalogue
	defaultsFilePath string // Path to the scenario catalogue
	logLevel         string // Log verbosity level
	resultsPath      string // File to save run metrics JSON
	traceLevel       string // Trace verbosity level
	tracePath        string // File to save the tick trace YAML
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "pumpsim",
	Short: "Real-time pump, pipe and tank filling simulator",
}

// paramFlag binds a float flag name to its variable and the config field it overrides.
type paramFlag struct {
	name string
	src  *float64
	dst  func(*sim.Config) *float64
}

var paramFlags = []paramFlag{
	{"flow-rate", &flowRate, func(c *sim.Config) *float64 { return &c.Pump.FlowRate }},
	{"head", &pumpHead, func(c *sim.Config) *float64 { return &c.Pump.Head }},
	{"pipe-length", &pipeLength, func(c *sim.Config) *float64 { return &c.Pipe.Length }},
	{"pipe-diameter", &pipeDiameter, func(c *sim.Config) *float64 { return &c.Pipe.Diameter }},
	{"pipe-roughness", &pipeRoughness, func(c *sim.Config) *float64 { return &c.Pipe.Roughness }},
	{"density", &density, func(c *sim.Config) *float64 { return &c.Pipe.Density }},
	{"tank-height", &tankHeight, func(c *sim.Config) *float64 { return &c.Tank.Height }},
	{"tank-radius", &tankRadius, func(c *sim.Config) *float64 { return &c.Tank.Radius }},
	{"initial-level", &initialLevel, func(c *sim.Config) *float64 { return &c.Tank.InitialLevel }},
	{"duration", &duration, func(c *sim.Config) *float64 { return &c.Duration }},
	{"time-step", &timeStep, func(c *sim.Config) *float64 { return &c.TimeStep }},
}

// buildConfig starts from the compiled-in defaults or the selected scenario and
// applies every flag the user set explicitly.
func buildConfig(cmd *cobra.Command) (sim.Config, error) {
	cfg := sim.DefaultConfig()
	if scenarioName != "" {
		cat, err := LoadCatalogue(defaultsFilePath)
		if err != nil {
			return sim.Config{}, err
		}
		if cfg, err = cat.Lookup(scenarioName); err != nil {
			return sim.Config{}, err
		}
		logrus.Infof("Loaded scenario %q from %s", scenarioName, defaultsFilePath)
	}
	for _, f := range paramFlags {
		if cmd.Flags().Changed(f.name) {
			*f.dst(&cfg) = *f.src
		}
	}
	return cfg, cfg.Validate()
}

// runSimulation runs cfg, writing the output stream to out.
func runSimulation(cfg sim.Config, out io.Writer, sleeper sim.Sleeper, tc trace.TraceConfig) (*sim.Simulator, error) {
	sink := sim.NewWriterSink(out)
	s, err := sim.NewSimulator(cfg, sink, sleeper)
	if err != nil {
		return nil, err
	}
	if tc.Level != trace.TraceLevelNone && tc.Level != "" {
		s.Trace = trace.NewSimulationTrace(tc)
	}
	if err := sink.EmitLine(StartLine); err != nil {
		return nil, err
	}
	if err := s.Run(); err != nil {
		return s, err
	}
	return s, nil
}

// saveTrace writes the tick trace as YAML.
func saveTrace(st *trace.SimulationTrace, path string) error {
	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshalling trace: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing trace to %s: %w", path, err)
	}
	return nil
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the tank filling simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Unknown trace level %q; valid: none, ticks, notices", traceLevel)
		}
		if tracePath != "" && (traceLevel == "" || traceLevel == string(trace.TraceLevelNone)) {
			traceLevel = string(trace.TraceLevelTicks)
		}

		cfg, err := buildConfig(cmd)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		var sleeper sim.Sleeper = sim.RealTimeSleeper{}
		if !realtime {
			sleeper = sim.NoopSleeper{}
		}

		s, err := runSimulation(cfg, cmd.OutOrStdout(), sleeper, trace.TraceConfig{Level: trace.TraceLevel(traceLevel)})
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		if err := s.Metrics.SaveResults(resultsPath); err != nil {
			logrus.Errorf("Could not save results: %v", err)
		}
		if s.Trace != nil {
			summary := trace.Summarize(s.Trace, string(sim.NoticeOverflow))
			logrus.Infof("Trace: %d ticks, %d no-flow, first overflow at tick %d, regimes %v",
				summary.TotalTicks, summary.NoFlowTicks, summary.FirstOverflowTick, summary.RegimeDistribution)
			if tracePath != "" {
				if err := saveTrace(s.Trace, tracePath); err != nil {
					logrus.Errorf("Could not save trace: %v", err)
				}
			}
		}
	},
}

// scenariosCmd lists the scenario catalogue
var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the scenarios in the catalogue",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := LoadCatalogue(defaultsFilePath)
		if err != nil {
			return err
		}
		return printCatalogue(cmd.OutOrStdout(), cat)
	},
}

func printCatalogue(w io.Writer, cat *Catalogue) error {
	for _, name := range cat.Names() {
		sc := cat.Scenarios[name]
		if _, err := fmt.Fprintf(w, "%-12s Q=%g m³/s H=%g m tank=%gx r%g m  %s\n",
			name, sc.Pump.FlowRate, sc.Pump.Head, sc.Tank.Height, sc.Tank.Radius, sc.Description); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	d := sim.DefaultConfig()

	// Physical parameters
	runCmd.Flags().Float64Var(&flowRate, "flow-rate", d.Pump.FlowRate, "Pump flow rate (m³/s)")
	runCmd.Flags().Float64Var(&pumpHead, "head", d.Pump.Head, "Pump head (m)")
	runCmd.Flags().Float64Var(&pipeLength, "pipe-length", d.Pipe.Length, "Pipe length (m)")
	runCmd.Flags().Float64Var(&pipeDiameter, "pipe-diameter", d.Pipe.Diameter, "Pipe diameter (m)")
	runCmd.Flags().Float64Var(&pipeRoughness, "pipe-roughness", d.Pipe.Roughness, "Pipe roughness (informational)")
	runCmd.Flags().Float64Var(&density, "density", d.Pipe.Density, "Fluid density (kg/m³)")
	runCmd.Flags().Float64Var(&tankHeight, "tank-height", d.Tank.Height, "Tank height (m)")
	runCmd.Flags().Float64Var(&tankRadius, "tank-radius", d.Tank.Radius, "Tank radius (m)")
	runCmd.Flags().Float64Var(&initialLevel, "initial-level", d.Tank.InitialLevel, "Initial water level (m)")
	runCmd.Flags().Float64Var(&duration, "duration", d.Duration, "Simulated duration (s)")
	runCmd.Flags().Float64Var(&timeStep, "time-step", d.TimeStep, "Time step (s)")

	// Run control and outputs
	runCmd.Flags().BoolVar(&realtime, "realtime", true, "Pace ticks against the wall clock")
	runCmd.Flags().StringVar(&scenarioName, "scenario", "", "Named scenario from the catalogue; explicit flags override it")
	runCmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&resultsPath, "results-path", "", "File to save run metrics as JSON")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", "none", "Tick trace level (none, ticks, notices)")
	runCmd.Flags().StringVar(&tracePath, "trace-path", "", "File to save the tick trace as YAML")

	rootCmd.PersistentFlags().StringVar(&defaultsFilePath, "defaults", "defaults.yaml", "Path to the scenario catalogue")

	// Attach subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scenariosCmd)
}
