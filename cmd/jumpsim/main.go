package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/jumpsim/scenario"
	"github.com/oomph-ac/jumpsim/session"
	"github.com/oomph-ac/jumpsim/settings"
	"github.com/oomph-ac/jumpsim/worker"
	"github.com/sirupsen/logrus"
)

var CLI struct {
	SettingsFile string `name:"settings" help:"Settings file, created with defaults when missing." default:"settings.toml" type:"path"`

	Run struct {
		Out       string   `help:"Directory to write trajectories to. Overrides the settings."`
		Format    string   `help:"Trajectory format, json or cbor. Overrides the settings."`
		Compress  bool     `help:"Compress trajectories with zstd."`
		Chart     bool     `help:"Also write an HTML chart of every run."`
		Parallel  int      `help:"Amount of scenarios run at once. Overrides the settings." default:"-1"`
		Scenarios []string `arg:"" name:"scenarios" help:"Scenario files to run." type:"existingfile"`
	} `cmd:"" help:"Run scenarios and export their trajectories."`

	Defaults struct{} `cmd:"" name:"settings" help:"Write the default settings to standard output."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("jumpsim"),
		kong.Description("a deterministic TF2 movement and rocket jump simulator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	switch ctx.Command() {
	case "run <scenarios>":
		if err := runCommand(); err != nil {
			writeError(err)
		}
	case "settings":
		data, err := settings.Marshal(settings.Default())
		if err != nil {
			writeError(err)
		}
		os.Stdout.Write(data)
	}
}

func runCommand() error {
	s, err := settings.Load(CLI.SettingsFile)
	if err != nil {
		return err
	}
	run := CLI.Run
	if run.Out != "" {
		s.Output.Dir = run.Out
	}
	if run.Format != "" {
		s.Output.Format = run.Format
	}
	s.Output.Compress = s.Output.Compress || run.Compress
	s.Output.Chart = s.Output.Chart || run.Chart
	if run.Parallel >= 0 {
		s.Worker.Parallelism = run.Parallel
	}
	if err := s.Validate(); err != nil {
		return err
	}

	log := s.Logger()
	if s.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: s.Sentry.DSN, Environment: s.Sentry.Environment}); err != nil {
			return fmt.Errorf("sentry init: %w", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	scenarios, err := scenario.LoadAll(run.Scenarios...)
	if err != nil {
		return err
	}

	pool := worker.New(context.Background(), s.Worker.Parallelism)
	for _, sc := range scenarios {
		sc := sc
		pool.Submit(func(context.Context) error {
			return runScenario(s, log, sc)
		})
	}
	return pool.Wait()
}

// runScenario runs sc in its own simulation and writes its outputs.
func runScenario(s settings.Settings, log *logrus.Logger, sc *scenario.Scenario) error {
	sim, err := s.NewSimulation(log)
	if err != nil {
		return err
	}
	sess, _, err := scenario.Run(sim, sc)
	if err != nil {
		return fmt.Errorf("%s: %w", sc.Name, err)
	}

	t := sess.Trajectory(sc.Name)
	out, err := session.WriteFile(s.Output.Dir, t, s.Format(), s.Output.Compress)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"scenario": sc.Name, "file": out}).Info("trajectory written")

	if !s.Output.Chart {
		return nil
	}
	chart, err := session.WriteChart(s.Output.Dir, t)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"scenario": sc.Name, "file": chart}).Info("chart written")
	return nil
}
