package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"

	"conwaylife/src/scenario"
	"conwaylife/src/view"
)

func main() {
	cfg := initOptions()

	scenarios := scenario.Builtins()
	if cfg.File != "" {
		extra, err := scenario.Load(cfg.File)
		if err != nil {
			fail(err)
		}
		scenarios = append(scenarios, extra...)
	}

	if cfg.List {
		listScenarios(scenarios)
		return
	}

	if cfg.All {
		runAll(scenarios, cfg)
		return
	}

	sc, ok := scenario.Find(scenarios, cfg.Scenario)
	if !ok {
		flaggy.ShowHelpAndExit("unknown scenario")
	}
	runOne(sc, cfg)
}

func runOne(sc scenario.Scenario, cfg scenario.Config) {
	sc = scenario.Override(sc, cfg)

	u, err := scenario.Build(sc, os.Stdout)
	if err != nil {
		fail(err)
	}

	c := view.NewConsole(os.Stdout)
	c.Header(sc.Name, sc.Descr, u)
	u.RegisterObserver(c)

	u.Run()
	fmt.Printf("There are %d alive cells in the Universe.\n", u.CountLive(nil))
}

func runAll(scenarios []scenario.Scenario, cfg scenario.Config) {
	for i := range scenarios {
		scenarios[i] = scenario.Override(scenarios[i], cfg)
	}

	fmt.Printf("Running %d scenarios...\n", len(scenarios))
	results, err := scenario.RunAll(scenarios)
	if err != nil {
		fail(err)
	}

	for _, r := range results {
		fmt.Printf("%-10s %v cycles: %-6d live cells: %-6d time: %v\n",
			r.Scenario.Name,
			view.StateText(r.Status.State),
			r.Status.Cycle,
			r.Status.LiveCells,
			r.Status.Elapsed.Round(time.Millisecond))
	}
}

func listScenarios(scenarios []scenario.Scenario) {
	fmt.Println("Available scenarios:")
	for _, sc := range scenarios {
		fmt.Println(view.Prop(sc.Name, "%s", sc.Descr))
	}
}

func initOptions() scenario.Config {
	cfg, err := scenario.FromEnv(scenario.DefaultConfig())
	if err != nil {
		fail(err)
	}

	names := make([]string, 0, len(scenario.Builtins()))
	for _, sc := range scenario.Builtins() {
		names = append(names, sc.Name)
	}

	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&cfg.Scenario, "c", "scenario", "Scenario to run ["+strings.Join(names, "|")+"]")
	flaggy.String(&cfg.File, "f", "file", "JSON file with extra scenario definitions")
	flaggy.Int(&cfg.Width, "x", "width", "Width of a simulation field (overrides the scenario)")
	flaggy.Int(&cfg.Height, "y", "height", "Height of a simulation field (overrides the scenario)")
	flaggy.Int(&cfg.Cycles, "s", "cycles", "Limit the simulation to this number of cycles (overrides the scenario)")
	flaggy.Bool(&cfg.Quiet, "q", "quiet", "Suppress the per-cycle narration")
	flaggy.Bool(&cfg.All, "a", "all", "Run every scenario and print the summary table")
	flaggy.Bool(&cfg.List, "l", "list", "List the available scenarios")

	flaggy.Parse()

	return cfg
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, aurora.Colorize(err.Error(), aurora.RedFg).String())
	os.Exit(1)
}
