package scenario

import (
	"encoding/json"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

//Config holds the runner options coming from the environment and the
//command line. Width, Height, Cycles and Quiet override the chosen
//scenario's own values.
type Config struct {
	Scenario string `env:"LIFE_SCENARIO"`
	File     string `env:"LIFE_SCENARIO_FILE"` //JSON file with extra scenarios
	All      bool   `env:"LIFE_ALL"`           //run every scenario instead of one
	List     bool   `env:"LIFE_LIST"`          //list scenarios and exit
	Quiet    bool   `env:"LIFE_QUIET"`
	Width    int    `env:"LIFE_WIDTH"`  //0 keeps the scenario's width
	Height   int    `env:"LIFE_HEIGHT"` //0 keeps the scenario's height
	Cycles   int    `env:"LIFE_CYCLES"` //negative keeps the scenario's cycles
}

//DefaultConfig returns the runner defaults applied before environment and
//flag overrides
func DefaultConfig() Config {
	return Config{
		Scenario: "classic",
		Cycles:   -1,
	}
}

//FromEnv applies the LIFE_* environment variables on top of cfg
func FromEnv(cfg Config) (Config, error) {
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Wrap(err, "[FromEnv] failed to parse environment")
	}
	return cfg, nil
}

//Load reads extra scenario definitions from a JSON file
func Load(filename string) ([]Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to read file: %+v", filename)
	}

	var scenarios []Scenario
	if err = json.Unmarshal(data, &scenarios); err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to unmarshal data from file: %+v", filename)
	}

	return scenarios, nil
}

//Override applies the runner's scenario overrides to sc
func Override(sc Scenario, cfg Config) Scenario {
	if cfg.Width > 0 {
		sc.Width = cfg.Width
	}
	if cfg.Height > 0 {
		sc.Height = cfg.Height
	}
	if cfg.Cycles >= 0 {
		sc.Cycles = cfg.Cycles
	}
	if cfg.Quiet {
		sc.Quiet = true
	}
	return sc
}
