// Command galtonbox runs a Galton box ("bean counter") simulation in text
// mode.
//
// It is invoked as:
//
//	galtonbox slot_count bean_count <luck | skill> [debug]
//
// Invalid arguments print usage text and exit cleanly without running the
// simulation. The optional "debug" argument prints the board state after
// every step. A named preset from the configs directory can be run instead
// with --preset. Final output is the per-slot bean counts.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/jmfields/galtonbox/machine/config"
	"github.com/jmfields/galtonbox/machine/engine"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Galton Box Simulator"
)

// envConfig holds environment-sourced defaults. Flags override these.
type envConfig struct {
	Seed      int64  `env:"GALTON_SEED"`
	ConfigDir string `env:"GALTON_CONFIG_DIR" envDefault:"configs"`
	Debug     bool   `env:"GALTON_DEBUG"`
}

// main loads environment defaults and runs the CLI command.
func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	var defaults envConfig
	if err := env.Parse(&defaults); err != nil {
		log.Fatalf("Failed to parse environment: %v", err)
	}

	cmd := newCommand(defaults, os.Stdout)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatalf("%s failed: %v", AppName, err)
	}
}

// newCommand builds the root CLI command. Output is written to out so tests
// can capture it.
func newCommand(defaults envConfig, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "galtonbox",
		Usage:     "simulate a Galton box bean machine",
		Version:   Version,
		ArgsUsage: "slot_count bean_count <luck | skill> [debug]",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "seed for the shared random source (0 seeds from the clock)",
				Value: defaults.Seed,
			},
			&cli.StringFlag{
				Name:  "preset",
				Usage: "run a named experiment preset instead of positional arguments",
			},
			&cli.StringFlag{
				Name:  "config-dir",
				Usage: "directory containing experiment presets",
				Value: defaults.ConfigDir,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if name := cmd.String("preset"); name != "" {
				manager, err := config.NewManager(cmd.String("config-dir"))
				if err != nil {
					return err
				}
				exp, err := manager.Load(name)
				if err != nil {
					return err
				}
				return runExperiment(out, exp)
			}

			exp, ok := parseRunArgs(cmd.Args().Slice(), cmd.Int64("seed"), defaults.Debug)
			if !ok {
				showUsage(out)
				return nil
			}
			return runExperiment(out, exp)
		},
	}
}

// parseRunArgs parses the positional form "slot_count bean_count
// <luck | skill> [debug]". It reports ok=false for any malformed input.
func parseRunArgs(args []string, seed int64, debug bool) (*config.Experiment, bool) {
	if len(args) != 3 && len(args) != 4 {
		return nil, false
	}

	slotCount, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, false
	}
	beanCount, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, false
	}
	if slotCount < engine.MinSlotCount || beanCount < 0 {
		return nil, false
	}

	var mode config.Mode
	switch args[2] {
	case "luck":
		mode = config.ModeLuck
	case "skill":
		mode = config.ModeSkill
	default:
		return nil, false
	}

	if len(args) == 4 && args[3] == "debug" {
		debug = true
	}

	return &config.Experiment{
		Name:      "cli",
		SlotCount: slotCount,
		BeanCount: beanCount,
		Mode:      mode,
		Seed:      seed,
		Debug:     debug,
	}, true
}

// runExperiment performs the experiment described by exp, including any
// repeats, writing results to out.
func runExperiment(out io.Writer, exp *config.Experiment) error {
	board, err := engine.NewBoard(exp.SlotCount)
	if err != nil {
		return err
	}

	seed := exp.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// One random source shared by every bean keeps the whole run
	// reproducible for a fixed seed.
	src := rand.New(rand.NewSource(seed))
	beans := make([]*engine.Bean, exp.BeanCount)
	for i := range beans {
		beans[i] = engine.NewBean(exp.SlotCount, exp.Mode.IsLuck(), src)
	}

	board.Reset(beans)
	for run := 0; run <= exp.Repeats; run++ {
		if run > 0 {
			board.Repeat()
			fmt.Fprintf(out, "\nRepeat %d:\n", run)
		}
		if exp.Debug {
			fmt.Fprintln(out, board)
		}
		for board.AdvanceStep() {
			if exp.Debug {
				fmt.Fprintln(out, board)
			}
		}
		fmt.Fprintln(out, "Slot bean counts:")
		fmt.Fprintln(out, board.GetSlotString())
	}

	return nil
}

// showUsage prints usage information.
func showUsage(out io.Writer) {
	fmt.Fprintln(out, "Usage: galtonbox slot_count bean_count <luck | skill> [debug]")
	fmt.Fprintln(out, "Example: galtonbox 10 400 luck")
	fmt.Fprintln(out, "Example: galtonbox 20 1000 skill debug")
}
