// cmd/vec3/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// run executes the calculator and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("vec3", flag.ContinueOnError)
	flags.SetOutput(stderr)

	configPath := flags.String("config", "", "path to a YAML config file")
	typ := flags.String("type", "", "component type: int, float32 or float64")
	format := flags.String("fmt", "", "fmt verb applied to every component (v d b o x X e E f g G)")
	seed := flags.Uint64("seed", 0, "seed for sphere/disk/unit sampling")
	samples := flags.Int("n", 0, "number of samples for sphere/disk/unit")
	shift := flags.Uint("shift", 0, "shift amount for shl/shr")
	index := flags.Int("index", 0, "component index for get")
	logLevel := flags.String("log-level", "", "logrus level (debug, info, warn, error)")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if flags.NArg() == 0 {
		_, _ = fmt.Fprintln(stderr, "usage: vec3 [-config file.yaml] [-type T] [-fmt verb] <op> [vector...]")
		return 2
	}

	cfg, err := loadConfig(*configPath, os.LookupEnv)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "vec3:", err)
		return 2
	}

	// Explicit flags win over file and environment.
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "type":
			cfg.Type = *typ
		case "fmt":
			cfg.Format = *format
		case "seed":
			cfg.Seed = *seed
		case "n":
			cfg.Samples = *samples
		case "shift":
			cfg.Shift = *shift
		case "index":
			cfg.Index = *index
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	if err := cfg.validate(); err != nil {
		_, _ = fmt.Fprintln(stderr, "vec3:", err)
		return 2
	}

	logger := newLogger(stderr, cfg.LogLevel)
	op, operands := flags.Arg(0), flags.Args()[1:]

	lines, err := evaluate(cfg, op, operands, logger)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "vec3:", err)
		var ue usageError
		if errors.As(err, &ue) {
			return 2
		}
		return 1
	}

	logger.WithFields(logrus.Fields{
		"action": "evaluate",
		"op":     op,
		"type":   cfg.Type,
		"lines":  len(lines),
	}).Debug("done")

	for _, line := range lines {
		_, _ = fmt.Fprintln(stdout, line)
	}
	return 0
}

// newLogger builds a text logger on w. level has already been validated.
func newLogger(w io.Writer, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if lvl, err := logrus.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
