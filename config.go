package objectid

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/outofforest/objectid/pkg/parse"
)

// Mode selects what the command does.
type Mode int

// Modes.
const (
	ModeGenerate Mode = iota
	ModeInspect
	ModeEqual
)

// Config is the configuration of the command.
type Config struct {
	Mode Mode

	// Count is the number of identifiers to generate.
	Count int

	// Workers is the number of goroutines generating identifiers.
	Workers int

	// Timestamp, if set, is stamped into generated identifiers instead of the current time.
	Timestamp *uint32

	// TimestampOnly produces identifiers with only the timestamp field populated.
	TimestampOnly bool

	// Args are identifiers to inspect or compare.
	Args []string
}

// ConfigFromArgs builds configuration from command line arguments.
// Unknown flags are ignored, they belong to the logger.
func ConfigFromArgs(args []string) (Config, error) {
	cfg := Config{}

	flags := pflag.NewFlagSet("objectid", pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.IntVar(&cfg.Count, "count", 1, "Number of identifiers to generate")
	flags.IntVar(&cfg.Workers, "workers", 1, "Number of concurrent generators")
	timestamp := flags.String("time", "", "Timestamp of generated identifiers, Unix seconds or RFC 3339")
	flags.BoolVar(&cfg.TimestampOnly, "timestamp-only", false, "Populate only the timestamp field")
	inspect := flags.Bool("inspect", false, "Decode identifiers given as arguments or found on standard input")
	equal := flags.Bool("equal", false, "Compare two identifiers given as arguments")

	if err := flags.Parse(args); err != nil {
		return Config{}, errors.WithStack(err)
	}
	cfg.Args = flags.Args()

	if flags.Changed("time") {
		ts, err := parse.Timestamp(*timestamp)
		if err != nil {
			return Config{}, err
		}
		cfg.Timestamp = &ts
	}

	switch {
	case *inspect && *equal:
		return Config{}, errors.New("--inspect and --equal are mutually exclusive")
	case *inspect:
		cfg.Mode = ModeInspect
	case *equal:
		cfg.Mode = ModeEqual
		if len(cfg.Args) != 2 {
			return Config{}, errors.Errorf("--equal requires exactly two identifiers, got %d", len(cfg.Args))
		}
	default:
		if cfg.Count < 0 {
			return Config{}, errors.Errorf("--count must not be negative, got %d", cfg.Count)
		}
		if cfg.Workers < 1 {
			return Config{}, errors.Errorf("--workers must be positive, got %d", cfg.Workers)
		}
	}

	return cfg, nil
}
