package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rklaeser/go-blur3x3/pkg/blur"
	"github.com/rklaeser/go-blur3x3/pkg/imageio"
)

// EnvPrefix prefixes the environment variables that mirror each flag, with
// dashes turned into underscores (GBLUR_STATS_DIR for --stats-dir).
const EnvPrefix = "GBLUR"

const (
	DefaultInput  = "input.jpg"
	DefaultOutput = "output.jpg"
)

// Config is the resolved configuration of one run.
type Config struct {
	Input     string
	Output    string
	Quality   int
	Border    blur.BorderPolicy
	Workers   int
	Partition blur.Partition
	Backend   blur.Backend
	StatsDir  string
	RedisAddr string
	Verbose   bool
}

func registerFlags(flags *pflag.FlagSet, kind Kind) {
	flags.StringP("input", "i", DefaultInput, "source image")
	flags.StringP("output", "o", DefaultOutput, "destination image, format taken from the extension")
	flags.Int("quality", imageio.DefaultJPEGQuality, "JPEG quality (1-100)")
	flags.String("stats-dir", "", "write a performance results file into this directory")
	flags.String("redis", "", "publish the run record to the Redis server at this address")
	flags.BoolP("verbose", "v", false, "log debug details to stderr")

	switch kind {
	case KindLibrary:
		flags.String("backend", string(blur.BackendImaging), "blur library: imaging or bild")
	case KindParallel:
		flags.Int("workers", 0, "worker goroutines (0 uses GOMAXPROCS)")
		flags.String("partition", blur.PartitionFlat.String(), "work split: flat or rows")
	}
	if kind != KindLibrary {
		flags.String("border", blur.BorderCopy.String(), "border pixels: copy or zero")
	}
}

func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	return v, nil
}

// loadConfig resolves flags, environment and defaults. Positional arguments
// override the input and output paths.
func loadConfig(v *viper.Viper, kind Kind, args []string) (Config, error) {
	cfg := Config{
		Input:     v.GetString("input"),
		Output:    v.GetString("output"),
		Quality:   v.GetInt("quality"),
		StatsDir:  v.GetString("stats-dir"),
		RedisAddr: v.GetString("redis"),
		Verbose:   v.GetBool("verbose"),
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if len(args) > 1 {
		cfg.Output = args[1]
	}

	if cfg.Input == "" || cfg.Output == "" {
		return cfg, fmt.Errorf("input and output paths must not be empty")
	}
	if cfg.Quality < 1 || cfg.Quality > 100 {
		return cfg, fmt.Errorf("invalid quality %d (want 1-100)", cfg.Quality)
	}

	var err error
	switch kind {
	case KindLibrary:
		if cfg.Backend, err = blur.ParseBackend(v.GetString("backend")); err != nil {
			return cfg, err
		}
	case KindParallel:
		cfg.Workers = v.GetInt("workers")
		if cfg.Workers < 0 {
			return cfg, fmt.Errorf("invalid workers %d (want >= 0)", cfg.Workers)
		}
		if cfg.Partition, err = blur.ParsePartition(v.GetString("partition")); err != nil {
			return cfg, err
		}
	}
	if kind != KindLibrary {
		if cfg.Border, err = blur.ParseBorderPolicy(v.GetString("border")); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}
