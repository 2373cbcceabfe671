// Package cli wires the blur programs: flags and environment through cobra
// and viper, image I/O, the chosen blur variant and run reporting.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rklaeser/go-blur3x3/pkg/blur"
	"github.com/rklaeser/go-blur3x3/pkg/imageio"
	"github.com/rklaeser/go-blur3x3/pkg/stats"
)

// Kind selects which blur implementation a program runs.
type Kind int

const (
	KindLibrary Kind = iota
	KindSequential
	KindParallel
)

// Variant describes one program.
type Variant struct {
	Name          string
	Short         string
	Algorithm     string
	Kind          Kind
	Success       string
	DecodeFailure string
}

var (
	LibraryVariant = Variant{
		Name:          "blur",
		Short:         "Blur an image with an imaging library's 3x3 Gaussian blur",
		Algorithm:     "Library",
		Kind:          KindLibrary,
		Success:       "Gaussian blur applied!",
		DecodeFailure: "Error: Could not load image!",
	}

	SequentialVariant = Variant{
		Name:          "blur-sequential",
		Short:         "Blur an image with the manual 3x3 kernel on one goroutine",
		Algorithm:     "Sequential",
		Kind:          KindSequential,
		Success:       "Gaussian blur applied!",
		DecodeFailure: "Error: Could not load image!",
	}

	ParallelVariant = Variant{
		Name:          "blur-parallel",
		Short:         "Blur an image with the manual 3x3 kernel across a worker pool",
		Algorithm:     "Parallel",
		Kind:          KindParallel,
		Success:       "Gaussian blur applied using OpenMP!",
		DecodeFailure: "Error loading image!",
	}
)

// ExitError carries the process exit code of a failed run. Its message has
// already been printed when it is returned.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }

// NewCommand builds the cobra command for v.
func NewCommand(v Variant) *cobra.Command {
	cmd := &cobra.Command{
		Use:           v.Name + " [input [output]]",
		Short:         v.Short,
		Args:          cobra.MaximumNArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	registerFlags(cmd.Flags(), v.Kind)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		vp, err := newViper(cmd.Flags())
		if err != nil {
			return err
		}
		cfg, err := loadConfig(vp, v.Kind, args)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return &ExitError{Code: 1, Err: err}
		}
		return run(cmd.Context(), v, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	}
	return cmd
}

// Execute runs v with args and returns the process exit code.
func Execute(v Variant, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	cmd := NewCommand(v)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// Main loads an optional .env file from the working directory and runs v
// with the process arguments.
func Main(v Variant) int {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: failed to load .env: %v\n", err)
	}
	return Execute(v, os.Args[1:], os.Stdout, os.Stderr)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(ctx context.Context, v Variant, cfg Config, stdout, stderr io.Writer) error {
	logger := newLogger(stderr, cfg.Verbose)
	blur.SetLogger(logger)
	defer blur.SetLogger(nil)

	startTime := time.Now()

	src, err := imageio.Load(cfg.Input)
	if err != nil {
		fmt.Fprintln(stdout, v.DecodeFailure)
		logger.Debug("load failed", "err", err)
		return &ExitError{Code: 1, Err: err}
	}
	loaded := time.Now()

	dst, err := v.apply(src, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return &ExitError{Code: 1, Err: err}
	}
	blurred := time.Now()

	if err := imageio.Save(cfg.Output, dst, imageio.WithJPEGQuality(cfg.Quality)); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return &ExitError{Code: 1, Err: err}
	}
	saved := time.Now()

	fmt.Fprintln(stdout, v.Success)

	data := v.performanceData(cfg, src)
	data.Timestamp = startTime
	data.LoadTime = loaded.Sub(startTime).Seconds()
	data.BlurTime = blurred.Sub(loaded).Seconds()
	data.SaveTime = saved.Sub(blurred).Seconds()
	data.TotalTime = saved.Sub(startTime).Seconds()

	logger.Info("blur finished",
		"algorithm", v.Algorithm,
		"size", fmt.Sprintf("%dx%d", src.Width, src.Height),
		"blur", blurred.Sub(loaded),
		"total", saved.Sub(startTime))

	report(ctx, cfg, strings.ToLower(v.Algorithm)+"_", &data, logger)
	return nil
}

func (v Variant) apply(src *blur.Buffer, cfg Config) (*blur.Buffer, error) {
	switch v.Kind {
	case KindLibrary:
		return blur.Library(src, blur.WithBackend(cfg.Backend))
	case KindParallel:
		return blur.Parallel(src,
			blur.WithBorder(cfg.Border),
			blur.WithWorkers(cfg.Workers),
			blur.WithPartition(cfg.Partition),
		), nil
	default:
		return blur.Sequential(src, blur.WithBorder(cfg.Border)), nil
	}
}

func (v Variant) performanceData(cfg Config, src *blur.Buffer) stats.PerformanceData {
	data := stats.PerformanceData{
		AlgorithmName: v.Algorithm,
		InputPath:     cfg.Input,
		OutputPath:    cfg.Output,
		Width:         src.Width,
		Height:        src.Height,
	}

	switch v.Kind {
	case KindLibrary:
		backend := string(cfg.Backend)
		data.Backend = &backend
	case KindParallel:
		workers := cfg.Workers
		if workers <= 0 {
			workers = runtime.GOMAXPROCS(0)
		}
		partition := cfg.Partition.String()
		data.Workers = &workers
		data.Partition = &partition
	}
	if v.Kind != KindLibrary {
		border := cfg.Border.String()
		data.Border = &border
	}
	return data
}

// report writes the run to the configured sinks. Failures are logged and
// never fail the run.
func report(ctx context.Context, cfg Config, prefix string, data *stats.PerformanceData, logger *slog.Logger) {
	if cfg.StatsDir != "" {
		path, err := stats.WritePerformanceResultsWithPrefix(cfg.StatsDir, []stats.PerformanceData{*data}, prefix)
		if err != nil {
			logger.Warn("failed to write results file", "err", err)
		} else {
			logger.Info("results written", "path", path)
		}
	}

	if cfg.RedisAddr != "" {
		pub, err := stats.NewRedisPublisher(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Warn("failed to connect to redis", "addr", cfg.RedisAddr, "err", err)
			return
		}
		defer pub.Close()

		id, err := pub.Publish(ctx, data)
		if err != nil {
			logger.Warn("failed to publish run", "err", err)
			return
		}
		logger.Info("run published", "stream", stats.RunsStream, "id", id)
	}
}
