package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajitpratap0/lambdadb/internal/sample"
	"github.com/ajitpratap0/lambdadb/pkg/batch"
	"github.com/ajitpratap0/lambdadb/pkg/config"
	"github.com/ajitpratap0/lambdadb/pkg/logger"
	"github.com/ajitpratap0/lambdadb/pkg/metrics"
	"github.com/ajitpratap0/lambdadb/pkg/render"
	"github.com/ajitpratap0/lambdadb/pkg/tabledef"
	"github.com/ajitpratap0/lambdadb/pkg/tracing"
)

var version = "0.1.0"

const title = "LambdaDB - Mini Query Engine"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// globalFlags are the persistent flags shared by every command. Flags left
// unset do not override the config file.
type globalFlags struct {
	configFile string
	logLevel   string
	format     string
	metrics    bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:   "lambdadb",
		Short: "LambdaDB - columnar record batches",
		Long: `LambdaDB assembles typed, nullable columns into validated record batches.
Run without arguments to build and print the sample table.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, &flags, stdout, stderr, func(s *session) error {
				if s.cfg.Render.Format == render.FormatText {
					fmt.Fprintln(stdout, title)
					fmt.Fprintln(stdout, strings.Repeat("=", len(title)))
					fmt.Fprintln(stdout)
					fmt.Fprintln(stdout, "Creating sample RecordBatch...")
					fmt.Fprintln(stdout)
				}
				b, err := sample.Batch(cmd.Context(), s.assembler)
				if err != nil {
					return err
				}
				return s.renderer.Render(stdout, b)
			})
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "Path to a YAML config file")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVar(&flags.format, "format", "", "Output format (text, json)")
	pf.BoolVar(&flags.metrics, "metrics", false, "Dump assembly metrics to stderr after the run")

	root.AddCommand(newRenderCmd(&flags, stdout, stderr))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(stdout, "LambdaDB v%s\n", version)
			fmt.Fprintf(stdout, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(stdout, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	return root
}

func newRenderCmd(flags *globalFlags, stdout, stderr io.Writer) *cobra.Command {
	var tableFile string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Assemble and print a table definition file",
		Long: `Assemble the table described by a YAML definition file and print it.

Example:
  lambdadb render --table people.yaml --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, flags, stdout, stderr, func(s *session) error {
				def, err := tabledef.Load(tableFile)
				if err != nil {
					return err
				}
				s.logger.Info("loaded table definition",
					zap.String("table", def.Name),
					zap.Int("fields", len(def.Fields)))
				b, err := def.Assemble(cmd.Context(), s.assembler)
				if err != nil {
					return err
				}
				return s.renderer.Render(stdout, b)
			})
		},
	}
	cmd.Flags().StringVarP(&tableFile, "table", "t", "", "Path to table definition YAML file (required)")
	_ = cmd.MarkFlagRequired("table")
	return cmd
}

// session holds everything a command needs for one run.
type session struct {
	cfg       *config.Config
	logger    *zap.Logger
	assembler *batch.Assembler
	renderer  render.Renderer
}

// withSession loads configuration, wires logging, metrics and tracing, runs
// fn, then flushes whatever was enabled. Flushing happens even when fn fails.
func withSession(cmd *cobra.Command, flags *globalFlags, stdout, stderr io.Writer, fn func(*session) error) (err error) {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log.LoggerConfig())
	if err != nil {
		return err
	}
	logger.Set(log)
	defer func() { _ = log.Sync() }()

	renderer, err := render.New(cfg.Render.Format)
	if err != nil {
		return err
	}

	collector := metrics.Noop()
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector()
		defer func() {
			if werr := metrics.WriteText(stderr); werr != nil && err == nil {
				err = werr
			}
		}()
	}

	if cfg.Tracing.Enabled {
		shutdown, terr := tracing.Setup(stderr, tracing.Config{
			ServiceName:    "lambdadb",
			ServiceVersion: version,
			SamplingRate:   1.0,
			PrettyPrint:    true,
		})
		if terr != nil {
			return terr
		}
		defer func() {
			if serr := shutdown(context.Background()); serr != nil && err == nil {
				err = serr
			}
		}()
	}

	log.Debug("configuration loaded",
		zap.String("format", cfg.Render.Format),
		zap.Bool("metrics", cfg.Metrics.Enabled),
		zap.Bool("tracing", cfg.Tracing.Enabled))

	return fn(&session{
		cfg:    cfg,
		logger: log,
		assembler: batch.NewAssembler(
			batch.WithLogger(log),
			batch.WithMetrics(collector),
		),
		renderer: renderer,
	})
}

func loadConfig(cmd *cobra.Command, flags *globalFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configFile)
	if err != nil {
		return nil, err
	}
	pf := cmd.Flags()
	if pf.Changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if pf.Changed("format") {
		cfg.Render.Format = flags.format
	}
	if pf.Changed("metrics") {
		cfg.Metrics.Enabled = flags.metrics
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
