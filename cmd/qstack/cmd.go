package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ava-labs/qstack/script"
)

type config struct {
	logLevel string
	metrics  bool
	order    string
}

func (c *config) addPersistentFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.logLevel, "log-level", "info", "Minimum level of logs written to stderr")
	fs.BoolVar(&c.metrics, "metrics", false, "Print operation metrics after the run")
}

func (c *config) addHeapFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.order, "order", string(script.Min), `Heap order, "min" or "max"`)
}

func newRootCmd() *cobra.Command {
	cfg := new(config)

	root := &cobra.Command{
		Use:   "qstack",
		Short: "Run operation scripts against a queue-backed stack or a binary heap.",
		Long: `Run operation scripts against a queue-backed stack or a binary heap. ` +
			`Scripts are read from the named files in order, or from stdin if ` +
			`there are none or a file is "-".`,
		SilenceUsage: true,
	}
	cfg.addPersistentFlags(root.PersistentFlags())

	stackCmd := &cobra.Command{
		Use:   "stack [file...]",
		Short: "Run push, pop, empty and len operations against a stack",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, script.NewStackTarget(), args)
		},
	}

	heapCmd := &cobra.Command{
		Use:   "heap [file...]",
		Short: "Run add, next, drain, peek, empty and len operations against a heap",
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := script.ParseOrder(cfg.order)
			if err != nil {
				return err
			}
			t, err := script.NewHeapTarget(o)
			if err != nil {
				return err
			}
			return run(cmd, cfg, t, args)
		},
	}
	cfg.addHeapFlags(heapCmd.Flags())

	root.AddCommand(stackCmd, heapCmd)
	return root
}

// nopCloser allows a [cobra.Command]'s error writer to back a logger without
// the logger closing it.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func newLogger(level string, w io.WriteCloser) (logging.Logger, error) {
	lvl, err := logging.ToLevel(level)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	return logging.NewLogger("", logging.NewWrappedCore(
		lvl, w, zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			MessageKey: "msg",
			TimeKey:    "time",
			LevelKey:   "level",
		}),
	)), nil
}

func run(cmd *cobra.Command, cfg *config, t script.Target, files []string) error {
	log, err := newLogger(cfg.logLevel, nopCloser{cmd.ErrOrStderr()})
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	metrics, err := script.NewMetrics(reg)
	if err != nil {
		return err
	}

	ops, err := readOps(cmd.InOrStdin(), files)
	if err != nil {
		return err
	}
	log.Debug("Parsed script",
		zap.Strings("files", files),
		zap.Int("ops", len(ops)),
	)

	results, runErr := script.NewRunner(t, log, metrics).Run(ops)
	out := cmd.OutOrStdout()
	for _, r := range results {
		if _, err := fmt.Fprintln(out, r); err != nil {
			return err
		}
	}
	if runErr != nil {
		return runErr
	}

	if !cfg.metrics {
		return nil
	}
	return writeMetrics(out, reg)
}

func readOps(stdin io.Reader, files []string) ([]script.Op, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}

	var all []script.Op
	for _, f := range files {
		ops, err := readFile(stdin, f)
		if err != nil {
			return nil, err
		}
		all = append(all, ops...)
	}
	return all, nil
}

func readFile(stdin io.Reader, name string) (_ []script.Op, retErr error) {
	if name == "-" {
		ops, err := script.Parse(stdin)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return ops, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		retErr = errors.Join(retErr, f.Close())
	}()

	ops, err := script.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return ops, nil
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
