// Command valido checks data files against column contracts and describes their shape.
//
// Usage:
//
//	valido check --contract cars.yaml cars.parquet more_cars.arrow
//	valido describe --dtypes cars.parquet
package main

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/go-sif/valido"
	"github.com/go-sif/valido/arrowframe"
	"github.com/go-sif/valido/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	logLevel string
	logger   *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{logger: zap.NewNop()}
	cmd := &cobra.Command{
		Use:   "valido",
		Short: "Validate the columns of DataFrames stored in Arrow and Parquet files",
		Long: `valido checks the schema of Arrow IPC and Parquet files against contracts
declaring their required columns, and optionally dtypes, and describes the shape of files.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLogLevel(opts.logLevel)
			if err != nil {
				return err
			}
			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(logging.ToZapLevel(level))
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error, fatal)")
	cmd.AddCommand(newCheckCmd(opts), newDescribeCmd(opts))
	return cmd
}

// openFrame is the Func wrapped by contracts: it opens the file named by its first argument
func openFrame(args valido.Args) (interface{}, error) {
	path, ok := args.Positional[0].(string)
	if !ok {
		return nil, fmt.Errorf("expected a path, got %#v", args.Positional[0])
	}
	df, err := arrowframe.Open(path)
	if err != nil {
		return nil, err
	}
	return df, nil
}

// syncWriter serializes writes from concurrent checks
type syncWriter struct {
	lock sync.Mutex
	w    io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.w.Write(p)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
