package main

import (
	"context"
	"fmt"

	"github.com/go-sif/valido"
	"github.com/go-sif/valido/contractfile"
	"github.com/go-sif/valido/internal/batch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type checkOptions struct {
	contract    string
	parallelism int
	shapes      bool
}

func newCheckCmd(root *rootOptions) *cobra.Command {
	opts := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "check --contract <file> <data files...>",
		Short: "Check data files against a contract",
		Long: `Checks the columns of each data file against a YAML or JSON contract.
Every file is checked; all failures are reported and the exit status is non-zero if any file fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, root, opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.contract, "contract", "c", "", "contract file (.yaml, .yml or .json)")
	cmd.Flags().IntVarP(&opts.parallelism, "parallel", "p", 4, "number of files checked concurrently")
	cmd.Flags().BoolVar(&opts.shapes, "shapes", false, "also print the shape of each file")
	cmd.MarkFlagRequired("contract")
	return cmd
}

func runCheck(cmd *cobra.Command, root *rootOptions, opts *checkOptions, paths []string) error {
	contract, err := contractfile.Load(opts.contract)
	if err != nil {
		return err
	}
	logger := root.logger.With(zap.String("contract", opts.contract))
	logger.Debug("Loaded contract", zap.Int("columns", columnCount(contract)), zap.Bool("strict", contract.Strict))

	out := &syncWriter{w: cmd.OutOrStdout()}
	decorators := []valido.Decorator{}
	if opts.shapes {
		decorators = append(decorators, valido.Log(&valido.LogOptions{IncludeDtypes: true, FuncName: "open", Writer: out}))
	}
	decorators = append(decorators, valido.Out(&valido.OutOptions{Columns: contract.Columns, Strict: contract.Strict}))
	check := valido.Chain(decorators...)(openFrame)

	return batch.Run(cmd.Context(), paths, opts.parallelism, func(ctx context.Context, path string) error {
		logger.Debug("Checking file", zap.String("path", path))
		if _, err := check(valido.Positional(path)); err != nil {
			logger.Info("File failed contract", zap.String("path", path), zap.Error(err))
			return err
		}
		fmt.Fprintf(out, "%s: OK\n", path)
		return nil
	})
}

func columnCount(contract valido.Contract) int {
	if contract.IsEmpty() {
		return 0
	}
	return contract.Columns.Len()
}
