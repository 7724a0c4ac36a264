package main

import (
	"github.com/go-sif/valido"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type describeOptions struct {
	dtypes bool
}

func newDescribeCmd(root *rootOptions) *cobra.Command {
	opts := &describeOptions{}
	cmd := &cobra.Command{
		Use:   "describe <data files...>",
		Short: "Print the columns of data files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				describe := valido.Log(&valido.LogOptions{
					IncludeDtypes: opts.dtypes,
					FuncName:      path,
					Writer:        cmd.OutOrStdout(),
				})(openFrame)
				if _, err := describe(valido.Positional(path)); err != nil {
					return err
				}
				root.logger.Debug("Described file", zap.String("path", path))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.dtypes, "dtypes", false, "also print the dtype of each column")
	return cmd
}
