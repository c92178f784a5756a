package main

import (
	"fmt"

	"roomgen/internal/config"
	"roomgen/internal/render"
	"roomgen/pkg/core"

	"github.com/spf13/cobra"
)

func newDescribeCmd() *cobra.Command {
	var (
		file      string
		overrides []string
	)
	cmd := &cobra.Command{
		Use:   "describe [generator]",
		Short: "Print the effective parameters of a generator",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := config.Request{File: file, Overrides: overrides}
			if len(args) == 1 {
				req.Generator = args[0]
			}
			name, params, err := config.Resolve(req)
			if err != nil {
				return err
			}
			gen, err := core.New(name, params)
			if err != nil {
				return err
			}
			provider, ok := gen.(core.ParameterProvider)
			if !ok {
				return fmt.Errorf("generator %q does not describe its parameters", name)
			}
			return render.WriteParameters(cmd.OutOrStdout(), provider.Parameters())
		},
	}
	cmd.Flags().StringVar(&file, "config", "", "YAML settings file")
	cmd.Flags().StringArrayVar(&overrides, "set", nil, "parameter override key=value (repeatable)")
	return cmd
}
