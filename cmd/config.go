package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cmmoran/reflgen/pkg/options"
)

func init() {
	rootCmd.AddCommand(NewConfigCommand())
}

// loadOptions decodes the merged flags, config files and environment.
func loadOptions() (*options.Options, error) {
	opts := options.NewOptions()
	if err := viper.Unmarshal(opts); err != nil {
		return nil, fmt.Errorf("decode options: %w", err)
	}
	return opts, nil
}

func NewConfigCommand() *cobra.Command {
	var format string

	var configCmd = &cobra.Command{
		Use:   "config",
		Short: "print the effective options",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			opts, err := loadOptions()
			if err != nil {
				return err
			}
			opts.Normalize()
			out, err := opts.Encode(format)
			if err != nil {
				return err
			}
			_, err = c.OutOrStdout().Write(out)
			return err
		},
	}
	configCmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml, toml or json")

	return configCmd
}
