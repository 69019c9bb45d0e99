package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cmmoran/reflgen/pkg/action/snapshot"
)

func init() {
	rootCmd.AddCommand(NewManifestCommand())
}

func manifestPath() (string, error) {
	opts, err := loadOptions()
	if err != nil {
		return "", err
	}
	opts.Normalize()
	if opts.ManifestPath == "" {
		return "", fmt.Errorf("no manifest path configured")
	}
	return opts.ManifestPath, nil
}

func NewManifestCommand() *cobra.Command {
	var manifestCmd = &cobra.Command{
		Use:   "manifest",
		Short: "inspect recorded generation snapshots",
	}

	manifestCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "list recorded snapshots",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			path, err := manifestPath()
			if err != nil {
				return err
			}
			m, err := snapshot.List(path)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(c.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "NAME\tVERSION\tCLASSES\tFILES\t")
			for _, s := range m.Snapshots {
				marker := ""
				switch s.Version {
				case m.CurrentVersion:
					marker = " (current)"
				case m.PreviousVersion:
					marker = " (previous)"
				}
				_, _ = fmt.Fprintf(w, "%s\t%s%s\t%d\t%d\t\n", s.Name, s.Version, marker, len(s.Classes), len(s.Files))
			}
			return w.Flush()
		},
	})

	manifestCmd.AddCommand(&cobra.Command{
		Use:   "diff",
		Short: "diff the current snapshot against the previous one",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			path, err := manifestPath()
			if err != nil {
				return err
			}
			d, err := snapshot.DiffCurrentWithPrevious(path)
			if err != nil {
				return err
			}
			if d == "" {
				_, _ = fmt.Fprintln(c.OutOrStdout(), "no changes")
				return nil
			}
			_, _ = fmt.Fprint(c.OutOrStdout(), d)
			return nil
		},
	})

	return manifestCmd
}
