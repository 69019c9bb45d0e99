package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cmmoran/reflgen/internal/action/generate"
	"github.com/cmmoran/reflgen/pkg/options"
)

func init() {
	var generateCmd = NewGenerateCommand()
	rootCmd.AddCommand(generateCmd)
}

func NewGenerateCommand() *cobra.Command {
	// generateCmd represents the reflgen generate command
	var generateCmd = &cobra.Command{
		Use:   "generate [patterns...]",
		Short: "generate reflection and serializer code",
		Long:  "Extract annotated types and write reflection registrations, serializer methods and the index package",
		RunE: func(c *cobra.Command, args []string) error {
			opts, err := loadOptions()
			if err != nil {
				return err
			}
			if len(args) > 0 {
				opts.Patterns = args
			}
			res, err := generate.Run(c.Context(), opts)
			if err != nil {
				return err
			}
			if opts.DryRun {
				for _, f := range res.Files {
					_, _ = fmt.Fprintln(c.OutOrStdout(), f)
				}
			}
			return nil
		},
	}
	flags := generateCmd.Flags()
	flags.StringP("input-directory", "i", ".", "module directory to scan")
	flags.StringSliceP("patterns", "p", []string{"./..."}, "package patterns relative to the input directory")
	flags.StringP("frontend", "f", "packages", "source frontend: packages, goparser or treesitter")
	flags.StringP("index-directory", "o", "", "directory of the generated index package")
	flags.String("index-package", "", "index package name (default: derived from the index directory)")
	flags.StringP("manifest", "m", options.DefaultManifestPath, "snapshot manifest path, relative to the input directory")
	flags.StringP("snapshot-version", "v", "", "version recorded in the manifest")
	flags.String("reflection-suffix", options.DefaultReflectionSuffix, "suffix of generated reflection files")
	flags.String("serializer-suffix", options.DefaultSerializerSuffix, "suffix of generated serializer files")
	flags.StringSliceP("exclude-types", "t", []string{}, "class names to skip")
	flags.BoolP("dry-run", "n", false, "render without writing files")

	for key, flag := range map[string]string{
		"in_dir":            "input-directory",
		"patterns":          "patterns",
		"frontend":          "frontend",
		"index_dir":         "index-directory",
		"index_package":     "index-package",
		"manifest_path":     "manifest",
		"version":           "snapshot-version",
		"reflection_suffix": "reflection-suffix",
		"serializer_suffix": "serializer-suffix",
		"exclude_types":     "exclude-types",
		"dry_run":           "dry-run",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}

	return generateCmd
}
