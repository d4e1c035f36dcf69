// Package cli wires the configuration registry to the command line.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Rawk/rustfmt/internal/config"
	"github.com/Rawk/rustfmt/internal/config/loader"
)

type rootOptions struct {
	configPath   string
	edition      string
	styleEdition string
	fileLines    string
	overrides    []string
	printConfig  string
	verbose      bool
}

// NewRootCommand constructs the root command: it resolves the effective
// configuration for the working directory and prints it.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "rustfmt",
		Short:         "Resolve and inspect the formatter configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config-path", "", "explicit path to the configuration file")
	flags.StringVar(&opts.edition, "edition", "", "language edition to parse with")
	flags.StringVar(&opts.styleEdition, "style-edition", "", "style guide edition to format with")
	flags.StringVar(&opts.fileLines, "file-lines", "", "JSON line ranges to restrict formatting to")
	flags.StringArrayVar(&opts.overrides, "config", nil, "key=value configuration overrides")
	flags.StringVar(&opts.printConfig, "print-config", "current", "which configuration to print: default, minimal, or current")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "use verbose output")

	return cmd
}

func run(cmd *cobra.Command, opts *rootOptions) error {
	styleEdition := config.Edition2015
	if opts.styleEdition != "" {
		se, err := config.ParseStyleEdition(opts.styleEdition)
		if err != nil {
			return err
		}
		styleEdition = se
	}

	if opts.printConfig == "default" {
		return printTOML(cmd, config.DefaultWithStyleEdition(styleEdition).AllOptions())
	}

	cfg := config.DefaultWithStyleEdition(styleEdition)

	workDir, err := os.Getwd()
	if err != nil {
		return err
	}
	path, err := loader.Locate(workDir, opts.configPath)
	switch {
	case err == nil:
		parsed, loadErr := loader.Load(path, cmd.ErrOrStderr())
		if loadErr != nil {
			return loadErr
		}
		cfg.FillFromParsedConfig(parsed, filepath.Dir(path))
		if opts.verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "Using configuration file %s\n", path)
		}
	case errors.Is(err, loader.ErrConfigNotFound) && opts.configPath == "":
		// No file anywhere on the search path: compiled defaults apply.
	default:
		return err
	}

	if err := applyCLIFlags(cfg, opts); err != nil {
		return err
	}

	for _, raw := range opts.overrides {
		for _, pair := range strings.Split(raw, ",") {
			key, val, ok := strings.Cut(strings.TrimSpace(pair), "=")
			if !ok {
				return fmt.Errorf("malformed --config override %q, expected key=value", pair)
			}
			if err := cfg.OverrideValue(key, val); err != nil {
				return err
			}
		}
	}

	switch opts.printConfig {
	case "current":
		return printTOML(cmd, cfg.AllOptions())
	case "minimal":
		return printTOML(cmd, cfg.NonDefaultOptions())
	default:
		return fmt.Errorf("unknown --print-config mode %q", opts.printConfig)
	}
}

func applyCLIFlags(cfg *config.Config, opts *rootOptions) error {
	if opts.edition != "" {
		if err := cfg.SetCLI("edition", opts.edition); err != nil {
			return err
		}
	}
	if opts.styleEdition != "" {
		if err := cfg.SetCLI("style_edition", opts.styleEdition); err != nil {
			return err
		}
	}
	if opts.fileLines != "" {
		if err := cfg.SetCLI("file_lines", opts.fileLines); err != nil {
			return err
		}
	}
	if opts.verbose {
		if err := cfg.SetCLI("verbose", true); err != nil {
			return err
		}
	}
	return nil
}

func printTOML(cmd *cobra.Command, partial *config.PartialConfig) error {
	data, err := partial.ToTOML()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
