package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/dotdash/cmd/common"
	settings "github.com/gigurra/dotdash/cmd/common/config"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func Cmd() *cobra.Command {
	return boa.CmdT[boa.NoParams]{
		Use:   "config",
		Short: "Show or edit the dotdash config",
		Long: fmt.Sprintf(`Show or edit the dotdash config file.

The file lives in %s (override the directory with DOTDASH_HOME).
Any value can also be overridden per run with DOTDASH_<KEY>, e.g. DOTDASH_WPM=20.

Usage:
  dotdash config show          # Effective settings
  dotdash config path          # Config file location
  dotdash config init          # Write the defaults
  dotdash config set wpm 20    # Change one value`, settings.Path()),
		SubCmds: []*cobra.Command{
			ShowCmd(),
			PathCmd(),
			InitCmd(),
			SetCmd(),
		},
	}.ToCobra()
}

type ShowParams struct {
	JSON bool `optional:"true" help:"Print as JSON."`
}

func ShowCmd() *cobra.Command {
	return boa.CmdT[ShowParams]{
		Use:         "show",
		Short:       "Print the effective settings",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *ShowParams, cmd *cobra.Command, args []string) {
			if err := runShow(settings.Path(), params.JSON, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "config: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func PathCmd() *cobra.Command {
	return boa.CmdT[boa.NoParams]{
		Use:   "path",
		Short: "Print the config file location",
		RunFunc: func(_ *boa.NoParams, cmd *cobra.Command, args []string) {
			fmt.Println(settings.Path())
		},
	}.ToCobra()
}

type InitParams struct {
	Force bool `optional:"true" help:"Overwrite an existing config file."`
}

func InitCmd() *cobra.Command {
	return boa.CmdT[InitParams]{
		Use:         "init",
		Short:       "Write a config file with the defaults",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *InitParams, cmd *cobra.Command, args []string) {
			if err := runInit(settings.Path(), params.Force, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "config: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

type SetParams struct {
	Key   string `pos:"true" help:"Setting to change (wpm, unit_ms, frequency, case, sound, theme, copy)."`
	Value string `pos:"true" help:"New value."`
}

func SetCmd() *cobra.Command {
	return boa.CmdT[SetParams]{
		Use:         "set <key> <value>",
		Short:       "Change one setting",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *SetParams, cmd *cobra.Command, args []string) {
			if err := runSet(settings.Path(), params.Key, params.Value, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "config: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func runShow(path string, asJSON bool, stdout io.Writer) error {
	cfg, err := settings.LoadFrom(path)
	if err != nil {
		return err
	}

	if asJSON {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, string(data))
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Key", "Value"})
	t.AppendRows([]table.Row{
		{"wpm", cfg.WPM},
		{"unit_ms", cfg.UnitMs},
		{"frequency", cfg.Frequency},
		{"case", cfg.Case},
		{"sound", cfg.Sound},
		{"theme", cfg.Theme},
		{"copy", cfg.Copy},
	})
	t.Render()
	fmt.Fprintf(stdout, "file: %s\n", path)
	return nil
}

func runInit(path string, force bool, stdout io.Writer) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}
	if err := settings.SaveTo(path, settings.DefaultConfig()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(stdout, "Wrote defaults to %s\n", path)
	return nil
}

func runSet(path, key, value string, stdout io.Writer) error {
	// Read the file alone so environment overrides are not persisted.
	cfg, err := settings.ReadFile(path)
	if err != nil {
		return err
	}
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := settings.SaveTo(path, cfg); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(stdout, "%s = %s\n", key, value)
	return nil
}
