// Package tui is the interactive converter.
package tui

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gigurra/dotdash/cmd/common"
	"github.com/gigurra/dotdash/cmd/common/config"
	"github.com/gigurra/dotdash/cmd/morse/signal"
	"github.com/spf13/cobra"
)

type Params struct {
	Theme string `optional:"true" help:"Colour theme. Defaults to the config value." alts:"dark,light"`
	Sound bool   `short:"b" optional:"true" help:"Play every conversion."`
	WPM   int    `short:"w" optional:"true" help:"Words per minute for playback. Defaults to the config value."`
	Unit  int    `short:"u" optional:"true" help:"Dot duration in milliseconds. Overrides --wpm."`
	Freq  int    `short:"f" optional:"true" help:"Tone frequency in Hz. Defaults to the config value."`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "tui",
		Short:       "Interactive text/Morse converter",
		Long:        fmt.Sprintf("Interactive text/Morse converter. Logs go to %s while the UI is open.", common.LogPath()),
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if err := Run(params, verbose); err != nil {
				fmt.Fprintf(os.Stderr, "tui: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func Run(params *Params, verbose bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg = cfg.WithOverrides(params.WPM, params.Unit, float64(params.Freq))
	if params.Theme != "" {
		cfg.Theme = params.Theme
	}
	if params.Sound {
		cfg.Sound = true
	}

	// The screen belongs to bubbletea, so logs go to a file.
	closeLog, err := common.SetupFileLogging(common.LogPath(), verbose)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	player := signal.NewPlayer(signal.DefaultEmitter(), slog.Default())
	defer player.Close()

	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	slog.Debug("starting tui", "theme", cfg.Theme, "sound", cfg.Sound, "audio", signal.AudioAvailable)
	p := tea.NewProgram(initialModel(cfg, player, wd), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
