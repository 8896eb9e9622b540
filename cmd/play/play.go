package play

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	ossignal "os/signal"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/dotdash/cmd/common"
	"github.com/gigurra/dotdash/cmd/common/config"
	"github.com/gigurra/dotdash/cmd/morse"
	"github.com/gigurra/dotdash/cmd/morse/signal"
	"github.com/spf13/cobra"
)

type Params struct {
	Input []string `pos:"true" optional:"true" help:"Morse code to play. If none provided, reads from stdin line by line."`
	Text  bool     `optional:"true" help:"Treat the input as plain text and encode it first."`
	WPM   int      `short:"w" optional:"true" help:"Words per minute. Defaults to the config value."`
	Unit  int      `short:"u" optional:"true" help:"Dot duration in milliseconds. Overrides --wpm."`
	Freq  int      `short:"f" optional:"true" help:"Tone frequency in Hz. Defaults to the config value."`
	Quiet bool     `short:"q" optional:"true" help:"Do not echo what is being played."`
}

var newEmitter = signal.DefaultEmitter

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "play",
		Short:       "Play Morse code as audio",
		Long:        "Play Morse code as a tone signal. Playback is sequential; Ctrl-C stops it.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			cfg, err := config.Load()
			if err != nil {
				fmt.Fprintf(os.Stderr, "play: %v\n", err)
				os.Exit(1)
			}
			if !signal.AudioAvailable {
				slog.Warn("speaker output unavailable in this build, using the system beep")
			}
			ctx, stop := ossignal.NotifyContext(cmd.Context(), os.Interrupt)
			exitCode := Run(ctx, params, cfg, os.Stdin, os.Stdout, os.Stderr)
			stop()
			os.Exit(exitCode)
		},
	}.ToCobra()
}

func Run(ctx context.Context, params *Params, cfg *config.Config, stdin io.Reader, stdout, stderr io.Writer) int {
	settings := cfg.WithOverrides(params.WPM, params.Unit, float64(params.Freq))
	timing := settings.Timing()

	player := signal.NewPlayer(newEmitter(), slog.Default())
	defer player.Close()

	// Lines are played one at a time so stdin can stream while audio runs.
	err := common.EachInputContext(ctx, params.Input, stdin, func(line string) error {
		code := line
		if params.Text {
			code = morse.Encode(line)
		}
		if code == "" {
			return nil
		}
		if !params.Quiet {
			fmt.Fprintf(stdout, "%s  (%s)\n", code, signal.Duration(signal.Schedule(code, timing)))
		}
		return player.PlayTiming(code, timing, settings.Frequency).WaitContext(ctx)
	})
	switch {
	case err == nil:
		return 0
	case errors.Is(err, common.ErrEmptyInput):
		fmt.Fprintln(stderr, "play: empty input: nothing to play")
		return 1
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(stderr, "play: stopped")
		return 130
	default:
		fmt.Fprintf(stderr, "play: %v\n", err)
		return 1
	}
}
