package encode

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	ossignal "os/signal"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/dotdash/cmd/common"
	"github.com/gigurra/dotdash/cmd/common/config"
	"github.com/gigurra/dotdash/cmd/common/export"
	"github.com/gigurra/dotdash/cmd/common/report"
	"github.com/gigurra/dotdash/cmd/morse"
	"github.com/gigurra/dotdash/cmd/morse/signal"
	"github.com/spf13/cobra"
)

type Params struct {
	Text   []string `pos:"true" optional:"true" help:"Text to encode. If none provided, reads from stdin line by line."`
	Beep   bool     `short:"b" optional:"true" help:"Play the encoded signal (speaker needs CGO on Linux, falls back to the system beep)."`
	WPM    int      `short:"w" optional:"true" help:"Words per minute for playback. Defaults to the config value."`
	Unit   int      `short:"u" optional:"true" help:"Dot duration in milliseconds. Overrides --wpm."`
	Freq   int      `short:"f" optional:"true" help:"Tone frequency in Hz. Defaults to the config value."`
	Out    string   `short:"o" optional:"true" help:"Also write the result to this file (.txt is added when there is no extension)."`
	Copy   bool     `short:"c" optional:"true" help:"Copy the result to the clipboard."`
	QR     string   `optional:"true" help:"Also write the result as a QR code PNG to this path."`
	Tokens bool     `short:"t" optional:"true" help:"Print a per-character table instead of the code."`
}

var newEmitter = signal.DefaultEmitter

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "encode",
		Short:       "Convert text to Morse code",
		Long:        "Convert text to Morse code. Characters without a Morse representation are encoded as '?'. Words are separated by ' / '.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			cfg, err := config.Load()
			if err != nil {
				fmt.Fprintf(os.Stderr, "encode: %v\n", err)
				os.Exit(1)
			}
			if len(params.Text) == 0 && common.StdinIsTerminal() {
				fmt.Fprintln(os.Stderr, "Reading from stdin, one message per line. Ctrl-D to finish.")
			}
			ctx, stop := ossignal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			exitCode := Run(ctx, params, cfg, os.Stdin, os.Stdout, os.Stderr)
			stop()
			os.Exit(exitCode)
		},
	}.ToCobra()
}

func Run(ctx context.Context, params *Params, cfg *config.Config, stdin io.Reader, stdout, stderr io.Writer) int {
	settings := cfg.WithOverrides(params.WPM, params.Unit, float64(params.Freq))

	var player *signal.Player
	if params.Beep || cfg.Sound {
		player = signal.NewPlayer(newEmitter(), slog.Default())
		defer player.Close()
	}

	var results []string
	err := common.EachInputContext(ctx, params.Text, stdin, func(text string) error {
		encoded := morse.Encode(text)
		results = append(results, encoded)

		if params.Tokens {
			if text != "" {
				report.Encoded(stdout, morse.EncodeTokens(text))
			}
		} else {
			fmt.Fprintln(stdout, encoded)
		}

		if player == nil || encoded == "" {
			return nil
		}
		// One line at a time, like play, so long input never overflows the queue.
		err := player.PlayTiming(encoded, settings.Timing(), settings.Frequency).WaitContext(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintf(stderr, "encode: warning: playback: %v\n", err)
			return nil
		}
		return err
	})
	switch {
	case errors.Is(err, common.ErrEmptyInput):
		fmt.Fprintln(stderr, "encode: empty input: please enter text to convert")
		return 1
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(stderr, "encode: stopped")
		return 130
	case err != nil:
		fmt.Fprintf(stderr, "encode: error reading input: %v\n", err)
		return 1
	}

	return exportResult(strings.Join(results, "\n"), params, cfg, stderr)
}

func exportResult(result string, params *Params, cfg *config.Config, stderr io.Writer) int {
	exitCode := 0
	if params.Out != "" {
		path, err := export.Save(params.Out, result)
		if err != nil {
			fmt.Fprintf(stderr, "encode: %v\n", err)
			exitCode = 1
		} else {
			slog.Info("saved result", "path", path)
		}
	}
	if params.QR != "" {
		path, err := export.SaveQR(params.QR, result)
		if err != nil {
			fmt.Fprintf(stderr, "encode: %v\n", err)
			exitCode = 1
		} else {
			slog.Info("saved qr code", "path", path)
		}
	}
	if params.Copy || cfg.Copy {
		if err := export.Copy(result); err != nil {
			fmt.Fprintf(stderr, "encode: warning: %v\n", err)
		}
	}
	return exitCode
}
