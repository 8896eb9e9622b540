package decode

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/dotdash/cmd/common"
	"github.com/gigurra/dotdash/cmd/common/config"
	"github.com/gigurra/dotdash/cmd/common/export"
	"github.com/gigurra/dotdash/cmd/common/report"
	"github.com/gigurra/dotdash/cmd/morse"
	"github.com/spf13/cobra"
)

type Params struct {
	Code         []string `pos:"true" optional:"true" help:"Morse code to decode (symbols separated by spaces, words by ' / '). If none provided, reads from stdin line by line."`
	PreserveCase bool     `short:"p" optional:"true" help:"Keep the decoded case (same as --case preserve)."`
	Paste        bool     `optional:"true" help:"Read the code from the clipboard."`
	Out          string   `short:"o" optional:"true" help:"Also write the result to this file (.txt is added when there is no extension)."`
	Copy         bool     `short:"c" optional:"true" help:"Copy the result to the clipboard."`
	Report       bool     `short:"r" optional:"true" help:"Print a per-symbol table instead of the text."`
	Case         string   `optional:"true" help:"Letter case of the output. Defaults to the config value." alts:"upper,preserve,lower,sentence"`
}

var paste = export.Paste

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "decode",
		Short:       "Convert Morse code to text",
		Long:        "Convert Morse code to text. Unknown symbols decode to '?'. Letters decode to upper case unless a case policy is given.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			cfg, err := config.Load()
			if err != nil {
				fmt.Fprintf(os.Stderr, "decode: %v\n", err)
				os.Exit(1)
			}
			if len(params.Code) == 0 && !params.Paste && common.StdinIsTerminal() {
				fmt.Fprintln(os.Stderr, "Reading from stdin, one message per line. Ctrl-D to finish.")
			}
			os.Exit(Run(params, cfg, os.Stdin, os.Stdout, os.Stderr))
		},
	}.ToCobra()
}

func Run(params *Params, cfg *config.Config, stdin io.Reader, stdout, stderr io.Writer) int {
	policy, err := resolveCase(params, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "decode: %v\n", err)
		return 1
	}

	args := params.Code
	if params.Paste {
		text, err := paste()
		if err != nil {
			fmt.Fprintf(stderr, "decode: %v\n", err)
			return 1
		}
		args = []string{text}
	}

	var results []string
	err = common.EachInput(args, stdin, func(code string) error {
		decoded := morse.DecodeCase(code, policy)
		results = append(results, decoded)
		if params.Report {
			if code != "" {
				report.Decoded(stdout, morse.DecodeTokens(code))
			}
		} else {
			fmt.Fprintln(stdout, decoded)
		}
		return nil
	})
	if errors.Is(err, common.ErrEmptyInput) {
		fmt.Fprintln(stderr, "decode: empty input: please enter Morse code to convert")
		return 1
	}
	if err != nil {
		fmt.Fprintf(stderr, "decode: error reading input: %v\n", err)
		return 1
	}

	result := strings.Join(results, "\n")
	exitCode := 0
	if params.Out != "" {
		path, err := export.Save(params.Out, result)
		if err != nil {
			fmt.Fprintf(stderr, "decode: %v\n", err)
			exitCode = 1
		} else {
			slog.Info("saved result", "path", path)
		}
	}
	if params.Copy || cfg.Copy {
		if err := export.Copy(result); err != nil {
			fmt.Fprintf(stderr, "decode: warning: %v\n", err)
		}
	}
	return exitCode
}

func resolveCase(params *Params, cfg *config.Config) (morse.Case, error) {
	if params.PreserveCase {
		return morse.CasePreserve, nil
	}
	if params.Case != "" {
		return morse.ParseCase(params.Case)
	}
	return cfg.CasePolicy(), nil
}
