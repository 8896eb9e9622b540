package table

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/dotdash/cmd/common"
	"github.com/gigurra/dotdash/cmd/common/report"
	"github.com/gigurra/dotdash/cmd/morse"
	"github.com/spf13/cobra"
)

type Params struct {
	Sort   string `short:"s" optional:"true" help:"Row order: alphabet (letters, digits, punctuation, space) or code (shortest code first)." default:"alphabet" alts:"alphabet,code"`
	Filter string `optional:"true" help:"Only show these characters (e.g. 'sos')."`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "table",
		Short:       "Print the Morse alphabet",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			os.Exit(Run(params, os.Stdout, os.Stderr))
		},
	}.ToCobra()
}

func Run(params *Params, stdout, stderr io.Writer) int {
	entries := morse.Entries()

	switch params.Sort {
	case "", "alphabet":
	case "code":
		slices.SortStableFunc(entries, func(a, b morse.Entry) int {
			if len(a.Code) != len(b.Code) {
				return len(a.Code) - len(b.Code)
			}
			return strings.Compare(a.Code, b.Code)
		})
	default:
		fmt.Fprintf(stderr, "table: unknown sort order %q\n", params.Sort)
		return 1
	}

	if params.Filter != "" {
		wanted := strings.ToUpper(params.Filter)
		entries = slices.DeleteFunc(entries, func(e morse.Entry) bool {
			return !strings.ContainsRune(wanted, e.Char)
		})
		if len(entries) == 0 {
			fmt.Fprintf(stderr, "table: no Morse code for %q\n", params.Filter)
			return 1
		}
	}

	report.Alphabet(stdout, entries)
	return 0
}
