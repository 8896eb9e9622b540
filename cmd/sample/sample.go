package sample

import (
	"fmt"
	"io"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/dotdash/cmd/common"
	"github.com/gigurra/dotdash/cmd/morse"
	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type Params struct {
	Index  int  `pos:"true" optional:"true" help:"Phrase number to print (1-based). Lists all phrases when omitted."`
	Random bool `short:"r" optional:"true" help:"Print a random phrase."`
	Encode bool `short:"e" optional:"true" help:"Print the phrase as Morse code."`
	Width  int  `optional:"true" help:"Truncate listed phrases to this display width (0 for no limit)." default:"72"`
}

// Phrases are the built-in practice phrases.
var Phrases = []string{
	"I'm not lazy, I'm on energy-saving mode.",
	"Why don’t scientists trust atoms? Because they make up everything!",
	"I told my computer I needed a break, and now it won’t stop sending me Kit-Kats.",
	"I'm on a seafood diet. I see food and I eat it.",
	"I'm reading a book about anti-gravity. It's impossible to put down!",
	"Parallel lines have so much in common. It’s a shame they’ll never meet.",
	"I would lose weight, but I hate losing.",
	"Why did the scarecrow win an award? Because he was outstanding in his field!",
	"I’m great at multitasking. I can waste time, be unproductive, and procrastinate all at once.",
	"I asked the librarian if the library had books on paranoia. She whispered, 'They're right behind you.'",
}

var pick = lo.Sample[string]

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "sample",
		Short:       "Show practice phrases",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			os.Exit(Run(params, os.Stdout, os.Stderr))
		},
	}.ToCobra()
}

func Run(params *Params, stdout, stderr io.Writer) int {
	render := func(phrase string) string {
		if params.Encode {
			return morse.Encode(phrase)
		}
		return phrase
	}

	switch {
	case params.Random:
		fmt.Fprintln(stdout, render(pick(Phrases)))
	case params.Index != 0:
		if params.Index < 1 || params.Index > len(Phrases) {
			fmt.Fprintf(stderr, "sample: no phrase %d (choose 1-%d)\n", params.Index, len(Phrases))
			return 1
		}
		fmt.Fprintln(stdout, render(Phrases[params.Index-1]))
	default:
		for i, phrase := range Phrases {
			line := render(phrase)
			if params.Width > 0 {
				line = runewidth.Truncate(line, params.Width, "…")
			}
			fmt.Fprintf(stdout, "%2d  %s\n", i+1, line)
		}
	}
	return 0
}
