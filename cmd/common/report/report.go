// Package report renders conversion details as terminal tables.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gigurra/dotdash/cmd/morse"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
)

// Summary counts valid and invalid tokens.
type Summary struct {
	Total   int
	Invalid int
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

func validity(valid bool) string {
	if valid {
		return text.FgGreen.Sprint("ok")
	}
	return text.FgHiRed.Sprint("unknown")
}

func charLabel(r rune) string {
	if r == ' ' {
		return "␣"
	}
	return string(r)
}

// Encoded renders one row per input character.
func Encoded(w io.Writer, tokens []morse.Token) Summary {
	t := newTable(w)
	t.AppendHeader(table.Row{"#", "Char", "Code", "Status"})
	for i, tok := range tokens {
		t.AppendRow(table.Row{i + 1, charLabel(tok.Char), tok.Code, validity(tok.Valid)})
	}
	summary := summarize(tokens)
	t.AppendFooter(table.Row{"", "", "invalid", fmt.Sprintf("%d/%d", summary.Invalid, summary.Total)})
	t.Render()
	return summary
}

// Decoded renders one row per token, grouped by word.
func Decoded(w io.Writer, words [][]morse.Token) Summary {
	t := newTable(w)
	t.AppendHeader(table.Row{"Word", "Code", "Char", "Status"})
	for i, word := range words {
		for _, tok := range word {
			char := morse.Unknown
			if tok.Valid {
				char = charLabel(tok.Char)
			}
			t.AppendRow(table.Row{i + 1, tok.Code, char, validity(tok.Valid)})
		}
	}
	summary := summarize(lo.Flatten(words))
	t.AppendFooter(table.Row{"", "", "invalid", fmt.Sprintf("%d/%d", summary.Invalid, summary.Total)})
	t.Render()
	return summary
}

// Alphabet renders the code table.
func Alphabet(w io.Writer, entries []morse.Entry) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Char", "Code", "Length"})
	for _, e := range entries {
		t.AppendRow(table.Row{charLabel(e.Char), e.Code, strconv.Itoa(len(e.Code))})
	}
	t.Render()
}

func summarize(tokens []morse.Token) Summary {
	return Summary{
		Total: len(tokens),
		Invalid: lo.CountBy(tokens, func(tok morse.Token) bool {
			return !tok.Valid
		}),
	}
}
