package common

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"golang.org/x/term"
)

// ErrEmptyInput is returned when there is nothing to convert.
var ErrEmptyInput = errors.New("empty input")

func DefaultParamEnricher() boa.ParamEnricher {
	return boa.ParamEnricherCombine(
		boa.ParamEnricherBool,
		boa.ParamEnricherName,
		boa.ParamEnricherShort,
	)
}

// StdinIsTerminal reports whether stdin is an interactive terminal.
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// EachInput calls fn for each unit of input. Positional args are joined by
// spaces into a single unit; without args every stdin line is a unit.
// Units are trimmed. Blank stdin lines are passed through so output keeps
// the input's line structure, but ErrEmptyInput is returned when no unit
// had any content.
func EachInput(args []string, stdin io.Reader, fn func(text string) error) error {
	return EachInputContext(context.Background(), args, stdin, fn)
}

// EachInputContext is EachInput that stops with ctx.Err() when ctx is done,
// even while blocked waiting for the next stdin line.
func EachInputContext(ctx context.Context, args []string, stdin io.Reader, fn func(text string) error) error {
	if len(args) > 0 {
		text := strings.TrimSpace(strings.Join(args, " "))
		if text == "" {
			return ErrEmptyInput
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		return fn(text)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// A blocked read cannot be interrupted, so the reader goroutine is left
	// behind on cancel. Commands exit right after.
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(stdin)
		scanner.Buffer(make([]byte, 64*1024), 1024*1024)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				scanErr <- ctx.Err()
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	seen := false
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := <-scanErr; err != nil {
					return err
				}
				if !seen {
					return ErrEmptyInput
				}
				return nil
			}
			text := strings.TrimSpace(line)
			if text != "" {
				seen = true
			}
			if err := fn(text); err != nil {
				return err
			}
		}
	}
}
