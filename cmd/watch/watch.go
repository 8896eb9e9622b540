package watch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	ossignal "os/signal"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/fsnotify/fsnotify"
	"github.com/gigurra/dotdash/cmd/common"
	"github.com/gigurra/dotdash/cmd/common/config"
	"github.com/gigurra/dotdash/cmd/common/export"
	"github.com/gigurra/dotdash/cmd/morse"
	"github.com/spf13/cobra"
)

type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeEncode Mode = "encode"
	ModeDecode Mode = "decode"
)

const debounceDelay = 100 * time.Millisecond

type Params struct {
	File string `pos:"true" required:"true" help:"File to watch."`
	Out  string `short:"o" optional:"true" help:"Where to write the converted result (defaults to <file>.morse.txt)."`
	Mode Mode   `short:"m" optional:"true" help:"Conversion direction. auto decodes files that look like Morse code." default:"auto" alts:"auto,encode,decode"`
	Case string `optional:"true" help:"Letter case of decoded output. Defaults to the config value." alts:"upper,preserve,lower,sentence"`
	Once bool   `optional:"true" help:"Convert once and exit instead of watching."`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "watch",
		Short:       "Convert a file every time it changes",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			cfg, err := config.Load()
			if err != nil {
				fmt.Fprintf(os.Stderr, "watch: %v\n", err)
				os.Exit(1)
			}
			ctx, stop := ossignal.NotifyContext(cmd.Context(), stopSignals...)
			defer stop()
			if err := Run(ctx, params, cfg, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "watch: %v\n", err)
				stop()
				os.Exit(1)
			}
		},
	}.ToCobra()
}

// OutPath is the result path for file when none is given.
func OutPath(file, out string) string {
	if out != "" {
		return out
	}
	return file + ".morse.txt"
}

// Run converts the file once and then again after every change until ctx
// is done.
func Run(ctx context.Context, params *Params, cfg *config.Config, stdout io.Writer) error {
	file, err := filepath.Abs(params.File)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", params.File, err)
	}
	if _, err := os.Stat(file); err != nil {
		return err
	}
	out := OutPath(file, params.Out)

	policy := cfg.CasePolicy()
	if params.Case != "" {
		if policy, err = morse.ParseCase(params.Case); err != nil {
			return err
		}
	}
	convert := func() {
		mode, saved, err := Convert(file, out, params.Mode, policy)
		if err != nil {
			slog.Warn("conversion failed", "file", file, "error", err)
			return
		}
		fmt.Fprintf(stdout, "%s: %s -> %s\n", mode, filepath.Base(file), saved)
	}

	convert()
	if params.Once {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Editors often replace the file instead of writing it, so watch the
	// directory and filter by name.
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(file), err)
	}
	fmt.Fprintf(stdout, "Watching %s...\n", file)

	var debounceTimer *time.Timer
	var debounceMutex sync.Mutex
	changes := make(chan struct{}, 1)
	triggerChange := func() {
		debounceMutex.Lock()
		defer debounceMutex.Unlock()
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		debounceTimer = time.AfterFunc(debounceDelay, func() {
			select {
			case changes <- struct{}{}:
			default:
			}
		})
	}
	defer func() {
		debounceMutex.Lock()
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		debounceMutex.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != file {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				triggerChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "error", err)
		case <-changes:
			convert()
		}
	}
}

// Convert reads file, converts it in the given direction and writes the
// result to out. Returns the direction actually used and the path written,
// which has .txt appended when out has no extension.
func Convert(file, out string, mode Mode, policy morse.Case) (Mode, string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return mode, "", err
	}
	content := strings.TrimSpace(string(data))
	if content == "" {
		return mode, "", common.ErrEmptyInput
	}

	if mode == ModeAuto || mode == "" {
		mode = ModeEncode
		if morse.IsMorse(content) {
			mode = ModeDecode
		}
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		switch mode {
		case ModeDecode:
			lines[i] = morse.DecodeCase(line, policy)
		case ModeEncode:
			lines[i] = morse.Encode(line)
		default:
			return mode, "", fmt.Errorf("unknown mode %q", mode)
		}
	}

	saved, err := export.Save(out, strings.Join(lines, "\n"))
	if err != nil {
		return mode, "", err
	}
	return mode, saved, nil
}
