package main

import (
	"os"
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/dotdash/cmd/common"
	"github.com/gigurra/dotdash/cmd/config"
	"github.com/gigurra/dotdash/cmd/decode"
	"github.com/gigurra/dotdash/cmd/encode"
	"github.com/gigurra/dotdash/cmd/play"
	"github.com/gigurra/dotdash/cmd/sample"
	"github.com/gigurra/dotdash/cmd/table"
	"github.com/gigurra/dotdash/cmd/tui"
	"github.com/gigurra/dotdash/cmd/watch"
	"github.com/spf13/cobra"
)

// Command group IDs
const (
	groupConversion = "conversion"
	groupAudio      = "audio"
	groupUtility    = "utility"
)

// withGroup sets the GroupID on a command and returns it
func withGroup(cmd *cobra.Command, group string) *cobra.Command {
	cmd.GroupID = group
	return cmd
}

func main() {
	root := boa.CmdT[boa.NoParams]{
		Use:     "dotdash",
		Short:   "Text to Morse code and back",
		Version: appVersion(),
		Groups: []*cobra.Group{
			{ID: groupConversion, Title: "Conversion:"},
			{ID: groupAudio, Title: "Audio:"},
			{ID: groupUtility, Title: "Utility:"},
		},
		SubCmds: []*cobra.Command{
			// Conversion
			withGroup(encode.Cmd(), groupConversion),
			withGroup(decode.Cmd(), groupConversion),
			withGroup(watch.Cmd(), groupConversion),
			withGroup(tui.Cmd(), groupConversion),

			// Audio
			withGroup(play.Cmd(), groupAudio),

			// Utility
			withGroup(table.Cmd(), groupUtility),
			withGroup(sample.Cmd(), groupUtility),
			withGroup(config.Cmd(), groupUtility),
		},
	}.ToCobra()

	var verbose bool
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging.")
	// Runs after flag parsing, before any command.
	cobra.OnInitialize(func() {
		common.SetupLogging(os.Stderr, verbose)
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func appVersion() string {
	bi, hasBuilInfo := debug.ReadBuildInfo()
	if !hasBuilInfo {
		return "unknown-(no build info)"
	}

	versionString := bi.Main.Version
	if versionString == "" {
		versionString = "unknown-(no version)"
	}

	return versionString
}
