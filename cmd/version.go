package cmd

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version, commit and the LLM SDKs built in",
	Run: func(cmd *cobra.Command, args []string) {
		info, _ := debug.ReadBuildInfo()
		printVersion(cmd.OutOrStdout(), version, info)
	},
}

// sdkModules are the provider SDKs reported by the version command.
var sdkModules = []string{
	"github.com/anthropics/anthropic-sdk-go",
	"github.com/sashabaranov/go-openai",
	"google.golang.org/genai",
}

func printVersion(w io.Writer, v string, info *debug.BuildInfo) {
	if v == "(devel)" && info != nil && info.Main.Version != "" {
		v = info.Main.Version
	}
	fmt.Fprintln(w, "careerwiz", v)
	if info == nil {
		return
	}

	var commit, dirty string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			commit = s.Value
		case "vcs.modified":
			if s.Value == "true" {
				dirty = " (modified)"
			}
		}
	}
	if commit != "" {
		fmt.Fprintf(w, "commit  %.12s%s\n", commit, dirty)
	}
	fmt.Fprintf(w, "go      %s\n", info.GoVersion)

	for _, dep := range info.Deps {
		for _, m := range sdkModules {
			if dep.Path == m {
				fmt.Fprintf(w, "sdk     %s %s\n", dep.Path, dep.Version)
			}
		}
	}
}
