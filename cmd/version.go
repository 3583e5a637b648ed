package cmd

import (
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version and supported source files",
		Long: `Print the ifbound build version, the VCS revision it was built from and the
source file extensions the registered frontends accept.`,
		Run: func(cmd *cobra.Command, _ []string) {
			info, _ := debug.ReadBuildInfo()

			var extensions []string
			if frontends != nil {
				extensions = frontends.Extensions()
			}

			for _, line := range versionLines(info, extensions) {
				cmd.Println(line)
			}
		},
	}
}

// versionLines renders the version report. info may be nil when the binary
// carries no build information.
func versionLines(info *debug.BuildInfo, extensions []string) []string {
	version, goVersion, revision := "unknown", "unknown", ""

	if info != nil {
		if info.Main.Version != "" {
			version = info.Main.Version
		}

		goVersion = info.GoVersion

		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				revision = s.Value
			}
		}
	}

	lines := []string{"ifbound " + version, "go " + goVersion}
	if revision != "" {
		lines = append(lines, "revision "+revision)
	}

	return append(lines, "sources "+strings.Join(extensions, " "))
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
