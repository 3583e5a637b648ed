package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const forceFlagName = "force"

// initKeys are the settings init reports after writing the file.
var initKeys = []string{
	scanParallelConfigKey,
	excludeConfigKey,
	indexPathConfigKey,
	showFormatConfigKey,
	logFilenameKey,
	logLevelKey,
}

var initForceFlag bool

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate an ifbound.yaml configuration file",
		Long: `Write the current ifbound settings (defaults, IFBOUND_* environment
variables and flags) to ifbound.yaml in the working directory. Scan
parallelism, exclude patterns, the index path and the show format can then
be edited there. An existing file is kept unless --force is given.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			write := viper.SafeWriteConfigAs
			if initForceFlag {
				write = viper.WriteConfigAs
			}

			if err := write(targetPath); err != nil {
				return fmt.Errorf("write %s: %w", targetPath, err)
			}

			cmd.Println("wrote", targetPath)

			for _, key := range initKeys {
				cmd.Printf("  %s = %v\n", key, viper.Get(key))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&initForceFlag, forceFlagName, false, "overwrite an existing configuration file")

	return cmd
}

func init() {
	rootCmd.AddCommand(initCmd)
}
