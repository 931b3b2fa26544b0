package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// backupCmd groups the export and import subcommands.
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export or import learning progress as NDJSON",
}

func init() {
	rootCmd.AddCommand(backupCmd)
}

func keysFromConfig(key string) []string {
	return normalizeKeys(viper.GetStringSlice(key))
}

func normalizeKeys(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	result := make([]string, 0, len(values))
	for _, value := range values {
		name := strings.TrimSpace(value)
		if name == "" {
			continue
		}
		result = append(result, strings.ToLower(name))
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func bindFlagToViper(key string, flag *pflag.Flag) {
	if flag == nil {
		return
	}
	cobra.CheckErr(viper.BindPFlag(key, flag))
}
