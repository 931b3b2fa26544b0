/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eslsoft/hskdeck/internal/app"
	"github.com/eslsoft/hskdeck/internal/entity"
	"github.com/eslsoft/hskdeck/internal/infrastructure/config"
	"github.com/eslsoft/hskdeck/internal/infrastructure/logging"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hskdeck",
	Short: "Practice HSK vocabulary in the terminal",
	Long: `hskdeck tracks how well you know each HSK word and drills you with quizzes,
flashcards, a matching game and writing practice. Progress is kept in a local
JSON file by default, or in SQLite/PostgreSQL when configured.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default ./hskdeck.yaml or $HOME/.hskdeck/hskdeck.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "", "directory holding progress and logs")
	rootCmd.PersistentFlags().String("storage", "", "storage driver: file, sqlite, postgres or memory")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	bindFlagToViper("config", rootCmd.PersistentFlags().Lookup("config"))
	bindFlagToViper("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	bindFlagToViper("storage.driver", rootCmd.PersistentFlags().Lookup("storage"))
	bindFlagToViper("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// withContainer loads config, wires the application and runs fn. Interactive screens get
// their logs redirected to the log file.
func withContainer(cmd *cobra.Command, interactive bool, fn func(ctx context.Context, c *app.Container) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	c, cleanup, err := app.Initialize(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	defer cleanup()

	if interactive {
		restore, err := logging.RedirectToFile(c.Logger, cfg)
		if err != nil {
			return err
		}
		defer restore()
	}
	return fn(ctx, c)
}

func addLevelFlag(cmd *cobra.Command) {
	cmd.Flags().IntP("level", "l", entity.MinLevel, fmt.Sprintf("HSK level (%d-%d)", entity.MinLevel, entity.MaxLevel))
}

func levelFlag(cmd *cobra.Command) (int, error) {
	level, err := cmd.Flags().GetInt("level")
	if err != nil {
		return 0, err
	}
	if !entity.ValidLevel(level) {
		return 0, fmt.Errorf("%w: %d", entity.ErrInvalidLevel, level)
	}
	return level, nil
}
