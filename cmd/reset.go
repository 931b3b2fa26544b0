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

	"github.com/spf13/cobra"

	"github.com/eslsoft/hskdeck/internal/app"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear saved progress",
}

var resetMasteryCmd = &cobra.Command{
	Use:   "mastery",
	Short: "Forget the mastery of every word",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(cmd, false, func(ctx context.Context, c *app.Container) error {
			c.Mastery.ResetAll(ctx)
			c.Logger.Info("mastery progress reset")
			cmd.Println("All mastery progress cleared.")
			return nil
		})
	},
}

var resetQuizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Forget where the quiz of one level stopped",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := levelFlag(cmd)
		if err != nil {
			return err
		}
		return withContainer(cmd, false, func(ctx context.Context, c *app.Container) error {
			c.Quiz.ResetProgress(ctx, level)
			c.Logger.WithField("level", level).Info("quiz progress reset")
			cmd.Printf("Quiz progress for HSK %d cleared.\n", level)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.AddCommand(resetMasteryCmd, resetQuizCmd)
	addLevelFlag(resetQuizCmd)
}
