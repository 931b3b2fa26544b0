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

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/eslsoft/hskdeck/internal/app"
	"github.com/eslsoft/hskdeck/internal/tui"
)

// quizCmd runs the multiple-choice quiz
var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Multiple-choice quiz over one HSK level",
	Long: `Shows each word of the level and asks for its meaning. A correct answer raises the
word's mastery by one, a wrong answer resets it. Progress through the level is saved and
resumed next time unless --reset is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := levelFlag(cmd)
		if err != nil {
			return err
		}
		reset, _ := cmd.Flags().GetBool("reset")
		return withContainer(cmd, true, func(ctx context.Context, c *app.Container) error {
			if reset {
				c.Quiz.ResetProgress(ctx, level)
			}
			session, err := c.Quiz.Start(ctx, level)
			if err != nil {
				return err
			}
			c.Logger.WithField("level", level).WithField("index", session.Index()).Info("quiz started")
			return tui.Run(tui.NewQuizModel(ctx, session, c.Config.Quiz.AutoAdvance), tea.WithAltScreen())
		})
	},
}

func init() {
	rootCmd.AddCommand(quizCmd)
	addLevelFlag(quizCmd)
	quizCmd.Flags().Bool("reset", false, "discard saved progress and start from the first word")
}
