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

var flashcardsCmd = &cobra.Command{
	Use:   "flashcards",
	Short: "Flip through a shuffled deck of one HSK level",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := levelFlag(cmd)
		if err != nil {
			return err
		}
		return withContainer(cmd, true, func(ctx context.Context, c *app.Container) error {
			deck, err := c.Practice.Flashcards(level)
			if err != nil {
				return err
			}
			return tui.Run(tui.NewFlashcardModel(level, deck), tea.WithAltScreen())
		})
	},
}

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Pair hanzi with their meanings",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := levelFlag(cmd)
		if err != nil {
			return err
		}
		return withContainer(cmd, true, func(ctx context.Context, c *app.Container) error {
			model, err := tui.NewMatchingModel(level, c.Practice)
			if err != nil {
				return err
			}
			return tui.Run(model, tea.WithAltScreen())
		})
	},
}

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the characters of prompted words",
	Long: `Prompts with a word's meaning and pinyin and asks for its characters. Writing a word
raises its mastery by one, skipping it lowers mastery by one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := levelFlag(cmd)
		if err != nil {
			return err
		}
		return withContainer(cmd, true, func(ctx context.Context, c *app.Container) error {
			session, err := c.Practice.Writing(level)
			if err != nil {
				return err
			}
			return tui.Run(tui.NewWritingModel(ctx, level, session), tea.WithAltScreen())
		})
	},
}

func init() {
	rootCmd.AddCommand(flashcardsCmd, matchCmd, writeCmd)
	addLevelFlag(flashcardsCmd)
	addLevelFlag(matchCmd)
	addLevelFlag(writeCmd)
}
