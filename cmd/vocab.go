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
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/eslsoft/hskdeck/internal/app"
	"github.com/eslsoft/hskdeck/internal/entity"
	"github.com/eslsoft/hskdeck/internal/repository"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Browse the vocabulary with your mastery of each word",
}

var vocabListCmd = &cobra.Command{
	Use:   "list",
	Short: "List words, optionally filtered with a CEL expression",
	Example: `  hskdeck vocab list --level 2
  hskdeck vocab list --filter 'mastery >= 2 && pinyin.startsWith("b")' --order-by "mastery desc, pinyin"
  hskdeck vocab list --filter 'last_reviewed >= timestamp("2025-01-01T00:00:00Z")' --order-by "last_reviewed desc"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetInt("level")
		filter, _ := cmd.Flags().GetString("filter")
		orderBy, _ := cmd.Flags().GetString("order-by")
		page, _ := cmd.Flags().GetInt32("page")
		pageSize, _ := cmd.Flags().GetInt32("page-size")

		query := &repository.ListVocabQuery{
			Pagination:  repository.Pagination{PageNo: page, PageSize: pageSize},
			FilterOrder: repository.FilterOrder{Filter: filter, OrderBy: orderBy},
			Level:       level,
		}
		return withContainer(cmd, false, func(ctx context.Context, c *app.Container) error {
			words, total, err := c.Vocab.List(ctx, query)
			if err != nil {
				return err
			}
			writeWordTable(cmd.OutOrStdout(), words)
			start, end := query.Window(total)
			fmt.Fprintf(cmd.OutOrStdout(), "Showing %d-%d of %d words\n", min(start+1, end), end, total)
			return nil
		})
	},
}

var vocabShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show one word with its examples and mastery",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(cmd, false, func(ctx context.Context, c *app.Container) error {
			word, err := c.Vocab.Show(ctx, args[0])
			if err != nil {
				return err
			}
			writeWordDetail(cmd.OutOrStdout(), word)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(vocabCmd)
	vocabCmd.AddCommand(vocabListCmd, vocabShowCmd)

	vocabListCmd.Flags().IntP("level", "l", 0, "restrict to one HSK level (0 for all)")
	vocabListCmd.Flags().StringP("filter", "f", "", "CEL filter over level, hanzi, pinyin, keyword, id, mastery, last_reviewed")
	vocabListCmd.Flags().String("order-by", "", "up to two keys among position, level, pinyin, hanzi, mastery, last_reviewed, each optionally desc")
	vocabListCmd.Flags().Int32("page", 1, "page number")
	vocabListCmd.Flags().Int32("page-size", 50, "words per page (0 for all)")
}

func writeWordTable(w io.Writer, words []entity.LearnedWord) {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		Headers("ID", "Hanzi", "Pinyin", "Meaning", "Mastery", "Last reviewed")
	for _, word := range words {
		t.Row(word.ID, word.Hanzi, word.Pinyin, word.PrimaryTranslation(), word.Mastery.String(), reviewedAt(word))
	}
	fmt.Fprintln(w, t.String())
}

func writeWordDetail(w io.Writer, word *entity.LearnedWord) {
	fmt.Fprintf(w, "%s  %s  (HSK %d, %s)\n", word.Hanzi, word.Pinyin, word.Level, word.ID)
	fmt.Fprintf(w, "Meaning: %s\n", strings.Join(word.Translations, "; "))
	fmt.Fprintf(w, "Mastery: %s (%d/%d), last reviewed %s\n", word.Mastery, word.Mastery, entity.MasteryMastered, reviewedAt(*word))
	for i, ex := range word.Examples {
		fmt.Fprintf(w, "\nExample %d:\n  %s\n  %s\n  %s\n", i+1, ex.Chinese, ex.Pinyin, ex.Vietnamese)
	}
}

func reviewedAt(word entity.LearnedWord) string {
	if !word.Reviewed() {
		return "never"
	}
	return word.LastReviewed.Local().Format("2006-01-02 15:04")
}
