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
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eslsoft/hskdeck/internal/entity"
	"github.com/eslsoft/hskdeck/internal/infrastructure/config"
	"github.com/eslsoft/hskdeck/internal/infrastructure/logging"
	"github.com/eslsoft/hskdeck/internal/infrastructure/vocabdata"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the vocabulary catalog files",
}

var catalogImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Convert an HSK workbook into catalog JSON files",
	Long: `Reads every sheet named HSK1..HSK6 from an .xlsx workbook and writes hsk{N}.json plus
hsk_all.json into the output directory. Point catalog.dir at that directory to use it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		xlsxPath, _ := cmd.Flags().GetString("xlsx")
		outDir, _ := cmd.Flags().GetString("out")
		if xlsxPath == "" || outDir == "" {
			return errors.New("both --xlsx and --out are required")
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger, err := logging.NewLogger(cfg)
		if err != nil {
			return err
		}

		parts, err := vocabdata.ImportWorkbook(xlsxPath, logger)
		if err != nil {
			return err
		}
		if err := vocabdata.WriteDir(outDir, parts); err != nil {
			return err
		}
		cmd.Print(importSummary(parts))
		cmd.Printf("Catalog written to %s\n", outDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogImportCmd)

	catalogImportCmd.Flags().String("xlsx", "", "path of the HSK workbook")
	catalogImportCmd.Flags().String("out", "", "directory to write the catalog files into")
}

func importSummary(parts vocabdata.Partitions) string {
	var out string
	total := 0
	for _, level := range entity.Levels() {
		n := len(parts[level])
		total += n
		out += fmt.Sprintf("HSK %d: %d words\n", level, n)
	}
	return out + fmt.Sprintf("Total: %d words\n", total)
}
