// Copyright 2025 The Samply Community
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jvuorela-creator/keski-ika/analysis"
	"github.com/jvuorela-creator/keski-ika/gedcom"
	"github.com/jvuorela-creator/keski-ika/util"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// readDocument reads and decodes one GEDCOM file, showing a progress bar
// over the file's bytes unless --no-progress is set. Returns the decoded
// content and the file size in bytes.
func readDocument(filename string) (string, int64, error) {
	info, err := os.Stat(filename)
	if err != nil {
		return "", 0, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return "", 0, err
	}
	defer file.Close()

	var raw []byte
	if noProgress {
		raw, err = io.ReadAll(file)
	} else {
		progress := mpb.New()
		bar := progress.AddBar(info.Size(),
			mpb.BarRemoveOnComplete(),
			mpb.PrependDecorators(
				decor.Name("read", decor.WC{W: 5}),
				decor.CountersKibiByte("% .2f / % .2f"),
			),
			mpb.AppendDecorators(decor.Percentage()),
		)
		reader := bar.ProxyReader(file)
		defer reader.Close()
		raw, err = io.ReadAll(reader)
		progress.Wait()
	}
	if err != nil {
		return "", 0, err
	}

	content, err := gedcom.DecodeText(raw, charsetName)
	if err != nil {
		return "", 0, err
	}
	return content, info.Size(), nil
}

// processingError wraps any error from reading, decoding or analyzing a
// file into the single user-facing message of the command boundary.
func processingError(filename string, err error) error {
	return fmt.Errorf("error while processing %s:\n%s\nMake sure the file is a valid GEDCOM document.",
		filename, util.Indent(2, err.Error()))
}

func formatStatisticsTable(rows []analysis.DecadeStatistics) string {
	builder := strings.Builder{}
	builder.WriteString(fmt.Sprintf("%-6s %9s %12s\n", "Decade", "Mean Age", "Individuals"))
	for _, row := range rows {
		builder.WriteString(fmt.Sprintf("%-6d %9.1f %12d\n", row.Decade, row.MeanAge, row.Count))
	}
	return builder.String()
}

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Calculate mean lifespans per birth decade",
	Long: `Parses the individual records of a GEDCOM file and prints a table
with the mean lifespan and the number of individuals per birth decade.

Individuals missing a birth or death date, individuals with an implausible
lifespan and individuals born outside the configured year window don't
contribute to the statistics. Decades without any qualifying individual
still appear in the table, with zero values.

Example:

  keski-ika analyze family-tree.ged --start-year 1800 --end-year 1899`,
	ValidArgs: []string{"file"},
	Args:      gedcomFileArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		yearRange, err := analysisRange(cmd)
		if err != nil {
			return err
		}

		fmt.Printf("Analyze lifespans in %s ...\n\n", args[0])

		start := time.Now()
		content, bytesIn, err := readDocument(args[0])
		if err != nil {
			return processingError(args[0], err)
		}

		individuals := gedcom.ParseIndividuals(content)
		result := analysis.Aggregate(individuals, yearRange)

		if result.Empty() {
			fmt.Printf("No individuals with both a birth and a death year born between %d and %d were found.\n",
				yearRange.Start, yearRange.End)
			return nil
		}

		fmt.Print(formatStatisticsTable(result.Decades))
		fmt.Println()
		fmt.Printf("Individuals      [in range, with dates]   %d, %d\n", result.InRange, result.Coverage)
		fmt.Printf("Decades          [total]                  %d\n", len(result.Decades))
		fmt.Printf("Duration         [total]                  %s\n", util.FmtDurationHumanReadable(time.Since(start)))
		fmt.Printf("Bytes In         [total]                  %s\n", util.FmtBytesHumanReadable(float32(bytesIn)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	addAnalysisFlags(analyzeCmd)
}
