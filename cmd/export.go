package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
	"github.com/jvuorela-creator/keski-ika/analysis"
	"github.com/jvuorela-creator/keski-ika/data"
	"github.com/jvuorela-creator/keski-ika/gedcom"
	"github.com/jvuorela-creator/keski-ika/util"
	"github.com/spf13/cobra"
)

func newReportId() (string, error) {
	myUuid, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}

	return "urn:uuid:" + myUuid.String(), nil
}

func buildReport(filename string, r analysis.Range, result *analysis.Result) (*data.Report, error) {
	id, err := newReportId()
	if err != nil {
		return nil, err
	}

	report := &data.Report{
		Id:        id,
		File:      filepath.Base(filename),
		StartYear: r.Start,
		EndYear:   r.End,
		InRange:   result.InRange,
		Coverage:  result.Coverage,
		Decades:   make([]data.ReportDecade, 0, len(result.Decades)),
	}
	for _, row := range result.Decades {
		report.Decades = append(report.Decades, data.ReportDecade{
			Decade:  row.Decade,
			MeanAge: row.MeanAge,
			Count:   row.Count,
		})
	}
	return report, nil
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export decade statistics as a YAML report",
	Long: `Runs the same analysis as the analyze command and writes the full
result as a YAML report with a generated report id: the configured year
window, the summary counts and one entry per decade.

An empty result produces a report with zero counts and no decade entries.

Example:

  keski-ika export family-tree.ged --output-file report.yml`,
	ValidArgs: []string{"file"},
	Args:      gedcomFileArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		yearRange, err := analysisRange(cmd)
		if err != nil {
			return err
		}

		content, _, err := readDocument(args[0])
		if err != nil {
			return processingError(args[0], err)
		}

		individuals := gedcom.ParseIndividuals(content)
		result := analysis.Aggregate(individuals, yearRange)

		report, err := buildReport(args[0], yearRange, result)
		if err != nil {
			return err
		}

		reportBytes, err := yaml.Marshal(report)
		if err != nil {
			return err
		}

		if outputFile == "" {
			fmt.Print(string(reportBytes))
			return nil
		}

		file, err := util.CreateOutputFile(outputFile)
		if err != nil {
			return err
		}
		defer file.Close()

		_, err = file.Write(reportBytes)
		return err
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	addAnalysisFlags(exportCmd)
	exportCmd.Flags().StringVarP(&outputFile, "output-file", "o", "", "write the report to this file instead of stdout")
}
