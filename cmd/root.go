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
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/jvuorela-creator/keski-ika/analysis"
	"github.com/jvuorela-creator/keski-ika/data"
	"github.com/spf13/cobra"
)

var noProgress bool
var startYear int
var endYear int
var charsetName string
var configFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "keski-ika",
	Short: "Lifespan statistics for GEDCOM files from the Command Line",
	Long: `keski-ika is a command line tool that reads GEDCOM genealogy files
and reports the mean lifespan of individuals grouped by the decade
of their birth.

Currently you can print decade statistics, list the parsed individual
records in NDJSON format and export a full report in YAML format.`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// addAnalysisFlags registers the flags shared by all commands that read a
// GEDCOM file and run the statistics pipeline on it.
func addAnalysisFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&startYear, "start-year", analysis.DefaultRange.Start, "first birth year included in the statistics")
	cmd.Flags().IntVar(&endYear, "end-year", analysis.DefaultRange.End, "last birth year included in the statistics")
	cmd.Flags().StringVar(&configFile, "config", "", "YAML file with start-year and end-year settings")
	addCharsetFlag(cmd)
}

func addCharsetFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&charsetName, "charset", "utf-8", "charset of the GEDCOM file (utf-8, iso-8859-1, windows-1252)")
}

// analysisRange resolves the birth-year window from flags and the optional
// config file. Flags that were set explicitly win over the config file.
func analysisRange(cmd *cobra.Command) (analysis.Range, error) {
	r := analysis.Range{Start: startYear, End: endYear}
	if configFile != "" {
		config, err := readConfigFile(configFile)
		if err != nil {
			return r, fmt.Errorf("could not read the config file: %v", err)
		}
		if config.StartYear != 0 && !cmd.Flags().Changed("start-year") {
			r.Start = config.StartYear
		}
		if config.EndYear != 0 && !cmd.Flags().Changed("end-year") {
			r.End = config.EndYear
		}
	}
	if r.End < r.Start {
		return r, fmt.Errorf("end year %d lies before start year %d", r.End, r.Start)
	}
	return r, nil
}

func readConfigFile(filename string) (*data.Config, error) {
	file, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config := data.Config{}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// gedcomFileArgs validates that the single positional argument names an
// existing regular file.
func gedcomFileArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return errors.New("requires a file argument")
	}
	if info, err := os.Stat(args[0]); os.IsNotExist(err) {
		return fmt.Errorf("file `%s` doesn't exist", args[0])
	} else if err != nil {
		return err
	} else if info.IsDir() {
		return fmt.Errorf("`%s` is a directory, not a file", args[0])
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&noProgress, "no-progress", "", false, "don't show progress bar")
}
