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
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jvuorela-creator/keski-ika/gedcom"
	"github.com/jvuorela-creator/keski-ika/util"
	"github.com/spf13/cobra"
)

var outputFile string

var recordsCmd = &cobra.Command{
	Use:   "records [file]",
	Short: "List individual records in NDJSON format",
	Long: `Parses the individual records of a GEDCOM file and outputs one
record per line in NDJSON format, with the extracted birth and death
years. Missing years are encoded as null.

Records will be either streamed to STDOUT, delimited by newline, or
stored in a file if the --output-file flag is given.

Examples:
  keski-ika records family-tree.ged > records.ndjson
  keski-ika records family-tree.ged --output-file records.ndjson`,
	ValidArgs: []string{"file"},
	Args:      gedcomFileArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		content, _, err := readDocument(args[0])
		if err != nil {
			return processingError(args[0], err)
		}

		individuals := gedcom.ParseIndividuals(content)

		var file *os.File
		if outputFile == "" {
			file = os.Stdout
		} else {
			file, err = util.CreateOutputFile(outputFile)
			if err != nil {
				return err
			}
		}
		sink := bufio.NewWriter(file)
		defer file.Close()
		defer sink.Flush()

		encoder := json.NewEncoder(sink)
		for _, individual := range individuals {
			if err := encoder.Encode(individual); err != nil {
				return fmt.Errorf("could not write record %s: %v", individual.Id, err)
			}
		}

		fmt.Fprintf(os.Stderr, "Records          [total]                  %d\n", len(individuals))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recordsCmd)

	recordsCmd.Flags().StringVarP(&outputFile, "output-file", "o", "", "write records to this file instead of stdout")
	addCharsetFlag(recordsCmd)
}
