package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kentays/jazz-lines/constants"
	"github.com/kentays/jazz-lines/model"
	"github.com/kentays/jazz-lines/smfio"
	"github.com/kentays/jazz-lines/store"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <sequence> <out.mid>",
	Short: "Exports a saved sequence as a midi file",
	Long:  `Exports a saved sequence as a midi file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			panic("Need a sequence name and an output path...")
		}
		export(args[0], args[1])
	},
}

func export(name string, outPath string) {
	s, err := store.Open(constants.GetDBPath())
	if err != nil {
		panic("Could not open store: " + err.Error())
	}
	defer s.Close()

	reg, err := s.LoadRegistry()
	if err != nil {
		panic("Could not load registry: " + err.Error())
	}
	ids, err := s.LoadSequence(name)
	if err != nil {
		panic("Could not load sequence: " + err.Error())
	}
	if len(ids) == 0 {
		panic("No sequence named " + name)
	}

	var seq model.Sequence
	for _, id := range ids {
		l, ok := reg.Find(id)
		if !ok {
			fmt.Printf("Skipping missing line %v\n", id)
			continue
		}
		seq = append(seq, l)
	}

	if err := smfio.WriteSequenceFile(seq, outPath); err != nil {
		panic("Could not write midi file: " + err.Error())
	}
	fmt.Printf("Wrote %v lines to %v\n", len(seq), outPath)
}
