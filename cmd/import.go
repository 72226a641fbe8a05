package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kentays/jazz-lines/constants"
	"github.com/kentays/jazz-lines/line"
	"github.com/kentays/jazz-lines/smfio"
	"github.com/kentays/jazz-lines/store"
	"github.com/kentays/jazz-lines/util"
)

func init() {
	importCmd.Flags().StringVar(&importLibrary, "library", constants.DefaultLibrary, "library to import into")
	rootCmd.AddCommand(importCmd)
}

var importLibrary string

var importCmd = &cobra.Command{
	Use:   "import <dir> [maxNum]",
	Short: "Imports midi files as lines",
	Long:  `Imports midi files as lines, one line per file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			panic("Need a directory of midi files...")
		}
		var maxNum int
		if len(args) == 2 {
			arg2, err := strconv.Atoi(args[1])
			if err != nil {
				panic(err)
			}
			maxNum = arg2
		}
		runImport(args[0], maxNum)
	},
}

func runImport(dir string, maxNum int) {
	s, err := store.Open(constants.GetDBPath())
	if err != nil {
		panic("Could not open store: " + err.Error())
	}
	defer s.Close()

	paths := util.GatherAllMidiPaths(dir, maxNum)
	var imported int
	for i, path := range paths {
		fmt.Printf("Processing %v of %v midi files\n", i+1, len(paths))
		notes, err := smfio.ReadNotes(path)
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", path, err)
			continue
		}
		l, err := line.Build(notes, -1)
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", path, err)
			continue
		}
		l.LibraryID = importLibrary
		l.Comment = path
		if err := s.SaveLine(l); err != nil {
			fmt.Printf("Skipping %v because: %v\n", path, err)
			continue
		}
		imported++
	}
	fmt.Printf("Imported %v of %v files into %q\n", imported, len(paths), importLibrary)
}
