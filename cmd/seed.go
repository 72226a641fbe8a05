package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kentays/jazz-lines/constants"
	"github.com/kentays/jazz-lines/line"
	"github.com/kentays/jazz-lines/model"
	"github.com/kentays/jazz-lines/note"
	"github.com/kentays/jazz-lines/store"
)

func init() {
	rootCmd.AddCommand(seedCmd)
}

var seedCmd = &cobra.Command{
	Use:   "seed <lines.json>",
	Short: "Seeds the store from a default line file",
	Long:  `Seeds the store from a default line file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need a json file of lines...")
		}
		if err := SeedFromFile(constants.GetDBPath(), args[0]); err != nil {
			panic("Could not seed: " + err.Error())
		}
	},
}

// SeedFromFile loads line definitions from a json file into the store.
// Entries use the same shape as the create-line endpoint.
func SeedFromFile(dbPath string, seedPath string) error {
	dat, err := os.ReadFile(seedPath)
	if err != nil {
		return err
	}
	var entries []model.CreateLineRequestBody
	if err := json.Unmarshal(dat, &entries); err != nil {
		return fmt.Errorf("could not parse seed file: %w", err)
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	for i, entry := range entries {
		notes, err := note.ParseAll(entry.Notes)
		if err != nil {
			return fmt.Errorf("entry %v: %w", i, err)
		}
		tripletStart := -1
		if entry.TripletStartIndex != nil {
			tripletStart = *entry.TripletStartIndex
		}
		l, err := line.Build(notes, tripletStart)
		if err != nil {
			return fmt.Errorf("entry %v: %w", i, err)
		}
		l.Tags = entry.Tags
		l.LibraryID = entry.Library
		if l.LibraryID == "" {
			l.LibraryID = constants.DefaultLibrary
		}
		l.Comment = entry.Comment
		if err := s.SaveLine(l); err != nil {
			return fmt.Errorf("entry %v: %w", i, err)
		}
	}
	fmt.Printf("Seeded %v lines\n", len(entries))
	return nil
}
