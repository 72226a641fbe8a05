package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/kentays/jazz-lines/classify"
	"github.com/kentays/jazz-lines/constants"
	"github.com/kentays/jazz-lines/degree"
	"github.com/kentays/jazz-lines/store"
	"github.com/kentays/jazz-lines/tagging"
	"github.com/kentays/jazz-lines/util"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report",
	Long:  `Creates a report over the stored libraries`,
	Run: func(cmd *cobra.Command, args []string) {
		report()
	},
}

func report() {
	s, err := store.Open(constants.GetDBPath())
	if err != nil {
		panic("Could not open store: " + err.Error())
	}
	defer s.Close()

	reg, err := s.LoadRegistry()
	if err != nil {
		panic("Could not load registry: " + err.Error())
	}
	candidates := reg.Candidates()

	fmt.Println("== libraries ==")
	for _, o := range reg.Overviews() {
		fmt.Printf("%v: %v lines (enabled: %v)\n", o.Name, o.NumLines, o.Enabled)
	}

	fmt.Println("== start degrees ==")
	counts := make(map[string]int)
	for _, l := range candidates {
		counts[l.StartDegree]++
	}
	labels := util.GetKeys(counts)
	sort.Strings(labels)
	for _, label := range labels {
		fmt.Printf("%v: %v\n", label, counts[label])
	}

	fmt.Println("== connections per end degree ==")
	for _, end := range degree.ScaleOrder {
		res := classify.Classify(end, candidates, nil, classify.Options{Enabled: reg.Enabled})
		var total int
		for _, lines := range res.Buckets {
			total += len(lines)
		}
		fmt.Printf("%v: %v connectable\n", end, total)
	}

	fmt.Println("== functions ==")
	byFn := tagging.ByFunction(candidates)
	for _, name := range byFn.Order {
		fmt.Printf("%v: %v\n", name, len(byFn.Groups[name]))
	}
}
