package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/kentays/jazz-lines/capture"
	"github.com/kentays/jazz-lines/constants"
	"github.com/kentays/jazz-lines/model"
	"github.com/kentays/jazz-lines/store"
)

func init() {
	rootCmd.AddCommand(captureCmd)
}

var captureCmd = &cobra.Command{
	Use:   "capture [port]",
	Short: "Captures lines from a midi in port",
	Long:  `Captures lines from a midi in port`,
	Run: func(cmd *cobra.Command, args []string) {
		portNum := 0
		if len(args) == 1 {
			arg1, err := strconv.Atoi(args[0])
			if err != nil {
				panic(err)
			}
			portNum = arg1
		}
		runCapture(portNum)
	},
}

func runCapture(portNum int) {
	defer midi.CloseDriver()

	s, err := store.Open(constants.GetDBPath())
	if err != nil {
		panic("Could not open store: " + err.Error())
	}
	defer s.Close()

	stop, err := capture.Run(portNum, func(l model.Line) {
		l.LibraryID = constants.DefaultLibrary
		if err := s.SaveLine(l); err != nil {
			fmt.Printf("Could not save captured line: %v\n", err)
			return
		}
		fmt.Printf("Captured %v-note line %v -> %v\n", l.Length(), l.StartDegree, l.EndDegree)
	})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}
	defer stop()

	fmt.Println("Capturing... play lines, pause between them, ctrl-c to finish")
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
}
