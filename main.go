package main

import (
	"github.com/kentays/jazz-lines/cmd"
)

func main() {
	cmd.Execute()
}
