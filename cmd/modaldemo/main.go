// Command modaldemo exercises the modal presenter in a terminal and renders
// its transitions to images.
package main

import (
	"os"

	"github.com/go-drift/modal/cmd/modaldemo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
