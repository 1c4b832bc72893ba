// Command pi-guard is the autonomy-level permission gate binary.
package main

import (
	"fmt"
	"os"

	"github.com/vrslev/pi-guard/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
