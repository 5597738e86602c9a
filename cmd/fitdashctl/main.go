// Command fitdashctl is the operator CLI: schema migrations, dashboard inspection,
// logging workouts from the shell and issuing test tokens.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %s", err))
		os.Exit(1)
	}
}
