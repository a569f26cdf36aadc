package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/panelpick/panelpick/internal/solve"
)

// Exit codes for different failure modes
const (
	ExitSuccess    = 0 // A selection was made and reported
	ExitInfeasible = 1 // The model is infeasible: no item satisfies the panel
	ExitError      = 2 // Invalid input, solver fault, or runtime error
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		// Infeasibility is a distinct outcome, not a fault.
		var infeasibleErr *solve.InfeasibleError
		if errors.As(err, &infeasibleErr) {
			os.Exit(ExitInfeasible)
		}

		os.Exit(ExitError)
	}
}
