// mcase scores force-biased Monte Carlo moves and evaluates tabulated pair
// potentials. Run "mcase help" for a list of subcommands.
package main

import (
	"github.com/phil-mansfield/mcase/cmd"
)

func main() {
	cmd.Execute()
}
