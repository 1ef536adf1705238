// Command cubicperc runs bond-percolation Monte Carlo simulations on a
// 3D cubic lattice, either one at a time (run) or as a probability
// sweep (sweep), writing a histogram CSV per simulation.
package main

import "github.com/dlozano/cubicperc/cmd/cubicperc/commands"

func main() {
	commands.Execute()
}
