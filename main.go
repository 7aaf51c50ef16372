// Command lifesearch searches for still lifes, oscillators and
// spaceships in Game-of-Life-like rules via backtracking constraint
// propagation.
package main

import "github.com/telepair/lifesearch/cmd"

func main() {
	cmd.Execute()
}
