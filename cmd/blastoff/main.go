// Command blastoff runs the countdown, search and sort demonstrations.
package main

import "github.com/katalvlaran/blastoff/internal/cli"

func main() {
	cli.Execute()
}
