package main

import "opentag/cmd/cli"

func main() {
	cli.RunCLI()
}
