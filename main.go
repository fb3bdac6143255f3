package main

import "github.com/bookly/bookly-cli/cmd"

func main() {
	cmd.Execute()
}
