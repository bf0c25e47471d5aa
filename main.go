package main

import "kiwiforge/internal/cli"

func main() {
	cli.Execute()
}
