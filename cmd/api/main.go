package main

import "github.com/limbo/frisfocus/internal/cli"

func main() {
	cli.Execute()
}
