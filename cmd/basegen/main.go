package main

import "github.com/mkpro118/basegen/internal/cli"

func main() {
	cli.Execute()
}
