package main

import (
	"os"

	"adouble-savior/cli"
)

func main() {
	os.Exit(cli.Start())
}
