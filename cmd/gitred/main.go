package main

import (
	"os"

	"github.com/dshills/gitred/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
