package main

import (
	"os"

	"github.com/camillescott/cryptic/cmd"
)

func main() {
	os.Exit(cmd.Execute(os.Args[1:]))
}
