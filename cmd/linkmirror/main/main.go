package main

import (
	"os"

	"github.com/arthur-debert/linkmirror/cmd/linkmirror"
)

func main() {
	os.Exit(linkmirror.Execute())
}
