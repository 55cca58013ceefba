package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/treeinstall/cmd/treeinstall"
	"github.com/arthur-debert/treeinstall/internal/version"
)

func main() {
	rootCmd := treeinstall.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "TREEINSTALL",
		Section: "1",
		Source:  "treeinstall " + version.Version,
		Manual:  "treeinstall manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
