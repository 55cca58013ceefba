package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/treeinstall/cmd/treeinstall"
	"github.com/arthur-debert/treeinstall/pkg/style"
)

func main() {
	rootCmd := treeinstall.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		renderer := style.NewRenderer(style.DetectFormat(os.Stderr))
		fmt.Fprintln(os.Stderr, renderer.RenderError(err))
		os.Exit(1)
	}
}
