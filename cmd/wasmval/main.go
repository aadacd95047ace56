// Command wasmval renders host values as literals, encodes signature tags,
// and calls numeric exports of core wasm modules.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/viper"
)

var red = color.New(color.FgRed).SprintFunc()

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, red("Error: "+err.Error()))
		os.Exit(1)
	}
}
