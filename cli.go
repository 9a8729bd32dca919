//go:build cli
// +build cli

package main

import (
	_ "github.com/amanda-debetaz/PandaExpressPOS/custom"

	"github.com/amanda-debetaz/PandaExpressPOS/cmd"
	"github.com/amanda-debetaz/PandaExpressPOS/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
