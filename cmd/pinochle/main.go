package main

import (
	"os"

	"github.com/pterm/pterm"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "simulation" {
		if err := StartSimulation(os.Args[2:], os.Stdout, os.Stderr); err != nil {
			pterm.Error.Println(err)
			os.Exit(1)
		}
		return
	}
	pterm.Info.Println("usage: pinochle simulation [-games N] [-seed S] [-hands H] [-config rules.json] [-v]")
	os.Exit(2)
}
