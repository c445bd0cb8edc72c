package main

import (
	"os"

	"github.com/OmkarBelote/Ai-Aptitude-game/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
