package main

import (
	"os"

	"github.com/cloudywalnut/ai-production-scheduler/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
