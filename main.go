package main

import (
	"log"

	"travelrec/cli"

	"github.com/rohanthewiz/logger"
)

func main() {
	// Initialize logger; the configured level is applied once flags are parsed
	logger.SetLogLevel("info")

	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
