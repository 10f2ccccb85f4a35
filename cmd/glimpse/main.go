package main

import (
	"github.com/develop-programs/Glimpse-sub001/internal/cli"
	"github.com/develop-programs/Glimpse-sub001/internal/logging"
)

func main() {
	// Initialize logging
	logging.Init()
	cli.Execute()
}
