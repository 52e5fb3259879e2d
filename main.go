package main

import (
	"os"

	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/cmd"
	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/infra/logger"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logger.New("main").Errorf("%v", err)
		os.Exit(1)
	}
}
