package main

import (
	"os"

	"github.com/ecommerce-dz/go-store/internal/app"
	"github.com/ecommerce-dz/go-store/pkg/logger"
)

func main() {
	log := logger.NewSlogLogger()

	if err := app.Run(os.Args, log); err != nil {
		log.Errorf(err, "command failed")
		os.Exit(1)
	}
}
