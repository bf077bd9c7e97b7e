package main

import (
	"os"

	"valens/internal/app"

	"github.com/sirupsen/logrus"
)

// @title Valens Token Pricing API
// @version 1.0
// @description Creator coin pricing, quotes and purchase submission
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Error("Application stopped with error")
		os.Exit(1)
	}
}
