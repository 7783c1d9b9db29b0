package main

import (
	"os"

	"github.com/apex/log"

	"github.com/noderes/noderes/cmd/noderes/app"
	"github.com/noderes/noderes/cmd/noderes/display"
)

func main() {
	err := app.New().Run(os.Args)
	if err != nil {
		log.Fatalf("%s\n\nThe debug log is located at: %s", err.Error(), display.File())
	}
}
