package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"ocr-translator/cmd"
	"ocr-translator/services"
)

const version = "0.1.0"

func main() {
	services.Version = version
	root := cmd.NewRootCmd()

	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	); err != nil {
		os.Exit(1)
	}
}
