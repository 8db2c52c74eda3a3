package main

import (
	"errors"
	"os"

	"github.com/ghostbsd/software-properties-station/internal/cli"
	"github.com/sirupsen/logrus"
)

func main() {
	// Setup logging format
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	rootCmd := cli.NewRootCmd()
	err := rootCmd.Execute()
	cli.CloseLog()
	if err != nil {
		if !errors.Is(err, cli.ErrReported) {
			logrus.Error(err)
		}
		os.Exit(1)
	}
}
