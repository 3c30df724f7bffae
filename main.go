package main

import (
	"context"
	"os"

	"slack-gif/cmd"
)

func main() {
	err := cmd.Cmd.Run(context.Background(), os.Args)
	if err != nil {
		os.Exit(1)
	}
}
