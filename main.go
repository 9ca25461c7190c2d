package main

import (
	"fmt"
	"os"

	"github.com/klemjul/tutorchat/cmd"
	"github.com/klemjul/tutorchat/internal/app"
)

func main() {
	app := app.NewDefaultApp()
	if err := cmd.RootCommand(app).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cmd.FormatError(err))
		os.Exit(1)
	}
}
