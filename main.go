package main

import (
	"os"

	"github.com/yusuke-kurosawa/diagnoleads-widget/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
