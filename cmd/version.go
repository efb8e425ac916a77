package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yusuke-kurosawa/diagnoleads-widget/widget"
)

// version is set via -ldflags at build time; release builds stamp the
// tagged version, dev builds fall back to the library constant.
var version = widget.Version

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("diagnoleads-widget", version)
	},
}
