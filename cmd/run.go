package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yusuke-kurosawa/diagnoleads-widget/widget"
)

// runWidget assembles the attribute bag (config file, then environment,
// then flags, later layers winning) and runs the widget until the
// session ends.
func runWidget(cmd *cobra.Command) error {
	flags := cmd.Flags()

	var attrs widget.Attributes
	if path, _ := flags.GetString("config"); path != "" {
		fileAttrs, err := widget.LoadFile(path)
		if err != nil {
			return err
		}
		attrs = fileAttrs
	}

	attrs = widget.Merge(attrs, widget.FromEnv())
	attrs = widget.Merge(attrs, attributesFromFlags(cmd))

	cfg := widget.FromAttributes(attrs)

	preview, _ := flags.GetBool("preview")

	var w *widget.Widget
	if preview {
		w = widget.NewPreview(cfg)
	} else {
		w = widget.New(cfg)
	}

	// Hand the backend's submission response to whatever wraps this
	// process, the same way a host page would consume the callback.
	w.OnComplete(func(body json.RawMessage) {
		fmt.Fprintln(os.Stdout, string(body))
	})

	return w.Run()
}

func attributesFromFlags(cmd *cobra.Command) widget.Attributes {
	flags := cmd.Flags()

	str := func(name string) string {
		v, _ := flags.GetString(name)
		return v
	}
	debug, _ := flags.GetBool("debug")

	return widget.Attributes{
		TenantID:     str("tenant-id"),
		AssessmentID: str("assessment-id"),
		APIURL:       str("api-url"),
		GA4ID:        str("ga4-id"),
		GA4APISecret: str("ga4-api-secret"),
		Theme:        str("theme"),
		PrimaryColor: str("primary-color"),
		Debug:        debug,
	}
}
