package remind

import (
	"fmt"
	"io"
	"os"

	"github.com/gen2brain/beeep"
)

// DefaultAppName is the application name shown on desktop notifications.
const DefaultAppName = "QuickDo"

// DesktopNotifier sends desktop notifications. When the desktop channel is
// unavailable it degrades to printing the message; the failure never
// surfaces to the caller.
type DesktopNotifier struct {
	AppName string
	Out     io.Writer // fallback destination, defaults to stdout
}

// Notify implements Notifier.
func (n DesktopNotifier) Notify(message string) {
	app := n.AppName
	if app == "" {
		app = DefaultAppName
	}
	if err := beeep.Notify(app, message, ""); err != nil {
		out := n.Out
		if out == nil {
			out = os.Stdout
		}
		fmt.Fprintf(out, "🔔 %s\n", message)
	}
}
