package components

import (
	"time"

	"github.com/mundomaya/hoteles/model"
	"github.com/mundomaya/hoteles/ui/menu"
)

type RenderContext struct {
	Content *model.Content
	Menu    menu.State
	// MountID is empty for static exports; the promo slot is then left inert.
	MountID string
	// ModalDelay is how long the browser waits before asking for the promo dialog.
	ModalDelay time.Duration
	// AssetsPrefix is where site.css and site.js are served from.
	AssetsPrefix string
}

// ModalTrigger is the htmx delay matching the server-side modal timer.
func (rc *RenderContext) ModalTrigger() string {
	return delayTrigger(formatDelay(rc.ModalDelay))
}

func formatDelay(d time.Duration) string {
	if d <= 0 {
		return "0ms"
	}

	return d.Round(time.Millisecond).String()
}

func (rc *RenderContext) asset(name string) string {
	prefix := rc.AssetsPrefix
	if prefix == "" {
		prefix = "/assets"
	}

	return prefix + "/" + name
}
