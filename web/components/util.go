package components

import (
	"fmt"
	"net/url"

	"github.com/mundomaya/hoteles/model"
	"github.com/mundomaya/hoteles/ui/menu"
)

const (
	HeaderID = "site-header"
	// ModalSlotID is the element the promo dialog swaps into.
	ModalSlotID    = "promo-modal"
	MobileMenuID   = "mobile-menu"
	HotelsMenuID   = "hotels-menu"
	ModalTitleID   = "promo-modal-title"
	modalPollDelay = "200ms"

	ctaClass = "inline-flex items-center gap-2 rounded-full px-5 py-2 ring-1 ring-slate-300 hover:bg-slate-50"
)

func ModalPath(mountID string) string {
	return fmt.Sprintf("/mounts/%s/modal", url.PathEscape(mountID))
}

func DismissPath(mountID string) string {
	return fmt.Sprintf("/mounts/%s/modal/dismiss", url.PathEscape(mountID))
}

func UnmountPath(mountID string) string {
	return fmt.Sprintf("/mounts/%s/unmount", url.PathEscape(mountID))
}

func brandLink(nav *model.Navigation) model.Link {
	return model.Link{Label: nav.Brand, Href: "#" + model.AnchorHome}
}

// mobileToggleLink is the URL reached by activating the mobile menu control.
func mobileToggleLink(s menu.State) string {
	return s.ToggleMobile().URL("/")
}

func hotelsToggleLink(s menu.State) string {
	return s.ToggleHotels().URL("/")
}

func ariaExpanded(t menu.Toggle) string {
	if t.Open() {
		return "true"
	}

	return "false"
}

// PollTrigger re-asks for the dialog when a request beat the server timer.
func PollTrigger() string {
	return delayTrigger(modalPollDelay)
}

// delayTrigger is the htmx trigger firing once, delay after the element loads.
func delayTrigger(delay string) string {
	return "load delay:" + delay
}
