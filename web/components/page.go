package components

import (
	"github.com/a-h/templ"
)

// Sections lists the page body in its fixed order. The order is part of the
// page contract: in-page anchors depend on it.
func Sections(rc *RenderContext) []templ.Component {
	c := rc.Content

	return []templ.Component{
		Navbar(&c.Navigation, rc.Menu),
		Hero(&c.Hero),
		PromotionsAnchor(),
		PackageGrid(&c.Packages, "heading-paquetes"),
		PromoSection(&c.Heart, "heading-corazon", true),
		ArchaeologicalZones(&c.Zones),
		PromoSection(&c.Business, "heading-bclass", true),
		DestinoCTA(&c.Destino),
		PackageGrid(&c.Related, "heading-rel"),
		BookingPlaceholder(&c.Booking),
		Footer(&c.Footer),
		ModalSlot(rc.MountID, rc.ModalTrigger()),
	}
}
