package model

import (
	"time"
)

// In-page anchor targets. Links elsewhere on the page reference these by name.
const (
	AnchorHome       = "inicio"
	AnchorPromotions = "promociones"
	AnchorPackages   = "paquetes"
	AnchorBooking    = "booking"
	AnchorContact    = "contacto"
)

type Link struct {
	Label string
	Href  string
	// External links open in a new tab.
	External bool
}

type Card struct {
	ID    int
	Title string
	Image string
	Alt   string
}

type Grid struct {
	Eyebrow     string
	Heading     string
	Description string
	Cards       []Card
	// Anchor is empty for grids that are not link targets.
	Anchor string
	Shaded bool
}

type Hero struct {
	Title    string
	Subtitle string
	CTA      Link
	Image    string
}

type PromoBlock struct {
	Heading    string
	Body       string
	Images     []string
	CTA        Link
	ImageFirst bool
}

type Zones struct {
	Heading string
	Body    string
	Sites   []Link
}

type CTA struct {
	Heading string
	Link    Link
}

type Booking struct {
	Heading     string
	Description string
	Placeholder string
	// WidgetURL, when set, is embedded as an iframe at the mount point.
	WidgetURL string
}

type Footer struct {
	Copyright string
	Legal     []Link
	Contact   []Link
	Social    []Link
}

type Promo struct {
	Title   string
	Body    string
	Image   string
	Actions []Link
}

type Navigation struct {
	Brand  string
	Links  []Link
	Hotels []Link
	// Contact is rendered as a pill after the hotels submenu.
	Contact Link
}

// Content is the read-only manifest every section renders from.
type Content struct {
	Lang       string
	Title      string
	Navigation Navigation
	Hero       Hero
	Packages   Grid
	Heart      PromoBlock
	Zones      Zones
	Business   PromoBlock
	Destino    CTA
	Related    Grid
	Booking    Booking
	Footer     Footer
	Promo      Promo
}

type ModalEventKind string

const (
	ModalShown     ModalEventKind = "shown"
	ModalDismissed ModalEventKind = "dismissed"
	ModalCancelled ModalEventKind = "cancelled"
)

type ModalEvent struct {
	MountID   string
	Kind      ModalEventKind
	Reason    string
	Timestamp time.Time
}

type EventCount struct {
	Kind   ModalEventKind
	Reason string
	Count  int
}
