package content_test

import (
	"strings"
	"testing"

	"github.com/mundomaya/hoteles/content"
	"github.com/mundomaya/hoteles/model"
	"github.com/stretchr/testify/assert"
)

func TestCards(t *testing.T) {
	tests := []struct {
		name  string
		count int
	}{
		{name: "packages", count: content.PackageCount},
		{name: "related", count: content.RelatedCount},
		{name: "empty", count: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cards := content.Cards("Paquete", "paquete", "Paquete", tc.count)

			assert.Len(t, cards, tc.count)

			for i, card := range cards {
				assert.Equal(t, i+1, card.ID)
				assert.NotEmpty(t, card.Title)
				assert.True(t, strings.HasPrefix(card.Image, "https://picsum.photos/seed/paquete"))
			}
		})
	}
}

func TestDefault(t *testing.T) {
	c := content.Default("")

	assert.Len(t, c.Packages.Cards, 6)
	assert.Len(t, c.Related.Cards, 3)
	assert.Equal(t, model.AnchorPackages, c.Packages.Anchor)
	assert.Equal(t, "#"+model.AnchorPackages, c.Hero.CTA.Href)
	assert.Equal(t, "#"+model.AnchorBooking, c.Destino.Link.Href)
	assert.Len(t, c.Navigation.Hotels, 7)
	assert.Empty(t, c.Booking.WidgetURL)

	assert.Contains(t, c.Footer.Contact, model.Link{Label: "Call Center: 5544400662", Href: "tel:5544400662"})
	assert.Contains(t, c.Footer.Contact, model.Link{Label: "WhatsApp", Href: "https://wa.me", External: true})
}

func TestDefaultWithWidget(t *testing.T) {
	c := content.Default("https://booking.example.com/widget")

	assert.Equal(t, "https://booking.example.com/widget", c.Booking.WidgetURL)
}
