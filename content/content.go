package content

import (
	"fmt"

	"github.com/mundomaya/hoteles/model"
)

const (
	PackageCount = 6
	RelatedCount = 3

	CallCenter = "5544400662"
	WhatsApp   = "https://wa.me"

	cloudbeds = "https://hotels.cloudbeds.com"
	inah      = "https://www.inah.gob.mx"
	legal     = "https://www.hotelesgafsacomm.com"
)

// Cards generates count placeholder cards. Titles and picsum seeds are numbered from 1 and 0.
func Cards(titlePrefix, seedPrefix, alt string, count int) []model.Card {
	cards := make([]model.Card, 0, count)

	for i := range count {
		cards = append(cards, model.Card{
			ID:    i + 1,
			Title: fmt.Sprintf("%s %d", titlePrefix, i+1),
			Image: fmt.Sprintf("https://picsum.photos/seed/%s%d/800/600", seedPrefix, i),
			Alt:   alt,
		})
	}

	return cards
}

func hotels() []model.Link {
	names := []string{"Tulum", "Tulum Aeropuerto", "Chichén Itzá", "Nuevo Uxmal", "Edzná", "Calakmul", "Palenque"}
	links := make([]model.Link, 0, len(names))

	for _, name := range names {
		links = append(links, model.Link{Label: name, Href: cloudbeds, External: true})
	}

	return links
}

func unsplash(id string, width int) string {
	return fmt.Sprintf("https://images.unsplash.com/%s?q=80&w=%d&auto=format&fit=crop", id, width)
}

// Default returns the manifest for the Grupo Mundo Maya landing page.
// bookingWidgetURL may be empty.
func Default(bookingWidgetURL string) *model.Content {
	return &model.Content{
		Lang:  "es-MX",
		Title: "Hoteles grupo mundo maya",
		Navigation: model.Navigation{
			Brand: "Hoteles grupo mundo maya",
			Links: []model.Link{
				{Label: "Inicio", Href: "#" + model.AnchorHome},
				{Label: "¿Quiénes somos?", Href: "https://grupoolmecamayamexica.com.mx", External: true},
				{Label: "Promociones", Href: "#" + model.AnchorPromotions},
				{Label: "Paquetes de verano", Href: "#" + model.AnchorPackages},
			},
			Hotels:  hotels(),
			Contact: model.Link{Label: "Contáctanos", Href: "#" + model.AnchorContact},
		},
		Hero: model.Hero{
			Title:    "Hoteles grupo mundo maya",
			Subtitle: "Aventúrate en un viaje inolvidable por el sureste mexicano.",
			CTA:      model.Link{Label: "Ver paquetes", Href: "#" + model.AnchorPackages},
			Image:    unsplash("photo-1526775106625-2f13a0c0bfb8", 1600),
		},
		Packages: model.Grid{
			Eyebrow: "Nuestros Paquetes",
			Heading: "de verano",
			Description: "Experimenta el lujo entre la majestuosa selva maya, donde el legado ancestral y la " +
				"comodidad de un hotel de cuatro estrellas se fusionan en una experiencia única. " +
				"Vive #UnVeranoEnElMundoMaya.",
			Cards:  Cards("Paquete", "paquete", "Paquete", PackageCount),
			Anchor: model.AnchorPackages,
		},
		Heart: model.PromoBlock{
			Heading: "EL CORAZÓN DEL SURESTE MEXICANO",
			Body: "¿Por qué elegir un solo destino cuando puedes tenerlos todos? Nuestra increíble red de " +
				"hoteles, te abre las puertas a un mundo de maravillas arqueológicas.",
			Images: []string{
				unsplash("photo-1535430163334-677698f7f565", 1200),
				unsplash("photo-1548704806-0a274b5689b0", 1200),
			},
			CTA: model.Link{Label: "Saber más", Href: "https://grupomundomaya.com", External: true},
		},
		Zones: model.Zones{
			Heading: "Zonas arqueológicas",
			Body:    "Estamos ubicados a solo minutos de las principales y emblemáticas zonas arqueológicas mayas...",
			Sites: []model.Link{
				{Label: "Tulum", Href: inah, External: true},
				{Label: "Chichén Itzá", Href: "https://inah.gob.mx", External: true},
				{Label: "Uxmal", Href: inah, External: true},
				{Label: "Edzná", Href: inah, External: true},
				{Label: "Calakmul", Href: "https://inah.gob.mx", External: true},
				{Label: "Palenque", Href: "https://inah.gob.mx", External: true},
			},
		},
		Business: model.PromoBlock{
			Heading: "Business Class",
			Body: "A metros del Aeropuerto Internacional de Tulum... Esta tú conexión perfecta entre negocios y " +
				"paraíso. Hospedate en nuestro \"Hotel Tulum Aeropuerto\", ya sea que vengas por trabajo o " +
				"estés en tránsito hacia tu próxima aventura, aquí encontrarás el descanso ideal con el toque " +
				"vibrante de Tulum. \"Hospédate inteligente, viaja sin límites\"",
			Images: []string{
				unsplash("photo-1488646953014-85cb44e25828", 1200),
				unsplash("photo-1542314831-068cd1dbfeeb", 1200),
			},
			CTA:        model.Link{Label: "Reservar", Href: cloudbeds, External: true},
			ImageFirst: true,
		},
		Destino: model.CTA{
			Heading: "¿Qué destino descubrirás hoy?",
			Link:    model.Link{Label: "Reservar ahora", Href: "#" + model.AnchorBooking},
		},
		Related: model.Grid{
			Heading: "Más contenido relacionado...",
			Cards:   Cards("Contenido", "post", "Contenido", RelatedCount),
			Shaded:  true,
		},
		Booking: model.Booking{
			Heading: "Reservaciones",
			Description: "Aquí se incrustará el motor de reservaciones (script o iframe) cuando esté listo. " +
				"Integra aquí el snippet de Cloudbeds / PMS nuevo y componentízalo para poder alternar proveedores.",
			Placeholder: "Widget/iframe",
			WidgetURL:   bookingWidgetURL,
		},
		Footer: model.Footer{
			Copyright: "©2025 Grupo Mundo Maya",
			Legal: []model.Link{
				{Label: "Aviso de privacidad integral", Href: legal, External: true},
				{Label: "Políticas de reservas", Href: legal, External: true},
			},
			Contact: []model.Link{
				{Label: "Call Center: " + CallCenter, Href: "tel:" + CallCenter},
				{Label: "WhatsApp", Href: WhatsApp, External: true},
			},
			Social: []model.Link{
				{Label: "Facebook", Href: "#"},
				{Label: "Instagram", Href: "#"},
				{Label: "TikTok", Href: "#"},
			},
		},
		Promo: model.Promo{
			Title: "Promoción Mundo Maya",
			Body:  "Aprovecha nuestras promos de temporada.",
			Image: "https://picsum.photos/seed/promo-mm/1200/600",
			Actions: []model.Link{
				{Label: "Ver paquetes", Href: "#" + model.AnchorPackages},
				{Label: "Reservar", Href: "#" + model.AnchorBooking},
			},
		},
	}
}
