package orders

import (
	"net/url"
	"strings"
)

// GreetingMessage es el texto del botón flotante de contacto.
const GreetingMessage = "Olá! Gostaria de saber mais sobre os serviços do PetShop Premium. 🐾"

// Handoff es el deep link al servicio de mensajería junto al texto enviado.
type Handoff struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// LinkBuilder arma links del tipo https://<service>/<recipient>?text=<msg>.
type LinkBuilder struct {
	BaseURL   string
	Recipient string
}

func (b LinkBuilder) Build(message string) Handoff {
	base := strings.TrimRight(strings.TrimSpace(b.BaseURL), "/")
	return Handoff{
		URL:     base + "/" + url.PathEscape(strings.TrimSpace(b.Recipient)) + "?text=" + encodeURIComponent(message),
		Message: message,
	}
}

// encodeURIComponent: espacios como %20 (no "+"), como en el navegador.
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
