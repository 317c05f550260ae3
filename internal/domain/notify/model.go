package notify

import "time"

// Kind define el tipo de notificación.
// @Enum success, error, warning, info
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

// Style es el par fijo color/ícono de cada Kind.
type Style struct {
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

var styles = map[Kind]Style{
	KindSuccess: {Color: "#28a745", Icon: "fa-check-circle"},
	KindError:   {Color: "#dc3545", Icon: "fa-exclamation-circle"},
	KindWarning: {Color: "#ffc107", Icon: "fa-exclamation-triangle"},
	KindInfo:    {Color: "#17a2b8", Icon: "fa-info-circle"},
}

// Normalize mapea kinds desconocidos a info.
func Normalize(k Kind) Kind {
	if _, ok := styles[k]; ok {
		return k
	}
	return KindInfo
}

func StyleFor(k Kind) Style {
	return styles[Normalize(k)]
}

// Notification es el toast visible.
type Notification struct {
	ID      string    `json:"id"`
	Kind    Kind      `json:"kind"`
	Message string    `json:"message"`
	Style   Style     `json:"style"`
	ShownAt time.Time `json:"shownAt"`
	// ExpiresAt incluye la transición de salida.
	ExpiresAt time.Time `json:"expiresAt"`
}
