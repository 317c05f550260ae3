package orders

import "time"

// Selection es el servicio elegido en la sesión (a lo sumo uno).
type Selection struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Pet struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Breed string `json:"breed,omitempty"`
	Age   string `json:"age,omitempty"`
}

type Owner struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

type Schedule struct {
	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:MM
}

// Order es el registro armado en cada submit; se descarta al cerrar el resumen.
type Order struct {
	Pet          Pet       `json:"pet"`
	Service      Selection `json:"service"`
	Owner        Owner     `json:"owner"`
	Schedule     Schedule  `json:"schedule"`
	Observations string    `json:"observations,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// Status de un pedido cacheado. Hoy solo existe "pending".
type Status string

const (
	StatusPending Status = "pending"
)

// CachedOrder es un Order guardado en el caché local.
type CachedOrder struct {
	Order
	ID     int64  `json:"id"` // ms desde epoch al crear
	Status Status `json:"status"`
}

// Form son los valores enviados por el formulario de pedido.
type Form struct {
	PetName       string `json:"petName"`
	PetType       string `json:"petType"`
	PetBreed      string `json:"petBreed"`
	PetAge        string `json:"petAge"`
	OwnerName     string `json:"ownerName"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	Observations  string `json:"observations"`
}

// Value devuelve el valor de un campo por su nombre de formulario.
func (f Form) Value(field string) (string, bool) {
	switch field {
	case FieldPetName:
		return f.PetName, true
	case FieldPetType:
		return f.PetType, true
	case FieldPetBreed:
		return f.PetBreed, true
	case FieldPetAge:
		return f.PetAge, true
	case FieldOwnerName:
		return f.OwnerName, true
	case FieldPhone:
		return f.Phone, true
	case FieldEmail:
		return f.Email, true
	case FieldPreferredDate:
		return f.PreferredDate, true
	case FieldPreferredTime:
		return f.PreferredTime, true
	case FieldObservations:
		return f.Observations, true
	default:
		return "", false
	}
}

// FieldErrors asocia campo -> mensaje visible (a lo sumo uno por campo).
type FieldErrors map[string]string

func (fe FieldErrors) clone() FieldErrors {
	out := make(FieldErrors, len(fe))
	for k, v := range fe {
		out[k] = v
	}
	return out
}
