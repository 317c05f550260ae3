package orders

import (
	"strings"
	"time"
)

// Assemble arma el Order con los valores del formulario y la selección actual.
// No valida el formulario: eso es responsabilidad del Validator.
func Assemble(f Form, sel *Selection, now time.Time) (Order, error) {
	if sel == nil {
		return Order{}, ErrNoSelection
	}

	return Order{
		Pet: Pet{
			Name:  strings.TrimSpace(f.PetName),
			Type:  strings.TrimSpace(f.PetType),
			Breed: strings.TrimSpace(f.PetBreed),
			Age:   strings.TrimSpace(f.PetAge),
		},
		Service: *sel,
		Owner: Owner{
			Name:  strings.TrimSpace(f.OwnerName),
			Phone: strings.TrimSpace(f.Phone),
			Email: strings.TrimSpace(f.Email),
		},
		Schedule: Schedule{
			Date: strings.TrimSpace(f.PreferredDate),
			Time: strings.TrimSpace(f.PreferredTime),
		},
		Observations: strings.TrimSpace(f.Observations),
		Timestamp:    now,
	}, nil
}
