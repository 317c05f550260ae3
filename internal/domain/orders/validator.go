package orders

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Nombres de campo del formulario de pedido.
const (
	FieldPetName       = "petName"
	FieldPetType       = "petType"
	FieldPetBreed      = "petBreed"
	FieldPetAge        = "petAge"
	FieldOwnerName     = "ownerName"
	FieldPhone         = "phone"
	FieldEmail         = "email"
	FieldPreferredDate = "preferredDate"
	FieldPreferredTime = "preferredTime"
	FieldObservations  = "observations"
)

// FieldKind equivale al tipo de input HTML.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindSelect   FieldKind = "select"
	KindTextarea FieldKind = "textarea"
	KindEmail    FieldKind = "email"
	KindTel      FieldKind = "tel"
	KindDate     FieldKind = "date"
	KindTime     FieldKind = "time"
)

type FieldRule struct {
	Name     string
	Kind     FieldKind
	Required bool
}

// FormFields describe el formulario de pedido, en orden de pantalla.
var FormFields = []FieldRule{
	{Name: FieldPetName, Kind: KindText, Required: true},
	{Name: FieldPetType, Kind: KindSelect, Required: true},
	{Name: FieldPetBreed, Kind: KindText},
	{Name: FieldPetAge, Kind: KindText},
	{Name: FieldOwnerName, Kind: KindText, Required: true},
	{Name: FieldPhone, Kind: KindTel, Required: true},
	{Name: FieldEmail, Kind: KindEmail},
	{Name: FieldPreferredDate, Kind: KindDate, Required: true},
	{Name: FieldPreferredTime, Kind: KindTime, Required: true},
	{Name: FieldObservations, Kind: KindTextarea},
}

// Mensajes visibles (pt-BR, como en la página).
const (
	MsgRequired      = "Este campo é obrigatório"
	MsgInvalidEmail  = "E-mail inválido"
	MsgInvalidPhone  = "Telefone inválido"
	MsgInvalidDate   = "Data inválida"
	MsgDateOutWindow = "Data fora do período permitido"
	MsgInvalidTime   = "Horário inválido"
)

const emailPart = `[^\s\v\p{Zs}\x{FEFF}\x{2028}\x{2029}@]+`

const (
	dateLayout     = "2006-01-02"
	timeLayout     = "15:04"
	minPhoneLength = 10
)

var (
	// \s en RE2 es solo ASCII; el conjunto incluye el resto de los espacios
	// Unicode (\v, NBSP, U+2000..U+200A, U+FEFF, separadores de línea).
	emailRe = regexp.MustCompile(`^` + emailPart + `@` + emailPart + `\.` + emailPart + `$`)
	phoneRe = regexp.MustCompile(`^[\d\s()\-+]+$`)
)

var kindTags = map[FieldKind]string{
	KindEmail: "petshop_email",
	KindTel:   "petshop_phone",
	KindDate:  "petshop_date,petshop_date_window",
	KindTime:  "petshop_time",
}

var tagMessages = map[string]string{
	"required":            MsgRequired,
	"petshop_email":       MsgInvalidEmail,
	"petshop_phone":       MsgInvalidPhone,
	"petshop_date":        MsgInvalidDate,
	"petshop_date_window": MsgDateOutWindow,
	"petshop_time":        MsgInvalidTime,
}

type ValidatorOptions struct {
	// WindowMonths limita la fecha preferida a [hoy, hoy+N meses]. 0 = sin límite.
	WindowMonths int
	Location     *time.Location
	Now          func() time.Time
}

// Validator aplica las reglas por campo. Las reglas son predicados puros
// sobre el valor actual; no hay validación cruzada entre campos.
type Validator struct {
	v      *validator.Validate
	rules  map[string]FieldRule
	window int
	loc    *time.Location
	now    func() time.Time
}

func NewValidator(opts ValidatorOptions) *Validator {
	val := &Validator{
		v:      validator.New(),
		rules:  make(map[string]FieldRule, len(FormFields)),
		window: opts.WindowMonths,
		loc:    opts.Location,
		now:    opts.Now,
	}
	if val.loc == nil {
		val.loc = time.UTC
	}
	if val.now == nil {
		val.now = time.Now
	}
	for _, r := range FormFields {
		val.rules[r.Name] = r
	}

	_ = val.v.RegisterValidation("petshop_email", func(fl validator.FieldLevel) bool {
		return emailRe.MatchString(fl.Field().String())
	})
	_ = val.v.RegisterValidation("petshop_phone", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return phoneRe.MatchString(s) && len(s) >= minPhoneLength
	})
	_ = val.v.RegisterValidation("petshop_date", func(fl validator.FieldLevel) bool {
		_, err := time.ParseInLocation(dateLayout, fl.Field().String(), val.loc)
		return err == nil
	})
	_ = val.v.RegisterValidation("petshop_date_window", val.inWindow)
	_ = val.v.RegisterValidation("petshop_time", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(timeLayout, fl.Field().String())
		return err == nil
	})

	return val
}

// Check valida un campo. ok=false trae el mensaje a mostrar.
// Campos desconocidos no tienen reglas.
func (v *Validator) Check(field, value string) (string, bool) {
	rule, known := v.rules[field]
	if !known {
		return "", true
	}

	value = strings.TrimSpace(value)
	if rule.Required {
		if err := v.v.Var(value, "required"); err != nil {
			return messageFor(err), false
		}
	}
	// Reglas de forma solo con valor presente.
	if value == "" {
		return "", true
	}

	tag, ok := kindTags[rule.Kind]
	if !ok {
		return "", true
	}
	if err := v.v.Var(value, tag); err != nil {
		return messageFor(err), false
	}
	return "", true
}

// CheckForm valida todos los campos requeridos, sin cortar en el primer error.
func (v *Validator) CheckForm(f Form) FieldErrors {
	errs := FieldErrors{}
	for _, r := range FormFields {
		if !r.Required {
			continue
		}
		value, _ := f.Value(r.Name)
		if msg, ok := v.Check(r.Name, value); !ok {
			errs[r.Name] = msg
		}
	}
	return errs
}

func (v *Validator) inWindow(fl validator.FieldLevel) bool {
	if v.window <= 0 {
		return true
	}
	d, err := time.ParseInLocation(dateLayout, fl.Field().String(), v.loc)
	if err != nil {
		return false
	}
	now := v.now().In(v.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, v.loc)
	max := today.AddDate(0, v.window, 0)
	return !d.Before(today) && !d.After(max)
}

func messageFor(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := tagMessages[verrs[0].Tag()]; ok {
			return msg
		}
	}
	return MsgRequired
}
