package orders

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"
)

// NotInformed reemplaza a los campos opcionales vacíos, igual en el resumen
// y en el mensaje.
const NotInformed = "Não informado"

const (
	displayDateLayout      = "02/01/2006"
	displayTimestampLayout = "02/01/2006, 15:04:05"
)

// view es la proyección de un Order que comparten el resumen y el mensaje.
type view struct {
	PetName      string
	PetType      string
	PetBreed     string
	PetAge       string
	ServiceName  string
	Price        string
	OwnerName    string
	Phone        string
	Email        string
	Date         string
	Time         string
	Observations string
	Timestamp    string
}

func newView(o Order) view {
	return view{
		PetName:      o.Pet.Name,
		PetType:      o.Pet.Type,
		PetBreed:     orNotInformed(o.Pet.Breed),
		PetAge:       orNotInformed(o.Pet.Age),
		ServiceName:  o.Service.Name,
		Price:        FormatPrice(o.Service.Price),
		OwnerName:    o.Owner.Name,
		Phone:        o.Owner.Phone,
		Email:        orNotInformed(o.Owner.Email),
		Date:         FormatDate(o.Schedule.Date),
		Time:         o.Schedule.Time,
		Observations: strings.TrimSpace(o.Observations),
		Timestamp:    o.Timestamp.Format(displayTimestampLayout),
	}
}

func orNotInformed(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotInformed
	}
	return s
}

// FormatPrice siempre con dos decimales: "R$ 50.00".
func FormatPrice(p float64) string {
	return fmt.Sprintf("R$ %.2f", p)
}

// FormatDate convierte YYYY-MM-DD a dd/mm/yyyy como fecha civil (sin zona).
// Si no se puede interpretar, devuelve el valor tal cual.
func FormatDate(s string) string {
	d, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return s
	}
	return d.Format(displayDateLayout)
}

var summaryTmpl = template.Must(template.New("summary").Parse(`<div class="order-summary">
    <h3>Dados do Pet</h3>
    <p><strong>Nome:</strong> {{.PetName}}</p>
    <p><strong>Tipo:</strong> {{.PetType}}</p>
    <p><strong>Raça:</strong> {{.PetBreed}}</p>
    <p><strong>Idade:</strong> {{.PetAge}}</p>

    <h3>Serviço</h3>
    <p><strong>Serviço:</strong> {{.ServiceName}}</p>
    <p><strong>Preço:</strong> {{.Price}}</p>

    <h3>Dados do Responsável</h3>
    <p><strong>Nome:</strong> {{.OwnerName}}</p>
    <p><strong>Telefone:</strong> {{.Phone}}</p>
    <p><strong>E-mail:</strong> {{.Email}}</p>

    <h3>Agendamento</h3>
    <p><strong>Data:</strong> {{.Date}}</p>
    <p><strong>Horário:</strong> {{.Time}}</p>
{{if .Observations}}
    <h3>Observações</h3>
    <p>{{.Observations}}</p>
{{end}}
    <div class="summary-total">
        <h3>Total: {{.Price}}</h3>
    </div>
</div>
`))

// RenderSummary arma el fragmento HTML del modal de resumen.
func RenderSummary(o Order) (string, error) {
	var buf bytes.Buffer
	if err := summaryTmpl.Execute(&buf, newView(o)); err != nil {
		return "", fmt.Errorf("render summary: %w", err)
	}
	return buf.String(), nil
}

// FormatMessage arma el texto que se envía por WhatsApp.
func FormatMessage(o Order) string {
	v := newView(o)
	var b strings.Builder

	b.WriteString("🐾 *NOVO PEDIDO - PETSHOP PREMIUM* 🐾\n\n")

	b.WriteString("*DADOS DO PET:*\n")
	fmt.Fprintf(&b, "• Nome: %s\n", v.PetName)
	fmt.Fprintf(&b, "• Tipo: %s\n", v.PetType)
	fmt.Fprintf(&b, "• Raça: %s\n", v.PetBreed)
	fmt.Fprintf(&b, "• Idade: %s\n\n", v.PetAge)

	b.WriteString("*SERVIÇO SOLICITADO:*\n")
	fmt.Fprintf(&b, "• %s\n", v.ServiceName)
	fmt.Fprintf(&b, "• Preço: %s\n\n", v.Price)

	b.WriteString("*DADOS DO RESPONSÁVEL:*\n")
	fmt.Fprintf(&b, "• Nome: %s\n", v.OwnerName)
	fmt.Fprintf(&b, "• Telefone: %s\n", v.Phone)
	fmt.Fprintf(&b, "• E-mail: %s\n\n", v.Email)

	b.WriteString("*AGENDAMENTO:*\n")
	fmt.Fprintf(&b, "• Data: %s\n", v.Date)
	fmt.Fprintf(&b, "• Horário: %s\n\n", v.Time)

	if v.Observations != "" {
		fmt.Fprintf(&b, "*OBSERVAÇÕES:*\n%s\n\n", v.Observations)
	}

	fmt.Fprintf(&b, "*TOTAL: %s*\n\n", v.Price)
	fmt.Fprintf(&b, "📅 *Data do Pedido:* %s\n\n", v.Timestamp)
	b.WriteString("Obrigado por escolher nossos serviços! 🐕🐱")

	return b.String()
}
