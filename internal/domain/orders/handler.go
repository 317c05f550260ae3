package orders

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"petshop-orders/internal/domain/notify"
	"petshop-orders/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service, sessions *Sessions) {
	r.Route("/session", func(sr chi.Router) {
		sr.Post("/selection", selectServiceHandler(svc, sessions))
		sr.Post("/reset", resetHandler(svc, sessions))

		sr.Get("/fields/errors", fieldErrorsHandler(sessions))
		sr.Post("/fields/{field}/validate", validateFieldHandler(svc, sessions))
		sr.Post("/fields/{field}/input", fieldInputHandler(svc, sessions))

		sr.Post("/order", submitOrderHandler(svc, sessions))
		sr.Get("/order/summary", summaryHandler(svc, sessions))
		sr.Delete("/order", closeSummaryHandler(svc, sessions))
		sr.Post("/order/confirm", confirmOrderHandler(svc, sessions))

		sr.Get("/notification", notificationHandler(sessions))
	})

	r.Get("/contact-link", contactLinkHandler(svc))
	r.Get("/orders", savedOrdersHandler(svc))
}

type selectServiceRequest struct {
	ServiceID string `json:"serviceId"`
}

type selectionResponse struct {
	Selection    Selection            `json:"selection"`
	Notification *notify.Notification `json:"notification,omitempty"`
}

type validateFieldRequest struct {
	Value string `json:"value"`
}

type fieldResponse struct {
	Field string `json:"field"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

type submitOrderResponse struct {
	Order        Order                `json:"order"`
	SummaryHTML  string               `json:"summaryHtml"`
	Notification *notify.Notification `json:"notification,omitempty"`
}

type handoffResponse struct {
	URL          string               `json:"url"`
	Message      string               `json:"message"`
	Notification *notify.Notification `json:"notification,omitempty"`
}

// errorResponse acompaña los rechazos de dominio con el toast que se mostró.
type errorResponse struct {
	Error        string               `json:"error"`
	Fields       FieldErrors          `json:"fields,omitempty"`
	Notification *notify.Notification `json:"notification,omitempty"`
}

// selectServiceHandler godoc
// @Summary Seleccionar servicio
// @Description Reemplaza la selección de la sesión por el servicio indicado (click en la tarjeta). Muestra un toast de éxito.
// @Tags session
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "ID de sesión (alternativa a la cookie petshop_session)"
// @Param payload body selectServiceRequest true "Servicio a seleccionar"
// @Success 200 {object} selectionResponse
// @Failure 400 {string} string "invalid json"
// @Failure 404 {object} errorResponse
// @Router /session/selection [post]
func selectServiceHandler(svc *Service, sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessions.Get(middleware.GetSessionID(r.Context()))

		var req selectServiceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sel, err := svc.SelectService(r.Context(), sess, req.ServiceID)
		if err != nil {
			if errors.Is(err, ErrUnknownService) {
				writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, selectionResponse{
			Selection:    sel,
			Notification: currentNotice(sess),
		})
	}
}

// resetHandler godoc
// @Summary Limpiar formulario
// @Description Limpia la selección, el pedido actual y las anotaciones de error de la sesión.
// @Tags session
// @Param X-Session-ID header string false "ID de sesión"
// @Success 204
// @Router /session/reset [post]
func resetHandler(svc *Service, sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Reset(sessions.Get(middleware.GetSessionID(r.Context())))
		w.WriteHeader(http.StatusNoContent)
	}
}

// fieldErrorsHandler godoc
// @Summary Anotaciones de error
// @Description Devuelve las anotaciones de error visibles (campo -> mensaje).
// @Tags session
// @Produce json
// @Param X-Session-ID header string false "ID de sesión"
// @Success 200 {object} FieldErrors
// @Router /session/fields/errors [get]
func fieldErrorsHandler(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessions.Get(middleware.GetSessionID(r.Context()))
		writeJSON(w, http.StatusOK, sess.FieldErrors())
	}
}

// validateFieldHandler godoc
// @Summary Validar campo (blur)
// @Description Valida un campo del formulario y anota o limpia su error.
// @Tags session
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "ID de sesión"
// @Param field path string true "Nombre del campo (petName, phone, email, ...)"
// @Param payload body validateFieldRequest true "Valor actual del campo"
// @Success 200 {object} fieldResponse
// @Failure 400 {string} string "invalid json"
// @Failure 404 {object} errorResponse
// @Router /session/fields/{field}/validate [post]
func validateFieldHandler(svc *Service, sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessions.Get(middleware.GetSessionID(r.Context()))
		field := chi.URLParam(r, "field")

		var req validateFieldRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		msg, ok, err := svc.ValidateField(sess, field, req.Value)
		if err != nil {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, fieldResponse{Field: field, Valid: ok, Error: msg})
	}
}

// fieldInputHandler godoc
// @Summary Input en campo
// @Description Quita la anotación de error del campo (el usuario está editando).
// @Tags session
// @Param X-Session-ID header string false "ID de sesión"
// @Param field path string true "Nombre del campo"
// @Success 204
// @Failure 404 {object} errorResponse
// @Router /session/fields/{field}/input [post]
func fieldInputHandler(svc *Service, sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessions.Get(middleware.GetSessionID(r.Context()))
		if err := svc.ClearFieldError(sess, chi.URLParam(r, "field")); err != nil {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// submitOrderHandler godoc
// @Summary Enviar formulario de pedido
// @Description Valida todos los campos requeridos y exige un servicio seleccionado. Si ambos se cumplen, arma el pedido y devuelve el resumen HTML. Acepta JSON o application/x-www-form-urlencoded.
// @Tags session
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param X-Session-ID header string false "ID de sesión"
// @Param payload body Form true "Valores del formulario"
// @Success 200 {object} submitOrderResponse
// @Failure 400 {string} string "invalid body"
// @Failure 409 {object} errorResponse "sin servicio seleccionado"
// @Failure 422 {object} errorResponse "campos inválidos"
// @Router /session/order [post]
func submitOrderHandler(svc *Service, sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessions.Get(middleware.GetSessionID(r.Context()))

		f, err := decodeForm(r)
		if err != nil {
			http.Error(w, "invalid body", http.StatusBadRequest)
			return
		}

		res, err := svc.Submit(r.Context(), sess, f)
		if err != nil {
			var verr *ValidationError
			switch {
			case errors.As(err, &verr):
				writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
					Error:        ErrInvalidForm.Error(),
					Fields:       verr.Fields,
					Notification: currentNotice(sess),
				})
			case errors.Is(err, ErrNoSelection):
				writeJSON(w, http.StatusConflict, errorResponse{
					Error:        err.Error(),
					Notification: currentNotice(sess),
				})
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, submitOrderResponse{
			Order:        res.Order,
			SummaryHTML:  res.SummaryHTML,
			Notification: currentNotice(sess),
		})
	}
}

// summaryHandler godoc
// @Summary Resumen del pedido
// @Description Devuelve el fragmento HTML del modal de resumen del pedido actual.
// @Tags session
// @Produce html
// @Param X-Session-ID header string false "ID de sesión"
// @Success 200 {string} string "fragmento HTML"
// @Failure 404 {string} string "no order"
// @Router /session/order/summary [get]
func summaryHandler(svc *Service, sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessions.Get(middleware.GetSessionID(r.Context()))

		html, err := svc.Summary(sess)
		if err != nil {
			if errors.Is(err, ErrNoOrder) {
				http.Error(w, "no order", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(html))
	}
}

// closeSummaryHandler godoc
// @Summary Cerrar resumen
// @Description Cierra el modal y descarta el pedido actual.
// @Tags session
// @Param X-Session-ID header string false "ID de sesión"
// @Success 204
// @Router /session/order [delete]
func closeSummaryHandler(svc *Service, sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.CloseSummary(sessions.Get(middleware.GetSessionID(r.Context())))
		w.WriteHeader(http.StatusNoContent)
	}
}

// confirmOrderHandler godoc
// @Summary Confirmar y enviar por WhatsApp
// @Description Arma el mensaje del pedido actual y el deep link de WhatsApp que el cliente debe abrir. Cierra el resumen y guarda el pedido en el caché local.
// @Tags session
// @Produce json
// @Param X-Session-ID header string false "ID de sesión"
// @Success 200 {object} handoffResponse
// @Failure 409 {object} errorResponse "sin pedido"
// @Router /session/order/confirm [post]
func confirmOrderHandler(svc *Service, sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessions.Get(middleware.GetSessionID(r.Context()))

		h, err := svc.Confirm(r.Context(), sess)
		if err != nil {
			if errors.Is(err, ErrNoOrder) {
				writeJSON(w, http.StatusConflict, errorResponse{
					Error:        err.Error(),
					Notification: currentNotice(sess),
				})
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, handoffResponse{
			URL:          h.URL,
			Message:      h.Message,
			Notification: currentNotice(sess),
		})
	}
}

// notificationHandler godoc
// @Summary Notificación visible
// @Description Devuelve el toast visible de la sesión; 204 si no hay ninguno.
// @Tags session
// @Produce json
// @Param X-Session-ID header string false "ID de sesión"
// @Success 200 {object} notify.Notification
// @Success 204
// @Router /session/notification [get]
func notificationHandler(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessions.Get(middleware.GetSessionID(r.Context()))
		n, ok := sess.Notification()
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, n)
	}
}

// contactLinkHandler godoc
// @Summary Link de contacto
// @Description Deep link de WhatsApp con el saludo del botón flotante.
// @Tags contact
// @Produce json
// @Success 200 {object} Handoff
// @Router /contact-link [get]
func contactLinkHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, svc.ContactLink())
	}
}

// savedOrdersHandler godoc
// @Summary Pedidos guardados
// @Description Lista los pedidos confirmados del caché local, en orden de creación.
// @Tags orders
// @Produce json
// @Success 200 {array} CachedOrder
// @Failure 500 {string} string "internal error"
// @Router /orders [get]
func savedOrdersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.SavedOrders(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func decodeForm(r *http.Request) (Form, error) {
	ct := strings.ToLower(r.Header.Get("Content-Type"))
	if strings.HasPrefix(ct, "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			return Form{}, err
		}
		return Form{
			PetName:       r.PostForm.Get(FieldPetName),
			PetType:       r.PostForm.Get(FieldPetType),
			PetBreed:      r.PostForm.Get(FieldPetBreed),
			PetAge:        r.PostForm.Get(FieldPetAge),
			OwnerName:     r.PostForm.Get(FieldOwnerName),
			Phone:         r.PostForm.Get(FieldPhone),
			Email:         r.PostForm.Get(FieldEmail),
			PreferredDate: r.PostForm.Get(FieldPreferredDate),
			PreferredTime: r.PostForm.Get(FieldPreferredTime),
			Observations:  r.PostForm.Get(FieldObservations),
		}, nil
	}

	var f Form
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		return Form{}, err
	}
	return f, nil
}

func currentNotice(sess *Session) *notify.Notification {
	n, ok := sess.Notification()
	if !ok {
		return nil
	}
	return &n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
