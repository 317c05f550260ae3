package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"petshop-orders/internal/domain/catalog"
	"petshop-orders/internal/domain/notify"
	"petshop-orders/internal/platform/logger"
	"petshop-orders/internal/platform/metrics"
)

// Textos de las notificaciones.
const (
	NoticeFixErrors   = "Por favor, corrija os erros no formulário"
	NoticeNoSelection = "Por favor, selecione um serviço primeiro"
	NoticeNoOrder     = "Nenhum pedido para enviar"
	NoticeRedirecting = "Redirecionando para o WhatsApp..."
)

type Options struct {
	Catalog   *catalog.Catalog
	Validator *Validator
	Links     LinkBuilder
	Cache     Cache // opcional
	Metrics   *metrics.OrderMetrics
	Logger    logger.Logger
	Location  *time.Location
}

// Service contiene las dependencias compartidas; el estado vive en Session.
type Service struct {
	catalog   *catalog.Catalog
	validator *Validator
	links     LinkBuilder
	cache     Cache
	metrics   *metrics.OrderMetrics
	log       logger.Logger
	loc       *time.Location
	now       func() time.Time
}

func NewService(opts Options) *Service {
	s := &Service{
		catalog:   opts.Catalog,
		validator: opts.Validator,
		links:     opts.Links,
		cache:     opts.Cache,
		metrics:   opts.Metrics,
		log:       opts.Logger,
		loc:       opts.Location,
		now:       time.Now,
	}
	if s.catalog == nil {
		s.catalog = catalog.Default()
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.validator == nil {
		s.validator = NewValidator(ValidatorOptions{Location: s.loc})
	}
	if s.log == nil {
		s.log = logger.NewNop()
	}
	return s
}

// SubmitResult es lo que muestra el modal de resumen.
type SubmitResult struct {
	Order       Order
	SummaryHTML string
}

// SelectService reemplaza la selección actual por el servicio id del catálogo.
func (s *Service) SelectService(ctx context.Context, sess *Session, id string) (Selection, error) {
	svc, err := s.catalog.Get(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return Selection{}, ErrUnknownService
		}
		return Selection{}, err
	}

	sel := Selection{ID: svc.ID, Name: svc.Name, Price: svc.Price}

	sess.mu.Lock()
	sess.selection = &sel
	sess.notices.Notify(fmt.Sprintf("Serviço \"%s\" selecionado!", sel.Name), notify.KindSuccess)
	sess.mu.Unlock()

	s.metrics.ObserveSelection(sel.ID)
	s.log.Debug("service selected", map[string]any{"session_id": sess.ID, "service_id": sel.ID})

	return sel, nil
}

// ValidateField es el "blur" de un campo: valida y anota o limpia el error.
func (s *Service) ValidateField(sess *Session, field, value string) (string, bool, error) {
	if _, ok := (Form{}).Value(field); !ok {
		return "", false, ErrUnknownField
	}

	msg, ok := s.validator.Check(field, value)

	sess.mu.Lock()
	if ok {
		delete(sess.annotations, field)
	} else {
		sess.annotations[field] = msg
	}
	sess.mu.Unlock()

	if !ok {
		s.metrics.ObserveFieldFailure(field)
	}
	return msg, ok, nil
}

// ClearFieldError es el "input" de un campo: quita la anotación.
func (s *Service) ClearFieldError(sess *Session, field string) error {
	if _, ok := (Form{}).Value(field); !ok {
		return ErrUnknownField
	}
	sess.mu.Lock()
	delete(sess.annotations, field)
	sess.mu.Unlock()
	return nil
}

// Submit valida el formulario completo y, con selección presente, arma el
// pedido y su resumen. Formulario válido y selección son condiciones
// independientes; se chequean en ese orden.
func (s *Service) Submit(ctx context.Context, sess *Session, f Form) (SubmitResult, error) {
	errs := s.validator.CheckForm(f)

	sess.mu.Lock()
	// Cada intento arma un pedido nuevo; uno rechazado no deja el anterior.
	sess.current = nil
	for _, r := range FormFields {
		if !r.Required {
			continue
		}
		if msg, bad := errs[r.Name]; bad {
			sess.annotations[r.Name] = msg
		} else {
			delete(sess.annotations, r.Name)
		}
	}

	if len(errs) > 0 {
		sess.notices.Notify(NoticeFixErrors, notify.KindError)
		sess.mu.Unlock()
		for field := range errs {
			s.metrics.ObserveFieldFailure(field)
		}
		s.metrics.ObserveSubmission(metrics.OutcomeInvalid)
		return SubmitResult{}, &ValidationError{Fields: errs.clone()}
	}

	o, err := Assemble(f, sess.selection, s.now().In(s.loc))
	if err != nil {
		sess.notices.Notify(NoticeNoSelection, notify.KindWarning)
		sess.mu.Unlock()
		s.metrics.ObserveSubmission(metrics.OutcomeNoSelection)
		return SubmitResult{}, err
	}

	html, err := RenderSummary(o)
	if err != nil {
		sess.mu.Unlock()
		return SubmitResult{}, err
	}
	sess.current = &o
	sess.mu.Unlock()

	s.metrics.ObserveSubmission(metrics.OutcomeAssembled)
	s.log.Info("order assembled", map[string]any{
		"session_id": sess.ID,
		"service_id": o.Service.ID,
	})

	return SubmitResult{Order: o, SummaryHTML: html}, nil
}

// Summary vuelve a renderizar el resumen del pedido actual.
func (s *Service) Summary(sess *Session) (string, error) {
	o, ok := sess.CurrentOrder()
	if !ok {
		return "", ErrNoOrder
	}
	return RenderSummary(o)
}

// CloseSummary descarta el pedido actual (cerrar el modal).
func (s *Service) CloseSummary(sess *Session) {
	sess.mu.Lock()
	sess.current = nil
	sess.mu.Unlock()
}

// Confirm arma el mensaje y el link de handoff, cierra el resumen y guarda
// el pedido en el caché. Un fallo del caché no impide el handoff.
func (s *Service) Confirm(ctx context.Context, sess *Session) (Handoff, error) {
	sess.mu.Lock()
	if sess.current == nil {
		sess.notices.Notify(NoticeNoOrder, notify.KindError)
		sess.mu.Unlock()
		return Handoff{}, ErrNoOrder
	}
	o := *sess.current
	sess.current = nil
	sess.notices.Notify(NoticeRedirecting, notify.KindSuccess)
	sess.mu.Unlock()

	h := s.links.Build(FormatMessage(o))

	if s.cache != nil {
		cached := CachedOrder{Order: o, ID: s.now().UnixMilli(), Status: StatusPending}
		if err := s.cache.Append(ctx, cached); err != nil {
			s.metrics.ObserveCacheAppendFailure()
			s.log.Warn("order cache append failed", map[string]any{
				"session_id": sess.ID,
				"error":      err,
			})
		}
	}

	s.metrics.ObserveHandoff()
	s.log.Info("order handed off", map[string]any{"session_id": sess.ID, "service_id": o.Service.ID})

	return h, nil
}

// Reset limpia el formulario: selección, pedido y anotaciones.
func (s *Service) Reset(sess *Session) {
	sess.mu.Lock()
	sess.selection = nil
	sess.current = nil
	sess.annotations = FieldErrors{}
	sess.mu.Unlock()
}

// ContactLink es el link del botón flotante.
func (s *Service) ContactLink() Handoff {
	return s.links.Build(GreetingMessage)
}

// SavedOrders lista el caché local; sin caché, lista vacía.
func (s *Service) SavedOrders(ctx context.Context) ([]CachedOrder, error) {
	if s.cache == nil {
		return []CachedOrder{}, nil
	}
	return s.cache.List(ctx)
}
