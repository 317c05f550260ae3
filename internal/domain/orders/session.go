package orders

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"petshop-orders/internal/domain/notify"
)

// Session es el dueño del estado de una visita a la página: la selección,
// el pedido en el resumen, las anotaciones de error y el toast visible.
// Todo cambio pasa por el mutex, un evento a la vez.
type Session struct {
	ID string

	mu          sync.Mutex
	selection   *Selection
	current     *Order
	annotations FieldErrors
	notices     *notify.Presenter
	lastSeen    time.Time
}

func newSession(id string, notifyTTL time.Duration, now func() time.Time) *Session {
	return &Session{
		ID:          id,
		annotations: FieldErrors{},
		notices:     notify.NewPresenter(notifyTTL, now),
		lastSeen:    now(),
	}
}

func (s *Session) Selection() (Selection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selection == nil {
		return Selection{}, false
	}
	return *s.selection, true
}

func (s *Session) CurrentOrder() (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Order{}, false
	}
	return *s.current, true
}

func (s *Session) FieldErrors() FieldErrors {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.annotations.clone()
}

// Notification lee el toast bajo el lock de la sesión: cada evento cambia
// estado y toast juntos.
func (s *Session) Notification() (notify.Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notices.Current()
}

// Sessions registra sesiones por id y descarta las inactivas. El barrido
// corre a lo sumo una vez por sweepEvery; una sesión vencida que todavía no
// se barrió se reemplaza al pedirla.
type Sessions struct {
	mu         sync.Mutex
	byID       map[string]*Session
	ttl        time.Duration
	notifyTTL  time.Duration
	now        func() time.Time
	sweepEvery time.Duration
	lastSweep  time.Time
}

const maxSweepInterval = time.Minute

func NewSessions(ttl, notifyTTL time.Duration, now func() time.Time) *Sessions {
	if now == nil {
		now = time.Now
	}
	every := ttl
	if every > maxSweepInterval {
		every = maxSweepInterval
	}
	return &Sessions{
		byID:       make(map[string]*Session),
		ttl:        ttl,
		notifyTTL:  notifyTTL,
		now:        now,
		sweepEvery: every,
		lastSweep:  now(),
	}
}

// ValidSessionID acepta solo UUIDs.
func ValidSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Get devuelve la sesión id, creándola si no existe. Un id vacío o que no es
// un UUID se reemplaza por uno nuevo; el id efectivo queda en Session.ID.
func (r *Sessions) Get(id string) *Session {
	id = strings.TrimSpace(id)
	if !ValidSessionID(id) {
		id = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if r.ttl > 0 && now.Sub(r.lastSweep) >= r.sweepEvery {
		r.sweepLocked(now)
		r.lastSweep = now
	}

	s, ok := r.byID[id]
	if !ok || r.expired(s, now) {
		s = newSession(id, r.notifyTTL, r.now)
		r.byID[id] = s
	}
	s.lastSeen = now
	return s
}

func (r *Sessions) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID)
}

func (r *Sessions) expired(s *Session, now time.Time) bool {
	return r.ttl > 0 && now.Sub(s.lastSeen) > r.ttl
}

func (r *Sessions) sweepLocked(now time.Time) {
	for id, s := range r.byID {
		if r.expired(s, now) {
			delete(r.byID, id)
		}
	}
}
