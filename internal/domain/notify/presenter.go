package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultTTL = 4 * time.Second
	// ExitTransition es la animación de salida antes de quitar el toast.
	ExitTransition = 300 * time.Millisecond
)

// Presenter mantiene a lo sumo una notificación visible. Mostrar una nueva
// reemplaza la anterior; el auto-dismiss se evalúa contra el reloj.
type Presenter struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	current *Notification
}

func NewPresenter(ttl time.Duration, now func() time.Time) *Presenter {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Presenter{ttl: ttl, now: now}
}

func (p *Presenter) Notify(message string, kind Kind) Notification {
	kind = Normalize(kind)
	shown := p.now()

	n := Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		Style:     StyleFor(kind),
		ShownAt:   shown,
		ExpiresAt: shown.Add(p.ttl + ExitTransition),
	}

	p.mu.Lock()
	p.current = &n
	p.mu.Unlock()

	return n
}

// Current devuelve la notificación visible, si no expiró.
func (p *Presenter) Current() (Notification, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == nil {
		return Notification{}, false
	}
	if !p.now().Before(p.current.ExpiresAt) {
		p.current = nil
		return Notification{}, false
	}
	return *p.current, true
}

// Visible tiene 0 o 1 elementos.
func (p *Presenter) Visible() []Notification {
	if n, ok := p.Current(); ok {
		return []Notification{n}
	}
	return nil
}
