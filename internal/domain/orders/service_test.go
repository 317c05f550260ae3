package orders

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"petshop-orders/internal/domain/notify"
	"petshop-orders/internal/platform/logger"
	"petshop-orders/internal/platform/metrics"
)

// -------------------------
// Test doubles
// -------------------------

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

type testCache struct {
	mu    sync.Mutex
	items []CachedOrder
	err   error
}

func (c *testCache) Append(_ context.Context, o CachedOrder) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.items = append(c.items, o)
	return nil
}

func (c *testCache) List(_ context.Context) ([]CachedOrder, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	return append([]CachedOrder(nil), c.items...), nil
}

type fixture struct {
	svc      *Service
	sessions *Sessions
	clock    *fakeClock
	cache    *testCache
	logs     *observer.ObservedLogs
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	clock := &fakeClock{t: time.Date(2025, 1, 5, 12, 30, 0, 0, time.UTC)}
	cache := &testCache{}
	core, logs := observer.New(zapcore.DebugLevel)

	svc := NewService(Options{
		Validator: NewValidator(ValidatorOptions{Location: time.UTC, Now: clock.Now}),
		Links:     LinkBuilder{BaseURL: "https://wa.me", Recipient: "5543984336883"},
		Cache:     cache,
		Metrics:   metrics.NewOrderMetrics(prometheus.NewRegistry()),
		Logger:    logger.NewFromZap(zap.New(core)),
		Location:  time.UTC,
	})
	svc.now = clock.Now

	return &fixture{
		svc:      svc,
		sessions: NewSessions(time.Hour, notify.DefaultTTL, clock.Now),
		clock:    clock,
		cache:    cache,
		logs:     logs,
	}
}

func mustNotification(t *testing.T, sess *Session) notify.Notification {
	t.Helper()
	n, ok := sess.Notification()
	require.True(t, ok, "expected a visible notification")
	return n
}

// -------------------------
// Tests
// -------------------------

func TestService_SelectService(t *testing.T) {
	fx := newFixture(t)
	sess := fx.sessions.Get(testSessionID)

	sel, err := fx.svc.SelectService(context.Background(), sess, "bath")
	require.NoError(t, err)
	assert.Equal(t, Selection{ID: "bath", Name: "Banho", Price: 50}, sel)

	n := mustNotification(t, sess)
	assert.Equal(t, notify.KindSuccess, n.Kind)
	assert.Equal(t, `Serviço "Banho" selecionado!`, n.Message)

	// Una nueva selección reemplaza a la anterior.
	_, err = fx.svc.SelectService(context.Background(), sess, "grooming")
	require.NoError(t, err)
	got, ok := sess.Selection()
	require.True(t, ok)
	assert.Equal(t, "grooming", got.ID)
	assert.Equal(t, `Serviço "Tosa" selecionado!`, mustNotification(t, sess).Message)
}

func TestService_SelectUnknownServiceKeepsSelection(t *testing.T) {
	fx := newFixture(t)
	sess := fx.sessions.Get(testSessionID)

	_, err := fx.svc.SelectService(context.Background(), sess, "bath")
	require.NoError(t, err)

	_, err = fx.svc.SelectService(context.Background(), sess, "spa-day")
	assert.ErrorIs(t, err, ErrUnknownService)

	got, ok := sess.Selection()
	require.True(t, ok)
	assert.Equal(t, "bath", got.ID)
}

func TestService_SubmitWithoutSelection(t *testing.T) {
	fx := newFixture(t)
	sess := fx.sessions.Get(testSessionID)

	_, err := fx.svc.Submit(context.Background(), sess, validForm())
	assert.ErrorIs(t, err, ErrNoSelection)

	_, ok := sess.CurrentOrder()
	assert.False(t, ok)
	assert.Empty(t, sess.FieldErrors())

	n := mustNotification(t, sess)
	assert.Equal(t, notify.KindWarning, n.Kind)
	assert.Equal(t, NoticeNoSelection, n.Message)
}

func TestService_SubmitInvalidFormIsCheckedFirst(t *testing.T) {
	fx := newFixture(t)
	sess := fx.sessions.Get(testSessionID)

	f := validForm()
	f.PetName = ""
	f.Phone = "123"

	_, err := fx.svc.Submit(context.Background(), sess, f)
	require.ErrorIs(t, err, ErrInvalidForm)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, FieldErrors{FieldPetName: MsgRequired, FieldPhone: MsgInvalidPhone}, verr.Fields)
	assert.Equal(t, verr.Fields, sess.FieldErrors())

	n := mustNotification(t, sess)
	assert.Equal(t, notify.KindError, n.Kind)
	assert.Equal(t, NoticeFixErrors, n.Message)

	_, ok := sess.CurrentOrder()
	assert.False(t, ok)
}

func TestService_SubmitClearsStaleAnnotations(t *testing.T) {
	fx := newFixture(t)
	sess := fx.sessions.Get(testSessionID)
	ctx := context.Background()

	_, err := fx.svc.Submit(ctx, sess, Form{})
	require.Error(t, err)
	require.Len(t, sess.FieldErrors(), 6)

	_, err = fx.svc.SelectService(ctx, sess, "bath")
	require.NoError(t, err)
	_, err = fx.svc.Submit(ctx, sess, validForm())
	require.NoError(t, err)
	assert.Empty(t, sess.FieldErrors())
}

func TestService_FullFlow(t *testing.T) {
	fx := newFixture(t)
	sess := fx.sessions.Get(testSessionID)
	ctx := context.Background()

	_, err := fx.svc.SelectService(ctx, sess, "bath")
	require.NoError(t, err)

	res, err := fx.svc.Submit(ctx, sess, validForm())
	require.NoError(t, err)
	assert.Equal(t, "Banho", res.Order.Service.Name)
	assert.Equal(t, fx.clock.Now(), res.Order.Timestamp)
	assert.Contains(t, res.SummaryHTML, "<strong>Nome:</strong> Rex")

	cur, ok := sess.CurrentOrder()
	require.True(t, ok)
	assert.Equal(t, res.Order, cur)

	summary, err := fx.svc.Summary(sess)
	require.NoError(t, err)
	assert.Equal(t, res.SummaryHTML, summary)

	h, err := fx.svc.Confirm(ctx, sess)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(h.URL, "https://wa.me/5543984336883?text="))
	assert.Equal(t, FormatMessage(res.Order), h.Message)

	_, ok = sess.CurrentOrder()
	assert.False(t, ok, "summary closes after confirm")

	n := mustNotification(t, sess)
	assert.Equal(t, notify.KindSuccess, n.Kind)
	assert.Equal(t, NoticeRedirecting, n.Message)

	saved, err := fx.svc.SavedOrders(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, fx.clock.Now().UnixMilli(), saved[0].ID)
	assert.Equal(t, StatusPending, saved[0].Status)
	assert.Equal(t, res.Order, saved[0].Order)

	// La selección sobrevive al envío.
	_, ok = sess.Selection()
	assert.True(t, ok)
}

func TestService_ConfirmWithoutOrder(t *testing.T) {
	fx := newFixture(t)
	sess := fx.sessions.Get(testSessionID)

	_, err := fx.svc.Confirm(context.Background(), sess)
	assert.ErrorIs(t, err, ErrNoOrder)

	n := mustNotification(t, sess)
	assert.Equal(t, notify.KindError, n.Kind)
	assert.Equal(t, NoticeNoOrder, n.Message)
	assert.Empty(t, fx.cache.items)
}

func TestService_CloseSummaryDiscardsOrder(t *testing.T) {
	fx := newFixture(t)
	sess := fx.sessions.Get(testSessionID)
	ctx := context.Background()

	_, _ = fx.svc.SelectService(ctx, sess, "bath")
	_, err := fx.svc.Submit(ctx, sess, validForm())
	require.NoError(t, err)

	fx.svc.CloseSummary(sess)

	_, err = fx.svc.Summary(sess)
	assert.ErrorIs(t, err, ErrNoOrder)
	_, err = fx.svc.Confirm(ctx, sess)
	assert.ErrorIs(t, err, ErrNoOrder)
}

func TestService_CacheFailureDoesNotBlockHandoff(t *testing.T) {
	fx := newFixture(t)
	fx.cache.err = errors.New("disk full")
	sess := fx.sessions.Get(testSessionID)
	ctx := context.Background()

	_, _ = fx.svc.SelectService(ctx, sess, "bath")
	_, err := fx.svc.Submit(ctx, sess, validForm())
	require.NoError(t, err)

	h, err := fx.svc.Confirm(ctx, sess)
	require.NoError(t, err)
	assert.NotEmpty(t, h.URL)
	assert.Equal(t, 1, fx.logs.FilterMessage("order cache append failed").Len())
}

func TestService_WithoutCache(t *testing.T) {
	svc := NewService(Options{})

	saved, err := svc.SavedOrders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestService_Reset(t *testing.T) {
	fx := newFixture(t)
	sess := fx.sessions.Get(testSessionID)
	ctx := context.Background()

	_, _ = fx.svc.SelectService(ctx, sess, "bath")
	_, _, _ = fx.svc.ValidateField(sess, FieldEmail, "nope")
	_, err := fx.svc.Submit(ctx, sess, validForm())
	require.NoError(t, err)

	fx.svc.Reset(sess)

	_, ok := sess.Selection()
	assert.False(t, ok)
	_, ok = sess.CurrentOrder()
	assert.False(t, ok)
	assert.Empty(t, sess.FieldErrors())
}

func TestService_ValidateAndClearField(t *testing.T) {
	fx := newFixture(t)
	sess := fx.sessions.Get(testSessionID)

	msg, ok, err := fx.svc.ValidateField(sess, FieldEmail, "ana@")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, MsgInvalidEmail, msg)
	assert.Equal(t, FieldErrors{FieldEmail: MsgInvalidEmail}, sess.FieldErrors())

	_, ok, err = fx.svc.ValidateField(sess, FieldEmail, "ana@example.com")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, sess.FieldErrors())

	_, _, _ = fx.svc.ValidateField(sess, FieldPetName, "")
	require.Len(t, sess.FieldErrors(), 1)
	require.NoError(t, fx.svc.ClearFieldError(sess, FieldPetName))
	assert.Empty(t, sess.FieldErrors())

	_, _, err = fx.svc.ValidateField(sess, "nickname", "x")
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.ErrorIs(t, fx.svc.ClearFieldError(sess, "nickname"), ErrUnknownField)
}

func TestService_OnlyOneNotificationVisible(t *testing.T) {
	fx := newFixture(t)
	sess := fx.sessions.Get(testSessionID)
	ctx := context.Background()

	_, _ = fx.svc.SelectService(ctx, sess, "bath")
	_, _ = fx.svc.Confirm(ctx, sess)

	n := mustNotification(t, sess)
	assert.Equal(t, NoticeNoOrder, n.Message)

	fx.clock.Advance(notify.DefaultTTL + notify.ExitTransition)
	_, ok := sess.Notification()
	assert.False(t, ok)
}

func TestService_ContactLink(t *testing.T) {
	fx := newFixture(t)

	h := fx.svc.ContactLink()
	assert.Equal(t, GreetingMessage, h.Message)
	assert.True(t, strings.HasPrefix(h.URL, "https://wa.me/5543984336883?text=Ol%C3%A1%21%20"))
}

func TestService_WorkedExample(t *testing.T) {
	fx := newFixture(t)
	sess := fx.sessions.Get(testSessionID)
	ctx := context.Background()

	_, err := fx.svc.SelectService(ctx, sess, "bath")
	require.NoError(t, err)

	f := validForm()
	f.PreferredTime = "10:00"
	_, err = fx.svc.Submit(ctx, sess, f)
	require.NoError(t, err)

	h, err := fx.svc.Confirm(ctx, sess)
	require.NoError(t, err)
	for _, want := range []string{"Banho", "R$ 50.00", "Rex", "Ana", "11987654321", "10/01/2025", "10:00"} {
		assert.Contains(t, h.Message, want)
	}
}

func TestService_RejectedResubmitDropsPreviousOrder(t *testing.T) {
	fx := newFixture(t)
	sess := fx.sessions.Get(testSessionID)
	ctx := context.Background()

	_, err := fx.svc.SelectService(ctx, sess, "bath")
	require.NoError(t, err)
	_, err = fx.svc.Submit(ctx, sess, validForm())
	require.NoError(t, err)

	edited := validForm()
	edited.PetName = ""
	edited.OwnerName = "Bruno"
	_, err = fx.svc.Submit(ctx, sess, edited)
	require.ErrorIs(t, err, ErrInvalidForm)

	_, ok := sess.CurrentOrder()
	assert.False(t, ok)

	_, err = fx.svc.Confirm(ctx, sess)
	assert.ErrorIs(t, err, ErrNoOrder)
	assert.Empty(t, fx.cache.items)
}

func TestService_SubmitWithoutSelectionDropsPreviousOrder(t *testing.T) {
	fx := newFixture(t)
	sess := fx.sessions.Get(testSessionID)
	ctx := context.Background()

	_, _ = fx.svc.SelectService(ctx, sess, "bath")
	_, err := fx.svc.Submit(ctx, sess, validForm())
	require.NoError(t, err)

	fx.svc.Reset(sess)
	_, err = fx.svc.Submit(ctx, sess, validForm())
	require.ErrorIs(t, err, ErrNoSelection)

	_, err = fx.svc.Confirm(ctx, sess)
	assert.ErrorIs(t, err, ErrNoOrder)
}

func TestService_ConcurrentEventsKeepToastInSyncWithState(t *testing.T) {
	fx := newFixture(t)
	sess := fx.sessions.Get(testSessionID)
	ctx := context.Background()

	names := map[string]string{"bath": "Banho", "grooming": "Tosa", "nails": "Corte de Unhas"}
	ids := []string{"bath", "grooming", "nails"}

	var wg sync.WaitGroup
	for i := 0; i < 60; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, _ = fx.svc.SelectService(ctx, sess, id)
		}(ids[i%len(ids)])
	}
	wg.Wait()

	sel, ok := sess.Selection()
	require.True(t, ok)
	n := mustNotification(t, sess)
	assert.Equal(t, `Serviço "`+names[sel.ID]+`" selecionado!`, n.Message)
}
