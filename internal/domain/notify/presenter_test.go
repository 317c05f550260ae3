package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestPresenter_NewReplacesPrevious(t *testing.T) {
	clk := &fakeClock{t: time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)}
	p := NewPresenter(0, clk.now)

	first := p.Notify("Serviço \"Banho\" selecionado!", KindSuccess)
	second := p.Notify("Por favor, selecione um serviço primeiro", KindWarning)

	visible := p.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, second.ID, visible[0].ID)
	assert.NotEqual(t, first.ID, visible[0].ID)
	assert.Equal(t, KindWarning, visible[0].Kind)
}

func TestPresenter_AutoDismiss(t *testing.T) {
	clk := &fakeClock{t: time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)}
	p := NewPresenter(4*time.Second, clk.now)

	p.Notify("ok", KindInfo)

	clk.t = clk.t.Add(4 * time.Second)
	_, ok := p.Current()
	assert.True(t, ok, "still in exit transition")

	clk.t = clk.t.Add(ExitTransition)
	_, ok = p.Current()
	assert.False(t, ok)
	assert.Empty(t, p.Visible())
}

func TestStyleFor(t *testing.T) {
	assert.Equal(t, Style{Color: "#28a745", Icon: "fa-check-circle"}, StyleFor(KindSuccess))
	assert.Equal(t, Style{Color: "#dc3545", Icon: "fa-exclamation-circle"}, StyleFor(KindError))
	assert.Equal(t, Style{Color: "#ffc107", Icon: "fa-exclamation-triangle"}, StyleFor(KindWarning))
	assert.Equal(t, Style{Color: "#17a2b8", Icon: "fa-info-circle"}, StyleFor(KindInfo))
	assert.Equal(t, StyleFor(KindInfo), StyleFor(Kind("party")))
}

func TestNotify_UnknownKindBecomesInfo(t *testing.T) {
	p := NewPresenter(time.Second, nil)
	n := p.Notify("hi", Kind("party"))
	assert.Equal(t, KindInfo, n.Kind)
}
