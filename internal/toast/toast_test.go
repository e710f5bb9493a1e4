package toast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/certdesk/certdesk/internal/logger"
)

func TestShow_FIFOOrder(t *testing.T) {
	p := NewPresenter(time.Minute, logger.Nop(), nil)
	defer p.Close()

	p.Show(KindInfo, "first", "m1")
	p.Show(KindError, "second", "m2")
	p.Show(KindSuccess, "third", "m3")

	active := p.Active()
	require.Len(t, active, 3)
	assert.Equal(t, "first", active[0].Title)
	assert.Equal(t, "second", active[1].Title)
	assert.Equal(t, "third", active[2].Title)
}

func TestShow_NoDeduplication(t *testing.T) {
	p := NewPresenter(time.Minute, logger.Nop(), nil)
	defer p.Close()

	id1 := p.Show(KindError, "same", "same message")
	id2 := p.Show(KindError, "same", "same message")

	assert.NotEqual(t, id1, id2)
	assert.Len(t, p.Active(), 2)
}

func TestDismiss_RemovesEntry(t *testing.T) {
	p := NewPresenter(time.Minute, logger.Nop(), nil)
	defer p.Close()

	id := p.Show(KindInfo, "one", "m")
	p.Show(KindInfo, "two", "m")

	p.Dismiss(id)

	active := p.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "two", active[0].Title)

	// unknown IDs are ignored
	p.Dismiss(9999)
	assert.Len(t, p.Active(), 1)
}

func TestAutoClose_ExpiresEntry(t *testing.T) {
	p := NewPresenter(20*time.Millisecond, logger.Nop(), nil)
	defer p.Close()

	p.Show(KindSuccess, "short lived", "m")
	require.Len(t, p.Active(), 1)

	assert.Eventually(t, func() bool {
		return len(p.Active()) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestPause_StopsAutoClose(t *testing.T) {
	p := NewPresenter(20*time.Millisecond, logger.Nop(), nil)
	defer p.Close()

	id := p.Show(KindInfo, "hovered", "m")
	p.Pause(id)

	time.Sleep(60 * time.Millisecond)
	assert.Len(t, p.Active(), 1)

	p.Resume(id)
	assert.Eventually(t, func() bool {
		return len(p.Active()) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestOnChange_ReceivesSnapshots(t *testing.T) {
	var last []Toast
	p := NewPresenter(time.Minute, logger.Nop(), func(active []Toast) { last = active })
	defer p.Close()

	id := p.Show(KindInfo, "one", "m")
	require.Len(t, last, 1)

	p.Dismiss(id)
	assert.Empty(t, last)
}

func TestDefaultAutoCloseFallback(t *testing.T) {
	p := NewPresenter(0, logger.Nop(), nil)
	defer p.Close()

	p.Show(KindInfo, "defaulted", "m")
	active := p.Active()
	require.Len(t, active, 1)
	assert.Equal(t, DefaultAutoClose, active[0].AutoClose)
}
