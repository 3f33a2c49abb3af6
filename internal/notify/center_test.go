package notify

import (
	"context"
	"testing"
	"time"

	"github.com/facturio/facturio/internal/bus"
	"github.com/facturio/facturio/internal/events"
	"github.com/facturio/facturio/internal/logger"
	"github.com/facturio/facturio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func publishNotice(b *bus.Bus, msg string) {
	b.Publish(context.Background(), events.Notification{
		Kind:    types.NotificationKindSuccess,
		Title:   "test",
		Message: msg,
	})
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within %s", timeout)
}

func TestCenterDisplaysNoticeWithFreshIdentity(t *testing.T) {
	log := logger.NewNopLogger()
	b := bus.New(log)
	center := NewCenter(time.Minute, log)
	center.Attach(b)
	defer center.Detach()

	publishNotice(b, "first")
	publishNotice(b, "first") // same payload, distinct display

	notices := center.Notices()
	require.Len(t, notices, 2)
	assert.NotEmpty(t, notices[0].ID)
	assert.NotEqual(t, notices[0].ID, notices[1].ID,
		"each displayed notice gets its own identity")
}

func TestCenterAutoDismissesAfterTTL(t *testing.T) {
	log := logger.NewNopLogger()
	b := bus.New(log)
	center := NewCenter(100*time.Millisecond, log)
	center.Attach(b)
	defer center.Detach()

	publishNotice(b, "fleeting")
	require.Len(t, center.Notices(), 1)

	waitFor(t, time.Second, func() bool {
		return len(center.Notices()) == 0
	})
}

func TestCenterTimersAreIndependent(t *testing.T) {
	log := logger.NewNopLogger()
	b := bus.New(log)
	center := NewCenter(150*time.Millisecond, log)
	center.Attach(b)
	defer center.Detach()

	publishNotice(b, "older")
	time.Sleep(100 * time.Millisecond)
	publishNotice(b, "newer")

	waitFor(t, time.Second, func() bool {
		notices := center.Notices()
		return len(notices) == 1 && notices[0].Message == "newer"
	})
	waitFor(t, time.Second, func() bool {
		return len(center.Notices()) == 0
	})
}

func TestManualDismissBeforeExpiry(t *testing.T) {
	log := logger.NewNopLogger()
	b := bus.New(log)
	center := NewCenter(time.Minute, log)
	center.Attach(b)
	defer center.Detach()

	publishNotice(b, "dismiss me")
	notices := center.Notices()
	require.Len(t, notices, 1)

	center.Dismiss(notices[0].ID)
	assert.Empty(t, center.Notices(), "manual dismissal removes immediately")
}

func TestDismissIsIdempotent(t *testing.T) {
	log := logger.NewNopLogger()
	b := bus.New(log)
	center := NewCenter(time.Minute, log)
	center.Attach(b)
	defer center.Detach()

	publishNotice(b, "gone soon")
	id := center.Notices()[0].ID

	center.Dismiss(id)
	assert.NotPanics(t, func() { center.Dismiss(id) })

	// Re-dismissing the retired identity must not disturb a notice
	// displayed afterwards.
	publishNotice(b, "survivor")
	center.Dismiss(id)
	survivors := center.Notices()
	require.Len(t, survivors, 1)
	assert.Equal(t, "survivor", survivors[0].Message)
}

func TestDismissUnknownIDIsNoOp(t *testing.T) {
	log := logger.NewNopLogger()
	center := NewCenter(time.Minute, log)

	assert.NotPanics(t, func() { center.Dismiss("notif_absent") })
}
