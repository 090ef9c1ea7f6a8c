package notify

import (
	"testing"
	"time"
)

func TestShowReplacesCurrentToast(t *testing.T) {
	t.Parallel()
	store := NewStore(WithAfter(func(time.Duration, func()) {}))

	first := store.Success("Profile updated successfully!")
	second := store.Error("Failed to update profile")

	current, ok := store.Current()
	if !ok {
		t.Fatal("no current toast")
	}
	if current.ID != second.ID || current.Severity != SeverityError {
		t.Fatalf("current = %+v", current)
	}
	if second.ID <= first.ID {
		t.Fatalf("ids not increasing: %d then %d", first.ID, second.ID)
	}
}

func TestAutoDismissClearsSlot(t *testing.T) {
	t.Parallel()

	var armedDelay time.Duration
	var fire func()
	store := NewStore(WithAfter(func(d time.Duration, fn func()) {
		armedDelay = d
		fire = fn
	}))

	store.Success("Profile updated successfully!")
	if fire == nil {
		t.Fatal("auto-dismiss timer not armed")
	}
	if armedDelay != DefaultDismissDelay {
		t.Fatalf("delay = %v", armedDelay)
	}
	fire()
	if _, ok := store.Current(); ok {
		t.Fatal("toast still visible after timed dismiss")
	}
}

func TestStaleTimerDoesNotDismissNewerToast(t *testing.T) {
	t.Parallel()

	var fire func()
	store := NewStore(WithAfter(func(_ time.Duration, fn func()) {
		if fire == nil {
			fire = fn
		}
	}))

	store.Success("first")
	replacement := store.Success("second")

	fire()
	current, ok := store.Current()
	if !ok {
		t.Fatal("newer toast dismissed by stale timer")
	}
	if current.ID != replacement.ID {
		t.Fatalf("current = %+v", current)
	}
}

func TestErrorToastStaysUntilDismissed(t *testing.T) {
	t.Parallel()

	armed := false
	store := NewStore(WithAfter(func(time.Duration, func()) { armed = true }))

	store.Error("Failed to update profile")
	if armed {
		t.Fatal("error toast armed auto-dismiss timer")
	}
	store.Dismiss()
	if _, ok := store.Current(); ok {
		t.Fatal("toast visible after Dismiss")
	}
}

func TestSubscribersSeeTransitionsInOrder(t *testing.T) {
	t.Parallel()
	store := NewStore(WithAfter(func(time.Duration, func()) {}))

	type event struct {
		message string
		shown   bool
	}
	var events []event
	store.Subscribe(func(n Notification, shown bool) {
		events = append(events, event{n.Message, shown})
	})

	store.Success("saved")
	store.Dismiss()
	store.Error("failed")

	want := []event{{"saved", true}, {"saved", false}, {"failed", true}}
	if len(events) != len(want) {
		t.Fatalf("events = %+v", events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("event %d = %+v, want %+v", i, events[i], want[i])
		}
	}
}

func TestDismissEmptySlotIsNoOp(t *testing.T) {
	t.Parallel()
	store := NewStore()

	calls := 0
	store.Subscribe(func(Notification, bool) { calls++ })
	store.Dismiss()
	store.DismissID(42)
	if calls != 0 {
		t.Fatalf("subscriber calls = %d", calls)
	}
}
