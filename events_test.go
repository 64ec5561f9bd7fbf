package tuber_test

import (
	"testing"

	"github.com/tuber-engine/tuber"
)

type keyPressed struct{ Key rune }
type windowResized struct{ W, H int }

func TestEventBusDeliversInSubscriptionOrder(t *testing.T) {
	var bus tuber.EventBus
	var order []int
	tuber.Subscribe(&bus, func(keyPressed) { order = append(order, 1) })
	tuber.Subscribe(&bus, func(keyPressed) { order = append(order, 2) })
	tuber.Subscribe(&bus, func(keyPressed) { order = append(order, 3) })

	tuber.Publish(&bus, keyPressed{Key: 'x'})
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("handlers ran as %v, want [1 2 3]", order)
	}
}

func TestEventBusRoutesByType(t *testing.T) {
	var bus tuber.EventBus
	keys := 0
	resizes := 0
	tuber.Subscribe(&bus, func(keyPressed) { keys++ })
	tuber.Subscribe(&bus, func(windowResized) { resizes++ })

	tuber.Publish(&bus, keyPressed{Key: 'a'})
	tuber.Publish(&bus, keyPressed{Key: 'b'})
	tuber.Publish(&bus, windowResized{W: 80, H: 24})

	if keys != 2 || resizes != 1 {
		t.Errorf("keys=%d resizes=%d, want 2 and 1", keys, resizes)
	}
}

func TestEventBusPublishWithoutSubscribers(t *testing.T) {
	var bus tuber.EventBus
	// Must be a silent no-op.
	tuber.Publish(&bus, windowResized{W: 1, H: 1})
}

func TestEventBusPayloadDelivered(t *testing.T) {
	var bus tuber.EventBus
	var got keyPressed
	tuber.Subscribe(&bus, func(e keyPressed) { got = e })
	tuber.Publish(&bus, keyPressed{Key: 'q'})
	if got.Key != 'q' {
		t.Errorf("payload = %q, want 'q'", got.Key)
	}
}
