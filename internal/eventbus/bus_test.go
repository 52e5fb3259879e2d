package eventbus

import "testing"

func TestBusPublishSubscribe(t *testing.T) {
	bus := New[string](1)
	ch := bus.Subscribe()
	bus.Publish("hello")
	if v := <-ch; v != "hello" {
		t.Fatalf("expected hello got %v", v)
	}
	bus.Unsubscribe(ch)
	if _, ok := <-ch; ok {
		t.Fatalf("expected channel closed after unsubscribe")
	}
}

func TestBusDropsWhenFull(t *testing.T) {
	bus := New[int](1)
	ch := bus.Subscribe()
	bus.Publish(1)
	bus.Publish(2)
	if bus.Dropped() != 1 {
		t.Fatalf("expected 1 dropped event got %d", bus.Dropped())
	}
	if v := <-ch; v != 1 {
		t.Fatalf("expected first event kept got %d", v)
	}
}

func TestBusCloseDrainsBuffered(t *testing.T) {
	bus := New[int](0)
	ch := bus.Subscribe()
	bus.Publish(7)
	bus.Close()
	bus.Close()
	if v, ok := <-ch; !ok || v != 7 {
		t.Fatalf("expected buffered event before close, got %v %v", v, ok)
	}
	if _, ok := <-ch; ok {
		t.Fatalf("expected channel closed")
	}
	bus.Publish(8)
	late := bus.Subscribe()
	if _, ok := <-late; ok {
		t.Fatalf("subscribe after close must return a closed channel")
	}
}

func TestBusUnsubscribeAfterClose(t *testing.T) {
	bus := New[int](0)
	ch := bus.Subscribe()
	bus.Close()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("panic on Unsubscribe after Close: %v", r)
		}
	}()
	bus.Unsubscribe(ch)
}
