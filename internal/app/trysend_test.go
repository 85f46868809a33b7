package app

import "testing"

func TestTrySendSucceedsWhenRoomAvailable(t *testing.T) {
	ch := make(chan int, 1)
	if !trySend(ch, 42) {
		t.Fatal("trySend returned false on an empty buffered channel")
	}
	if got := <-ch; got != 42 {
		t.Errorf("received %d, want 42", got)
	}
}

func TestTrySendDropsNewestWhenFull(t *testing.T) {
	ch := make(chan int, 2)
	if !trySend(ch, 1) || !trySend(ch, 2) {
		t.Fatal("expected first two sends to succeed")
	}

	if trySend(ch, 3) {
		t.Fatal("expected trySend to report failure once the channel is full")
	}

	// The queued items are untouched: trySend drops the newest value,
	// it never evicts what's already queued.
	if got := <-ch; got != 1 {
		t.Errorf("first dequeued = %d, want 1", got)
	}
	if got := <-ch; got != 2 {
		t.Errorf("second dequeued = %d, want 2", got)
	}
}

func TestTrySendOnUnbufferedChannelWithNoReceiverFails(t *testing.T) {
	ch := make(chan int)
	if trySend(ch, 1) {
		t.Fatal("expected trySend on an unbuffered channel with no receiver to fail")
	}
}
