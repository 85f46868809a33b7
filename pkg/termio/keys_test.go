package termio

import (
	"strings"
	"testing"
	"time"
)

func collect(t *testing.T, input string, n int) []Key {
	t.Helper()
	kr := NewKeyReader(strings.NewReader(input))

	got := make([]Key, 0, n)
	for i := 0; i < n; i++ {
		select {
		case k, ok := <-kr.Keys():
			if !ok {
				t.Fatalf("channel closed early after %d keys", len(got))
			}
			got = append(got, k)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for key %d", i)
		}
	}
	return got
}

func TestDecodeArrowKeys(t *testing.T) {
	got := collect(t, "\x1b[A\x1b[B\x1b[C\x1b[D", 4)
	want := []Key{KeyUp, KeyDown, KeyRight, KeyLeft}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecodeEnterAndCtrlC(t *testing.T) {
	got := collect(t, "\r\x03", 2)
	if got[0] != KeyEnter {
		t.Errorf("key 0 = %v, want KeyEnter", got[0])
	}
	if got[1] != KeyCtrlC {
		t.Errorf("key 1 = %v, want KeyCtrlC", got[1])
	}
}

func TestChannelClosesAtEOF(t *testing.T) {
	kr := NewKeyReader(strings.NewReader("\r"))

	select {
	case k := <-kr.Keys():
		if k != KeyEnter {
			t.Fatalf("key = %v, want KeyEnter", k)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for key")
	}

	select {
	case _, ok := <-kr.Keys():
		if ok {
			t.Fatal("expected channel to be closed after EOF")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}
