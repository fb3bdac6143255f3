package util

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestCountDigits(t *testing.T) {
	cases := []struct {
		in       string
		expected int
	}{
		{"123456789", 9},
		{"12345678", 8},
		{"-123.45", 5},
		{"+1,000.00", 6},
		{"", 0},
		{"abc", 0},
		{"99999999.99", 10},
	}

	for _, c := range cases {
		if got := CountDigits(c.in); got != c.expected {
			t.Errorf("CountDigits(%q) = %d, expected %d", c.in, got, c.expected)
		}
	}
}

func TestPageCount(t *testing.T) {
	cases := []struct {
		total    int
		pageSize int
		expected int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 10, 10},
		{100, 10, 10},
		{101, 10, 11},
		{5, 0, 1},
	}

	for _, c := range cases {
		if got := PageCount(c.total, c.pageSize); got != c.expected {
			t.Errorf("PageCount(%d, %d) = %d, expected %d", c.total, c.pageSize, got, c.expected)
		}
	}
}

func TestHasPrefixes(t *testing.T) {
	if !HasPrefixes("token/refresh/", "token/", "users/") {
		t.Error("expected prefix match")
	}
	if HasPrefixes("books/", "token/", "users/") {
		t.Error("unexpected prefix match")
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate short string changed: %q", got)
	}
	if got := Truncate("a long enough string", 10); got != "a long ..." {
		t.Errorf("Truncate mismatch: %q", got)
	}
}

func TestDebouncerCollapsesRapidTriggers(t *testing.T) {
	var runs int32
	d := NewDebouncer(50 * time.Millisecond)

	for i := 0; i < 5; i++ {
		d.Trigger(func() { atomic.AddInt32(&runs, 1) })
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)
	if got := atomic.LoadInt32(&runs); got != 1 {
		t.Errorf("expected 1 run after rapid triggers, got %d", got)
	}
}

func TestDebouncerStop(t *testing.T) {
	var runs int32
	d := NewDebouncer(20 * time.Millisecond)

	d.Trigger(func() { atomic.AddInt32(&runs, 1) })
	d.Stop()

	time.Sleep(80 * time.Millisecond)
	if got := atomic.LoadInt32(&runs); got != 0 {
		t.Errorf("expected no runs after Stop, got %d", got)
	}
}
