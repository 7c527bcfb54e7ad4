package viewmodel

import (
	"testing"

	"github.com/google/uuid"
)

func TestCounterMutatesDirectly(t *testing.T) {
	c := New(uuid.New())

	c.Increment()
	c.Increment()
	c.Decrement()
	if got := c.Count(); got != 1 {
		t.Fatalf("Count = %d, want 1", got)
	}

	c.Set(-12)
	if got := c.Count(); got != -12 {
		t.Fatalf("Count = %d, want -12", got)
	}
}

func TestReportCurrentCount(t *testing.T) {
	c := New(uuid.New())

	// no callback: silently dropped
	c.Set(3)
	c.ReportCurrentCount()

	var got []int
	c.OnReport(func(count int) { got = append(got, count) })
	if !c.Wired() {
		t.Fatal("Wired = false after OnReport")
	}

	c.ReportCurrentCount()
	c.Set(7)
	c.ReportCurrentCount()

	c.Detach()
	c.ReportCurrentCount()

	if len(got) != 2 || got[0] != 3 || got[1] != 7 {
		t.Fatalf("reported %v, want [3 7]", got)
	}
}
