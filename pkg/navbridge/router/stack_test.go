package router

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPopEmptyIsNoop(t *testing.T) {
	var s Stack[int]

	if _, ok := s.Pop(); ok {
		t.Fatal("Pop on empty stack reported an entry")
	}
	if s.Len() != 0 {
		t.Fatalf("Len = %d, want 0", s.Len())
	}

	if _, err := s.PopStrict(); !errors.Is(err, ErrEmptyStack) {
		t.Fatalf("PopStrict error = %v, want ErrEmptyStack", err)
	}
}

func TestPopToWithoutMatchLeavesStack(t *testing.T) {
	s := NewStack[int]()
	s.Push(1)
	s.Push(2)

	if removed := s.PopTo(func(v int) bool { return v == 9 }); removed != nil {
		t.Fatalf("removed = %v, want nil", removed)
	}
	if diff := cmp.Diff([]int{1, 2}, s.Entries()); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestTruncate(t *testing.T) {
	s := NewStack[string]()
	for _, v := range []string{"a", "b", "c", "d"} {
		s.Push(v)
	}

	removed := s.Truncate(1)
	if diff := cmp.Diff([]string{"d", "c", "b"}, removed); diff != "" {
		t.Fatalf("removed mismatch (-want +got):\n%s", diff)
	}
	if s.Truncate(5) != nil {
		t.Fatal("Truncate beyond depth removed entries")
	}
	s.Truncate(-1)
	if !s.IsEmpty() {
		t.Fatalf("stack not empty after Truncate(-1): %v", s.Entries())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := NewStack[*int]()
	one := 1
	s.Push(&one)

	c := s.Clone(func(p *int) *int {
		v := *p
		return &v
	})
	c.Push(nil)
	*s.entries[0] = 5

	if c.Len() != 2 || s.Len() != 1 {
		t.Fatalf("lengths = %d/%d, want 2/1", c.Len(), s.Len())
	}
	got, _ := c.At(0)
	if *got != 1 {
		t.Fatalf("clone shares entry: %d", *got)
	}
}

// TestStackMatchesModel drives random push/pop/popTo sequences and checks
// the stack against a plain slice after every step.
func TestStackMatchesModel(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 200; run++ {
		var s Stack[int]
		var model []int

		for step := 0; step < 50; step++ {
			switch op := rng.Intn(4); op {
			case 0, 1:
				v := rng.Intn(10)
				s.Push(v)
				model = append(model, v)
			case 2:
				got, ok := s.Pop()
				if len(model) == 0 {
					if ok {
						t.Fatalf("run %d step %d: pop on empty returned %d", run, step, got)
					}
					continue
				}
				want := model[len(model)-1]
				model = model[:len(model)-1]
				if !ok || got != want {
					t.Fatalf("run %d step %d: pop = %d,%v want %d", run, step, got, ok, want)
				}
			case 3:
				target := rng.Intn(10)
				s.PopTo(func(v int) bool { return v == target })
				for i := len(model) - 1; i >= 0; i-- {
					if model[i] == target {
						model = model[:i+1]
						break
					}
				}
			}

			if s.Len() < 0 || s.Len() != len(model) {
				t.Fatalf("run %d step %d: len = %d, want %d", run, step, s.Len(), len(model))
			}
			top, ok := s.Peek()
			if len(model) == 0 {
				if ok {
					t.Fatalf("run %d step %d: peek on empty returned %d", run, step, top)
				}
			} else if top != model[len(model)-1] {
				t.Fatalf("run %d step %d: top = %d, want %d", run, step, top, model[len(model)-1])
			}
		}
	}
}
