package typing

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNewRejectsEmptyReference(t *testing.T) {
	p, err := New("")
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil progress on error")
	}
}

func TestNewInitialState(t *testing.T) {
	p, err := New("cat")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	want := Snapshot{Typed: "", Mistyped: "", Current: "c", Untyped: "at"}
	if got := p.Snapshot(); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if p.IsComplete() {
		t.Fatalf("expected fresh session to be incomplete")
	}
}

func TestAdvanceCatScenario(t *testing.T) {
	p, err := New("cat")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	steps := []struct {
		key  rune
		want Snapshot
	}{
		{'c', Snapshot{Typed: "c", Current: "a", Untyped: "t"}},
		{'x', Snapshot{Typed: "c", Mistyped: "x", Current: "a", Untyped: "t"}},
		{'a', Snapshot{Typed: "ca", Current: "t"}},
		{'t', Snapshot{Typed: "cat"}},
	}
	for i, step := range steps {
		p.Advance(step.key)
		if got := p.Snapshot(); got != step.want {
			t.Fatalf("step %d (%q): expected %+v, got %+v", i, step.key, step.want, got)
		}
	}
	if !p.IsComplete() {
		t.Fatalf("expected session to be complete")
	}
	if _, ok := p.Current(); ok {
		t.Fatalf("expected no current rune after completion")
	}
}

func TestAdvanceAccumulatesMistypes(t *testing.T) {
	p, err := New("ab")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	for _, r := range "xyz" {
		p.Advance(r)
	}
	if got := p.Mistyped(); got != "xyz" {
		t.Fatalf("expected mistyped trail %q, got %q", "xyz", got)
	}
	if got := p.Typed(); got != "" {
		t.Fatalf("expected nothing typed, got %q", got)
	}
	p.Advance('a')
	if got := p.Mistyped(); got != "" {
		t.Fatalf("expected mistyped cleared after correct key, got %q", got)
	}
}

func TestAdvanceNewlineMatchesOnlyLineFeed(t *testing.T) {
	p, err := New("ab\ncd")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	p.Advance('\n')
	if got := p.Mistyped(); got != "\n" {
		t.Fatalf("expected newline to be mistyped at 'a', got %q", got)
	}
	p.Advance('a')
	p.Advance('b')
	if r, _ := p.Current(); r != '\n' {
		t.Fatalf("expected current line feed, got %q", r)
	}
	p.Advance(' ')
	p.Advance('\n')
	want := Snapshot{Typed: "ab\n", Current: "c", Untyped: "d"}
	if got := p.Snapshot(); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestAdvanceAfterCompletionIsNoop(t *testing.T) {
	p, err := New("a")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	p.Advance('a')
	before := p.Snapshot()
	for _, r := range "a\nzz" {
		p.Advance(r)
		if !p.IsComplete() {
			t.Fatalf("expected completion to be sticky")
		}
	}
	if got := p.Snapshot(); got != before {
		t.Fatalf("expected %+v after completion, got %+v", before, got)
	}
}

func TestAdvanceMultibyteRunes(t *testing.T) {
	p, err := New("héllo, 世界")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	for _, r := range "hé" {
		p.Advance(r)
	}
	if got := p.Typed(); got != "hé" {
		t.Fatalf("expected typed %q, got %q", "hé", got)
	}
	if typed, total := p.Position(); typed != 2 || total != 9 {
		t.Fatalf("expected position 2/9, got %d/%d", typed, total)
	}
}

func TestPropertiesHoldForRandomKeystrokes(t *testing.T) {
	const reference = "the quick\nbrown fox\n\tjumps"
	alphabet := []rune(reference + "xyz")
	rnd := rand.New(rand.NewSource(42))

	p, err := New(reference)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	twin, err := New(reference)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	prevTyped := 0
	for i := 0; i < 2000; i++ {
		var key rune
		if cur, ok := p.Current(); ok && rnd.Intn(3) == 0 {
			key = cur
		} else {
			key = alphabet[rnd.Intn(len(alphabet))]
		}
		cur, hadCurrent := p.Current()

		p.Advance(key)
		twin.Advance(key)

		s := p.Snapshot()
		if s.Typed+s.Current+s.Untyped != reference {
			t.Fatalf("partition %+v does not reassemble the reference", s)
		}
		typed, _ := p.Position()
		if typed < prevTyped {
			t.Fatalf("typed shrank from %d to %d", prevTyped, typed)
		}
		prevTyped = typed
		if hadCurrent && key == cur && s.Mistyped != "" {
			t.Fatalf("expected empty mistyped after correct key, got %q", s.Mistyped)
		}
		if p.IsComplete() != (s.Current == "") {
			t.Fatalf("completion %v disagrees with current %q", p.IsComplete(), s.Current)
		}
		if twin.Snapshot() != s {
			t.Fatalf("identical keystrokes diverged: %+v vs %+v", twin.Snapshot(), s)
		}
	}
}
