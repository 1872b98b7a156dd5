package spawn

import (
	"testing"

	"letterfall/internal/letters"
)

func TestMemoryEvictsOldest(t *testing.T) {
	m := newMemory(3)
	for _, s := range []string{"TH", "HE", "ER", "NT"} {
		m.Push(pairOf(s))
	}
	got := m.Pairs()
	if len(got) != 3 {
		t.Fatalf("len %d, want 3", len(got))
	}
	want := []string{"NT", "ER", "HE"}
	for i, p := range got {
		if p.String() != want[i] {
			t.Errorf("slot %d: got %s, want %s", i, p, want[i])
		}
	}
}

func TestMemoryPenaltyPerSlot(t *testing.T) {
	m := newMemory(10)
	m.Push(pairOf("TH")) // will end up in slot 2
	m.Push(pairOf("HE"))
	m.Push(pairOf("ER"))
	if got := m.Penalty(pairOf("ER"), 15, 3, 2); got != 15 {
		t.Errorf("slot 0 penalty %f, want 15", got)
	}
	if got := m.Penalty(pairOf("TH"), 15, 3, 2); got != 9 {
		t.Errorf("slot 2 penalty %f, want 9", got)
	}
	if got := m.Penalty(pairOf("QU"), 15, 3, 2); got != 0 {
		t.Errorf("absent pair penalty %f, want 0", got)
	}
}

func TestMemoryPenaltyAccumulatesOverOccurrences(t *testing.T) {
	m := newMemory(10)
	m.Push(pairOf("TH"))
	m.Push(pairOf("HE"))
	m.Push(pairOf("TH"))
	// Slots 0 and 2: 15 + 9.
	if got := m.Penalty(pairOf("TH"), 15, 3, 2); got != 24 {
		t.Errorf("double occurrence penalty %f, want 24", got)
	}
	single := m.Penalty(pairOf("HE"), 15, 3, 2)
	if got := m.Penalty(pairOf("TH"), 15, 3, 2); got <= single {
		t.Errorf("two recent spawns (%f) should cost more than one (%f)", got, single)
	}
}

func TestMemoryPenaltyFloor(t *testing.T) {
	m := newMemory(10)
	m.Push(pairOf("TH"))
	for i := 0; i < 7; i++ {
		m.Push(pairOf("HE"))
	}
	// TH sits in slot 7: 15 - 21 would go negative without the floor.
	if got := m.Penalty(pairOf("TH"), 15, 3, 2); got != 2 {
		t.Errorf("deep slot penalty %f, want floor 2", got)
	}
}

func TestMemoryZeroCapacity(t *testing.T) {
	m := newMemory(0)
	m.Push(pairOf("TH"))
	if m.Len() != 0 {
		t.Fatal("zero-capacity memory should stay empty")
	}
	if got := m.Penalty(pairOf("TH"), 15, 3, 2); got != 0 {
		t.Fatalf("penalty %f, want 0", got)
	}
}

func TestMemoryReset(t *testing.T) {
	m := newMemory(5)
	m.Push(letters.Pair{'A', 'B'})
	m.Reset()
	if m.Len() != 0 {
		t.Fatal("reset should empty the memory")
	}
}
