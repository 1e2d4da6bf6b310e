package template

import (
	"testing"

	"deckglow/model"
)

func TestSelectDeterministic(t *testing.T) {
	s := NewSelector(DefaultPools())
	for _, label := range model.SlideTypes {
		for idx := 0; idx < 8; idx++ {
			first := s.Select(label, idx)
			second := s.Select(label, idx)
			if first != second {
				t.Errorf("Select(%q, %d) = %d then %d", label, idx, first, second)
			}
		}
	}
}

func TestSelectFirstPageTitle(t *testing.T) {
	s := NewSelector(DefaultPools())
	if got := s.Select(model.SlideTitle, 0); got != 0 {
		t.Errorf("Select(title, 0) = %d, want first title candidate 0", got)
	}
	// The special case applies only to page 0 with the title label.
	if got := s.Select(model.SlideTitle, 3); got != 0 {
		t.Errorf("Select(title, 3) = %d, want 0 (3 mod 3)", got)
	}
	if got := s.Select(model.SlideTitle, 4); got != 1 {
		t.Errorf("Select(title, 4) = %d, want 1 (4 mod 3)", got)
	}
}

func TestSelectAgendaScenario(t *testing.T) {
	// Pool [6,7]: agenda pages at indices 2 and 4 both resolve to 6.
	s := NewSelector(DefaultPools())
	if got := s.Select(model.SlideAgenda, 2); got != 6 {
		t.Errorf("Select(agenda, 2) = %d, want 6", got)
	}
	if got := s.Select(model.SlideAgenda, 4); got != 6 {
		t.Errorf("Select(agenda, 4) = %d, want 6", got)
	}
	if got := s.Select(model.SlideAgenda, 3); got != 7 {
		t.Errorf("Select(agenda, 3) = %d, want 7", got)
	}
}

// Round-robin coverage: indices 0..2N-1 visit each of N candidates
// exactly twice (using a non-title label to avoid the page-0 case).
func TestSelectRoundRobinCoverage(t *testing.T) {
	pools := DefaultPools()
	s := NewSelector(pools)

	for _, label := range []model.SlideType{model.SlideSection, model.SlideAgenda, model.SlideContentBullets} {
		candidates := pools[label]
		n := len(candidates)

		visits := make(map[int]int)
		for idx := 0; idx < 2*n; idx++ {
			visits[s.Select(label, idx)]++
		}

		for _, c := range candidates {
			if visits[c] != 2 {
				t.Errorf("%s: candidate %d visited %d times, want 2", label, c, visits[c])
			}
		}
	}
}

func TestSelectUnmappedLabelFallsBack(t *testing.T) {
	s := NewSelector(Pools{model.SlideTitle: {0}})
	if got := s.Select(model.SlideEnding, 5); got != genericContent {
		t.Errorf("Select(ending, 5) = %d, want fallback %d", got, genericContent)
	}
	if got := s.Select("not-a-label", 2); got != genericContent {
		t.Errorf("Select(bogus, 2) = %d, want fallback %d", got, genericContent)
	}
}

func TestSequence(t *testing.T) {
	s := NewSelector(DefaultPools())

	pages := []*model.Page{
		{Index: 0, SlideType: model.SlideTitle},
		{Index: 1, SlideType: model.SlideAgenda},
		{Index: 2, SlideType: model.SlideContentBullets},
		{Index: 3, SlideType: model.SlideContentBullets},
		{Index: 4, SlideType: model.SlideEnding},
	}

	got := s.Sequence(pages)
	want := []int{0, 7, 20, 18, 31}
	if len(got) != len(want) {
		t.Fatalf("Sequence() returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Sequence()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
