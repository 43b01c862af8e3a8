package resource

import "testing"

func TestSnapshotCommitLatestWins(t *testing.T) {
	var s snapshot[int]

	first := s.begin()
	second := s.begin()

	if !s.commit(second, []int{2}) {
		t.Fatal("latest load should commit")
	}
	if s.commit(first, []int{1}) {
		t.Fatal("stale load must be discarded")
	}

	got := s.get()
	if len(got) != 1 || got[0] != 2 {
		t.Errorf("expected [2], got %v", got)
	}
}

func TestSnapshotGetReturnsCopy(t *testing.T) {
	var s snapshot[int]
	s.commit(s.begin(), []int{1, 2, 3})

	got := s.get()
	got[0] = 99
	if s.get()[0] != 1 {
		t.Error("get must return a copy, not the backing slice")
	}
}

func TestSnapshotEmpty(t *testing.T) {
	var s snapshot[string]
	if got := s.get(); len(got) != 0 {
		t.Errorf("expected empty snapshot, got %v", got)
	}
}
