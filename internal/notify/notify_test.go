package notify

import "testing"

func TestCenterDrain(t *testing.T) {
	c := NewCenter(4)
	Info(c, "one", "")
	Error(c, "two", "boom")

	got := c.Drain()
	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(got))
	}
	if got[0].Title != "one" || got[0].Level != LevelInfo {
		t.Errorf("unexpected first notification: %+v", got[0])
	}
	if got[1].Message != "boom" || got[1].Level != LevelError {
		t.Errorf("unexpected second notification: %+v", got[1])
	}
	if got[0].ID == got[1].ID {
		t.Error("notification ids should be unique")
	}

	if rest := c.Drain(); len(rest) != 0 {
		t.Errorf("expected empty center after drain, got %d", len(rest))
	}
}

func TestCenterEvictsOldestWhenFull(t *testing.T) {
	c := NewCenter(2)
	Info(c, "a", "")
	Info(c, "b", "")
	Info(c, "c", "")

	got := c.Drain()
	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(got))
	}
	if got[0].Title != "b" || got[1].Title != "c" {
		t.Errorf("expected oldest evicted, got %s, %s", got[0].Title, got[1].Title)
	}
}
