package resource

import (
	"context"
	"log"
	"sync"
	"time"

	"clubportal/internal/api"
	"clubportal/internal/model"
	"clubportal/internal/notify"
)

// Attendance owns the presence records for one selected calendar date. The
// date is the partition key: changing it is a distinct load of a different
// record set, not a filter over a cached one.
type Attendance struct {
	client   *api.Client
	notifier notify.Notifier

	mu   sync.Mutex
	date string
	snap snapshot[model.AttendanceRecord]
}

// NewAttendance creates the attendance loader, selecting today's date.
func NewAttendance(client *api.Client, notifier notify.Notifier) *Attendance {
	return &Attendance{
		client:   client,
		notifier: notifier,
		date:     time.Now().Format("2006-01-02"),
	}
}

// Date returns the selected date (YYYY-MM-DD).
func (a *Attendance) Date() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.date
}

// SetDate selects a different date. The caller decides when to reload.
func (a *Attendance) SetDate(date string) {
	a.mu.Lock()
	a.date = date
	a.mu.Unlock()
}

// Load replaces the record set with the server's list for the selected date.
// A response for a date that is no longer selected is discarded.
func (a *Attendance) Load(ctx context.Context) error {
	a.mu.Lock()
	date := a.date
	a.mu.Unlock()

	tag := a.snap.begin()
	items, err := a.client.ListAttendance(ctx, date)
	if err != nil {
		log.Printf("attendance load failed for %s: %v", date, err)
		return err
	}
	a.snap.commit(tag, items)
	return nil
}

// Records returns the loaded record set.
func (a *Attendance) Records() []model.AttendanceRecord {
	return a.snap.get()
}

// Toggle updates one member's presence for the selected date, then reloads it.
func (a *Attendance) Toggle(ctx context.Context, userID int, present bool) error {
	a.mu.Lock()
	date := a.date
	a.mu.Unlock()

	if err := a.client.ToggleAttendance(ctx, userID, date, present); err != nil {
		notify.Error(a.notifier, "Could not update attendance", err.Error())
		return err
	}
	return a.Load(ctx)
}
