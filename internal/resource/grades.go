package resource

import (
	"context"
	"fmt"
	"log"
	"math"
	"sync"

	"clubportal/internal/api"
	"clubportal/internal/model"
	"clubportal/internal/notify"
)

// ViewMode selects whose grades the main grades view shows.
type ViewMode string

const (
	// ViewMy scopes the list to the viewer's own grades.
	ViewMy ViewMode = "my"
	// ViewAll shows every member's grades (admin view).
	ViewAll ViewMode = "all"
)

// Grades owns the grade list for the grades section plus a separate
// per-member list backing the roster detail overlay.
type Grades struct {
	client   *api.Client
	notifier notify.Notifier

	mu   sync.Mutex
	mode ViewMode

	snap   snapshot[model.Grade]
	detail snapshot[model.Grade]
}

// NewGrades creates the grades loader in the "my" view.
func NewGrades(client *api.Client, notifier notify.Notifier) *Grades {
	return &Grades{client: client, notifier: notifier, mode: ViewMy}
}

// Mode returns the selected view mode.
func (g *Grades) Mode() ViewMode {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.mode
}

// SetMode selects a view mode. The caller decides when to reload.
func (g *Grades) SetMode(mode ViewMode) {
	g.mu.Lock()
	g.mode = mode
	g.mu.Unlock()
}

// Load replaces the grade list for the viewer. "my" narrows the query to the
// viewer's own records; admins always see all records. A response for a view
// mode that is no longer selected is discarded.
func (g *Grades) Load(ctx context.Context, viewer *model.User) error {
	if viewer == nil {
		return fmt.Errorf("grades require a session")
	}
	g.mu.Lock()
	mode := g.mode
	g.mu.Unlock()

	var userID *int
	if mode == ViewMy && viewer.Role == model.RoleMember {
		userID = &viewer.ID
	}

	tag := g.snap.begin()
	items, err := g.client.ListGrades(ctx, viewer.Role, userID)
	if err != nil {
		log.Printf("grades load failed: %v", err)
		return err
	}
	g.snap.commit(tag, items)
	return nil
}

// LoadFor replaces the detail list with one member's grades (admin overlay).
func (g *Grades) LoadFor(ctx context.Context, userID int) error {
	tag := g.detail.begin()
	items, err := g.client.ListGrades(ctx, model.RoleAdmin, &userID)
	if err != nil {
		log.Printf("member grades load failed: %v", err)
		return err
	}
	g.detail.commit(tag, items)
	return nil
}

// Items returns the loaded grade list.
func (g *Grades) Items() []model.Grade {
	return g.snap.get()
}

// Detail returns the loaded per-member list.
func (g *Grades) Detail() []model.Grade {
	return g.detail.get()
}

// Add records a grade for a member and reloads the current view on success.
func (g *Grades) Add(ctx context.Context, admin *model.User, userID int, category string, score int, comment string) error {
	if !admin.IsAdmin() {
		return fmt.Errorf("only admins can add grades")
	}
	if !model.ValidCategory(category) {
		err := fmt.Errorf("unknown category %q", category)
		notify.Error(g.notifier, "Could not add grade", err.Error())
		return err
	}
	if score < 0 || score > 100 {
		err := fmt.Errorf("score %d out of range 0-100", score)
		notify.Error(g.notifier, "Could not add grade", err.Error())
		return err
	}
	if err := g.client.AddGrade(ctx, admin.ID, userID, category, score, comment); err != nil {
		notify.Error(g.notifier, "Could not add grade", err.Error())
		return err
	}
	notify.Info(g.notifier, "Grade added", "")
	return g.Load(ctx, admin)
}

// CategoryStat aggregates one category's grades.
type CategoryStat struct {
	Category string
	Count    int
	Average  float64
}

// OverallAverage returns the rounded mean score over the loaded list, or 0
// when empty.
func (g *Grades) OverallAverage() int {
	return overallAverage(g.snap.get())
}

// CategoryStats aggregates the loaded list per category, in first-seen order.
func (g *Grades) CategoryStats() []CategoryStat {
	return categoryStats(g.snap.get())
}

// DetailAverage returns the rounded mean score of the per-member list.
func (g *Grades) DetailAverage() int {
	return overallAverage(g.detail.get())
}

func overallAverage(grades []model.Grade) int {
	if len(grades) == 0 {
		return 0
	}
	sum := 0
	for _, gr := range grades {
		sum += gr.Score
	}
	return int(math.Round(float64(sum) / float64(len(grades))))
}

func categoryStats(grades []model.Grade) []CategoryStat {
	var order []string
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, gr := range grades {
		if _, ok := counts[gr.Category]; !ok {
			order = append(order, gr.Category)
		}
		sums[gr.Category] += gr.Score
		counts[gr.Category]++
	}
	out := make([]CategoryStat, 0, len(order))
	for _, c := range order {
		out = append(out, CategoryStat{
			Category: c,
			Count:    counts[c],
			Average:  float64(sums[c]) / float64(counts[c]),
		})
	}
	return out
}
