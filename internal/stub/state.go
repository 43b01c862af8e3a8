// Package stub is an in-memory double of the five portal endpoints, used for
// local development and integration tests. It implements the wire contracts
// only; there is no persistence and no schema.
package stub

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"sync"
	"time"

	"clubportal/internal/model"
)

type userRec struct {
	model.User
	passwordHash string
	deleted      bool
}

type attendanceKey struct {
	date   string
	userID int
}

type attendanceRec struct {
	present bool
	notes   string
}

// State holds all stub data behind one lock.
type State struct {
	mu sync.Mutex

	users        []*userRec
	news         []model.NewsItem
	applications []model.Application
	attendance   map[attendanceKey]attendanceRec
	grades       []model.Grade
	history      []model.RoleHistoryRecord

	nextUserID        int
	nextNewsID        int
	nextApplicationID int
	nextGradeID       int
	nextHistoryID     int
}

// NewState creates stub state seeded with one admin account
// (admin@club.local / admin).
func NewState() *State {
	s := &State{
		attendance:        make(map[attendanceKey]attendanceRec),
		nextUserID:        1,
		nextNewsID:        1,
		nextApplicationID: 1,
		nextGradeID:       1,
		nextHistoryID:     1,
	}
	s.addUser("admin@club.local", "admin", "Club Admin", model.RoleAdmin)
	return s
}

func hashPassword(pw string) string {
	sum := sha256.Sum256([]byte(pw))
	return hex.EncodeToString(sum[:])
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func today() string {
	return time.Now().Format("2006-01-02")
}

// addUser appends a user; caller must hold the lock or be in setup.
func (s *State) addUser(email, password, fullName, role string) *userRec {
	u := &userRec{
		User: model.User{
			ID:        s.nextUserID,
			Email:     email,
			FullName:  fullName,
			Role:      role,
			CreatedAt: now(),
		},
		passwordHash: hashPassword(password),
	}
	s.nextUserID++
	s.users = append(s.users, u)
	return u
}

func (s *State) findByEmail(email string) *userRec {
	for _, u := range s.users {
		if u.Email == email && !u.deleted {
			return u
		}
	}
	return nil
}

func (s *State) findByID(id int) *userRec {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// listUsers projects users with grade aggregates. deleted selects the
// archive instead of the active roster. Grades of archived members are kept
// but never feed an active roster row, so archival cannot skew averages.
func (s *State) listUsers(deleted bool) []model.User {
	var out []model.User
	for _, u := range s.users {
		if u.deleted != deleted {
			continue
		}
		proj := u.User
		var sum, count int
		for _, g := range s.grades {
			if g.UserID == u.ID {
				sum += g.Score
				count++
			}
		}
		if count > 0 {
			avg := float64(sum) / float64(count)
			proj.AverageScore = &avg
			proj.TotalGrades = &count
		}
		out = append(out, proj)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out
}

// attendanceFor joins active members against presence records for one date.
func (s *State) attendanceFor(date string) []model.AttendanceRecord {
	out := []model.AttendanceRecord{}
	for _, u := range s.users {
		if u.deleted || u.Role != model.RoleMember {
			continue
		}
		rec := s.attendance[attendanceKey{date: date, userID: u.ID}]
		out = append(out, model.AttendanceRecord{
			ID:       u.ID,
			FullName: u.FullName,
			Email:    u.Email,
			Present:  rec.present,
			Notes:    rec.notes,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out
}

func (s *State) recordRoleChange(target *userRec, oldRole, newRole string, adminID *int) {
	rec := model.RoleHistoryRecord{
		ID:        s.nextHistoryID,
		UserID:    target.ID,
		UserName:  target.FullName,
		UserEmail: target.Email,
		OldRole:   oldRole,
		NewRole:   newRole,
		ChangedAt: now(),
	}
	s.nextHistoryID++
	if adminID != nil {
		if admin := s.findByID(*adminID); admin != nil {
			rec.ChangedByAdminID = adminID
			name := admin.FullName
			rec.AdminName = &name
		}
	}
	s.history = append(s.history, rec)
}
