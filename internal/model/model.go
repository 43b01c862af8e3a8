package model

// Role values assigned by the server. The client never changes a role locally;
// it only reflects what the server returned.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// Application status values. Transitions are pending -> approved or
// pending -> rejected, admin-only, and performed server-side.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// User is both the authenticated session identity and the roster projection.
// AverageScore and TotalGrades are only populated on admin roster listings.
type User struct {
	ID           int      `json:"id"`
	Email        string   `json:"email"`
	FullName     string   `json:"full_name"`
	Role         string   `json:"role"`
	CreatedAt    string   `json:"created_at,omitempty"`
	AverageScore *float64 `json:"average_score,omitempty"`
	TotalGrades  *int     `json:"total_grades,omitempty"`
}

// IsAdmin reports whether u is a non-nil admin identity.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// NewsItem is immutable from the client's perspective; ordering is whatever
// the server returned (assumed reverse-chronological).
type NewsItem struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	AuthorName string `json:"author_name"`
	ImageURL   string `json:"image_url,omitempty"`
	VideoURL   string `json:"video_url,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// NewsDraft is the payload for creating a news item.
type NewsDraft struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url,omitempty"`
	VideoURL string `json:"video_url,omitempty"`
}

// Application is a membership application submitted from the public form.
type Application struct {
	ID        int    `json:"id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// ApplicationForm is the public submission payload.
type ApplicationForm struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
}

// AttendanceRecord is one member's presence for the currently selected date.
// The date itself partitions the resource and lives on the loader, not here.
type AttendanceRecord struct {
	ID       int    `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Present  bool   `json:"present"`
	Notes    string `json:"notes"`
}

// RoleHistoryRecord is an append-only audit entry for member<->admin changes.
type RoleHistoryRecord struct {
	ID               int     `json:"id"`
	UserID           int     `json:"user_id"`
	UserName         string  `json:"user_name"`
	UserEmail        string  `json:"user_email"`
	OldRole          string  `json:"old_role"`
	NewRole          string  `json:"new_role"`
	ChangedByAdminID *int    `json:"changed_by_admin_id"`
	AdminName        *string `json:"admin_name"`
	ChangedAt        string  `json:"changed_at"`
	Reason           *string `json:"reason"`
}

// Grade scores are integers on a 0-100 scale. One legacy view rendered a
// 0-5 scale; that is derived presentation only, see FiveScale.
type Grade struct {
	ID           int    `json:"id"`
	UserID       int    `json:"user_id"`
	UserName     string `json:"user_name,omitempty"`
	Category     string `json:"category"`
	Score        int    `json:"score"`
	Comment      string `json:"comment"`
	GradedAt     string `json:"graded_at"`
	GradedByName string `json:"graded_by_name"`
}

// FiveScale converts a canonical 0-100 score to the 0-5 display scale.
func FiveScale(score int) float64 {
	return float64(score) / 20.0
}

// GradeCategories is the fixed category set accepted for new grades.
var GradeCategories = []string{
	"technique",
	"fitness",
	"theory",
	"discipline",
	"attendance",
	"sparring",
	"exam",
}

// ValidCategory reports whether c is one of the fixed grade categories.
func ValidCategory(c string) bool {
	for _, v := range GradeCategories {
		if v == c {
			return true
		}
	}
	return false
}
