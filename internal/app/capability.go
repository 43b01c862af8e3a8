package app

import "clubportal/internal/model"

// CanView reports whether the given session may see a section at all. The
// router never blocks navigation; a section the viewer cannot see simply
// renders nothing.
func CanView(s Section, user *model.User) bool {
	switch s {
	case SectionHome, SectionNews, SectionApplication, SectionContacts:
		return true
	case SectionAttendance, SectionGrades:
		return user != nil
	case SectionMembers:
		return user.IsAdmin()
	}
	return false
}

// CanManage reports whether the given session may use a section's mutating
// controls: publishing news, editing attendance, reviewing applications,
// managing members, adding grades.
func CanManage(s Section, user *model.User) bool {
	switch s {
	case SectionNews, SectionAttendance, SectionApplication, SectionMembers, SectionGrades:
		return user.IsAdmin()
	}
	return false
}
