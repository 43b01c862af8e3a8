package app

import (
	"testing"

	"clubportal/internal/model"
)

func TestCanView(t *testing.T) {
	admin := &model.User{ID: 1, Role: model.RoleAdmin}
	member := &model.User{ID: 2, Role: model.RoleMember}

	cases := []struct {
		section Section
		user    *model.User
		want    bool
	}{
		{SectionHome, nil, true},
		{SectionNews, nil, true},
		{SectionApplication, nil, true},
		{SectionContacts, nil, true},
		{SectionAttendance, nil, false},
		{SectionAttendance, member, true},
		{SectionGrades, nil, false},
		{SectionGrades, member, true},
		{SectionMembers, nil, false},
		{SectionMembers, member, false},
		{SectionMembers, admin, true},
	}
	for _, c := range cases {
		if got := CanView(c.section, c.user); got != c.want {
			t.Errorf("CanView(%s, %v) = %v, want %v", c.section, c.user, got, c.want)
		}
	}
}

func TestCanManageIsAdminOnly(t *testing.T) {
	member := &model.User{ID: 2, Role: model.RoleMember}
	admin := &model.User{ID: 1, Role: model.RoleAdmin}

	for _, s := range []Section{SectionNews, SectionAttendance, SectionApplication, SectionMembers, SectionGrades} {
		if CanManage(s, nil) {
			t.Errorf("unauthenticated user must not manage %s", s)
		}
		if CanManage(s, member) {
			t.Errorf("member must not manage %s", s)
		}
		if !CanManage(s, admin) {
			t.Errorf("admin should manage %s", s)
		}
	}
	if CanManage(SectionHome, admin) {
		t.Error("home has no mutating controls")
	}
}
