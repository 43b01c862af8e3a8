package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"clubportal/internal/api"
	"clubportal/internal/app"
	"clubportal/internal/config"
	"clubportal/internal/notify"
	"clubportal/internal/resource"
	"clubportal/internal/session"
)

// printer renders transient notifications on stderr so command output stays
// pipeable.
type printer struct{}

func (printer) Notify(n notify.Notification) {
	mark := "•"
	if n.Level == notify.LevelError {
		mark = "!"
	}
	if n.Message != "" {
		fmt.Fprintf(os.Stderr, "%s %s: %s\n", mark, n.Title, n.Message)
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", mark, n.Title)
}

func newApp(cfg config.App) *app.App {
	notifier := printer{}
	client := api.New(api.Endpoints{
		Auth:         cfg.AuthURL,
		News:         cfg.NewsURL,
		Applications: cfg.ApplicationsURL,
		Attendance:   cfg.AttendanceURL,
		Members:      cfg.MembersURL,
	}, cfg.HTTPTimeout)

	sess := session.NewStore(client, session.NewStorage(cfg.StateDir), notifier)
	return app.New(
		sess,
		resource.NewNews(client, notifier),
		resource.NewApplications(client, notifier),
		resource.NewAttendance(client, notifier),
		resource.NewMembers(client, notifier),
		resource.NewGrades(client, notifier),
		notifier,
	)
}

func main() {
	cfg := config.Load()
	portal := newApp(cfg)

	root := &cobra.Command{
		Use:   "club",
		Short: "School activity club portal",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			portal.Session.Restore()
		},
		Run: func(cmd *cobra.Command, args []string) {
			renderStatus(portal)
		},
	}

	root.AddCommand(
		newLoginCmd(portal),
		newRegisterCmd(portal),
		newLogoutCmd(portal),
		newWhoamiCmd(portal),
		newNewsCmd(portal),
		newApplyCmd(portal),
		newApplicationsCmd(portal),
		newAttendanceCmd(portal),
		newMembersCmd(portal),
		newGradesCmd(portal),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func renderStatus(portal *app.App) {
	user := portal.Session.Current()
	if user == nil {
		fmt.Println("not logged in — use `club login` or `club register`")
		return
	}
	fmt.Printf("logged in as %s <%s> (%s)\n", user.FullName, user.Email, user.Role)
}
