package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"clubportal/internal/app"
)

func newAttendanceCmd(portal *app.App) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "attendance",
		Short: "Show attendance for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := portal.Session.Current()
			if !app.CanView(app.SectionAttendance, user) {
				return fmt.Errorf("attendance requires a session")
			}
			if date != "" {
				portal.Attendance.SetDate(date)
			}
			portal.Navigate(cmd.Context(), app.SectionAttendance)
			fmt.Printf("attendance for %s\n", portal.Attendance.Date())
			for _, rec := range portal.Attendance.Records() {
				mark := " "
				if rec.Present {
					mark = "x"
				}
				fmt.Printf("[%s] #%d %s <%s> %s\n", mark, rec.ID, rec.FullName, rec.Email, rec.Notes)
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&date, "date", "", "date (YYYY-MM-DD), defaults to today")
	cmd.AddCommand(newAttendanceToggleCmd(portal, &date))
	return cmd
}

func newAttendanceToggleCmd(portal *app.App, date *string) *cobra.Command {
	var present bool
	cmd := &cobra.Command{
		Use:   "toggle <user-id>",
		Short: "Set a member's presence for the date (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user := portal.Session.Current()
			if !app.CanManage(app.SectionAttendance, user) {
				return fmt.Errorf("editing attendance requires an admin session")
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}
			if *date != "" {
				portal.Attendance.SetDate(*date)
			}
			return portal.Attendance.Toggle(cmd.Context(), id, present)
		},
	}
	cmd.Flags().BoolVar(&present, "present", true, "presence value")
	return cmd
}
