package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"clubportal/internal/app"
	"clubportal/internal/model"
)

func newApplyCmd(portal *app.App) *cobra.Command {
	var form model.ApplicationForm
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Submit a membership application",
		RunE: func(cmd *cobra.Command, args []string) error {
			portal.Navigate(cmd.Context(), app.SectionApplication)
			return portal.Applications.Submit(cmd.Context(), form)
		},
	}
	cmd.Flags().StringVar(&form.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&form.Email, "email", "", "contact email")
	cmd.Flags().StringVar(&form.Phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&form.Message, "message", "", "message to the club")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newApplicationsCmd(portal *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "applications",
		Short: "Review membership applications (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := portal.Session.Current()
			if !app.CanManage(app.SectionApplication, user) {
				return fmt.Errorf("reviewing applications requires an admin session")
			}
			if err := portal.Applications.Load(cmd.Context()); err != nil {
				return err
			}
			for _, a := range portal.Applications.Items() {
				fmt.Printf("#%d %-10s %s <%s> %s — %s\n", a.ID, a.Status, a.FullName, a.Email, a.Phone, a.Message)
			}
			return nil
		},
	}
	cmd.AddCommand(newDecideCmd(portal, "approve"), newDecideCmd(portal, "reject"))
	return cmd
}

func newDecideCmd(portal *app.App, verb string) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <id>",
		Short: verb + " an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user := portal.Session.Current()
			if !app.CanManage(app.SectionApplication, user) {
				return fmt.Errorf("reviewing applications requires an admin session")
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid application id %q", args[0])
			}
			if verb == "approve" {
				return portal.Applications.Approve(cmd.Context(), id)
			}
			return portal.Applications.Reject(cmd.Context(), id)
		},
	}
}
