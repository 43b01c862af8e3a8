package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"clubportal/internal/app"
	"clubportal/internal/model"
)

func newMembersCmd(portal *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members",
		Short: "Manage the member roster (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireMembers(portal); err != nil {
				return err
			}
			portal.Navigate(cmd.Context(), app.SectionMembers)
			renderMembers(portal.Members.Active())
			return nil
		},
	}
	cmd.AddCommand(
		newMembersDeletedCmd(portal),
		newMembersHistoryCmd(portal),
		newRoleCmd(portal, "promote"),
		newRoleCmd(portal, "demote"),
		newMembersRemoveCmd(portal),
		newMembersRestoreCmd(portal),
		newMemberGradesCmd(portal),
	)
	return cmd
}

func requireMembers(portal *app.App) error {
	if !app.CanView(app.SectionMembers, portal.Session.Current()) {
		return fmt.Errorf("member management requires an admin session")
	}
	return nil
}

func renderMembers(users []model.User) {
	for _, u := range users {
		line := fmt.Sprintf("#%d %-6s %s <%s>", u.ID, u.Role, u.FullName, u.Email)
		if u.AverageScore != nil && u.TotalGrades != nil {
			line += fmt.Sprintf(" — avg %.1f over %d grades", *u.AverageScore, *u.TotalGrades)
		}
		fmt.Println(line)
	}
}

func newMembersDeletedCmd(portal *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "deleted",
		Short: "Show the archived (removed) members",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireMembers(portal); err != nil {
				return err
			}
			if err := portal.Members.LoadDeleted(cmd.Context()); err != nil {
				return err
			}
			renderMembers(portal.Members.Deleted())
			return nil
		},
	}
}

func newMembersHistoryCmd(portal *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show the role change log",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireMembers(portal); err != nil {
				return err
			}
			if err := portal.Members.LoadHistory(cmd.Context()); err != nil {
				return err
			}
			for _, h := range portal.Members.History() {
				by := "unknown"
				if h.AdminName != nil {
					by = *h.AdminName
				}
				fmt.Printf("%s: %s <%s> %s -> %s (by %s)\n", h.ChangedAt, h.UserName, h.UserEmail, h.OldRole, h.NewRole, by)
			}
			return nil
		},
	}
}

func newRoleCmd(portal *app.App, verb string) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <id>",
		Short: verb + " a member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireMembers(portal); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid member id %q", args[0])
			}
			var adminID *int
			if admin := portal.Session.Current(); admin != nil {
				adminID = &admin.ID
			}
			if verb == "promote" {
				return portal.Members.Promote(cmd.Context(), id, adminID)
			}
			return portal.Members.Demote(cmd.Context(), id, adminID)
		},
	}
}

func newMembersRemoveCmd(portal *app.App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Archive a member (recoverable)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireMembers(portal); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid member id %q", args[0])
			}
			if !yes && !confirm(cmd, fmt.Sprintf("remove member #%d? They can be restored later", id)) {
				fmt.Println("cancelled")
				return nil
			}
			return portal.Members.Remove(cmd.Context(), id)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation")
	return cmd
}

func newMembersRestoreCmd(portal *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <id>",
		Short: "Restore an archived member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireMembers(portal); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid member id %q", args[0])
			}
			return portal.Members.Restore(cmd.Context(), id)
		},
	}
}

func newMemberGradesCmd(portal *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "grades <id>",
		Short: "Show one member's grades",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireMembers(portal); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid member id %q", args[0])
			}
			name := memberName(portal, cmd, id)
			portal.OpenMemberGrades(cmd.Context(), id, name)
			defer portal.CloseMemberGrades()

			grades := portal.Grades.Detail()
			fmt.Printf("grades for %s — average %d over %d grades\n", name, portal.Grades.DetailAverage(), len(grades))
			for _, g := range grades {
				fmt.Printf("%s %-12s %3d (%.1f/5) by %s — %s\n",
					g.GradedAt, g.Category, g.Score, model.FiveScale(g.Score), g.GradedByName, g.Comment)
			}
			return nil
		},
	}
}

func memberName(portal *app.App, cmd *cobra.Command, id int) string {
	if err := portal.Members.Load(cmd.Context()); err == nil {
		for _, u := range portal.Members.Active() {
			if u.ID == id {
				return u.FullName
			}
		}
	}
	return fmt.Sprintf("member #%d", id)
}

func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
