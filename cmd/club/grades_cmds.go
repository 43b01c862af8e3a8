package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"clubportal/internal/app"
	"clubportal/internal/resource"
)

func newGradesCmd(portal *app.App) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "grades",
		Short: "Show grades and progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := portal.Session.Current()
			if !app.CanView(app.SectionGrades, user) {
				return fmt.Errorf("grades require a session")
			}
			if all {
				portal.Grades.SetMode(resource.ViewAll)
			} else {
				portal.Grades.SetMode(resource.ViewMy)
			}
			portal.Navigate(cmd.Context(), app.SectionGrades)

			grades := portal.Grades.Items()
			fmt.Printf("overall average: %d over %d grades\n", portal.Grades.OverallAverage(), len(grades))
			for _, stat := range portal.Grades.CategoryStats() {
				fmt.Printf("  %-12s avg %.1f (%d grades)\n", stat.Category, stat.Average, stat.Count)
			}
			for _, g := range grades {
				who := ""
				if g.UserName != "" {
					who = g.UserName + " "
				}
				fmt.Printf("%s %s%-12s %3d by %s — %s\n", g.GradedAt, who, g.Category, g.Score, g.GradedByName, g.Comment)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "show all members' grades (admin)")
	cmd.AddCommand(newGradesAddCmd(portal))
	return cmd
}

func newGradesAddCmd(portal *app.App) *cobra.Command {
	var memberID, score int
	var category, comment string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a grade for a member (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := portal.Session.Current()
			if !app.CanManage(app.SectionGrades, user) {
				return fmt.Errorf("adding grades requires an admin session")
			}
			return portal.Grades.Add(cmd.Context(), user, memberID, category, score, comment)
		},
	}
	cmd.Flags().IntVar(&memberID, "member", 0, "member id")
	cmd.Flags().StringVar(&category, "category", "", "grade category")
	cmd.Flags().IntVar(&score, "score", 0, "score on the 0-100 scale")
	cmd.Flags().StringVar(&comment, "comment", "", "optional comment")
	_ = cmd.MarkFlagRequired("member")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("score")
	return cmd
}
