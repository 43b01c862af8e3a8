package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"clubportal/internal/app"
)

func newLoginCmd(portal *app.App) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the portal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !portal.Login(cmd.Context(), email, password) {
				return fmt.Errorf("login failed")
			}
			renderStatus(portal)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd(portal *app.App) *cobra.Command {
	var email, password, name string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !portal.Register(cmd.Context(), email, password, name) {
				return fmt.Errorf("registration failed")
			}
			renderStatus(portal)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newLogoutCmd(portal *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the saved session",
		Run: func(cmd *cobra.Command, args []string) {
			portal.Logout(cmd.Context())
		},
	}
}

func newWhoamiCmd(portal *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the active session",
		Run: func(cmd *cobra.Command, args []string) {
			renderStatus(portal)
		},
	}
}
