package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmynk/studyflow/internal/focus"
	"github.com/mmynk/studyflow/pkg/api"
)

var (
	loginUsername string
	loginPhone    string
	loginGrade    string
	loginGoal     string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Create the local profile",
	Long: `Stores a fresh profile on the server. Logging in again replaces the
profile and resets its study minutes; your plan, logs and friends are kept.`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the local profile",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the current profile",
	Args:  cobra.NoArgs,
	RunE:  runProfile,
}

var focusCmd = &cobra.Command{
	Use:   "focus <minutes>",
	Short: "Run a focus timer and log the session",
	Long: `Counts down the given minutes. Completing the timer logs the full
session; stopping early with Ctrl-C logs the whole minutes studied so far.`,
	Args: cobra.ExactArgs(1),
	RunE: runFocus,
}

func init() {
	loginCmd.Flags().StringVar(&loginUsername, "username", "", "display name (required)")
	loginCmd.Flags().StringVar(&loginPhone, "phone", "", "phone number, at least 10 characters (required)")
	loginCmd.Flags().StringVar(&loginGrade, "grade", "", "grade, default 11th")
	loginCmd.Flags().StringVar(&loginGoal, "goal", "", "preparation goal, default JEE")
	_ = loginCmd.MarkFlagRequired("username")
	_ = loginCmd.MarkFlagRequired("phone")

	rootCmd.AddCommand(loginCmd, logoutCmd, profileCmd, focusCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	resp, err := newClient().Login(cmd.Context(), &api.LoginRequest{
		Username:    loginUsername,
		PhoneNumber: loginPhone,
		Grade:       loginGrade,
		PrepGoal:    loginGoal,
	})
	if err != nil {
		return err
	}
	p := resp.Profile
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s, %s)\n", successStyle.Render("Welcome,"), titleStyle.Render(p.Username), p.Grade, p.PrepGoal)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	if err := newClient().Logout(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("Logged out."))
	return nil
}

func runProfile(cmd *cobra.Command, args []string) error {
	resp, err := newClient().GetProfile(cmd.Context())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if resp.Profile == nil {
		fmt.Fprintln(out, mutedStyle.Render("Not logged in. Run `studyflow login`."))
		return nil
	}
	p := resp.Profile
	fmt.Fprintln(out, boxStyle.Render(fmt.Sprintf("%s\nPhone: %s\nGrade: %s\nGoal:  %s\nStudied: %dh %dm",
		titleStyle.Render(p.Username), p.PhoneNumber, p.Grade, p.PrepGoal,
		p.TotalStudyMinutes/60, p.TotalStudyMinutes%60)))
	return nil
}

func runFocus(cmd *cobra.Command, args []string) error {
	minutes, err := parsePositive(args[0])
	if err != nil {
		return fmt.Errorf("invalid minutes %q: %w", args[0], err)
	}
	out := cmd.OutOrStdout()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(out, "%s %d minutes. Ctrl-C to stop early.\n", titleStyle.Render("Focus:"), minutes)
	session := focus.Run(ctx, time.Duration(minutes)*time.Minute, focus.DefaultInterval, func(remaining time.Duration) {
		fmt.Fprintf(out, "\r%s remaining ", formatClock(remaining))
	})
	fmt.Fprintln(out)

	credit := session.Minutes()
	if credit == 0 {
		fmt.Fprintln(out, mutedStyle.Render("Less than a minute studied, nothing logged."))
		return nil
	}

	// The interrupt cancelled ctx; logging still has to go through.
	resp, err := newClient().LogSession(context.WithoutCancel(cmd.Context()), &api.LogSessionRequest{Minutes: credit})
	if err != nil {
		return err
	}
	msg := fmt.Sprintf("Logged %d minutes.", resp.Log.DurationMinutes)
	if resp.Profile != nil {
		msg += fmt.Sprintf(" Total: %dh %dm.", resp.Profile.TotalStudyMinutes/60, resp.Profile.TotalStudyMinutes%60)
	}
	fmt.Fprintln(out, successStyle.Render(msg))
	return nil
}

// formatClock renders d as mm:ss.
func formatClock(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d/time.Minute), int(d%time.Minute/time.Second))
}
