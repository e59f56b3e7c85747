package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/teamupapp/teamup/internal/errors"
	"github.com/teamupapp/teamup/internal/ux"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Browse people on the platform",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users, optionally filtered by search text",
	RunE:  runUsersList,
}

var usersShowCmd = &cobra.Command{
	Use:   "show <user-id>",
	Short: "Show a user's profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runUsersShow,
}

func init() {
	usersListCmd.Flags().String("search", "", "filter by name, username or skills")

	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersShowCmd)
	rootCmd.AddCommand(usersCmd)
}

func runUsersList(cmd *cobra.Command, args []string) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	cc.Session.Initialize(ctx)

	search, _ := cmd.Flags().GetString("search")
	users, err := cc.Client.ListUsers(ctx, search)
	if err != nil {
		return err
	}

	if !cc.TextOutput() {
		formatter, err := cc.Formatter()
		if err != nil {
			return err
		}
		return formatter.Format(users)
	}

	fmt.Fprint(cmd.OutOrStdout(), ux.RenderUserList(users))
	return nil
}

func runUsersShow(cmd *cobra.Command, args []string) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	cc.Session.Initialize(ctx)

	userID, err := uuid.Parse(args[0])
	if err != nil {
		return errors.New(errors.ErrCodeAPIValidation, "invalid user id: "+args[0])
	}

	user, err := cc.Client.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	if !cc.TextOutput() {
		formatter, err := cc.Formatter()
		if err != nil {
			return err
		}
		return formatter.Format(user)
	}

	fmt.Fprint(cmd.OutOrStdout(), ux.RenderUser(user))
	return nil
}
