package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teamupapp/teamup/internal/api"
	"github.com/teamupapp/teamup/internal/errors"
	"github.com/teamupapp/teamup/internal/tui"
	"github.com/teamupapp/teamup/internal/ux"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and edit your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE:  runProfileShow,
}

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit your profile",
	Long: `Update your profile.

Fields may be set via flags; with no flags an interactive form opens,
pre-filled with the current values. Only the fields you change are sent.`,
	RunE: runProfileEdit,
}

func init() {
	profileEditCmd.Flags().String("full-name", "", "display name")
	profileEditCmd.Flags().Int("age", 0, "age")
	profileEditCmd.Flags().StringSlice("skills", nil, "skills (comma-separated)")
	profileEditCmd.Flags().String("bio", "", "short bio")
	profileEditCmd.Flags().String("location", "", "location")
	profileEditCmd.Flags().String("phone", "", "phone number")
	profileEditCmd.Flags().String("telegram", "", "telegram handle")
	profileEditCmd.Flags().String("instagram", "", "instagram handle")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileEditCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	identity, err := cc.RequireIdentity(cmd.Context())
	if err != nil {
		return err
	}

	if !cc.TextOutput() {
		formatter, err := cc.Formatter()
		if err != nil {
			return err
		}
		return formatter.Format(identity)
	}

	fmt.Fprint(cmd.OutOrStdout(), ux.RenderUser(identity))
	return nil
}

func runProfileEdit(cmd *cobra.Command, args []string) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	identity, err := cc.RequireIdentity(ctx)
	if err != nil {
		return err
	}

	update, err := profileUpdateFromFlags(cmd)
	if err != nil {
		return err
	}
	if update == nil {
		if cc.NoInput {
			return errors.New(errors.ErrCodeConfigInvalid, "no profile fields given").
				WithSuggestion("pass at least one field flag, or drop --no-input for the interactive form")
		}
		update, err = tui.ProfileForm(identity)
		if err != nil {
			return err
		}
	}

	result := cc.Session.UpdateIdentity(ctx, *update)
	if !result.Success {
		return errors.New(errors.ErrCodeAPIValidation, result.Error)
	}

	fmt.Fprint(cmd.OutOrStdout(), ux.RenderUser(cc.Session.Identity()))
	return nil
}

// profileUpdateFromFlags builds an update from changed flags only,
// returning nil when no field flag was set.
func profileUpdateFromFlags(cmd *cobra.Command) (*api.ProfileUpdate, error) {
	update := api.ProfileUpdate{}
	changed := false

	stringField := func(flag string, target **string) {
		if cmd.Flags().Changed(flag) {
			v, _ := cmd.Flags().GetString(flag)
			*target = &v
			changed = true
		}
	}

	stringField("full-name", &update.FullName)
	stringField("bio", &update.Bio)
	stringField("location", &update.Location)
	stringField("phone", &update.Phone)
	stringField("telegram", &update.Telegram)
	stringField("instagram", &update.Instagram)

	if cmd.Flags().Changed("age") {
		age, _ := cmd.Flags().GetInt("age")
		if age < 0 || age > 150 {
			return nil, errors.New(errors.ErrCodeConfigInvalid, "age must be between 0 and 150")
		}
		update.Age = &age
		changed = true
	}
	if cmd.Flags().Changed("skills") {
		skills, _ := cmd.Flags().GetStringSlice("skills")
		update.Skills = skills
		changed = true
	}

	if !changed {
		return nil, nil
	}
	return &update, nil
}
