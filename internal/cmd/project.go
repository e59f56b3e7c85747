package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/teamupapp/teamup/internal/api"
	"github.com/teamupapp/teamup/internal/authz"
	"github.com/teamupapp/teamup/internal/errors"
	"github.com/teamupapp/teamup/internal/tui"
	"github.com/teamupapp/teamup/internal/ux"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Browse, create and manage projects",
	Long: `Browse projects looking for teammates, create your own, and join or
leave teams. What you can do with a project depends on your relation to it:
owners edit and delete, members leave, everyone else may join.`,
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	RunE:  runProjectList,
}

var projectMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List projects you own or belong to",
	RunE:  runProjectMine,
}

var projectShowCmd = &cobra.Command{
	Use:   "show <project-id>",
	Short: "Show a project and your available actions",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectShow,
}

var projectCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a project",
	RunE:  runProjectCreate,
}

var projectEditCmd = &cobra.Command{
	Use:   "edit <project-id>",
	Short: "Edit a project you own",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectEdit,
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <project-id>",
	Short: "Delete a project you own",
	Long: `Delete a project. Deletion is permanent and requires confirmation:
either answer the prompt or pass --yes.`,
	Args: cobra.ExactArgs(1),
	RunE: runProjectDelete,
}

var projectJoinCmd = &cobra.Command{
	Use:   "join <project-id>",
	Short: "Join a project's team",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectJoin,
}

var projectLeaveCmd = &cobra.Command{
	Use:   "leave <project-id>",
	Short: "Leave a project's team",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectLeave,
}

func init() {
	projectListCmd.Flags().String("search", "", "filter by name or description")
	projectListCmd.Flags().String("sphere", "", "filter by sphere")
	projectListCmd.Flags().String("type", "", "filter by project type")
	projectListCmd.Flags().BoolP("interactive", "i", false, "browse results in an interactive picker")

	projectCreateCmd.Flags().String("name", "", "project name")
	projectCreateCmd.Flags().String("type", "", "project type")
	projectCreateCmd.Flags().String("sphere", "", "project sphere")
	projectCreateCmd.Flags().String("description", "", "description")
	projectCreateCmd.Flags().StringSlice("skills", nil, "required skills (comma-separated)")
	projectCreateCmd.Flags().StringSlice("roles", nil, "open roles (comma-separated)")
	projectCreateCmd.Flags().String("location", "", "location")

	projectDeleteCmd.Flags().BoolP("yes", "y", false, "confirm deletion without prompting")

	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectMineCmd)
	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectEditCmd)
	projectCmd.AddCommand(projectDeleteCmd)
	projectCmd.AddCommand(projectJoinCmd)
	projectCmd.AddCommand(projectLeaveCmd)
	rootCmd.AddCommand(projectCmd)
}

func parseProjectID(arg string) (uuid.UUID, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return uuid.Nil, errors.New(errors.ErrCodeProjectInvalidID, "invalid project id: "+arg).
			WithSuggestion("project ids are UUIDs; copy one from 'teamup project list'")
	}
	return id, nil
}

func runProjectList(cmd *cobra.Command, args []string) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	identity := cc.CurrentIdentity(ctx)

	filter := api.ProjectFilter{}
	filter.Search, _ = cmd.Flags().GetString("search")
	filter.Sphere, _ = cmd.Flags().GetString("sphere")
	filter.Type, _ = cmd.Flags().GetString("type")
	interactive, _ := cmd.Flags().GetBool("interactive")

	projects, err := cc.Client.ListProjects(ctx, filter)
	if err != nil {
		return err
	}

	if interactive && cc.TextOutput() && !cc.NoInput {
		selected, err := tui.BrowseProjects(projects)
		if err != nil {
			return err
		}
		if selected == nil {
			return nil
		}
		role := authz.ComputeRole(identity, selected)
		fmt.Fprint(cmd.OutOrStdout(), ux.RenderProject(selected, role))
		printAvailableActions(cmd, role)
		return nil
	}

	if !cc.TextOutput() {
		formatter, err := cc.Formatter()
		if err != nil {
			return err
		}
		return formatter.Format(projects)
	}

	fmt.Fprint(cmd.OutOrStdout(), ux.RenderProjectList(projects))
	return nil
}

func runProjectMine(cmd *cobra.Command, args []string) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if _, err := cc.RequireIdentity(ctx); err != nil {
		return err
	}

	projects, err := cc.Client.MyProjects(ctx)
	if err != nil {
		return err
	}

	if !cc.TextOutput() {
		formatter, err := cc.Formatter()
		if err != nil {
			return err
		}
		return formatter.Format(projects)
	}

	fmt.Fprint(cmd.OutOrStdout(), ux.RenderProjectList(projects))
	return nil
}

func runProjectShow(cmd *cobra.Command, args []string) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	identity := cc.CurrentIdentity(ctx)

	projectID, err := parseProjectID(args[0])
	if err != nil {
		return err
	}

	project, err := cc.Client.GetProject(ctx, projectID)
	if err != nil {
		return err
	}

	if !cc.TextOutput() {
		formatter, err := cc.Formatter()
		if err != nil {
			return err
		}
		return formatter.Format(project)
	}

	role := authz.ComputeRole(identity, project)
	fmt.Fprint(cmd.OutOrStdout(), ux.RenderProject(project, role))
	printAvailableActions(cmd, role)
	return nil
}

func printAvailableActions(cmd *cobra.Command, role authz.Role) {
	actions := authz.ActionsFor(role)
	if len(actions) == 0 {
		return
	}
	line := "Available actions:"
	for _, a := range actions {
		line += " " + string(a)
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
}

func runProjectCreate(cmd *cobra.Command, args []string) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if _, err := cc.RequireIdentity(ctx); err != nil {
		return err
	}

	req := projectRequestFromFlags(cmd)
	if req.Name == "" {
		if cc.NoInput {
			return errors.New(errors.ErrCodeConfigInvalid, "project name is required").
				WithSuggestion("pass --name, or drop --no-input for the interactive form")
		}
		filled, err := tui.ProjectForm(req)
		if err != nil {
			return err
		}
		req = *filled
	}

	project, err := cc.Client.CreateProject(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created project %s (%s)\n", project.Name, project.ID)
	return nil
}

func runProjectEdit(cmd *cobra.Command, args []string) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	identity, err := cc.RequireIdentity(ctx)
	if err != nil {
		return err
	}

	projectID, err := parseProjectID(args[0])
	if err != nil {
		return err
	}

	project, err := cc.Client.GetProject(ctx, projectID)
	if err != nil {
		return err
	}

	if authz.ComputeRole(identity, project) != authz.RoleOwner {
		return errors.New(errors.ErrCodeProjectNotPermitted, "only the project owner can edit it")
	}

	if cc.NoInput {
		return errors.New(errors.ErrCodeConfigInvalid, "project edit is interactive").
			WithSuggestion("drop --no-input to open the edit form")
	}

	req, err := tui.ProjectForm(api.ProjectRequest{
		Name:           project.Name,
		Type:           project.Type,
		Sphere:         project.Sphere,
		Description:    project.Description,
		RequiredSkills: project.RequiredSkills,
		Location:       project.Location,
		Team:           project.Team,
	})
	if err != nil {
		return err
	}

	signal, err := cc.Dispatcher.Edit(ctx, project, identity, *req)
	if err != nil {
		return err
	}

	if signal == authz.SignalReload {
		updated, err := cc.Client.GetProject(ctx, projectID)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), ux.RenderProject(updated, authz.RoleOwner))
	}
	return nil
}

func runProjectDelete(cmd *cobra.Command, args []string) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	identity, err := cc.RequireIdentity(ctx)
	if err != nil {
		return err
	}

	projectID, err := parseProjectID(args[0])
	if err != nil {
		return err
	}

	project, err := cc.Client.GetProject(ctx, projectID)
	if err != nil {
		return err
	}

	confirmed, _ := cmd.Flags().GetBool("yes")
	if !confirmed && !cc.NoInput {
		confirmed, err = tui.PromptForConfirmation(
			fmt.Sprintf("Delete project %q? This cannot be undone.", project.Name), false)
		if err != nil {
			return err
		}
	}

	signal, err := cc.Dispatcher.Delete(ctx, project, identity, confirmed)
	if err != nil {
		return err
	}

	if signal == authz.SignalNavigateAway {
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted project %s\n", project.Name)
	}
	return nil
}

func runProjectJoin(cmd *cobra.Command, args []string) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	identity := cc.CurrentIdentity(ctx)

	projectID, err := parseProjectID(args[0])
	if err != nil {
		return err
	}

	project, err := cc.Client.GetProject(ctx, projectID)
	if err != nil {
		return err
	}

	signal, err := cc.Dispatcher.Join(ctx, project, identity)
	if err != nil {
		return err
	}

	if signal == authz.SignalReload {
		updated, err := cc.Client.GetProject(ctx, projectID)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Joined %s (%d members)\n", updated.Name, len(updated.Members))
	}
	return nil
}

func runProjectLeave(cmd *cobra.Command, args []string) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	identity := cc.CurrentIdentity(ctx)

	projectID, err := parseProjectID(args[0])
	if err != nil {
		return err
	}

	project, err := cc.Client.GetProject(ctx, projectID)
	if err != nil {
		return err
	}

	signal, err := cc.Dispatcher.Leave(ctx, project, identity)
	if err != nil {
		return err
	}

	if signal == authz.SignalReload {
		fmt.Fprintf(cmd.OutOrStdout(), "Left %s\n", project.Name)
	}
	return nil
}

func projectRequestFromFlags(cmd *cobra.Command) api.ProjectRequest {
	req := api.ProjectRequest{}
	req.Name, _ = cmd.Flags().GetString("name")
	req.Type, _ = cmd.Flags().GetString("type")
	req.Sphere, _ = cmd.Flags().GetString("sphere")
	req.Description, _ = cmd.Flags().GetString("description")
	req.RequiredSkills, _ = cmd.Flags().GetStringSlice("skills")
	req.Team, _ = cmd.Flags().GetStringSlice("roles")
	req.Location, _ = cmd.Flags().GetString("location")
	return req
}
