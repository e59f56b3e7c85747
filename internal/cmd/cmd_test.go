package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamupapp/teamup/internal/errors"
)

func subcommandNames(cmd *cobra.Command) []string {
	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	return names
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "teamup", rootCmd.Use)
	assert.True(t, rootCmd.SilenceUsage)
	assert.True(t, rootCmd.SilenceErrors)

	names := subcommandNames(rootCmd)
	for _, want := range []string{"auth", "profile", "users", "project", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestRootPersistentFlags(t *testing.T) {
	for _, flag := range []string{"config", "api-url", "format", "log-level", "no-input"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), "missing persistent flag %s", flag)
	}
}

func TestAuthSubcommands(t *testing.T) {
	names := subcommandNames(authCmd)
	for _, want := range []string{"login", "register", "logout", "status"} {
		assert.Contains(t, names, want)
	}
}

func TestProjectSubcommands(t *testing.T) {
	names := subcommandNames(projectCmd)
	for _, want := range []string{"list", "mine", "show", "create", "edit", "delete", "join", "leave"} {
		assert.Contains(t, names, want)
	}
}

func TestProjectCommandsRequireIDArg(t *testing.T) {
	for _, cmd := range []*cobra.Command{projectShowCmd, projectEditCmd, projectDeleteCmd, projectJoinCmd, projectLeaveCmd} {
		err := cmd.Args(cmd, nil)
		assert.Error(t, err, "%s should require an argument", cmd.Name())
	}
}

func TestParseProjectID(t *testing.T) {
	_, err := parseProjectID("not-a-uuid")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeProjectInvalidID, errors.CodeOf(err))

	id, err := parseProjectID("a9f3dd7e-3f0a-4cf5-9db1-6a6dd7cf72aa")
	require.NoError(t, err)
	assert.Equal(t, "a9f3dd7e-3f0a-4cf5-9db1-6a6dd7cf72aa", id.String())
}

func TestProfileUpdateFromFlags(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("full-name", "", "")
	cmd.Flags().Int("age", 0, "")
	cmd.Flags().StringSlice("skills", nil, "")
	cmd.Flags().String("bio", "", "")
	cmd.Flags().String("location", "", "")
	cmd.Flags().String("phone", "", "")
	cmd.Flags().String("telegram", "", "")
	cmd.Flags().String("instagram", "", "")

	update, err := profileUpdateFromFlags(cmd)
	require.NoError(t, err)
	assert.Nil(t, update, "no changed flags should yield no update")

	require.NoError(t, cmd.Flags().Set("full-name", "Alice Example"))
	require.NoError(t, cmd.Flags().Set("age", "27"))
	require.NoError(t, cmd.Flags().Set("skills", "go,sql"))

	update, err = profileUpdateFromFlags(cmd)
	require.NoError(t, err)
	require.NotNil(t, update)
	require.NotNil(t, update.FullName)
	assert.Equal(t, "Alice Example", *update.FullName)
	require.NotNil(t, update.Age)
	assert.Equal(t, 27, *update.Age)
	assert.Equal(t, []string{"go", "sql"}, update.Skills)
	assert.Nil(t, update.Bio, "untouched fields stay unset")
}

func TestProfileUpdateRejectsBadAge(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("full-name", "", "")
	cmd.Flags().Int("age", 0, "")
	cmd.Flags().StringSlice("skills", nil, "")
	cmd.Flags().String("bio", "", "")
	cmd.Flags().String("location", "", "")
	cmd.Flags().String("phone", "", "")
	cmd.Flags().String("telegram", "", "")
	cmd.Flags().String("instagram", "", "")
	require.NoError(t, cmd.Flags().Set("age", "200"))

	_, err := profileUpdateFromFlags(cmd)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigInvalid, errors.CodeOf(err))
}

func TestProjectRequestFromFlags(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("name", "", "")
	cmd.Flags().String("type", "", "")
	cmd.Flags().String("sphere", "", "")
	cmd.Flags().String("description", "", "")
	cmd.Flags().StringSlice("skills", nil, "")
	cmd.Flags().StringSlice("roles", nil, "")
	cmd.Flags().String("location", "", "")

	require.NoError(t, cmd.Flags().Set("name", "Campus Robotics"))
	require.NoError(t, cmd.Flags().Set("sphere", "education"))
	require.NoError(t, cmd.Flags().Set("skills", "ros,python"))

	req := projectRequestFromFlags(cmd)
	assert.Equal(t, "Campus Robotics", req.Name)
	assert.Equal(t, "education", req.Sphere)
	assert.Equal(t, []string{"ros", "python"}, req.RequiredSkills)
}
