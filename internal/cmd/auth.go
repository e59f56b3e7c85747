package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teamupapp/teamup/internal/api"
	"github.com/teamupapp/teamup/internal/errors"
	"github.com/teamupapp/teamup/internal/session"
	"github.com/teamupapp/teamup/internal/tui"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication with the TeamMaker backend",
	Long: `Manage your TeamMaker session.

The bearer token is stored in the credentials file and reused across runs
until you log out or the backend rejects it.`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with username or email",
	Long: `Authenticate against the TeamMaker backend and persist the session.

Credentials may be passed via flags; missing values are prompted for
interactively unless --no-input is set.`,
	RunE: runAuthLogin,
}

var authRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and log in",
	Long: `Register a new TeamMaker account.

On success the new credentials are used to log in immediately, so a single
register command leaves you with a working session.`,
	RunE: runAuthRegister,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session",
	RunE:  runAuthLogout,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session state",
	RunE:  runAuthStatus,
}

func init() {
	authLoginCmd.Flags().String("login", "", "username or email")
	authLoginCmd.Flags().String("password", "", "password (prompted when omitted)")

	authRegisterCmd.Flags().String("username", "", "username for the new account")
	authRegisterCmd.Flags().String("email", "", "email address")
	authRegisterCmd.Flags().String("password", "", "password (prompted when omitted)")
	authRegisterCmd.Flags().String("phone", "", "phone number (optional)")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authRegisterCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, args []string) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	login, _ := cmd.Flags().GetString("login")
	password, _ := cmd.Flags().GetString("password")

	if login == "" || password == "" {
		if cc.NoInput {
			return errors.New(errors.ErrCodeAuthInvalidCredentials, "login and password are required").
				WithSuggestion("pass --login and --password, or drop --no-input for interactive prompts")
		}
		input, err := tui.LoginForm()
		if err != nil {
			return err
		}
		login, password = input.Login, input.Password
	}

	result := cc.Session.Login(ctx, login, password)
	if !result.Success {
		return errors.New(errors.ErrCodeAuthInvalidCredentials, result.Error)
	}

	identity := cc.Session.Identity()
	fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", identity.Username)
	return nil
}

func runAuthRegister(cmd *cobra.Command, args []string) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	req := api.RegisterRequest{}
	req.Username, _ = cmd.Flags().GetString("username")
	req.Email, _ = cmd.Flags().GetString("email")
	req.Password, _ = cmd.Flags().GetString("password")
	req.PhoneNumber, _ = cmd.Flags().GetString("phone")

	if req.Username == "" || req.Email == "" || req.Password == "" {
		if cc.NoInput {
			return errors.New(errors.ErrCodeAuthRegisterFailed, "username, email and password are required").
				WithSuggestion("pass --username, --email and --password, or drop --no-input")
		}
		filled, err := tui.RegisterForm()
		if err != nil {
			return err
		}
		req = *filled
	}

	result := cc.Session.Register(ctx, req)
	if !result.Success {
		return errors.New(errors.ErrCodeAuthRegisterFailed, result.Error)
	}

	identity := cc.Session.Identity()
	fmt.Fprintf(cmd.OutOrStdout(), "Account created. Logged in as %s\n", identity.Username)
	return nil
}

func runAuthLogout(cmd *cobra.Command, args []string) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	cc.Session.Logout()
	fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
	return nil
}

// authStatusReport is the structured shape for json/yaml status output
type authStatusReport struct {
	Status   string    `json:"status" yaml:"status"`
	Username string    `json:"username,omitempty" yaml:"username,omitempty"`
	Email    string    `json:"email,omitempty" yaml:"email,omitempty"`
	Token    *tokenAge `json:"token,omitempty" yaml:"token,omitempty"`
}

type tokenAge struct {
	IssuedAt  string `json:"issuedAt,omitempty" yaml:"issuedAt,omitempty"`
	ExpiresAt string `json:"expiresAt,omitempty" yaml:"expiresAt,omitempty"`
	Expired   bool   `json:"expired" yaml:"expired"`
}

func runAuthStatus(cmd *cobra.Command, args []string) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	cc.Session.Initialize(ctx)
	snapshot := cc.Session.Snapshot()

	report := authStatusReport{Status: snapshot.Status.String()}
	if snapshot.Identity != nil {
		report.Username = snapshot.Identity.Username
		report.Email = snapshot.Identity.Email
	}
	if token := cc.Client.Token(); token != "" {
		if info, err := session.ParseTokenInfo(token); err == nil {
			age := &tokenAge{Expired: info.Expired()}
			if !info.IssuedAt.IsZero() {
				age.IssuedAt = info.IssuedAt.Format("2006-01-02 15:04")
			}
			if !info.ExpiresAt.IsZero() {
				age.ExpiresAt = info.ExpiresAt.Format("2006-01-02 15:04")
			}
			report.Token = age
		}
	}

	if !cc.TextOutput() {
		formatter, err := cc.Formatter()
		if err != nil {
			return err
		}
		return formatter.Format(report)
	}

	out := cmd.OutOrStdout()
	if snapshot.Identity == nil {
		fmt.Fprintln(out, "Not logged in.")
		fmt.Fprintln(out, "Run 'teamup auth login' to authenticate.")
		return nil
	}

	fmt.Fprintf(out, "Logged in as %s (%s)\n", report.Username, report.Email)
	if report.Token != nil {
		if report.Token.ExpiresAt != "" {
			fmt.Fprintf(out, "Token expires %s\n", report.Token.ExpiresAt)
		}
		if report.Token.Expired {
			fmt.Fprintln(out, "Token has expired; the next request will require a new login.")
		}
	}
	return nil
}
