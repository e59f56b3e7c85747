package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/teamupapp/teamup/internal/api"
	"github.com/teamupapp/teamup/internal/authz"
	"github.com/teamupapp/teamup/internal/config"
	"github.com/teamupapp/teamup/internal/errors"
	"github.com/teamupapp/teamup/internal/log"
	"github.com/teamupapp/teamup/internal/session"
	"github.com/teamupapp/teamup/internal/ux"
)

// CommandContext bundles the wired-up services every command needs. One is
// built per invocation from the resolved configuration and the persistent
// flags; commands only read from it.
type CommandContext struct {
	Config     config.Config
	Logger     *log.Logger
	Client     *api.Client
	Session    *session.Manager
	Dispatcher *authz.Dispatcher

	Format  string
	NoInput bool
}

// NewCommandContext resolves configuration and wires the service graph:
// config -> logger -> API client -> session manager -> dispatcher.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	configPath, _ := cmd.Flags().GetString("config")
	apiURL, _ := cmd.Flags().GetString("api-url")
	format, _ := cmd.Flags().GetString("format")
	logLevel, _ := cmd.Flags().GetString("log-level")
	noInput, _ := cmd.Flags().GetBool("no-input")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	logger := log.New(log.Config{
		Level:  log.ParseLevel(cfg.LogLevel),
		Format: log.ParseFormat(cfg.LogFormat),
		Output: log.OutputStderr(),
	})
	log.SetDefaultLogger(logger)

	client := api.NewClient(cfg.APIURL, api.WithLogger(logger))
	store := session.NewFileStore(cfg.CredentialsFile)
	sess := session.NewManager(client, store, logger)
	dispatcher := authz.NewDispatcher(client, logger)

	return &CommandContext{
		Config:     cfg,
		Logger:     logger,
		Client:     client,
		Session:    sess,
		Dispatcher: dispatcher,
		Format:     format,
		NoInput:    noInput,
	}, nil
}

// Formatter returns the output formatter selected by the --format flag
func (cc *CommandContext) Formatter() (ux.Formatter, error) {
	return ux.NewFormatter(cc.Format, &ux.FormatterOptions{Writer: os.Stdout})
}

// TextOutput reports whether output goes through the human-readable renderer
func (cc *CommandContext) TextOutput() bool {
	return cc.Format == "" || cc.Format == "text"
}

// RequireIdentity bootstraps the session and returns the authenticated user,
// or a coded error directing the user to log in.
func (cc *CommandContext) RequireIdentity(ctx context.Context) (*api.User, error) {
	cc.Session.Initialize(ctx)
	snapshot := cc.Session.Snapshot()
	if snapshot.Status != session.StatusAuthenticated {
		return nil, errors.New(errors.ErrCodeAuthNotLoggedIn, "not logged in").
			WithSuggestion("run 'teamup auth login' to authenticate")
	}
	return snapshot.Identity, nil
}

// CurrentIdentity bootstraps the session and returns the identity, which is
// nil when anonymous. Commands that work either way use this instead of
// RequireIdentity.
func (cc *CommandContext) CurrentIdentity(ctx context.Context) *api.User {
	cc.Session.Initialize(ctx)
	return cc.Session.Identity()
}
