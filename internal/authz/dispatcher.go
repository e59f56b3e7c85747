package authz

import (
	"context"
	"sync"

	"github.com/teamupapp/teamup/internal/api"
	"github.com/teamupapp/teamup/internal/errors"
	"github.com/teamupapp/teamup/internal/log"
)

// Signal tells the caller what to do after a successful action
type Signal int

const (
	// SignalNone means no follow-up is needed
	SignalNone Signal = iota
	// SignalReload means the caller should re-fetch the project
	SignalReload
	// SignalNavigateAway means the project no longer exists
	SignalNavigateAway
)

// State is the dispatcher's per-invocation lifecycle
type State int

const (
	// StateIdle means no action is in flight; new invocations may start
	StateIdle State = iota
	// StateInFlight means an action is executing
	StateInFlight
)

// Dispatcher executes role-gated project mutations. Each invocation makes
// exactly one attempt; retry is the user's decision. The dispatcher holds no
// cross-invocation lock beyond rejecting a start while another action is in
// flight, and it never caches project state.
type Dispatcher struct {
	client *api.Client
	logger *log.Logger

	mu    sync.Mutex
	state State
}

// NewDispatcher creates a dispatcher bound to an API client
func NewDispatcher(client *api.Client, logger *log.Logger) *Dispatcher {
	return &Dispatcher{
		client: client,
		logger: logger,
	}
}

// State returns the current invocation state
func (d *Dispatcher) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// begin transitions Idle -> InFlight, rejecting concurrent invocations
func (d *Dispatcher) begin() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != StateIdle {
		return errors.New(errors.ErrCodeProjectActionInFlight, "another project action is already in flight")
	}
	d.state = StateInFlight
	return nil
}

// end returns the dispatcher to Idle so the user may retry manually
func (d *Dispatcher) end() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = StateIdle
}

// Join adds the identity to the project's members. Valid only for an
// authenticated Guest; an anonymous caller is told to log in instead of
// the API being called.
func (d *Dispatcher) Join(ctx context.Context, project *api.Project, identity *api.User) (Signal, error) {
	if identity == nil {
		return SignalNone, errors.New(errors.ErrCodeAuthLoginRequired, "joining a project requires authentication").
			WithSuggestion("run 'teamup auth login' first")
	}

	switch role := ComputeRole(identity, project); role {
	case RoleOwner:
		return SignalNone, errors.New(errors.ErrCodeProjectNotPermitted, "you own this project")
	case RoleMember:
		return SignalNone, errors.New(errors.ErrCodeProjectNotPermitted, "you are already a member of this project")
	}

	if err := d.begin(); err != nil {
		return SignalNone, err
	}
	defer d.end()

	if err := d.client.AddMember(ctx, project.ID, identity.ID); err != nil {
		d.logger.WithError(err).Debug("join failed", "project", project.ID)
		return SignalNone, err
	}

	d.logger.Info("joined project", "project", project.ID, "user", identity.ID)
	return SignalReload, nil
}

// Leave removes the identity from the project's members. Valid only for a Member.
func (d *Dispatcher) Leave(ctx context.Context, project *api.Project, identity *api.User) (Signal, error) {
	if role := ComputeRole(identity, project); role != RoleMember {
		if role == RoleOwner {
			return SignalNone, errors.New(errors.ErrCodeProjectNotPermitted, "owners cannot leave their own project").
				WithSuggestion("delete the project instead, or transfer ownership server-side")
		}
		return SignalNone, errors.New(errors.ErrCodeProjectNotPermitted, "you are not a member of this project")
	}

	if err := d.begin(); err != nil {
		return SignalNone, err
	}
	defer d.end()

	if err := d.client.RemoveMember(ctx, project.ID, identity.ID); err != nil {
		d.logger.WithError(err).Debug("leave failed", "project", project.ID)
		return SignalNone, err
	}

	d.logger.Info("left project", "project", project.ID, "user", identity.ID)
	return SignalReload, nil
}

// Edit updates the project. Valid only for the Owner.
func (d *Dispatcher) Edit(ctx context.Context, project *api.Project, identity *api.User, req api.ProjectRequest) (Signal, error) {
	if ComputeRole(identity, project) != RoleOwner {
		return SignalNone, errors.New(errors.ErrCodeProjectNotPermitted, "only the project owner can edit it")
	}

	if err := d.begin(); err != nil {
		return SignalNone, err
	}
	defer d.end()

	if _, err := d.client.UpdateProject(ctx, project.ID, req); err != nil {
		d.logger.WithError(err).Debug("edit failed", "project", project.ID)
		return SignalNone, err
	}

	return SignalReload, nil
}

// Delete deletes the project. Valid only for the Owner, and only when the
// caller supplies a positive confirmation: without it, no request is issued.
func (d *Dispatcher) Delete(ctx context.Context, project *api.Project, identity *api.User, confirmed bool) (Signal, error) {
	if ComputeRole(identity, project) != RoleOwner {
		return SignalNone, errors.New(errors.ErrCodeProjectNotPermitted, "only the project owner can delete it")
	}

	if !confirmed {
		return SignalNone, errors.New(errors.ErrCodeProjectNotConfirmed, "deletion was not confirmed")
	}

	if err := d.begin(); err != nil {
		return SignalNone, err
	}
	defer d.end()

	if err := d.client.DeleteProject(ctx, project.ID); err != nil {
		d.logger.WithError(err).Debug("delete failed", "project", project.ID)
		return SignalNone, err
	}

	d.logger.Info("deleted project", "project", project.ID)
	return SignalNavigateAway, nil
}
