// Package screen holds the per-session view state of the users screen and
// reconciles it with the users table after each acknowledged remote call.
package screen

import (
	"context"
	"fmt"
	"sync"

	"users-management/internal/entities"
	"users-management/internal/usecase"

	"go.uber.org/zap"
)

// Controller owns the view state of one mounted screen.
//
// The mutex is never held across a remote call: each operation snapshots what
// it needs, awaits the users table, then applies its patch under the lock.
// Overlapping calls may therefore complete and be applied in any order.
type Controller struct {
	log   *zap.SugaredLogger
	users usecase.UserUsecaseInterface

	mu    sync.Mutex
	state State
}

// NewController returns an unmounted controller with an empty user list.
func NewController(log *zap.SugaredLogger, users usecase.UserUsecaseInterface) *Controller {
	return &Controller{
		log:   log,
		users: users,
		state: State{Users: []entities.User{}},
	}
}

// detach keeps remote calls running when the triggering request goes away.
func detach(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}

// readyLocked reports whether the screen accepts actions. Callers hold c.mu.
func (c *Controller) readyLocked() error {
	if c.state.Status != StatusReady {
		return fmt.Errorf("%w: screen is %s", entities.ErrViewUnavailable, c.state.Status)
	}
	return nil
}

// Mount loads every user once. Later calls are no-ops, so a failed load stays
// terminal for the lifetime of the controller.
func (c *Controller) Mount(ctx context.Context) error {
	c.mu.Lock()
	if c.state.Status != StatusIdle {
		c.mu.Unlock()
		return nil
	}
	c.state.Status = StatusLoading
	c.mu.Unlock()

	users, err := c.users.ListUsers(detach(ctx))

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.log.Errorw("failed to fetch users", "error", err)
		c.state.Status = StatusFailed
		c.state.LoadError = err.Error()
		return err
	}
	if users == nil {
		users = []entities.User{}
	}
	c.state.Users = users
	c.state.Status = StatusReady
	c.log.Debugw("users loaded", "count", len(users))
	return nil
}

// SetDraft mirrors the form inputs into the draft fields.
func (c *Controller) SetDraft(name, age string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Draft = entities.UserDraft{Name: name, Age: age}
}

// Submit updates the edit target in edit mode and creates a user otherwise.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	editing := c.state.EditMode
	c.mu.Unlock()

	if editing {
		return c.Update(ctx)
	}
	return c.Create(ctx)
}

// Create inserts the draft and appends the stored row.
func (c *Controller) Create(ctx context.Context) error {
	c.mu.Lock()
	if err := c.readyLocked(); err != nil {
		c.mu.Unlock()
		return err
	}
	draft := c.state.Draft
	c.mu.Unlock()

	user, err := c.users.CreateUser(detach(ctx), draft)
	if err != nil {
		c.log.Errorw("failed to add user", "error", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Users = append(c.state.Users, *user)
	c.state.Draft = entities.UserDraft{}
	return nil
}

// BeginEdit copies the user's fields into the draft and makes it the edit target.
func (c *Controller) BeginEdit(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.readyLocked(); err != nil {
		return err
	}
	i := c.state.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: id %d", entities.ErrUserNotFound, id)
	}
	c.state.Draft = c.state.Users[i].Draft()
	c.state.EditID = id
	c.state.EditMode = true
	return nil
}

// Update writes the draft to the edit target and replaces the local row with
// the stored one.
func (c *Controller) Update(ctx context.Context) error {
	c.mu.Lock()
	if err := c.readyLocked(); err != nil {
		c.mu.Unlock()
		return err
	}
	if !c.state.EditMode {
		c.mu.Unlock()
		return entities.ErrNotEditing
	}
	id, draft := c.state.EditID, c.state.Draft
	c.mu.Unlock()

	user, err := c.users.UpdateUser(detach(ctx), id, draft)
	if err != nil {
		c.log.Errorw("failed to update user", "error", err, "user_id", id)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.state.indexOf(id); i >= 0 {
		c.state.Users[i] = *user
	}
	c.state.resetForm()
	return nil
}

// Delete removes the user remotely, then drops it from the local list.
func (c *Controller) Delete(ctx context.Context, id int64) error {
	c.mu.Lock()
	if err := c.readyLocked(); err != nil {
		c.mu.Unlock()
		return err
	}
	c.mu.Unlock()

	if err := c.users.DeleteUser(detach(ctx), id); err != nil {
		c.log.Errorw("failed to delete user", "error", err, "user_id", id)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	kept := make([]entities.User, 0, len(c.state.Users))
	for _, u := range c.state.Users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	c.state.Users = kept
	return nil
}

// Snapshot returns a copy of the current view state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}
