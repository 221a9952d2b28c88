package handlers_fiber

import (
	"github.com/gofiber/fiber/v2"
)

// GetScreen mounts the session's screen on first visit and renders it.
func (h *Handler) GetScreen(c *fiber.Ctx) error {
	ctrl, err := controller(c)
	if err != nil {
		h.log.Errorw("failed to resolve screen", "error", err.Error())
		return writeError(c, err)
	}

	// A failed load is recorded in the screen state and rendered below.
	_ = ctrl.Mount(c.UserContext())
	return h.renderState(c, ctrl.Snapshot())
}

// PostSubmit mirrors the form into the draft and submits it. Remote failures
// are logged by the controller and otherwise ignored.
func (h *Handler) PostSubmit(c *fiber.Ctx) error {
	ctrl, err := controller(c)
	if err != nil {
		h.log.Errorw("failed to resolve screen", "error", err.Error())
		return writeError(c, err)
	}

	ctrl.SetDraft(c.FormValue("name"), c.FormValue("age"))
	if err := ctrl.Submit(c.UserContext()); err != nil {
		h.log.Debugw("submit not applied", "error", err.Error())
	}
	return h.afterAction(c, ctrl)
}

// PostBeginEdit makes the user the form's edit target.
func (h *Handler) PostBeginEdit(c *fiber.Ctx) error {
	ctrl, err := controller(c)
	if err != nil {
		h.log.Errorw("failed to resolve screen", "error", err.Error())
		return writeError(c, err)
	}
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := ctrl.BeginEdit(id); err != nil {
		h.log.Debugw("edit not started", "error", err.Error(), "user_id", id)
	}
	return h.afterAction(c, ctrl)
}

// PostDelete deletes the user and drops it from the screen.
func (h *Handler) PostDelete(c *fiber.Ctx) error {
	ctrl, err := controller(c)
	if err != nil {
		h.log.Errorw("failed to resolve screen", "error", err.Error())
		return writeError(c, err)
	}
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := ctrl.Delete(c.UserContext(), id); err != nil {
		h.log.Debugw("delete not applied", "error", err.Error(), "user_id", id)
	}
	return h.afterAction(c, ctrl)
}
