package handlers_fiber

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"users-management/internal/entities"
	"users-management/internal/mapper"
	"users-management/internal/screen"
	"users-management/internal/transport/http/middleware"
	"users-management/internal/view"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
)

var errNoSession = errors.New("no screen bound to request")

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, entities.ErrUserNotFound):
		status = http.StatusNotFound
		msg = "resource not found"
	}

	return c.Status(status).SendString(msg)
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid user id %q", entities.ErrInvalidArgument, c.Params("id"))
	}
	return id, nil
}

func controller(c *fiber.Ctx) (*screen.Controller, error) {
	ctrl := middleware.Controller(c)
	if ctrl == nil {
		return nil, errNoSession
	}
	return ctrl, nil
}

// renderState writes the screen for st: the bare fragment for htmx requests,
// the full document otherwise. htmx only swaps 2xx responses, so a failed load
// is a 500 on full pages alone.
func (h *Handler) renderState(c *fiber.Ctx, st screen.State) error {
	status := http.StatusOK
	var fragment templ.Component

	switch st.Status {
	case screen.StatusFailed:
		fragment = view.Failure(st.LoadError)
		status = http.StatusInternalServerError
	case screen.StatusReady:
		locale := view.ResolveLocale(c.Get(fiber.HeaderAcceptLanguage))
		fragment = view.Screen(mapper.ToPageView(st, h.title, locale, h.loc))
	default:
		fragment = view.Loading()
	}

	page := fragment
	if middleware.IsHTMX(c) {
		status = http.StatusOK
	} else {
		page = view.Layout(h.title, fragment)
	}

	c.Status(status)
	c.Type("html", "utf-8")
	return page.Render(c.UserContext(), c.Response().BodyWriter())
}

// afterAction answers a form post: htmx gets the updated fragment, plain
// browsers are redirected back to the screen.
func (h *Handler) afterAction(c *fiber.Ctx, ctrl *screen.Controller) error {
	if middleware.IsHTMX(c) {
		return h.renderState(c, ctrl.Snapshot())
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}
