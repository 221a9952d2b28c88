// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"time"

	"go.uber.org/zap"
)

// Handler serves the users screen. Per-session state comes from the
// middleware.Session controller bound to each request.
type Handler struct {
	log   *zap.SugaredLogger
	title string
	loc   *time.Location
}

// NewHandler constructs the screen handler. Timestamps are rendered in loc.
func NewHandler(log *zap.SugaredLogger, title string, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.Local
	}
	return &Handler{
		log:   log,
		title: title,
		loc:   loc,
	}
}
