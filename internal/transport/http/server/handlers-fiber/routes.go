package handlers_fiber

import "github.com/gofiber/fiber/v2"

// RegisterHandlers mounts the screen routes on router.
func RegisterHandlers(router fiber.Router, h *Handler) {
	router.Get("/", h.GetScreen)
	router.Post("/users", h.PostSubmit)
	router.Post("/users/:id/edit", h.PostBeginEdit)
	router.Post("/users/:id/delete", h.PostDelete)
}
