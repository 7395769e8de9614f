package httpapi

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/what-to-wear/internal/alexa"
	"github.com/i474232898/what-to-wear/internal/skill"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, s *skill.Skill) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "what-to-wear",
		})
	})

	v1 := app.Group("/api/v1")

	// The platform POSTs one envelope per invocation. Anything that decodes
	// and validates gets a 200, apologies included.
	v1.Post("/skill", func(c *fiber.Ctx) error {
		var env alexa.RequestEnvelope
		if err := c.BodyParser(&env); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request envelope")
		}

		if err := validate.Struct(env); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		return c.JSON(s.Handle(c.UserContext(), &env))
	})
}

// ErrorHandler renders every error as a JSON body with the matching status.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": err.Error(),
	})
}
