package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const contextClientKey = "current_client"

// AuthRequired guards the API group: every request must carry a bearer token
// previously issued by IssueToken.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	raw := bearerToken(c)
	if raw == "" {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	claims, err := handler.parseServiceToken(raw)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextClientKey, claims.Client)
	return c.Next()
}

func bearerToken(c *fiber.Ctx) string {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if header == "" {
		return ""
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
