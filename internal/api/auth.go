package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultServiceTokenTTL = 12 * time.Hour

	tokenAttemptLimit  = 5
	tokenAttemptWindow = 15 * time.Minute
)

type serviceClaims struct {
	Client string `json:"client"`
	jwt.RegisteredClaims
}

type tokenRequest struct {
	ServiceKey string `json:"service_key"`
}

// IssueToken exchanges the gateway's shared service key for a short-lived
// bearer token. Failed exchanges are rate limited per caller address.
func (handler *Handler) IssueToken(c *fiber.Ctx) error {
	if handler.serviceKeyHash == "" {
		return apiError(c, fiber.StatusServiceUnavailable, "service auth not configured")
	}

	var payload tokenRequest
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	limiterKey := requestLimiterKey(c)
	now := time.Now()
	if handler.tokenLimiter.tooManyRecent(limiterKey, now, tokenAttemptLimit, tokenAttemptWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many attempts")
	}

	serviceKey := strings.TrimSpace(payload.ServiceKey)
	if serviceKey == "" || bcrypt.CompareHashAndPassword([]byte(handler.serviceKeyHash), []byte(serviceKey)) != nil {
		handler.tokenLimiter.addFailure(limiterKey, now, tokenAttemptWindow)
		return apiError(c, fiber.StatusUnauthorized, "invalid service key")
	}
	handler.tokenLimiter.reset(limiterKey)

	token, err := handler.buildServiceToken(now)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build token")
	}

	return c.JSON(fiber.Map{
		"token":      token,
		"expires_in": int(handler.tokenTTL.Seconds()),
	})
}

func (handler *Handler) buildServiceToken(now time.Time) (string, error) {
	claims := serviceClaims{
		Client: "gateway",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "gateway",
			ExpiresAt: jwt.NewNumericDate(now.Add(handler.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}

func (handler *Handler) parseServiceToken(raw string) (*serviceClaims, error) {
	claims := &serviceClaims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return handler.secretKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
