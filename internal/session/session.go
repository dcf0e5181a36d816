package session

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// CookieName is the cookie carrying the signed session token.
const CookieName = "storefront_session"

// NewToken mints a signed token for a fresh anonymous session.
func NewToken(secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"session_id": uuid.NewString(),
		"exp":        time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Ensure hands every request a usable session cookie. When the browser
// shows up without one, or with one this server can no longer accept (token
// expired, secret rotated), a fresh token is minted, set on the response and
// injected into the request so the JWT middleware downstream can validate it
// in the same round trip. A stale cookie starts a new empty session rather
// than locking the client out until the cookie expires.
func Ensure(secret string, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if raw := c.Cookies(CookieName); raw != "" && tokenValid(raw, secret) {
			return c.Next()
		}
		token, err := NewToken(secret, ttl)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to start session"})
		}
		c.Cookie(&fiber.Cookie{
			Name:     CookieName,
			Value:    token,
			Expires:  time.Now().Add(ttl),
			HTTPOnly: true,
			SameSite: "Lax",
		})
		c.Request().Header.SetCookie(CookieName, token)
		return c.Next()
	}
}

func tokenValid(raw, secret string) bool {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	return err == nil && tok.Valid
}

// FromCtx extracts the session id from the validated token the JWT
// middleware stored on the context.
func FromCtx(c *fiber.Ctx) (string, error) {
	u := c.Locals("user")
	if u == nil {
		return "", fiber.ErrUnauthorized
	}
	tok, ok := u.(*jwt.Token)
	if !ok {
		return "", fiber.ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", fiber.ErrUnauthorized
	}
	sid, ok := claims["session_id"].(string)
	if !ok || sid == "" {
		return "", fiber.ErrUnauthorized
	}
	return sid, nil
}
