package session

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"
)

const testSecret = "test-secret"

func makeSessionApp() *fiber.App {
	app := fiber.New()
	app.Use(Ensure(testSecret, time.Hour))
	app.Use(jwtware.New(jwtware.Config{
		SigningKey:  []byte(testSecret),
		TokenLookup: "cookie:" + CookieName,
	}))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		sid, err := FromCtx(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		}
		return c.JSON(fiber.Map{"sessionId": sid})
	})
	return app
}

func TestEnsure_MintsCookieOnFirstRequest(t *testing.T) {
	app := makeSessionApp()

	res, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 on first visit, got %d", res.StatusCode)
	}

	var cookie string
	for _, c := range res.Cookies() {
		if c.Name == CookieName {
			cookie = c.Value
		}
	}
	if cookie == "" {
		t.Fatalf("expected a %s cookie to be set", CookieName)
	}
}

func TestEnsure_SessionIsStableAcrossRequests(t *testing.T) {
	app := makeSessionApp()

	first, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	var token string
	for _, c := range first.Cookies() {
		if c.Name == CookieName {
			token = c.Value
		}
	}
	if token == "" {
		t.Fatalf("no session cookie issued")
	}

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Cookie", CookieName+"="+token)
	second, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if second.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 on return visit, got %d", second.StatusCode)
	}
	// no replacement cookie is issued for a valid session
	for _, c := range second.Cookies() {
		if c.Name == CookieName && c.Value != token {
			t.Fatalf("session cookie was replaced on return visit")
		}
	}
}

func TestEnsure_ReplacesForgedToken(t *testing.T) {
	app := makeSessionApp()

	claims := jwt.MapClaims{"session_id": "forged", "exp": time.Now().Add(time.Hour).Unix()}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("wrong-secret"))
	if err != nil {
		t.Fatalf("failed to sign forged token: %v", err)
	}

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Cookie", CookieName+"="+forged)
	res, _ := app.Test(req)
	// the bad token is not trusted; the client gets a fresh session
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected a fresh session for a forged token, got %d", res.StatusCode)
	}
	var replacement string
	for _, c := range res.Cookies() {
		if c.Name == CookieName {
			replacement = c.Value
		}
	}
	if replacement == "" || replacement == forged {
		t.Fatalf("expected the forged cookie to be replaced")
	}
	var body struct {
		SessionID string `json:"sessionId"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.SessionID == "forged" || body.SessionID == "" {
		t.Fatalf("forged session id must not be honored, got %q", body.SessionID)
	}
}

func TestEnsure_ReplacesExpiredToken(t *testing.T) {
	app := makeSessionApp()

	expired, err := NewToken(testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Cookie", CookieName+"="+expired)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected a fresh session for an expired token, got %d", res.StatusCode)
	}
	var replacement string
	for _, c := range res.Cookies() {
		if c.Name == CookieName {
			replacement = c.Value
		}
	}
	if replacement == "" || replacement == expired {
		t.Fatalf("expected the expired cookie to be replaced")
	}
}

func TestFromCtx_MissingToken(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		if _, err := FromCtx(c); err == nil {
			t.Errorf("expected error without token")
		}
		return c.SendStatus(fiber.StatusOK)
	})
	if _, err := app.Test(httptest.NewRequest("GET", "/", nil)); err != nil {
		t.Fatalf("request failed: %v", err)
	}
}

func TestNewToken_CarriesSessionID(t *testing.T) {
	raw, err := NewToken(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}
	if strings.Count(raw, ".") != 2 {
		t.Fatalf("expected a compact JWS, got %q", raw)
	}

	tok, err := jwt.Parse(raw, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if sid, _ := claims["session_id"].(string); sid == "" {
		t.Fatalf("expected session_id claim, got %v", claims)
	}
}
