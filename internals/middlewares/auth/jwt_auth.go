package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	LocUserID   = "user_id"
	LocUserName = "user_name"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // pakai cookie access_token jika tidak ada Bearer
}

// AuthJWT: wajib login (admin console).
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		raw := rawToken(c, o.AllowCookieFallback)
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		claims, err := parseClaims(raw, secret)
		if err != nil {
			return err
		}

		c.Locals("jwt_claims", claims)
		if uid := strClaim(claims, "sub"); uid != "" {
			c.Locals(LocUserID, uid)
		}
		if name := strClaim(claims, "name"); name != "" {
			c.Locals(LocUserName, name)
		}
		return c.Next()
	}
}

// OptionalAuthJWT: endpoint publik tetap jalan tanpa token;
// kalau ada token valid, user id ikut dicatat di activity log.
func OptionalAuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)

	return func(c *fiber.Ctx) error {
		raw := rawToken(c, o.AllowCookieFallback)
		if raw == "" || secret == "" {
			return c.Next()
		}
		claims, err := parseClaims(raw, secret)
		if err != nil {
			// token rusak ≠ ditolak; endpoint ini anonim
			return c.Next()
		}
		c.Locals("jwt_claims", claims)
		if uid := strClaim(claims, "sub"); uid != "" {
			c.Locals(LocUserID, uid)
		}
		return c.Next()
	}
}

func rawToken(c *fiber.Ctx, cookieFallback bool) string {
	if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		return strings.TrimSpace(authz[7:])
	}
	if cookieFallback {
		return strings.TrimSpace(c.Cookies("access_token"))
	}
	return ""
}

func parseClaims(raw, secret string) (jwt.MapClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}
	return claims, nil
}

func strClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key]; ok {
		switch t := v.(type) {
		case string:
			return strings.TrimSpace(t)
		}
	}
	return ""
}

// GetUserUUID: ambil user id dari locals sebagai uuid (jika ada).
func GetUserUUID(c *fiber.Ctx) *uuid.UUID {
	if v, ok := c.Locals(LocUserID).(string); ok && v != "" {
		if id, err := uuid.Parse(v); err == nil {
			return &id
		}
	}
	return nil
}
