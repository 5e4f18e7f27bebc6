// Package flash stores one-shot status messages shown on the page rendered
// after a redirect. Messages live in Redis keyed by a session id; the
// session id travels in a signed cookie. Without Redis the store falls back
// to an in-process map.
package flash

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"blogly/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CookieName is the session cookie carrying the signed session id.
const CookieName = "blogly_session"

const messageTTL = 15 * time.Minute

// Store holds pending flash messages per session.
type Store struct {
	client *redis.Client
	secret []byte

	mu       sync.Mutex
	fallback map[string][]string
}

// NewStore creates a flash store. client may be nil, in which case messages
// are kept in process memory.
func NewStore(client *redis.Client, secret string) *Store {
	return &Store{
		client:   client,
		secret:   []byte(secret),
		fallback: make(map[string][]string),
	}
}

// Add queues a message for the session behind c, creating the session
// cookie if needed. Failures are logged and swallowed; a lost flash message
// must never fail the request.
func (s *Store) Add(c *fiber.Ctx, msg string) {
	sid := s.sessionID(c, true)

	if s.client != nil {
		key := flashKey(sid)
		if err := s.client.RPush(c.Context(), key, msg).Err(); err != nil {
			middleware.Logger.Warn("flash message dropped", slog.String("error", err.Error()))
			return
		}
		s.client.Expire(c.Context(), key, messageTTL)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.fallback[sid] = append(s.fallback[sid], msg)
}

// PopAll returns and clears the pending messages for the session behind c.
func (s *Store) PopAll(c *fiber.Ctx) []string {
	sid := s.sessionID(c, false)
	if sid == "" {
		return nil
	}

	if s.client != nil {
		key := flashKey(sid)
		msgs, err := s.client.LRange(c.Context(), key, 0, -1).Result()
		if err != nil {
			middleware.Logger.Warn("flash read failed", slog.String("error", err.Error()))
			return nil
		}
		if len(msgs) > 0 {
			s.client.Del(c.Context(), key)
		}
		return msgs
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := s.fallback[sid]
	delete(s.fallback, sid)
	return msgs
}

// sessionID extracts the session id from the signed cookie. With create set,
// a missing or tampered cookie is replaced by a fresh session.
func (s *Store) sessionID(c *fiber.Ctx, create bool) string {
	if raw := c.Cookies(CookieName); raw != "" {
		if sid := s.verify(raw); sid != "" {
			return sid
		}
	}
	if !create {
		return ""
	}

	sid := uuid.NewString()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sid": sid})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		middleware.Logger.Error("failed to sign session cookie", slog.String("error", err.Error()))
		return sid
	}

	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    signed,
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return sid
}

// verify validates the cookie signature and returns the embedded session id,
// or "" when the cookie is invalid.
func (s *Store) verify(raw string) string {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	sid, _ := claims["sid"].(string)
	return sid
}

func flashKey(sid string) string {
	return "flash:" + sid
}
