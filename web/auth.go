package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"lottotrack/models"

	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
)

// SessionCookieName is the cookie carrying the signed session token
const SessionCookieName = "lottotrack_session"

type contextKey string

const sessionContextKey contextKey = "session"

// Session is the authenticated caller of a request
type Session struct {
	UserID   int64
	Username string
	IsAdmin  bool
}

// Claims are the JWT claims of a session token
type Claims struct {
	Username string `json:"username"`
	Admin    bool   `json:"admin,omitempty"`
	jwt.RegisteredClaims
}

// SessionManager issues and validates HS256 session tokens
type SessionManager struct {
	secret       []byte
	timeout      time.Duration
	secureCookie bool
	now          func() time.Time
}

// NewSessionManager creates a session manager. Cookies are marked Secure
// when secureCookie is set.
func NewSessionManager(secret string, timeout time.Duration, secureCookie bool) (*SessionManager, error) {
	if secret == "" {
		return nil, errors.New("session secret is required")
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid session timeout %s", timeout)
	}
	return &SessionManager{
		secret:       []byte(secret),
		timeout:      timeout,
		secureCookie: secureCookie,
		now:          time.Now,
	}, nil
}

// GenerateToken signs a token for the user
func (m *SessionManager) GenerateToken(user *models.User) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.timeout)
	claims := &Claims{
		Username: user.Username,
		Admin:    user.IsAdmin(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateToken parses a token and returns its session
func (m *SessionManager) ValidateToken(tokenString string) (*Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return nil, fmt.Errorf("invalid token subject %q", claims.Subject)
	}

	return &Session{UserID: userID, Username: claims.Username, IsAdmin: claims.Admin}, nil
}

// SetSessionCookie issues a token for the user and writes it as a cookie
func (m *SessionManager) SetSessionCookie(w http.ResponseWriter, user *models.User) error {
	token, expiresAt, err := m.GenerateToken(user)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   m.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// ClearSessionCookie expires the session cookie
func (m *SessionManager) ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// LoadSession attaches the session from a valid cookie to the request
// context. Requests without a valid cookie continue anonymously.
func (m *SessionManager) LoadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		session, err := m.ValidateToken(cookie.Value)
		if err != nil {
			log.WithError(err).Debug("Ignoring invalid session cookie")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

// RequireSession rejects anonymous requests with 401
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if SessionFromContext(r.Context()) == nil {
			respondError(w, http.StatusUnauthorized, CodeUnauthorized, "Login required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects non-admin sessions with 403
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := SessionFromContext(r.Context())
		if session == nil {
			respondError(w, http.StatusUnauthorized, CodeUnauthorized, "Login required")
			return
		}
		if !session.IsAdmin {
			log.WithFields(log.Fields{
				"userID": session.UserID,
				"path":   r.URL.Path,
			}).Warn("Non-admin access to admin endpoint")
			respondError(w, http.StatusForbidden, CodeForbidden, "Administrator access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithSession returns a context carrying the session
func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}

// SessionFromContext returns the request's session, or nil when anonymous
func SessionFromContext(ctx context.Context) *Session {
	session, _ := ctx.Value(sessionContextKey).(*Session)
	return session
}
