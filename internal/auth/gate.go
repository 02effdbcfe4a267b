package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"time"

	"go.uber.org/zap"

	"eyewear-store/internal/kvstore"
	"eyewear-store/internal/models"
)

const (
	KeySession = "adminAuth"
	DefaultTTL = 24 * time.Hour
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionNotStored   = errors.New("admin session could not be stored")
)

type Credentials struct {
	Username string
	Password string
}

// Gate compara credenciales contra la configuración. No hay hashing ni
// bloqueo por intentos: es un control de acceso mínimo.
type Gate struct {
	creds  Credentials
	ttl    time.Duration
	delay  time.Duration
	secret []byte
	now    func() time.Time
}

type Option func(*Gate)

// WithClock reemplaza time.Now (tests)
func WithClock(now func() time.Time) Option {
	return func(g *Gate) { g.now = now }
}

// WithDelay agrega una espera artificial antes de validar el login
func WithDelay(d time.Duration) Option {
	return func(g *Gate) { g.delay = d }
}

// WithSecret fija la clave HMAC de los tokens; sin ella se genera una aleatoria
func WithSecret(secret string) Option {
	return func(g *Gate) {
		if secret != "" {
			g.secret = []byte(secret)
		}
	}
}

func NewGate(creds Credentials, ttl time.Duration, opts ...Option) *Gate {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	g := &Gate{creds: creds, ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	if len(g.secret) == 0 {
		g.secret = make([]byte, 32)
		if _, err := rand.Read(g.secret); err != nil {
			zap.L().Error("auth: could not generate token secret", zap.Error(err))
		}
	}
	return g
}

// TTL es la duración de la sesión y de los tokens
func (g *Gate) TTL() time.Duration { return g.ttl }

// Check compara usuario y contraseña en tiempo constante
func (g *Gate) Check(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.creds.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(g.creds.Password)) == 1
	return userOK && passOK
}

// Session liga el gate al store de un perfil
func (g *Gate) Session(store *kvstore.Store) *Session {
	return &Session{gate: g, store: store}
}

type Session struct {
	gate  *Gate
	store *kvstore.Store
}

// Login guarda la marca de sesión si las credenciales coinciden.
// Con credenciales válidas y storage caído retorna ErrSessionNotStored.
func (s *Session) Login(ctx context.Context, username, password string) error {
	if s.gate.delay > 0 {
		select {
		case <-time.After(s.gate.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if !s.gate.Check(username, password) {
		zap.L().Info("admin login rejected", zap.String("username", username))
		return ErrInvalidCredentials
	}

	stored := s.store.Set(ctx, KeySession, models.AdminSession{
		Authenticated: true,
		Timestamp:     s.gate.now(),
	})
	if !stored {
		zap.L().Warn("admin login accepted but session flag not stored", zap.String("username", username))
		return ErrSessionNotStored
	}
	zap.L().Info("admin login accepted", zap.String("username", username))
	return nil
}

// IsAuthenticated borra la marca si ya expiró
func (s *Session) IsAuthenticated(ctx context.Context) bool {
	session, ok := kvstore.Lookup[models.AdminSession](ctx, s.store, KeySession)
	if !ok || !session.Authenticated {
		return false
	}
	if s.gate.now().Sub(session.Timestamp) >= s.gate.ttl {
		s.store.Remove(ctx, KeySession)
		return false
	}
	return true
}

// ExpiresAt retorna el vencimiento de la sesión actual, si hay
func (s *Session) ExpiresAt(ctx context.Context) (time.Time, bool) {
	if !s.IsAuthenticated(ctx) {
		return time.Time{}, false
	}
	session := kvstore.Get(ctx, s.store, KeySession, models.AdminSession{})
	return session.Timestamp.Add(s.gate.ttl), true
}

func (s *Session) Logout(ctx context.Context) {
	s.store.Remove(ctx, KeySession)
}
