package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/medicore/hospital-api/internal/config"
	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/repository/kvstore"
	"github.com/medicore/hospital-api/internal/repository/session"
	apperrors "github.com/medicore/hospital-api/pkg/errors"
)

const (
	credentialPrefix = "credential:"
	adminPrefix      = "admin:"
	bcryptCost       = 12
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Service is the identity provider behind the admin console. Credentials
// and admin profiles live in the record store; live sessions are tracked
// separately so logout revokes the token before it expires.
type Service struct {
	store    kvstore.Store
	sessions session.Store
	cfg      config.AuthConfig
	now      func() time.Time
}

func NewService(store kvstore.Store, sessions session.Store, cfg config.AuthConfig) *Service {
	return &Service{
		store:    store,
		sessions: sessions,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Signup creates an identity-provider user and the parallel admin profile.
// Emails are treated as pre-confirmed; there is no verification flow.
func (s *Service) Signup(ctx context.Context, req *model.SignupRequest) (*model.Admin, error) {
	if _, err := s.store.Get(ctx, credentialPrefix+req.Email); err == nil {
		return nil, apperrors.BadRequest("email already registered", nil)
	} else if !errors.Is(err, kvstore.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing credential: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userID := uuid.New().String()
	ts := s.now().UTC().Format(time.RFC3339Nano)

	cred := model.Record{
		"id":           userID,
		"email":        req.Email,
		"passwordHash": string(hash),
		"createdAt":    ts,
	}
	if err := s.store.Set(ctx, credentialPrefix+req.Email, cred); err != nil {
		return nil, fmt.Errorf("failed to store credential: %w", err)
	}

	admin := &model.Admin{
		ID:        userID,
		Email:     req.Email,
		Name:      req.Name,
		Role:      model.RoleAdmin,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	profile := model.Record{
		"id":        admin.ID,
		"email":     admin.Email,
		"name":      admin.Name,
		"role":      admin.Role,
		"createdAt": admin.CreatedAt,
		"updatedAt": admin.UpdatedAt,
	}
	if err := s.store.Set(ctx, adminPrefix+userID, profile); err != nil {
		return nil, fmt.Errorf("failed to store admin profile: %w", err)
	}

	return admin, nil
}

// Login exchanges email/password for a session token plus the merged
// profile. Failures are uniformly invalid-credentials; callers map that to
// a 401 without leaking which half was wrong.
func (s *Service) Login(ctx context.Context, email, password string) (*model.LoginResult, error) {
	cred, err := s.store.Get(ctx, credentialPrefix+email)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load credential: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(cred.StringField("passwordHash")), []byte(password),
	); err != nil {
		return nil, ErrInvalidCredentials
	}

	userID := cred.ID()
	token, sessionID, err := s.issueToken(userID, email)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, sessionID, userID, s.cfg.TokenTTL()); err != nil {
		return nil, fmt.Errorf("failed to register session: %w", err)
	}

	user := model.SessionUser{ID: userID, Email: email}
	if profile, err := s.store.Get(ctx, adminPrefix+userID); err == nil {
		user.Name = profile.StringField("name")
	}

	return &model.LoginResult{User: user, AccessToken: token}, nil
}

// ValidateToken checks signature, expiry and session liveness.
func (s *Service) ValidateToken(ctx context.Context, token string) (*model.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" || claims.ID == "" {
		return nil, errors.New("invalid token claims")
	}

	live, err := s.sessions.Exists(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check session: %w", err)
	}
	if !live {
		return nil, errors.New("session revoked or expired")
	}

	tc := &model.TokenClaims{
		UserID:    claims.Subject,
		SessionID: claims.ID,
	}
	if len(claims.Audience) > 0 {
		tc.Email = claims.Audience[0]
	}
	return tc, nil
}

// Session re-validates a stored token and returns the merged profile.
func (s *Service) Session(ctx context.Context, token string) (*model.SessionUser, error) {
	claims, err := s.ValidateToken(ctx, token)
	if err != nil {
		return nil, err
	}

	user := &model.SessionUser{ID: claims.UserID, Email: claims.Email}
	if profile, err := s.store.Get(ctx, adminPrefix+claims.UserID); err == nil {
		user.Name = profile.StringField("name")
	}
	return user, nil
}

// Logout revokes the token's session. An already-invalid token is not an
// error; the caller is logged out either way.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := s.ValidateToken(ctx, token)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, claims.SessionID)
}

func (s *Service) issueToken(userID, email string) (token, sessionID string, err error) {
	sessionID = uuid.New().String()
	now := s.now()

	claims := jwt.RegisteredClaims{
		ID:        sessionID,
		Subject:   userID,
		Audience:  jwt.ClaimStrings{email},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL())),
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, sessionID, nil
}
