package auth

import (
	"context"
	"errors"
	"time"

	"github.com/ilystsov/vocabulary-builder/internal/model"
	"gorm.io/gorm"
)

var (
	// ErrCredentials covers every token verification failure: bad
	// signature, expiry, missing claims, or a stale username.
	ErrCredentials = errors.New("could not validate credentials")

	// ErrIncorrectUsernamePassword deliberately does not reveal whether
	// the username or the password was wrong.
	ErrIncorrectUsernamePassword = errors.New("incorrect username or password")
)

// Identity is the proof of authentication handed to callers.
type Identity struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Service implements the session token lifecycle: credential check,
// token issuance, token verification, identity recovery.
type Service struct {
	db     *gorm.DB
	secret string
	ttl    time.Duration
}

func NewService(db *gorm.DB, secret string, ttl time.Duration) *Service {
	if ttl == 0 {
		ttl = DefaultAccessTokenTTL
	}
	return &Service{db: db, secret: secret, ttl: ttl}
}

// Authenticate checks a username/password pair. Unknown username and
// wrong password both return ErrIncorrectUsernamePassword.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*Identity, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrIncorrectUsernamePassword
	}
	if err != nil {
		return nil, err
	}

	if err := CheckPassword(password, user.HashedPassword); err != nil {
		return nil, ErrIncorrectUsernamePassword
	}

	return &Identity{UserID: user.ID, Username: user.Username}, nil
}

// CreateAccessToken issues a signed token for the identity using the
// service-wide secret and ttl.
func (s *Service) CreateAccessToken(identity *Identity) (string, error) {
	return GenerateAccessToken(identity, s.ttl, s.secret)
}

// CurrentUser resolves an identity from a cookie-carried token value
// ("Bearer <jwt>"). Every failure path collapses to ErrCredentials.
func (s *Service) CurrentUser(ctx context.Context, cookieValue string) (*Identity, error) {
	if cookieValue == "" {
		return nil, ErrCredentials
	}

	raw, err := StripScheme(cookieValue)
	if err != nil {
		return nil, ErrCredentials
	}

	claims, err := ValidateAccessToken(raw, s.secret)
	if err != nil {
		return nil, ErrCredentials
	}

	if claims.Username == "" || claims.UserID == "" {
		return nil, ErrCredentials
	}

	// The embedded username must still resolve to a live user record.
	var user model.User
	err = s.db.WithContext(ctx).Where("username = ?", claims.Username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCredentials
	}
	if err != nil {
		return nil, err
	}

	return &Identity{UserID: claims.UserID, Username: claims.Username}, nil
}
