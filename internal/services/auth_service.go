package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/venture-studio/engine/internal/models"
	"github.com/venture-studio/engine/internal/repository"
	appErr "github.com/venture-studio/engine/pkg/errors"
)

// Claims is the token payload: user identity plus registered expiry.
type Claims struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	jwt.RegisteredClaims
}

// AuthService issues and verifies session tokens.
type AuthService interface {
	Register(ctx context.Context, email, password, firstName, lastName string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Verify(tokenString string) (*Claims, error)
}

type authService struct {
	users      repository.UserRepository
	hmacSecret []byte
	tokenTTL   time.Duration
}

func NewAuthService(users repository.UserRepository, secret []byte, tokenTTL time.Duration) AuthService {
	return &authService{users: users, hmacSecret: secret, tokenTTL: tokenTTL}
}

func (s *authService) Register(ctx context.Context, email, password, firstName, lastName string) (*models.User, string, error) {
	if email == "" || password == "" || firstName == "" || lastName == "" {
		return nil, "", appErr.New(appErr.CodeInvalid, "email, password, firstName, and lastName are required")
	}

	// Case-sensitive exact match; the unique index backstops races.
	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", appErr.New(appErr.CodeConflict, "email already exists")
	}

	ph, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", appErr.Wrap(err, appErr.CodeInternal, "hash password failed")
	}

	now := time.Now().UTC()
	u := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(ph),
		FirstName:    firstName,
		LastName:     lastName,
		Role:         models.RoleFounder,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, u); err != nil {
		if appErr.IsCode(err, appErr.CodeConflict) {
			return nil, "", appErr.New(appErr.CodeConflict, "email already exists")
		}
		return nil, "", err
	}

	token, err := s.sign(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", appErr.New(appErr.CodeInvalid, "email and password are required")
	}

	// Unknown email and wrong password collapse to the same error so a
	// caller cannot enumerate accounts.
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, "", appErr.New(appErr.CodeUnauthorized, "invalid credentials")
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", appErr.New(appErr.CodeUnauthorized, "invalid credentials")
	}

	token, err := s.sign(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *authService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.hmacSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, appErr.Wrap(err, appErr.CodeUnauthorized, "invalid or expired token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, appErr.New(appErr.CodeUnauthorized, "invalid token claims")
	}
	return claims, nil
}

func (s *authService) sign(u *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		ID:        u.ID.String(),
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	})
	signed, err := token.SignedString(s.hmacSecret)
	if err != nil {
		return "", appErr.Wrap(err, appErr.CodeInternal, "sign token failed")
	}
	return signed, nil
}
