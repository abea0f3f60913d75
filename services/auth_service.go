package services

import (
	"errors"
	"time"

	"github.com/appcanvas-backend/dto"
	"github.com/appcanvas-backend/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is how long an issued token stays valid.
const tokenTTL = 12 * time.Hour

// UserStore is the persistence surface the auth service depends on.
type UserStore interface {
	FindByID(id string) (models.User, error)
	FindByUsername(username string) (models.User, error)
	Create(user models.User) (models.User, error)
}

// AuthService handles registration, login and token validation
type AuthService struct {
	users  UserStore
	secret []byte
	ttl    time.Duration
}

// NewAuthService creates a new auth service instance. The signing secret
// comes from the validated config, never read from the environment here.
func NewAuthService(users UserStore, secret string) *AuthService {
	return &AuthService{
		users:  users,
		secret: []byte(secret),
		ttl:    tokenTTL,
	}
}

// Register creates a new user account storing only a bcrypt hash of the
// password.
func (s *AuthService) Register(req dto.RegisterRequest) (models.User, error) {
	if req.Username == "" || req.Password == "" {
		return models.User{}, models.ErrInvalidInput
	}

	// Check if username already exists
	_, err := s.users.FindByUsername(req.Username)
	if err == nil {
		return models.User{}, models.ErrDuplicateUsername
	}
	if !errors.Is(err, models.ErrNotFound) {
		return models.User{}, err
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
	}

	return s.users.Create(user)
}

// Login authenticates a user and returns a signed token. Unknown username
// and wrong password yield the identical error so usernames cannot be
// enumerated.
func (s *AuthService) Login(req dto.LoginRequest) (string, error) {
	user, err := s.users.FindByUsername(req.Username)
	if errors.Is(err, models.ErrNotFound) {
		return "", models.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	// Check password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", models.ErrInvalidCredentials
	}

	return s.GenerateToken(user.ID, user.Username)
}

// GetUser retrieves a user by ID
func (s *AuthService) GetUser(id string) (models.User, error) {
	return s.users.FindByID(id)
}

// GenerateToken generates a new signed JWT for a user
func (s *AuthService) GenerateToken(userID, username string) (string, error) {
	now := time.Now()

	claims := dto.TokenClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken validates a JWT and returns its claims. Any parse,
// signature or expiry failure surfaces as ErrInvalidToken.
func (s *AuthService) ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	if tokenString == "" {
		return nil, models.ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, models.ErrInvalidToken
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, models.ErrInvalidToken
	}

	return claims, nil
}
