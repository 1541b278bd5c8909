package services

import (
	"fmt"
	"log"
	"time"

	"rentwheels/internal/models"
	"rentwheels/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// VerifiedIdentity is the (email, uid) pair recovered from a validated
// token. It is the only identity value ownership checks may use; identity
// strings arriving in request bodies are never promoted to this type.
type VerifiedIdentity struct {
	Email string
	UID   string
}

// AuthService issues and verifies the HS256 identity tokens that gate the
// write paths.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
	}
}

// Login authenticates a registered user by email and password and returns
// a signed token. Failures are reported uniformly as ErrUnauthenticated so
// the response does not reveal whether the email exists.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return "", fmt.Errorf("invalid credentials: %w", models.ErrUnauthenticated)
	}

	// Users registered without a password cannot use the local login path.
	if user.Password == "" {
		return "", fmt.Errorf("invalid credentials: %w", models.ErrUnauthenticated)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials: %w", models.ErrUnauthenticated)
	}

	return s.IssueToken(user)
}

// IssueToken signs a token carrying the user's email and uid claims.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": user.Email,
		"uid":   user.ID,
		"exp":   time.Now().Add(s.tokenDurat).Unix(),
		"iat":   time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// VerifyToken validates a token and recovers the identity it certifies.
// Any malformed, expired, or badly-signed token is ErrUnauthenticated.
func (s *AuthService) VerifyToken(tokenString string) (*VerifiedIdentity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", models.ErrUnauthenticated)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", models.ErrUnauthenticated)
	}

	email, _ := claims["email"].(string)
	uid, _ := claims["uid"].(string)
	if email == "" {
		return nil, fmt.Errorf("token missing email claim: %w", models.ErrUnauthenticated)
	}

	return &VerifiedIdentity{Email: email, UID: uid}, nil
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}
