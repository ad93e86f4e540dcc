package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/escrow/internal/pkg/models"
)

var (
	ErrMissingClaim = errors.New("missing claim")
	ErrInvalidRole  = errors.New("role not allowed for user tokens")
)

// Claims represents standard JWT claims plus custom fields
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
	jwt.StandardClaims
}

// GenerateToken signs a token for a campus user or admin
func GenerateToken(actor models.Actor, cfg *models.Config) (string, int64, error) {
	expirationTime := time.Now().Add(time.Duration(cfg.JWT.Expiration) * time.Minute)
	expiresAt := expirationTime.Unix()

	claims := jwt.MapClaims{
		"user_id": actor.ID.String(),
		"role":    string(actor.Role),
		"exp":     expiresAt,
		"iss":     cfg.JWT.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns the claims
func ValidateToken(tokenString string, secret string) (*jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return &claims, nil
	}

	return nil, errors.New("invalid token")
}

// ActorFromClaims builds the caller identity. Tokens may only carry USER or
// ADMIN; SYSTEM is reserved for in-process callers.
func ActorFromClaims(claims *jwt.MapClaims) (models.Actor, error) {
	rawID, ok := (*claims)["user_id"]
	if !ok {
		return models.Actor{}, fmt.Errorf("%w: user_id", ErrMissingClaim)
	}
	rawRole, ok := (*claims)["role"]
	if !ok {
		return models.Actor{}, fmt.Errorf("%w: role", ErrMissingClaim)
	}

	id, err := uuid.Parse(fmt.Sprintf("%v", rawID))
	if err != nil {
		return models.Actor{}, fmt.Errorf("user_id is not a valid UUID: %w", err)
	}

	role := models.Role(fmt.Sprintf("%v", rawRole))
	switch role {
	case models.RoleUser, models.RoleAdmin:
	default:
		return models.Actor{}, fmt.Errorf("%w: %s", ErrInvalidRole, role)
	}

	return models.Actor{ID: id, Role: role}, nil
}
