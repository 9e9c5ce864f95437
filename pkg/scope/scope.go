package scope

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Payload is the claim set embedded in issued tokens.
type Payload struct {
	UserID string `json:"user_id"`
	FirmID string `json:"firm_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Manager issues and verifies bearer tokens.
type Manager interface {
	Issue(userID, firmID, role string) (string, error)
	Verify(token string) (Payload, error)
}

type manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a JWT-backed Manager. ttl controls token lifetime.
func NewManager(secret string, ttl time.Duration) Manager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &manager{secret: []byte(secret), ttl: ttl}
}

func (m *manager) Issue(userID, firmID, role string) (string, error) {
	now := time.Now()
	claims := Payload{
		UserID: userID,
		FirmID: firmID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (m *manager) Verify(tokenString string) (Payload, error) {
	var claims Payload
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return Payload{}, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return Payload{}, fmt.Errorf("invalid token")
	}
	return claims, nil
}
