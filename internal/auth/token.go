package auth

import (
	"fmt"
	"time"

	apperrors "org-management-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims represents the JWT claims issued to an authenticated admin
type Claims struct {
	AdminID          string `json:"admin_id"`
	OrganizationName string `json:"organization_name"`
	PartitionKey     string `json:"partition_key"`
	jwt.RegisteredClaims
}

// Identity is the caller identity resolved from a validated bearer token
type Identity struct {
	AdminID          uuid.UUID
	OrganizationName string
	PartitionKey     string
}

// TokenService issues and verifies signed, time-limited bearer tokens. The
// signing secret, algorithm and TTL are fixed at startup.
type TokenService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	issuer string
}

// TokenConfig carries the process-wide token settings
type TokenConfig struct {
	Secret     string
	Algorithm  string
	ExpMinutes int
	Issuer     string
}

// NewTokenService creates a token service. Only HMAC algorithms are accepted;
// everything else (including "none") is a configuration error.
func NewTokenService(cfg TokenConfig) (*TokenService, error) {
	var method jwt.SigningMethod
	switch cfg.Algorithm {
	case "HS256":
		method = jwt.SigningMethodHS256
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedAlgorithm, cfg.Algorithm)
	}

	if cfg.Secret == "" {
		return nil, apperrors.ErrJWTSecretNotSet
	}
	if cfg.ExpMinutes <= 0 {
		cfg.ExpMinutes = 60
	}

	return &TokenService{
		secret: []byte(cfg.Secret),
		method: method,
		ttl:    time.Duration(cfg.ExpMinutes) * time.Minute,
		issuer: cfg.Issuer,
	}, nil
}

// TTL returns the configured token lifetime
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Generate issues a signed token carrying the admin identity and organization
func (s *TokenService) Generate(adminID uuid.UUID, organizationName, partitionKey string) (string, error) {
	now := time.Now()
	claims := &Claims{
		AdminID:          adminID.String(),
		OrganizationName: organizationName,
		PartitionKey:     partitionKey,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Subject:   adminID.String(),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a token string. Tokens signed with anything
// but the configured HMAC family are rejected before signature verification.
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

// IdentityFromClaims converts validated claims into a caller identity
func IdentityFromClaims(claims *Claims) (*Identity, error) {
	adminID, err := uuid.Parse(claims.AdminID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed admin id", apperrors.ErrInvalidToken)
	}
	return &Identity{
		AdminID:          adminID,
		OrganizationName: claims.OrganizationName,
		PartitionKey:     claims.PartitionKey,
	}, nil
}
