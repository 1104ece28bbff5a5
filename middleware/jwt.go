package middleware

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the closed set of identities a connection can carry. Anything that
// fails verification is a guest; guests can play but cannot create rooms or
// touch the admin API.
type Role string

const (
	RoleGuest Role = "guest"
	RoleHost  Role = "host"
	RoleAdmin Role = "admin"
)

// ParseRole maps a raw claim value onto the closed set, defaulting to guest.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleHost:
		return RoleHost
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleGuest
	}
}

// Identity is the decoded claim attached to a verified connection.
type Identity struct {
	SubjectID string
	Username  string
	Role      Role
}

// IsHostAuthorized reports whether this identity may create rooms. Consulted
// only at room-creation time: once a room exists, host authority is pinned
// to the connection handle that created it, not re-checked against the role.
func (id *Identity) IsHostAuthorized() bool {
	if id == nil {
		return false
	}
	switch id.Role {
	case RoleHost, RoleAdmin:
		return true
	case RoleGuest:
		return false
	}
	return false
}

func (id *Identity) IsAdmin() bool {
	return id != nil && id.Role == RoleAdmin
}

// Claims is the JWT payload: registered claims plus username and role.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

const tokenLifetime = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// GenerateToken mints an HS256 token for the given user, valid for 7 days.
func GenerateToken(userID, username string, role Role) (string, error) {
	claims := Claims{
		Username: username,
		Role:     string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// VerifyToken validates a raw token (with or without the "Bearer " prefix)
// and returns the decoded identity.
func VerifyToken(raw string) (*Identity, error) {
	raw = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "Bearer "))
	if raw == "" {
		return nil, ErrInvalidToken
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return &Identity{
		SubjectID: claims.Subject,
		Username:  claims.Username,
		Role:      ParseRole(claims.Role),
	}, nil
}

// SocketIdentity classifies a socket.io handshake. The auth payload may
// carry an "authorization" field with a bearer token; on any failure the
// connection simply proceeds as a guest, no error is surfaced.
func SocketIdentity(authData interface{}) *Identity {
	data, ok := authData.(map[string]interface{})
	if !ok {
		return nil
	}
	raw, ok := data["authorization"].(string)
	if !ok {
		return nil
	}
	identity, err := VerifyToken(raw)
	if err != nil {
		return nil
	}
	return identity
}
