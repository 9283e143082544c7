package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Roles carried inside signed claims. The role is part of the credential
// itself; callers must never infer it from which endpoint was hit.
const (
	RoleCustomer = "customer"
	RoleGuest    = "guest"
	RoleAdmin    = "admin"
)

// Claims is the JWT claims structure shared by all three principal kinds.
// EventID is only set for guest tokens, AdminLevel only for admin tokens.
type Claims struct {
	SubjectID  string `json:"subject_id"`
	Email      string `json:"email,omitempty"`
	Role       string `json:"role"`
	EventID    string `json:"event_id,omitempty"`
	AdminLevel string `json:"admin_level,omitempty"`
	jwt.RegisteredClaims
}

// Manager issues and parses HS256 tokens
type Manager struct {
	secret string
	expiry time.Duration
}

// NewManager creates new token manager
func NewManager(secret string, expiry time.Duration) *Manager {
	return &Manager{secret: secret, expiry: expiry}
}

// Expiry returns the configured token lifetime
func (m *Manager) Expiry() time.Duration {
	return m.expiry
}

// IssueCustomerToken issues a customer-scoped token
func (m *Manager) IssueCustomerToken(customerID uuid.UUID, email string) (string, error) {
	return m.sign(Claims{
		SubjectID: customerID.String(),
		Email:     email,
		Role:      RoleCustomer,
	})
}

// IssueGuestToken issues a guest-scoped token tied to a single event
func (m *Manager) IssueGuestToken(guestID, eventID uuid.UUID, email string) (string, error) {
	return m.sign(Claims{
		SubjectID: guestID.String(),
		Email:     email,
		Role:      RoleGuest,
		EventID:   eventID.String(),
	})
}

// IssueAdminToken issues an admin token
func (m *Manager) IssueAdminToken(adminID uuid.UUID, level string) (string, error) {
	return m.sign(Claims{
		SubjectID:  adminID.String(),
		Role:       RoleAdmin,
		AdminLevel: level,
	})
}

func (m *Manager) sign(claims Claims) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

// Parse validates signature and expiry and returns the decoded claims.
// Expiry failures surface as jwt.ErrTokenExpired so callers can branch.
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
