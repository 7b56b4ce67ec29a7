package jwt

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

// JWT header constants required by RFC 7519
const (
	HeaderType      = "JWT"
	HeaderAlgorithm = "HS256" // HMAC-SHA256 chosen for security/performance balance
)

// Header represents the JWT header as defined in RFC 7515
type Header struct {
	Type      string `json:"typ"`
	Algorithm string `json:"alg"`
}

// TokenType distinguishes short-lived access tokens from long-lived refresh
// tokens. The set is closed: a token carrying any other value fails Decode.
type TokenType string

const (
	TokenAccess  TokenType = "access"
	TokenRefresh TokenType = "refresh"
)

// Valid reports whether t is one of the known token types.
func (t TokenType) Valid() bool {
	switch t {
	case TokenAccess, TokenRefresh:
		return true
	}
	return false
}

// Claims is the payload carried by every token issued by this service.
// Subject is the account identifier; temporal fields use Unix timestamps.
type Claims struct {
	Subject   string    `json:"sub"`
	TokenType TokenType `json:"type"`
	ExpiresAt int64     `json:"exp"`
	IssuedAt  int64     `json:"iat,omitempty"`
}

// Service issues and verifies compact, self-contained tokens using HMAC-SHA256.
// The signing key is kept in memory only and should be cryptographically secure.
type Service struct {
	signingKey []byte
}

// New creates a token service with the provided signing key.
// The key should be at least 32 bytes for adequate security with HMAC-SHA256.
func New(signingKey []byte) (*Service, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}

	return &Service{signingKey: signingKey}, nil
}

// NewFromString creates a token service from a string signing key.
// Convenience wrapper around New() for string-based configuration.
func NewFromString(signingKey string) (*Service, error) {
	if signingKey == "" {
		return nil, ErrMissingSigningKey
	}

	return &Service{signingKey: []byte(signingKey)}, nil
}

// Issue signs a token for the given subject with an absolute expiry of
// now+ttl. The token type is embedded in the payload and re-checked on Decode.
func (s *Service) Issue(subject string, typ TokenType, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", ErrMissingSubject
	}
	if !typ.Valid() {
		return "", ErrInvalidTokenType
	}

	now := time.Now()
	claims := Claims{
		Subject:   subject,
		TokenType: typ,
		ExpiresAt: now.Add(ttl).Unix(),
		IssuedAt:  now.Unix(),
	}

	headerJSON, err := json.Marshal(Header{Type: HeaderType, Algorithm: HeaderAlgorithm})
	if err != nil {
		return "", err
	}

	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	// Build JWT payload: base64url(header).base64url(claims)
	payload := base64URLEncode(headerJSON) + "." + base64URLEncode(claimsJSON)
	return payload + "." + s.sign(payload), nil
}

// Decode verifies the signature, algorithm, and expiry of a token and returns
// its claims. Failures are typed: ErrMalformed for structural problems,
// ErrBadSignature for tampering, ErrExpired for stale tokens. Callers are
// responsible for checking Claims.TokenType against the required type.
func (s *Service) Decode(tokenString string) (Claims, error) {
	var claims Claims

	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return claims, ErrMalformed
	}

	// Verify signature using constant-time comparison to prevent timing attacks
	payload := parts[0] + "." + parts[1]
	expected := s.sign(payload)
	if subtle.ConstantTimeCompare([]byte(parts[2]), []byte(expected)) != 1 {
		return claims, ErrBadSignature
	}

	headerJSON, err := base64URLDecode(parts[0])
	if err != nil {
		return claims, ErrMalformed
	}

	var header Header
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return claims, ErrMalformed
	}

	// Reject tokens using unexpected algorithms to prevent algorithm confusion attacks
	if header.Algorithm != HeaderAlgorithm {
		return claims, ErrUnexpectedSigningMethod
	}

	claimsJSON, err := base64URLDecode(parts[1])
	if err != nil {
		return claims, ErrMalformed
	}

	if err := json.Unmarshal(claimsJSON, &claims); err != nil {
		return claims, ErrMalformed
	}

	if !claims.TokenType.Valid() {
		return claims, ErrInvalidTokenType
	}

	if claims.ExpiresAt > 0 && time.Now().Unix() > claims.ExpiresAt {
		return claims, ErrExpired
	}

	return claims, nil
}

// sign creates an HMAC-SHA256 signature for the given payload.
// Returns base64url-encoded signature as required by RFC 7515.
func (s *Service) sign(payload string) string {
	h := hmac.New(sha256.New, s.signingKey)
	h.Write([]byte(payload))
	return base64URLEncode(h.Sum(nil))
}

// base64URLEncode encodes data using base64url encoding without padding.
// Padding removal is required by RFC 7515 for JWT tokens.
func base64URLEncode(data []byte) string {
	return strings.TrimRight(base64.URLEncoding.EncodeToString(data), "=")
}

// base64URLDecode decodes base64url-encoded data, restoring padding as needed.
// JWT tokens omit padding per RFC 7515, but Go's decoder requires it.
func base64URLDecode(s string) ([]byte, error) {
	switch len(s) % 4 {
	case 2:
		s += "=="
	case 3:
		s += "="
	}

	return base64.URLEncoding.DecodeString(s)
}
