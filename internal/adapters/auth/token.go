package auth

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"

	"interviewpass/internal/domain"
)

const (
	signingKeyInfo    = "interview-pass session signing key"
	encryptionKeyInfo = "interview-pass session encryption key"
)

type sessionClaims struct {
	jwt.RegisteredClaims
	Email             string `json:"email"`
	Name              string `json:"name"`
	Picture           string `json:"picture,omitempty"`
	AccessToken       string `json:"access_token,omitempty"`
	RefreshToken      string `json:"refresh_token,omitempty"`
	AccessTokenExpiry int64  `json:"access_token_expiry,omitempty"`
}

// SessionCodec issues and verifies session tokens: an HS256 JWT sealed with XChaCha20-Poly1305
// so the Google tokens it carries are not readable by the browser. Both keys are derived
// from one secret with HKDF.
type SessionCodec struct {
	signingKey []byte
	aead       cipher.AEAD
	now        func() time.Time
}

// NewSessionCodec returns a SessionCodec keyed by secret. A nil now uses time.Now.
func NewSessionCodec(secret string, now func() time.Time) (*SessionCodec, error) {
	if secret == "" {
		return nil, errors.New("session secret is empty")
	}
	signingKey, err := deriveKey(secret, signingKeyInfo)
	if err != nil {
		return nil, err
	}
	encryptionKey, err := deriveKey(secret, encryptionKeyInfo)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.NewX(encryptionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create session cipher: %w", err)
	}
	if now == nil {
		now = time.Now
	}
	return &SessionCodec{signingKey: signingKey, aead: aead, now: now}, nil
}

func deriveKey(secret, info string) ([]byte, error) {
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(info)), key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	return key, nil
}

func (c *SessionCodec) Issue(session domain.Session, ttl time.Duration) (string, error) {
	now := c.now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email:        session.Email,
		Name:         session.Name,
		Picture:      session.Avatar,
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
	}
	if !session.AccessTokenExpiry.IsZero() {
		claims.AccessTokenExpiry = session.AccessTokenExpiry.Unix()
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	nonce := make([]byte, c.aead.NonceSize(), c.aead.NonceSize()+len(signed)+c.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	sealed := c.aead.Seal(nonce, nonce, []byte(signed), nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Verify opens and validates token. Every rejection wraps domain.ErrUnauthorized.
func (c *SessionCodec) Verify(token string) (*domain.Session, error) {
	sealed, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed session token", domain.ErrUnauthorized)
	}
	if len(sealed) < c.aead.NonceSize() {
		return nil, fmt.Errorf("%w: malformed session token", domain.ErrUnauthorized)
	}
	nonce, ciphertext := sealed[:c.aead.NonceSize()], sealed[c.aead.NonceSize():]
	plain, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: session token rejected", domain.ErrUnauthorized)
	}

	claims := &sessionClaims{}
	_, err = jwt.ParseWithClaims(string(plain), claims, func(*jwt.Token) (any, error) {
		return c.signingKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(c.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	session := &domain.Session{
		Name:         claims.Name,
		Email:        claims.Email,
		Avatar:       claims.Picture,
		AccessToken:  claims.AccessToken,
		RefreshToken: claims.RefreshToken,
		ExpiresAt:    claims.ExpiresAt.Time,
	}
	if claims.AccessTokenExpiry > 0 {
		session.AccessTokenExpiry = time.Unix(claims.AccessTokenExpiry, 0)
	}
	return session, nil
}
