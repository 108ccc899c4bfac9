// Package auth verifies participant bearer tokens issued by the identity provider.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/osse101/PlayPredix_Go/internal/domain"
	"github.com/osse101/PlayPredix_Go/internal/logger"
)

// Claims carried by a participant token. Subject is the participant id.
type Claims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Participant is the authenticated caller
type Participant struct {
	ID          uuid.UUID
	DisplayName string
}

type participantKey struct{}

// WithParticipant stores the participant in the context
func WithParticipant(ctx context.Context, p Participant) context.Context {
	ctx = context.WithValue(ctx, participantKey{}, p)
	return logger.WithParticipant(ctx, p.ID.String())
}

// ParticipantFromContext returns the authenticated participant, if any
func ParticipantFromContext(ctx context.Context) (Participant, bool) {
	p, ok := ctx.Value(participantKey{}).(Participant)
	return p, ok
}

// Verifier checks HS256 tokens
type Verifier struct {
	secret []byte
	issuer string
	parser *jwt.Parser
}

// NewVerifier creates a verifier. An empty issuer skips the issuer check.
func NewVerifier(secret, issuer string) *Verifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(ClockSkewLeeway),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	return &Verifier{
		secret: []byte(secret),
		issuer: issuer,
		parser: jwt.NewParser(opts...),
	}
}

// Verify parses the token and returns the participant it identifies
func (v *Verifier) Verify(tokenString string) (Participant, error) {
	claims := &Claims{}
	_, err := v.parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		return Participant{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Participant{}, fmt.Errorf("%w: subject is not a participant id", domain.ErrUnauthorized)
	}
	return Participant{ID: id, DisplayName: strings.TrimSpace(claims.Name)}, nil
}

// Sign issues a token for the participant. Used by tooling and tests; production
// tokens come from the identity provider.
func (v *Verifier) Sign(p Participant, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Name: p.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID.String(),
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

// bearerToken extracts the token from the Authorization header
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get(HeaderAuthorization)
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], BearerScheme) || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// Required rejects requests without a valid bearer token
func (v *Verifier) Required(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
			return
		}
		p, err := v.Verify(token)
		if err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgTokenRejected, "path", r.URL.Path, "error", err)
			http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithParticipant(r.Context(), p)))
	})
}

// Optional attaches the participant when a valid token is present and lets
// anonymous requests through. A malformed or expired token is still rejected.
func (v *Verifier) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		p, err := v.Verify(token)
		if err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgTokenRejected, "path", r.URL.Path, "error", err)
			http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithParticipant(r.Context(), p)))
	})
}

// IsUnauthorized reports whether err came from token verification
func IsUnauthorized(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized)
}
