// Package auth issues and verifies the bearer tokens that identify request
// subjects, and provides the route middleware that gates protected
// operations by subject kind.
//
// The guard is an identity check, not a data loader: it binds the verified
// subject id and kind to the request context and nothing else. Handlers
// that need the full volunteer or NGO record fetch it by id themselves.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/unityvolunteers/unityhub/internal/app/system/httperr"
)

// Kind distinguishes the two top-level identity types. Volunteers and NGOs
// are independent entities with separate collections; a token is only ever
// valid for the kind it was issued to.
type Kind string

const (
	KindVolunteer Kind = "volunteer"
	KindNGO       Kind = "ngo"
)

// Subject is the authenticated identity attached to a request after token
// validation.
type Subject struct {
	ID   primitive.ObjectID
	Kind Kind
}

const issuer = "unityhub"

// claims is the token payload: RegisteredClaims carries sub/iss/iat/exp,
// Kind carries the subject kind.
type claims struct {
	Kind Kind `json:"kind"`
	jwt.RegisteredClaims
}

var (
	ErrNoToken      = errors.New("no bearer token")
	ErrInvalidToken = errors.New("invalid token")
)

// TokenManager signs and verifies HS256 bearer tokens with a fixed expiry.
type TokenManager struct {
	secret []byte
	expiry time.Duration
	log    *zap.Logger
}

// NewTokenManager builds a TokenManager. The secret must be non-empty and
// the expiry positive.
func NewTokenManager(secret string, expiry time.Duration, logger *zap.Logger) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("auth: signing secret is required")
	}
	if expiry <= 0 {
		return nil, errors.New("auth: token expiry must be positive")
	}
	return &TokenManager{secret: []byte(secret), expiry: expiry, log: logger}, nil
}

// Issue signs a token for the subject. Expiry is fixed at issuance; there
// is no refresh flow.
func (tm *TokenManager) Issue(id primitive.ObjectID, kind Kind) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Hex(),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.expiry)),
		},
	})
	return token.SignedString(tm.secret)
}

// Verify parses and validates a token string and returns its subject.
// Signature, expiry, issuer, and algorithm are all checked; only HS256 is
// accepted.
func (tm *TokenManager) Verify(tokenStr string) (Subject, error) {
	var c claims
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&c,
		func(t *jwt.Token) (any, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, ErrInvalidToken
			}
			return tm.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
	)
	if err != nil || !token.Valid {
		return Subject{}, ErrInvalidToken
	}

	id, err := primitive.ObjectIDFromHex(c.Subject)
	if err != nil {
		return Subject{}, ErrInvalidToken
	}
	if c.Kind != KindVolunteer && c.Kind != KindNGO {
		return Subject{}, ErrInvalidToken
	}
	return Subject{ID: id, Kind: c.Kind}, nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| Request context plumbing                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

type ctxKey string

const subjectKey ctxKey = "authSubject"

// CurrentSubject returns the subject bound to the request, if any.
func CurrentSubject(r *http.Request) (Subject, bool) {
	s, ok := r.Context().Value(subjectKey).(Subject)
	return s, ok
}

// WithTestSubject binds a subject to a request without token verification.
// Handler tests use this to exercise protected operations directly.
func WithTestSubject(r *http.Request, s Subject) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), subjectKey, s))
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrNoToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", ErrNoToken
	}
	return strings.TrimSpace(parts[1]), nil
}

// Require gates a route group to subjects of one kind. Missing, malformed,
// expired, and wrong-kind tokens all answer 401; the specific reason goes
// to the debug log, never to the client.
func (tm *TokenManager) Require(kind Kind) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Already bound (tests, or an outer guard): only the kind check remains.
			if s, ok := CurrentSubject(r); ok {
				if s.Kind != kind {
					httperr.Write(w, httperr.New(httperr.Unauthorized, "Not authorized"))
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			tokenStr, err := bearerToken(r)
			if err != nil {
				httperr.Write(w, httperr.New(httperr.Unauthorized, "Not authorized"))
				return
			}

			subject, err := tm.Verify(tokenStr)
			if err != nil {
				tm.log.Debug("token rejected", zap.Error(err))
				httperr.Write(w, httperr.New(httperr.Unauthorized, "Not authorized"))
				return
			}
			if subject.Kind != kind {
				httperr.Write(w, httperr.New(httperr.Unauthorized, "Not authorized"))
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), subjectKey, subject)))
		})
	}
}
