package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/sage-x-project/sage-httpsig-go/pkg/message"
	"github.com/sage-x-project/sage-httpsig-go/pkg/verifier"
)

type contextKey string

const keyIDContextKey contextKey = "httpsig_key_id"

// Keystore looks up the PEM-encoded public key registered under a keyid.
type Keystore interface {
	LookupPublicKey(ctx context.Context, keyID string) (string, error)
}

// StaticKeystore is a fixed keyid-to-PEM map, useful for tests and small
// deployments.
type StaticKeystore map[string]string

// LookupPublicKey returns the PEM registered under keyID.
func (s StaticKeystore) LookupPublicKey(_ context.Context, keyID string) (string, error) {
	pem, ok := s[keyID]
	if !ok {
		return "", fmt.Errorf("no public key registered for keyid %q", keyID)
	}
	return pem, nil
}

// ErrorHandler writes the response for a request that failed verification.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, status int, outcome verifier.Outcome)

// SignatureAuthMiddleware verifies RFC 9421 signatures on incoming requests.
// It reconstructs the signature base from the covered components declared in
// Signature-Input, resolves the key through the keystore and delegates the
// cryptographic decision to the verifier.
type SignatureAuthMiddleware struct {
	verifier     verifier.SignatureVerifier
	keystore     Keystore
	errorHandler ErrorHandler
	logger       zerolog.Logger
	optional     bool
}

// NewSignatureAuthMiddleware creates middleware backed by the default
// verifier and the given keystore.
func NewSignatureAuthMiddleware(keystore Keystore) *SignatureAuthMiddleware {
	return NewSignatureAuthMiddlewareWithVerifier(keystore, verifier.NewDefaultVerifier())
}

// NewSignatureAuthMiddlewareWithVerifier creates middleware with a custom
// verifier.
func NewSignatureAuthMiddlewareWithVerifier(keystore Keystore, v verifier.SignatureVerifier) *SignatureAuthMiddleware {
	return &SignatureAuthMiddleware{
		verifier:     v,
		keystore:     keystore,
		errorHandler: defaultErrorHandler,
		logger:       zerolog.Nop(),
		optional:     false,
	}
}

// SetErrorHandler sets a custom error handler.
func (m *SignatureAuthMiddleware) SetErrorHandler(handler ErrorHandler) {
	m.errorHandler = handler
}

// SetLogger sets the logger used for verification failures.
func (m *SignatureAuthMiddleware) SetLogger(logger zerolog.Logger) {
	m.logger = logger
}

// SetOptional sets whether unsigned requests are allowed to pass through.
func (m *SignatureAuthMiddleware) SetOptional(optional bool) {
	m.optional = optional
}

// Wrap wraps an HTTP handler with signature verification.
func (m *SignatureAuthMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip verification for OPTIONS requests (CORS preflight)
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		sigInput := r.Header.Get(message.SignatureInputHeader)
		sigHeader := r.Header.Get(message.SignatureHeader)
		if sigInput == "" || sigHeader == "" {
			if m.optional {
				next.ServeHTTP(w, r)
				return
			}
			m.fail(w, r, http.StatusUnauthorized, verifier.Outcome{
				Reason: verifier.ReasonSignatureMismatch,
				Detail: "missing signature headers",
			})
			return
		}

		components, params, err := message.ParseSignatureInput(sigInput)
		if err != nil {
			m.fail(w, r, http.StatusBadRequest, verifier.Outcome{
				Reason: verifier.ReasonSignatureMismatch,
				Detail: err.Error(),
			})
			return
		}

		sig, err := message.ParseSignature(sigHeader)
		if err != nil {
			m.fail(w, r, http.StatusBadRequest, verifier.Outcome{
				Reason: verifier.ReasonSignatureMismatch,
				Detail: err.Error(),
			})
			return
		}

		pem, err := m.keystore.LookupPublicKey(r.Context(), params.KeyID)
		if err != nil {
			m.fail(w, r, http.StatusUnauthorized, verifier.Outcome{
				Reason: verifier.ReasonKeyParse,
				Detail: err.Error(),
			})
			return
		}

		base, err := message.BuildSignatureBase(r, components)
		if err != nil {
			m.fail(w, r, http.StatusBadRequest, verifier.Outcome{
				Reason: verifier.ReasonSignatureMismatch,
				Detail: err.Error(),
			})
			return
		}

		outcome := m.verifier.VerifySignature(pem, []byte(base), sig, params)
		if !outcome.Verified {
			m.fail(w, r, statusForReason(outcome.Reason), outcome)
			return
		}

		ctx := context.WithValue(r.Context(), keyIDContextKey, params.KeyID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// KeyIDFromContext extracts the verified keyid from the request context.
func KeyIDFromContext(ctx context.Context) (string, bool) {
	keyID, ok := ctx.Value(keyIDContextKey).(string)
	return keyID, ok
}

func (m *SignatureAuthMiddleware) fail(w http.ResponseWriter, r *http.Request, status int, outcome verifier.Outcome) {
	m.logger.Warn().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("reason", string(outcome.Reason)).
		Str("detail", outcome.Detail).
		Msg("signature verification failed")
	m.errorHandler(w, r, status, outcome)
}

// statusForReason maps the closed reason set to HTTP status codes. The
// mapping lives here because status codes are a boundary concern, not part of
// the verification core.
func statusForReason(reason verifier.FailureReason) int {
	switch reason {
	case verifier.ReasonKeyParse, verifier.ReasonMissingOrUnsupportedAlgorithm:
		return http.StatusBadRequest
	default:
		return http.StatusUnauthorized
	}
}

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, status int, outcome verifier.Outcome) {
	http.Error(w, fmt.Sprintf("%d: %s", status, outcome.Reason), status)
}
