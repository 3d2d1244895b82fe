package signer

import (
	"context"
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"net/http"
	"time"

	"github.com/sage-x-project/sage-httpsig-go/pkg/algorithm"
	"github.com/sage-x-project/sage-httpsig-go/pkg/message"
	"github.com/sage-x-project/sage-httpsig-go/pkg/verifier"
)

// DefaultSigner implements Signer for all algorithms in the registry.
type DefaultSigner struct {
	registry *algorithm.Registry
}

// NewDefaultSigner creates a new DefaultSigner with the standard algorithm
// registry.
func NewDefaultSigner() *DefaultSigner {
	return &DefaultSigner{registry: algorithm.NewRegistry()}
}

// SignRequest signs an HTTP request and sets the signature headers.
func (s *DefaultSigner) SignRequest(ctx context.Context, req *http.Request, key crypto.PrivateKey, opts *SigningOptions) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if req == nil {
		return fmt.Errorf("request cannot be nil")
	}
	if key == nil {
		return fmt.Errorf("key cannot be nil")
	}
	if opts == nil || opts.Algorithm == "" {
		return fmt.Errorf("signing options with an algorithm are required")
	}

	desc, ok := s.registry.Resolve(opts.Algorithm)
	if !ok {
		return fmt.Errorf("unsupported algorithm %q", opts.Algorithm)
	}

	components := opts.Components
	if len(components) == 0 {
		components = message.DefaultComponents
	}

	created := opts.Created
	if created == 0 {
		created = time.Now().Unix()
	}

	base, err := message.BuildSignatureBase(req, components)
	if err != nil {
		return fmt.Errorf("failed to build signature base: %w", err)
	}

	sig, err := s.SignRaw(desc, []byte(base), key)
	if err != nil {
		return fmt.Errorf("failed to sign: %w", err)
	}

	params := verifier.Parameters{
		Algorithm: desc.Name,
		KeyID:     opts.KeyID,
		Created:   created,
		Expires:   opts.Expires,
		Nonce:     opts.Nonce,
	}

	req.Header.Set(message.SignatureInputHeader, message.BuildSignatureInput(components, params))
	req.Header.Set(message.SignatureHeader, message.BuildSignature(sig))

	return nil
}

// SignRaw signs a message with the primitive the descriptor selects. Ed25519
// signs the full message; the other schemes sign a digest computed with the
// descriptor's hash.
func (s *DefaultSigner) SignRaw(desc algorithm.Descriptor, msg []byte, key crypto.PrivateKey) ([]byte, error) {
	switch k := key.(type) {
	case ed25519.PrivateKey:
		if desc.Hash != algorithm.HashIntrinsic {
			return nil, fmt.Errorf("%s hashes internally, refusing external hash %v", algorithm.Ed25519, desc.Hash)
		}
		return ed25519.Sign(k, msg), nil

	case *ecdsa.PrivateKey:
		digest, err := digestMessage(desc, msg)
		if err != nil {
			return nil, err
		}
		return ecdsa.SignASN1(rand.Reader, k, digest)

	case *rsa.PrivateKey:
		digest, err := digestMessage(desc, msg)
		if err != nil {
			return nil, err
		}
		if desc.PSS {
			return rsa.SignPSS(rand.Reader, k, desc.Hash, digest, nil)
		}
		return rsa.SignPKCS1v15(rand.Reader, k, desc.Hash, digest)

	case verifier.SharedKey:
		return hmacSum(desc, msg, k)

	case []byte:
		return hmacSum(desc, msg, k)

	default:
		return nil, fmt.Errorf("unsupported private key type %T", key)
	}
}
