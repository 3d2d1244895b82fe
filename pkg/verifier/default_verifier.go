// Copyright (C) 2025 SAGE-X Project
//
// This file is part of sage-httpsig-go.
//
// sage-httpsig-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sage-httpsig-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with sage-httpsig-go.  If not, see <https://www.gnu.org/licenses/>.

package verifier

import (
	"crypto"
	"fmt"

	"github.com/sage-x-project/sage-httpsig-go/pkg/algorithm"
	"github.com/sage-x-project/sage-httpsig-go/pkg/keys"
)

// DefaultVerifier implements SignatureVerifier by composing key
// normalization, key parsing, algorithm resolution and the cryptographic
// primitive into a single call. Each call is an independent linear pipeline;
// the verifier holds no per-call state and is safe for concurrent use.
type DefaultVerifier struct {
	registry *algorithm.Registry
	crypto   CryptoVerifier
}

// NewDefaultVerifier creates a verifier with the standard algorithm registry
// and primitives.
func NewDefaultVerifier() *DefaultVerifier {
	return NewDefaultVerifierWith(nil, nil)
}

// NewDefaultVerifierWith creates a verifier with an injected registry and
// cryptographic primitive. Nil arguments fall back to the defaults; tests use
// this to substitute a reduced registry or a spy primitive.
func NewDefaultVerifierWith(registry *algorithm.Registry, cv CryptoVerifier) *DefaultVerifier {
	if registry == nil {
		registry = algorithm.NewRegistry()
	}
	if cv == nil {
		cv = DefaultCryptoVerifier{}
	}
	return &DefaultVerifier{
		registry: registry,
		crypto:   cv,
	}
}

// VerifySignature verifies signature over data with the public key supplied
// as PEM text, single- or multi-line. It never panics; every failure mode is
// converted to an Outcome with Verified false and a tagged reason.
func (v *DefaultVerifier) VerifySignature(publicKeyPEM string, data, signature []byte, params Parameters) Outcome {
	key, err := keys.ParsePublicKey(keys.Normalize(publicKeyPEM))
	if err != nil {
		return failure(ReasonKeyParse, err.Error())
	}
	return v.VerifyWithKey(key, data, signature, params)
}

// VerifyWithKey verifies signature over data with an already-parsed key
// handle. HMAC callers pass a SharedKey here, since a symmetric secret has no
// PEM form.
func (v *DefaultVerifier) VerifyWithKey(key crypto.PublicKey, data, signature []byte, params Parameters) Outcome {
	if params.Algorithm == "" {
		return failure(ReasonMissingOrUnsupportedAlgorithm, "no signature algorithm declared")
	}

	desc, ok := v.registry.Resolve(params.Algorithm)
	if !ok {
		return failure(ReasonMissingOrUnsupportedAlgorithm, fmt.Sprintf("unsupported algorithm %q", params.Algorithm))
	}

	valid, err := v.crypto.Verify(desc, data, key, signature)
	if err != nil {
		// A structurally impossible signature is reported exactly like a
		// wrong one, so the outward taxonomy leaks nothing about which check
		// tripped.
		return failure(ReasonSignatureMismatch, err.Error())
	}
	if !valid {
		return failure(ReasonSignatureMismatch, "signature does not match")
	}

	return Outcome{Verified: true}
}

func failure(reason FailureReason, detail string) Outcome {
	return Outcome{
		Verified: false,
		Reason:   reason,
		Detail:   detail,
	}
}
