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

	"github.com/sage-x-project/sage-httpsig-go/pkg/algorithm"
)

// FailureReason is a tagged classification of why verification failed.
// Callers switch on this closed set, never on error message text.
type FailureReason string

const (
	// ReasonKeyParse means the key text is not a valid, supported public key
	// encoding.
	ReasonKeyParse FailureReason = "key_parse_error"

	// ReasonMissingOrUnsupportedAlgorithm means the declared algorithm is
	// absent or not present in the registry.
	ReasonMissingOrUnsupportedAlgorithm FailureReason = "missing_or_unsupported_algorithm"

	// ReasonSignatureMismatch means cryptographic verification returned
	// false, or the signature was structurally invalid for the chosen
	// primitive. The two are deliberately not distinguished outwardly.
	ReasonSignatureMismatch FailureReason = "signature_mismatch"
)

// Parameters is the declared metadata accompanying a signature. Only
// Algorithm is enforced by the verifier; KeyID, Created, Expires and Nonce
// are carried for the boundary layer, which owns freshness and identity
// policy.
type Parameters struct {
	Algorithm string
	KeyID     string
	Created   int64
	Expires   int64
	Nonce     string
}

// Outcome is the result of one verification call. It is constructed once,
// never cached, and Reason is set iff Verified is false. Detail is an
// optional diagnostic string; it is informational only and carries no
// contract.
type Outcome struct {
	Verified bool
	Reason   FailureReason
	Detail   string
}

// SignatureVerifier decides whether a raw signature over a signature base is
// valid for a given public key and declared parameters. Implementations never
// panic; every failure mode is mapped to an Outcome.
type SignatureVerifier interface {
	// VerifySignature normalizes and parses publicKeyPEM, resolves
	// params.Algorithm and runs the cryptographic check over data.
	VerifySignature(publicKeyPEM string, data, signature []byte, params Parameters) Outcome

	// VerifyWithKey is VerifySignature for an already-parsed key handle,
	// including a SharedKey for hmac-sha256.
	VerifyWithKey(key crypto.PublicKey, data, signature []byte, params Parameters) Outcome
}

// CryptoVerifier performs the raw cryptographic check. The descriptor selects
// the hash (or the intrinsic sentinel) and the RSA padding; the key selects
// the primitive. A false return means a structurally valid but non-matching
// signature; an error is reserved for inputs that are structurally impossible
// for the primitive.
type CryptoVerifier interface {
	Verify(desc algorithm.Descriptor, message []byte, key crypto.PublicKey, signature []byte) (bool, error)
}

// SharedKey is a symmetric secret usable as the key handle for hmac-sha256.
type SharedKey []byte
