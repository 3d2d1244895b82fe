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

// Package verifier decides whether an RFC 9421 signature is cryptographically
// valid for a caller-supplied public key.
//
// The caller hands over an already-reconstructed signature base, the raw
// (base64-decoded) signature bytes, the key as PEM text and the declared
// signature parameters; the verifier answers with an Outcome:
//
//	v := verifier.NewDefaultVerifier()
//	outcome := v.VerifySignature(publicKeyPEM, signatureBase, sig, verifier.Parameters{
//	    Algorithm: "ecdsa-p256-sha256",
//	})
//	if !outcome.Verified {
//	    switch outcome.Reason {
//	    case verifier.ReasonKeyParse:
//	        // bad key material
//	    case verifier.ReasonMissingOrUnsupportedAlgorithm:
//	        // unknown "alg" parameter
//	    case verifier.ReasonSignatureMismatch:
//	        // signature does not verify
//	    }
//	}
//
// # Contract
//
// VerifySignature never panics. Every failure mode is captured at its origin
// and converted to an Outcome with a tagged FailureReason; the boundary layer
// switches on the closed reason set rather than parsing message text. A
// structurally invalid signature (wrong length, wrong ASN.1 shape) and a
// simply wrong one both surface as ReasonSignatureMismatch.
//
// # What the verifier does not do
//
// Key lifecycle, replay protection and identity are out of scope. The
// Created, Expires and Nonce parameters are carried through untouched; a
// valid outcome only proves the signature was produced by the holder of the
// private key paired with the supplied public key.
//
// # Concurrency
//
// Verification is pure and call-local. The algorithm registry is read-only
// after construction, so any number of calls may run in parallel with no
// coordination.
package verifier
