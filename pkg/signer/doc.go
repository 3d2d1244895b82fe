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

// Package signer creates RFC 9421 HTTP Message Signatures.
//
// The DefaultSigner builds a signature base over the chosen covered
// components, signs it with the supplied private key and attaches the
// Signature-Input and Signature headers:
//
//	s := signer.NewDefaultSigner()
//	err := s.SignRequest(ctx, req, privateKey, &signer.SigningOptions{
//	    Algorithm: "ecdsa-p256-sha256",
//	    KeyID:     "client-key-1",
//	    Nonce:     signer.NewNonce(),
//	})
//
// Supported keys are *ecdsa.PrivateKey (P-256/P-384), ed25519.PrivateKey,
// *rsa.PrivateKey (PSS and PKCS#1 v1.5) and raw shared secrets for
// hmac-sha256. The algorithm identifier must match the key type; the signer
// does not guess.
//
// SignRaw exposes the primitive layer for callers that construct their own
// signature base.
package signer
