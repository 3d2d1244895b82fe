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

package signer

import (
	"context"
	"crypto"
	"net/http"

	"github.com/google/uuid"
)

// Signer signs HTTP requests with RFC 9421 HTTP Message Signatures.
type Signer interface {
	// SignRequest builds the signature base for the request, signs it with
	// key and sets the Signature-Input and Signature headers.
	SignRequest(ctx context.Context, req *http.Request, key crypto.PrivateKey, opts *SigningOptions) error
}

// SigningOptions controls what gets signed and the declared parameters.
type SigningOptions struct {
	// Components are the covered components, e.g. "@method", "@target-uri".
	// Defaults to message.DefaultComponents when empty.
	Components []string

	// Algorithm is the registry identifier to sign with, e.g. "ed25519".
	// Required; it must match the key type.
	Algorithm string

	// KeyID identifies the key to the verifier's keystore.
	KeyID string

	// Created is the signature creation time as a Unix timestamp.
	// If 0, the current time is used.
	Created int64

	// Expires is the signature expiry as a Unix timestamp. If 0, no expiry
	// is declared.
	Expires int64

	// Nonce is an optional replay-protection nonce. Use NewNonce for a
	// random one.
	Nonce string
}

// NewNonce returns a random nonce suitable for the nonce signature parameter.
func NewNonce() string {
	return uuid.NewString()
}
