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

package keys

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"
)

const (
	pemBegin = "-----BEGIN PUBLIC KEY-----"
	pemEnd   = "-----END PUBLIC KEY-----"

	// RFC 7468 line wrap for the base64 body.
	pemLineLength = 64
)

// Normalize canonicalizes caller-supplied public key text into standard PEM
// layout. Keys transported in HTTP headers are frequently flattened to a
// single line by header folding or URL encoding; key parsers require the
// markers on their own lines and the body wrapped at 64 characters.
//
// Input that already contains a line break is assumed to be well-formed PEM
// and returned unchanged, which makes Normalize idempotent. Normalize never
// fails; text without recognizable markers is returned as-is and left for
// ParsePublicKey to reject.
func Normalize(raw string) string {
	if strings.ContainsAny(raw, "\r\n") {
		return raw
	}

	begin := strings.Index(raw, pemBegin)
	end := strings.Index(raw, pemEnd)
	if begin < 0 || end < begin+len(pemBegin) {
		return raw
	}

	// Line breaks flattened in transit often survive as spaces inside the
	// base64 body. Base64 itself never contains whitespace, so strip it all.
	body := strings.Join(strings.Fields(raw[begin+len(pemBegin):end]), "")

	var b strings.Builder
	b.Grow(len(raw) + len(body)/pemLineLength + 2)
	b.WriteString(raw[:begin+len(pemBegin)])
	b.WriteByte('\n')
	for len(body) > pemLineLength {
		b.WriteString(body[:pemLineLength])
		b.WriteByte('\n')
		body = body[pemLineLength:]
	}
	if len(body) > 0 {
		b.WriteString(body)
		b.WriteByte('\n')
	}
	b.WriteString(raw[end:])
	return b.String()
}

// ParsePublicKey parses normalized PEM text into a public key usable by the
// signature verifier. It accepts PKIX "PUBLIC KEY" blocks holding an ECDSA,
// Ed25519 or RSA key. Anything else fails: there is no partial success and no
// placeholder key, a parse error always aborts verification.
func ParsePublicKey(pemText string) (crypto.PublicKey, error) {
	block, _ := pem.Decode([]byte(pemText))
	if block == nil {
		return nil, errors.New("no PEM block found in key material")
	}

	if block.Type != "PUBLIC KEY" {
		if strings.Contains(block.Type, "PRIVATE") {
			return nil, fmt.Errorf("expected a public key, got %q", block.Type)
		}
		return nil, fmt.Errorf("unsupported PEM block type %q", block.Type)
	}

	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PKIX public key: %w", err)
	}

	switch pub.(type) {
	case *ecdsa.PublicKey, ed25519.PublicKey, *rsa.PublicKey:
		return pub, nil
	default:
		return nil, fmt.Errorf("unsupported public key type %T", pub)
	}
}
