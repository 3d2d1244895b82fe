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

package message

import (
	"fmt"
	"net/http"
	"strings"
)

// Header names used by RFC 9421 HTTP Message Signatures.
const (
	SignatureInputHeader = "Signature-Input"
	SignatureHeader      = "Signature"
)

// Derived component identifiers (RFC 9421 Section 2.2).
const (
	ComponentMethod    = "@method"
	ComponentTargetURI = "@target-uri"
	ComponentAuthority = "@authority"
	ComponentPath      = "@path"
)

// DefaultComponents is the component list used when the signer is given none.
var DefaultComponents = []string{ComponentMethod, ComponentTargetURI}

// BuildSignatureBase creates the signature base string for the given request
// and covered components. Derived components are canonicalized from the
// request line; everything else is treated as a header name, lower-cased in
// the base. Missing headers are skipped rather than failing, so signer and
// verifier agree on the base as long as they use the same component list.
func BuildSignatureBase(req *http.Request, components []string) (string, error) {
	if req == nil {
		return "", fmt.Errorf("request cannot be nil")
	}

	var lines []string
	for _, component := range components {
		var line string

		switch component {
		case ComponentMethod:
			line = fmt.Sprintf(`"%s": %s`, component, req.Method)
		case ComponentTargetURI:
			line = fmt.Sprintf(`"%s": %s`, component, targetURI(req))
		case ComponentAuthority:
			line = fmt.Sprintf(`"%s": %s`, component, req.Host)
		case ComponentPath:
			line = fmt.Sprintf(`"%s": %s`, component, req.URL.Path)
		default:
			headerValue := req.Header.Get(component)
			if headerValue == "" {
				continue
			}
			line = fmt.Sprintf(`"%s": %s`, strings.ToLower(component), headerValue)
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n"), nil
}

// targetURI reconstructs the full target URI. Client-side requests carry an
// absolute URL; server-side requests only carry the path, so scheme and host
// are recovered from the connection and Host header. Both sides must produce
// the same string or no signature will ever match.
func targetURI(req *http.Request) string {
	if req.URL.IsAbs() {
		return req.URL.String()
	}
	scheme := "http"
	if req.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + req.Host + req.URL.RequestURI()
}
