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
	"encoding/base64"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sage-x-project/sage-httpsig-go/pkg/verifier"
)

// signatureLabel is the label used for signatures produced by this module.
// Multiple signatures per message are not supported.
const signatureLabel = "sig1"

var (
	sigInputRe  = regexp.MustCompile(`^\s*([\w-]+)=\(([^)]*)\)(.*)$`)
	componentRe = regexp.MustCompile(`"([^"]+)"`)
	strParamRe  = regexp.MustCompile(`;\s*(\w+)="([^"]*)"`)
	intParamRe  = regexp.MustCompile(`;\s*(\w+)=(\d+)`)
	sigValueRe  = regexp.MustCompile(`^\s*([\w-]+)=:([A-Za-z0-9+/]*={0,2}):\s*$`)
)

// BuildSignatureInput renders the Signature-Input header value for the given
// covered components and signature parameters. Zero-valued parameters are
// omitted.
func BuildSignatureInput(components []string, params verifier.Parameters) string {
	quoted := make([]string, len(components))
	for i, c := range components {
		quoted[i] = fmt.Sprintf("%q", c)
	}

	parts := []string{
		fmt.Sprintf("(%s)", strings.Join(quoted, " ")),
	}
	if params.Created > 0 {
		parts = append(parts, fmt.Sprintf("created=%d", params.Created))
	}
	if params.Expires > 0 {
		parts = append(parts, fmt.Sprintf("expires=%d", params.Expires))
	}
	if params.Nonce != "" {
		parts = append(parts, fmt.Sprintf("nonce=%q", params.Nonce))
	}
	if params.KeyID != "" {
		parts = append(parts, fmt.Sprintf("keyid=%q", params.KeyID))
	}
	if params.Algorithm != "" {
		parts = append(parts, fmt.Sprintf("alg=%q", params.Algorithm))
	}

	return fmt.Sprintf("%s=%s", signatureLabel, strings.Join(parts, ";"))
}

// BuildSignature renders the Signature header value for raw signature bytes.
func BuildSignature(sig []byte) string {
	return fmt.Sprintf("%s=:%s:", signatureLabel, base64.StdEncoding.EncodeToString(sig))
}

// ParseSignatureInput parses a Signature-Input header value into the covered
// component list and the declared signature parameters. Parameters the
// verifier does not know are ignored.
func ParseSignatureInput(value string) ([]string, verifier.Parameters, error) {
	m := sigInputRe.FindStringSubmatch(value)
	if m == nil {
		return nil, verifier.Parameters{}, fmt.Errorf("malformed Signature-Input header %q", value)
	}

	var components []string
	for _, c := range componentRe.FindAllStringSubmatch(m[2], -1) {
		components = append(components, c[1])
	}

	var params verifier.Parameters
	rest := m[3]
	for _, p := range strParamRe.FindAllStringSubmatch(rest, -1) {
		switch p[1] {
		case "keyid":
			params.KeyID = p[2]
		case "alg":
			params.Algorithm = p[2]
		case "nonce":
			params.Nonce = p[2]
		}
	}
	for _, p := range intParamRe.FindAllStringSubmatch(rest, -1) {
		n, err := strconv.ParseInt(p[2], 10, 64)
		if err != nil {
			continue
		}
		switch p[1] {
		case "created":
			params.Created = n
		case "expires":
			params.Expires = n
		}
	}

	return components, params, nil
}

// ParseSignature parses a Signature header value and returns the raw
// signature bytes.
func ParseSignature(value string) ([]byte, error) {
	m := sigValueRe.FindStringSubmatch(value)
	if m == nil {
		return nil, fmt.Errorf("malformed Signature header %q", value)
	}
	sig, err := base64.StdEncoding.DecodeString(m[2])
	if err != nil {
		return nil, fmt.Errorf("failed to decode signature: %w", err)
	}
	return sig, nil
}
