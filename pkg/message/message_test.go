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
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sage-x-project/sage-httpsig-go/pkg/verifier"
)

func TestBuildSignatureBase_DerivedComponents(t *testing.T) {
	req := httptest.NewRequest("POST", "https://agent.example.com/task", nil)

	base, err := BuildSignatureBase(req, []string{ComponentMethod, ComponentTargetURI})
	require.NoError(t, err)
	assert.Equal(t, "\"@method\": POST\n\"@target-uri\": https://agent.example.com/task", base)
}

func TestBuildSignatureBase_AuthorityAndPath(t *testing.T) {
	req := httptest.NewRequest("GET", "https://agent.example.com/tasks/42?verbose=1", nil)

	base, err := BuildSignatureBase(req, []string{ComponentAuthority, ComponentPath})
	require.NoError(t, err)
	assert.Equal(t, "\"@authority\": agent.example.com\n\"@path\": /tasks/42", base)
}

func TestBuildSignatureBase_HeadersLowercased(t *testing.T) {
	req := httptest.NewRequest("POST", "https://agent.example.com/task", nil)
	req.Header.Set("Content-Type", "application/json")

	base, err := BuildSignatureBase(req, []string{ComponentMethod, "Content-Type"})
	require.NoError(t, err)
	assert.Contains(t, base, "\"content-type\": application/json")
}

func TestBuildSignatureBase_MissingHeaderSkipped(t *testing.T) {
	req := httptest.NewRequest("POST", "https://agent.example.com/task", nil)

	base, err := BuildSignatureBase(req, []string{ComponentMethod, "x-absent"})
	require.NoError(t, err)
	assert.Equal(t, "\"@method\": POST", base)
}

func TestBuildSignatureBase_NilRequest(t *testing.T) {
	_, err := BuildSignatureBase(nil, []string{ComponentMethod})
	require.Error(t, err)
}

func TestSignatureInput_RoundTrip(t *testing.T) {
	components := []string{ComponentMethod, ComponentTargetURI}
	params := verifier.Parameters{
		Algorithm: "ecdsa-p256-sha256",
		KeyID:     "client-key-1",
		Created:   1700000000,
		Expires:   1700000300,
		Nonce:     "abc-123",
	}

	value := BuildSignatureInput(components, params)
	gotComponents, gotParams, err := ParseSignatureInput(value)
	require.NoError(t, err)
	assert.Equal(t, components, gotComponents)
	assert.Equal(t, params, gotParams)
}

func TestSignatureInput_OmitsZeroParameters(t *testing.T) {
	value := BuildSignatureInput([]string{ComponentMethod}, verifier.Parameters{Algorithm: "ed25519"})
	assert.Equal(t, `sig1=("@method");alg="ed25519"`, value)
}

func TestParseSignatureInput_Malformed(t *testing.T) {
	for _, value := range []string{"", "sig1=", "garbage", "sig1=@method"} {
		_, _, err := ParseSignatureInput(value)
		assert.Error(t, err, "value %q", value)
	}
}

func TestSignature_RoundTrip(t *testing.T) {
	sig := []byte{0xde, 0xad, 0xbe, 0xef}

	value := BuildSignature(sig)
	assert.Equal(t, "sig1=:3q2+7w==:", value)

	got, err := ParseSignature(value)
	require.NoError(t, err)
	assert.Equal(t, sig, got)
}

func TestParseSignature_Malformed(t *testing.T) {
	for _, value := range []string{"", "sig1=abc", "sig1=:not base64!:"} {
		_, err := ParseSignature(value)
		assert.Error(t, err, "value %q", value)
	}
}
