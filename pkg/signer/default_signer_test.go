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
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sage-x-project/sage-httpsig-go/pkg/algorithm"
	"github.com/sage-x-project/sage-httpsig-go/pkg/message"
	"github.com/sage-x-project/sage-httpsig-go/pkg/verifier"
)

func publicKeyPEM(t *testing.T, pub any) string {
	t.Helper()
	der, err := x509.MarshalPKIXPublicKey(pub)
	require.NoError(t, err)
	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func TestSignRequest_SetsSignatureHeaders(t *testing.T) {
	ctx := context.Background()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	s := NewDefaultSigner()
	req := httptest.NewRequest("POST", "https://agent.example.com/task", nil)

	err = s.SignRequest(ctx, req, priv, &SigningOptions{
		Algorithm: algorithm.Ed25519,
		KeyID:     "client-key-1",
	})
	require.NoError(t, err)

	sigInput := req.Header.Get(message.SignatureInputHeader)
	sigHeader := req.Header.Get(message.SignatureHeader)
	require.NotEmpty(t, sigInput)
	require.NotEmpty(t, sigHeader)
	assert.Contains(t, sigInput, `keyid="client-key-1"`)
	assert.Contains(t, sigInput, `alg="ed25519"`)
	assert.Contains(t, sigInput, "created=")

	// The produced headers must verify end to end
	components, params, err := message.ParseSignatureInput(sigInput)
	require.NoError(t, err)
	sig, err := message.ParseSignature(sigHeader)
	require.NoError(t, err)
	base, err := message.BuildSignatureBase(req, components)
	require.NoError(t, err)

	outcome := verifier.NewDefaultVerifier().VerifySignature(publicKeyPEM(t, pub), []byte(base), sig, params)
	assert.True(t, outcome.Verified, "detail: %s", outcome.Detail)
}

func TestSignRequest_AllAsymmetricAlgorithms(t *testing.T) {
	ctx := context.Background()
	s := NewDefaultSigner()
	v := verifier.NewDefaultVerifier()

	ecP256, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	ecP384, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	require.NoError(t, err)
	edPub, edPriv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	tests := []struct {
		alg  string
		priv any
		pub  any
	}{
		{algorithm.ECDSAP256SHA256, ecP256, &ecP256.PublicKey},
		{algorithm.ECDSAP384SHA384, ecP384, &ecP384.PublicKey},
		{algorithm.Ed25519, edPriv, edPub},
		{algorithm.RSAPSSSHA512, rsaKey, &rsaKey.PublicKey},
		{algorithm.RSAV15SHA256, rsaKey, &rsaKey.PublicKey},
	}
	for _, tt := range tests {
		t.Run(tt.alg, func(t *testing.T) {
			req := httptest.NewRequest("POST", "https://agent.example.com/task", nil)
			err := s.SignRequest(ctx, req, tt.priv, &SigningOptions{
				Algorithm: tt.alg,
				KeyID:     "k1",
				Nonce:     NewNonce(),
			})
			require.NoError(t, err)

			components, params, err := message.ParseSignatureInput(req.Header.Get(message.SignatureInputHeader))
			require.NoError(t, err)
			sig, err := message.ParseSignature(req.Header.Get(message.SignatureHeader))
			require.NoError(t, err)
			base, err := message.BuildSignatureBase(req, components)
			require.NoError(t, err)

			outcome := v.VerifySignature(publicKeyPEM(t, tt.pub), []byte(base), sig, params)
			assert.True(t, outcome.Verified, "detail: %s", outcome.Detail)
		})
	}
}

func TestSignRequest_Validation(t *testing.T) {
	ctx := context.Background()
	s := NewDefaultSigner()
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "https://agent.example.com/task", nil)

	assert.Error(t, s.SignRequest(ctx, nil, priv, &SigningOptions{Algorithm: algorithm.Ed25519}))
	assert.Error(t, s.SignRequest(ctx, req, nil, &SigningOptions{Algorithm: algorithm.Ed25519}))
	assert.Error(t, s.SignRequest(ctx, req, priv, nil))
	assert.Error(t, s.SignRequest(ctx, req, priv, &SigningOptions{Algorithm: "rsa-sha1"}))
}

func TestSignRequest_MismatchedKeyAndAlgorithm(t *testing.T) {
	ctx := context.Background()
	s := NewDefaultSigner()
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "https://agent.example.com/task", nil)

	// An ed25519 key cannot produce an ecdsa signature
	err = s.SignRequest(ctx, req, priv, &SigningOptions{Algorithm: algorithm.ECDSAP256SHA256})
	require.Error(t, err)
}

func TestSignRaw_HMAC(t *testing.T) {
	s := NewDefaultSigner()
	desc, ok := algorithm.NewRegistry().Resolve(algorithm.HMACSHA256)
	require.True(t, ok)

	secret := verifier.SharedKey("0123456789abcdef0123456789abcdef")
	msg := []byte("test-signature-base")

	sig, err := s.SignRaw(desc, msg, secret)
	require.NoError(t, err)

	outcome := verifier.NewDefaultVerifier().VerifyWithKey(secret, msg, sig, verifier.Parameters{Algorithm: algorithm.HMACSHA256})
	assert.True(t, outcome.Verified, "detail: %s", outcome.Detail)
}

func TestNewNonce_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n := NewNonce()
		require.NotEmpty(t, n)
		require.False(t, seen[n], "nonce %q repeated", n)
		seen[n] = true
	}
}
