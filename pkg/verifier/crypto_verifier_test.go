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
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sage-x-project/sage-httpsig-go/pkg/algorithm"
)

func TestDefaultCryptoVerifier_RejectsExternalHashForEd25519(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	sig := ed25519.Sign(priv, []byte("msg"))

	// Handing ed25519 an explicit hash would verify the wrong bytes, so the
	// primitive refuses instead of guessing.
	desc := algorithm.Descriptor{Name: algorithm.Ed25519, Hash: crypto.SHA512}
	valid, err := DefaultCryptoVerifier{}.Verify(desc, []byte("msg"), pub, sig)
	assert.False(t, valid)
	require.Error(t, err)
}

func TestDefaultCryptoVerifier_RejectsIntrinsicForECDSA(t *testing.T) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	desc := algorithm.Descriptor{Name: algorithm.ECDSAP256SHA256, Hash: algorithm.HashIntrinsic}
	valid, err := DefaultCryptoVerifier{}.Verify(desc, []byte("msg"), &priv.PublicKey, []byte("sig"))
	assert.False(t, valid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "explicit hash")
}

func TestDefaultCryptoVerifier_UnsupportedKeyType(t *testing.T) {
	desc := algorithm.Descriptor{Name: algorithm.ECDSAP256SHA256, Hash: crypto.SHA256}
	valid, err := DefaultCryptoVerifier{}.Verify(desc, []byte("msg"), struct{}{}, []byte("sig"))
	assert.False(t, valid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported key type")
}

func TestDefaultCryptoVerifier_BadEd25519KeyLength(t *testing.T) {
	desc := algorithm.Descriptor{Name: algorithm.Ed25519, Hash: algorithm.HashIntrinsic}
	short := ed25519.PublicKey([]byte{0x01, 0x02})
	valid, err := DefaultCryptoVerifier{}.Verify(desc, []byte("msg"), short, []byte("sig"))
	assert.False(t, valid)
	require.Error(t, err)
}

func TestDefaultCryptoVerifier_CleanMismatchIsNotAnError(t *testing.T) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	desc := algorithm.Descriptor{Name: algorithm.ECDSAP256SHA256, Hash: crypto.SHA256}
	valid, err := DefaultCryptoVerifier{}.Verify(desc, []byte("msg"), &priv.PublicKey, []byte("not a real signature"))
	assert.False(t, valid)
	assert.NoError(t, err, "a non-matching signature is a clean false, not an error")
}
