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
	"crypto/hmac"
	"crypto/rsa"
	"errors"
	"fmt"

	// Register the hash implementations the algorithm registry refers to.
	_ "crypto/sha256"
	_ "crypto/sha512"

	"github.com/sage-x-project/sage-httpsig-go/pkg/algorithm"
)

// DefaultCryptoVerifier implements CryptoVerifier with the standard library
// primitives. It is stateless and safe for unrestricted concurrent use.
type DefaultCryptoVerifier struct{}

// NewDefaultCryptoVerifier creates a new DefaultCryptoVerifier.
func NewDefaultCryptoVerifier() DefaultCryptoVerifier {
	return DefaultCryptoVerifier{}
}

// Verify dispatches on the key type. Ed25519 receives the full message with
// the intrinsic hash sentinel; every other primitive receives a digest
// computed with the descriptor's hash. Passing an explicit hash to Ed25519,
// or the sentinel to anything else, is rejected as a structural error.
func (DefaultCryptoVerifier) Verify(desc algorithm.Descriptor, message []byte, key crypto.PublicKey, sig []byte) (bool, error) {
	switch k := key.(type) {
	case ed25519.PublicKey:
		if desc.Hash != algorithm.HashIntrinsic {
			return false, fmt.Errorf("%s hashes internally, refusing external hash %v", algorithm.Ed25519, desc.Hash)
		}
		if l := len(k); l != ed25519.PublicKeySize {
			return false, fmt.Errorf("bad ed25519 public key length %d", l)
		}
		return ed25519.Verify(k, message, sig), nil

	case *ecdsa.PublicKey:
		digest, err := digestMessage(desc, message)
		if err != nil {
			return false, err
		}
		return ecdsa.VerifyASN1(k, digest, sig), nil

	case *rsa.PublicKey:
		digest, err := digestMessage(desc, message)
		if err != nil {
			return false, err
		}
		if desc.PSS {
			err = rsa.VerifyPSS(k, desc.Hash, digest, sig, nil)
		} else {
			err = rsa.VerifyPKCS1v15(k, desc.Hash, digest, sig)
		}
		if err != nil {
			if errors.Is(err, rsa.ErrVerification) {
				return false, nil
			}
			return false, err
		}
		return true, nil

	case SharedKey:
		if desc.Hash == algorithm.HashIntrinsic {
			return false, fmt.Errorf("%s requires an explicit hash", desc.Name)
		}
		if !desc.Hash.Available() {
			return false, fmt.Errorf("hash %v is not linked into the binary", desc.Hash)
		}
		mac := hmac.New(desc.Hash.New, k)
		mac.Write(message)
		return hmac.Equal(mac.Sum(nil), sig), nil

	default:
		return false, fmt.Errorf("unsupported key type %T", key)
	}
}

func digestMessage(desc algorithm.Descriptor, message []byte) ([]byte, error) {
	if desc.Hash == algorithm.HashIntrinsic {
		return nil, fmt.Errorf("%s requires an explicit hash", desc.Name)
	}
	if !desc.Hash.Available() {
		return nil, fmt.Errorf("hash %v is not linked into the binary", desc.Hash)
	}
	h := desc.Hash.New()
	h.Write(message)
	return h.Sum(nil), nil
}
