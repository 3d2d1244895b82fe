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

package algorithm

import (
	"crypto"
	"sort"
)

// Identifiers from the HTTP Signature Algorithms registry (RFC 9421 Section 3.3).
// Lookup is case-sensitive; these exact strings appear in the "alg" signature
// parameter on the wire.
const (
	ECDSAP256SHA256 = "ecdsa-p256-sha256"
	ECDSAP384SHA384 = "ecdsa-p384-sha384"
	Ed25519         = "ed25519"
	RSAPSSSHA512    = "rsa-pss-sha512"
	RSAV15SHA256    = "rsa-v1_5-sha256"
	HMACSHA256      = "hmac-sha256"
)

// HashIntrinsic marks algorithms whose hash is part of the signature scheme
// itself. Ed25519 prehashes internally with SHA-512; handing the primitive an
// external digest instead of the full message would verify the wrong bytes.
const HashIntrinsic = crypto.Hash(0)

// Descriptor describes one supported signature algorithm: its registry name,
// the hash the verification primitive must apply (HashIntrinsic when none),
// and for RSA keys whether PSS padding is used instead of PKCS#1 v1.5.
type Descriptor struct {
	Name string
	Hash crypto.Hash
	PSS  bool
}

// Registry is an immutable name-to-descriptor table. It is built once and
// injected where needed; there is no runtime registration.
type Registry struct {
	byName map[string]Descriptor
}

// NewRegistry returns a registry covering the six RFC 9421 registry
// algorithms.
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]Descriptor)}
	for _, d := range []Descriptor{
		{Name: ECDSAP256SHA256, Hash: crypto.SHA256},
		{Name: ECDSAP384SHA384, Hash: crypto.SHA384},
		{Name: Ed25519, Hash: HashIntrinsic},
		{Name: RSAPSSSHA512, Hash: crypto.SHA512, PSS: true},
		{Name: RSAV15SHA256, Hash: crypto.SHA256},
		{Name: HMACSHA256, Hash: crypto.SHA256},
	} {
		r.byName[d.Name] = d
	}
	return r
}

// Resolve looks up a descriptor by its exact registry name. There is no
// fallback or fuzzy matching; an unknown name is reported to the caller, not
// silently defaulted.
func (r *Registry) Resolve(name string) (Descriptor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Names returns the registered algorithm identifiers in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
