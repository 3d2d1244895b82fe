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

// Package algorithm maps RFC 9421 signature algorithm identifiers to the
// cryptographic primitives required to verify them.
//
// The registry is a fixed table built by NewRegistry and injected into the
// verifier, so tests can substitute a reduced or extended table:
//
//	registry := algorithm.NewRegistry()
//	desc, ok := registry.Resolve("ecdsa-p256-sha256")
//	if !ok {
//	    // algorithm not supported
//	}
//
// A descriptor carries the hash the primitive must apply. Ed25519 is the
// special case: its hash is intrinsic to the scheme, marked by HashIntrinsic,
// and the primitive receives the full message rather than a digest.
package algorithm
