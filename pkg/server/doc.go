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

// Package server provides HTTP middleware that verifies RFC 9421 message
// signatures on incoming requests.
//
// # Usage
//
//	keystore := server.StaticKeystore{"client-key-1": clientPublicKeyPEM}
//	mw := server.NewSignatureAuthMiddleware(keystore)
//
//	mux := http.NewServeMux()
//	mux.Handle("/task", mw.Wrap(taskHandler))
//
// The middleware parses the Signature-Input header, rebuilds the signature
// base from the declared covered components, looks the public key up by keyid
// and hands the cryptographic decision to pkg/verifier. Failures are
// classified by the verifier's tagged reason, never by matching message text:
// malformed keys and unknown algorithms map to 400, everything else to 401.
//
// Handlers read the verified keyid with KeyIDFromContext. With SetOptional
// enabled, unsigned requests pass through without a keyid in context.
//
// Replay protection is deliberately not enforced here; created, expires and
// nonce are available to handlers that need a policy.
package server
