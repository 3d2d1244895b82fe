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

package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/sage-x-project/sage-httpsig-go/pkg/server"
)

// This example runs an HTTP server that only accepts requests carrying a
// valid RFC 9421 signature from a registered key. Generate a key pair and a
// signed request with the sign-client example.
func main() {
	addr := flag.String("addr", ":8080", "listen address")
	keyFile := flag.String("key", "", "path to the client's public key (PEM)")
	keyID := flag.String("keyid", "demo-key", "keyid the client signs with")
	flag.Parse()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if *keyFile == "" {
		logger.Fatal().Msg("-key is required (PEM public key of the allowed client)")
	}
	pemBytes, err := os.ReadFile(*keyFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to read public key")
	}

	mw := server.NewSignatureAuthMiddleware(server.StaticKeystore{*keyID: string(pemBytes)})
	mw.SetLogger(logger)

	r := chi.NewRouter()
	r.Use(mw.Wrap)
	r.Post("/task", func(w http.ResponseWriter, req *http.Request) {
		signerKeyID, _ := server.KeyIDFromContext(req.Context())
		fmt.Fprintf(w, "hello, %s\n", signerKeyID)
	})

	logger.Info().Str("addr", *addr).Str("keyid", *keyID).Msg("verify-server listening")
	if err := http.ListenAndServe(*addr, r); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
