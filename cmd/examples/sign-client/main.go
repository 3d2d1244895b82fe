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
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"flag"
	"io"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"github.com/sage-x-project/sage-httpsig-go/pkg/algorithm"
	"github.com/sage-x-project/sage-httpsig-go/pkg/signer"
)

// This example generates an ed25519 key pair, writes the public half to
// public.pem (register it with verify-server via -key), then sends a signed
// request to the server.
func main() {
	url := flag.String("url", "http://localhost:8080/task", "server URL")
	keyID := flag.String("keyid", "demo-key", "keyid to sign with")
	pubOut := flag.String("pub-out", "public.pem", "where to write the public key PEM")
	flag.Parse()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to generate key pair")
	}
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to encode public key")
	}
	pemText := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
	if err := os.WriteFile(*pubOut, pemText, 0o644); err != nil {
		logger.Fatal().Err(err).Msg("failed to write public key")
	}
	logger.Info().Str("path", *pubOut).Msg("public key written")

	req, err := http.NewRequest("POST", *url, nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build request")
	}

	err = signer.NewDefaultSigner().SignRequest(context.Background(), req, priv, &signer.SigningOptions{
		Algorithm: algorithm.Ed25519,
		KeyID:     *keyID,
		Nonce:     signer.NewNonce(),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to sign request")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		logger.Fatal().Err(err).Msg("request failed")
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	logger.Info().
		Int("status", resp.StatusCode).
		Str("body", string(body)).
		Msg("response received")
}
