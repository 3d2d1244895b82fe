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

// Package keys normalizes caller-supplied public key text into strict PEM
// layout and parses it into a crypto.PublicKey. Normalization is a pure
// function and parsing is all-or-nothing; both are free of shared state.
package keys
