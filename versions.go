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

// Package sagehttpsig provides version information for sage-httpsig-go.
package sagehttpsig

const (
	// Version is the current version of sage-httpsig-go
	Version = "1.0.0-alpha"

	// HTTPSignaturesRFC is the RFC this library implements
	// See: https://www.rfc-editor.org/rfc/rfc9421
	HTTPSignaturesRFC = "RFC 9421"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	LibraryVersion    string
	HTTPSignaturesRFC string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		LibraryVersion:    Version,
		HTTPSignaturesRFC: HTTPSignaturesRFC,
	}
}
