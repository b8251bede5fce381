package model

import (
	"fmt"
	"strings"
)

// CodeKind identifies the symbology used to render an identifier
type CodeKind string

const (
	// KindQR renders a two-dimensional QR symbol
	KindQR CodeKind = "qr"

	// KindBarcode renders a Code128 linear barcode
	KindBarcode CodeKind = "barcode"
)

// DefaultKind is selected when nothing else has been chosen
const DefaultKind = KindQR

// String returns the string representation of CodeKind
func (k CodeKind) String() string {
	return string(k)
}

// Label returns the upper-case label used in status messages
func (k CodeKind) Label() string {
	return strings.ToUpper(string(k))
}

// IsValid reports whether the kind is one of the supported symbologies
func (k CodeKind) IsValid() bool {
	return k == KindQR || k == KindBarcode
}

// AllKinds returns the supported kinds in display order
func AllKinds() []CodeKind {
	return []CodeKind{KindQR, KindBarcode}
}

// ParseCodeKind converts user input such as "QR" or " barcode " into a CodeKind
func ParseCodeKind(s string) (CodeKind, error) {
	kind := CodeKind(strings.ToLower(strings.TrimSpace(s)))
	if !kind.IsValid() {
		return "", fmt.Errorf("unknown code kind %q (expected qr or barcode)", s)
	}
	return kind, nil
}

// SessionState represents where the session is in its lifecycle
type SessionState string

const (
	// StateIdle means nothing has been generated yet
	StateIdle SessionState = "Idle"

	// StateGenerated means a code is held in memory and not saved since generation
	StateGenerated SessionState = "Generated"

	// StateSaved means the current code has been written to disk
	StateSaved SessionState = "Saved"
)

// String returns the string representation of SessionState
func (s SessionState) String() string {
	return string(s)
}

// CanSave returns true if the state holds a code that may be written to disk
func (s SessionState) CanSave() bool {
	return s == StateGenerated || s == StateSaved
}
