package session

import (
	"github.com/ytget/codegen/internal/encode"
	"github.com/ytget/codegen/internal/model"
)

// Store persists a generated code and reports where it was written.
type Store interface {
	Save(code *model.GeneratedCode) (string, error)
}

// Encoder is re-exported so callers can depend on this package alone.
type Encoder = encode.Encoder
