package session

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ytget/codegen/internal/encode"
	"github.com/ytget/codegen/internal/model"
)

// ErrNothingToSave is returned by Save before the first successful generation
var ErrNothingToSave = errors.New("No code to save")

// Session owns at most one generated code plus the selected kind and the
// last error message. It is not safe for concurrent use.
type Session struct {
	encoder Encoder
	store   Store

	current   *model.GeneratedCode
	selected  model.CodeKind
	state     model.SessionState
	lastError string
	lastPath  string

	now      func() time.Time
	onUpdate func(*model.GeneratedCode)
}

// New creates an idle session. An invalid kind falls back to model.DefaultKind.
func New(encoder Encoder, store Store, kind model.CodeKind) *Session {
	if !kind.IsValid() {
		kind = model.DefaultKind
	}
	return &Session{
		encoder:  encoder,
		store:    store,
		selected: kind,
		state:    model.StateIdle,
		now:      time.Now,
	}
}

// SetUpdateCallback sets the function called after every successful generation
func (s *Session) SetUpdateCallback(callback func(*model.GeneratedCode)) {
	s.onUpdate = callback
}

// SetKind selects the symbology for the next generation
func (s *Session) SetKind(kind model.CodeKind) error {
	if !kind.IsValid() {
		return fmt.Errorf("unsupported code kind: %q", kind)
	}
	s.selected = kind
	return nil
}

// Kind returns the selected symbology
func (s *Session) Kind() model.CodeKind {
	return s.selected
}

// Current returns the code held in memory, or nil
func (s *Session) Current() *model.GeneratedCode {
	return s.current
}

// State returns the lifecycle state
func (s *Session) State() model.SessionState {
	return s.state
}

// LastError returns the message of the last failed action, or ""
func (s *Session) LastError() string {
	return s.lastError
}

// LastSavedPath returns the path written by the last successful save of the
// current code, or ""
func (s *Session) LastSavedPath() string {
	return s.lastPath
}

// Generate validates input and encodes it with the selected kind. Blank input
// is rejected with a *encode.ValidationError before the encoder is called.
// On any failure the previously generated code and state are kept.
func (s *Session) Generate(input string) (*model.GeneratedCode, error) {
	if err := encode.Validate(input).Err(); err != nil {
		s.lastError = err.Error()
		return nil, err
	}

	kind := s.selected
	img, err := s.encoder.Encode(kind, input)
	if err != nil {
		s.lastError = fmt.Sprintf("Error generating code: %v", err)
		return nil, err
	}

	code := model.NewGeneratedCode(input, kind, img, s.now())
	s.current = code
	s.state = model.StateGenerated
	s.lastError = ""
	s.lastPath = ""

	log.Printf("Code generated: id=%s kind=%s file=%s", code.ID, code.Kind, code.Filename)

	if s.onUpdate != nil {
		s.onUpdate(code)
	}
	return code, nil
}

// Save writes the current code through the store. It fails with
// ErrNothingToSave when nothing has been generated yet. Failed saves leave
// the in-memory state untouched so the user can retry.
func (s *Session) Save() (string, error) {
	if s.current == nil {
		s.lastError = ErrNothingToSave.Error()
		return "", ErrNothingToSave
	}

	path, err := s.store.Save(s.current)
	if err != nil {
		s.lastError = err.Error()
		log.Printf("Save failed for code %s: %v", s.current.ID, err)
		return "", err
	}

	s.state = model.StateSaved
	s.lastError = ""
	s.lastPath = path
	return path, nil
}
