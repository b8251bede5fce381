package session

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/ytget/codegen/internal/encode"
	"github.com/ytget/codegen/internal/model"
	"github.com/ytget/codegen/internal/scan"
	"github.com/ytget/codegen/internal/storage"
)

type fakeEncoder struct {
	calls int
	err   error
}

func (f *fakeEncoder) Encode(kind model.CodeKind, value string) (image.Image, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return image.NewGray(image.Rect(0, 0, 10, 10)), nil
}

type fakeStore struct {
	saved []*model.GeneratedCode
	err   error
}

func (f *fakeStore) Save(code *model.GeneratedCode) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.saved = append(f.saved, code)
	return "/out/" + code.Filename, nil
}

func TestNew(t *testing.T) {
	s := New(&fakeEncoder{}, &fakeStore{}, model.KindBarcode)

	if s.State() != model.StateIdle {
		t.Errorf("Expected Idle state, got %s", s.State())
	}
	if s.Kind() != model.KindBarcode {
		t.Errorf("Expected barcode kind, got %s", s.Kind())
	}
	if s.Current() != nil {
		t.Error("Expected no current code")
	}

	s = New(&fakeEncoder{}, &fakeStore{}, model.CodeKind("bogus"))
	if s.Kind() != model.DefaultKind {
		t.Errorf("Expected default kind for invalid input, got %s", s.Kind())
	}
}

func TestGenerate_BlankInputSkipsEncoder(t *testing.T) {
	encoder := &fakeEncoder{}
	s := New(encoder, &fakeStore{}, model.KindQR)

	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := s.Generate(input)

		var verr *encode.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("Generate(%q): expected *ValidationError, got %v", input, err)
		}
		if s.LastError() != "Please enter an ID value" {
			t.Errorf("Unexpected last error: %q", s.LastError())
		}
	}

	if encoder.calls != 0 {
		t.Errorf("Expected encoder not to be called, got %d calls", encoder.calls)
	}
	if s.State() != model.StateIdle {
		t.Errorf("Expected Idle state, got %s", s.State())
	}
}

func TestGenerate_Success(t *testing.T) {
	s := New(&fakeEncoder{}, &fakeStore{}, model.KindQR)

	var notified *model.GeneratedCode
	s.SetUpdateCallback(func(code *model.GeneratedCode) { notified = code })

	code, err := s.Generate("12345")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if code.Filename != "qr_12345.png" {
		t.Errorf("Unexpected filename: %s", code.Filename)
	}
	if s.Current() != code {
		t.Error("Expected current code to be the generated one")
	}
	if notified != code {
		t.Error("Expected update callback with the generated code")
	}
	if s.State() != model.StateGenerated {
		t.Errorf("Expected Generated state, got %s", s.State())
	}
	if s.LastError() != "" {
		t.Errorf("Expected no error, got %q", s.LastError())
	}
}

func TestGenerate_ReplacesPreviousCode(t *testing.T) {
	s := New(&fakeEncoder{}, &fakeStore{}, model.KindQR)

	first, _ := s.Generate("first")
	if err := s.SetKind(model.KindBarcode); err != nil {
		t.Fatalf("SetKind failed: %v", err)
	}
	second, err := s.Generate("second")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if s.Current() != second || s.Current() == first {
		t.Error("Expected the second code to replace the first")
	}
	if second.Kind != model.KindBarcode {
		t.Errorf("Expected barcode kind, got %s", second.Kind)
	}
}

func TestGenerate_EncodingErrorKeepsPreviousState(t *testing.T) {
	encoder := &fakeEncoder{}
	s := New(encoder, &fakeStore{}, model.KindBarcode)

	previous, err := s.Generate("ok")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	libErr := errors.New("could not encode data")
	encoder.err = &encode.EncodingError{Kind: model.KindBarcode, Err: libErr}

	_, err = s.Generate("Grüße")
	if !errors.Is(err, libErr) {
		t.Errorf("Expected library error to be surfaced, got %v", err)
	}
	if s.Current() != previous {
		t.Error("Expected previous code to be kept after a failed generation")
	}
	if s.State() != model.StateGenerated {
		t.Errorf("Expected Generated state, got %s", s.State())
	}
	if s.LastError() == "" {
		t.Error("Expected last error to be recorded")
	}
}

func TestSetKind_Invalid(t *testing.T) {
	s := New(&fakeEncoder{}, &fakeStore{}, model.KindQR)

	if err := s.SetKind(model.CodeKind("aztec")); err == nil {
		t.Error("Expected error for invalid kind, got nil")
	}
	if s.Kind() != model.KindQR {
		t.Errorf("Expected kind unchanged, got %s", s.Kind())
	}
}

func TestSave_WithoutCode(t *testing.T) {
	store := &fakeStore{}
	s := New(&fakeEncoder{}, store, model.KindQR)

	_, err := s.Save()
	if !errors.Is(err, ErrNothingToSave) {
		t.Errorf("Expected ErrNothingToSave, got %v", err)
	}
	if len(store.saved) != 0 {
		t.Error("Expected nothing to be saved")
	}
	if s.LastError() != "No code to save" {
		t.Errorf("Unexpected last error: %q", s.LastError())
	}
	if s.State() != model.StateIdle {
		t.Errorf("Expected Idle state, got %s", s.State())
	}
}

func TestSave_Success(t *testing.T) {
	store := &fakeStore{}
	s := New(&fakeEncoder{}, store, model.KindQR)

	code, _ := s.Generate("12345")
	path, err := s.Save()
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if path != "/out/qr_12345.png" {
		t.Errorf("Unexpected path: %s", path)
	}
	if len(store.saved) != 1 || store.saved[0] != code {
		t.Error("Expected the current code to be saved")
	}
	if s.State() != model.StateSaved {
		t.Errorf("Expected Saved state, got %s", s.State())
	}
	if s.LastSavedPath() != path {
		t.Errorf("Expected last saved path %s, got %s", path, s.LastSavedPath())
	}

	// Saved -> Generated on the next generation
	if _, err := s.Generate("67890"); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if s.State() != model.StateGenerated {
		t.Errorf("Expected Generated state, got %s", s.State())
	}
	if s.LastSavedPath() != "" {
		t.Errorf("Expected saved path to reset, got %s", s.LastSavedPath())
	}
}

func TestSave_FailureKeepsState(t *testing.T) {
	store := &fakeStore{err: storage.ErrPermission}
	s := New(&fakeEncoder{}, store, model.KindQR)

	code, _ := s.Generate("12345")
	_, err := s.Save()
	if !errors.Is(err, storage.ErrPermission) {
		t.Errorf("Expected ErrPermission, got %v", err)
	}
	if s.Current() != code {
		t.Error("Expected code to stay in memory")
	}
	if s.State() != model.StateGenerated {
		t.Errorf("Expected Generated state, got %s", s.State())
	}

	// Retry succeeds once the store recovers
	store.err = nil
	if _, err := s.Save(); err != nil {
		t.Errorf("Retry failed: %v", err)
	}
}

func TestScenario_QRSavedFileDecodes(t *testing.T) {
	dir := t.TempDir()
	s := New(encode.NewService(encode.DefaultOptions()), storage.NewStore(dir), model.KindQR)

	if _, err := s.Generate("12345"); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	path, err := s.Save()
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if filepath.Base(path) != "qr_12345.png" {
		t.Errorf("Unexpected filename: %s", path)
	}

	text, err := scan.DecodeFile(path, model.KindQR)
	if err != nil {
		t.Fatalf("DecodeFile failed: %v", err)
	}
	if text != "12345" {
		t.Errorf("Expected '12345', got '%s'", text)
	}
}

func TestScenario_BarcodeSavedFileDecodes(t *testing.T) {
	dir := t.TempDir()
	s := New(encode.NewService(encode.DefaultOptions()), storage.NewStore(dir), model.KindBarcode)

	if _, err := s.Generate("ABC-123"); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	path, err := s.Save()
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Saving again with the same identifier overwrites
	again, err := s.Save()
	if err != nil {
		t.Fatalf("Second save failed: %v", err)
	}
	if again != path {
		t.Errorf("Expected same path on re-save, got %s and %s", path, again)
	}

	text, err := scan.DecodeFile(path, model.KindBarcode)
	if err != nil {
		t.Fatalf("DecodeFile failed: %v", err)
	}
	if text != "ABC-123" {
		t.Errorf("Expected 'ABC-123', got '%s'", text)
	}
}

func TestScenario_EmptyInputWritesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	s := New(encode.NewService(encode.DefaultOptions()), storage.NewStore(dir), model.KindQR)

	_, err := s.Generate("")
	if err == nil || err.Error() != "Please enter an ID value" {
		t.Errorf("Expected validation error, got %v", err)
	}
	if _, err := s.Save(); !errors.Is(err, ErrNothingToSave) {
		t.Errorf("Expected ErrNothingToSave, got %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("Expected no output directory to be created")
	}
}
