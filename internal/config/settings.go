package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/codegen/internal/model"
	"github.com/ytget/codegen/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyOutputDir       = "output_directory"
	KeyDefaultKind     = "default_code_kind"
	KeyLanguage        = "app_language"
	KeyRevealAfterSave = "reveal_after_save"
)

// Default values
const (
	DefaultKind            = model.DefaultKind
	DefaultLanguage        = "system"
	DefaultRevealAfterSave = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetOutputDirectory returns the configured output directory
func (s *Settings) GetOutputDirectory() string {
	dir := s.app.Preferences().String(KeyOutputDir)
	if dir == "" {
		defaultDir := platform.GetDefaultOutputDir()
		s.SetOutputDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetOutputDirectory sets the output directory
func (s *Settings) SetOutputDirectory(dir string) {
	s.app.Preferences().SetString(KeyOutputDir, dir)
}

// GetDefaultKind returns the code kind selected at startup
func (s *Settings) GetDefaultKind() model.CodeKind {
	kind, err := model.ParseCodeKind(s.app.Preferences().String(KeyDefaultKind))
	if err != nil {
		s.SetDefaultKind(DefaultKind)
		return DefaultKind
	}
	return kind
}

// SetDefaultKind sets the code kind selected at startup
func (s *Settings) SetDefaultKind(kind model.CodeKind) {
	if !kind.IsValid() {
		kind = DefaultKind
	}
	s.app.Preferences().SetString(KeyDefaultKind, string(kind))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetRevealAfterSave returns whether saved files are revealed in the file manager
func (s *Settings) GetRevealAfterSave() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealAfterSave, DefaultRevealAfterSave)
}

// SetRevealAfterSave sets whether saved files are revealed in the file manager
func (s *Settings) SetRevealAfterSave(reveal bool) {
	s.app.Preferences().SetBool(KeyRevealAfterSave, reveal)
}

// GetKindOptions returns available code kinds
func (s *Settings) GetKindOptions() []model.CodeKind {
	return model.AllKinds()
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
