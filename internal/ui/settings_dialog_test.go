package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/codegen/internal/config"
	"github.com/ytget/codegen/internal/model"
)

func newTestSettingsDialog(t *testing.T) (*SettingsDialog, *config.Settings) {
	t.Helper()

	app := test.NewApp()
	t.Cleanup(app.Quit)
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	settings := config.NewSettings(app)
	return NewSettingsDialog(settings, NewLocalization(), window, nil), settings
}

func TestSettingsDialog_LoadCurrentSettings(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)
	settings.SetOutputDirectory("/tmp/codes")
	settings.SetDefaultKind(model.KindBarcode)
	settings.SetLanguage("pt")
	settings.SetRevealAfterSave(true)

	sd.loadCurrentSettings()

	if sd.outputDirEntry.Text != "/tmp/codes" {
		t.Errorf("Expected output dir /tmp/codes, got %q", sd.outputDirEntry.Text)
	}
	if sd.kindSelect.Selected != "BARCODE" {
		t.Errorf("Expected BARCODE, got %q", sd.kindSelect.Selected)
	}
	if sd.languageSelect.Selected != "Português" {
		t.Errorf("Expected Português, got %q", sd.languageSelect.Selected)
	}
	if !sd.revealCheck.Checked {
		t.Error("Expected reveal checkbox to be checked")
	}
}

func TestSettingsDialog_Apply(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)

	sd.outputDirEntry.SetText("  /srv/codes ")
	sd.kindSelect.SetSelected("BARCODE")
	sd.languageSelect.SetSelected("Русский")
	sd.revealCheck.SetChecked(true)

	if err := sd.apply(); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if got := settings.GetOutputDirectory(); got != "/srv/codes" {
		t.Errorf("Expected /srv/codes, got %q", got)
	}
	if got := settings.GetDefaultKind(); got != model.KindBarcode {
		t.Errorf("Expected barcode, got %s", got)
	}
	if got := settings.GetLanguage(); got != "ru" {
		t.Errorf("Expected ru, got %s", got)
	}
	if !settings.GetRevealAfterSave() {
		t.Error("Expected reveal after save to be enabled")
	}
}

func TestSettingsDialog_ApplyRejectsEmptyOutputDir(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)
	settings.SetOutputDirectory("/keep/me")

	sd.outputDirEntry.SetText("   ")
	err := sd.apply()
	if err == nil {
		t.Fatal("Expected error for empty output directory")
	}
	if err.Error() != "Output directory must not be empty" {
		t.Errorf("Unexpected message %q", err.Error())
	}
	if got := settings.GetOutputDirectory(); got != "/keep/me" {
		t.Errorf("Output directory should be unchanged, got %q", got)
	}
}
