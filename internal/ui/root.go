package ui

import (
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/codegen/internal/config"
	"github.com/ytget/codegen/internal/display"
	"github.com/ytget/codegen/internal/encode"
	"github.com/ytget/codegen/internal/model"
	"github.com/ytget/codegen/internal/platform"
	"github.com/ytget/codegen/internal/session"
	"github.com/ytget/codegen/internal/storage"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	session      *session.Session
	store        *storage.Store
	settings     *config.Settings
	localization *Localization

	// Input section
	inputCard   *widget.Card
	idLabel     *widget.Label
	idEntry     *widget.Entry
	kindLabel   *widget.Label
	kindRadio   *widget.RadioGroup
	generateBtn *widget.Button

	// Display section
	displayCard *widget.Card
	preview     *Preview

	// Action section
	saveBtn     *widget.Button
	revealBtn   *widget.Button
	openBtn     *widget.Button
	statusLabel *widget.Label
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, sess *session.Session, store *storage.Store) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		session:      sess,
		store:        store,
		settings:     settings,
		localization: localization,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	log.Printf("UI setup completed: kind=%s output=%s", sess.Kind(), store.Dir())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Input section
	ui.idLabel = widget.NewLabel(ui.localization.GetText(KeyEnterID))
	ui.idEntry = widget.NewEntry()
	ui.idEntry.SetPlaceHolder(ui.localization.GetText(KeyIDPlaceholder))
	// Trigger generation when user presses Enter in the ID field
	ui.idEntry.OnSubmitted = func(string) {
		ui.onGenerateClick()
	}

	ui.kindLabel = widget.NewLabel(ui.localization.GetText(KeyCodeType))
	ui.kindRadio = widget.NewRadioGroup(ui.kindOptions(), ui.onKindChange)
	ui.kindRadio.Horizontal = true
	ui.kindRadio.Required = true
	ui.kindRadio.SetSelected(ui.labelForKind(ui.session.Kind()))

	ui.generateBtn = widget.NewButton(ui.localization.GetText(KeyGenerate), ui.onGenerateClick)
	ui.generateBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	form := container.New(
		layout.NewFormLayout(),
		ui.idLabel, ui.idEntry,
		ui.kindLabel, ui.kindRadio,
	)
	ui.inputCard = widget.NewCard(ui.localization.GetText(KeyInput), "", container.NewVBox(
		form,
		container.NewBorder(nil, nil, settingsBtn, nil, container.NewCenter(ui.generateBtn)),
	))

	// Display section
	ui.preview = NewPreview(display.DefaultSurface, ui.localization.GetText(KeyNoCodeYet))
	ui.displayCard = widget.NewCard(ui.localization.GetText(KeyGeneratedCode), "", container.NewCenter(ui.preview.Container()))

	// Action section
	ui.saveBtn = widget.NewButton(ui.localization.GetText(KeySaveImage), ui.onSaveClick)
	ui.saveBtn.Disable()

	ui.revealBtn = widget.NewButton(IconFolder+" "+ui.localization.GetText(KeyReveal), ui.onRevealClick)
	ui.revealBtn.Importance = widget.LowImportance
	ui.revealBtn.Disable()

	ui.openBtn = widget.NewButton(IconOpen+" "+ui.localization.GetText(KeyOpen), ui.onOpenClick)
	ui.openBtn.Importance = widget.LowImportance
	ui.openBtn.Disable()

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Alignment = fyne.TextAlignCenter
	ui.statusLabel.Wrapping = fyne.TextWrapWord

	actions := container.NewVBox(
		container.NewCenter(container.NewHBox(ui.saveBtn, ui.revealBtn, ui.openBtn)),
		ui.statusLabel,
	)

	content := container.NewBorder(
		ui.inputCard,   // top
		actions,        // bottom
		nil,            // left
		nil,            // right
		ui.displayCard, // center
	)

	ui.window.SetContent(container.NewPadded(content))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.inputCard.SetTitle(ui.localization.GetText(KeyInput))
	ui.idLabel.SetText(ui.localization.GetText(KeyEnterID))
	ui.idEntry.SetPlaceHolder(ui.localization.GetText(KeyIDPlaceholder))
	ui.kindLabel.SetText(ui.localization.GetText(KeyCodeType))
	ui.generateBtn.SetText(ui.localization.GetText(KeyGenerate))

	// Radio options are labels, so rebuild them and reselect the session's kind
	ui.kindRadio.Options = ui.kindOptions()
	ui.kindRadio.SetSelected(ui.labelForKind(ui.session.Kind()))
	ui.kindRadio.Refresh()

	ui.displayCard.SetTitle(ui.localization.GetText(KeyGeneratedCode))
	ui.preview.SetPlaceholder(ui.localization.GetText(KeyNoCodeYet))

	ui.saveBtn.SetText(ui.localization.GetText(KeySaveImage))
	ui.revealBtn.SetText(IconFolder + " " + ui.localization.GetText(KeyReveal))
	ui.openBtn.SetText(IconOpen + " " + ui.localization.GetText(KeyOpen))
}

// kindOptions returns the localized radio labels in model.AllKinds order
func (ui *RootUI) kindOptions() []string {
	kinds := model.AllKinds()
	options := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		options = append(options, ui.labelForKind(kind))
	}
	return options
}

func (ui *RootUI) labelForKind(kind model.CodeKind) string {
	if kind == model.KindBarcode {
		return ui.localization.GetText(KeyBarcode)
	}
	return ui.localization.GetText(KeyQRCode)
}

func (ui *RootUI) kindForLabel(label string) (model.CodeKind, bool) {
	for _, kind := range model.AllKinds() {
		if ui.labelForKind(kind) == label {
			return kind, true
		}
	}
	return "", false
}

// onKindChange handles code type selection change
func (ui *RootUI) onKindChange(label string) {
	kind, ok := ui.kindForLabel(label)
	if !ok {
		return
	}
	if err := ui.session.SetKind(kind); err != nil {
		log.Printf("Error selecting kind %s: %v", kind, err)
	}
}

// onGenerateClick validates the input, encodes it and shows the result
func (ui *RootUI) onGenerateClick() {
	code, err := ui.session.Generate(ui.idEntry.Text)
	if err != nil {
		var verr *encode.ValidationError
		if errors.As(err, &verr) {
			ui.showError(ui.localization.GetText(KeyPleaseEnterID))
			return
		}
		ui.showError(ui.localization.GetText(KeyErrorGenerating) + ": " + err.Error())
		return
	}

	ui.preview.Show(code.Image)
	ui.updateActionButtons()
	log.Printf("Preview updated: %s", code.GetDisplayTitle())

	ui.showSuccess(fmt.Sprintf(ui.localization.GetText(KeyCodeGenerated), code.Kind.Label()))
}

// onSaveClick writes the current code to the configured output directory
func (ui *RootUI) onSaveClick() {
	// Output directory may have been changed in settings since startup
	ui.store.SetDir(ui.settings.GetOutputDirectory())

	path, err := ui.session.Save()
	if err != nil {
		switch {
		case errors.Is(err, session.ErrNothingToSave):
			ui.showError(ui.localization.GetText(KeyNoCodeToSave))
		case errors.Is(err, storage.ErrPermission):
			ui.showError(ui.localization.GetText(KeyPermissionDenied))
		case errors.Is(err, storage.ErrNoImage):
			ui.showError(ui.localization.GetText(KeyUnexpectedError) + ": " + err.Error())
		default:
			cause := err
			if inner := errors.Unwrap(err); inner != nil {
				cause = inner
			}
			ui.showError(ui.localization.GetText(KeyErrorSavingFile) + ": " + cause.Error())
		}
		return
	}

	ui.updateActionButtons()
	ui.showSuccess(fmt.Sprintf(ui.localization.GetText(KeyImageSavedTo), path))

	if ui.settings.GetRevealAfterSave() {
		ui.onRevealFile(path)
	}
}

// updateActionButtons syncs Save, Reveal and Open with the session state.
// Reveal and Open only apply to the file written by the last save.
func (ui *RootUI) updateActionButtons() {
	state := ui.session.State()
	if state.CanSave() {
		ui.saveBtn.Enable()
	} else {
		ui.saveBtn.Disable()
	}

	if state == model.StateSaved && ui.session.LastSavedPath() != "" {
		ui.revealBtn.Enable()
		ui.openBtn.Enable()
	} else {
		ui.revealBtn.Disable()
		ui.openBtn.Disable()
	}
}

// onOpenClick opens the last saved file in the default image viewer
func (ui *RootUI) onOpenClick() {
	ui.onOpenFile(ui.session.LastSavedPath())
}

// onOpenFile handles opening a file with the default application
func (ui *RootUI) onOpenFile(filePath string) {
	if filePath == "" {
		return
	}

	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		log.Printf("Error opening file %s: %v", filePath, err)
		ui.showError(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
		return
	}

	log.Printf("File opened successfully: %s", filePath)
}

// onRevealClick reveals the last saved file
func (ui *RootUI) onRevealClick() {
	ui.onRevealFile(ui.session.LastSavedPath())
}

// onRevealFile handles revealing a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if filePath == "" {
		return
	}

	if err := platform.OpenFileInManager(filePath); err != nil {
		log.Printf("Error revealing file %s: %v", filePath, err)
		ui.showError(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
		return
	}

	log.Printf("File revealed successfully: %s", filePath)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.store.SetDir(ui.settings.GetOutputDirectory())
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	})
}

// showError displays an error message in the status line
func (ui *RootUI) showError(message string) {
	log.Printf("Status error: %s", message)
	ui.statusLabel.Importance = widget.DangerImportance
	ui.statusLabel.SetText(message)
}

// showSuccess displays a success message in the status line
func (ui *RootUI) showSuccess(message string) {
	ui.statusLabel.Importance = widget.SuccessImportance
	ui.statusLabel.SetText(message)
}
