package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyInput             = "input"
	KeyEnterID           = "enter_id"
	KeyIDPlaceholder     = "id_placeholder"
	KeyCodeType          = "code_type"
	KeyQRCode            = "qr_code"
	KeyBarcode           = "barcode"
	KeyGenerate          = "generate"
	KeyGeneratedCode     = "generated_code"
	KeyNoCodeYet         = "no_code_yet"
	KeySaveImage         = "save_image"
	KeyReveal            = "reveal"
	KeyOpen              = "open"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyOutputDirectory   = "output_directory"
	KeyDefaultCodeType   = "default_code_type"
	KeyRevealAfterSave   = "reveal_after_save"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyPleaseEnterID     = "please_enter_id"
	KeyCodeGenerated     = "code_generated"
	KeyErrorGenerating   = "error_generating"
	KeyImageSavedTo      = "image_saved_to"
	KeyNoCodeToSave      = "no_code_to_save"
	KeyPermissionDenied  = "permission_denied"
	KeyErrorSavingFile   = "error_saving_file"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyUnexpectedError   = "unexpected_error"
	KeyOutputDirRequired = "output_dir_required"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations.
// KeyCodeGenerated and KeyImageSavedTo are fmt formats with one %s verb.
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "QR & Barcode Generator",
		KeyInput:             "Input",
		KeyEnterID:           "Enter ID:",
		KeyIDPlaceholder:     "e.g. ABC-123",
		KeyCodeType:          "Code Type:",
		KeyQRCode:            "QR Code",
		KeyBarcode:           "Barcode",
		KeyGenerate:          "Generate",
		KeyGeneratedCode:     "Generated Code",
		KeyNoCodeYet:         "No code generated yet",
		KeySaveImage:         "Save Image",
		KeyReveal:            "Show in Folder",
		KeyOpen:              "Open",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyOutputDirectory:   "Output Directory",
		KeyDefaultCodeType:   "Default Code Type",
		KeyRevealAfterSave:   "Show saved file in folder",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyPleaseEnterID:     "Please enter an ID value",
		KeyCodeGenerated:     "%s code generated successfully!",
		KeyErrorGenerating:   "Error generating code",
		KeyImageSavedTo:      "Image saved to: %s",
		KeyNoCodeToSave:      "No code to save",
		KeyPermissionDenied:  "Permission denied: Cannot write to directory",
		KeyErrorSavingFile:   "Error saving file",
		KeyErrorOpeningFile:  "Error opening file",
		KeyUnexpectedError:   "Unexpected error",
		KeyOutputDirRequired: "Output directory must not be empty",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Генератор QR и штрихкодов",
		KeyInput:             "Ввод",
		KeyEnterID:           "Введите ID:",
		KeyIDPlaceholder:     "например ABC-123",
		KeyCodeType:          "Тип кода:",
		KeyQRCode:            "QR-код",
		KeyBarcode:           "Штрихкод",
		KeyGenerate:          "Создать",
		KeyGeneratedCode:     "Созданный код",
		KeyNoCodeYet:         "Код ещё не создан",
		KeySaveImage:         "Сохранить изображение",
		KeyReveal:            "Показать в папке",
		KeyOpen:              "Открыть",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyOutputDirectory:   "Папка сохранения",
		KeyDefaultCodeType:   "Тип кода по умолчанию",
		KeyRevealAfterSave:   "Показывать сохранённый файл в папке",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyPleaseEnterID:     "Пожалуйста, введите ID",
		KeyCodeGenerated:     "Код %s успешно создан!",
		KeyErrorGenerating:   "Ошибка создания кода",
		KeyImageSavedTo:      "Изображение сохранено: %s",
		KeyNoCodeToSave:      "Нет кода для сохранения",
		KeyPermissionDenied:  "Доступ запрещён: невозможно записать в папку",
		KeyErrorSavingFile:   "Ошибка сохранения файла",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyUnexpectedError:   "Непредвиденная ошибка",
		KeyOutputDirRequired: "Папка сохранения не может быть пустой",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Gerador de QR e Código de Barras",
		KeyInput:             "Entrada",
		KeyEnterID:           "Digite o ID:",
		KeyIDPlaceholder:     "ex. ABC-123",
		KeyCodeType:          "Tipo de Código:",
		KeyQRCode:            "Código QR",
		KeyBarcode:           "Código de Barras",
		KeyGenerate:          "Gerar",
		KeyGeneratedCode:     "Código Gerado",
		KeyNoCodeYet:         "Nenhum código gerado ainda",
		KeySaveImage:         "Salvar Imagem",
		KeyReveal:            "Mostrar na Pasta",
		KeyOpen:              "Abrir",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyOutputDirectory:   "Diretório de Saída",
		KeyDefaultCodeType:   "Tipo de Código Padrão",
		KeyRevealAfterSave:   "Mostrar arquivo salvo na pasta",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyPleaseEnterID:     "Por favor, digite um ID",
		KeyCodeGenerated:     "Código %s gerado com sucesso!",
		KeyErrorGenerating:   "Erro ao gerar código",
		KeyImageSavedTo:      "Imagem salva em: %s",
		KeyNoCodeToSave:      "Nenhum código para salvar",
		KeyPermissionDenied:  "Permissão negada: não é possível gravar no diretório",
		KeyErrorSavingFile:   "Erro ao salvar arquivo",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyUnexpectedError:   "Erro inesperado",
		KeyOutputDirRequired: "O diretório de saída não pode estar vazio",
	}
}
