package ui

import "testing"

func TestLocalization_AllLanguagesCoverEnglishKeys(t *testing.T) {
	l := NewLocalization()

	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !ok {
			t.Errorf("Missing texts for language %s", lang)
			continue
		}
		for key := range l.texts["en"] {
			if _, found := texts[key]; !found {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected ru, got %s", l.GetCurrentLanguage())
	}

	// Unknown languages are ignored
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected language to stay ru, got %s", l.GetCurrentLanguage())
	}

	// System maps to English
	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected en for system, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalization_GetTextFallbacks(t *testing.T) {
	l := NewLocalization()

	if l.GetText(KeyPleaseEnterID) != "Please enter an ID value" {
		t.Errorf("Unexpected English text: %s", l.GetText(KeyPleaseEnterID))
	}

	if l.GetText("no_such_key") != "no_such_key" {
		t.Error("Expected the key itself for unknown keys")
	}
}
