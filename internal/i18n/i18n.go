// internal/i18n/i18n.go
package i18n

import "fmt"

const DefaultLang = "ru"

var translations = map[string]map[string]string{
	"ru": ru,
	"en": en,
}

// T resolves a message key for the given language, falling back to the
// default language and finally to the key itself. Extra args are applied
// with Sprintf when present.
func T(lang, key string, args ...interface{}) string {
	text, ok := translations[lang][key]
	if !ok {
		text, ok = translations[DefaultLang][key]
	}
	if !ok {
		return key
	}
	if len(args) > 0 {
		return fmt.Sprintf(text, args...)
	}
	return text
}

func SupportedLanguages() []string {
	langs := make([]string, 0, len(translations))
	for lang := range translations {
		langs = append(langs, lang)
	}
	return langs
}
