// Package language defines the closed set of translation languages the
// application serves.
package language

import "fmt"

type Language string

const (
	Russian   Language = "ru"
	Ukrainian Language = "uk"
	French    Language = "fr"
	German    Language = "de"
)

// Default is the language assumed when a client supplies none.
const Default = Russian

var supported = map[Language]bool{
	Russian:   true,
	Ukrainian: true,
	French:    true,
	German:    true,
}

// Parse validates a language code at the boundary. Unknown codes are
// rejected rather than passed through to queries.
func Parse(code string) (Language, error) {
	lang := Language(code)
	if !supported[lang] {
		return "", fmt.Errorf("unsupported language code %q", code)
	}
	return lang, nil
}

func (l Language) String() string {
	return string(l)
}

// All lists the supported languages in a stable order.
func All() []Language {
	return []Language{Russian, Ukrainian, French, German}
}
