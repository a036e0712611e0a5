// Package locale is our connection point to localized strings. Strings are
// kept in the embedded en-us.yaml catalog; lookups that miss the catalog fall
// back to the inline string passed to Tl, so new strings can be introduced
// next to the code that uses them.
package locale

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/nicksnyder/go-i18n/i18n"
)

//go:embed en-us.yaml
var localeFiles embed.FS

var translateFunction i18n.TranslateFunc

func init() {
	data, err := localeFiles.ReadFile("en-us.yaml")
	if err != nil {
		log.Panicf("Could not read locale file: %v", err)
	}

	if err := i18n.ParseTranslationFileBytes("en-us.yaml", data); err != nil {
		log.Panicf("Could not parse locale file: %v", err)
	}

	translateFunction = i18n.MustTfunc("en-US")
}

// T aliases to i18n.Tfunc()
func T(translationID string, args ...interface{}) string {
	return translateFunction(translationID, args...)
}

// Tr is like T but accepts positional string arguments which are exposed to
// the translation as {{.V0}}, {{.V1}}, etc.
func Tr(translationID string, values ...string) string {
	return T(translationID, argsMap(values))
}

// Tl is like Tr, but accepts a fallback locale string which is used if the
// translationID is not found in the catalog
func Tl(translationID, locale string, values ...string) string {
	translation := T(translationID, argsMap(values))
	if translation == translationID {
		translation = expand(locale, values)
	}
	return translation
}

func argsMap(values []string) map[string]interface{} {
	args := map[string]interface{}{}
	for i, v := range values {
		args["V"+strconv.Itoa(i)] = v
	}
	return args
}

// expand substitutes {{.V0}} style placeholders in strings that did not come
// from the catalog, the catalog itself is expanded by i18n
func expand(locale string, values []string) string {
	for i, v := range values {
		locale = strings.ReplaceAll(locale, "{{.V"+strconv.Itoa(i)+"}}", v)
	}
	return locale
}
