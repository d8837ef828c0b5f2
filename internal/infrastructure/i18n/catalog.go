// Package i18n implements the transcript translator over embedded YAML catalogs.
package i18n

import (
	"embed"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bnema/favbuddy/internal/application/port"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// DefaultLocale is used when no supported locale is configured or detected.
const DefaultLocale = "en"

var supportedLocales = []string{"en", "zh-CN"}

// SupportedLocales returns the locales with an embedded catalog.
func SupportedLocales() []string {
	return slices.Clone(supportedLocales)
}

// IsSupported reports whether locale has an embedded catalog.
func IsSupported(locale string) bool {
	return slices.Contains(supportedLocales, locale)
}

// Catalog translates message keys for one locale, falling back to English.
type Catalog struct {
	locale   string
	messages map[string]string
	fallback map[string]string
}

var _ port.Translator = (*Catalog)(nil)

// NewCatalog loads the catalog for locale. An empty locale is detected from the environment.
func NewCatalog(locale string) (*Catalog, error) {
	if locale == "" {
		locale = DetectSystemLocale()
	}
	if !IsSupported(locale) {
		return nil, fmt.Errorf("unsupported language: %s", locale)
	}

	fallback, err := loadLocale(DefaultLocale)
	if err != nil {
		return nil, err
	}

	messages := fallback
	if locale != DefaultLocale {
		if messages, err = loadLocale(locale); err != nil {
			return nil, err
		}
	}

	return &Catalog{locale: locale, messages: messages, fallback: fallback}, nil
}

// Locale returns the catalog's locale.
func (c *Catalog) Locale() string {
	return c.locale
}

// Translate returns the message for key with {name} placeholders filled from args.
// Unknown keys are returned as-is.
func (c *Catalog) Translate(key string, args map[string]string) string {
	msg, ok := c.messages[key]
	if !ok {
		if msg, ok = c.fallback[key]; !ok {
			msg = key
		}
	}
	if len(args) == 0 {
		return msg
	}

	pairs := make([]string, 0, len(args)*2)
	for name, value := range args {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

// DetectSystemLocale maps LC_ALL, LC_MESSAGES or LANG onto a supported locale.
func DetectSystemLocale() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(env); v != "" {
			return NormalizeLocale(v)
		}
	}
	return DefaultLocale
}

// NormalizeLocale converts values such as "zh_CN.UTF-8" to a supported locale.
func NormalizeLocale(value string) string {
	value, _, _ = strings.Cut(value, ".")
	value, _, _ = strings.Cut(value, "@")
	value = strings.ReplaceAll(value, "_", "-")

	for _, l := range supportedLocales {
		if strings.EqualFold(value, l) {
			return l
		}
	}
	if strings.HasPrefix(strings.ToLower(value), "zh") {
		return "zh-CN"
	}
	return DefaultLocale
}

func loadLocale(locale string) (map[string]string, error) {
	data, err := localeFS.ReadFile("locales/" + locale + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("read %s catalog: %w", locale, err)
	}

	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("parse %s catalog: %w", locale, err)
	}

	messages := make(map[string]string)
	flatten("", tree, messages)
	return messages, nil
}

// flatten turns nested groups into dotted keys.
func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case string:
			out[key] = val
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}
