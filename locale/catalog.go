package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the source locale every other catalog falls back to
const BaseLocale = "en-US"

const catalogGlob = "locales/*/*.yaml"

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle holds the message tables of all loaded locales
type Bundle struct {
	messages map[string]map[string]string
	tags     map[string]language.Tag
	builder  *catalog.Builder
	matcher  language.Matcher
	ordered  []string
}

// LoadEmbedded loads the catalogs compiled into the binary
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// MustLoadEmbedded loads the embedded catalogs and panics on failure.
// Without the base locale no label can be rendered.
func MustLoadEmbedded() *Bundle {
	b, err := LoadEmbedded()
	if err != nil {
		panic(fmt.Sprintf("locale: load embedded catalogs: %v", err))
	}
	return b
}

// LoadFromFS loads every catalog matching locales/<tag>/<namespace>.yaml
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, catalogGlob)
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	b := &Bundle{
		messages: make(map[string]map[string]string),
		tags:     make(map[string]language.Tag),
	}

	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := b.addFile(p, file); err != nil {
			return nil, err
		}
	}

	if _, ok := b.messages[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}

	if err := b.build(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bundle) addFile(p string, file catalogFile) error {
	dirLocale := path.Base(path.Dir(p))
	fileNamespace := strings.TrimSuffix(path.Base(p), path.Ext(p))

	loc := strings.TrimSpace(file.Locale)
	if loc == "" {
		return fmt.Errorf("catalog %s: locale is required", p)
	}
	if loc != dirLocale {
		return fmt.Errorf("catalog %s: locale %q must match directory %q", p, loc, dirLocale)
	}
	if ns := strings.TrimSpace(file.Namespace); ns != fileNamespace {
		return fmt.Errorf("catalog %s: namespace %q must match file name %q", p, ns, fileNamespace)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("catalog %s: messages map is required", p)
	}

	tag, err := language.Parse(loc)
	if err != nil {
		return fmt.Errorf("catalog %s: parse locale tag %q: %w", p, loc, err)
	}

	table, ok := b.messages[loc]
	if !ok {
		table = make(map[string]string, len(file.Messages))
		b.messages[loc] = table
		b.tags[loc] = tag
	}
	for key, value := range file.Messages {
		k := strings.TrimSpace(key)
		if k == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", p)
		}
		if _, dup := table[k]; dup {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %q", p, k, loc)
		}
		table[k] = value
	}
	return nil
}

// build registers all messages with an x/text catalog, filling keys missing in a
// locale from the base locale, and prepares the tag matcher
func (b *Bundle) build() error {
	b.ordered = make([]string, 0, len(b.messages))
	for loc := range b.messages {
		if loc != BaseLocale {
			b.ordered = append(b.ordered, loc)
		}
	}
	sort.Strings(b.ordered)
	// Base first so the matcher treats it as the default
	b.ordered = append([]string{BaseLocale}, b.ordered...)

	base := b.messages[BaseLocale]
	b.builder = catalog.NewBuilder(catalog.Fallback(b.tags[BaseLocale]))

	supported := make([]language.Tag, 0, len(b.ordered))
	for _, loc := range b.ordered {
		tag := b.tags[loc]
		supported = append(supported, tag)

		for key, value := range base {
			if v, ok := b.messages[loc][key]; ok {
				value = v
			}
			if err := b.builder.SetString(tag, key, value); err != nil {
				return fmt.Errorf("register %s/%s: %w", loc, key, err)
			}
		}
	}
	b.matcher = language.NewMatcher(supported)
	return nil
}

// Locales returns the loaded locale identifiers, base locale first
func (b *Bundle) Locales() []string {
	out := make([]string, len(b.ordered))
	copy(out, b.ordered)
	return out
}

// HasLocale reports whether locale was loaded
func (b *Bundle) HasLocale(locale string) bool {
	_, ok := b.messages[strings.TrimSpace(locale)]
	return ok
}

// Keys returns the sorted message keys defined by a locale's own catalog
func (b *Bundle) Keys(locale string) []string {
	table := b.messages[strings.TrimSpace(locale)]
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Message returns one raw template with base-locale fallback
func (b *Bundle) Message(locale, key string) (string, bool) {
	if table, ok := b.messages[strings.TrimSpace(locale)]; ok {
		if v, ok := table[key]; ok {
			return v, true
		}
	}
	v, ok := b.messages[BaseLocale][key]
	return v, ok
}

// Match picks the best loaded locale for the given preferences.
// Preferences may be BCP 47 tags or POSIX values such as "de_DE.UTF-8";
// unparsable or unmatched preferences resolve to BaseLocale.
func (b *Bundle) Match(prefs ...string) string {
	tags := make([]language.Tag, 0, len(prefs))
	for _, p := range prefs {
		if tag, ok := parsePreference(p); ok {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return BaseLocale
	}
	_, idx, conf := b.matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(b.ordered) {
		return BaseLocale
	}
	return b.ordered[idx]
}

func parsePreference(s string) (language.Tag, bool) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "" || s == "C" || s == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

// Translator returns a printer bound to locale, or to BaseLocale when locale is unknown
func (b *Bundle) Translator(locale string) *Translator {
	loc := strings.TrimSpace(locale)
	if !b.HasLocale(loc) {
		loc = BaseLocale
	}
	return &Translator{
		locale:  loc,
		printer: message.NewPrinter(b.tags[loc], message.Catalog(b.builder)),
	}
}

// Translator renders message keys for one locale
type Translator struct {
	locale  string
	printer *message.Printer
}

// Locale returns the identifier the translator is bound to
func (t *Translator) Locale() string {
	return t.locale
}

// T renders the template registered under key; unknown keys render as the key itself
func (t *Translator) T(key string, args ...any) string {
	return t.printer.Sprintf(key, args...)
}
