package locale

import (
	"strings"

	"golang.org/x/text/language"
)

type Locale string

const (
	RO Locale = "ro"
	RU Locale = "ru"
	EN Locale = "en"
)

const Default = RO

var All = []Locale{RO, RU, EN}

func (l Locale) Valid() bool {
	for _, x := range All {
		if x == l {
			return true
		}
	}
	return false
}

// Parse canonicalizes a locale code or BCP 47 tag ("RO", "ru-MD") to a supported locale.
func Parse(s string) (Locale, bool) {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", false
	}
	base, conf := tag.Base()
	if conf == language.No {
		return "", false
	}
	l := Locale(base.String())
	return l, l.Valid()
}

// OrDefault returns the supported locale for s, or Default.
func OrDefault(s string) Locale {
	if l, ok := Parse(s); ok {
		return l
	}
	return Default
}

// FromPath reads the locale from the first path segment.
func FromPath(path string) Locale {
	seg := strings.SplitN(strings.TrimPrefix(path, "/"), "/", 2)[0]
	if l := Locale(seg); l.Valid() {
		return l
	}
	return Default
}

// LocalizePath swaps (or adds) the locale prefix of path.
func LocalizePath(path string, l Locale) string {
	clean := path
	seg := strings.SplitN(strings.TrimPrefix(path, "/"), "/", 2)
	if Locale(seg[0]).Valid() {
		clean = "/"
		if len(seg) == 2 {
			clean += seg[1]
		}
	}
	if !strings.HasPrefix(clean, "/") {
		clean = "/" + clean
	}
	if clean == "/" {
		return "/" + string(l)
	}
	return "/" + string(l) + clean
}
