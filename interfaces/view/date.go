package view

import (
	"fmt"
	"strings"
	"time"
)

const (
	LocaleRomanian = "ro"
	LocaleEnglish  = "en"
)

var romanianMonths = [...]string{
	"ianuarie", "februarie", "martie", "aprilie", "mai", "iunie",
	"iulie", "august", "septembrie", "octombrie", "noiembrie", "decembrie",
}

// FormatPublishedDate renders an RFC 3339 timestamp as a long-form date.
// Unparseable input is returned unchanged.
func FormatPublishedDate(raw, locale string) string {
	if raw == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	switch strings.ToLower(locale) {
	case LocaleEnglish:
		return t.Format("January 2, 2006")
	default:
		return fmt.Sprintf("%d %s %d", t.Day(), romanianMonths[t.Month()-1], t.Year())
	}
}
