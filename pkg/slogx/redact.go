package slogx

import (
	"log/slog"
	"regexp"
	"slices"
	"strings"
)

// Redaction replaces the value of every redacted field.
const Redaction = "***"

// PIIFields are the attribute keys redacted by default.
var PIIFields = []string{"name", "email", "phone", "address", "credit_card"}

// DatumSeparator terminates a field inside flat "k=v;" text.
const DatumSeparator = ";"

// RedactAttrs returns a slog ReplaceAttr hook that masks the value of any
// attribute whose key is in fields, at any group depth. String values,
// including the message, also have embedded "field=value;" pairs masked.
func RedactAttrs(fields []string) func(groups []string, a slog.Attr) slog.Attr {
	if len(fields) == 0 {
		return nil
	}
	filter := newDatumFilter(fields, Redaction, DatumSeparator)
	return func(_ []string, a slog.Attr) slog.Attr {
		if slices.Contains(fields, a.Key) {
			return slog.String(a.Key, Redaction)
		}
		if a.Value.Kind() == slog.KindString && strings.Contains(a.Value.String(), "=") {
			return slog.String(a.Key, filter.apply(a.Value.String()))
		}
		return a
	}
}

// FilterDatum masks each "field=value<separator>" occurrence in a flat text
// message, leaving the key and separator in place.
func FilterDatum(fields []string, redaction, message, separator string) string {
	return newDatumFilter(fields, redaction, separator).apply(message)
}

type datumFilter struct {
	patterns     []*regexp.Regexp
	replacements []string
}

func newDatumFilter(fields []string, redaction, separator string) datumFilter {
	sep := regexp.QuoteMeta(separator)
	f := datumFilter{
		patterns:     make([]*regexp.Regexp, 0, len(fields)),
		replacements: make([]string, 0, len(fields)),
	}
	for _, field := range fields {
		f.patterns = append(f.patterns, regexp.MustCompile(regexp.QuoteMeta(field)+`=(.*?)`+sep))
		f.replacements = append(f.replacements, field+"="+redaction+separator)
	}
	return f
}

func (f datumFilter) apply(message string) string {
	for i, re := range f.patterns {
		message = re.ReplaceAllLiteralString(message, f.replacements[i])
	}
	return message
}
