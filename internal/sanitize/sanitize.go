// Package sanitize bounds free-text input before it is interpolated into a
// prompt. It limits payload size and strips control sequences; it does not
// attempt semantic filtering.
package sanitize

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Bounds applied to AI request payloads.
const (
	MaxMessageLen    = 1000
	MaxContextFields = 10
	MaxKeyLen        = 50
	MaxValueLen      = 500
)

// Text strips C0/C1 control characters (including DEL), truncates the result
// to maxLen bytes of remaining runes, and trims surrounding whitespace. It
// never fails; the result length is always <= maxLen.
func Text(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isControl(r) {
			continue
		}
		b.WriteRune(r)
	}

	out := b.String()
	if len(out) > maxLen {
		out = truncateRunes(out, maxLen)
	}
	return strings.TrimSpace(out)
}

// Context sanitizes a raw JSON context object. Entries are visited in the
// order they appear in the payload and at most maxFields are kept, counting
// every visited entry. Keys are bounded to MaxKeyLen, string values to
// MaxValueLen; numbers and booleans pass through; all other value kinds are
// dropped silently. A payload that is not a JSON object yields an empty map.
func Context(raw []byte, maxFields int) map[string]any {
	sanitized := make(map[string]any)
	if len(raw) == 0 || maxFields <= 0 {
		return sanitized
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return sanitized
	}

	fieldCount := 0
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			break
		}
		key, ok := keyTok.(string)
		if !ok {
			break
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			break
		}

		if fieldCount >= maxFields {
			break
		}
		fieldCount++

		safeKey := Text(key, MaxKeyLen)
		switch v := value.(type) {
		case string:
			sanitized[safeKey] = Text(v, MaxValueLen)
		case json.Number:
			if f, err := v.Float64(); err == nil {
				sanitized[safeKey] = f
			}
		case bool:
			sanitized[safeKey] = v
		}
	}

	return sanitized
}

// isControl reports C0 (0x00-0x1F), DEL (0x7F) and C1 (0x80-0x9F) ranges.
func isControl(r rune) bool {
	return r < 0x20 || (r >= 0x7F && r <= 0x9F)
}

// truncateRunes cuts s to at most max bytes without splitting a rune.
func truncateRunes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !isRuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
