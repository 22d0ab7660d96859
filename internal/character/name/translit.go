package name

import (
	"regexp"
	"strings"
)

// cyrillicToLatin maps the Russian alphabet to Latin. Soft and hard signs are
// dropped.
var cyrillicToLatin = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "yo",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "h", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "sh", 'ъ': "",
	'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",

	'А': "A", 'Б': "B", 'В': "V", 'Г': "G", 'Д': "D", 'Е': "E", 'Ё': "Yo",
	'Ж': "Zh", 'З': "Z", 'И': "I", 'Й': "Y", 'К': "K", 'Л': "L", 'М': "M",
	'Н': "N", 'О': "O", 'П': "P", 'Р': "R", 'С': "S", 'Т': "T", 'У': "U",
	'Ф': "F", 'Х': "H", 'Ц': "Ts", 'Ч': "Ch", 'Ш': "Sh", 'Щ': "Sh", 'Ъ': "",
	'Ы': "Y", 'Ь': "", 'Э': "E", 'Ю': "Yu", 'Я': "Ya",
}

const placeholder = '_'

var placeholderRun = regexp.MustCompile(`_+`)

// Transliterate converts name to a lowercase Latin approximation. Cyrillic
// letters missing from the table pass through unchanged; any other rune
// outside ASCII letters, digits, space, hyphen and underscore becomes an
// underscore.
func Transliterate(name string) string {
	if name == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case isCyrillic(r):
			if latin, ok := cyrillicToLatin[r]; ok {
				b.WriteString(latin)
			} else {
				b.WriteRune(r)
			}
		case isASCIINameRune(r):
			b.WriteRune(r)
		default:
			b.WriteRune(placeholder)
		}
	}

	out := placeholderRun.ReplaceAllString(b.String(), "_")
	out = strings.Trim(out, "_")
	out = whitespaceRun.ReplaceAllString(out, " ")
	out = strings.TrimSpace(out)
	return strings.ToLower(out)
}

func isCyrillic(r rune) bool {
	return r >= 0x0400 && r <= 0x04FF
}

func isASCIINameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == ' ', r == '-', r == '_':
		return true
	}
	return false
}
