// Package numeral converts between English (0-9) and Bangla (০-৯) digit
// alphabets.  Account numbers, meter numbers and mobile numbers are stored
// in English digits and rendered in Bangla digits, so every read/write
// boundary of consumer data passes through these functions.  Both transforms
// are pure and per-rune: characters outside the source alphabet pass through
// unchanged, which also means mixed-alphabet input is handled without error.
package numeral

const banglaZero = '০' // U+09E6

// ToBangla replaces every English digit in s with the corresponding Bangla
// digit.  The empty string is returned unchanged.
func ToBangla(s string) string {
	if s == "" {
		return s
	}
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			r = banglaZero + (r - '0')
		}
		out = append(out, r)
	}
	return string(out)
}

// ToEnglish is the inverse of ToBangla: Bangla digits become English digits.
// This is the canonical form used for storage and querying.
func ToEnglish(s string) string {
	if s == "" {
		return s
	}
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= banglaZero && r <= banglaZero+9 {
			r = '0' + (r - banglaZero)
		}
		out = append(out, r)
	}
	return string(out)
}

// IsBanglaNumeral reports whether s consists solely of Bangla digits,
// hyphens and spaces.
func IsBanglaNumeral(s string) bool {
	for _, r := range s {
		if r >= banglaZero && r <= banglaZero+9 {
			continue
		}
		if r == '-' || r == ' ' {
			continue
		}
		return false
	}
	return true
}

// IsEnglishNumeral reports whether s consists solely of English digits,
// hyphens and spaces.
func IsEnglishNumeral(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			continue
		}
		if r == '-' || r == ' ' {
			continue
		}
		return false
	}
	return true
}
