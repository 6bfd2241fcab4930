package numeral

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToBangla(t *testing.T) {
	assert.Equal(t, "০১২৩৪৫৬৭৮৯", ToBangla("0123456789"))
	assert.Equal(t, "মিটার নং ১২৩", ToBangla("মিটার নং 123"))
	assert.Equal(t, "০১৭-১২৩৪", ToBangla("017-1234"))
	assert.Equal(t, "", ToBangla(""))
}

func TestToEnglish(t *testing.T) {
	assert.Equal(t, "0123456789", ToEnglish("০১২৩৪৫৬৭৮৯"))
	assert.Equal(t, "acc 450", ToEnglish("acc ৪৫০"))
	assert.Equal(t, "", ToEnglish(""))
}

// The two transforms must compose to the identity for input that is purely
// one alphabet plus separators.
func TestRoundTrip(t *testing.T) {
	english := []string{"0123456789", "017-1234 567", "", "42", "9-9-9"}
	for _, s := range english {
		assert.Equal(t, s, ToEnglish(ToBangla(s)), "english round trip %q", s)
	}
	bangla := []string{"০১২৩৪৫৬৭৮৯", "০১৭-১২৩৪", "৪২ ৪২"}
	for _, s := range bangla {
		assert.Equal(t, s, ToBangla(ToEnglish(s)), "bangla round trip %q", s)
	}
}

func TestIdempotent(t *testing.T) {
	assert.Equal(t, "০১২", ToBangla(ToBangla("012")))
	assert.Equal(t, "012", ToEnglish(ToEnglish("০১২")))
}

// Mixed alphabets are converted per character, not rejected.
func TestMixedInput(t *testing.T) {
	assert.Equal(t, "১২৩৪", ToBangla("12৩৪"))
	assert.Equal(t, "1234", ToEnglish("12৩৪"))
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsEnglishNumeral("017-1234 567"))
	assert.True(t, IsEnglishNumeral(""))
	assert.False(t, IsEnglishNumeral("০১৭"))
	assert.False(t, IsEnglishNumeral("12a3"))

	assert.True(t, IsBanglaNumeral("০১৭-১২৩৪"))
	assert.False(t, IsBanglaNumeral("017"))
	assert.False(t, IsBanglaNumeral("০১৭x"))
}
