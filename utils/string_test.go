package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "2045169 Camellia - Test.osz", SanitizeFileName("2045169 Camellia - Test.osz"))
	assert.Equal(t, "a_b_c_d_e_f_g_h_i_", SanitizeFileName(`a<b>c:d"e/f\g|h?i*`))
	assert.Equal(t, "_etc_passwd", SanitizeFileName("/etc/passwd"))
	assert.Equal(t, "name.mp3", SanitizeFileName("  name.mp3 "))
}
