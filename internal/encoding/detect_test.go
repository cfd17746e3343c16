package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rituraj-gharat/trackmycash/internal/encoding"
)

func decode(t *testing.T, input []byte) string {
	t.Helper()

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(got)
}

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	input := "title,amount,date\nCafé crème,-3.50,2024-03-05\n"
	assert.Equal(t, input, decode(t, []byte(input)))
}

func TestNewUTF8Reader_StripsUTF8BOM(t *testing.T) {
	content := "title,amount,date\n"
	input := append([]byte{0xEF, 0xBB, 0xBF}, content...)

	assert.Equal(t, content, decode(t, input))
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	// "ab\n" as UTF-16 LE with BOM.
	input := []byte{0xFF, 0xFE, 'a', 0x00, 'b', 0x00, '\n', 0x00}

	assert.Equal(t, "ab\n", decode(t, input))
}

func TestNewUTF8Reader_Windows1252Fallback(t *testing.T) {
	// "Café,-3.50\n" in Windows-1252: é = 0xE9.
	input := []byte{'C', 'a', 'f', 0xE9, ',', '-', '3', '.', '5', '0', '\n'}

	assert.Equal(t, "Café,-3.50\n", decode(t, input))
}

func TestNewUTF8Reader_Empty(t *testing.T) {
	assert.Equal(t, "", decode(t, nil))
}
