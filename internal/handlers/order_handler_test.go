package handlers

import (
	"bytes"
	"image"
	"testing"
	"time"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A arte chega nos formatos que as gráficas realmente mandam;
// todos precisam estar registrados para o image.Decode do upload.
func TestArtDecoderFormats(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))

	t.Run("webp", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, webp.Encode(&buf, src, &webp.Options{Lossless: true}))

		decoded, format, err := image.Decode(&buf)
		require.NoError(t, err)
		assert.Equal(t, "webp", format)
		assert.Equal(t, 4, decoded.Bounds().Dx())
	})

	t.Run("arquivo que não é imagem", func(t *testing.T) {
		_, _, err := image.Decode(bytes.NewReader([]byte("%PDF-1.7 não sou imagem")))
		assert.Error(t, err)
	})
}

func TestParseDate(t *testing.T) {
	t.Run("data válida", func(t *testing.T) {
		got, err := parseDate("2026-03-15")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), *got)
	})

	t.Run("vazio vira nil sem erro", func(t *testing.T) {
		got, err := parseDate("")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("formato errado", func(t *testing.T) {
		_, err := parseDate("15/03/2026")
		assert.Error(t, err)
	})
}
