package table

import (
	"bytes"
	"testing"

	"mtoohey.com/rmcorrupt/internal/testutil/assert"
)

func TestWrite(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var b bytes.Buffer
		assert.NoError(t, Write(&b, nil))
		assert.Equal(t, "", b.String())
	})

	t.Run("padding", func(t *testing.T) {
		var b bytes.Buffer
		assert.NoError(t, Write(&b, [][]string{
			{"group", "files", "shuffled"},
			{"CharSet", "3", "3"},
			{".lmu", "12"},
		}))
		assert.Equal(t, ""+
			"group    files  shuffled\n"+
			"CharSet  3      3\n"+
			".lmu     12\n", b.String())
	})

	t.Run("wide runes", func(t *testing.T) {
		var b bytes.Buffer
		assert.NoError(t, Write(&b, [][]string{
			{"画像", "x"},
			{"ab", "y"},
		}))
		assert.Equal(t, "画像  x\nab    y\n", b.String())
	})
}
