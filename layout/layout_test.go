package layout_test

import (
	"testing"

	"github.com/qtc-de/librofi/layout"
	"github.com/stretchr/testify/assert"
)

func TestPlainApply(t *testing.T) {
	plain := layout.Plain{}

	testCases := []string{
		"",
		"firefox",
		"Msg;User;Date",
		"entry with trailing newline\n",
		"ünïcödé entry",
	}

	for _, entry := range testCases {
		t.Run("returns input unchanged: '"+entry+"'", func(t *testing.T) {
			assert.Equal(t, entry, plain.Apply(entry))
		})
	}
}

func TestLayoutInterface(t *testing.T) {
	t.Run("plain and column satisfy the same contract", func(t *testing.T) {
		var l layout.Layout = layout.Plain{}
		assert.Equal(t, "abc", l.Apply("abc"))

		l = &layout.Column{Width: 10, Columns: 1, Separator: ";"}
		assert.Equal(t, "abc       ", l.Apply("abc"))
	})
}
