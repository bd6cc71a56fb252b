package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSections(t *testing.T) {
	t.Run("преамбула и два раздела", func(t *testing.T) {
		md := "intro line\n\n## First\nbody one\n\n## Second | الثاني\nbody two\nmore"
		got := Sections(md)
		require.Len(t, got, 3)

		assert.Equal(t, "", got[0].Heading)
		assert.Equal(t, "intro line", got[0].Body)
		assert.Equal(t, "First", got[1].Heading)
		assert.Equal(t, "body one", got[1].Body)
		assert.Equal(t, "Second | الثاني", got[2].Heading)
		assert.Equal(t, "body two\nmore", got[2].Body)
	})

	t.Run("заголовки других уровней не режут", func(t *testing.T) {
		md := "## Top\n### sub\ntext"
		got := Sections(md)
		require.Len(t, got, 1)
		assert.Equal(t, "Top", got[0].Heading)
		assert.Equal(t, "### sub\ntext", got[0].Body)
	})

	t.Run("пустой документ", func(t *testing.T) {
		assert.Empty(t, Sections(""))
	})
}
