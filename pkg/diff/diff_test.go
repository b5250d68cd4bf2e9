package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifiedIdenticalContent(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Unified("a\nb\n", "a\nb\n", "from", "to"))
}

func TestUnifiedSingleLineChange(t *testing.T) {
	t.Parallel()

	out := Unified("spacing.md = 1rem\nspacing.lg = 2rem\n", "spacing.md = 16px\nspacing.lg = 2rem\n", "default", "utility")

	require.True(t, strings.HasPrefix(out, "--- default\n+++ utility\n@@ -1,2 +1,2 @@\n"), out)
	assert.Contains(t, out, "-spacing.md = 1rem\n")
	assert.Contains(t, out, "+spacing.md = 16px\n")
	assert.Contains(t, out, " spacing.lg = 2rem\n")
}

func TestUnifiedWholeLines(t *testing.T) {
	t.Parallel()

	out := Unified("abc\n", "abd\n", "a", "b")
	assert.Contains(t, out, "-abc\n")
	assert.Contains(t, out, "+abd\n")
}

func TestUnifiedEmptySide(t *testing.T) {
	t.Parallel()

	out := Unified("", "x\ny\n", "a", "b")
	assert.Contains(t, out, "@@ -1,0 +1,2 @@")
	assert.Contains(t, out, "+x\n+y\n")
}

func TestUnifiedTruncation(t *testing.T) {
	t.Parallel()

	var from, to strings.Builder
	for i := 0; i < maxDiffLines; i++ {
		from.WriteString("a\n")
		to.WriteString("b\n")
	}
	out := Unified(from.String(), to.String(), "a", "b")
	assert.True(t, strings.HasSuffix(out, truncateMessage+"\n"))
}

func TestChanged(t *testing.T) {
	t.Parallel()

	added, removed := Changed("a\nb\nc\n", "a\nB\nc\nd\n")
	assert.Equal(t, 2, added)
	assert.Equal(t, 1, removed)

	added, removed = Changed("same\n", "same\n")
	assert.Zero(t, added)
	assert.Zero(t, removed)
}
