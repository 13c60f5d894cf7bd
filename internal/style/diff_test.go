package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifiedDiff(t *testing.T) {
	t.Parallel()

	current := []byte("int main( ){\nreturn 0;\n}\n")
	expected := []byte("int main() {\n  return 0;\n}\n")

	diff, err := unifiedDiff("src/main.cpp", current, expected)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(diff, "--- Current (main.cpp)"), diff)
	assert.Contains(t, diff, "+++ Expected (main.cpp)")
	assert.Contains(t, diff, "@@")
	assert.Contains(t, diff, "-int main( ){\n")
	assert.Contains(t, diff, "+int main() {\n")
	assert.Contains(t, diff, "-return 0;\n")
	assert.Contains(t, diff, "+  return 0;\n")
	assert.Contains(t, diff, " }\n", "unchanged lines appear as context")
}

func TestUnifiedDiffIdenticalContent(t *testing.T) {
	t.Parallel()

	diff, err := unifiedDiff("a.cpp", []byte("same\n"), []byte("same\n"))
	require.NoError(t, err)
	assert.Empty(t, diff)
}

func TestUnifiedDiffRejectsBinaryContent(t *testing.T) {
	t.Parallel()

	_, err := unifiedDiff("blob.cpp", []byte{0xff, 0xfe, 0x00}, []byte("text\n"))
	var target *DiffUnavailableError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "blob.cpp", target.Path)

	_, err = unifiedDiff("blob.cpp", []byte("text\n"), []byte{0xff})
	require.ErrorAs(t, err, &target)
}
