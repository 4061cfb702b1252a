package release

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSemanticVersion(t *testing.T) {
	assert.NotContains(t, GetVersion(), "\n")

	parsed, err := GetSemanticVersion()
	require.NoError(t, err)
	assert.Equal(t, GetVersion(), parsed.String())
}
