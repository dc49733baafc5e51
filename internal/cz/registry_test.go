package cz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/czkit/czkit/config"
)

func TestRegistry_NewBuildsRegisteredConvention(t *testing.T) {
	Register("registry-test", func(s *config.Settings) Plugin {
		return minimalConvention{Base: NewBase(s)}
	})

	settings := config.Default()
	p, err := New("registry-test", settings)
	require.NoError(t, err)
	require.NotNil(t, p)

	// Construction goes through NewBase and installs the style table.
	assert.NotEmpty(t, settings.Style)
}

func TestRegistry_UnknownConventionNamesKnownOnes(t *testing.T) {
	Register("registry-known", func(s *config.Settings) Plugin {
		return minimalConvention{Base: NewBase(s)}
	})

	_, err := New("registry-no-such", config.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"registry-no-such"`)
	assert.Contains(t, err.Error(), "registry-known")
}

func TestRegistry_NamesSorted(t *testing.T) {
	Register("registry-b", func(s *config.Settings) Plugin { return minimalConvention{Base: NewBase(s)} })
	Register("registry-a", func(s *config.Settings) Plugin { return minimalConvention{Base: NewBase(s)} })

	names := Names()
	require.GreaterOrEqual(t, len(names), 2)
	assert.IsIncreasing(t, names)
}
