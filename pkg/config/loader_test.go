package config_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitd/habitd/pkg/config"
)

type testConfigSuccess struct {
	TestString string `env:"TEST_STRING_SUCCESS" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_SUCCESS" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_SUCCESS" envDefault:"true"`
}

type testConfigDefault struct {
	TestString string `env:"TEST_STRING_DEFAULT" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_DEFAULT" envDefault:"42"`
}

type testConfigCached struct {
	Value string `env:"TEST_VALUE_CACHED" envDefault:"initial"`
}

type testConfigRequired struct {
	Required string `env:"TEST_VALUE_REQUIRED_MISSING,required"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("TEST_STRING_SUCCESS", "test_value")
	t.Setenv("TEST_INT_SUCCESS", "100")
	t.Setenv("TEST_BOOL_SUCCESS", "false")

	var cfg testConfigSuccess
	err := config.Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "test_value", cfg.TestString)
	assert.Equal(t, 100, cfg.TestInt)
	assert.Equal(t, false, cfg.TestBool)
}

func TestLoad_DefaultValues(t *testing.T) {
	var cfg testConfigDefault
	err := config.Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "default_value", cfg.TestString)
	assert.Equal(t, 42, cfg.TestInt)
}

func TestLoad_CachedPerType(t *testing.T) {
	t.Setenv("TEST_VALUE_CACHED", "first")

	var first testConfigCached
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	// Changing the environment must not affect an already-loaded type.
	t.Setenv("TEST_VALUE_CACHED", "second")

	var second testConfigCached
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)
}

func TestLoad_RequiredMissing(t *testing.T) {
	var cfg testConfigRequired
	err := config.Load(&cfg)

	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrParsingConfig))
}

func TestLoad_NilPointer(t *testing.T) {
	err := config.Load[testConfigSuccess](nil)
	require.ErrorIs(t, err, config.ErrNilPointer)
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		var cfg testConfigRequired
		config.MustLoad(&cfg)
	})
}
