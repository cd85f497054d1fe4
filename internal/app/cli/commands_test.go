package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parse_PathArgument(t *testing.T) {
	opts, err := Parse([]string{"run.vcl"})

	require.NoError(t, err)
	assert.Equal(t, "run.vcl", opts.Path)
	assert.False(t, opts.NoUI)
	assert.False(t, opts.Version)
}

func Test_Parse_NoArgs(t *testing.T) {
	opts, err := Parse(nil)

	require.NoError(t, err)
	assert.Empty(t, opts.Path)
}

func Test_Parse_Flags(t *testing.T) {
	opts, err := Parse([]string{"--no-ui", "--scale", "log", "run.vcl"})

	require.NoError(t, err)
	assert.Equal(t, "run.vcl", opts.Path)
	assert.True(t, opts.NoUI)
	assert.Equal(t, "log", opts.Scale)
}

func Test_Parse_Columns(t *testing.T) {
	opts, err := Parse([]string{"--columns", "T1(K),P1(Bar)", "run.vcl"})

	require.NoError(t, err)
	assert.Equal(t, []string{"T1(K)", "P1(Bar)"}, opts.Columns)
}

func Test_Parse_Version(t *testing.T) {
	opts, err := Parse([]string{"--version"})

	require.NoError(t, err)
	assert.True(t, opts.Version)
}

func Test_Parse_TooManyArgs(t *testing.T) {
	_, err := Parse([]string{"a.vcl", "b.vcl"})

	assert.Error(t, err)
}

func Test_Parse_UnknownFlag(t *testing.T) {
	_, err := Parse([]string{"--bogus"})

	assert.Error(t, err)
}
