package conv_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/numconv/conv"
)

type names map[string]bool

func (n names) Valid(name string) bool {
	return n[name]
}

func TestCheck(t *testing.T) {
	v := names{"a": true, "b": true}

	require.NoError(t, conv.Check(v, "a", nil))
	require.NoError(t, conv.Check(v, "a", []string{"b", "a"}))

	err := conv.Check(v, "x", []string{"a"})
	require.Error(t, err)
	require.True(t, conv.UnknownEncoding.Has(err))
	require.Contains(t, err.Error(), `"x"`)

	err = conv.Check(v, "a", []string{"y", "b", "z"})
	require.Error(t, err)
	require.True(t, conv.UnknownEncoding.Has(err))
	require.Contains(t, err.Error(), `"y"`)
	require.Contains(t, err.Error(), `"z"`)
	require.False(t, strings.Contains(err.Error(), `"b"`))
}

func TestResult(t *testing.T) {
	require.Equal(t, "undefined", conv.None.String())
	require.Equal(t, "1", conv.Some("1").String())
	require.Equal(t, "", conv.Some("").String())

	rs := conv.Nones(3)
	require.Len(t, rs, 3)
	for _, r := range rs {
		require.False(t, r.OK)
	}
}
