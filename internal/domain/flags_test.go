package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagsForComposesKindAndScope(t *testing.T) {
	assert.EqualValues(t, 16|8|256, FlagsFor(MemberMethod, Static))
	assert.EqualValues(t, 16|4|256, FlagsFor(MemberMethod, Instance))
	assert.EqualValues(t, 16|8|4096, FlagsFor(MemberProperty, Static))
	assert.EqualValues(t, 16|4|4096, FlagsFor(MemberProperty, Instance))
}

func TestEnumerationFlagsSpanBothScopes(t *testing.T) {
	flags := EnumerationFlags()
	assert.EqualValues(t, 16|8|4|64, flags)
}

func TestParseRuntimeVersion(t *testing.T) {
	cases := []struct {
		in   string
		want RuntimeVersion
	}{
		{"", RuntimeV4},
		{"v4", RuntimeV4},
		{"v4.0.30319", RuntimeV4},
		{"v2", RuntimeV2},
		{"v2.0.50727", RuntimeV2},
		{"v3", RuntimeV3},
		{"v3.0", RuntimeV3},
	}
	for _, tc := range cases {
		got, err := ParseRuntimeVersion(tc.in)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}

	_, err := ParseRuntimeVersion("v5")
	assert.Error(t, err)
}

func TestRuntimeVersionStrings(t *testing.T) {
	assert.Equal(t, "v4.0.30319", RuntimeV4.String())
	assert.Equal(t, "v2.0.50727", RuntimeV2.String())
	assert.Equal(t, "v3.0", RuntimeV3.String())
}
