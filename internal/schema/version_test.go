package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in    string
		major uint8
		minor uint8
	}{
		{"0.1", 0, 1},
		{"1.4", 1, 4},
		{"2.1", 2, 1},
		{"3.0", 3, 0},
		{"13.12", 13, 12},
	}

	for _, tt := range tests {
		v, err := ParseVersion(tt.in)

		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.major, v.Major)
		assert.Equal(t, tt.minor, v.Minor)
		assert.Equal(t, tt.in, v.String())
	}
}

func TestParseVersion_Invalid(t *testing.T) {
	for _, in := range []string{"", "3", "a.b", "3.", ".4", "1.2.3", "300.0", "-1.0"} {
		_, err := ParseVersion(in)

		require.Error(t, err, in)

		var serr *Error
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, "bad-version", serr.Code)
	}
}

func TestVersion_Ordering(t *testing.T) {
	v12 := Version{Major: 1, Minor: 2}
	v14 := Version{Major: 1, Minor: 4}
	v20 := Version{Major: 2, Minor: 0}

	assert.Equal(t, -1, v12.Cmp(v14))
	assert.Equal(t, 1, v14.Cmp(v12))
	assert.Equal(t, 0, v14.Cmp(v14))
	assert.Equal(t, -1, v14.Cmp(v20))

	assert.True(t, v20.AtLeast(v14))
	assert.True(t, v14.AtLeast(v14))
	assert.False(t, v12.AtLeast(v14))
}

func TestVersion_YAML(t *testing.T) {
	var v Version

	err := yaml.Unmarshal([]byte(`"2.1"`), &v)

	require.NoError(t, err)
	assert.Equal(t, Version{Major: 2, Minor: 1}, v)

	// A bare float scalar arrives as its string form and still parses.
	err = yaml.Unmarshal([]byte(`1.4`), &v)

	require.NoError(t, err)
	assert.Equal(t, Version{Major: 1, Minor: 4}, v)

	out, err := yaml.Marshal(v)

	require.NoError(t, err)
	assert.Equal(t, "\"1.4\"\n", string(out))
}

func TestVersion_YAML_Invalid(t *testing.T) {
	var v Version

	err := yaml.Unmarshal([]byte(`[1, 4]`), &v)
	assert.Error(t, err)

	err = yaml.Unmarshal([]byte(`"latest"`), &v)
	assert.Error(t, err)
}
