package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yamlSrc := `
structs:
  - name: Position
    fields:
      - {name: x, type: f32}
      - {name: y, type: f32}
  - name: Pre
    fields:
      - {name: position, type: Position}
      - {name: raw_analog_x, type: u8, ver: "1.2"}
      - {name: damage, type: f32, ver: "1.4"}
  - name: End
    fields:
      - {type: i32, ver: "3.0"}
`
	s, err := Parse([]byte(yamlSrc))
	require.NoError(t, err)
	require.Len(t, s.Structs, 3)

	pos := s.Structs[0]
	assert.Equal(t, "Position", pos.Name)
	assert.True(t, pos.Named())
	require.Len(t, pos.Fields, 2)
	assert.Equal(t, 0, pos.Fields[0].Index)
	assert.Equal(t, 1, pos.Fields[1].Index)
	assert.Nil(t, pos.Fields[0].MinVersion)

	pre := s.Structs[1]
	assert.Equal(t, "Position", pre.Fields[0].Type)
	require.NotNil(t, pre.Fields[1].MinVersion)
	assert.Equal(t, Version{Major: 1, Minor: 2}, *pre.Fields[1].MinVersion)
	require.NotNil(t, pre.Fields[2].MinVersion)
	assert.Equal(t, Version{Major: 1, Minor: 4}, *pre.Fields[2].MinVersion)

	end := s.Structs[2]
	assert.False(t, end.Named())
	assert.Equal(t, "0", end.Fields[0].Ident())

	got, ok := s.Lookup("Position")
	require.True(t, ok)
	assert.Equal(t, "Position", got.Name)

	_, ok = s.Lookup("Nope")
	assert.False(t, ok)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("structs: [}"))
	assert.Error(t, err)
}

func TestValidate_NonMonotonicVersions(t *testing.T) {
	yamlSrc := `
structs:
  - name: Post
    fields:
      - {name: flags, type: u64, ver: "2.0"}
      - {name: state_age, type: f32, ver: "0.2"}
`
	_, err := Parse([]byte(yamlSrc))

	require.Error(t, err)

	var serr *Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "non-monotonic-versions", serr.Code)
	assert.Equal(t, "Post", serr.Struct)
	assert.Equal(t, "state_age", serr.Field)
}

func TestValidate_VersionlessAfterVersioned(t *testing.T) {
	yamlSrc := `
structs:
  - name: Post
    fields:
      - {name: flags, type: u64, ver: "2.0"}
      - {name: damage, type: f32}
`
	_, err := Parse([]byte(yamlSrc))

	require.Error(t, err)

	var serr *Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "non-monotonic-versions", serr.Code)
}

func TestValidate_EqualVersionsAllowed(t *testing.T) {
	yamlSrc := `
structs:
  - name: Post
    fields:
      - {name: flags, type: u64, ver: "2.0"}
      - {name: ground, type: u16, ver: "2.0"}
      - {name: hurtbox_state, type: u8, ver: "2.1"}
`
	_, err := Parse([]byte(yamlSrc))
	assert.NoError(t, err)
}

func TestValidate_MalformedDeclarations(t *testing.T) {
	_, err := Parse([]byte(`
structs:
  - fields:
      - {name: x, type: f32}
`))

	var serr *Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "unnamed-struct", serr.Code)

	_, err = Parse([]byte(`
structs:
  - name: Position
    fields:
      - {name: x}
`))

	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "untyped-field", serr.Code)
	assert.Equal(t, "Position", serr.Struct)
}

func TestError_Message(t *testing.T) {
	err := &Error{Code: "untyped-field", Message: "field has no type", Struct: "Pre", Field: "damage"}
	assert.Equal(t, "Pre.damage: [untyped-field] field has no type", err.Error())

	err = &Error{Code: "unnamed-struct", Message: "struct declaration has no name"}
	assert.Equal(t, "[unnamed-struct] struct declaration has no name", err.Error())
}
