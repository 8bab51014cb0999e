package clickup

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_IDNormalisation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "string id", body: `{"id":"abc"}`, want: "abc"},
		{name: "integer id", body: `{"id":42}`, want: "42"},
		{name: "large integer id", body: `{"id":9007199254740993}`, want: "9007199254740993"},
		{name: "missing id", body: `{}`, want: ""},
		{name: "null id", body: `{"id":null}`, want: ""},
		{name: "object id", body: `{"id":{"x":1}}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, err := decodeObject([]byte(tt.body), "GET", "p", 200)
			require.NoError(t, err)
			assert.Equal(t, tt.want, obj.ID())
		})
	}
}

func TestObject_Accessors(t *testing.T) {
	body := `{
		"token": "tok",
		"user": {"id": 1, "username": "u"},
		"teams": [{"id": "t1"}, "junk", {"id": "t2"}],
		"spaces": [],
		"categories": [{"id": "c1", "subcategories": [{"id": "sc1", "name": "A"}]}]
	}`
	obj, err := decodeObject([]byte(body), "GET", "p", 200)
	require.NoError(t, err)

	assert.Equal(t, "tok", obj.Token())
	assert.Equal(t, "u", obj.User().String("username"))
	assert.Len(t, obj.Teams(), 2)
	assert.Empty(t, obj.Spaces())
	require.Len(t, obj.Categories(), 1)
	assert.Equal(t, "sc1", obj.Categories()[0].Subcategories()[0].ID())
	assert.Nil(t, obj.Object("missing"))
	assert.Nil(t, obj.Objects("token"))
}

func TestDecodeObject(t *testing.T) {
	obj, err := decodeObject([]byte("   "), "PUT", "p", 200)
	require.NoError(t, err)
	assert.Equal(t, Object{}, obj)

	obj, err = decodeObject([]byte("null"), "GET", "p", 200)
	require.NoError(t, err)
	assert.Equal(t, Object{}, obj)

	_, err = decodeObject([]byte("[1,2]"), "GET", "p", 200)
	assert.True(t, IsUpstream(err))

	_, err = decodeObject([]byte("{"), "GET", "p", 200)
	assert.True(t, IsUpstream(err))

	obj, err = decodeObject([]byte(`{"n":1.5}`), "GET", "p", 200)
	require.NoError(t, err)
	assert.Equal(t, json.Number("1.5"), obj["n"])
}

func TestEnrichmentFields_ReturnsCopy(t *testing.T) {
	fields := EnrichmentFields()
	require.Len(t, fields, 15)
	fields[0] = "changed"
	assert.Equal(t, "assignees", EnrichmentFields()[0])
}
