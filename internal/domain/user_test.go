package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUser_Full(t *testing.T) {
	t.Parallel()

	p := mustPayload(t, `{
		"id": 99,
		"name": "Ada",
		"email": "ada@example.com",
		"street_number": "12",
		"street_name": "Main St",
		"city": "Springfield",
		"state": "IL",
		"zip_code": "62701"
	}`)

	patch, err := ParseUser(p, false)
	require.NoError(t, err)

	u := patch.User()
	assert.Zero(t, u.ID, "id in the body is ignored")
	assert.Equal(t, "Ada", u.Name)
	require.NotNil(t, u.Email)
	assert.Equal(t, "ada@example.com", *u.Email)
	require.NotNil(t, u.StreetNumber)
	assert.Equal(t, int64(12), *u.StreetNumber)
	require.NotNil(t, u.ZipCode)
	assert.Equal(t, "62701", *u.ZipCode)
}

func TestParseUser_OnlyNameRequired(t *testing.T) {
	t.Parallel()

	patch, err := ParseUser(mustPayload(t, `{"name":"Bob","email":null}`), false)
	require.NoError(t, err)

	u := patch.User()
	assert.Equal(t, "Bob", u.Name)
	assert.Nil(t, u.Email)
	assert.Nil(t, u.StreetNumber)
	assert.Nil(t, u.City)
}

func TestParseUser_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want FieldErrors
	}{
		{
			name: "missing name",
			body: `{"email":"a@b.c"}`,
			want: FieldErrors{"name": {MsgMissingField}},
		},
		{
			name: "null name",
			body: `{"name":null}`,
			want: FieldErrors{"name": {MsgNullField}},
		},
		{
			name: "name too long",
			body: `{"name":"` + strings.Repeat("x", 51) + `"}`,
			want: FieldErrors{"name": {"Longer than maximum length 50."}},
		},
		{
			name: "wrong types",
			body: `{"name":7,"street_number":"twelve","zip_code":false}`,
			want: FieldErrors{
				"name":          {MsgInvalidString},
				"street_number": {MsgInvalidInteger},
				"zip_code":      {MsgInvalidString},
			},
		},
		{
			name: "long address fields",
			body: `{"name":"A","email":"` + strings.Repeat("e", 201) + `","city":"` + strings.Repeat("c", 101) + `","zip_code":"` + strings.Repeat("9", 21) + `"}`,
			want: FieldErrors{
				"email":    {"Longer than maximum length 200."},
				"city":     {"Longer than maximum length 100."},
				"zip_code": {"Longer than maximum length 20."},
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseUser(mustPayload(t, tc.body), false)
			assert.Equal(t, tc.want, requireFieldErrors(t, err))
		})
	}
}

func TestParseUser_MaxLengthBoundary(t *testing.T) {
	t.Parallel()

	_, err := ParseUser(mustPayload(t, `{"name":"`+strings.Repeat("é", 50)+`"}`), false)
	assert.NoError(t, err)
}

func TestParseUser_Partial(t *testing.T) {
	t.Parallel()

	patch, err := ParseUser(mustPayload(t, `{}`), true)
	require.NoError(t, err)
	assert.True(t, patch.IsEmpty())

	email := "old@example.com"
	city := "Paris"
	u := &User{ID: 3, Name: "Old", Email: &email, City: &city}

	patch, err = ParseUser(mustPayload(t, `{"name":"New","email":null}`), true)
	require.NoError(t, err)
	assert.False(t, patch.IsEmpty())

	patch.Apply(u)
	assert.Equal(t, int64(3), u.ID)
	assert.Equal(t, "New", u.Name)
	assert.Nil(t, u.Email)
	require.NotNil(t, u.City)
	assert.Equal(t, "Paris", *u.City)
}

func TestParseUser_PartialStillRejectsNullName(t *testing.T) {
	t.Parallel()

	_, err := ParseUser(mustPayload(t, `{"name":null}`), true)
	assert.Equal(t, FieldErrors{"name": {MsgNullField}}, requireFieldErrors(t, err))
}
