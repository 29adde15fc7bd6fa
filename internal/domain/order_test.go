package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrder(t *testing.T) {
	t.Parallel()

	patch, err := ParseOrder(mustPayload(t, `{"order_date":"2024-01-01T10:00:00","user_id":1}`), false)
	require.NoError(t, err)

	o := patch.Order()
	assert.Equal(t, int64(1), o.UserID)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), o.OrderDate)
	assert.Equal(t, "2024-01-01T10:00:00", FormatTimestamp(o.OrderDate))
}

func TestParseOrder_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want FieldErrors
	}{
		{
			name: "empty",
			body: `{}`,
			want: FieldErrors{"order_date": {MsgMissingField}, "user_id": {MsgMissingField}},
		},
		{
			name: "bad date",
			body: `{"order_date":"soon","user_id":1}`,
			want: FieldErrors{"order_date": {MsgInvalidDate}},
		},
		{
			name: "date without time",
			body: `{"order_date":"2024-01-01","user_id":1}`,
			want: FieldErrors{"order_date": {MsgInvalidDate}},
		},
		{
			name: "date not a string",
			body: `{"order_date":20240101,"user_id":1}`,
			want: FieldErrors{"order_date": {MsgInvalidDate}},
		},
		{
			name: "user id not an integer",
			body: `{"order_date":"2024-01-01T10:00:00","user_id":"abc"}`,
			want: FieldErrors{"user_id": {MsgInvalidInteger}},
		},
		{
			name: "null user id",
			body: `{"order_date":"2024-01-01T10:00:00","user_id":null}`,
			want: FieldErrors{"user_id": {MsgNullField}},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseOrder(mustPayload(t, tc.body), false)
			assert.Equal(t, tc.want, requireFieldErrors(t, err))
		})
	}
}

func TestParseOrder_Partial(t *testing.T) {
	t.Parallel()

	patch, err := ParseOrder(mustPayload(t, `{"user_id":"2"}`), true)
	require.NoError(t, err)
	assert.False(t, patch.OrderDate.Set)

	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	o := &Order{ID: 5, OrderDate: date, UserID: 1}
	patch.Apply(o)
	assert.Equal(t, int64(2), o.UserID)
	assert.Equal(t, date, o.OrderDate)

	patch, err = ParseOrder(mustPayload(t, `{}`), true)
	require.NoError(t, err)
	assert.True(t, patch.IsEmpty())
}

func TestParseProductLink(t *testing.T) {
	t.Parallel()

	id, err := ParseProductLink(mustPayload(t, `{"product_id":3}`))
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)

	_, err = ParseProductLink(mustPayload(t, `{}`))
	assert.ErrorIs(t, err, ErrProductIDRequired)

	_, err = ParseProductLink(mustPayload(t, `{"product_id":null}`))
	assert.ErrorIs(t, err, ErrProductIDRequired)

	_, err = ParseProductLink(mustPayload(t, `{"product_id":"abc"}`))
	assert.Equal(t, FieldErrors{"product_id": {MsgInvalidInteger}}, requireFieldErrors(t, err))
}
