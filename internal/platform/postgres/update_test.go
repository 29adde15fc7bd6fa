package postgres

import (
	"testing"
	"time"

	"github.com/phrazzld/ecommerce-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestUpdateBuilder(t *testing.T) {
	t.Parallel()

	b := newUpdate("users")
	assert.True(t, b.empty())

	setOptional(b, "name", domain.Some("Ada"))
	setOptional(b, "email", domain.Null[string]())
	setOptional(b, "city", domain.Optional[string]{})
	setOptional(b, "street_number", domain.Some(int64(12)))

	assert.False(t, b.empty())

	query, args := b.build(7, "id, name")
	assert.Equal(t,
		"UPDATE users SET name = $1, email = $2, street_number = $3 WHERE id = $4 RETURNING id, name",
		query)
	assert.Equal(t, []any{"Ada", nil, int64(12), int64(7)}, args)
}

func TestUpdateBuilder_BuildDoesNotAlias(t *testing.T) {
	t.Parallel()

	b := newUpdate("orders")
	setOptional(b, "order_date", domain.Some(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))

	_, first := b.build(1, "id")
	_, second := b.build(2, "id")
	assert.Equal(t, int64(1), first[1])
	assert.Equal(t, int64(2), second[1])
}
