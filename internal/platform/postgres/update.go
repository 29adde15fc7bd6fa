package postgres

import (
	"fmt"
	"strings"

	"github.com/phrazzld/ecommerce-api/internal/domain"
)

// updateBuilder assembles an UPDATE for the columns a patch supplies.
type updateBuilder struct {
	table string
	sets  []string
	args  []any
}

func newUpdate(table string) *updateBuilder {
	return &updateBuilder{table: table}
}

// set adds "column = $n". A nil value writes NULL.
func (b *updateBuilder) set(column string, value any) {
	b.args = append(b.args, value)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

func (b *updateBuilder) empty() bool {
	return len(b.sets) == 0
}

// build returns the statement for the row with the given id, with a
// RETURNING clause listing columns.
func (b *updateBuilder) build(id int64, returning string) (string, []any) {
	args := append(append([]any(nil), b.args...), id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		b.table, strings.Join(b.sets, ", "), len(args), returning)
	return query, args
}

// setOptional adds column when the field was supplied. An explicit null
// writes NULL.
func setOptional[T any](b *updateBuilder, column string, o domain.Optional[T]) {
	if !o.Set {
		return
	}
	if o.Value == nil {
		b.set(column, nil)
		return
	}
	b.set(column, *o.Value)
}
