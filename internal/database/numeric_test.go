package database

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNumericFromDecimal_KeepsScale(t *testing.T) {
	for _, s := range []string{"0.625", "13.125", "-14.5", "0.005", "1500"} {
		t.Run(s, func(t *testing.T) {
			d := decimal.RequireFromString(s)
			n := NumericFromDecimal(d)
			assert.True(t, n.Valid)
			assert.True(t, d.Equal(DecimalFromNumeric(n)), "round trip of %s gave %s", s, DecimalFromNumeric(n))
		})
	}
}

func TestDecimalFromNumeric_NullIsZero(t *testing.T) {
	assert.True(t, DecimalFromNumeric(pgtype.Numeric{}).IsZero())
}
