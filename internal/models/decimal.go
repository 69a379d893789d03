package models

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Decimal is a fixed-point column value with two decimal places, backed by
// NUMERIC(5,2) in the store. Values round-trip through the store as exact
// decimals; conversion to float64 happens only at the response edge, so a
// value created with more than two decimal places comes back rounded. That
// loss is part of the column contract, not a bug.
type Decimal struct {
	decimal.Decimal
}

// NewDecimal converts a float input to the stored two-decimal precision.
func NewDecimal(f float64) Decimal {
	return Decimal{decimal.NewFromFloat(f).Round(2)}
}

// Float64 returns the stored value as a float for API responses.
func (d Decimal) Float64() float64 {
	f, _ := d.Decimal.Float64()
	return f
}

// Value implements the driver.Valuer interface, writing the fixed two-decimal
// string representation.
func (d Decimal) Value() (driver.Value, error) {
	return d.Decimal.StringFixed(2), nil
}

// Scan implements the sql.Scanner interface.
func (d *Decimal) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		d.Decimal = decimal.Zero
		return nil
	case []byte:
		dec, err := decimal.NewFromString(string(v))
		if err != nil {
			return err
		}
		d.Decimal = dec.Round(2)
		return nil
	case string:
		dec, err := decimal.NewFromString(v)
		if err != nil {
			return err
		}
		d.Decimal = dec.Round(2)
		return nil
	case float64:
		d.Decimal = decimal.NewFromFloat(v).Round(2)
		return nil
	case int64:
		d.Decimal = decimal.NewFromInt(v)
		return nil
	}
	return fmt.Errorf("Decimal: cannot scan value of type %T", value)
}

// MarshalJSON emits the value as a JSON number.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.Decimal.String()), nil
}

// UnmarshalJSON accepts a JSON number and rounds it to the column precision.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	dec, err := decimal.NewFromString(string(data))
	if err != nil {
		return err
	}
	d.Decimal = dec.Round(2)
	return nil
}

// GormDBDataType ensures the correct fixed-precision type is used for each
// database driver. SQLite has no enforced precision, which is why rounding
// also happens on the Go side.
func (Decimal) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "DECIMAL(5,2)"
	case "postgres":
		return "NUMERIC(5,2)"
	case "sqlserver", "mssql":
		return "DECIMAL(5,2)"
	case "sqlite":
		return "NUMERIC"
	}
	return "NUMERIC(5,2)"
}
