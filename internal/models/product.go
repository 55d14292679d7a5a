package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product represents one item in the catalog. An ID of zero means the
// product has never been persisted.
type Product struct {
	ID          int             `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"type:varchar(100);not null" validate:"required"`
	Description string          `json:"description" gorm:"type:varchar(250)" validate:"omitempty,max=250"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Available   bool            `json:"available"`
	Category    Category        `json:"category"`
}

// Serialize converts the product into the wire map used by the REST API.
// Price is rendered as a decimal string and category as its member name.
func (p *Product) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price.String(),
		"available":   p.Available,
		"category":    p.Category.String(),
	}
}

// Deserialize populates the product from an untyped key-value map, validating
// each field as it goes. On failure the product may be partially populated
// and must be discarded by the caller.
func (p *Product) Deserialize(data map[string]interface{}) error {
	if data == nil {
		return NewDataValidationError("Invalid product: body of request contained bad or no data")
	}

	name, ok := data["name"].(string)
	if !ok || name == "" {
		return NewDataValidationError("Invalid product: missing name")
	}
	p.Name = name

	if description, ok := data["description"]; ok {
		text, ok := description.(string)
		if !ok {
			return NewDataValidationError(fmt.Sprintf("Invalid type for string [description], got: %T", description))
		}
		p.Description = text
	}

	if price, ok := data["price"]; ok {
		value, err := parseDecimal(price)
		if err != nil {
			return err
		}
		p.Price = value
	}

	if available, ok := data["available"]; ok {
		flag, ok := available.(bool)
		if !ok {
			return NewDataValidationError(fmt.Sprintf("Invalid type for boolean [available], got: %T", available))
		}
		p.Available = flag
	}

	if category, ok := data["category"]; ok {
		name, ok := category.(string)
		if !ok {
			return NewDataValidationError(fmt.Sprintf("Invalid type for string [category], got: %T", category))
		}
		parsed, err := ParseCategory(name)
		if err != nil {
			return err
		}
		p.Category = parsed
	}

	return nil
}

// parseDecimal accepts the decimal representations JSON decoding can
// produce: a string ("12.50") or a number (12.5).
func parseDecimal(value interface{}) (decimal.Decimal, error) {
	switch v := value.(type) {
	case string:
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, NewDataValidationError("Invalid type for decimal [price]: " + v)
		}
		return parsed, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	default:
		return decimal.Zero, NewDataValidationError(fmt.Sprintf("Invalid type for decimal [price], got: %T", value))
	}
}
