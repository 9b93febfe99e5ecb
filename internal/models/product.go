package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Category is the closed set of product categories.
type Category string

const (
	CategoryUnknown    Category = "UNKNOWN"
	CategoryCloths     Category = "CLOTHS"
	CategoryFood       Category = "FOOD"
	CategoryHousewares Category = "HOUSEWARES"
	CategoryAutomotive Category = "AUTOMOTIVE"
	CategoryTools      Category = "TOOLS"
)

var categories = map[string]Category{
	string(CategoryUnknown):    CategoryUnknown,
	string(CategoryCloths):     CategoryCloths,
	string(CategoryFood):       CategoryFood,
	string(CategoryHousewares): CategoryHousewares,
	string(CategoryAutomotive): CategoryAutomotive,
	string(CategoryTools):      CategoryTools,
}

// ParseCategory maps a token to its Category, rejecting anything outside
// the closed set.
func ParseCategory(token string) (Category, error) {
	if cat, ok := categories[token]; ok {
		return cat, nil
	}
	return CategoryUnknown, NewDataValidationError("invalid Product: unknown category [%s]", token)
}

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"         json:"id"`
	Name        string          `gorm:"not null"                         json:"name"`
	Description string          `gorm:"not null"                         json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"      json:"price"`
	Available   bool            `gorm:"not null"                         json:"available"`
	Category    Category        `gorm:"size:32;not null;default:UNKNOWN" json:"category"`
}

func (p *Product) PrimaryKey() uint      { return p.ID }
func (p *Product) SetPrimaryKey(id uint) { p.ID = id }
func (p *Product) DisplayName() string   { return p.Name }

// Serialize converts a Product into a plain mapping. The price is rendered
// as a decimal-preserving string, never a binary float.
func (p *Product) Serialize() map[string]any {
	var id any
	if p.ID != 0 {
		id = p.ID
	}
	return map[string]any{
		"id":          id,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price.String(),
		"available":   p.Available,
		"category":    string(p.Category),
	}
}

// Deserialize populates a Product from a plain mapping without persisting
// it. The populated product is returned so calls can be chained.
func (p *Product) Deserialize(data any) (*Product, error) {
	fields, ok := data.(map[string]any)
	if !ok {
		return nil, NewDataValidationError("invalid Product: body contained bad or no data")
	}

	var err error
	if p.Name, err = stringField(fields, "Product", "name"); err != nil {
		return nil, err
	}
	if p.Description, err = stringField(fields, "Product", "description"); err != nil {
		return nil, err
	}

	rawPrice, ok := fields["price"]
	if !ok {
		return nil, NewDataValidationError("invalid Product: missing price")
	}
	if p.Price, err = ParsePrice(rawPrice); err != nil {
		return nil, err
	}

	rawAvailable, ok := fields["available"]
	if !ok {
		return nil, NewDataValidationError("invalid Product: missing available")
	}
	available, ok := rawAvailable.(bool)
	if !ok {
		return nil, NewDataValidationError("invalid Product: available must be a boolean, got %T", rawAvailable)
	}
	p.Available = available

	token, err := stringField(fields, "Product", "category")
	if err != nil {
		return nil, err
	}
	if p.Category, err = ParseCategory(token); err != nil {
		return nil, err
	}

	return p, nil
}

// ParsePrice normalizes a price supplied as an exact decimal, a JSON
// number, or a string possibly padded with stray whitespace and quote
// characters. Strings are parsed as exact decimals, never binary floats.
func ParsePrice(price any) (decimal.Decimal, error) {
	switch v := price.(type) {
	case decimal.Decimal:
		return v, nil
	case json.Number:
		parsed, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Decimal{}, NewDataValidationError("invalid Product: price [%s] is not a decimal", v)
		}
		return parsed, nil
	case string:
		parsed, err := decimal.NewFromString(strings.Trim(v, ` "`))
		if err != nil {
			return decimal.Decimal{}, NewDataValidationError("invalid Product: price [%s] is not a decimal", v)
		}
		return parsed, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	default:
		return decimal.Decimal{}, NewDataValidationError("invalid Product: price has unsupported type %T", price)
	}
}
