package models

// Category classifies a product. The zero value is CategoryUnknown.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryCloths
	CategoryFood
	CategoryHousewares
	CategoryAutomotive
	CategoryTools
)

var categoryNames = map[Category]string{
	CategoryUnknown:    "UNKNOWN",
	CategoryCloths:     "CLOTHS",
	CategoryFood:       "FOOD",
	CategoryHousewares: "HOUSEWARES",
	CategoryAutomotive: "AUTOMOTIVE",
	CategoryTools:      "TOOLS",
}

var categoryValues = map[string]Category{
	"UNKNOWN":    CategoryUnknown,
	"CLOTHS":     CategoryCloths,
	"FOOD":       CategoryFood,
	"HOUSEWARES": CategoryHousewares,
	"AUTOMOTIVE": CategoryAutomotive,
	"TOOLS":      CategoryTools,
}

// String returns the category's member name, or "UNKNOWN" for values
// outside the enumeration.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseCategory maps a member name to its Category. The match is exact and
// case-sensitive; an unrecognized name yields a DataValidationError.
func ParseCategory(name string) (Category, error) {
	if category, ok := categoryValues[name]; ok {
		return category, nil
	}
	return CategoryUnknown, NewDataValidationError("Invalid attribute: " + name)
}
