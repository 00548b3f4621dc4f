package enums

import "fmt"

// ProductOrdering is the set of accepted values for the products `ordering`
// query parameter. A leading dash flips the direction, mirroring the query
// surface the storefront clients already use.
type ProductOrdering string

const (
	ProductOrderingDefault        ProductOrdering = ""
	ProductOrderingPriceAsc       ProductOrdering = "product_price"
	ProductOrderingPriceDesc      ProductOrdering = "-product_price"
	ProductOrderingCreateDateAsc  ProductOrdering = "create_date"
	ProductOrderingCreateDateDesc ProductOrdering = "-create_date"
)

var validProductOrderings = []ProductOrdering{
	ProductOrderingDefault,
	ProductOrderingPriceAsc,
	ProductOrderingPriceDesc,
	ProductOrderingCreateDateAsc,
	ProductOrderingCreateDateDesc,
}

// IsValid reports whether the value is an accepted ordering.
func (o ProductOrdering) IsValid() bool {
	for _, candidate := range validProductOrderings {
		if candidate == o {
			return true
		}
	}
	return false
}

// ParseProductOrdering converts raw query input into a ProductOrdering.
func ParseProductOrdering(value string) (ProductOrdering, error) {
	for _, candidate := range validProductOrderings {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid ordering %q", value)
}

// OrderClause returns the SQL ORDER BY expression for the ordering, always
// breaking ties by id ascending so pagination stays stable.
func (o ProductOrdering) OrderClause() string {
	switch o {
	case ProductOrderingPriceAsc:
		return "product_price ASC, id ASC"
	case ProductOrderingPriceDesc:
		return "product_price DESC, id ASC"
	case ProductOrderingCreateDateAsc:
		return "create_date ASC, id ASC"
	case ProductOrderingCreateDateDesc:
		return "create_date DESC, id ASC"
	default:
		return "id ASC"
	}
}
