package ticket

import "math"

// Bracket prices every age up to and including MaxAge.
type Bracket struct {
	MaxAge int
	Price  int
}

// Pricing is an ordered list of brackets, ascending by MaxAge. Ages above
// the last bracket pay the last bracket's price.
type Pricing []Bracket

// DefaultPricing returns the standard zoo tariff.
func DefaultPricing() Pricing {
	return Pricing{
		{MaxAge: 2, Price: 0},
		{MaxAge: 17, Price: 100},
		{MaxAge: 59, Price: 500},
		{MaxAge: math.MaxInt, Price: 300},
	}
}

// Validate reports ErrEmptyPricing for a table with no brackets.
func (p Pricing) Validate() error {
	if len(p) == 0 {
		return ErrEmptyPricing
	}

	return nil
}

// PriceFor returns the entrance price for age. An empty table prices at 0.
func (p Pricing) PriceFor(age int) int {
	for _, b := range p {
		if age <= b.MaxAge {
			return b.Price
		}
	}
	if len(p) == 0 {
		return 0
	}

	return p[len(p)-1].Price
}
