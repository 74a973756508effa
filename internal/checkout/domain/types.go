package domain

import "fmt"

// Money is an amount in cents. The storefront is single-currency.
type Money struct {
	Cents int64
}

func (m Money) String() string {
	return fmt.Sprintf("$%d.%02d", m.Cents/100, m.Cents%100)
}

type QuoteLine struct {
	ItemID    string
	Name      string
	Quantity  int
	UnitPrice Money
	LineTotal Money
}

type Quote struct {
	Lines      []QuoteLine
	TotalItems int
	Total      Money
}
