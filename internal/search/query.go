// Package search decides whether a search query string is well formed
// before any data access happens.
package search

import (
	"math"
	"net/url"
	"strconv"

	"github.com/amikaross/rails-engine/internal/common"
)

const (
	ReasonNameAndPrice   = "Name and price can't be queried simultaneously"
	ReasonEmptyQuery     = "Query cannot be empty"
	ReasonMinAboveMax    = "Max price must be greater than min price"
	ReasonNegativePrice  = "Price cannot be less than 0"
	ReasonPriceNotNumber = "Price must be a number"
	ReasonMissingQuery   = "Name or Price query must exist"
	ReasonMissingName    = "Name query must exist"
)

type Mode int

const (
	NameSearch Mode = iota + 1
	PriceSearch
)

func (m Mode) String() string {
	switch m {
	case NameSearch:
		return "name"
	case PriceSearch:
		return "price"
	default:
		return "unknown"
	}
}

// ItemQuery is an accepted item search. Name is set for NameSearch; Min and
// Max are set (either or both) for PriceSearch.
type ItemQuery struct {
	Mode Mode
	Name string
	Min  *float64
	Max  *float64
}

// ParseItemQuery applies the item search rules in precedence order; the
// first rule that matches decides the outcome.
func ParseItemQuery(values url.Values) (ItemQuery, error) {
	name, hasName := lookup(values, "name")
	minRaw, hasMin := lookup(values, "min_price")
	maxRaw, hasMax := lookup(values, "max_price")
	hasPrice := hasMin || hasMax

	switch {
	case hasPrice && hasName:
		return ItemQuery{}, common.NewInvalidQueryError(ReasonNameAndPrice)
	case hasName && name == "":
		return ItemQuery{}, common.NewInvalidQueryError(ReasonEmptyQuery)
	case hasName:
		return ItemQuery{Mode: NameSearch, Name: name}, nil
	case hasPrice:
		return parsePriceQuery(minRaw, hasMin, maxRaw, hasMax)
	default:
		return ItemQuery{}, common.NewInvalidQueryError(ReasonMissingQuery)
	}
}

func parsePriceQuery(minRaw string, hasMin bool, maxRaw string, hasMax bool) (ItemQuery, error) {
	if (hasMin && minRaw == "") || (hasMax && maxRaw == "") {
		return ItemQuery{}, common.NewInvalidQueryError(ReasonEmptyQuery)
	}

	query := ItemQuery{Mode: PriceSearch}
	if hasMin {
		v, err := parsePrice(minRaw)
		if err != nil {
			return ItemQuery{}, err
		}
		query.Min = &v
	}
	if hasMax {
		v, err := parsePrice(maxRaw)
		if err != nil {
			return ItemQuery{}, err
		}
		query.Max = &v
	}

	if query.Min != nil && query.Max != nil && *query.Min > *query.Max {
		return ItemQuery{}, common.NewInvalidQueryError(ReasonMinAboveMax)
	}
	if (query.Min != nil && *query.Min < 0) || (query.Max != nil && *query.Max < 0) {
		return ItemQuery{}, common.NewInvalidQueryError(ReasonNegativePrice)
	}
	return query, nil
}

func parsePrice(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, common.NewInvalidQueryError(ReasonPriceNotNumber)
	}
	return v, nil
}

// ParseMerchantQuery accepts only a non-empty name
func ParseMerchantQuery(values url.Values) (string, error) {
	name, ok := lookup(values, "name")
	if !ok {
		return "", common.NewInvalidQueryError(ReasonMissingName)
	}
	if name == "" {
		return "", common.NewInvalidQueryError(ReasonEmptyQuery)
	}
	return name, nil
}

// lookup distinguishes an absent parameter from one given with an empty value
func lookup(values url.Values, key string) (string, bool) {
	v, ok := values[key]
	if !ok {
		return "", false
	}
	if len(v) == 0 {
		return "", true
	}
	return v[0], true
}
