// Package quote fetches current market prices from external providers.
//
// The valuation core never calls this package: callers fetch a quote,
// store it on the trade's current-price field, and then recompute
// metrics. All network timeouts live here.
package quote

import (
	"errors"

	"github.com/antigravity/Trading-Journal-Backend/internal/apperrors"
)

// Source provides the current market price for an instrument. The ISIN
// is optional and only used by providers that can search by it.
type Source interface {
	Price(symbol, isin string) (float64, error)
}

// Chain tries each source in order and returns the first successful
// quote. When every source fails, the individual errors are joined
// behind apperrors.ErrPriceUnavailable so callers can both test the
// sentinel and log the per-provider reasons.
type Chain struct {
	sources []Source
}

// NewChain creates a Chain over the given sources, tried in order.
func NewChain(sources ...Source) *Chain {
	return &Chain{sources: sources}
}

// Price implements Source.
func (c *Chain) Price(symbol, isin string) (float64, error) {
	errs := []error{apperrors.ErrPriceUnavailable}
	for _, s := range c.sources {
		price, err := s.Price(symbol, isin)
		if err == nil {
			return price, nil
		}
		errs = append(errs, err)
	}
	return 0, errors.Join(errs...)
}
