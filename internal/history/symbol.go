package history

import (
	"strings"

	"github.com/guttosm/stockpulse/internal/domain/apperr"
)

// NormalizeSymbol validates and canonicalizes a ticker symbol:
// surrounding whitespace is trimmed and the result is uppercased.
// Empty or blank input fails with InvalidSymbol.
func NormalizeSymbol(symbol string) (string, error) {
	s := strings.TrimSpace(symbol)
	if s == "" {
		return "", apperr.New(apperr.InvalidSymbol, "a symbol must be provided")
	}
	return strings.ToUpper(s), nil
}
