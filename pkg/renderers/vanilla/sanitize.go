package vanilla

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	symbolPolicyOnce sync.Once
	symbolPolicy     *bluemonday.Policy
)

// sanitizeSymbol strips markup from a configured symbol. The result is safe
// to emit without further escaping.
func sanitizeSymbol(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(symbolSanitizer().Sanitize(trimmed))
}

func symbolSanitizer() *bluemonday.Policy {
	symbolPolicyOnce.Do(func() {
		symbolPolicy = bluemonday.StrictPolicy()
	})
	return symbolPolicy
}
