package composer_test

import (
	"strings"

	"github.com/KirkDiggler/reliquary-api/internal/entities/reliquary"
)

func lower(c reliquary.Color) string {
	return strings.ToLower(string(c))
}
