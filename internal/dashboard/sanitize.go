package dashboard

import (
	"errors"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// ErrEmptyCity is returned when a search query has nothing left after cleaning
var ErrEmptyCity = errors.New("city must not be empty")

var strictPolicy = bluemonday.StrictPolicy()

// maxUnescapePasses bounds how many layers of entity encoding are decoded
// before the markup is stripped.
const maxUnescapePasses = 3

// sanitizedEntities reverts the escaping bluemonday applies to plain text.
// Angle brackets are dropped instead of restored.
var sanitizedEntities = strings.NewReplacer(
	"&amp;", "&",
	"&#39;", "'",
	"&#34;", `"`,
	"&lt;", "",
	"&gt;", "",
	"&#13;", " ",
)

// CleanCity trims a free-text city query and strips any markup from it.
// Entity-encoded markup is decoded first so it is stripped as well. Names
// such as "São Paulo" or "D'Oeste" come through unchanged.
func CleanCity(raw string) (string, error) {
	decoded := raw
	for i := 0; i < maxUnescapePasses; i++ {
		next := html.UnescapeString(decoded)
		if next == decoded {
			break
		}
		decoded = next
	}

	city := sanitizedEntities.Replace(strictPolicy.Sanitize(decoded))
	city = strings.Join(strings.Fields(city), " ")
	if city == "" {
		return "", ErrEmptyCity
	}
	return city, nil
}
