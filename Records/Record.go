package Records

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// MaxTitle is the longest title, in runes, a Record keeps.
	MaxTitle = 64
	// Placeholder replaces a title that is empty after trimming.
	Placeholder = "(untitled)"
)

// Record is a catalog entry: an integer key (a catalog number such as an ISBN) and a title.
// It is a value type; copies are independent and there are no setters.
// The zero value has key 0 and an empty title, use New to get a normalized one.
type Record struct {
	key   int
	title string
}

// New builds a Record, normalizing the title: surrounding white space is trimmed, an empty
// title becomes Placeholder and anything past MaxTitle runes is cut off.
func New(key int, title string) Record {
	return Record{key: key, title: normalize(title)}
}

func normalize(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return Placeholder
	}
	if utf8.RuneCountInString(title) <= MaxTitle {
		return title
	}
	n := 0
	for i := range title {
		if n == MaxTitle {
			return title[:i]
		}
		n++
	}
	return title
}

func (u Record) Key() int {
	return u.key
}

func (u Record) Title() string {
	return u.title
}

// WithKey returns a copy of u filed under k.
func (u Record) WithKey(k int) Record {
	u.key = k
	return u
}

// String renders u the way the catalog prints it, e.g. [ISBN:42] "Dune".
func (u Record) String() string {
	return fmt.Sprintf("[ISBN:%d] %q", u.key, u.title)
}
