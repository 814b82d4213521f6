// Package greeter formats simple greetings.
package greeter

import "strings"

// DefaultSalutation is the salutation used by a Greeter created with
// Default.
const DefaultSalutation = "Hello"

// Greeter generates greetings for arbitrary names. A Greeter is not
// safe for concurrent use if its salutation is changed while it is
// being used.
type Greeter struct {
	salutation string
}

// New returns a Greeter that begins each greeting with salutation.
// Any string, including the empty string, is valid.
func New(salutation string) *Greeter {
	return &Greeter{salutation: salutation}
}

// Default returns a Greeter using DefaultSalutation.
func Default() *Greeter {
	return New(DefaultSalutation)
}

// Greet returns a greeting for name. The salutation and name are
// separated by ", " only if both are non-empty, and the greeting ends
// with "!" only if name is non-empty, so
//
//	Default().Greet("World") // "Hello, World!"
//	Default().Greet("")      // "Hello"
//	New("").Greet("World")   // "World!"
//	New("").Greet("")        // ""
func (g *Greeter) Greet(name string) string {
	var buf strings.Builder
	buf.Grow(len(g.salutation) + len(name) + 3)

	buf.WriteString(g.salutation)
	if g.salutation != "" && name != "" {
		buf.WriteString(", ")
	}
	buf.WriteString(name)
	if name != "" {
		buf.WriteByte('!')
	}

	return buf.String()
}

// SetSalutation replaces the salutation used by future calls to Greet.
func (g *Greeter) SetSalutation(salutation string) {
	g.salutation = salutation
}

func (g *Greeter) Salutation() string { return g.salutation }

func (g *Greeter) String() string { return g.salutation }
