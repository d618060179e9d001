// SPDX-License-Identifier: MIT

package degseq

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/degseq/graphical"
)

// Method selects the generation algorithm.
type Method int

const (
	// Configuration pairs stubs uniformly at random. The result may contain
	// self-loops and multi-edges; every stub matching is equally likely.
	Configuration Method = iota

	// ConfigurationSimple runs Configuration and rejects any result with a
	// loop or multi-edge. Uniform over simple realizations; the expected
	// number of attempts grows exponentially with the degree spread.
	ConfigurationSimple

	// FastHeurSimple connects stubs greedily and retries only the stubs that
	// conflicted. Fast, always simple, not uniform.
	FastHeurSimple

	// EdgeSwitchingSimple realizes one simple graph and then applies
	// degree-preserving edge switches.
	EdgeSwitchingSimple

	// VL samples a connected simple undirected graph.
	VL
)

var methodNames = [...]string{
	Configuration:       "configuration",
	ConfigurationSimple: "configuration_simple",
	FastHeurSimple:      "fast_heur_simple",
	EdgeSwitchingSimple: "edge_switching_simple",
	VL:                  "vl",
}

// String returns the canonical lower-case name, or "Method(n)" when m is
// outside the defined set.
func (m Method) String() string {
	if m.valid() {
		return methodNames[m]
	}

	return fmt.Sprintf("Method(%d)", int(m))
}

func (m Method) valid() bool { return m >= Configuration && m <= VL }

// edgeTypes is the feasibility policy checked before sampling.
func (m Method) edgeTypes() graphical.EdgeTypes {
	if m == Configuration {
		return graphical.LoopsMulti
	}

	return graphical.Simple
}

// ParseMethod resolves a method name, case-insensitively. Hyphens are
// accepted in place of underscores.
//
// Errors:
//   - ErrUnknownMethod: no method has that name.
func ParseMethod(s string) (Method, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for m, name := range methodNames {
		if name == key {
			return Method(m), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("%s: %w", m, ErrUnknownMethod)
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(text []byte) error {
	v, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = v

	return nil
}
