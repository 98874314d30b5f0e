package strategy

import (
	"fmt"

	"github.com/iho/payoffsim/internal/domain"
)

// Strategy identifiers.
const (
	NameSnowball              = "snowball"
	NameAvalanche             = "avalanche"
	NameSplitFiftyFifty       = "split_50_50"
	NameProportional          = "proportional"
	NameFastestPayoff         = "fastest_payoff"
	NameSmartSnowball         = "smart_snowball"
	NameSnowballThenAvalanche = "snowball_then_avalanche"
	NameAvalancheThenSnowball = "avalanche_then_snowball"
	NameReverseSnowball       = "reverse_snowball"
	NameReverseAvalanche      = "reverse_avalanche"
)

// Entry pairs a strategy with its identifier.
type Entry struct {
	Name     string
	Strategy Strategy
}

// Registry is an ordered, read-only set of named strategies.
type Registry struct {
	entries []Entry
	index   map[string]int
}

// NewRegistry builds a registry from entries. Names must be unique.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	for _, e := range entries {
		if e.Name == "" || e.Strategy == nil {
			return nil, fmt.Errorf("invalid strategy entry %q", e.Name)
		}
		if _, ok := r.index[e.Name]; ok {
			return nil, fmt.Errorf("duplicate strategy %q", e.Name)
		}
		r.index[e.Name] = len(r.entries)
		r.entries = append(r.entries, e)
	}

	return r, nil
}

// Default returns the registry of every built-in strategy in report order.
func Default() *Registry {
	r, err := NewRegistry(
		Entry{NameSnowball, Snowball()},
		Entry{NameAvalanche, Avalanche()},
		Entry{NameSplitFiftyFifty, SplitFiftyFifty()},
		Entry{NameProportional, Proportional()},
		Entry{NameFastestPayoff, FastestPayoff()},
		Entry{NameSmartSnowball, SmartSnowball()},
		Entry{NameSnowballThenAvalanche, SnowballThenAvalanche()},
		Entry{NameAvalancheThenSnowball, AvalancheThenSnowball()},
		Entry{NameReverseSnowball, ReverseSnowball()},
		Entry{NameReverseAvalanche, ReverseAvalanche()},
	)
	if err != nil {
		panic(err)
	}
	return r
}

// Names returns the identifiers in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

// Get returns the named strategy.
func (r *Registry) Get(name string) (Strategy, error) {
	i, ok := r.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownStrategy, name)
	}
	return r.entries[i].Strategy, nil
}

// Select returns the named entries in registry order. No names selects everything.
func (r *Registry) Select(names ...string) ([]Entry, error) {
	if len(names) == 0 {
		return append([]Entry(nil), r.entries...), nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := r.index[name]; !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownStrategy, name)
		}
		wanted[name] = true
	}

	selected := make([]Entry, 0, len(wanted))
	for _, e := range r.entries {
		if wanted[e.Name] {
			selected = append(selected, e)
		}
	}
	return selected, nil
}
