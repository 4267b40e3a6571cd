// Package rules holds the static event type -> Focus Point award table.
package rules

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	errorvalues "github.com/limbo/frisfocus/internal/error_values"
)

// WindowPolicy is the span within which an event type is awarded at most
// once per user when the caller asks for duplicate checking.
type WindowPolicy string

const (
	WindowNone   WindowPolicy = "none"
	WindowDaily  WindowPolicy = "daily"
	WindowWeekly WindowPolicy = "weekly"
)

type Rule struct {
	EventType   string       `toml:"event_type" json:"event_type" validate:"required,max=64"`
	FpAmount    int          `toml:"fp_amount" json:"fp_amount"`
	Description string       `toml:"description" json:"description" validate:"required,max=255"`
	Window      WindowPolicy `toml:"window" json:"window" validate:"required,oneof=none daily weekly"`
}

type Table struct {
	byType map[string]Rule
	order  []string
}

type document struct {
	Rules []Rule `toml:"rule"`
}

//go:embed rules.toml
var defaultRules string

var validate = validator.New()

// Default returns the table compiled into the binary.
func Default() *Table {
	t, err := Parse(defaultRules)
	if err != nil {
		panic("embedded rule table: " + err.Error())
	}
	return t
}

// Load reads a TOML rule table from path, or the embedded one when path is empty.
func Load(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rule table: %w", err)
	}
	return Parse(string(data))
}

func Parse(data string) (*Table, error) {
	var doc document
	if _, err := toml.Decode(data, &doc); err != nil {
		return nil, errors.Join(errorvalues.ErrInvalidRuleTable, err)
	}
	return New(doc.Rules)
}

func New(rules []Rule) (*Table, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("%w: no rules", errorvalues.ErrInvalidRuleTable)
	}
	t := &Table{byType: make(map[string]Rule, len(rules))}
	for i, r := range rules {
		if err := validate.Struct(r); err != nil {
			return nil, fmt.Errorf("%w: rule #%d: %v", errorvalues.ErrInvalidRuleTable, i+1, err)
		}
		if _, ok := t.byType[r.EventType]; ok {
			return nil, fmt.Errorf("%w: duplicate event type %q", errorvalues.ErrInvalidRuleTable, r.EventType)
		}
		t.byType[r.EventType] = r
		t.order = append(t.order, r.EventType)
	}
	return t, nil
}

func (t *Table) Lookup(eventType string) (Rule, bool) {
	r, ok := t.byType[eventType]
	return r, ok
}

// All returns the rules sorted by event type.
func (t *Table) All() []Rule {
	names := make([]string, len(t.order))
	copy(names, t.order)
	sort.Strings(names)
	out := make([]Rule, 0, len(names))
	for _, n := range names {
		out = append(out, t.byType[n])
	}
	return out
}

// Encode writes rules in the same TOML layout Parse reads.
func Encode(w io.Writer, rules []Rule) error {
	return toml.NewEncoder(w).Encode(document{Rules: rules})
}
