package critical

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/notargets/critpure/utils"
)

const (
	// DefaultMaxSteps is the Newton iteration count used when none is given
	DefaultMaxSteps = 10
	// NoPureIndex means "plain one-component composition"
	NoPureIndex = utils.NoPureIndex
)

// Selection picks the composition a pure-fluid calculation runs at. Index ==
// NoPureIndex uses [1.0]; otherwise a Length-long vector with 1.0 at Index
// isolates one component of a multi-component model.
type Selection struct {
	Index  int
	Length int
}

// Pure returns the default selection: the one-component composition [1.0]
func Pure() Selection { return Selection{Index: NoPureIndex, Length: 2} }

func (s Selection) moleFractions() ([]float64, error) {
	z, err := utils.MoleFractions(s.Index, s.Length)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFlags, err)
	}
	return z, nil
}

// Flags configures SolvePure. Use DefaultFlags or ParseFlags to get a value
// with the documented defaults.
type Flags struct {
	// MaxSteps is the number of Newton iterations taken
	MaxSteps int
	Selection
	// Tolerance enables an early exit once the relative Newton step in both T
	// and ρ falls below it. Zero keeps the fixed-iteration behavior.
	Tolerance float64
	// Logger, if set, receives one line per iteration
	Logger *log.Logger
}

// DefaultFlags returns DefaultMaxSteps fixed Newton steps at the Pure
// composition, with no tolerance and no logging. Each call returns a fresh
// value.
func DefaultFlags() Flags {
	return Flags{
		MaxSteps:  DefaultMaxSteps,
		Selection: Pure(),
	}
}

// Validate checks the ranges documented on the JSON keys
func (f Flags) Validate() error {
	if f.MaxSteps < 1 {
		return fmt.Errorf("%w: maxsteps = %d", ErrInvalidFlags, f.MaxSteps)
	}
	if f.Length < 1 {
		return fmt.Errorf("%w: alternative_length = %d", ErrInvalidFlags, f.Length)
	}
	if f.Index != NoPureIndex && (f.Index < 0 || f.Index >= f.Length) {
		return fmt.Errorf("%w: alternative_pure_index = %d with alternative_length = %d",
			ErrInvalidFlags, f.Index, f.Length)
	}
	if math.IsNaN(f.Tolerance) || f.Tolerance < 0 {
		return fmt.Errorf("%w: tolerance = %g", ErrInvalidFlags, f.Tolerance)
	}
	return nil
}

// ParseFlags reads a JSON object with the keys
//
//	maxsteps               positive integer, default 10
//	alternative_pure_index integer, -1, null or "none"; default "none"
//	alternative_length     positive integer, default 2
//	tolerance              non-negative float, default 0 (disabled)
//
// Missing keys keep their defaults and unknown keys are ignored. Empty input
// yields DefaultFlags.
func ParseFlags(data []byte) (Flags, error) {
	f := DefaultFlags()
	if len(bytes.TrimSpace(data)) == 0 {
		return f, nil
	}
	if err := json.Unmarshal(data, &f); err != nil {
		if !errors.Is(err, ErrInvalidFlags) {
			err = fmt.Errorf("%w: %w", ErrInvalidFlags, err)
		}
		return Flags{}, err
	}
	if err := f.Validate(); err != nil {
		return Flags{}, err
	}
	return f, nil
}

// UnmarshalJSON overlays the keys present in data onto f
func (f *Flags) UnmarshalJSON(data []byte) error {
	var raw struct {
		MaxSteps  *int            `json:"maxsteps"`
		Index     json.RawMessage `json:"alternative_pure_index"`
		Length    *int            `json:"alternative_length"`
		Tolerance *float64        `json:"tolerance"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFlags, err)
	}
	if raw.MaxSteps != nil {
		f.MaxSteps = *raw.MaxSteps
	}
	if raw.Length != nil {
		f.Length = *raw.Length
	}
	if raw.Tolerance != nil {
		f.Tolerance = *raw.Tolerance
	}
	idx, err := parsePureIndex(raw.Index)
	if err != nil {
		return err
	}
	if idx != nil {
		f.Index = *idx
	}
	return nil
}

// parsePureIndex returns nil when the key is absent
func parsePureIndex(raw json.RawMessage) (*int, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	none := NoPureIndex
	if string(raw) == "null" {
		return &none, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if strings.EqualFold(s, "none") {
			return &none, nil
		}
		return nil, fmt.Errorf("%w: alternative_pure_index = %q", ErrInvalidFlags, s)
	}
	var i int
	if err := json.Unmarshal(raw, &i); err != nil {
		return nil, fmt.Errorf("%w: alternative_pure_index: %w", ErrInvalidFlags, err)
	}
	return &i, nil
}
