package board

import "github.com/mitchellh/mapstructure"

// CellSpec is one cell's declarative load instruction. At most one of Value+Given, GivenPencilMarks, or
// CenterPencilMarks may be set; an entirely zero-value CellSpec means
// "default: all values".
type CellSpec struct {
	// Value is the 1-based symbol this cell holds, meaningful only when
	// Given is true.
	Value int `mapstructure:"value"`
	// Given marks Value as a puzzle-supplied clue.
	Given bool `mapstructure:"given"`
	// GivenPencilMarks, if non-empty, permanently restricts this cell's
	// legal values to this 1-based set — a puzzle-variant restriction
	// baked into the input rather than discovered during solving.
	GivenPencilMarks []int `mapstructure:"givenPencilMarks"`
	// CenterPencilMarks, if non-empty, restricts this cell's starting
	// candidate set to this 1-based set. NewBoard applies it exactly as
	// it applies GivenPencilMarks.
	CenterPencilMarks []int `mapstructure:"centerPencilMarks"`
	// Region overrides DefaultRegions' tessellation for this cell; nil
	// (unset) leaves the default in place. Region ids are 0-based when
	// present.
	Region *int `mapstructure:"region"`
}

// ConstraintSpec names one registered constraint and its free-form
// parameters. The core does not
// interpret Params; it is handed to the matching factory verbatim.
type ConstraintSpec struct {
	Name   string                 `mapstructure:"name"`
	Params map[string]interface{} `mapstructure:"params"`
}

// Config is the full declarative board-construction record.
type Config struct {
	N           int              `mapstructure:"n"`
	Cells       []CellSpec       `mapstructure:"cells"`
	Constraints []ConstraintSpec `mapstructure:"constraints"`
	// AllowedLogicalSteps names which optional (non-always-enabled)
	// logical-step heuristics LogicalStep/LogicalSolve may fire, by
	// steps.Name string value (e.g. "naked_pair"). Naked singles, hidden
	// singles, and the constraint dispatcher always run regardless of
	// this list. Nil (the field left unset) enables the default set
	// rather than none.
	AllowedLogicalSteps []string `mapstructure:"allowedLogicalSteps"`
}

// DecodeConfig decodes a generic map (as parsed from JSON/YAML by the
// host) into a Config, the way Nomad's job-spec loader decodes generic
// maps with mapstructure.
func DecodeConfig(raw map[string]interface{}) (Config, error) {
	var cfg Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      false,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, wrapDecodeErr(err)
	}
	return cfg, nil
}

func wrapDecodeErr(err error) error {
	return &decodeError{err}
}

type decodeError struct{ cause error }

func (e *decodeError) Error() string { return ErrDecodeConfig.Error() + ": " + e.cause.Error() }
func (e *decodeError) Unwrap() error { return ErrDecodeConfig }
