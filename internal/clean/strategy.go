package clean

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Missing value strategies.
const (
	// MissingKeep leaves null cells untouched
	MissingKeep = "keep"
	// MissingDrop removes every row that contains a null cell
	MissingDrop = "drop"
	// MissingMean fills numeric nulls with the column mean
	MissingMean = "mean"
	// MissingMedian fills numeric nulls with the column median
	MissingMedian = "median"
	// MissingConstant fills nulls with a caller-supplied value
	MissingConstant = "constant"
)

// Duplicate row strategies.
const (
	// DuplicatesKeep leaves duplicate rows in place
	DuplicatesKeep = "keep"
	// DuplicatesDrop removes duplicate rows, keeping the first occurrence
	DuplicatesDrop = "drop"
)

// Outlier strategies.
const (
	// OutliersKeep leaves outlier values untouched
	OutliersKeep = "keep"
	// OutliersClip winsorizes outliers to the IQR fences
	OutliersClip = "clip"
	// OutliersDrop removes rows containing an outlier value
	OutliersDrop = "drop"
)

// Config selects the treatment applied to each issue class.
type Config struct {
	Missing    string `yaml:"missing" envconfig:"MISSING" validate:"oneof=keep drop mean median constant"`
	Duplicates string `yaml:"duplicates" envconfig:"DUPLICATES" validate:"oneof=keep drop"`
	Outliers   string `yaml:"outliers" envconfig:"OUTLIERS" validate:"oneof=keep clip drop"`

	// FillValue is the replacement cell for the constant missing strategy.
	// Must be nil, float64, bool, or string; required when Missing is constant.
	FillValue any `yaml:"fill_value" validate:"required_if=Missing constant"`
}

// DefaultConfig mirrors the original treatment order: fill missing with the
// column mean, drop duplicates keeping the first occurrence, clip outliers.
func DefaultConfig() Config {
	return Config{
		Missing:    MissingMean,
		Duplicates: DuplicatesDrop,
		Outliers:   OutliersClip,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that every strategy name is recognized and that the
// constant strategy carries a fill value.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid clean config: %w", err)
	}
	if c.Missing == MissingConstant {
		switch c.FillValue.(type) {
		case float64, int, bool, string:
		default:
			return fmt.Errorf("invalid clean config: fill_value must be a scalar, got %T", c.FillValue)
		}
	}
	return nil
}

// normalize widens YAML-decoded integer fill values to float64, the only
// numeric cell type datasets carry.
func (c *Config) normalize() {
	if i, ok := c.FillValue.(int); ok {
		c.FillValue = float64(i)
	}
}
