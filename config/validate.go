package config

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// ErrInvalidConfiguration classifies a failed Configuration.Validate call
// (spec §7: "Invalid input ... fails fast with a classified error").
var ErrInvalidConfiguration = errors.New("config: invalid configuration")

// Validate checks the §6/§7/§8 numeric constraints: grid sizes at least 2
// (with N_w required odd only once it's large enough to have a center
// cell), a non-degenerate speed range, and a non-degenerate, positive
// horizon range. All violations are collected and returned together via
// go.uber.org/multierr, rather than failing on the first one, so a caller
// fixing a scenario file sees every problem at once.
//
// §6's table says "num_width ... all >= 3; N_w odd", but §7 names "N_* < 2"
// as the only invalid grid size, and §8 scenario S5 requires
// N_w=N_v=N_t=2 to succeed end to end. N_w=2 has no central lateral cell
// for the odd-width "center band" rule to apply to, so it is accepted
// without the oddness constraint; N_w>=3 still must be odd. See DESIGN.md
// Open Question 7.
func (c Configuration) Validate() error {
	var errs error

	if c.NumWidth < 2 {
		errs = multierr.Append(errs, errors.New("num_width must be >= 2"))
	} else if c.NumWidth > 2 && c.NumWidth%2 == 0 {
		errs = multierr.Append(errs, errors.New("num_width must be odd when greater than 2"))
	}
	if c.NumSpeed < 2 {
		errs = multierr.Append(errs, errors.New("num_speed must be >= 2"))
	}
	if c.NumT < 2 {
		errs = multierr.Append(errs, errors.New("num_t must be >= 2"))
	}
	if c.HighestSpeed <= c.LowestSpeed {
		errs = multierr.Append(errs, errors.New("highest_speed must exceed lowest_speed"))
	}
	if c.MaxT <= c.MinT {
		errs = multierr.Append(errs, errors.New("max_t must exceed min_t"))
	}
	if c.MinT <= 0 {
		errs = multierr.Append(errs, errors.New("min_t must be positive"))
	}
	if c.TickT <= 0 {
		errs = multierr.Append(errs, errors.New("tick_t must be positive"))
	}
	if c.MaxSpeed <= 0 {
		errs = multierr.Append(errs, errors.New("max_speed must be positive"))
	}
	if c.VehicleLength <= 0 || c.VehicleWidth <= 0 {
		errs = multierr.Append(errs, errors.New("vehicle_length and vehicle_width must be positive"))
	}

	if errs != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, errs)
	}
	return nil
}
