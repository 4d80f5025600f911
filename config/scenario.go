package config

import (
	"context"
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/motionstack/frenetplan/frenet"
	"github.com/motionstack/frenetplan/logging"
)

// Scenario bundles one planning call's inputs (spec §6: "Planning call
// inputs") with the Configuration it should be run under.
type Scenario struct {
	Configuration Configuration `json:"configuration"`

	Waypoints frenet.Waypoints `json:"waypoints"`
	Start     frenet.State     `json:"start"`

	LaneID       int              `json:"lane_id"`
	LeftWidth    float64          `json:"left_width"`
	RightWidth   float64          `json:"right_width"`
	CurrentSpeed float64          `json:"current_speed"`
	Obstacles    []frenet.Obstacle `json:"obstacles"`

	CheckCollision bool `json:"check_collision"`
	UseAsync       bool `json:"use_async"`
}

// Read loads and validates a Scenario from a JSON file, mirroring the
// teacher's config.Read(ctx, path, logger, ...) shape.
func Read(ctx context.Context, path string, logger logging.Logger) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: reading scenario file %q", path)
	}

	var scenario Scenario
	if err := json.Unmarshal(data, &scenario); err != nil {
		return nil, errors.Wrapf(err, "config: parsing scenario file %q", path)
	}

	if err := scenario.Configuration.Validate(); err != nil {
		return nil, err
	}
	if err := scenario.Waypoints.Validate(); err != nil {
		return nil, errors.Wrap(err, "config: invalid waypoints")
	}

	logger.Debugf("loaded scenario from %s: %d waypoints, %d obstacles", path, len(scenario.Waypoints), len(scenario.Obstacles))
	return &scenario, nil
}
