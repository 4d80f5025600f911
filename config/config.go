// Package config defines the planner's Configuration struct (spec §6) and
// loads/validates it (and full planning scenarios) from JSON, mirroring the
// teacher's config.Read(ctx, path, logger, ...) shape.
package config

import "github.com/motionstack/frenetplan/constraints"

// Configuration holds the physical limits, grid sizing, and cost weights a
// planning call is run with. All fields are required; Validate enforces the
// constraints spec §6/§7 name.
type Configuration struct {
	// Kinematic limits (§4.F).
	MaxSpeed      float64 `json:"max_speed"`
	MaxAccel      float64 `json:"max_accel"`
	MaxDecel      float64 `json:"max_decel"`
	MaxCurvature  float64 `json:"max_curvature"`

	// Ego rectangle (§4.G).
	VehicleLength float64 `json:"vehicle_length"`
	VehicleWidth  float64 `json:"vehicle_width"`
	// RearAxleToCenter is the vehicle-geometry constant L_r (§6).
	RearAxleToCenter float64 `json:"rear_axle_to_center"`

	// Sampling grid (§4.C, §6).
	CenterOffset float64 `json:"center_offset"`
	NumWidth     int     `json:"num_width"`
	NumSpeed     int     `json:"num_speed"`
	NumT         int     `json:"num_t"`
	LowestSpeed  float64 `json:"lowest_speed"`
	HighestSpeed float64 `json:"highest_speed"`
	MinT         float64 `json:"min_t"`
	MaxT         float64 `json:"max_t"`
	TickT        float64 `json:"tick_t"`

	// Obstacle inflation (§4.G).
	SafetyMarginLon float64 `json:"safety_margin_lon"`
	SafetyMarginLat float64 `json:"safety_margin_lat"`

	// Cost weights (§4.C, §4.D).
	KJerk float64 `json:"k_jerk"`
	KTime float64 `json:"k_time"`
	KDiff float64 `json:"k_diff"`
	KLat  float64 `json:"k_lat"`
	KLon  float64 `json:"k_lon"`
}

// ConstraintConfig projects the kinematic bounds into the shape the
// constraints package checks against.
func (c Configuration) ConstraintConfig() constraints.Config {
	return constraints.Config{
		MaxSpeed:     c.MaxSpeed,
		MaxAccel:     c.MaxAccel,
		MaxDecel:     c.MaxDecel,
		MaxCurvature: c.MaxCurvature,
	}
}
