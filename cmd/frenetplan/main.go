// Command frenetplan is a small runnable example wiring the planner library
// packages together: spec's "Telemetry hook" and "Planning call inputs"
// made concrete as a one-shot CLI over a scenario file.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/motionstack/frenetplan/config"
	"github.com/motionstack/frenetplan/logging"
	"github.com/motionstack/frenetplan/planner"
	"github.com/motionstack/frenetplan/telemetry"
)

func main() {
	app := &cli.App{
		Name:  "frenetplan",
		Usage: "run a Frenet-frame trajectory planning call from a scenario file",
		Commands: []*cli.Command{
			{
				Name:  "plan",
				Usage: "load a scenario and run one planning call",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "scenario",
						Usage:    "path to a scenario JSON file",
						Required: true,
					},
				},
				Action: runPlan,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runPlan(cCtx *cli.Context) error {
	logger := logging.Global()
	ctx := context.Background()

	scenario, err := config.Read(ctx, cCtx.String("scenario"), logger)
	if err != nil {
		return err
	}

	agg := telemetry.NewAggregator()
	p := planner.New(scenario.Configuration, logger, agg)

	req := planner.PlanRequest{
		Waypoints:      scenario.Waypoints,
		Start:          scenario.Start,
		LaneID:         scenario.LaneID,
		LeftWidth:      scenario.LeftWidth,
		RightWidth:     scenario.RightWidth,
		CurrentSpeed:   scenario.CurrentSpeed,
		Obstacles:      scenario.Obstacles,
		CheckCollision: scenario.CheckCollision,
		UseAsync:       scenario.UseAsync,
	}

	path, err := p.Plan(ctx, req)
	if err != nil {
		return err
	}

	if path == nil {
		fmt.Fprintln(cCtx.App.Writer, "no feasible trajectory")
	} else {
		fmt.Fprintf(cCtx.App.Writer, "winning trajectory: %d ticks, lane %d, final_cost=%.4f\n",
			path.Ticks(), path.LaneID, path.FinalCost())
	}

	totals := agg.Totals()
	fmt.Fprintf(cCtx.App.Writer, "telemetry: predict=%d sample=%d search=%d validate=%d (pass=%d) collision_checks=%d\n",
		totals.PredictCount, totals.SampleCount, totals.SearchCount,
		totals.ValidateCount, totals.ValidatePassCount, totals.CollisionCheckCount)

	return nil
}
