// Package main is a workload driver for the spatial index. It fills the
// twelve-phase index with generated points from concurrent per-phase
// writers, times queries against the populated trees and prints occupancy
// and capacity reports.
package main

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/yosuke-furukawa/json5/encoding/json5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/octomesh/spatial/geometry"
	"github.com/octomesh/spatial/octant"
	"github.com/octomesh/spatial/octree"
	"github.com/octomesh/spatial/phase"
	"github.com/octomesh/spatial/utils"
)

const (
	flagConfig     = "config"
	flagDebug      = "debug"
	flagSeed       = "seed"
	flagPoints     = "points"
	flagQueries    = "queries"
	flagDepth      = "depth"
	flagSideLength = "side-length"
)

var logger golog.Logger = zap.NewNop().Sugar()

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:   "spatialbench",
		Usage:  "exercise the twelve-phase spatial index and report its behavior",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Usage:   "Load workload parameters from `FILE` (json5)",
			},
			&cli.BoolFlag{
				Name:  flagDebug,
				Usage: "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool(flagDebug) {
				logger = golog.NewDebugLogger("spatialbench")
			} else {
				logger = zap.NewNop().Sugar()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "fill the index from twelve concurrent writers and time queries against it",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: flagSeed, Usage: "seed for the workload generator"},
					&cli.IntFlag{Name: flagPoints, Usage: "points to insert per phase"},
					&cli.IntFlag{Name: flagQueries, Usage: "queries to run per query kind"},
					&cli.UintFlag{Name: flagDepth, Usage: "maximum tree depth"},
					&cli.Float64Flag{Name: flagSideLength, Usage: "side length of the cubic region"},
				},
				Action: runWorkload,
			},
			{
				Name:  "capacity",
				Usage: "print the closed-form node capacity table",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: flagDepth, Value: 8, Usage: "deepest level to include"},
				},
				Action: printCapacity,
			},
		},
	}
}

// benchConfig holds the workload parameters. A json5 config file can set any
// of them and command line flags win over the file.
type benchConfig struct {
	SideLength float64 `json:"side_length"`
	MaxDepth   uint8   `json:"max_depth"`
	Points     int     `json:"points"`
	Queries    int     `json:"queries"`
	Seed       int64   `json:"seed"`
}

func defaultConfig() benchConfig {
	return benchConfig{
		SideLength: 100,
		MaxDepth:   4,
		Points:     2000,
		Queries:    200,
		Seed:       42,
	}
}

func parseConfig(data []byte) (benchConfig, error) {
	cfg := defaultConfig()
	if err := json5.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "error parsing config")
	}
	return cfg, nil
}

func loadConfig(c *cli.Context) (benchConfig, error) {
	cfg := defaultConfig()
	if path := c.String(flagConfig); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrap(err, "error reading config file")
		}
		if cfg, err = parseConfig(data); err != nil {
			return cfg, err
		}
	}
	if c.IsSet(flagSeed) {
		cfg.Seed = c.Int64(flagSeed)
	}
	if c.IsSet(flagPoints) {
		cfg.Points = c.Int(flagPoints)
	}
	if c.IsSet(flagQueries) {
		cfg.Queries = c.Int(flagQueries)
	}
	if c.IsSet(flagDepth) {
		cfg.MaxDepth = uint8(c.Uint(flagDepth))
	}
	if c.IsSet(flagSideLength) {
		cfg.SideLength = c.Float64(flagSideLength)
	}
	if cfg.SideLength <= 0 {
		return cfg, errors.Errorf("side length must be positive, got %v", cfg.SideLength)
	}
	if cfg.Points < 0 || cfg.Queries < 0 {
		return cfg, errors.New("points and queries must not be negative")
	}
	return cfg, nil
}

func randomPointIn(bounds geometry.BoundingBox, r *rand.Rand) r3.Vector {
	return geometry.NewVector(
		utils.SampleRandomFloat64Range(bounds.Min.X, bounds.Max.X, r),
		utils.SampleRandomFloat64Range(bounds.Min.Y, bounds.Max.Y, r),
		utils.SampleRandomFloat64Range(bounds.Min.Z, bounds.Max.Z, r),
	)
}

func runWorkload(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger.Debugf("running workload with config %+v", cfg)

	wallClock, err := phase.NewClock(24*time.Hour, nil)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "workload started during cycle %s (%s of a 24h cycle)\n",
		wallClock.Now(), wallClock.Now().ClockString())

	bounds := geometry.NewCubeBox(geometry.NewVector(0, 0, 0), cfg.SideLength)
	temporal := octree.NewTemporal[int](bounds, cfg.MaxDepth, logger)

	// Twelve writers, one per phase shard, each with its own generator so
	// the workload stays deterministic under concurrency. Each writer stays
	// on its own row of the occupancy matrix, so the counts need no lock.
	occupancy := phase.NewMatrix[int]()
	rootCenter := bounds.Center()
	buildStart := time.Now()
	var group errgroup.Group
	for phaseIdx := 0; phaseIdx < octree.NumPhases; phaseIdx++ {
		phaseIdx := phaseIdx
		group.Go(func() error {
			key := phase.New(phaseIdx)
			r := rand.New(rand.NewSource(cfg.Seed + int64(phaseIdx)))
			for i := 0; i < cfg.Points; i++ {
				p := randomPointIn(bounds, r)
				temporal.Insert(phaseIdx, p, i)
				region := octant.FromPosition(p, rootCenter)
				occupancy.Set(key, region, occupancy.At(key, region)+1)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}
	buildElapsed := time.Since(buildStart)

	if err := temporal.CheckInvariants(); err != nil {
		return errors.Wrap(err, "index failed validation after build")
	}

	global := temporal.GlobalStats()
	fmt.Fprintf(c.App.Writer, "inserted %d points across %d phases in %v\n",
		cfg.Points*octree.NumPhases, octree.NumPhases, buildElapsed)
	fmt.Fprintf(c.App.Writer, "index holds %d nodes, %d occupied leaves, deepest level %d\n",
		global.TotalNodes, global.TotalData, global.MaxDepthReached)

	var busiest int
	var busiestPhase phase.Phase
	var busiestOctant octant.Octant
	occupancy.Apply(func(p phase.Phase, o octant.Octant, cell *int) {
		if *cell > busiest {
			busiest, busiestPhase, busiestOctant = *cell, p, o
		}
	})
	fmt.Fprintf(c.App.Writer, "busiest region: %s, root octant %s, %d inserts\n",
		busiestPhase, busiestOctant, busiest)

	r := rand.New(rand.NewSource(cfg.Seed))
	if err := timeBoxQueries(c.App.Writer, temporal, bounds, cfg, r); err != nil {
		return err
	}
	return timeRadiusQueries(c.App.Writer, temporal, bounds, cfg, r)
}

func timeBoxQueries(out io.Writer, temporal *octree.Temporal[int], bounds geometry.BoundingBox, cfg benchConfig, r *rand.Rand) error {
	latencies := make([]float64, 0, cfg.Queries)
	found := 0
	for i := 0; i < cfg.Queries; i++ {
		phaseIdx := utils.SampleRandomIntRange(0, octree.NumPhases-1, r)
		corner := randomPointIn(bounds, r)
		span := utils.SampleRandomFloat64Range(0.05, 0.4, r) * cfg.SideLength
		query := geometry.NewBoundingBox(corner, corner.Add(geometry.NewVector(span, span, span)))

		start := time.Now()
		found += len(temporal.QueryBoundingBox(phaseIdx, query))
		latencies = append(latencies, float64(time.Since(start).Nanoseconds())/1e3)
	}
	return reportLatencies(out, "box queries", found, latencies)
}

func timeRadiusQueries(out io.Writer, temporal *octree.Temporal[int], bounds geometry.BoundingBox, cfg benchConfig, r *rand.Rand) error {
	latencies := make([]float64, 0, cfg.Queries)
	found := 0
	for i := 0; i < cfg.Queries; i++ {
		phaseIdx := utils.SampleRandomIntRange(0, octree.NumPhases-1, r)
		center := randomPointIn(bounds, r)
		radius := utils.SampleRandomFloat64Range(0.05, 0.25, r) * cfg.SideLength

		start := time.Now()
		found += len(temporal.QueryRadius(phaseIdx, center, radius))
		latencies = append(latencies, float64(time.Since(start).Nanoseconds())/1e3)
	}
	return reportLatencies(out, "radius queries", found, latencies)
}

func reportLatencies(out io.Writer, name string, found int, latencies []float64) error {
	if len(latencies) == 0 {
		fmt.Fprintf(out, "%s: skipped\n", name)
		return nil
	}
	mean, err := stats.Mean(latencies)
	if err != nil {
		return err
	}
	median, err := stats.Median(latencies)
	if err != nil {
		return err
	}
	p95, err := stats.Percentile(latencies, 95)
	if err != nil {
		return err
	}
	p99, err := stats.Percentile(latencies, 99)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: %d runs, %d payloads found, mean %.1fus, median %.1fus, p95 %.1fus, p99 %.1fus\n",
		name, len(latencies), found, mean, median, p95, p99)
	return nil
}

func printCapacity(c *cli.Context) error {
	depth := c.Uint(flagDepth)
	if depth > 20 {
		return errors.Errorf("depth %d exceeds the range of the capacity formulas (max 20)", depth)
	}
	fmt.Fprintf(c.App.Writer, "depth  total nodes        leaves\n")
	for d := uint8(0); d <= uint8(depth); d++ {
		fmt.Fprintf(c.App.Writer, "%5d  %-18d %d\n",
			d, octree.TheoreticalNodeCount(d), octree.LeafCountAtDepth(d))
	}
	return nil
}
