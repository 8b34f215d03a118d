// Command lakenames names water polygons from a list of named points.
//
//	lakenames --points lake_names.json --polygons waters.geojson -o named.geojson
//
// Settings can also come from lakenames.yaml, LAKENAMES_* environment
// variables or a .env file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/cheggaaa/pb/v3/termutil"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/beetlebugorg/lakenames/internal/config"
	"github.com/beetlebugorg/lakenames/internal/metrics"
	"github.com/beetlebugorg/lakenames/internal/report"
	"github.com/beetlebugorg/lakenames/internal/shapefile"
	"github.com/beetlebugorg/lakenames/internal/storage"
	"github.com/beetlebugorg/lakenames/pkg/lakenames"
)

func main() {
	_ = godotenv.Load(".env")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "lakenames:", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	fs := config.Flags("lakenames")
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}
	log := cfg.NewLogger(stderr)
	started := time.Now()

	store := storage.New()

	points, err := loadPoints(ctx, store, cfg.Input.Points)
	if err != nil {
		return err
	}
	log.Info("read points", "source", cfg.Input.Points, "count", len(points))

	fc, err := loadPolygons(ctx, store, cfg.Input.Polygons)
	if err != nil {
		return err
	}
	log.Info("read polygons", "source", cfg.Input.Polygons, "features", len(fc.Features))

	if err := ctx.Err(); err != nil {
		return err
	}

	opts := lakenames.Options{
		Logger:     log,
		DebugNames: cfg.Match.DebugNames,
	}
	var bar *progressBar
	if cfg.Progress {
		bar = &progressBar{w: stderr}
		opts.Progress = bar.update
	}

	stats := lakenames.NewPipeline(cfg.Matching(), opts).Run(points, fc)
	bar.finish()

	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := fc.MarshalIndent()
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	if err := store.Write(ctx, cfg.Output.Path, data); err != nil {
		return err
	}
	digest, err := storage.Digest(data)
	if err != nil {
		return fmt.Errorf("digest output: %w", err)
	}
	log.Info("wrote output", "path", cfg.Output.Path, "bytes", len(data), "digest", digest)

	finished := time.Now()

	if cfg.Output.Report != "" {
		r := &report.Report{
			Started:  started,
			Duration: finished.Sub(started),
			Inputs: report.Inputs{
				Points:   cfg.Input.Points,
				Polygons: cfg.Input.Polygons,
			},
			Output: report.Output{
				Path:   cfg.Output.Path,
				Bytes:  len(data),
				Digest: digest,
			},
			Stats: stats,
		}
		body, err := r.Marshal()
		if err != nil {
			return err
		}
		if err := store.Write(ctx, cfg.Output.Report, body); err != nil {
			return err
		}
		log.Debug("wrote report", "path", cfg.Output.Report)
	}

	if cfg.Output.Metrics != "" {
		m := metrics.New()
		m.Observe(stats, len(data), finished)
		if err := m.WriteTextfile(cfg.Output.Metrics); err != nil {
			return err
		}
		log.Debug("wrote metrics", "path", cfg.Output.Metrics)
	}

	log.Info("done", "stats", stats, slog.Duration("elapsed", finished.Sub(started)))
	return nil
}

func loadPoints(ctx context.Context, store *storage.Store, location string) ([]lakenames.Point, error) {
	data, err := store.Read(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("load points: %w", err)
	}
	points, err := lakenames.ReadPoints(data)
	if err != nil {
		return nil, fmt.Errorf("load points %s: %w", location, err)
	}
	return points, nil
}

func loadPolygons(ctx context.Context, store *storage.Store, location string) (*lakenames.FeatureCollection, error) {
	if shapefile.IsShapefile(location) {
		// go-shp opens the .shx and .dbf siblings itself.
		path := strings.TrimPrefix(location, "file://")
		if strings.Contains(path, "://") {
			return nil, fmt.Errorf("load polygons %s: shapefiles must be local", location)
		}
		fc, err := shapefile.Read(path)
		if err != nil {
			return nil, fmt.Errorf("load polygons: %w", err)
		}
		return fc, nil
	}

	data, err := store.Read(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("load polygons: %w", err)
	}
	fc, err := lakenames.ReadFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("load polygons %s: %w", location, err)
	}
	return fc, nil
}

// progressBar starts a pb bar on the first update. A nil bar ignores calls.
type progressBar struct {
	w   io.Writer
	bar *pb.ProgressBar
}

func (p *progressBar) update(done, total int) {
	if p.bar == nil {
		p.bar = pb.New(total)
		p.bar.SetWriter(p.w)
		p.bar.Set("prefix", "associating")
		p.bar.SetRefreshRate(time.Second)
		if w, err := termutil.TerminalWidth(); w == 0 || err != nil {
			p.bar.SetTemplateString(`{{with string . "prefix"}}{{.}} {{end}}{{counters . }} {{percent . }} {{rtime . "ETA %s"}}` + "\n")
		}
		p.bar.Start()
	}
	p.bar.SetCurrent(int64(done))
}

func (p *progressBar) finish() {
	if p == nil || p.bar == nil {
		return
	}
	p.bar.Finish()
	p.bar = nil
}
