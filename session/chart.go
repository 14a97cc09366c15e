package session

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/oomph-ac/jumpsim/internal"
	"github.com/samber/lo"
)

// RenderChart writes an HTML page plotting the player and rocket paths of t in 3D.
func RenderChart(w io.Writer, t Trajectory) error {
	line := charts.NewLine3D()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: t.Name, Subtitle: "digest " + t.Digest}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "x"}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "y"}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "z"}),
	)
	line.AddSeries("player", chartData(t.Player))
	for _, r := range t.Rockets {
		line.AddSeries(fmt.Sprintf("rocket %d", r.ID), chartData(r.Positions))
	}
	return line.Render(w)
}

// WriteChart renders the chart of t to dir/<name>.html and returns the path written. Nothing is
// written if rendering fails.
func WriteChart(dir string, t Trajectory) (string, error) {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		internal.BufferPool.Put(buf)
	}()
	if err := RenderChart(buf, t); err != nil {
		return "", fmt.Errorf("render chart: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, t.Name+".html")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create chart: %w", err)
	}
	if _, err := buf.WriteTo(f); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write chart: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close chart: %w", err)
	}
	return path, nil
}

func chartData(points [][3]float64) []opts.Chart3DData {
	return lo.Map(points, func(p [3]float64, _ int) opts.Chart3DData {
		return opts.Chart3DData{Value: []interface{}{p[0], p[1], p[2]}}
	})
}
