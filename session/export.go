package session

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/oomph-ac/jumpsim/internal"
	"github.com/oomph-ac/jumpsim/oerror"
	"github.com/samber/lo"
)

// CurrentTrajectoryVer is written into every exported trajectory. Decoding refuses other versions.
const CurrentTrajectoryVer = "1"

// Format is an encoding of exported trajectories.
type Format string

const (
	FormatJSON Format = "json"
	FormatCBOR Format = "cbor"
)

// ParseFormat returns the format with the given name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatJSON, FormatCBOR:
		return f, nil
	}
	return "", oerror.New("unknown output format %q", name)
}

// Trajectory is the exported form of a Recording.
type Trajectory struct {
	Version   string             `json:"version"`
	RunID     string             `json:"run_id"`
	Name      string             `json:"name"`
	FloatMode bool               `json:"float_mode"`
	Ticks     int                `json:"ticks"`
	Digest    string             `json:"digest"`
	Player    [][3]float64       `json:"player"`
	Rockets   []RocketTrajectory `json:"rockets"`
}

// RocketTrajectory is the exported form of a RocketTrack.
type RocketTrajectory struct {
	ID          uint64       `json:"id"`
	CreatedTick int          `json:"created_tick"`
	Exploded    bool         `json:"exploded"`
	Explosion   [3]float64   `json:"explosion"`
	Positions   [][3]float64 `json:"positions"`
}

// Trajectory converts the recording into its exported form under a fresh run id.
func (s *Session) Trajectory(name string) Trajectory {
	rec := s.rec
	return Trajectory{
		Version:   CurrentTrajectoryVer,
		RunID:     uuid.NewString(),
		Name:      name,
		FloatMode: s.sim.FloatMode(),
		Ticks:     rec.Ticks(),
		Digest:    fmt.Sprintf("%016x", rec.Digest()),
		Player:    points(rec.Player()),
		Rockets: lo.Map(rec.Tracks(), func(t *RocketTrack, _ int) RocketTrajectory {
			return RocketTrajectory{
				ID:          t.ID,
				CreatedTick: t.CreatedTick,
				Exploded:    t.Exploded,
				Explosion:   t.Explosion,
				Positions:   points(t.Positions),
			}
		}),
	}
}

func points(v []mgl64.Vec3) [][3]float64 {
	return lo.Map(v, func(p mgl64.Vec3, _ int) [3]float64 {
		return p
	})
}

// Encode writes t to w in format f, zstd compressed if compress is set.
func Encode(w io.Writer, t Trajectory, f Format, compress bool) error {
	var (
		data []byte
		err  error
	)
	switch f {
	case FormatJSON:
		data, err = json.Marshal(t)
	case FormatCBOR:
		data, err = cbor.Marshal(t)
	default:
		return oerror.New("unknown output format %q", f)
	}
	if err != nil {
		return fmt.Errorf("encode trajectory: %w", err)
	}
	if !compress {
		_, err = w.Write(data)
		return err
	}

	enc, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("create zstd writer: %w", err)
	}
	if _, err := enc.Write(data); err != nil {
		_ = enc.Close()
		return fmt.Errorf("compress trajectory: %w", err)
	}
	return enc.Close()
}

// Decode reads a trajectory written by Encode with the same format and compression.
func Decode(r io.Reader, f Format, compressed bool) (Trajectory, error) {
	if compressed {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return Trajectory{}, fmt.Errorf("create zstd reader: %w", err)
		}
		defer dec.Close()
		r = dec
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return Trajectory{}, fmt.Errorf("read trajectory: %w", err)
	}

	var t Trajectory
	switch f {
	case FormatJSON:
		err = json.Unmarshal(data, &t)
	case FormatCBOR:
		err = cbor.Unmarshal(data, &t)
	default:
		return Trajectory{}, oerror.New("unknown output format %q", f)
	}
	if err != nil {
		return Trajectory{}, fmt.Errorf("decode trajectory: %w", err)
	}
	if t.Version != CurrentTrajectoryVer {
		return Trajectory{}, oerror.New("unsupported trajectory version: %q", t.Version)
	}
	return t, nil
}

// FileName returns the name of the file a trajectory called name is written to.
func FileName(name string, f Format, compress bool) string {
	file := name + "." + string(f)
	if compress {
		file += ".zst"
	}
	return file
}

// WriteFile encodes t into dir, replacing any earlier file of the same run name, and returns the path
// written. Nothing is written if encoding fails.
func WriteFile(dir string, t Trajectory, f Format, compress bool) (string, error) {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		internal.BufferPool.Put(buf)
	}()
	if err := Encode(buf, t, f, compress); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, FileName(t.Name, f, compress))
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("write trajectory file: %w", err)
	}
	return path, nil
}
