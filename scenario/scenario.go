package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/jumpsim/entity"
	"github.com/oomph-ac/jumpsim/input"
	"github.com/oomph-ac/jumpsim/oerror"
	"github.com/oomph-ac/jumpsim/player"
	"github.com/oomph-ac/jumpsim/world"
	"github.com/pelletier/go-toml"
)

// Scenario is a scripted run: how the player starts and which inputs change before which tick.
type Scenario struct {
	Name   string `toml:"name"`
	Ticks  int    `toml:"ticks"`
	Player Player `toml:"player"`
	Steps  []Step `toml:"step"`
}

// Player is the starting state of the player. Unset fields keep the player defaults.
type Player struct {
	Pos      []float64 `toml:"pos"`
	Vel      []float64 `toml:"vel"`
	Angle    *float64  `toml:"angle"`
	Ducked   bool      `toml:"ducked"`
	Ducking  bool      `toml:"ducking"`
	OnGround bool      `toml:"on_ground"`
	Floor    *float64  `toml:"floor"`
	// Launcher names the launcher preset. Setting it implies Weapon.
	Launcher string `toml:"launcher"`
	// Weapon arms the player with the stock launcher when Launcher is empty.
	Weapon bool `toml:"weapon"`
}

// Step changes the inputs or the player right before tick Tick runs.
type Step struct {
	Tick    int      `toml:"tick"`
	Press   []string `toml:"press"`
	Value   *float64 `toml:"value"`
	Release []string `toml:"release"`
	Angle   *float64 `toml:"angle"`
	// Floor swaps the floor of the player for a new floor at this height.
	Floor *float64 `toml:"floor"`
}

// Load reads and validates the scenario file at path. Scenarios without a name are named after
// the file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading scenario: %w", err)
	}
	sc, err := parse(data, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// LoadAll loads every scenario in paths. Outputs are named after the scenario, so two scenarios
// with the same name are rejected.
func LoadAll(paths ...string) ([]*Scenario, error) {
	scenarios := make([]*Scenario, 0, len(paths))
	seen := make(map[string]string, len(paths))
	for _, path := range paths {
		sc, err := Load(path)
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[sc.Name]; ok {
			return nil, oerror.New("scenarios %s and %s are both named %q", prev, path, sc.Name)
		}
		seen[sc.Name] = path
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}

// Parse decodes and validates a scenario. Steps are sorted by tick, keeping the file order of
// steps for the same tick.
func Parse(data []byte) (*Scenario, error) {
	return parse(data, "")
}

func parse(data []byte, name string) (*Scenario, error) {
	var sc Scenario
	if err := toml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("error decoding scenario: %w", err)
	}
	if sc.Name == "" {
		sc.Name = name
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	sort.SliceStable(sc.Steps, func(i, j int) bool {
		return sc.Steps[i].Tick < sc.Steps[j].Tick
	})
	return &sc, nil
}

// Validate reports the first problem that would make the scenario fail while running.
func (sc *Scenario) Validate() error {
	if sc.Name == "" {
		return oerror.New("scenario has no name")
	}
	if sc.Ticks <= 0 {
		return oerror.New("scenario %q must run at least one tick, got %d", sc.Name, sc.Ticks)
	}
	if err := vec3(sc.Player.Pos, "player.pos"); err != nil {
		return err
	}
	if err := vec3(sc.Player.Vel, "player.vel"); err != nil {
		return err
	}
	if err := angle(sc.Player.Angle, "player.angle"); err != nil {
		return err
	}
	if sc.Player.Launcher != "" {
		if _, err := entity.LauncherByName(sc.Player.Launcher); err != nil {
			return err
		}
	}
	for i, st := range sc.Steps {
		if st.Tick < 0 || st.Tick >= sc.Ticks {
			return oerror.New("step %d: tick %d outside [0, %d)", i, st.Tick, sc.Ticks)
		}
		if st.Value != nil && (*st.Value < 0 || *st.Value > 1) {
			return oerror.New("step %d: value %v outside [0, 1]", i, *st.Value)
		}
		if err := angle(st.Angle, fmt.Sprintf("step %d: angle", i)); err != nil {
			return err
		}
		if _, err := parseKeys(st.Press); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		if _, err := parseKeys(st.Release); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

func vec3(v []float64, field string) error {
	if v != nil && len(v) != 3 {
		return oerror.New("%s needs 3 components, got %d", field, len(v))
	}
	return nil
}

// angle checks that a pitch stays within one turn.
func angle(a *float64, field string) error {
	if a != nil && (*a < -360 || *a > 360) {
		return oerror.New("%s %v outside [-360, 360]", field, *a)
	}
	return nil
}

func parseKeys(names []string) ([]input.Key, error) {
	keys := make([]input.Key, 0, len(names))
	for _, n := range names {
		k, err := input.ParseKey(n)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// Options returns the player options for the starting state.
func (p Player) Options() ([]player.Option, error) {
	var opts []player.Option
	if p.Pos != nil {
		opts = append(opts, player.WithPos(mgl64.Vec3{p.Pos[0], p.Pos[1], p.Pos[2]}))
	}
	if p.Vel != nil {
		opts = append(opts, player.WithVel(mgl64.Vec3{p.Vel[0], p.Vel[1], p.Vel[2]}))
	}
	if p.Angle != nil {
		opts = append(opts, player.WithAngle(*p.Angle))
	}
	if p.Floor != nil {
		opts = append(opts, player.WithFloor(world.NewFloor(*p.Floor)))
	}
	opts = append(opts,
		player.WithDucked(p.Ducked),
		player.WithDucking(p.Ducking),
		player.WithOnGround(p.OnGround),
	)

	if p.Launcher == "" && !p.Weapon {
		return opts, nil
	}
	l := entity.Stock
	if p.Launcher != "" {
		var err error
		if l, err = entity.LauncherByName(p.Launcher); err != nil {
			return nil, err
		}
	}
	return append(opts, player.WithWeapon(l)), nil
}

// apply performs the step on in and p.
func (st Step) apply(in *input.State, p *player.Player) {
	value := 1.0
	if st.Value != nil {
		value = *st.Value
	}
	keys, _ := parseKeys(st.Press)
	for _, k := range keys {
		in.Press(k, value)
	}
	keys, _ = parseKeys(st.Release)
	in.ReleaseKeys(keys...)
	if st.Angle != nil {
		p.Angle = *st.Angle
	}
	if st.Floor != nil {
		p.Floor = world.NewFloor(*st.Floor)
	}
}
