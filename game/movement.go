package game

// Soldier class values.
const (
	SoldierMaxSpeed    = 240.0
	SoldierFireRate    = 0.8
	SoldierDeploySpeed = 0.5

	ViewHeightStanding = 68.0
	ViewHeightDucked   = 45.0

	HullCenterStanding = 41.0
	HullCenterDucked   = 31.0

	// SpeedShotFactor is the multiple of walking speed a ducked grounded hit must exceed.
	SpeedShotFactor = 1.2
)

// Knockback scaling of explosion damage.
const (
	KnockbackGroundScale = 5.0
	KnockbackAirScale    = 6.0
	KnockbackDuckedScale = 82.0 / 55.0
	KnockbackMax         = 1000.0
	// ExplosionSinkDistance is how far the explosion is lowered before computing push direction.
	ExplosionSinkDistance = 10.0
	// ExplosionNormalOffset is added to the vertical coordinate of every explosion point.
	ExplosionNormalOffset = 1.0
)

// Aim distance limits for the rocket launcher.
const (
	MinAimDistance = 200.0
	MaxAimDistance = 2000.0
)

var (
	StandingHull = [3]float64{48.0, 48.0, 82.0}
	DuckedHull   = [3]float64{48.0, 48.0, 62.0}
)
