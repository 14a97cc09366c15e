package game

// Engine-wide movement constants. Names follow the console variables they mirror.
const (
	TickDuration = 3.0 / 200.0

	MaxVelocity = 3500.0
	MinAngle    = -89.0
	MaxAngle    = 89.0
	JumpSpeed   = 289.0

	SvAccelerate    = 10.0
	SvAirAccelerate = 10.0
	SvFriction      = 4.0
	SvGravity       = 800.0
	SvStopSpeed     = 100.0
	SvStepSize      = 18.0

	// client/in_main.cpp
	ClForwardSpeed = 450.0
	ClBackSpeed    = 450.0
	ClSideSpeed    = 450.0
	ClUpSpeed      = 320.0

	// CoordResolution is the smallest position unit, used as the trace back-off.
	CoordResolution = 0.03125
	AirSpeedCap     = 30.0
	// WishSpeedThreshold is the wish speed below which walking acceleration is boosted.
	WishSpeedThreshold = 100.0 * SvFriction / SvAccelerate

	BackSpeedClampMin        = 100.0
	BackSpeedClampFactor     = 0.9
	BunnyJumpMaxSpeedFactor  = 1.2
	DuckSpeedCrop            = 0.33333333
	VerticalLaunchSpeed      = 250.0
	GroundBandMin            = 1.0
	GroundBandMax            = 2.0
	LandingDistance          = 2.0
	DuckJumpHeightAdjustment = 20.0

	// TF_AIRDUCKED_COUNT
	AirDuckLimit = 2
	// TF_TIME_TO_DUCK
	ReduckTime = 0.3
	// TIME_TO_DUCK
	DuckingTime = 0.2
	// TIME_TO_UNDUCK
	UnduckingTime = 0.3

	// DefaultDuckTimer is the idle value of the duck and reduck timers.
	DefaultDuckTimer = 10.0
)
