package game

const (
	ErrorInvalidKey          = "invalid input key %q"
	ErrorInvalidIntensity    = "intensity %v for key %q is outside [0, 1]"
	ErrorNilFloor            = "entity has no floor"
	ErrorRocketParallel      = "rocket %d has zero vertical velocity and can never reach its floor"
	ErrorEyeOffsetFraction   = "ducked eye offset fraction %v outside [0, 1]"
	ErrorRoundingOverflow    = "value %v overflows single precision"
	ErrorZeroLengthDirection = "cannot normalise a zero-length %s"
	ErrorAngleOutOfRange     = "angle %v rad is more than one turn from zero"
)
