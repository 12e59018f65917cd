package parameter

// Fish population
const (
	// FishCount is the default population size
	FishCount = 12

	// SpawnExtent is the half-width of the square spawn region centred on the origin
	SpawnExtent = 60.0

	// ExclusionRadius keeps spawns clear of the dock on both axes
	ExclusionRadius = 10.0

	// SwimHeight is the fixed Z of every wandering fish, just below the surface
	SwimHeight = 1.0

	// SwimSpeedScale multiplies the heading, components of which lie in [-1, 1]
	SwimSpeedScale = 2.0

	// RetargetMin and RetargetMax bound the per-fish heading countdown in seconds
	RetargetMin = 3.0
	RetargetMax = 5.0

	// CatchRadius is the horizontal distance at which a grounded lure hooks a fish
	CatchRadius = 5.0

	// FishScale is the uniform render scale of a fish
	FishScale = 2.0

	// SpawnMaxAttempts bounds rejection sampling; a region smaller than the exclusion zone
	// falls back to the region corner
	SpawnMaxAttempts = 1024
)

// Trophy rack, caught fish are hung here in slot order
var (
	TrophyOriginX = -4.0
	TrophyOriginY = -9.0
	TrophyOriginZ = 5.0
	TrophySpacing = 1.5
)
