package builder

// Method names used to prefix constructor errors.
const (
	MethodPath        = "Path"
	MethodCycle       = "Cycle"
	MethodStar        = "Star"
	MethodOutStar     = "OutStar"
	MethodGrid        = "Grid"
	MethodComplete    = "Complete"
	MethodIsolated    = "Isolated"
	MethodRandomGraph = "RandomGraph"
	MethodPowerLaw    = "PowerLaw"
)

// Minimum sizes per topology.
const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minStarLeaves    = 1
	minGridSide      = 1
	minCompleteNodes = 1
	minIsolatedNodes = 1
	minRandomNodes   = 1
	minPowerLawNodes = 2
)

// DefaultAttachment is the number of edges each new vertex adds in PowerLaw.
const DefaultAttachment = 2

// maxAttachTries bounds rejection sampling of distinct targets in PowerLaw.
const maxAttachTries = 32
