package hiero

// OperationType describes the type of an operation executed over a Dataset, used for logging and metrics
type OperationType string

const (
	// MapOperationType indicates that a Map is being applied
	MapOperationType OperationType = "map"
	// SketchOperationType indicates that a Sketch is being computed
	SketchOperationType OperationType = "sketch"
	// PrepareOperationType indicates that sketch workspaces are being initialized
	PrepareOperationType OperationType = "prepare"
)
