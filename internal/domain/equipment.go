package domain

// Lock and bike state as reported by the equipment subsystem. These values
// mirror the equipment service's wire vocabulary; the orchestrator only
// inspects them, it never persists them.

type LockStatus string

const (
	// LockStatusOccupied means a bike is docked and available to rent.
	LockStatusOccupied LockStatus = "OCCUPIED"
	// LockStatusAvailable means the dock is empty and ready to receive a bike.
	LockStatusAvailable LockStatus = "AVAILABLE"
	LockStatusDefect    LockStatus = "DEFECT"
)

type Lock struct {
	ID     int32      `json:"id"`
	Status LockStatus `json:"status"`
}

type BikeStatus string

const (
	BikeStatusAvailable BikeStatus = "AVAILABLE"
	BikeStatusInUse     BikeStatus = "IN_USE"
	BikeStatusDefect    BikeStatus = "DEFECT"
)

type Bike struct {
	ID     int32      `json:"id"`
	Brand  string     `json:"brand"`
	Model  string     `json:"model"`
	Year   string     `json:"year"`
	Number int32      `json:"number"`
	Status BikeStatus `json:"status"`
}
