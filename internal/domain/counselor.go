package domain

// Counselor is the bookable staff listing entry.
type Counselor struct {
	ID             string
	Name           string
	Specialization string
	Available      bool
}
