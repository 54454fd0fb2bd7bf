package medication

import "github.com/google/uuid"

// Medication is reference data shared across apothecaries.
type Medication struct {
	ID   uuid.UUID
	Name string
}
