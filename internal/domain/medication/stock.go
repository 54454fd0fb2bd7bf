package medication

import "github.com/google/uuid"

// StockEntry is the availability record of one medication at one apothecary;
// the pair of ids is its composite key.
type StockEntry struct {
	ApothecaryID uuid.UUID
	MedicationID uuid.UUID
	Quantity     Quantity
}
