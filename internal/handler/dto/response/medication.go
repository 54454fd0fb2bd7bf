package response

import (
	"encoding/json"

	"github.com/google/uuid"

	"apothecary/internal/domain/medication"
	"apothecary/internal/usecase/queries"
)

// StockMatchResponse is one apothecary carrying the searched medication.
// Quantity is the tagged union wire shape produced by the domain marshaller.
type StockMatchResponse struct {
	Quantity   json.RawMessage    `json:"quantity"`
	Apothecary ApothecaryResponse `json:"apothecary"`
}

type MedicationGroupResponse struct {
	ID      uuid.UUID            `json:"id"`
	Name    string               `json:"name"`
	Results []StockMatchResponse `json:"results"`
}

func FromMedicationGroups(groups []queries.MedicationGroup) ([]MedicationGroupResponse, error) {
	out := make([]MedicationGroupResponse, len(groups))
	for i, group := range groups {
		results := make([]StockMatchResponse, len(group.Results))
		for j, match := range group.Results {
			quantity, err := medication.MarshalQuantity(match.Quantity)
			if err != nil {
				return nil, err
			}
			results[j] = StockMatchResponse{
				Quantity:   quantity,
				Apothecary: FromApothecaryWithSchedules(match.Apothecary),
			}
		}
		out[i] = MedicationGroupResponse{
			ID:      group.Medication.ID,
			Name:    group.Medication.Name,
			Results: results,
		}
	}
	return out, nil
}
