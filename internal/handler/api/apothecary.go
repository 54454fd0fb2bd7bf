package api

import (
	"errors"
	"net/http"

	reqdto "apothecary/internal/handler/dto/request"
	resdto "apothecary/internal/handler/dto/response"
	"apothecary/internal/handler/httperr"
	"apothecary/internal/infra/pagination"
	"apothecary/internal/pkg/page"
	"apothecary/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ApothecaryHandler struct {
	apothecaryQueries queries.ApothecaryQueries
	medicationQueries queries.MedicationQueries
}

func NewApothecaryHandler(apothecaryQueries queries.ApothecaryQueries, medicationQueries queries.MedicationQueries) *ApothecaryHandler {
	return &ApothecaryHandler{
		apothecaryQueries: apothecaryQueries,
		medicationQueries: medicationQueries,
	}
}

// @Summary List apothecaries
// @Description Paged apothecary listing with opening schedules
// @Tags apothecaries
// @Produce json
// @Param page query int false "Page index (0-based)"
// @Param size query int false "Page size"
// @Param sort query []string false "Sort as field,asc|desc" collectionFormat(multi)
// @Success 200 {object} page.Page[resdto.ApothecaryResponse]
// @Failure 400 {object} map[string]string
// @Router /apothecaries [get]
func (h *ApothecaryHandler) ListApothecaries(c *gin.Context) {
	pageable, err := reqdto.ParsePageable(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pagination parameters", nil)
		return
	}

	result, err := h.apothecaryQueries.List(c.Request.Context(), pageable)
	if err != nil {
		var invalidSort *pagination.InvalidSortColumnError
		switch {
		case errors.As(err, &invalidSort):
			httperr.AbortWithError(c, http.StatusBadRequest, err, invalidSort.Error(), nil)
		case errors.Is(err, page.ErrInvalidSortDirection):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Sort direction must be asc or desc", nil)
		case errors.Is(err, queries.ErrApothecaryNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, page.Map(result, resdto.FromApothecaryWithSchedules))
}

// @Summary Search medications
// @Description Medication stock grouped by medication, filtered by name and distance
// @Tags apothecaries
// @Produce json
// @Param name query string true "Name substring, case-insensitive"
// @Param latitude query number true "Search center latitude"
// @Param longitude query number true "Search center longitude"
// @Param maxDistance query number true "Maximum distance in kilometers"
// @Success 200 {array} resdto.MedicationGroupResponse
// @Failure 400 {object} map[string]string
// @Router /apothecaries/medications [get]
func (h *ApothecaryHandler) SearchMedications(c *gin.Context) {
	var req reqdto.MedicationSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid search parameters", nil)
		return
	}

	groups, err := h.medicationQueries.Search(c.Request.Context(), req.ToSearch())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	response, err := resdto.FromMedicationGroups(groups)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, response)
}
