//go:build e2e

package reservation_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"apothecary/internal/domain/reservation"
	resdto "apothecary/internal/handler/dto/response"
	"apothecary/tests/common/authtest"
	"apothecary/tests/common/builder"
	"apothecary/tests/common/dbtest"
	"apothecary/tests/common/httptest"
	"apothecary/tests/common/testutil"
	"apothecary/tests/e2e"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReservationE2ETestSuite struct {
	e2e.SharedSuite
}

func TestReservationE2ESuite(t *testing.T) {
	suite.Run(t, new(ReservationE2ETestSuite))
}

type reservationFixture struct {
	token        string
	apothecaryID uuid.UUID
	medicationID uuid.UUID
}

// seedPackageStock provisions a logged-in user and an apothecary carrying
// counted stock of one medication.
func (s *ReservationE2ETestSuite) seedPackageStock(quantity int64) reservationFixture {
	s.T().Helper()

	token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "patient@example.com", "user")
	apothecaryID := dbtest.CreateTestApothecary(s.T(), s.DB, "Stadtapotheke", 48.1942566, 16.3181194)
	medicationID := dbtest.CreateTestMedication(s.T(), s.DB, "Aspirin")
	dbtest.CreatePackageStock(s.T(), s.DB, apothecaryID, medicationID, quantity, decimal.NewFromFloat(9.50))

	return reservationFixture{token: token, apothecaryID: apothecaryID, medicationID: medicationID}
}

func (s *ReservationE2ETestSuite) createRequestFor(f reservationFixture, amount uint64) map[string]any {
	s.T().Helper()

	reqBody := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.ApothecaryID = f.apothecaryID
		b.MedicationID = f.medicationID
		b.Amount = amount
	}).BuildCreateRequestDTO()
	return testutil.DtoMap(s.T(), reqBody)
}

func (s *ReservationE2ETestSuite) TestCreateReservation() {
	url := "/api/v1/reservations"

	s.Run("success: package reservation opens a pickup window and decrements stock", func() {
		fixture := s.seedPackageStock(10)
		start := time.Now().Add(2 * time.Hour).Truncate(time.Second).UTC()

		reqBody := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ApothecaryID = fixture.apothecaryID
			b.MedicationID = fixture.medicationID
			b.Amount = 3
			b.StartDateTime = start
		}).BuildCreateRequestDTO()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody), fixture.token)

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("active", response.Status)
		s.Equal("package", response.QuantityType)
		s.Require().NotNil(response.Quantity)
		s.EqualValues(3, *response.Quantity)
		s.Require().NotNil(response.Price)
		s.True(decimal.NewFromFloat(9.50).Equal(*response.Price))
		s.Require().NotNil(response.StartDateTime)
		s.Require().NotNil(response.EndDateTime)
		s.True(response.StartDateTime.Equal(start), "the window opens at the requested pickup time")
		s.Equal(reservation.PickupWindow, response.EndDateTime.Sub(*response.StartDateTime))

		s.EqualValues(7, dbtest.StockQuantity(s.T(), s.DB, fixture.apothecaryID, fixture.medicationID))
	})

	s.Run("success: reserving the entire stock leaves zero behind", func() {
		fixture := s.seedPackageStock(10)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, s.createRequestFor(fixture, 10), fixture.token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

		s.EqualValues(0, dbtest.StockQuantity(s.T(), s.DB, fixture.apothecaryID, fixture.medicationID))
	})

	s.Run("error: 404 when more is requested than available", func() {
		fixture := s.seedPackageStock(10)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, s.createRequestFor(fixture, 11), fixture.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not enough stock available")

		// A failed attempt must not touch the stock.
		s.EqualValues(10, dbtest.StockQuantity(s.T(), s.DB, fixture.apothecaryID, fixture.medicationID))
	})

	s.Run("error: 404 when the apothecary does not carry the medication", func() {
		fixture := s.seedPackageStock(10)
		other := dbtest.CreateTestMedication(s.T(), s.DB, "Ibuprofen")

		reqMap := s.createRequestFor(fixture, 1)
		reqMap["medicationId"] = other.String()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, reqMap, fixture.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Medication not found at this apothecary")
	})

	s.Run("error: 404 for an unknown-typed request against counted stock", func() {
		fixture := s.seedPackageStock(10)

		reqMap := s.createRequestFor(fixture, 1)
		reqMap["quantityType"] = "unknown"

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, reqMap, fixture.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not enough stock available")
	})

	s.Run("success: package request against untracked stock stays pending", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "patient@example.com", "user")
		apothecaryID := dbtest.CreateTestApothecary(s.T(), s.DB, "Stadtapotheke", 48.1942566, 16.3181194)
		medicationID := dbtest.CreateTestMedication(s.T(), s.DB, "Aspirin")
		dbtest.CreateUnknownStock(s.T(), s.DB, apothecaryID, medicationID)

		reqBody := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ApothecaryID = apothecaryID
			b.MedicationID = medicationID
		}).BuildCreateRequestDTO()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody), token)

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("pending", response.Status)
		s.Equal("unknown", response.QuantityType)
		s.Require().NotNil(response.Quantity)
		s.EqualValues(reqBody.Amount, *response.Quantity)
		s.Nil(response.StartDateTime)
		s.Nil(response.EndDateTime)
		s.Nil(response.Price, "untracked stock carries no price to copy")
	})

	s.Run("error: 404 for an unknown-typed request against untracked stock", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "patient@example.com", "user")
		apothecaryID := dbtest.CreateTestApothecary(s.T(), s.DB, "Stadtapotheke", 48.1942566, 16.3181194)
		medicationID := dbtest.CreateTestMedication(s.T(), s.DB, "Aspirin")
		dbtest.CreateUnknownStock(s.T(), s.DB, apothecaryID, medicationID)

		reqBody := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ApothecaryID = apothecaryID
			b.MedicationID = medicationID
		}).BuildCreateRequestDTO()
		reqMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("quantityType", "unknown"))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, reqMap, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not enough stock available")
	})

	s.Run("success: concurrent reserves cannot overdraw the stock", func() {
		fixture := s.seedPackageStock(10)

		statuses := make(chan int, 2)
		var wg sync.WaitGroup
		for range 2 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, s.createRequestFor(fixture, 6), fixture.token)
				statuses <- rec.Code
			}()
		}
		wg.Wait()
		close(statuses)

		var created, rejected int
		for code := range statuses {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusNotFound:
				rejected++
			}
		}
		s.Equal(1, created, "exactly one of two 6-of-10 reserves may succeed")
		s.Equal(1, rejected)
		s.EqualValues(4, dbtest.StockQuantity(s.T(), s.DB, fixture.apothecaryID, fixture.medicationID))
	})

	s.Run("error: 401 Unauthorized without token", func() {
		fixture := s.seedPackageStock(10)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, s.createRequestFor(fixture, 1), "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *ReservationE2ETestSuite) TestListAndGetReservations() {
	url := "/api/v1/reservations"

	s.Run("success: list shows only the caller's reservations with page envelope", func() {
		fixture := s.seedPackageStock(10)
		otherToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "other@example.com", "user")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, s.createRequestFor(fixture, 2), fixture.token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, s.createRequestFor(fixture, 1), fixture.token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

		var listing map[string]any
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url+"?page=0&size=10", nil, fixture.token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &listing)
		content, ok := listing["content"].([]any)
		s.Require().True(ok)
		s.Len(content, 2)
		s.Equal(float64(2), listing["totalElements"])
		s.Equal(true, listing["first"])
		s.Equal(true, listing["last"])

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, otherToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &listing)
		content, ok = listing["content"].([]any)
		s.Require().True(ok)
		s.Empty(content)
	})

	s.Run("success: get by id returns the created reservation", func() {
		fixture := s.seedPackageStock(10)

		var created resdto.ReservationResponse
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, s.createRequestFor(fixture, 2), fixture.token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)

		var fetched resdto.ReservationResponse
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url+"/"+created.ID.String(), nil, fixture.token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &fetched)
		s.Equal(created.ID, fetched.ID)
		s.Equal("Aspirin", fetched.Medication.Name)
		s.Equal(fixture.apothecaryID, fetched.Apothecary.ID)
		s.NotEmpty(fetched.Apothecary.Schedules)
	})

	s.Run("error: 404 when fetching someone else's reservation", func() {
		fixture := s.seedPackageStock(10)
		otherToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "other@example.com", "user")

		var created resdto.ReservationResponse
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, s.createRequestFor(fixture, 2), fixture.token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url+"/"+created.ID.String(), nil, otherToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 404 for unknown reservation id", func() {
		fixture := s.seedPackageStock(10)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url+"/"+uuid.NewString(), nil, fixture.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 400 for malformed reservation id", func() {
		fixture := s.seedPackageStock(10)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url+"/not-a-uuid", nil, fixture.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("success: an elapsed pickup window reads as expired", func() {
		fixture := s.seedPackageStock(10)

		var created resdto.ReservationResponse
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, s.createRequestFor(fixture, 1), fixture.token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)

		// Age the stored window past its end without waiting 30 minutes.
		past := time.Now().Add(-time.Hour)
		_, err := s.DB.Exec(context.Background(),
			"UPDATE reservation SET start_date_time = $1, end_date_time = $2 WHERE id = $3",
			past, past.Add(reservation.PickupWindow), created.ID)
		s.Require().NoError(err)

		var fetched resdto.ReservationResponse
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url+"/"+created.ID.String(), nil, fixture.token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &fetched)
		s.Equal("expired", fetched.Status)
	})
}

func (s *ReservationE2ETestSuite) TestCancelReservation() {
	url := "/api/v1/reservations"

	s.Run("success: cancel removes the reservation", func() {
		fixture := s.seedPackageStock(10)

		var created resdto.ReservationResponse
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, s.createRequestFor(fixture, 2), fixture.token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, url+"/"+created.ID.String(), nil, fixture.token)
		s.Equal(http.StatusNoContent, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url+"/"+created.ID.String(), nil, fixture.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 404 when cancelling someone else's reservation", func() {
		fixture := s.seedPackageStock(10)
		otherToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "other@example.com", "user")

		var created resdto.ReservationResponse
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, s.createRequestFor(fixture, 2), fixture.token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, url+"/"+created.ID.String(), nil, otherToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")

		// Still retrievable by its owner.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url+"/"+created.ID.String(), nil, fixture.token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 when cancelling twice", func() {
		fixture := s.seedPackageStock(10)

		var created resdto.ReservationResponse
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, s.createRequestFor(fixture, 2), fixture.token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, url+"/"+created.ID.String(), nil, fixture.token)
		s.Equal(http.StatusNoContent, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, url+"/"+created.ID.String(), nil, fixture.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}
