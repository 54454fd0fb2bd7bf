//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"apothecary/internal/domain/user"
	"apothecary/internal/handler/api"
	resdto "apothecary/internal/handler/dto/response"
	"apothecary/internal/usecase/commands"
	"apothecary/tests/common/builder"
	"apothecary/tests/common/httptest"
	"apothecary/tests/common/testutil"
	commandsmock "apothecary/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands)

	s.router.POST("/login", s.handler.Login)
	s.router.POST("/register", s.handler.Register)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

// ================================================================================
// TestLogin
// ================================================================================

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/login"

	reqBody := builder.NewUserBuilder().BuildLoginRequestDTO()
	account, err := builder.NewUserBuilder().BuildDomain()
	s.Require().NoError(err)

	s.Run("success: returns 200 OK with token and user", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.Email, reqBody.Password).
			Return(&commands.LoginResult{Token: "signed.jwt.token", User: *account}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("signed.jwt.token", response.AccessToken)
		s.Equal(account.Email, response.User.Email)
		s.Equal(account.Role.String(), response.User.Role)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: email (required)", mutate: testutil.Field("email", nil)},
			{name: "missing field: password (required)", mutate: testutil.Field("password", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "wrong password",
				commandsError:  commands.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid email or password",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.Email, reqBody.Password).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestRegister
// ================================================================================

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/register"

	reqBody := builder.NewUserBuilder().BuildRegisterRequestDTO()
	account, err := builder.NewUserBuilder().BuildDomain()
	s.Require().NoError(err)

	s.Run("success: returns 201 Created with UserResponse", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), commands.RegisterInput{
			Name:     reqBody.Name,
			Email:    reqBody.Email,
			Password: reqBody.Password,
		}).Return(account, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(account.ID, response.ID)
		s.Equal(account.Name, response.Name)
		s.Equal(account.Email, response.Email)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil)},
			{name: "missing field: email (required)", mutate: testutil.Field("email", nil)},
			{name: "missing field: password (required)", mutate: testutil.Field("password", nil)},
			{name: "password too short (7 chars)", mutate: testutil.Field("password", "short12")},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "email rejected by domain validation",
				commandsError:  user.ErrInvalidEmail,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid email address",
			},
			{
				name:           "duplicate email",
				commandsError:  commands.ErrUserAlreadyExists,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Email already registered",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
