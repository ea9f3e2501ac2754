package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/user"
	"github.com/osse101/Armory_Go/mocks"
)

func TestHandleSignUp(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*mocks.MockUserService)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "Success",
			body: SignUpRequest{UserID: "hero1", Password: "secret1", Name: "Hero", Age: 30},
			setupMock: func(m *mocks.MockUserService) {
				m.On("SignUp", mock.Anything, user.SignUpInput{LoginID: "hero1", Password: "secret1", Name: "Hero", Age: 30}).
					Return(&domain.User{ID: "u-1", LoginID: "hero1"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    MsgSignedUp,
		},
		{
			name: "Duplicate login id",
			body: SignUpRequest{UserID: "hero1", Password: "secret1", Name: "Hero"},
			setupMock: func(m *mocks.MockUserService) {
				m.On("SignUp", mock.Anything, mock.Anything).Return(nil, domain.ErrDuplicateLoginID)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    ErrMsgDuplicateLoginID,
		},
		{
			name:           "Invalid login id",
			body:           SignUpRequest{UserID: "Hero!", Password: "secret1", Name: "Hero"},
			setupMock:      func(m *mocks.MockUserService) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    ErrMsgInvalidRequestSummary,
		},
		{
			name:           "Malformed JSON",
			body:           `{"userId":`,
			setupMock:      func(m *mocks.MockUserService) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    ErrMsgInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockUserService(t)
			tt.setupMock(mockSvc)

			rec := httptest.NewRecorder()
			HandleSignUp(mockSvc)(rec, newRequest(t, http.MethodPost, "/api/v1/auth/sign-up", tt.body, nil, ""))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedMsg, errorMessage(t, rec))
		})
	}
}

func TestHandleSignIn(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*mocks.MockUserService)
		expectedStatus int
	}{
		{
			name: "Success",
			setupMock: func(m *mocks.MockUserService) {
				m.On("SignIn", mock.Anything, "hero1", "secret1").
					Return(&user.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Wrong password",
			setupMock: func(m *mocks.MockUserService) {
				m.On("SignIn", mock.Anything, "hero1", "secret1").Return(nil, domain.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockUserService(t)
			tt.setupMock(mockSvc)

			rec := httptest.NewRecorder()
			body := SignInRequest{UserID: "hero1", Password: "secret1"}
			HandleSignIn(mockSvc)(rec, newRequest(t, http.MethodPost, "/api/v1/auth/sign-in", body, nil, ""))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp SignInResponse
				decodeBody(t, rec, &resp)
				assert.Equal(t, SignInResponse{Message: MsgSignedIn, AccessToken: "access", RefreshToken: "refresh"}, resp)
			}
		})
	}
}

func TestHandleRefreshToken(t *testing.T) {
	mockSvc := mocks.NewMockUserService(t)
	mockSvc.On("Refresh", mock.Anything, "stale").Return(nil, domain.ErrTokenExpired)

	rec := httptest.NewRecorder()
	HandleRefreshToken(mockSvc)(rec, newRequest(t, http.MethodPost, "/api/v1/auth/token", RefreshRequest{RefreshToken: "stale"}, nil, ""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, ErrMsgTokenExpired, errorMessage(t, rec))
}
