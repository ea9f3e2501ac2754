package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Armory_Go/internal/character"
	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/mocks"
)

func TestHandleCreateCharacter(t *testing.T) {
	tests := []struct {
		name           string
		userID         string
		body           interface{}
		setupMock      func(*mocks.MockCharacterService)
		expectedStatus int
	}{
		{
			name:   "Success",
			userID: testUserID,
			body:   CreateCharacterRequest{Name: "Knight"},
			setupMock: func(m *mocks.MockCharacterService) {
				c := domain.NewCharacter(testUserID, "Knight")
				c.ID = 7
				m.On("CreateCharacter", mock.Anything, testUserID, "Knight").Return(&character.Created{
					Character: c,
					Inventory: domain.Inventory{CharacterID: 7},
					Equipment: domain.Equipment{CharacterID: 7},
				}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "Duplicate name",
			userID: testUserID,
			body:   CreateCharacterRequest{Name: "Knight"},
			setupMock: func(m *mocks.MockCharacterService) {
				m.On("CreateCharacter", mock.Anything, testUserID, "Knight").Return(nil, domain.ErrDuplicateName)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "Anonymous",
			body:           CreateCharacterRequest{Name: "Knight"},
			setupMock:      func(m *mocks.MockCharacterService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Empty name",
			userID:         testUserID,
			body:           CreateCharacterRequest{},
			setupMock:      func(m *mocks.MockCharacterService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockCharacterService(t)
			tt.setupMock(mockSvc)

			rec := httptest.NewRecorder()
			HandleCreateCharacter(mockSvc)(rec, newRequest(t, http.MethodPost, "/api/v1/characters", tt.body, nil, tt.userID))

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestHandleCreateCharacter_ResponseShape(t *testing.T) {
	mockSvc := mocks.NewMockCharacterService(t)
	c := domain.NewCharacter(testUserID, "Knight")
	c.ID = 7
	mockSvc.On("CreateCharacter", mock.Anything, testUserID, "Knight").Return(&character.Created{Character: c}, nil)

	rec := httptest.NewRecorder()
	HandleCreateCharacter(mockSvc)(rec, newRequest(t, http.MethodPost, "/api/v1/characters", CreateCharacterRequest{Name: "Knight"}, nil, testUserID))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		Message string `json:"message"`
		Data    struct {
			Character map[string]interface{} `json:"character"`
		} `json:"data"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, MsgCharacterCreated, resp.Message)
	assert.Equal(t, float64(7), resp.Data.Character["characterId"])
	assert.Equal(t, float64(domain.DefaultCharacterMoney), resp.Data.Character["money"])
}

func TestHandleGetCharacter(t *testing.T) {
	money := int64(10000)
	tests := []struct {
		name           string
		param          string
		userID         string
		setupMock      func(*mocks.MockCharacterService)
		expectedStatus int
		expectMoney    bool
	}{
		{
			name:   "Owner sees money",
			param:  "7",
			userID: testUserID,
			setupMock: func(m *mocks.MockCharacterService) {
				m.On("GetCharacterSummary", mock.Anything, int64(7), testUserID).
					Return(&domain.CharacterSummary{Name: "Knight", Health: 500, Attack: 100, Money: &money}, nil)
			},
			expectedStatus: http.StatusOK,
			expectMoney:    true,
		},
		{
			name:  "Anonymous view",
			param: "7",
			setupMock: func(m *mocks.MockCharacterService) {
				m.On("GetCharacterSummary", mock.Anything, int64(7), "").
					Return(&domain.CharacterSummary{Name: "Knight", Health: 500, Attack: 100}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "Not found",
			param: "8",
			setupMock: func(m *mocks.MockCharacterService) {
				m.On("GetCharacterSummary", mock.Anything, int64(8), "").Return(nil, domain.ErrCharacterNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Bad id",
			param:          "abc",
			setupMock:      func(m *mocks.MockCharacterService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockCharacterService(t)
			tt.setupMock(mockSvc)

			rec := httptest.NewRecorder()
			HandleGetCharacter(mockSvc)(rec, newRequest(t, http.MethodGet, "/api/v1/characters/"+tt.param, nil, characterParams(tt.param), tt.userID))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if rec.Code == http.StatusOK {
				if tt.expectMoney {
					assert.Contains(t, rec.Body.String(), `"money":10000`)
				} else {
					assert.NotContains(t, rec.Body.String(), `"money"`)
				}
			}
		})
	}
}

func TestHandleDeleteCharacter(t *testing.T) {
	mockSvc := mocks.NewMockCharacterService(t)
	mockSvc.On("DeleteCharacter", mock.Anything, testUserID, int64(7)).Return(nil)
	mockSvc.On("DeleteCharacter", mock.Anything, testUserID, int64(8)).Return(domain.ErrCharacterNotFound)

	rec := httptest.NewRecorder()
	HandleDeleteCharacter(mockSvc)(rec, newRequest(t, http.MethodDelete, "/", nil, characterParams("7"), testUserID))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"`+MsgCharacterDeleted+`"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	HandleDeleteCharacter(mockSvc)(rec, newRequest(t, http.MethodDelete, "/", nil, characterParams("8"), testUserID))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleEarnMoney(t *testing.T) {
	mockSvc := mocks.NewMockCharacterService(t)
	mockSvc.On("EarnMoney", mock.Anything, testUserID, int64(7)).
		Return(&character.EarnResult{Earned: domain.EarnMoneyReward, Balance: 20000}, nil)
	mockSvc.On("EarnMoney", mock.Anything, testUserID, int64(9)).Return(nil, domain.ErrForbidden)

	rec := httptest.NewRecorder()
	HandleEarnMoney(mockSvc)(rec, newRequest(t, http.MethodPost, "/", nil, characterParams("7"), testUserID))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"`+MsgMoneyEarned+`","earnedMoney":10000}`, rec.Body.String())

	rec = httptest.NewRecorder()
	HandleEarnMoney(mockSvc)(rec, newRequest(t, http.MethodPost, "/", nil, characterParams("9"), testUserID))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, ErrMsgForbidden, errorMessage(t, rec))
}
