package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JorgeDuranS/MedicLab/internal/jwt"
	"github.com/JorgeDuranS/MedicLab/internal/middlewares"
	"github.com/JorgeDuranS/MedicLab/internal/models"
	"github.com/JorgeDuranS/MedicLab/internal/ssrf"
)

// authedRequest builds a request carrying authenticated claims, the way the
// auth middleware leaves them for downstream handlers.
func authedRequest(t *testing.T, method, target string, body interface{}, userID int64, role string) *http.Request {
	t.Helper()

	var reader io.Reader
	switch v := body.(type) {
	case nil:
		reader = nil
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		data, err := json.Marshal(v)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	ctx := middlewares.SetClaimsToContext(req.Context(), &jwt.Claims{UserID: userID, Role: role})
	return req.WithContext(ctx)
}

func TestUpdateAvatarHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		inputBody      interface{}
		mockSetup      func(svc *MockAvatarUpdater, recorder *MockEventRecorder)
		expectedCode   int
		expectedError  string
		expectedAction string
	}{
		{
			name:      "Success",
			inputBody: UpdateAvatarRequest{AvatarURL: "https://i.imgur.com/cat.png"},
			mockSetup: func(svc *MockAvatarUpdater, recorder *MockEventRecorder) {
				svc.EXPECT().
					Update(gomock.Any(), int64(7), "https://i.imgur.com/cat.png").
					Return(2048, nil)
				recorder.EXPECT().Record(gomock.Any(), gomock.Any()).
					Do(func(_ interface{}, event models.SecurityEventDB) {
						assert.Equal(t, models.ActionAvatarUpdated, event.Action)
						assert.True(t, event.Success)
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name:      "PrivateIPRecordedAsSSRFAttempt",
			inputBody: UpdateAvatarRequest{AvatarURL: "https://evil.example.com/x.png"},
			mockSetup: func(svc *MockAvatarUpdater, recorder *MockEventRecorder) {
				svc.EXPECT().
					Update(gomock.Any(), int64(7), "https://evil.example.com/x.png").
					Return(0, &ssrf.Rejection{Stage: ssrf.StagePrivateIP, Reason: "private or internal addresses are not allowed"})
				recorder.EXPECT().Record(gomock.Any(), gomock.Any()).
					Do(func(_ interface{}, event models.SecurityEventDB) {
						assert.Equal(t, models.ActionSSRFAttempt, event.Action)
						assert.False(t, event.Success)
					})
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "private or internal addresses are not allowed",
		},
		{
			name:      "WhitelistRejectionIsValidationError",
			inputBody: UpdateAvatarRequest{AvatarURL: "https://random.example.com/x.png"},
			mockSetup: func(svc *MockAvatarUpdater, recorder *MockEventRecorder) {
				svc.EXPECT().
					Update(gomock.Any(), int64(7), gomock.Any()).
					Return(0, &ssrf.Rejection{Stage: ssrf.StageWhitelist, Reason: "domain not allowed"})
				recorder.EXPECT().Record(gomock.Any(), gomock.Any()).
					Do(func(_ interface{}, event models.SecurityEventDB) {
						assert.Equal(t, models.ActionValidationError, event.Action)
					})
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "domain not allowed",
		},
		{
			name:      "RedirectSurfacesAsUnprocessable",
			inputBody: UpdateAvatarRequest{AvatarURL: "https://i.imgur.com/gone.png"},
			mockSetup: func(svc *MockAvatarUpdater, recorder *MockEventRecorder) {
				svc.EXPECT().
					Update(gomock.Any(), int64(7), gomock.Any()).
					Return(0, &ssrf.BadStatusError{Code: http.StatusFound})
				recorder.EXPECT().Record(gomock.Any(), gomock.Any()).
					Do(func(_ interface{}, event models.SecurityEventDB) {
						assert.Equal(t, models.ActionAvatarUpdateFailed, event.Action)
					})
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:      "TooLarge",
			inputBody: UpdateAvatarRequest{AvatarURL: "https://i.imgur.com/huge.png"},
			mockSetup: func(svc *MockAvatarUpdater, recorder *MockEventRecorder) {
				svc.EXPECT().
					Update(gomock.Any(), int64(7), gomock.Any()).
					Return(0, ssrf.ErrTooLarge)
				recorder.EXPECT().Record(gomock.Any(), gomock.Any())
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: ssrf.ErrTooLarge.Error(),
		},
		{
			name:      "Timeout",
			inputBody: UpdateAvatarRequest{AvatarURL: "https://i.imgur.com/slow.png"},
			mockSetup: func(svc *MockAvatarUpdater, recorder *MockEventRecorder) {
				svc.EXPECT().
					Update(gomock.Any(), int64(7), gomock.Any()).
					Return(0, ssrf.ErrTimeout)
				recorder.EXPECT().Record(gomock.Any(), gomock.Any())
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: ssrf.ErrTimeout.Error(),
		},
		{
			name:          "MissingURL",
			inputBody:     UpdateAvatarRequest{},
			mockSetup:     func(svc *MockAvatarUpdater, recorder *MockEventRecorder) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "avatar_url is required",
		},
		{
			name:          "InvalidJSON",
			inputBody:     "{broken",
			mockSetup:     func(svc *MockAvatarUpdater, recorder *MockEventRecorder) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "avatar_url is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAvatarUpdater(ctrl)
			mockRecorder := NewMockEventRecorder(ctrl)
			tt.mockSetup(mockSvc, mockRecorder)

			handler := NewUpdateAvatarHandler(mockSvc, mockRecorder)

			req := authedRequest(t, http.MethodPut, "/api/users/me/avatar", tt.inputBody, 7, models.RolePatient)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusOK {
				var got UpdateAvatarResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, "https://i.imgur.com/cat.png", got.AvatarURL)
				assert.Equal(t, 2048, got.Size)
				return
			}
			if tt.expectedError != "" {
				var got AvatarErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, tt.expectedError, got.Error)
			}
		})
	}
}

func TestUpdateAvatarHandler_NoClaims(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewUpdateAvatarHandler(NewMockAvatarUpdater(ctrl), NewMockEventRecorder(ctrl))

	body, _ := json.Marshal(UpdateAvatarRequest{AvatarURL: "https://i.imgur.com/cat.png"})
	req := httptest.NewRequest(http.MethodPut, "/api/users/me/avatar", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
