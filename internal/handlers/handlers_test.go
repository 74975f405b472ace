package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "github.com/koquifi/lottoframe/docs"
	"github.com/koquifi/lottoframe/internal/config"
	"github.com/koquifi/lottoframe/internal/service"
	"github.com/koquifi/lottoframe/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	cfg := &config.Config{AdminFIDs: []string{"admin", "owner"}}

	h := New(&service.Services{}, cfg)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockTicketHandler := NewMockTicketHandler(ctrl)
	mockNotificationHandler := NewMockNotificationHandler(ctrl)
	mockDrawHandler := NewMockDrawHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)

	mockAuthHandler.EXPECT().IssueToken(gomock.Any(), gomock.Any()).AnyTimes()
	mockTicketHandler.EXPECT().Purchase(gomock.Any(), gomock.Any()).AnyTimes()
	mockTicketHandler.EXPECT().GetTickets(gomock.Any(), gomock.Any()).AnyTimes()
	mockNotificationHandler.EXPECT().GetNotifications(gomock.Any(), gomock.Any()).AnyTimes()
	mockNotificationHandler.EXPECT().MarkRead(gomock.Any(), gomock.Any()).AnyTimes()
	mockDrawHandler.EXPECT().GetHistory(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().ExecuteDraw(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().SimulateDraw(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().GetStats(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().Reset(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:         mockAuthHandler,
		TicketHandler:       mockTicketHandler,
		NotificationHandler: mockNotificationHandler,
		DrawHandler:         mockDrawHandler,
		AdminHandler:        mockAdminHandler,
		adminFIDs:           []string{"admin", "owner"},
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	jwtService := &auth.JWTService{}
	userToken, err := jwtService.GenerateJWT("12345", time.Now().Add(time.Hour))
	require.NoError(t, err)
	adminToken, err := jwtService.GenerateJWT("admin", time.Now().Add(time.Hour))
	require.NoError(t, err)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/api/auth/token", "", http.StatusOK},
		{"POST", "/api/tickets", "", http.StatusUnauthorized},
		{"GET", "/api/tickets", "", http.StatusUnauthorized},
		{"GET", "/api/notifications", "", http.StatusUnauthorized},
		{"POST", "/api/notifications/NTF-1/read", "", http.StatusUnauthorized},
		{"GET", "/api/draws", "", http.StatusUnauthorized},
		{"POST", "/api/tickets", userToken, http.StatusOK},
		{"GET", "/api/draws", userToken, http.StatusOK},
		{"POST", "/api/admin/draw/execute", "", http.StatusUnauthorized},
		{"POST", "/api/admin/draw/execute", userToken, http.StatusForbidden},
		{"POST", "/api/admin/draw/simulate", userToken, http.StatusForbidden},
		{"GET", "/api/admin/stats", userToken, http.StatusForbidden},
		{"POST", "/api/admin/reset", userToken, http.StatusForbidden},
		{"POST", "/api/admin/draw/execute", adminToken, http.StatusOK},
		{"GET", "/api/admin/stats", adminToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
