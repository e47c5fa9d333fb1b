package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"plantdiary/internal/contextutil"
	"plantdiary/internal/kv"
	"plantdiary/internal/models"
	"plantdiary/internal/service"
	"plantdiary/internal/service/mocks"
	"plantdiary/internal/stats"
	"plantdiary/internal/storage"
)

type mockDeps struct {
	plants    *mocks.MockPlantService
	records   *mocks.MockRecordService
	reminders *mocks.MockReminderService
	stats     *mocks.MockStatsService
	sync      *mocks.MockSyncService
	storage   *mocks.MockStorageService
}

func newMockDeps(ctrl *gomock.Controller) (*mockDeps, *Deps) {
	m := &mockDeps{
		plants:    mocks.NewMockPlantService(ctrl),
		records:   mocks.NewMockRecordService(ctrl),
		reminders: mocks.NewMockReminderService(ctrl),
		stats:     mocks.NewMockStatsService(ctrl),
		sync:      mocks.NewMockSyncService(ctrl),
		storage:   mocks.NewMockStorageService(ctrl),
	}
	return m, &Deps{
		Plants:    m.plants,
		Records:   m.records,
		Reminders: m.reminders,
		Stats:     m.stats,
		Sync:      m.sync,
		Storage:   m.storage,
	}
}

func TestNewRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, deps := newMockDeps(ctrl)
	if router := NewRouter(deps); router == nil {
		t.Fatal("NewRouter() returned nil")
	}
}

func TestRouter_Routes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		mockSetup  func(*mockDeps)
		wantStatus int
	}{
		{
			name:   "GET /api/health",
			method: http.MethodGet,
			path:   "/api/health",
			mockSetup: func(m *mockDeps) {
				m.storage.EXPECT().Info(gomock.Any()).Return(kv.Info{UsagePercent: 1}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "GET /api/plants",
			method: http.MethodGet,
			path:   "/api/plants?q=rose&page=2",
			mockSetup: func(m *mockDeps) {
				m.plants.EXPECT().List(gomock.Any(), service.PlantQuery{Keyword: "rose", Page: 2}).Return(service.PlantPage{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "GET /api/plants/{id}",
			method: http.MethodGet,
			path:   "/api/plants/p1",
			mockSetup: func(m *mockDeps) {
				m.plants.EXPECT().Detail(gomock.Any(), "p1").Return(service.PlantDetail{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "DELETE /api/plants/{id}",
			method: http.MethodDelete,
			path:   "/api/plants/p1",
			mockSetup: func(m *mockDeps) {
				m.plants.EXPECT().Delete(gomock.Any(), "p1").Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "GET /api/plants/{id}/records",
			method: http.MethodGet,
			path:   "/api/plants/p1/records",
			mockSetup: func(m *mockDeps) {
				m.records.EXPECT().ListByPlant(gomock.Any(), "p1").Return([]service.RecordView{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "GET /api/records",
			method: http.MethodGet,
			path:   "/api/records?type=photo",
			mockSetup: func(m *mockDeps) {
				m.records.EXPECT().Feed(gomock.Any(), models.RecordPhoto).Return(service.RecordFeed{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "POST /api/reminders/{id}/toggle",
			method: http.MethodPost,
			path:   "/api/reminders/r1/toggle",
			mockSetup: func(m *mockDeps) {
				m.reminders.EXPECT().Toggle(gomock.Any(), "r1").Return(models.Reminder{ID: "r1"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "GET /api/stats/heatmap",
			method: http.MethodGet,
			path:   "/api/stats/heatmap?year=2024&month=3",
			mockSetup: func(m *mockDeps) {
				m.stats.EXPECT().Heatmap(gomock.Any(), 2024, gomock.Any()).Return(stats.Calendar{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "POST /api/sync not available",
			method: http.MethodPost,
			path:   "/api/sync",
			mockSetup: func(m *mockDeps) {
				m.sync.EXPECT().Sync(gomock.Any()).Return(service.ErrSyncUnavailable)
			},
			wantStatus: http.StatusNotImplemented,
		},
		{
			name:   "POST /api/storage/cleanup",
			method: http.MethodPost,
			path:   "/api/storage/cleanup",
			mockSetup: func(m *mockDeps) {
				m.storage.EXPECT().Cleanup(gomock.Any()).Return(storage.CleanupResult{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/api/unknown",
			mockSetup:  func(m *mockDeps) {},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "method not allowed",
			method:     http.MethodPut,
			path:       "/api/plants/p1",
			mockSetup:  func(m *mockDeps) {},
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m, deps := newMockDeps(ctrl)
			tt.mockSetup(m)
			router := NewRouter(deps)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Router %s %s status = %v, want %v", tt.method, tt.path, w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, deps := newMockDeps(ctrl)
	m.stats.EXPECT().Overview(gomock.Any()).DoAndReturn(func(ctx context.Context) (stats.Summary, error) {
		if ctx.Value(contextutil.LoggerKey()) == nil {
			t.Error("handler context should carry a request logger")
		}
		return stats.Summary{}, nil
	})

	router := NewRouter(deps)

	req := httptest.NewRequest(http.MethodGet, "/api/stats/overview", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	// Check CORS headers are present
	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("Router should apply CORS middleware")
	}
}
