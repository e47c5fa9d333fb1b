package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"plantdiary/internal/handlers"
	"plantdiary/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Plants    service.PlantService
	Records   service.RecordService
	Reminders service.ReminderService
	Stats     service.StatsService
	Sync      service.SyncService
	Storage   service.StorageService
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(CORS)

	plants := handlers.NewPlantHandler(deps.Plants, deps.Records)
	records := handlers.NewRecordHandler(deps.Records)
	reminders := handlers.NewReminderHandler(deps.Reminders)
	stats := handlers.NewStatsHandler(deps.Stats)
	sync := handlers.NewSyncHandler(deps.Sync)
	storage := handlers.NewStorageHandler(deps.Storage)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", handlers.NewHealthHandler(deps.Storage))

		r.Route("/plants", func(r chi.Router) {
			r.Get("/", plants.List)
			r.Post("/", plants.Create)
			r.Get("/{id}", plants.Get)
			r.Patch("/{id}", plants.Update)
			r.Delete("/{id}", plants.Delete)
			r.Get("/{id}/records", plants.Records)
		})

		r.Route("/records", func(r chi.Router) {
			r.Get("/", records.Feed)
			r.Post("/", records.Create)
			r.Get("/{id}", records.Get)
			r.Patch("/{id}", records.Update)
			r.Delete("/{id}", records.Delete)
		})

		r.Route("/reminders", func(r chi.Router) {
			r.Get("/", reminders.List)
			r.Post("/", reminders.Create)
			r.Patch("/{id}", reminders.Update)
			r.Delete("/{id}", reminders.Delete)
			r.Post("/{id}/toggle", reminders.Toggle)
		})

		r.Route("/stats", func(r chi.Router) {
			r.Get("/overview", stats.Overview)
			r.Get("/types", stats.Types)
			r.Get("/trend", stats.Trend)
			r.Get("/monthly", stats.Monthly)
			r.Get("/heatmap", stats.Heatmap)
			r.Get("/status", stats.Status)
			r.Get("/activity", stats.Activity)
		})

		r.Get("/sync", sync.Status)
		r.Post("/sync", sync.Sync)

		r.Get("/storage", storage.Info)
		r.Post("/storage/cleanup", storage.Cleanup)

		r.Get("/user", storage.User)
		r.Put("/user", storage.SetUser)
	})

	return r
}
