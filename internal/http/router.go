package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"tenderdesk/internal/handlers"
	"tenderdesk/internal/service"
	"tenderdesk/internal/vectorstore"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	TenderService  service.TenderService
	ChatManager    service.ChatManager
	VectorStore    vectorstore.VectorStore
	CollectionName string
	UploadDir      string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(CORS)
	r.Use(LoggerMiddleware)

	tenderHandler := handlers.NewTenderHandler(deps.TenderService, deps.UploadDir)
	recordViewHandler := handlers.NewRecordViewHandler(deps.TenderService)
	chatHandler := handlers.NewChatHandler(deps.ChatManager)
	healthHandler := handlers.NewHealthHandler(deps.VectorStore, deps.CollectionName)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/healthz", healthHandler)

		r.Route("/tenders", func(r chi.Router) {
			r.Post("/", tenderHandler.Upload)
			r.Get("/", tenderHandler.List)
			r.Get("/{id}", tenderHandler.Get)
			r.Method(http.MethodGet, "/{id}/view", recordViewHandler)
			r.Get("/{id}/assessment", tenderHandler.Assessment)
		})

		r.Route("/chat", func(r chi.Router) {
			r.Post("/start", chatHandler.Start)
			r.Post("/send", chatHandler.Send)
			r.Post("/end", chatHandler.End)
			r.Get("/topics", chatHandler.Topics)
			r.Get("/context", chatHandler.Context)
		})
	})

	return r
}
