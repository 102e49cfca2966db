package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/vmdanyliuk/receipta/docs"
	authhandlers "github.com/vmdanyliuk/receipta/internal/handlers/auth"
	receipthandlers "github.com/vmdanyliuk/receipta/internal/handlers/receipts"
	"github.com/vmdanyliuk/receipta/internal/service"
	"github.com/vmdanyliuk/receipta/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type ReceiptHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	GetText(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	ReceiptHandler ReceiptHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		ReceiptHandler: receipthandlers.New(s.ReceiptService),
		jwtService:     jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Route("/receipts", func(r chi.Router) {
			// Printable text view is deliberately public: possession of the
			// id is enough to print a receipt.
			r.Get("/{id}/text", h.ReceiptHandler.GetText)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware(h.jwtService))
				r.Post("/", h.ReceiptHandler.Create)
				r.Get("/", h.ReceiptHandler.List)
				r.Get("/{id}", h.ReceiptHandler.GetByID)
			})
		})
	})

	return r
}
