// internal/adapters/in/http/router.go
package httpin

import (
	"net/http"

	"campusink/internal/adapters/in/http/handlers"
	"campusink/internal/adapters/in/http/middleware"
	usecase "campusink/internal/application/usecase"
	"campusink/internal/domain/authflow"
)

// RouterDeps collects the usecases and shared dependencies injected from
// main.go via the DI container.
type RouterDeps struct {
	UploadUC       *usecase.UploadUsecase
	NotificationUC *usecase.NotificationUsecase
	AuthFlowUC     *usecase.AuthFlowUsecase
	CatalogUC      *usecase.CatalogUsecase
	CheckoutUC     *usecase.CheckoutUsecase

	Identity authflow.IdentityProvider

	AppBaseURL        string
	ProfileImageTypes []string
}

// NewRouter sets up HTTP routing for the storefront endpoints.
// Only routes whose usecase is wired get mounted.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// Health check (always on)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if deps.UploadUC != nil && deps.Identity != nil {
		auth := &middleware.Auth{Identity: deps.Identity}
		upload := handlers.NewUploadHandler(deps.UploadUC, deps.ProfileImageTypes)
		mux.Handle("/upload", auth.Handler(upload))
		mux.Handle("/upload/", auth.Handler(upload))
	}

	if deps.NotificationUC != nil {
		mux.Handle("/notifications", handlers.NewNotificationHandler(deps.NotificationUC))
	}

	if deps.AuthFlowUC != nil {
		af := handlers.NewAuthFlowHandler(deps.AuthFlowUC, deps.AppBaseURL)
		mux.Handle("/auth/", af)
	}

	if deps.CatalogUC != nil {
		cat := handlers.NewCatalogHandler(deps.CatalogUC)
		mux.Handle("/catalog", cat)
		mux.Handle("/catalog/", cat)
	}

	if deps.CheckoutUC != nil {
		mux.Handle("/checkout/confirm", handlers.NewCheckoutHandler(deps.CheckoutUC))
	}

	return middleware.RequestID(middleware.Recover(mux))
}
