// internal/platform/di/container.go
package di

import (
	"context"
	"fmt"
	"log"
	"strings"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	httpin "campusink/internal/adapters/in/http"
	"campusink/internal/adapters/out/db"
	"campusink/internal/adapters/out/gcs"
	"campusink/internal/adapters/out/identity"
	"campusink/internal/adapters/out/kv"
	"campusink/internal/adapters/out/mail"
	usecase "campusink/internal/application/usecase"
	cartdom "campusink/internal/domain/cart"
	"campusink/internal/infra/config"
	"campusink/internal/infra/database"
)

// Container bundles the wired dependencies for main.go. Collaborators
// initialize best-effort: a missing collaborator leaves its usecase nil and
// the router simply does not mount the affected routes.
type Container struct {
	Config *config.Config

	UploadUC       *usecase.UploadUsecase
	NotificationUC *usecase.NotificationUsecase
	AuthFlowUC     *usecase.AuthFlowUsecase
	CatalogUC      *usecase.CatalogUsecase
	CheckoutUC     *usecase.CheckoutUsecase

	IdentityProvider *identity.FirebaseIdentity

	gcsClient     *storage.Client
	fsClient      *firestore.Client
	catalogDB     *database.DB
	cartPersister cartdom.Persister
}

// NewContainer wires the whole dependency graph.
func NewContainer(ctx context.Context) (*Container, error) {
	cfg := config.Load()
	c := &Container{Config: cfg}

	var clientOpts []option.ClientOption
	if creds := strings.TrimSpace(cfg.GCPCreds); creds != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(creds))
	}

	// Firebase Auth (identity provider)
	var authClient *fbauth.Client
	{
		fbCfg := &firebase.Config{ProjectID: cfg.FirebaseProjectID}
		app, err := firebase.NewApp(ctx, fbCfg, clientOpts...)
		if err != nil {
			log.Printf("[di] WARN: firebase app init failed: %v", err)
		} else if authClient, err = app.Auth(ctx); err != nil {
			log.Printf("[di] WARN: firebase auth init failed: %v", err)
			authClient = nil
		} else {
			log.Printf("[di] Firebase Auth initialized project=%s", cfg.FirebaseProjectID)
		}
	}
	if authClient != nil {
		c.IdentityProvider = identity.NewFirebaseIdentity(authClient, cfg.AppBaseURL+"/auth/verify")
	}

	// GCS (upload pipeline)
	{
		client, err := storage.NewClient(ctx, clientOpts...)
		if err != nil {
			log.Printf("[di] WARN: storage.NewClient failed: %v (uploads disabled)", err)
		} else {
			c.gcsClient = client
			if strings.TrimSpace(cfg.GCSBucket) == "" {
				log.Printf("[di] WARN: GCS_BUCKET is empty (uploads disabled)")
			} else {
				assets := gcs.NewAssetRepositoryGCS(client, cfg.GCSBucket)
				c.UploadUC = usecase.NewUploadUsecase(assets)
			}
		}
	}

	// Firestore (cart/session store blobs)
	{
		client, err := firestore.NewClient(ctx, cfg.FirestoreProjectID, clientOpts...)
		if err != nil {
			log.Printf("[di] WARN: firestore.NewClient failed: %v (cart snapshots held in memory)", err)
		} else {
			c.fsClient = client
			c.cartPersister = kv.NewFirestorePersister(client, "")
			log.Printf("[di] Firestore connected project=%s", cfg.FirestoreProjectID)
		}
	}

	// SendGrid mailer (notifications, auth flows, checkout)
	{
		apiKey, err := cfg.ResolveSendGridAPIKey(ctx)
		if err != nil {
			log.Printf("[di] WARN: sendgrid key unavailable: %v (mail disabled)", err)
		} else {
			client := mail.NewSendGridClient(apiKey, cfg.SendGridFromName)
			mailer := mail.NewStorefrontMailer(client, cfg.SendGridFrom, cfg.AppBaseURL)

			c.NotificationUC = usecase.NewNotificationUsecase(mailer)
			c.CheckoutUC = usecase.NewCheckoutUsecase(mailer, cfg.PrinterEmail, cfg.PrinterName)
			if c.IdentityProvider != nil {
				c.AuthFlowUC = usecase.NewAuthFlowUsecase(c.IdentityProvider, mailer)
			}
		}
	}

	// Catalog database (optional)
	if cfg.HasCatalogDB() {
		conn, err := database.NewConnection(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
		if err != nil {
			return nil, fmt.Errorf("di: catalog db: %w", err)
		}
		c.catalogDB = conn
		c.CatalogUC = usecase.NewCatalogUsecase(db.NewProductRepositoryPG(conn.Client))
	} else {
		log.Printf("[di] catalog db not configured (catalog routes disabled)")
	}

	return c, nil
}

// NewCartStore builds a session cart store on the shared persister:
// Firestore when the client connected, process memory otherwise. Stores
// created under the same name share persisted state.
func (c *Container) NewCartStore(ctx context.Context, name string) *cartdom.Store {
	if c.cartPersister == nil {
		c.cartPersister = kv.NewMemoryPersister()
	}
	return cartdom.NewStore(ctx, name, c.cartPersister)
}

// RouterDeps assembles the injection bundle for the HTTP router.
func (c *Container) RouterDeps() httpin.RouterDeps {
	deps := httpin.RouterDeps{
		UploadUC:          c.UploadUC,
		NotificationUC:    c.NotificationUC,
		AuthFlowUC:        c.AuthFlowUC,
		CatalogUC:         c.CatalogUC,
		CheckoutUC:        c.CheckoutUC,
		AppBaseURL:        c.Config.AppBaseURL,
		ProfileImageTypes: c.Config.ProfileImageTypes,
	}
	if c.IdentityProvider != nil {
		deps.Identity = c.IdentityProvider
	}
	return deps
}

// Close releases held clients.
func (c *Container) Close() {
	if c.gcsClient != nil {
		_ = c.gcsClient.Close()
	}
	if c.fsClient != nil {
		_ = c.fsClient.Close()
	}
	if c.catalogDB != nil {
		_ = c.catalogDB.Close()
	}
}
