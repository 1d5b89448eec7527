package httpserver

import (
	"context"
	"log"
	"time"

	"foodrepublic/internal/domain"
	invoicerepo "foodrepublic/internal/repository/invoice"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TableService manages dining tables.
type TableService interface {
	List(ctx context.Context) ([]domain.Table, error)
	Create(ctx context.Context) (*domain.Table, error)
	Delete(ctx context.Context, name string) error
}

// MenuService manages the per-category catalog collections.
type MenuService interface {
	List(ctx context.Context, category string) ([]domain.MenuItem, error)
	Create(ctx context.Context, category, itemName string, itemPrice int64) (*domain.MenuItem, error)
	Delete(ctx context.Context, category, id string) error
}

// UserService manages staff accounts.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, name, email, role string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// MemberService manages loyalty memberships.
type MemberService interface {
	List(ctx context.Context) ([]domain.Member, error)
	Lookup(ctx context.Context, mobile string) (*domain.Member, error)
	Create(ctx context.Context, name, mobile string, discountValue int64) (*domain.Member, error)
	Delete(ctx context.Context, id string) error
}

// InvoiceService manages sold invoices.
type InvoiceService interface {
	Create(ctx context.Context, in invoicerepo.CreateInvoiceInput) (string, error)
	List(ctx context.Context) ([]domain.SoldInvoice, error)
	Get(ctx context.Context, id string) (*domain.SoldInvoice, error)
}

// Deps bundles the services the router needs.
type Deps struct {
	Tables   TableService
	Menu     MenuService
	Users    UserService
	Members  MemberService
	Invoices InvoiceService
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	h := &handlers{deps: deps, logger: logger}

	router.GET("/", rootHandler)
	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")

	api.GET("/tables", h.listTables)
	api.POST("/add-table", h.createTable)
	api.DELETE("/delete-table/:name", h.deleteTable)

	for _, category := range domain.MenuCategories {
		api.GET("/get-"+category, h.listMenu(category))
		api.POST("/add-"+category, h.createMenuItem(category))
		api.DELETE("/delete-"+category+"/:id", h.deleteMenuItem(category))
	}

	api.GET("/get-users", h.listUsers)
	api.POST("/add-user", h.createUser)
	api.DELETE("/delete-user/:id", h.deleteUser)

	api.GET("/get-members", h.getMembers)
	api.POST("/add-member", h.createMember)
	api.DELETE("/delete-member/:id", h.deleteMember)

	api.GET("/get-sold-invoices", h.listInvoices)
	api.GET("/get-sold-invoices/:id", h.getInvoice)
	api.POST("/post-sold-invoices", h.createInvoice)

	return router, nil
}
