// Package router wires services, handlers and middleware into the HTTP API.
package router

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"reconstruction/internal/config"
	_ "reconstruction/internal/docs" // Import swagger docs
	"reconstruction/internal/handlers"
	"reconstruction/internal/middleware"
	"reconstruction/internal/services"
	"reconstruction/internal/validator"
)

// Services bundles the service layer the router serves.
type Services struct {
	Categories   services.CategoryServicer
	Articles     services.ArticleServicer
	Transactions services.TransactionServicer
	Summary      services.SummaryServicer
	Reminders    services.ReminderServicer
	Dashboard    services.DashboardServicer
}

// NewServices builds the service layer over db. now and loc decide what
// "today" means for the dashboard.
func NewServices(db *gorm.DB, now func() time.Time, loc *time.Location) Services {
	reminders := services.NewReminderService(db)
	return Services{
		Categories:   services.NewCategoryService(db),
		Articles:     services.NewArticleService(db),
		Transactions: services.NewTransactionService(db),
		Summary:      services.NewSummaryService(db),
		Reminders:    reminders,
		Dashboard:    services.NewDashboardService(db, reminders, now, loc),
	}
}

// New returns the configured Gin engine. Everything under /api except
// /api/health requires the X-API-Key header.
func New(cfg *config.Config, svc Services) *gin.Engine {
	validator.Register()

	categoryHandler := handlers.NewCategoryHandler(svc.Categories, svc.Summary)
	articleHandler := handlers.NewArticleHandler(svc.Articles)
	transactionHandler := handlers.NewTransactionHandler(svc.Transactions)
	summaryHandler := handlers.NewSummaryHandler(svc.Summary)
	exportHandler := handlers.NewExportHandler(svc.Summary)
	reminderHandler := handlers.NewReminderHandler(svc.Reminders)
	dashboardHandler := handlers.NewDashboardHandler(svc.Dashboard)

	r := gin.New()
	r.Use(middleware.RequestLogging())
	r.Use(middleware.Recovery())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORS())

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.GET("/health", handlers.Health)

	protected := api.Group("")
	protected.Use(middleware.APIKeyAuth(cfg.APIKey))

	costs := protected.Group("/costs")
	costs.GET("/summary", summaryHandler.GetSummary)
	costs.GET("/export", exportHandler.ExportTransactions)

	categories := costs.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.ListCategories)
	categories.GET("/:id", categoryHandler.GetCategory)
	categories.PATCH("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	articles := costs.Group("/articles")
	articles.POST("", articleHandler.CreateArticle)
	articles.GET("", articleHandler.ListArticles)
	articles.GET("/:id", articleHandler.GetArticle)
	articles.PATCH("/:id", articleHandler.UpdateArticle)
	articles.DELETE("/:id", articleHandler.DeleteArticle)

	transactions := costs.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PATCH("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	dashboard := protected.Group("/dashboard")
	dashboard.GET("/today", dashboardHandler.GetToday)
	dashboard.GET("/week", dashboardHandler.GetWeek)
	dashboard.GET("/overview", dashboardHandler.GetOverview)

	reminders := protected.Group("/reminders")
	reminders.POST("", reminderHandler.CreateReminder)
	reminders.GET("", reminderHandler.ListReminders)
	reminders.GET("/:id", reminderHandler.GetReminder)
	reminders.PATCH("/:id", reminderHandler.UpdateReminder)
	reminders.DELETE("/:id", reminderHandler.DeleteReminder)

	return r
}
