package main

import (
	"log"
	"os"
	"time"

	"glamor-shop/internal/auth"
	"glamor-shop/internal/database"
	"glamor-shop/internal/handlers"
	"glamor-shop/internal/middleware"
	"glamor-shop/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}

	auth.SetSecret(os.Getenv("JWT_SECRET"))

	// One static back-office account. Swap the authenticator to plug in a
	// real credential store.
	adminUser := os.Getenv("ADMIN_USER")
	if adminUser == "" {
		adminUser = "nima"
	}
	adminPass := os.Getenv("ADMIN_PASS")
	if adminPass == "" {
		adminPass = "1234"
	}
	authn, err := auth.NewStaticAuthenticator(adminUser, adminPass)
	if err != nil {
		log.Fatal("Failed to set up authenticator:", err)
	}

	// Session-scoped SQL ledger for the finance reports. Everything in it
	// dies with the process.
	ledger, err := database.Open()
	if err != nil {
		log.Fatal("Failed to open session ledger:", err)
	}
	log.Println("✅ Session ledger ready (sqlite :memory:)")

	shop := store.New(authn, ledger)
	shop.LoadCatalog(store.SeedProducts())
	shop.LoadBankAccounts(store.SeedBankAccounts())

	h := handlers.New(shop, ledger)

	r := gin.Default()

	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "http://localhost:5173"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })
	r.POST("/login", h.Login)

	// --- STOREFRONT ---
	api := r.Group("/api")
	{
		api.GET("/products", h.GetProducts)
		api.GET("/products/:id", h.GetProduct)

		api.GET("/cart", h.GetCart)
		api.POST("/cart", h.AddToCart)
		api.PATCH("/cart", h.UpdateCartQuantity)
		api.DELETE("/cart", h.RemoveFromCart)

		api.GET("/wishlist", h.GetWishlist)
		api.POST("/wishlist", h.AddToWishlist)
		api.DELETE("/wishlist/:id", h.RemoveFromWishlist)

		api.POST("/checkout", h.Checkout)

		api.POST("/customers/login", h.CustomerLogin)
		api.POST("/customers/register", h.CustomerRegister)
		api.POST("/customers/logout", h.CustomerLogout)
		api.GET("/customers/me/orders", h.MyOrders)
	}

	// --- BACK-OFFICE ---
	admin := api.Group("/admin")
	admin.Use(middleware.AdminAuth())
	{
		admin.POST("/logout", h.Logout)

		admin.POST("/products", h.AddProduct)
		admin.PUT("/products/:id", h.UpdateProduct)
		admin.DELETE("/products/:id", h.DeleteProduct)

		admin.GET("/orders", h.GetOrders)
		admin.PUT("/orders/:id/status", h.UpdateOrderStatus)

		admin.GET("/customers", h.GetCustomers)

		admin.GET("/finance/entries", h.GetFinancialEntries)
		admin.GET("/finance/accounts", h.GetBankAccounts)
		admin.POST("/finance/daily-report", h.SubmitDailyReport)
		admin.GET("/finance/summary", h.GetFinanceSummary)

		admin.GET("/reports", h.GetSalesReport)
		admin.GET("/reports/stock", h.GetStockReport)

		admin.POST("/ask", h.AskAssistant)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Server starting on :" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
