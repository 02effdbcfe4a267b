package routes

import (
	"eyewear-store/internal/admin"
	"eyewear-store/internal/auth"
	"eyewear-store/internal/blog"
	"eyewear-store/internal/cache"
	"eyewear-store/internal/catalog"
	"eyewear-store/internal/handlers"
	"eyewear-store/internal/kvstore"
	"eyewear-store/internal/middleware"
	"eyewear-store/internal/models"
	"eyewear-store/internal/upload"

	"github.com/gin-gonic/gin"
)

// SiteNamespace guarda los datos compartidos del panel (no por visitante)
const SiteNamespace = "site"

type Dependencies struct {
	Store           *kvstore.Store
	Catalog         *catalog.Catalog
	Blog            *blog.Blog
	Cache           *cache.Cache
	Gate            *auth.Gate
	Uploads         *upload.Service
	Defaults        models.Settings
	WhatsAppBaseURL string
}

func RegisterRoutes(router *gin.Engine, d Dependencies) {
	site := d.Store.Namespace(SiteNamespace)
	settings := admin.NewSettings(site, d.Defaults)
	reviews := admin.NewReviews(site)
	categories := admin.NewCategories(site)
	checkout := &handlers.Checkout{Settings: settings, BaseURL: d.WhatsAppBaseURL}

	products := handlers.NewProductHandler(d.Catalog, d.Cache, reviews, categories, checkout)
	carts := handlers.NewCartHandler(d.Store, d.Catalog, checkout)
	posts := handlers.NewBlogHandler(d.Blog)
	uploads := handlers.NewUploadHandler(d.Uploads)
	adm := handlers.NewAdminHandler(handlers.AdminDeps{
		Root:       d.Store,
		Gate:       d.Gate,
		Customers:  admin.NewCustomers(site),
		Reviews:    reviews,
		Categories: categories,
		Media:      admin.NewMedia(site),
		Settings:   settings,
		Dashboard:  admin.NewDashboard(site),
		OnChange:   func() { d.Cache.DeleteByPrefix(handlers.SiteCachePrefix) },
	})

	router.GET("/healthz", handlers.Health(d.Store))

	v1 := router.Group("/v1")
	{
		v1.GET("/products", products.ListProducts)
		v1.GET("/products/highlights", products.Highlights)
		v1.GET("/products/:id", products.GetProduct)
		v1.GET("/products/:id/related", products.RelatedProducts)
		v1.GET("/products/:id/whatsapp", products.BuyNow)
		v1.GET("/products/:id/enquiry", products.Enquiry)
		v1.GET("/categories", products.ListCategories)
		v1.GET("/reviews", products.ListReviews)

		v1.GET("/cart", carts.GetCart)
		v1.POST("/cart/items", carts.AddItem)
		v1.PATCH("/cart/items/:id", carts.UpdateQuantity)
		v1.DELETE("/cart/items/:id", carts.RemoveItem)
		v1.DELETE("/cart", carts.ClearCart)
		v1.GET("/cart/totals", carts.GetTotals)
		v1.POST("/cart/checkout", carts.Checkout)

		v1.GET("/wishlist", carts.GetWishlist)
		v1.POST("/wishlist/:id", carts.ToggleWishlist)
		v1.DELETE("/wishlist/:id", carts.RemoveWishlist)

		v1.GET("/blog", posts.ListPosts)
		v1.GET("/blog/:slug", posts.GetPost)

		v1.POST("/upload", uploads.Upload)
		v1.GET("/healthz", handlers.Health(d.Store))
	}

	a := v1.Group("/admin")
	{
		a.POST("/login", adm.Login)
		a.POST("/logout", adm.Logout)
		a.GET("/session", adm.Session)
		a.POST("/token", adm.IssueToken)
	}

	guarded := a.Group("", middleware.AdminGuard(d.Gate, d.Store))
	{
		guarded.GET("/customers", adm.ListCustomers)
		guarded.GET("/customers/export.csv", adm.ExportCustomers)
		guarded.POST("/customers", adm.CreateCustomer)
		guarded.PUT("/customers/:id", adm.UpdateCustomer)
		guarded.DELETE("/customers/:id", adm.DeleteCustomer)

		guarded.GET("/reviews", adm.ListReviews)
		guarded.PATCH("/reviews/:id/approval", adm.ToggleReview)
		guarded.DELETE("/reviews/:id", adm.DeleteReview)

		guarded.GET("/categories", adm.ListCategories)
		guarded.POST("/categories", adm.CreateCategory)
		guarded.PUT("/categories/:id", adm.UpdateCategory)
		guarded.DELETE("/categories/:id", adm.DeleteCategory)

		guarded.GET("/media", adm.ListMedia)
		guarded.POST("/media", adm.UploadMedia)
		guarded.POST("/media/folders", adm.CreateFolder)
		guarded.DELETE("/media/:id", adm.DeleteMedia)

		guarded.GET("/settings", adm.GetSettings)
		guarded.PUT("/settings", adm.SaveSettings)
		guarded.DELETE("/settings", adm.ResetSettings)

		guarded.GET("/dashboard", adm.Dashboard)
	}
}
