package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eyewear-store/internal/admin"
	"eyewear-store/internal/auth"
	"eyewear-store/internal/kvstore"
	"eyewear-store/internal/middleware"
	"eyewear-store/internal/models"
)

// AdminHandler atiende login y las secciones del panel
type AdminHandler struct {
	root       *kvstore.Store
	gate       *auth.Gate
	customers  *admin.Customers
	reviews    *admin.Reviews
	categories *admin.Categories
	media      *admin.Media
	settings   *admin.SettingsStore
	dashboard  *admin.Dashboard
	onChange   func()
}

type AdminDeps struct {
	Root       *kvstore.Store
	Gate       *auth.Gate
	Customers  *admin.Customers
	Reviews    *admin.Reviews
	Categories *admin.Categories
	Media      *admin.Media
	Settings   *admin.SettingsStore
	Dashboard  *admin.Dashboard
	// OnChange se llama cuando cambian datos que la tienda cachea
	OnChange func()
}

func NewAdminHandler(d AdminDeps) *AdminHandler {
	onChange := d.OnChange
	if onChange == nil {
		onChange = func() {}
	}
	return &AdminHandler{
		root:       d.Root,
		gate:       d.Gate,
		customers:  d.Customers,
		reviews:    d.Reviews,
		categories: d.Categories,
		media:      d.Media,
		settings:   d.Settings,
		dashboard:  d.Dashboard,
		onChange:   onChange,
	}
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type mediaUploadRequest struct {
	Name    string `json:"name" binding:"required"`
	DataURL string `json:"data_url" binding:"required"`
	Folder  string `json:"folder"`
}

type folderRequest struct {
	Name string `json:"name"`
}

func (h *AdminHandler) session(c *gin.Context) *auth.Session {
	return h.gate.Session(middleware.ProfileStore(c, h.root))
}

// Login valida credenciales y deja la marca de sesión en el perfil
func (h *AdminHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	session := h.session(c)
	ctx := c.Request.Context()
	switch err := session.Login(ctx, req.Username, req.Password); {
	case errors.Is(err, auth.ErrInvalidCredentials):
		zap.L().Warn("admin login rejected", zap.String("profile", middleware.ProfileID(c)))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	case errors.Is(err, auth.ErrSessionNotStored):
		// credenciales válidas pero sin storage no hay sesión; el token sigue disponible
		c.JSON(http.StatusOK, gin.H{"authenticated": false, "stored": false})
		return
	case err != nil:
		c.Abort()
		return
	}

	expires, _ := session.ExpiresAt(ctx)
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "stored": true, "expires_at": expires})
}

func (h *AdminHandler) Logout(c *gin.Context) {
	h.session(c).Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"authenticated": false})
}

func (h *AdminHandler) Session(c *gin.Context) {
	ctx := c.Request.Context()
	session := h.session(c)
	if !session.IsAuthenticated(ctx) {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	expires, _ := session.ExpiresAt(ctx)
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "expires_at": expires})
}

// IssueToken entrega un bearer token para clientes sin cookie
func (h *AdminHandler) IssueToken(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if !h.gate.Check(req.Username, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidCredentials.Error()})
		return
	}

	token, expires, err := h.gate.IssueToken(req.Username)
	if err != nil {
		zap.L().Error("failed to sign admin token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"token_type": "Bearer",
		"expires_in": int64(h.gate.TTL().Seconds()),
		"expires_at": expires,
	})
}

// ---- clientes ----

func (h *AdminHandler) ListCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"customers": h.customers.Search(c.Request.Context(), c.Query("q"))})
}

func (h *AdminHandler) CreateCustomer(c *gin.Context) {
	var req models.Customer
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"customer": h.customers.Create(c.Request.Context(), req)})
}

// UpdateCustomer con id inexistente no es error: responde updated=false
func (h *AdminHandler) UpdateCustomer(c *gin.Context) {
	var req models.CustomerUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	customer, ok := h.customers.Patch(c.Request.Context(), c.Param("id"), req)
	c.JSON(http.StatusOK, gin.H{"customer": nullable(customer, ok), "updated": ok})
}

func (h *AdminHandler) DeleteCustomer(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"customers": h.customers.Delete(c.Request.Context(), c.Param("id"))})
}

// ExportCustomers descarga el listado (filtrado por q) como CSV
func (h *AdminHandler) ExportCustomers(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="customers.csv"`)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)
	if err := h.customers.ExportCSV(c.Request.Context(), c.Query("q"), c.Writer); err != nil {
		zap.L().Error("customer export failed", zap.Error(err))
		_ = c.Error(err)
	}
}

// ---- reseñas ----

func (h *AdminHandler) ListReviews(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reviews": h.reviews.Search(c.Request.Context(), c.Query("q"))})
}

func (h *AdminHandler) ToggleReview(c *gin.Context) {
	review, ok := h.reviews.ToggleApproval(c.Request.Context(), c.Param("id"))
	if ok {
		h.onChange()
	}
	c.JSON(http.StatusOK, gin.H{"review": nullable(review, ok), "updated": ok})
}

func (h *AdminHandler) DeleteReview(c *gin.Context) {
	reviews := h.reviews.Delete(c.Request.Context(), c.Param("id"))
	h.onChange()
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// ---- categorías ----

func (h *AdminHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.categories.Search(c.Request.Context(), c.Query("q"))})
}

func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req models.Category
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	category := h.categories.Create(c.Request.Context(), req)
	h.onChange()
	c.JSON(http.StatusCreated, gin.H{"category": category})
}

func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	var req models.Category
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	category, ok := h.categories.Save(c.Request.Context(), c.Param("id"), req)
	if ok {
		h.onChange()
	}
	c.JSON(http.StatusOK, gin.H{"category": nullable(category, ok), "updated": ok})
}

func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	categories := h.categories.Delete(c.Request.Context(), c.Param("id"))
	h.onChange()
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// ---- media ----

func (h *AdminHandler) ListMedia(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, gin.H{
		"items":   h.media.Files(ctx, c.Query("q"), c.Query("folder")),
		"folders": h.media.Folders(ctx),
	})
}

func (h *AdminHandler) UploadMedia(c *gin.Context) {
	var req mediaUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	item, err := h.media.Upload(c.Request.Context(), req.Name, req.DataURL, req.Folder)
	switch {
	case errors.Is(err, admin.ErrMediaTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
	case err != nil:
		badRequest(c, err.Error())
	default:
		c.JSON(http.StatusCreated, gin.H{"item": item})
	}
}

func (h *AdminHandler) CreateFolder(c *gin.Context) {
	var req folderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	item, err := h.media.CreateFolder(c.Request.Context(), req.Name)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": item})
}

func (h *AdminHandler) DeleteMedia(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.media.Delete(c.Request.Context(), c.Param("id"))})
}

// ---- ajustes ----

func (h *AdminHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"settings": h.settings.Get(c.Request.Context()),
		"defaults": h.settings.Defaults(),
	})
}

// SaveSettings reemplaza los ajustes completos; saved=false si el storage falló
func (h *AdminHandler) SaveSettings(c *gin.Context) {
	var req models.Settings
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	saved := h.settings.Save(c.Request.Context(), req)
	h.onChange()
	c.JSON(http.StatusOK, gin.H{"settings": req, "saved": saved})
}

func (h *AdminHandler) ResetSettings(c *gin.Context) {
	settings := h.settings.Reset(c.Request.Context())
	h.onChange()
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboard.Load(c.Request.Context()))
}

// nullable devuelve nil cuando ok es false, para que el JSON muestre null
func nullable[T any](v T, ok bool) any {
	if !ok {
		return nil
	}
	return v
}
