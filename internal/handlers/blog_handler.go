package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eyewear-store/internal/blog"
)

type BlogHandler struct {
	blog *blog.Blog
}

func NewBlogHandler(b *blog.Blog) *BlogHandler {
	return &BlogHandler{blog: b}
}

// ListPosts lista los posts (sin cuerpo) filtrados por tag y búsqueda
func (h *BlogHandler) ListPosts(c *gin.Context) {
	posts := h.blog.Find(c.Query("tag"), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"posts": posts, "tags": h.blog.Tags()})
}

func (h *BlogHandler) GetPost(c *gin.Context) {
	post, ok := h.blog.BySlug(c.Param("slug"))
	if !ok {
		notFound(c, "post not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}
