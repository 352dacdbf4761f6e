package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/elitecrew/elite-crew-backend/internal/core/ports/services"
	"github.com/elitecrew/elite-crew-backend/internal/dto"
	"github.com/elitecrew/elite-crew-backend/internal/middleware"
	s3platform "github.com/elitecrew/elite-crew-backend/internal/platform/s3"
)

// BlogHandler handles blog post, like and comment requests.
type BlogHandler struct {
	blogService portssvc.BlogSvcFacade
	s3Client    *s3platform.Client
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(blogService portssvc.BlogSvcFacade, s3Client *s3platform.Client) *BlogHandler {
	return &BlogHandler{blogService: blogService, s3Client: s3Client}
}

func registerBlogRoutes(rg *gin.RouterGroup, admin gin.HandlerFunc, services *portssvc.ServiceContainer, s3Client *s3platform.Client) {
	h := NewBlogHandler(services.Blog, s3Client)

	blogs := rg.Group("/blogs")
	{
		blogs.GET("", h.ListBlogs)
		blogs.GET("/:id", h.GetBlog)
		blogs.POST("/:id/like", h.ToggleLike)
		blogs.POST("/:id/comments", h.AddComment)

		blogs.POST("", admin, h.CreateBlog)
		blogs.PUT("/:id", admin, h.UpdateBlog)
		blogs.DELETE("/:id", admin, h.DeleteBlog)
	}
}

// ListBlogs godoc
// @Summary List blog posts
// @Tags blogs
// @Produce json
// @Success 200 {array} dto.BlogResponse
// @Security BearerAuth
// @Router /blogs [get]
func (h *BlogHandler) ListBlogs(c *gin.Context) {
	blogs, err := h.blogService.ListBlogs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBlogResponses(blogs))
}

// GetBlog godoc
// @Summary Get a blog post with its comments
// @Tags blogs
// @Produce json
// @Param id path string true "Blog ID"
// @Success 200 {object} dto.BlogDetailResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /blogs/{id} [get]
func (h *BlogHandler) GetBlog(c *gin.Context) {
	blog, comments, err := h.blogService.GetBlogByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BlogDetailResponse{
		BlogResponse: dto.ToBlogResponse(blog),
		Comments:     comments,
	})
}

// CreateBlog godoc
// @Summary Create a blog post
// @Description Admin only. Accepts multipart form with an optional image file.
// @Tags blogs
// @Accept mpfd
// @Produce json
// @Success 201 {object} dto.BlogResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /blogs [post]
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req dto.CreateBlogRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	imageURL, err := uploadImage(c, h.s3Client, "image", "blogs")
	if err != nil {
		respondError(c, err)
		return
	}
	req.ImageURL = imageURL

	blog, err := h.blogService.CreateBlog(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBlogResponse(blog))
}

// UpdateBlog godoc
// @Summary Update a blog post
// @Description Admin only. Fields absent from the form keep their value.
// @Tags blogs
// @Accept mpfd
// @Produce json
// @Param id path string true "Blog ID"
// @Success 200 {object} dto.BlogResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /blogs/{id} [put]
func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	var req dto.UpdateBlogRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	imageURL, err := uploadImage(c, h.s3Client, "image", "blogs")
	if err != nil {
		respondError(c, err)
		return
	}
	req.ImageURL = imageURL

	blog, err := h.blogService.UpdateBlog(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBlogResponse(blog))
}

// DeleteBlog godoc
// @Summary Delete a blog post
// @Description Admin only. Removes its likes and comments as well.
// @Tags blogs
// @Produce json
// @Param id path string true "Blog ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /blogs/{id} [delete]
func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	if err := h.blogService.DeleteBlog(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog deleted"})
}

// ToggleLike godoc
// @Summary Like or unlike a blog post
// @Description Toggles the caller's like and returns the new state with the post's like count.
// @Tags blogs
// @Produce json
// @Param id path string true "Blog ID"
// @Success 200 {object} dto.LikeResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /blogs/{id}/like [post]
func (h *BlogHandler) ToggleLike(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	liked, count, err := h.blogService.ToggleLike(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Blog unliked"
	if liked {
		message = "Blog liked"
	}
	c.JSON(http.StatusOK, dto.LikeResponse{Message: message, Liked: liked, LikeCount: count})
}

// AddComment godoc
// @Summary Comment on a blog post
// @Tags blogs
// @Accept json
// @Produce json
// @Param id path string true "Blog ID"
// @Param comment body dto.AddCommentRequest true "Comment text"
// @Success 201 {object} domain.BlogComment
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /blogs/{id}/comments [post]
func (h *BlogHandler) AddComment(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Comment text is required"})
		return
	}

	comment, err := h.blogService.AddComment(c.Request.Context(), c.Param("id"), userID, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}
