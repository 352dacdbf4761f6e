package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/elitecrew/elite-crew-backend/internal/core/ports/services"
	"github.com/elitecrew/elite-crew-backend/internal/dto"
	"github.com/elitecrew/elite-crew-backend/internal/middleware"
)

// ContactHandler handles public contact form submissions.
type ContactHandler struct {
	contactService portssvc.ContactSvcFacade
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService portssvc.ContactSvcFacade) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// registerContactRoutes sets up the public contact route with its own rate
// limit so the unauthenticated form cannot be flooded.
func registerContactRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := NewContactHandler(services.Contact)

	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()

	r.POST("/api/v1/contact", middleware.RateLimit(limiter.New(store, rate)), h.Submit)
}

// Submit godoc
// @Summary Submit a contact message
// @Description Public endpoint. Stores the message for later follow up.
// @Tags contact
// @Accept json
// @Produce json
// @Param message body dto.ContactRequest true "Contact message"
// @Success 201 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Router /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.contactService.SubmitMessage(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Message received. We will get back to you soon."})
}
