package api

import (
	"net/http"

	"tripbooking/internal/resource"
	"tripbooking/internal/service/customers"

	"github.com/gin-gonic/gin"
)

// CustomerHandler is the generic resource handler plus the login route.
type CustomerHandler struct {
	*ResourceHandler
	service customers.UseCase
}

type loginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func NewCustomerHandler(service customers.UseCase) *CustomerHandler {
	return &CustomerHandler{
		ResourceHandler: NewResourceHandler("customer", service),
		service:         service,
	}
}

func (h *CustomerHandler) Register(router *gin.RouterGroup) {
	router.POST("/login", h.login)
	h.ResourceHandler.Register(router)
}

func (h *CustomerHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, resource.NewValidationError("phone and password are required"))
		return
	}

	customer, err := h.service.Login(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}
