package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/contracts-service/internal/model"
	"github.com/nurpe/contracts-service/internal/service"
)

type createCustomerRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contactPerson" binding:"required"`
	Email         string `json:"email" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Address       string `json:"address" binding:"required"`
	Status        string `json:"status"`
}

type updateCustomerRequest struct {
	Name          *string `json:"name"`
	ContactPerson *string `json:"contactPerson"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	Status        *string `json:"status"`
}

func (r updateCustomerRequest) patch() model.CustomerPatch {
	patch := model.CustomerPatch{
		Name:          r.Name,
		ContactPerson: r.ContactPerson,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
	}
	if r.Status != nil {
		status := model.CustomerStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}

func (h *Handler) listCustomers(c *gin.Context) {
	customers, err := h.customers.List(c.Request.Context(), service.CustomerFilter{
		Search: c.Query("search"),
		Status: model.CustomerStatus(c.Query("status")),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": customers, "total": len(customers)})
}

func (h *Handler) getCustomer(c *gin.Context) {
	customer, err := h.customers.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) createCustomer(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := h.customers.Create(c.Request.Context(), service.CreateCustomerInput{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		Status:        model.CustomerStatus(req.Status),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *Handler) updateCustomer(c *gin.Context) {
	var req updateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := h.customers.Update(c.Request.Context(), c.Param("id"), req.patch())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) customerContracts(c *gin.Context) {
	result, err := h.customers.Contracts(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
