package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/nurpe/contracts-service/internal/model"
	"github.com/nurpe/contracts-service/internal/service"
)

type createContractRequest struct {
	CustomerID  string          `json:"customerId" binding:"required"`
	Type        string          `json:"type" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	StartDate   string          `json:"startDate" binding:"required"`
	EndDate     string          `json:"endDate" binding:"required"`
	RenewalDate string          `json:"renewalDate" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	Notes       string          `json:"notes"`
}

type updateContractRequest struct {
	CustomerID  *string          `json:"customerId"`
	Type        *string          `json:"type"`
	Name        *string          `json:"name"`
	StartDate   *string          `json:"startDate"`
	EndDate     *string          `json:"endDate"`
	RenewalDate *string          `json:"renewalDate"`
	Amount      *decimal.Decimal `json:"amount"`
	Status      *string          `json:"status"`
	Notes       *string          `json:"notes"`
}

type renewContractRequest struct {
	EndDate     string          `json:"endDate" binding:"required"`
	RenewalDate string          `json:"renewalDate" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
}

func (r updateContractRequest) patch() (model.ContractPatch, error) {
	patch := model.ContractPatch{
		CustomerID: r.CustomerID,
		Name:       r.Name,
		Amount:     r.Amount,
		Notes:      r.Notes,
	}
	if r.Type != nil {
		kind := model.ContractType(*r.Type)
		patch.Type = &kind
	}
	if r.Status != nil {
		status := model.ContractStatus(*r.Status)
		patch.Status = &status
	}

	var err error
	if patch.StartDate, err = parseOptionalDate(r.StartDate); err != nil {
		return patch, err
	}
	if patch.EndDate, err = parseOptionalDate(r.EndDate); err != nil {
		return patch, err
	}
	if patch.RenewalDate, err = parseOptionalDate(r.RenewalDate); err != nil {
		return patch, err
	}
	return patch, nil
}

func (h *Handler) listContracts(c *gin.Context) {
	contracts, err := h.contracts.List(c.Request.Context(), service.ContractFilter{
		Search: c.Query("search"),
		Status: model.ContractStatus(c.Query("status")),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": contracts, "total": len(contracts)})
}

func (h *Handler) getContract(c *gin.Context) {
	contract, err := h.contracts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contract)
}

func (h *Handler) createContract(c *gin.Context) {
	var req createContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate"})
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate"})
		return
	}
	renewal, err := parseDate(req.RenewalDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid renewalDate"})
		return
	}

	contract, err := h.contracts.Create(c.Request.Context(), service.CreateContractInput{
		CustomerID:  req.CustomerID,
		Type:        model.ContractType(req.Type),
		Name:        req.Name,
		StartDate:   start,
		EndDate:     end,
		RenewalDate: renewal,
		Amount:      req.Amount,
		Status:      model.ContractStatus(req.Status),
		Notes:       req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contract)
}

func (h *Handler) updateContract(c *gin.Context) {
	var req updateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	patch, err := req.patch()
	if err != nil {
		h.handleError(c, err)
		return
	}

	contract, err := h.contracts.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contract)
}

func (h *Handler) renewContract(c *gin.Context) {
	var req renewContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	end, err := parseDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate"})
		return
	}
	renewal, err := parseDate(req.RenewalDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid renewalDate"})
		return
	}

	contract, err := h.contracts.Renew(c.Request.Context(), c.Param("id"), service.RenewContractInput{
		EndDate:     end,
		RenewalDate: renewal,
		Amount:      req.Amount,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contract)
}
