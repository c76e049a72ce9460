package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nurpe/contracts-service/internal/service"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

type Services struct {
	Customers     *service.CustomerService
	Contracts     *service.ContractService
	Notifications *service.NotificationService
	Dashboard     *service.DashboardService
	Reports       *service.ReportService
}

type Handler struct {
	customers     *service.CustomerService
	contracts     *service.ContractService
	notifications *service.NotificationService
	dashboard     *service.DashboardService
	reports       *service.ReportService
	log           zerolog.Logger
}

func NewHandler(services Services, log zerolog.Logger) *Handler {
	return &Handler{
		customers:     services.Customers,
		contracts:     services.Contracts,
		notifications: services.Notifications,
		dashboard:     services.Dashboard,
		reports:       services.Reports,
		log:           log,
	}
}

func (h *Handler) Register(router *gin.Engine) {
	api := router.Group("/api")

	api.GET("/dashboard", h.getDashboard)

	api.GET("/customers", h.listCustomers)
	api.POST("/customers", h.createCustomer)
	api.GET("/customers/:id", h.getCustomer)
	api.PATCH("/customers/:id", h.updateCustomer)
	api.GET("/customers/:id/contracts", h.customerContracts)

	api.GET("/contracts", h.listContracts)
	api.POST("/contracts", h.createContract)
	api.GET("/contracts/export", h.exportContracts)
	api.GET("/contracts/:id", h.getContract)
	api.PATCH("/contracts/:id", h.updateContract)
	api.POST("/contracts/:id/renew", h.renewContract)

	api.GET("/renewals/report", h.renewalsReport)

	api.GET("/notifications", h.listNotifications)
	api.GET("/notifications/unread-count", h.unreadCount)
	api.POST("/notifications/:id/read", h.markNotificationRead)
}

func (h *Handler) getDashboard(c *gin.Context) {
	stats, err := h.dashboard.Stats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) exportContracts(c *gin.Context) {
	result, err := h.reports.ExportContracts(c.Request.Context(), c.Query("customer"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	sendFile(c, contentTypeXLSX, result)
}

func (h *Handler) renewalsReport(c *gin.Context) {
	result, err := h.reports.RenewalReport(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	sendFile(c, contentTypePDF, result)
}

func sendFile(c *gin.Context, contentType string, result *service.FileResult) {
	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, contentType, result.Content)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, service.ErrInvalidDate
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, service.ErrInvalidDate
}

func parseOptionalDate(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	parsed, err := parseDate(*raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
