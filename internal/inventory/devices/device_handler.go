package devices

import (
	"net/http"

	"github.com/ketankishore27/inventory-management/internal/core/response"
	"github.com/ketankishore27/inventory-management/pkg/metadata"
	"github.com/ketankishore27/inventory-management/pkg/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DeviceHandler struct {
	Repository DeviceRepository
	log        *zap.Logger
}

func NewDeviceHandler(r DeviceRepository, log *zap.Logger) *DeviceHandler {
	return &DeviceHandler{
		Repository: r,
		log:        log,
	}
}

func (h *DeviceHandler) RegisterRoutes(router gin.IRoutes) {
	router.POST("/getAllDevices", h.GetAllDevices)
	router.POST("/getDeployedDevices", h.countHandler("getDeployedDevices", metadata.Deployed))
	router.POST("/getStockDevices", h.countHandler("getStockDevices", metadata.InStock))
	router.POST("/getEowDevices", h.countHandler("getEowDevices", metadata.EndOfWarranty))

	router.POST("/getDeployedModelView", h.breakdownHandler("getDeployedModelView", metadata.GroupByModel, metadata.Deployed))
	router.POST("/getStockModelView", h.breakdownHandler("getStockModelView", metadata.GroupByModel, metadata.InStock))
	router.POST("/getDeployedModelSubStatus", h.breakdownHandler("getDeployedModelSubStatus", metadata.GroupBySubStatus, metadata.Deployed))
	router.POST("/getStockModelSubStatus", h.breakdownHandler("getStockModelSubStatus", metadata.GroupBySubStatus, metadata.InStock))

	router.POST("/getStockDevicesDetailed", h.listHandler("getStockDevicesDetailed", metadata.InStock, false))
	router.POST("/showEowResources", h.listHandler("showEowResources", metadata.EndOfWarranty, true))
}

func (h *DeviceHandler) GetAllDevices(c *gin.Context) {
	h.log.Info("Request for getAllDevices")

	count, err := h.Repository.CountDevices(c.Request.Context())
	if err != nil {
		response.Failure(c, h.log, "getAllDevices", err, response.CountFallback())
		return
	}

	c.JSON(http.StatusOK, models.DeviceCount{Count: count})
}

func (h *DeviceHandler) countHandler(op string, filter metadata.Filter) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.log.Info("Request for " + op)

		count, err := h.Repository.CountDevicesMatching(c.Request.Context(), filter)
		if err != nil {
			response.Failure(c, h.log, op, err, response.CountFallback())
			return
		}

		c.JSON(http.StatusOK, models.DeviceCount{Count: count})
	}
}

func (h *DeviceHandler) breakdownHandler(op string, group metadata.GroupColumn, filter metadata.Filter) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.log.Info("Request for " + op)

		breakdown, err := h.Repository.Breakdown(c.Request.Context(), group, filter)
		if err != nil {
			response.Failure(c, h.log, op, err, response.BreakdownFallback())
			return
		}

		c.JSON(http.StatusOK, breakdown)
	}
}

func (h *DeviceHandler) listHandler(op string, filter metadata.Filter, newestFirst bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.log.Info("Request for " + op)

		devices, err := h.Repository.ListDevicesMatching(c.Request.Context(), filter, newestFirst)
		if err != nil {
			response.Failure(c, h.log, op, err, response.StatusFallback())
			return
		}

		c.JSON(http.StatusOK, devices)
	}
}
