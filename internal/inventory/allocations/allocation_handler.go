package allocations

import (
	"net/http"

	"github.com/ketankishore27/inventory-management/internal/core/response"
	custom_error "github.com/ketankishore27/inventory-management/pkg/errors"
	"github.com/ketankishore27/inventory-management/pkg/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AllocationHandler struct {
	service *AllocationService
	log     *zap.Logger
}

func NewAllocationHandler(s *AllocationService, log *zap.Logger) *AllocationHandler {
	return &AllocationHandler{
		service: s,
		log:     log,
	}
}

func (h *AllocationHandler) RegisterRoutes(router gin.IRoutes) {
	router.POST("/addResourceAllocation", h.AddResourceAllocation)
	router.POST("/getResourceAllocation", h.GetResourceAllocation)
	router.POST("/getSerialnumberAllocation", h.GetSerialnumberAllocation)
	router.POST("/updateResourceAllocation", h.UpdateResourceAllocation)
	router.POST("/deleteResources", h.DeleteResources)
}

func (h *AllocationHandler) AddResourceAllocation(c *gin.Context) {
	const op = "addResourceAllocation"
	h.log.Info("Request for " + op)

	var req models.AllocationRequest
	if !h.bind(c, op, &req) {
		return
	}

	if err := h.service.Allocate(c.Request.Context(), req); err != nil {
		response.Failure(c, h.log, op, err, response.StatusFallback())
		return
	}

	c.JSON(http.StatusOK, response.Success())
}

func (h *AllocationHandler) GetResourceAllocation(c *gin.Context) {
	const op = "getResourceAllocation"
	h.log.Info("Request for " + op)

	var req models.AssigneeLookupRequest
	if !h.bind(c, op, &req) {
		return
	}

	allocations, err := h.service.FindForAssignee(c.Request.Context(), req)
	if err != nil {
		response.Failure(c, h.log, op, err, response.StatusFallback())
		return
	}

	c.JSON(http.StatusOK, allocations)
}

func (h *AllocationHandler) GetSerialnumberAllocation(c *gin.Context) {
	const op = "getSerialnumberAllocation"
	h.log.Info("Request for " + op)

	var req models.SerialNumberRequest
	if !h.bind(c, op, &req) {
		return
	}

	allocation, err := h.service.FindForSerialNumber(c.Request.Context(), req.SerialNumber)
	if err != nil {
		response.Failure(c, h.log, op, err, response.StatusFallback())
		return
	}

	c.JSON(http.StatusOK, allocation)
}

func (h *AllocationHandler) UpdateResourceAllocation(c *gin.Context) {
	const op = "updateResourceAllocation"
	h.log.Info("Request for " + op)

	var req models.UpdateAllocationRequest
	if !h.bind(c, op, &req) {
		return
	}

	if err := h.service.Reallocate(c.Request.Context(), req); err != nil {
		response.Failure(c, h.log, op, err, response.StatusFallback())
		return
	}

	c.JSON(http.StatusOK, response.Success())
}

func (h *AllocationHandler) DeleteResources(c *gin.Context) {
	const op = "deleteResources"
	h.log.Info("Request for " + op)

	var req models.SerialNumberRequest
	if !h.bind(c, op, &req) {
		return
	}

	if err := h.service.Release(c.Request.Context(), req.SerialNumber); err != nil {
		response.Failure(c, h.log, op, err, response.StatusFallback())
		return
	}

	c.JSON(http.StatusOK, response.Success())
}

// bind decodes the JSON body into req. Missing or malformed keys end the
// request with the write-operation fallback and a validation status.
func (h *AllocationHandler) bind(c *gin.Context, op string, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Failure(c, h.log, op, custom_error.New(custom_error.KindValidation, op, err), response.StatusFallback())
		return false
	}
	return true
}
