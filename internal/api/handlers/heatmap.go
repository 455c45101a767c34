package handlers

import (
	"net/http"

	"vguppi-screen/internal/api/models"
	"vguppi-screen/internal/vguppi"

	"github.com/gin-gonic/gin"
)

const defaultHeatmapResolution = 50

// HeatmapHandler handles heatmap grid requests
type HeatmapHandler struct{}

// NewHeatmapHandler creates a new heatmap handler
func NewHeatmapHandler() *HeatmapHandler {
	return &HeatmapHandler{}
}

// ComputeHeatmap handles POST /api/v1/heatmap
func (h *HeatmapHandler) ComputeHeatmap(c *gin.Context) {
	var req models.HeatmapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	base, err := resolveInputs(req.Inputs, req.UseDefaults)
	if err != nil {
		writeEvalError(c, err)
		return
	}

	resolution := req.Resolution
	if resolution == 0 {
		resolution = defaultHeatmapResolution
	}

	grid, err := vguppi.Heatmap(base, req.XParam, req.YParam, req.Measure, resolution)
	if err != nil {
		writeEvalError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.HeatmapResponse{
		XParam:  grid.XParam,
		YParam:  grid.YParam,
		Measure: grid.Measure,
		XVals:   grid.XVals,
		YVals:   grid.YVals,
		Z:       grid.Z,
	})
}
