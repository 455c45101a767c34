package handlers

import (
	"net/http"

	"vguppi-screen/internal/analysis"
	"vguppi-screen/internal/api/models"
	"vguppi-screen/internal/vguppi"

	"github.com/gin-gonic/gin"
)

// SensitivityHandler handles parameter sensitivity ranking
type SensitivityHandler struct{}

// NewSensitivityHandler creates a new sensitivity handler
func NewSensitivityHandler() *SensitivityHandler {
	return &SensitivityHandler{}
}

// RankParameters handles GET /api/v1/sensitivity
func (h *SensitivityHandler) RankParameters(c *gin.Context) {
	var req models.SensitivityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	measure := req.Measure
	if measure == "" {
		measure = vguppi.MeasureU
	}
	steps := req.Steps
	if steps == 0 {
		steps = 21
	}

	ranked, err := analysis.RankBySensitivity(vguppi.Defaults(), measure, steps)
	if err != nil {
		writeEvalError(c, err)
		return
	}

	rankings := make([]models.SensitivityRanking, 0, len(ranked))
	for i, s := range ranked {
		rankings = append(rankings, models.SensitivityRanking{
			Rank:      i + 1,
			Param:     s.Param,
			Group:     s.Group,
			BaseValue: s.BaseValue,
			Steps:     s.Steps,
			Valid:     s.Valid,
			MinValue:  s.MinValue,
			MaxValue:  s.MaxValue,
			Range:     s.Range,
		})
	}

	c.JSON(http.StatusOK, models.SensitivityResponse{
		Measure:  measure,
		Rankings: rankings,
	})
}
