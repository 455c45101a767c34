package handlers

import (
	"errors"
	"net/http"

	"vguppi-screen/internal/api/models"
	"vguppi-screen/internal/vguppi"

	"github.com/gin-gonic/gin"
)

// EvaluateHandler handles evaluation requests
type EvaluateHandler struct{}

// NewEvaluateHandler creates a new evaluate handler
func NewEvaluateHandler() *EvaluateHandler {
	return &EvaluateHandler{}
}

// RunEvaluate handles POST /api/v1/evaluate
func (h *EvaluateHandler) RunEvaluate(c *gin.Context) {
	var req models.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	in, err := resolveInputs(req.Inputs, req.UseDefaults)
	if err != nil {
		writeEvalError(c, err)
		return
	}

	res, err := vguppi.Evaluate(in)
	if err != nil {
		writeEvalError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEvaluateResponse(in, res))
}

// CompareEvaluations handles POST /api/v1/evaluate/compare
func (h *EvaluateHandler) CompareEvaluations(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	base, err := resolveInputs(req.Base, req.UseDefaults)
	if err != nil {
		writeEvalError(c, err)
		return
	}
	baseRes, err := vguppi.Evaluate(base)
	if err != nil {
		writeEvalError(c, err)
		return
	}

	comparison := make([]models.ComparisonResult, 0, len(req.Variations))
	for _, v := range req.Variations {
		in, err := base.WithOverrides(v.Overrides)
		if err != nil {
			writeEvalErrorFor(c, v.Name, err)
			return
		}
		res, err := vguppi.Evaluate(in)
		if err != nil {
			writeEvalErrorFor(c, v.Name, err)
			return
		}
		comparison = append(comparison, models.ComparisonResult{
			Name:   v.Name,
			Result: toEvaluateResponse(in, res),
		})
	}

	c.JSON(http.StatusOK, models.CompareResponse{
		Base:       toEvaluateResponse(base, baseRes),
		Comparison: comparison,
	})
}

// resolveInputs builds the evaluator input record from a request map.
// With useDefaults the map is a partial override of the canonical defaults;
// without it, all 15 parameters are required.
func resolveInputs(m map[string]float64, useDefaults bool) (vguppi.Inputs, error) {
	if useDefaults {
		return vguppi.Defaults().WithOverrides(m)
	}
	return vguppi.FromMap(m)
}

func toEvaluateResponse(in vguppi.Inputs, res *vguppi.Results) models.EvaluateResponse {
	return models.EvaluateResponse{
		Inputs: in.Map(),
		Intermediates: models.IntermediateValues{
			EP:  res.EP,
			ESD: res.ESD,
			ESR: res.ESR,
		},
		Measures: models.MeasureValues{
			VGUPPIU:  res.VGUPPIU,
			VGUPPIR:  res.VGUPPIR,
			VGUPPID1: res.VGUPPID1,
			VGUPPID2: res.VGUPPID2,
			VGUPPID3: res.VGUPPID3,
		},
	}
}

// writeEvalError maps evaluator errors onto the API error taxonomy.
func writeEvalError(c *gin.Context, err error) {
	status, code := classifyError(err)
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}

// writeEvalErrorFor is writeEvalError with the failing variation attached.
func writeEvalErrorFor(c *gin.Context, name string, err error) {
	status, code := classifyError(err)
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
			Details: map[string]interface{}{
				"variation": name,
			},
		},
	})
}

func classifyError(err error) (int, string) {
	var (
		mpErr *vguppi.MissingParameterError
		dzErr *vguppi.DivisionByZeroError
		upErr *vguppi.UnknownParameterError
		umErr *vguppi.UnknownMeasureError
	)
	switch {
	case errors.As(err, &mpErr):
		return http.StatusBadRequest, "MISSING_PARAMETER"
	case errors.As(err, &dzErr):
		return http.StatusBadRequest, "DIVISION_BY_ZERO"
	case errors.As(err, &upErr):
		return http.StatusBadRequest, "UNKNOWN_PARAMETER"
	case errors.As(err, &umErr):
		return http.StatusBadRequest, "UNKNOWN_MEASURE"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}
