package handlers

import (
	"net/http"

	"vguppi-screen/internal/api/models"
	"vguppi-screen/internal/vguppi"

	"github.com/gin-gonic/gin"
)

// ListParameters handles GET /api/v1/parameters
func ListParameters(c *gin.Context) {
	params := make([]models.ParameterInfo, 0, len(vguppi.ParamMetas))
	for _, m := range vguppi.ParamMetas {
		params = append(params, models.ParameterInfo{
			Name:    m.Name,
			Label:   m.Label,
			Min:     m.Min,
			Max:     m.Max,
			Step:    m.Step,
			Default: m.Default,
			Group:   m.Group,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"parameters": params,
		"groups":     vguppi.GroupOrder,
		"count":      len(params),
	})
}

// ListMeasures handles GET /api/v1/measures
func ListMeasures(c *gin.Context) {
	measures := make([]models.MeasureInfo, 0, len(vguppi.MeasureNames))
	for _, name := range vguppi.MeasureNames {
		measures = append(measures, models.MeasureInfo{
			Name:        name,
			Description: vguppi.MeasureDescriptions[name],
		})
	}

	c.JSON(http.StatusOK, gin.H{"measures": measures})
}
