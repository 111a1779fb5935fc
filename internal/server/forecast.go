package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	forecastdomain "github.com/smallbiznis/smartdairy/internal/forecast/domain"
)

type forecastResponse struct {
	forecastdomain.ForecastResult
	Series []forecastdomain.SeriesPoint `json:"series"`
}

func (s *Server) GetForecast(c *gin.Context) {
	window := s.settings.Get().Forecast.DefaultWindow
	requested, err := parseOptionalInt(c.Query("window"))
	if err != nil {
		AbortWithError(c, newValidationError("window", "invalid_window", "window must be a number"))
		return
	}
	if requested != nil {
		window = *requested
	}
	if window < forecastdomain.MinWindow || window > forecastdomain.MaxWindow {
		AbortWithError(c, newValidationError("window", "invalid_window",
			fmt.Sprintf("window must be between %d and %d", forecastdomain.MinWindow, forecastdomain.MaxWindow)))
		return
	}

	result, err := s.forecastSvc.Predict(c.Request.Context(), customerIDFrom(c), window)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": forecastResponse{
		ForecastResult: result,
		Series:         result.Series(),
	}})
}
