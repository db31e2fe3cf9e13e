package payslip

import (
	"github.com/Aryansh1520/mario-emp-mgmt/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	payslips := r.Group("/payslips")
	{
		payslips.POST("/generate", middleware.RateLimitByIP(rate.Limit(2), 5), handler.Generate)
		payslips.GET("", handler.GetAll)
		payslips.GET("/lookup", handler.Lookup)
		payslips.GET("/preview/:employeeId", handler.Preview)
		payslips.GET("/:id", handler.GetById)
		payslips.GET("/:id/download", handler.Download)
	}
}
