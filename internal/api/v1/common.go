package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/contractorpro/contractorpro/internal/export"
	"github.com/gin-gonic/gin"
)

// sendWorkbook writes an xlsx download named <prefix>-<date>.xlsx
func sendWorkbook(c *gin.Context, prefix string, data []byte) {
	filename := fmt.Sprintf("%s-%s.xlsx", prefix, time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, export.ContentTypeXLSX, data)
}
