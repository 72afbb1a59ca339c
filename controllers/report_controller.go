package controllers

import (
	"strconv"
	"time"

	"github.com/huozturk-art/dr.burgerweb-sub000/pkg/resp"
	"github.com/huozturk-art/dr.burgerweb-sub000/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Reports *services.ReportService
}

func NewReportController(s *services.ReportService) *ReportController {
	return &ReportController{Reports: s}
}

// GET /admin/reports/summary?top=
func (rc *ReportController) Summary(c *gin.Context) {
	topN := 10
	if v, err := strconv.Atoi(c.Query("top")); err == nil && v > 0 {
		topN = v
	}
	out, err := rc.Reports.Summary(time.Now(), topN)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
