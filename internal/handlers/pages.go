package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// главная: сводные цифры
func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.store.DashboardStats(c.Request.Context())
	if err != nil {
		h.storageError(c, "dashboard stats", err)
		h.render(c, http.StatusInternalServerError, "index.html", gin.H{
			"stats": stats,
			"error": fmt.Sprintf("Ошибка загрузки статистики: %v", err),
		})
		return
	}

	h.render(c, http.StatusOK, "index.html", gin.H{
		"stats": stats,
	})
}

func (h *Handler) Reports(c *gin.Context) {
	report, err := h.store.Report(c.Request.Context())
	if err != nil {
		h.storageError(c, "report", err)
		h.render(c, http.StatusInternalServerError, "reports.html", gin.H{
			"report": report,
			"error":  fmt.Sprintf("Ошибка построения отчёта: %v", err),
		})
		return
	}

	h.render(c, http.StatusOK, "reports.html", gin.H{
		"report": report,
	})
}
