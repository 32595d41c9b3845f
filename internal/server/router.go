package server

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"ychet/internal/config"
	"ychet/internal/handlers"
	"ychet/internal/metrics"
	"ychet/internal/middleware"
	"ychet/web"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.Russian)

// formatMoney печатает сумму по-русски: 90000 -> "90 000,00" (разделитель групп U+00A0).
func formatMoney(v float64) string {
	return moneyPrinter.Sprintf("%.2f", v)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("02.01.2006 15:04")
}

func loadTemplates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"money":    formatMoney,
		"date":     formatDate,
		"datetime": formatDateTime,
	}).ParseFS(web.Templates, "templates/*.html")
}

func NewRouter(cfg *config.Config, h *handlers.Handler, log *logrus.Logger) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(log), middleware.Metrics())

	tmpl, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(web.Static, "static")
	if err != nil {
		return nil, err
	}
	r.StaticFS("/static", http.FS(static))

	store := cookie.NewStore([]byte(cfg.SecretKey))
	store.Options(sessions.Options{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions("ychet_session", store))

	// ГЛАВНАЯ
	r.GET("/", h.Dashboard)

	// КЛИЕНТЫ
	r.GET("/clients", h.ListClients)
	r.GET("/clients/add", h.ShowNewClient)
	r.POST("/clients/add", h.CreateClient)
	r.GET("/clients/edit/:id", h.ShowEditClient)
	r.POST("/clients/edit/:id", h.UpdateClient)
	r.GET("/clients/delete/:id", h.DeleteClient)

	// ЗАКАЗЫ
	r.GET("/orders", h.ListOrders)
	r.GET("/orders/add", h.ShowNewOrder)
	r.POST("/orders/add", h.CreateOrder)
	r.GET("/orders/edit/:id", h.ShowEditOrder)
	r.POST("/orders/edit/:id", h.UpdateOrder)
	r.GET("/orders/delete/:id", h.DeleteOrder)

	// ОТЧЁТЫ
	r.GET("/reports", h.Reports)

	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	return r, nil
}
