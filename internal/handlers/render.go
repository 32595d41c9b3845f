package handlers

import (
	"net/http"

	"ychet/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	flashSuccess = "success"
	flashError   = "error"
)

type Handler struct {
	store *store.Store
	log   *logrus.Logger
}

func New(s *store.Store, log *logrus.Logger) *Handler {
	return &Handler{store: s, log: log}
}

// render: обёртка над c.HTML, которая во все шаблоны прокидывает накопленные уведомления.
func (h *Handler) render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	sess := sessions.Default(c)
	data["successes"] = sess.Flashes(flashSuccess)
	data["errors"] = sess.Flashes(flashError)
	if err := sess.Save(); err != nil {
		h.log.WithError(err).Warn("failed to save session")
	}

	c.HTML(status, tmpl, data)
}

// redirect кладёт уведомление в сессию и уводит на список.
func (h *Handler) redirect(c *gin.Context, location, kind, msg string) {
	sess := sessions.Default(c)
	sess.AddFlash(msg, kind)
	if err := sess.Save(); err != nil {
		h.log.WithError(err).Warn("failed to save session")
	}
	c.Redirect(http.StatusFound, location)
}

// storageError логирует ошибку БД с контекстом запроса.
func (h *Handler) storageError(c *gin.Context, op string, err error) {
	h.log.WithFields(logrus.Fields{
		"op":     op,
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	}).WithError(err).Error("storage error")
}

func (h *Handler) Health(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.String(http.StatusServiceUnavailable, err.Error())
		return
	}
	c.String(http.StatusOK, "ok")
}
