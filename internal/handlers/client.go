package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"ychet/internal/metrics"
	"ychet/internal/models"
	"ychet/internal/store"

	"github.com/gin-gonic/gin"
)

//
// СПИСОК / ПОИСК
//

func (h *Handler) ListClients(c *gin.Context) {
	search := c.Query("search")

	clients, err := h.store.ListClients(c.Request.Context(), search)
	if err != nil {
		h.storageError(c, "list clients", err)
		h.render(c, http.StatusInternalServerError, "clients.html", gin.H{
			"search": search,
			"error":  fmt.Sprintf("Ошибка загрузки клиентов: %v", err),
		})
		return
	}

	h.render(c, http.StatusOK, "clients.html", gin.H{
		"clients": clients,
		"search":  search,
	})
}

//
// СОЗДАНИЕ
//

func (h *Handler) ShowNewClient(c *gin.Context) {
	h.renderClientForm(c, http.StatusOK, models.Client{RegistrationDate: today()}, "")
}

func (h *Handler) CreateClient(c *gin.Context) {
	client, err := clientFromForm(c, false)
	if err != nil {
		h.renderClientForm(c, http.StatusBadRequest, client, err.Error())
		return
	}

	if err := h.store.CreateClient(c.Request.Context(), &client); err != nil {
		h.storageError(c, "create client", err)
		h.redirect(c, "/clients", flashError, fmt.Sprintf("Ошибка при добавлении клиента: %v", err))
		return
	}

	metrics.RecordChange("client", "create")
	h.redirect(c, "/clients", flashSuccess, "Клиент успешно добавлен!")
}

//
// РЕДАКТИРОВАНИЕ
//

func (h *Handler) ShowEditClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	client, err := h.store.GetClient(c.Request.Context(), id)
	if err != nil {
		h.clientLookupFailed(c, err)
		return
	}

	h.renderClientForm(c, http.StatusOK, *client, "")
}

func (h *Handler) UpdateClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	client, err := clientFromForm(c, true)
	client.ID = id
	if err != nil {
		// форму с ошибкой показываем только для существующего клиента
		if _, getErr := h.store.GetClient(c.Request.Context(), id); getErr != nil {
			h.clientLookupFailed(c, getErr)
			return
		}
		h.renderClientForm(c, http.StatusBadRequest, client, err.Error())
		return
	}

	if err := h.store.UpdateClient(c.Request.Context(), &client); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.redirect(c, "/clients", flashError, "Клиент не найден!")
			return
		}
		h.storageError(c, "update client", err)
		h.redirect(c, "/clients", flashError, fmt.Sprintf("Ошибка при обновлении клиента: %v", err))
		return
	}

	metrics.RecordChange("client", "update")
	h.redirect(c, "/clients", flashSuccess, "Данные клиента успешно обновлены!")
}

//
// УДАЛЕНИЕ (вместе с заказами)
//

func (h *Handler) DeleteClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteClient(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.redirect(c, "/clients", flashError, "Клиент не найден!")
			return
		}
		h.storageError(c, "delete client", err)
		h.redirect(c, "/clients", flashError, fmt.Sprintf("Ошибка при удалении клиента: %v", err))
		return
	}

	metrics.RecordChange("client", "delete")
	h.redirect(c, "/clients", flashSuccess, "Клиент и его заказы успешно удалены!")
}

func (h *Handler) clientLookupFailed(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		h.redirect(c, "/clients", flashError, "Клиент не найден!")
		return
	}
	h.storageError(c, "get client", err)
	h.redirect(c, "/clients", flashError, fmt.Sprintf("Ошибка загрузки клиента: %v", err))
}

// одна форма на создание и редактирование; по ID понимаем, что это
func (h *Handler) renderClientForm(c *gin.Context, status int, client models.Client, errMsg string) {
	title, action := "Новый клиент", "/clients/add"
	if client.ID != 0 {
		title, action = "Редактирование клиента", fmt.Sprintf("/clients/edit/%d", client.ID)
	}

	h.render(c, status, "client_form.html", gin.H{
		"title":  title,
		"action": action,
		"client": client,
		"error":  errMsg,
	})
}
