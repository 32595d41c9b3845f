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

func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.store.ListOrders(c.Request.Context())
	if err != nil {
		h.storageError(c, "list orders", err)
		h.render(c, http.StatusInternalServerError, "orders.html", gin.H{
			"error": fmt.Sprintf("Ошибка загрузки заказов: %v", err),
		})
		return
	}

	h.render(c, http.StatusOK, "orders.html", gin.H{
		"orders": orders,
	})
}

func (h *Handler) ShowNewOrder(c *gin.Context) {
	h.renderOrderForm(c, http.StatusOK, models.Order{OrderDate: today(), Status: models.StatusNew}, "", "")
}

func (h *Handler) CreateOrder(c *gin.Context) {
	order, err := orderFromForm(c)
	if err != nil {
		h.renderOrderForm(c, http.StatusBadRequest, order, "", err.Error())
		return
	}

	if err := h.store.CreateOrder(c.Request.Context(), &order); err != nil {
		if errors.Is(err, store.ErrDuplicateOrderNumber) {
			h.redirect(c, "/orders", flashError, fmt.Sprintf("Ошибка при добавлении заказа: номер %s уже используется", order.OrderNumber))
			return
		}
		h.storageError(c, "create order", err)
		h.redirect(c, "/orders", flashError, fmt.Sprintf("Ошибка при добавлении заказа: %v", err))
		return
	}

	metrics.RecordChange("order", "create")
	h.redirect(c, "/orders", flashSuccess, "Заказ успешно добавлен!")
}

func (h *Handler) ShowEditOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	row, err := h.store.GetOrder(c.Request.Context(), id)
	if err != nil {
		h.orderLookupFailed(c, err)
		return
	}

	h.renderOrderForm(c, http.StatusOK, row.Order, row.ClientName(), "")
}

func (h *Handler) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := orderFromForm(c)
	order.ID = id
	if err != nil {
		row, getErr := h.store.GetOrder(c.Request.Context(), id)
		if getErr != nil {
			h.orderLookupFailed(c, getErr)
			return
		}
		h.renderOrderForm(c, http.StatusBadRequest, order, row.ClientName(), err.Error())
		return
	}

	// client_id не проверяем: заказ можно перевесить на любой id
	if err := h.store.UpdateOrder(c.Request.Context(), &order); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			h.redirect(c, "/orders", flashError, "Заказ не найден!")
		case errors.Is(err, store.ErrDuplicateOrderNumber):
			h.redirect(c, "/orders", flashError, fmt.Sprintf("Ошибка при обновлении заказа: номер %s уже используется", order.OrderNumber))
		default:
			h.storageError(c, "update order", err)
			h.redirect(c, "/orders", flashError, fmt.Sprintf("Ошибка при обновлении заказа: %v", err))
		}
		return
	}

	metrics.RecordChange("order", "update")
	h.redirect(c, "/orders", flashSuccess, "Заказ успешно обновлен!")
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteOrder(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.redirect(c, "/orders", flashError, "Заказ не найден!")
			return
		}
		h.storageError(c, "delete order", err)
		h.redirect(c, "/orders", flashError, fmt.Sprintf("Ошибка при удалении заказа: %v", err))
		return
	}

	metrics.RecordChange("order", "delete")
	h.redirect(c, "/orders", flashSuccess, "Заказ успешно удален!")
}

func (h *Handler) orderLookupFailed(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		h.redirect(c, "/orders", flashError, "Заказ не найден!")
		return
	}
	h.storageError(c, "get order", err)
	h.redirect(c, "/orders", flashError, fmt.Sprintf("Ошибка загрузки заказа: %v", err))
}

func (h *Handler) renderOrderForm(c *gin.Context, status int, order models.Order, clientName, errMsg string) {
	clients, err := h.store.ListClientOptions(c.Request.Context())
	if err != nil {
		h.storageError(c, "list client options", err)
		h.redirect(c, "/orders", flashError, fmt.Sprintf("Ошибка загрузки клиентов: %v", err))
		return
	}

	title, action := "Новый заказ", "/orders/add"
	if order.ID != 0 {
		title, action = "Редактирование заказа", fmt.Sprintf("/orders/edit/%d", order.ID)
	}

	h.render(c, status, "order_form.html", gin.H{
		"title":       title,
		"action":      action,
		"order":       order,
		"clientName":  clientName,
		"clients":     clients,
		"statuses":    models.OrderStatuses,
		"currentDate": today().Format(dateLayout),
		"error":       errMsg,
	})
}
