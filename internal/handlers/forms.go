package handlers

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"ychet/internal/models"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func invalid(msg string) error { return &validationError{msg: msg} }

func today() time.Time { return models.Today() }

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.String(http.StatusBadRequest, "Некорректный ID")
		return 0, false
	}
	return uint(id), true
}

func parseDate(raw string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// clientFromForm всегда возвращает введённые значения, чтобы форму можно было показать снова.
// При редактировании дата регистрации обязательна, при создании по умолчанию берётся сегодняшняя.
func clientFromForm(c *gin.Context, requireDate bool) (models.Client, error) {
	client := models.Client{
		LastName:   strings.TrimSpace(c.PostForm("last_name")),
		FirstName:  strings.TrimSpace(c.PostForm("first_name")),
		MiddleName: strings.TrimSpace(c.PostForm("middle_name")),
		Email:      strings.TrimSpace(c.PostForm("email")),
		Phone:      strings.TrimSpace(c.PostForm("phone")),
		Address:    strings.TrimSpace(c.PostForm("address")),
		Notes:      strings.TrimSpace(c.PostForm("notes")),
	}

	regDate := strings.TrimSpace(c.PostForm("registration_date"))
	switch {
	case regDate == "" && requireDate:
		return client, invalid("Укажите дату регистрации")
	case regDate == "":
		client.RegistrationDate = today()
	default:
		t, ok := parseDate(regDate)
		if !ok {
			return client, invalid("Некорректная дата регистрации")
		}
		client.RegistrationDate = t
	}

	if client.LastName == "" {
		return client, invalid("Фамилия обязательна")
	}
	if client.FirstName == "" {
		return client, invalid("Имя обязательно")
	}
	return client, nil
}

func orderFromForm(c *gin.Context) (models.Order, error) {
	order := models.Order{
		OrderNumber: strings.TrimSpace(c.PostForm("order_number")),
		Description: strings.TrimSpace(c.PostForm("description")),
		Status:      strings.TrimSpace(c.PostForm("status")),
		OrderDate:   today(),
	}
	if order.Status == "" {
		order.Status = models.StatusNew
	}

	if raw := strings.TrimSpace(c.PostForm("order_date")); raw != "" {
		t, ok := parseDate(raw)
		if !ok {
			return order, invalid("Некорректная дата заказа")
		}
		order.OrderDate = t
	}

	if raw := strings.TrimSpace(c.PostForm("total_amount")); raw != "" {
		amount, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
		// ParseFloat понимает NaN и Inf, в сумме они не нужны
		if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
			return order, invalid("Сумма заказа должна быть числом")
		}
		order.TotalAmount = amount
	}

	cid, err := strconv.ParseUint(strings.TrimSpace(c.PostForm("client_id")), 10, 64)
	if err != nil || cid == 0 {
		return order, invalid("Выберите клиента")
	}
	order.ClientID = uint(cid)

	if order.OrderNumber == "" {
		return order, invalid("Укажите номер заказа")
	}
	return order, nil
}
