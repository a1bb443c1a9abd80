package decoder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/iisclient/internal/client/result"
)

const loginPath = "/auth/login"

// Localised messages shown to the user.
const (
	MessageBadLoginCredentials = "Неверные учетные данные (номер билета или пароль)"
	MessageBadRequest          = "Неверный формат запроса"
	MessageUnauthorized        = "Неверные учетные данные"
	MessageForbidden           = "Доступ запрещен"
	MessageNotFound            = "API не найден"
	MessageInternal            = "Внутренняя ошибка сервера"
)

// ParseError builds an upstream APIError from an error body. The message is
// taken from the first of: message, error_description, error/path (with a
// dedicated text for a rejected login), error, status, and finally a canned
// text for httpCode. Details are the body's details field, or a summary of
// timestamp/path/status, or the raw body.
func ParseError(body string, httpCode int) *result.APIError {
	obj := ParseObject(body)
	return &result.APIError{
		Kind:    result.KindUpstream,
		Code:    httpCode,
		Message: errorMessage(obj, httpCode),
		Details: errorDetails(obj, body),
	}
}

func errorMessage(obj map[string]string, httpCode int) string {
	if msg := firstOf(obj, "message"); msg != "" {
		return msg
	}
	if desc := firstOf(obj, "error_description"); desc != "" {
		return desc
	}

	errText := firstOf(obj, "error")
	path := firstOf(obj, "path")
	if errText != "" && path != "" {
		if errText == "Unauthorized" && strings.Contains(path, loginPath) {
			return MessageBadLoginCredentials
		}
		status := firstOf(obj, "status")
		if status == "" {
			status = strconv.Itoa(httpCode)
		}
		return fmt.Sprintf("Ошибка %s: %s (%s)", status, errText, path)
	}
	if errText != "" {
		return errText
	}
	if status := firstOf(obj, "status"); status != "" {
		return status
	}
	return fallbackMessage(httpCode)
}

func fallbackMessage(httpCode int) string {
	switch httpCode {
	case 400:
		return MessageBadRequest
	case 401:
		return MessageUnauthorized
	case 403:
		return MessageForbidden
	case 404:
		return MessageNotFound
	case 500:
		return MessageInternal
	default:
		return fmt.Sprintf("HTTP %d ошибка", httpCode)
	}
}

func errorDetails(obj map[string]string, body string) string {
	if d := firstOf(obj, "details"); d != "" {
		return d
	}

	var parts []string
	if ts := firstOf(obj, "timestamp"); ts != "" {
		parts = append(parts, "Время: "+ts)
	}
	if path := firstOf(obj, "path"); path != "" {
		parts = append(parts, "Путь: "+path)
	}
	if status := firstOf(obj, "status"); status != "" {
		parts = append(parts, "Статус: "+status)
	}
	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}
	return body
}
