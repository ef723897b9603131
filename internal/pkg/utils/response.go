package utils

import (
	"errors"
	"famhealth-service/internal/pkg/constvars"
	"famhealth-service/internal/pkg/dto/responses"
	"famhealth-service/internal/pkg/exceptions"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildPaginationResponse(total, page, pageSize int, baseURL string) *responses.Pagination {
	pagination := &responses.Pagination{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}

	if (page)*pageSize <= total {
		pagination.NextURL = fmt.Sprintf("%s?page=%d&pageSize=%d", baseURL, page+1, pageSize)
	}
	if page > 1 {
		pagination.PrevURL = fmt.Sprintf("%s?page=%d&pageSize=%d", baseURL, page-1, pageSize)
	}

	return pagination
}

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func BuildSuccessResponseWithPagination(w http.ResponseWriter, code int, message string, pagination *responses.Pagination, data interface{}) {
	response := responses.ResponseDTO{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: pagination,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		log.Error(customErr.DevMessage,
			zap.String("file", customErr.Location.File),
			zap.Int("line", customErr.Location.Line),
			zap.String("function_name", customErr.Location.FunctionName),
		)
	} else {
		log.Error(err.Error())
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}

	appEnvironment := GetEnvString("APP_ENV", "development")
	if customErr != nil && appEnvironment != "production" {
		response.DevMessage = customErr.DevMessage
	}
	json.NewEncoder(w).Encode(response)
}
