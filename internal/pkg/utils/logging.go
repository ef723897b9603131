package utils

import (
	"context"
	"famhealth-service/internal/pkg/constvars"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}
