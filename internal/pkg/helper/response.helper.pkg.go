package helper

import (
	"net/http"

	types "payment-portal/internal/common/type"
	"payment-portal/internal/pkg/logger"

	"github.com/samber/lo"
)

// ParseResponse fills in the blanks of a service response so handlers can
// hand it straight to the send function. Errors are logged here once;
// callers never inspect them again.
func ParseResponse(r *types.Response) *types.Response {
	r.Code = lo.Ternary(r.Code == 0, http.StatusOK, r.Code)
	r.Message = lo.Ternary(r.Message == "", http.StatusText(r.Code), r.Message)

	if r.Error != nil && logger.Error != nil {
		logger.Error.Printf("response %d: %s: %v", r.Code, r.Message, r.Error)
	}

	return r
}

// ToResponseAPI converts a service response into the wire envelope.
func ToResponseAPI(r *types.Response, requestID string) *types.ResponseAPI {
	api := &types.ResponseAPI{
		Status:    r.Code,
		Message:   r.Message,
		Data:      r.Data,
		RequestID: requestID,
	}
	if r.Error != nil {
		api.Error = r.Error.Error()
	}
	return api
}
