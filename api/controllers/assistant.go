package controllers

import (
	"net/http"

	"github.com/imakhan79/Grocery-Mart/api/responses"
	"github.com/imakhan79/Grocery-Mart/api/validators"
	"github.com/imakhan79/Grocery-Mart/internal/assistant"
	pkgerrors "github.com/imakhan79/Grocery-Mart/pkg/errors"
	"github.com/imakhan79/Grocery-Mart/pkg/logger"
)

type assistantRequest struct {
	Message string `json:"message" validate:"required"`
}

type assistantResponse struct {
	Reply string `json:"reply"`
}

// AskAssistant answers a shopper question grounded on the live catalog. The
// endpoint degrades to a canned reply rather than failing when the model is
// unreachable.
func AskAssistant(svc assistant.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "assistant service unavailable"))
			return
		}

		var req assistantRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		reply, err := svc.Ask(r.Context(), req.Message)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, assistantResponse{Reply: reply})
	}
}
