package http

import (
	"github.com/gin-gonic/gin"

	"patient-portal-assistant/internal/model"
	pkgErrors "patient-portal-assistant/pkg/errors"
)

// processScope reads the caller scope placed on the request context by the Scope middleware.
func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok || sc.UserID == "" {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

func (h *handler) processProcessVoiceReq(c *gin.Context) (model.Scope, processVoiceReq, error) {
	var req processVoiceReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, err
	}
	return sc, req, req.validate()
}

func (h *handler) processRecordReq(c *gin.Context) (model.Scope, recordReq, error) {
	var req recordReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, err
	}
	return sc, req, nil
}

func (h *handler) processHistoryReq(c *gin.Context) (model.Scope, historyReq, error) {
	var req historyReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, err
	}
	return sc, req, nil
}

func (h *handler) processDiagnoseReq(c *gin.Context) (diagnoseReq, error) {
	var req diagnoseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
