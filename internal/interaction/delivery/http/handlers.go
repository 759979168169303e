package http

import (
	"github.com/gin-gonic/gin"

	"patient-portal-assistant/pkg/response"
)

// ProcessVoice godoc
// @Summary     Process one assistant turn
// @Description Runs the symptom assistant over the transcribed utterance, updates the
// @Description conversation's accumulated symptoms and records the interaction.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string          true "Caller user ID"
// @Param       body      body   processVoiceReq true "Utterance and optional conversation state"
// @Success     200 {object} processVoiceResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/process-voice [POST]
func (h *handler) ProcessVoice(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processProcessVoiceReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ProcessVoice(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessVoice: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newProcessVoiceResp(output))
}

// Record godoc
// @Summary     Record an interaction
// @Description Stores an interaction produced by the client.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Caller user ID"
// @Param       body      body   recordReq true "Interaction"
// @Success     201 {object} recordResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/record [POST]
func (h *handler) Record(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processRecordReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Record(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Record: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newRecordResp(output))
}

// History godoc
// @Summary     List interaction history
// @Description Returns the caller's interactions, newest first.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true  "Caller user ID"
// @Param       limit     query  int    false "Page size (default: 20, max: 100)"
// @Param       offset    query  int    false "Page offset (default: 0)"
// @Success     200 {object} historyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.History(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newHistoryResp(output))
}

// Diagnose godoc
// @Summary     Possible conditions for a prompt
// @Description Stateless symptom check. Does not read or update any conversation.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string      true "Caller user ID"
// @Param       body      body   diagnoseReq true "Free-text symptom description"
// @Success     200 {object} diagnoseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/ai/diagnose [POST]
func (h *handler) Diagnose(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDiagnoseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Diagnose(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Diagnose: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDiagnoseResp(output))
}

// ResetSession godoc
// @Summary     Clear a conversation
// @Description Forgets the accumulated symptoms of one of the caller's sessions.
// @Tags        Assistant
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Param       id        path   string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/ai/sessions/{id} [DELETE]
func (h *handler) ResetSession(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.ResetSession(ctx, sc, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "uc.ResetSession: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
