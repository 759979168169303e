package http

import (
	"errors"
	"fmt"

	"patient-portal-assistant/internal/assistant"
	"patient-portal-assistant/internal/interaction"
	"patient-portal-assistant/pkg/response"
)

var errMaxPriorSymptoms = errors.New("priorSymptoms: too many entries")

const maxPriorSymptoms = 50

// --- Request DTOs ---

// symptomReq names a symptom from the extractor table. Description is
// accepted for compatibility but the table's gloss is always used.
type symptomReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type processVoiceReq struct {
	InputText     string       `json:"inputText" binding:"required,max=4000"`
	SessionID     string       `json:"sessionId" binding:"max=128"`
	PriorSymptoms []symptomReq `json:"priorSymptoms" binding:"omitempty,dive"`
}

func (r processVoiceReq) validate() error {
	if len(r.PriorSymptoms) > maxPriorSymptoms {
		return errMaxPriorSymptoms
	}
	for _, s := range r.PriorSymptoms {
		if _, ok := assistant.KnownSymptom(s.Name); !ok {
			return fmt.Errorf("priorSymptoms: unknown symptom %q", s.Name)
		}
	}
	return nil
}

// toInput keeps nil and empty PriorSymptoms distinct: omitted means "use the
// session", an explicit [] means "start from nothing".
func (r processVoiceReq) toInput() interaction.ProcessVoiceInput {
	var prior []assistant.Symptom
	if r.PriorSymptoms != nil {
		prior = make([]assistant.Symptom, len(r.PriorSymptoms))
		for i, s := range r.PriorSymptoms {
			prior[i], _ = assistant.KnownSymptom(s.Name)
		}
	}
	return interaction.ProcessVoiceInput{
		Text:          r.InputText,
		SessionID:     r.SessionID,
		PriorSymptoms: prior,
	}
}

// ---

type recordReq struct {
	SessionID                  string   `json:"sessionId" binding:"max=128"`
	InputText                  string   `json:"inputText" binding:"required"`
	ResponseText               string   `json:"responseText" binding:"required"`
	DetectedIntent             string   `json:"detectedIntent" binding:"required"`
	ConfidenceScore            *float64 `json:"confidenceScore" binding:"required"`
	ResultedInAppointment      bool     `json:"resultedInAppointment"`
	ResultedInProviderTransfer bool     `json:"resultedInProviderTransfer"`
}

func (r recordReq) toInput() interaction.RecordInput {
	return interaction.RecordInput{
		SessionID:                  r.SessionID,
		InputText:                  r.InputText,
		ResponseText:               r.ResponseText,
		DetectedIntent:             r.DetectedIntent,
		ConfidenceScore:            *r.ConfidenceScore,
		ResultedInAppointment:      r.ResultedInAppointment,
		ResultedInProviderTransfer: r.ResultedInProviderTransfer,
	}
}

// ---

type historyReq struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

func (r historyReq) toInput() interaction.HistoryInput {
	return interaction.HistoryInput{Limit: r.Limit, Offset: r.Offset}
}

// ---

type diagnoseReq struct {
	Prompt string `json:"prompt" binding:"required"`
}

func (r diagnoseReq) toInput() interaction.DiagnoseInput {
	return interaction.DiagnoseInput{Text: r.Prompt}
}

// --- Response DTOs ---

type interactionResp struct {
	ID                         string             `json:"id"`
	SessionID                  string             `json:"sessionId,omitempty"`
	InputText                  string             `json:"inputText"`
	ResponseText               string             `json:"responseText"`
	DetectedIntent             string             `json:"detectedIntent"`
	ConfidenceScore            float64            `json:"confidenceScore"`
	ResultedInAppointment      bool               `json:"resultedInAppointment"`
	ResultedInProviderTransfer bool               `json:"resultedInProviderTransfer"`
	InteractionTimestamp       response.Timestamp `json:"interactionTimestamp"`
	CreatedAt                  response.Timestamp `json:"createdAt"`
}

func newInteractionResp(it interaction.Interaction) interactionResp {
	return interactionResp{
		ID:                         it.ID,
		SessionID:                  it.SessionID,
		InputText:                  it.InputText,
		ResponseText:               it.ResponseText,
		DetectedIntent:             it.DetectedIntent,
		ConfidenceScore:            it.ConfidenceScore,
		ResultedInAppointment:      it.ResultedInAppointment,
		ResultedInProviderTransfer: it.ResultedInProviderTransfer,
		InteractionTimestamp:       response.Timestamp(it.InteractionTimestamp),
		CreatedAt:                  response.Timestamp(it.CreatedAt),
	}
}

type processVoiceResp struct {
	Response      assistant.Response            `json:"response"`
	InteractionID string                        `json:"interactionId"`
	SessionID     string                        `json:"sessionId"`
	Symptoms      []assistant.Symptom           `json:"symptoms"`
	Diagnosis     *assistant.Diagnosis          `json:"diagnosis,omitempty"`
	Appointment   *assistant.AppointmentRequest `json:"appointment,omitempty"`
}

func (h *handler) newProcessVoiceResp(out interaction.ProcessVoiceOutput) processVoiceResp {
	return processVoiceResp{
		Response:      out.Turn.Response,
		InteractionID: out.Interaction.ID,
		SessionID:     out.SessionID,
		Symptoms:      out.Turn.Symptoms,
		Diagnosis:     out.Turn.Diagnosis,
		Appointment:   out.Turn.Appointment,
	}
}

type recordResp struct {
	Interaction interactionResp `json:"aiInteraction"`
}

func (h *handler) newRecordResp(out interaction.RecordOutput) recordResp {
	return recordResp{Interaction: newInteractionResp(out.Interaction)}
}

type historyResp struct {
	Interactions []interactionResp `json:"interactions"`
	Total        int               `json:"total"`
	Limit        int               `json:"limit"`
	Offset       int               `json:"offset"`
}

func (h *handler) newHistoryResp(out interaction.HistoryOutput) historyResp {
	items := make([]interactionResp, len(out.Interactions))
	for i, it := range out.Interactions {
		items[i] = newInteractionResp(it)
	}
	return historyResp{
		Interactions: items,
		Total:        out.Total,
		Limit:        out.Limit,
		Offset:       out.Offset,
	}
}

type diagnoseResp struct {
	Diseases []string `json:"diseases"`
}

func (h *handler) newDiagnoseResp(out interaction.DiagnoseOutput) diagnoseResp {
	return diagnoseResp{Diseases: out.Diseases}
}
