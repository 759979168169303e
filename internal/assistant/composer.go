package assistant

import (
	"fmt"
	"strings"
)

// Compose builds the reply for one turn. Precedence: appointment request,
// diagnosis narrative, acknowledgement of newly extracted symptoms, then a
// provider hand-off or the generic fallback.
//
// Actions.ScheduleAppointment is set only from the appointment request;
// diagnosis replies ask the scheduling question in text.
func Compose(text string, extracted []Symptom, diagnosis *Diagnosis, appointment *AppointmentRequest) Response {
	intent, confidence := ClassifyIntent(text, extracted)
	if appointment != nil {
		intent, confidence = IntentScheduleAppointment, ConfidenceScheduleAppointment
	}

	resp := Response{
		Intent:     intent,
		Confidence: confidence,
		Actions: Actions{
			ScheduleAppointment: appointment != nil,
			ConnectToProvider:   intent == IntentConnectToProvider,
		},
	}

	switch {
	case appointment != nil:
		resp.Text = fmt.Sprintf(ReplyAppointment, appointment.PreferredTime)
	case diagnosis != nil:
		resp.Text = composeDiagnosis(diagnosis)
	case len(extracted) > 0:
		resp.Text = fmt.Sprintf(ReplyNotedSymptoms, strings.Join(symptomNames(extracted), ", "))
	case intent == IntentConnectToProvider:
		resp.Text = ReplyConnectProvider
	default:
		resp.Text = ReplyFallback
	}

	return resp
}

func composeDiagnosis(d *Diagnosis) string {
	var b strings.Builder

	fmt.Fprintf(&b, ReplyDiagnosisSymptoms, strings.Join(symptomNames(d.Symptoms), ", "))
	if len(d.PossibleConditions) > 0 {
		fmt.Fprintf(&b, ReplyDiagnosisConditions, strings.Join(d.PossibleConditions, " or "))
	}
	fmt.Fprintf(&b, ReplyDiagnosisRecommend, strings.Join(d.Recommendations, ". "))
	if d.Severity != "" {
		fmt.Fprintf(&b, ReplyDiagnosisSeverity, d.Severity)
	}
	b.WriteString(ReplyScheduleQuestion)

	return b.String()
}
