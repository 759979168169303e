package assistant

import "strings"

// ClassifyIntent picks the intent of text by keyword precedence:
// appointment language, then provider language, then symptom language.
// Any symptom extracted this turn also counts as symptom language.
func ClassifyIntent(text string, extracted []Symptom) (Intent, float64) {
	lower := strings.ToLower(text)

	switch {
	case containsAny(lower, appointmentKeywords):
		return IntentScheduleAppointment, ConfidenceScheduleAppointment
	case containsAny(lower, providerKeywords):
		return IntentConnectToProvider, ConfidenceConnectToProvider
	case containsAny(lower, symptomLanguage) || len(extracted) > 0:
		return IntentSymptomAnalysis, ConfidenceSymptomAnalysis
	default:
		return IntentUnknown, ConfidenceUnknown
	}
}

// RouteAppointment returns an AppointmentRequest when text contains
// scheduling language, or nil otherwise.
func RouteAppointment(text string, diagnosis *Diagnosis) *AppointmentRequest {
	lower := strings.ToLower(text)
	if !containsAny(lower, appointmentKeywords) {
		return nil
	}

	req := &AppointmentRequest{
		Requested:     true,
		PreferredTime: preferredTime(lower),
		Urgency:       UrgencyRoutine,
		Reason:        ReasonHealthConsult,
	}
	if diagnosis != nil {
		req.Urgency = string(diagnosis.Severity)
		req.Reason = ReasonPossibleCondition + strings.Join(diagnosis.PossibleConditions, " or ")
	}
	return req
}

// preferredTime expects lowercased text. First match wins in
// morning, afternoon, evening order.
func preferredTime(lower string) PreferredTime {
	for _, t := range []PreferredTime{PreferredTimeMorning, PreferredTimeAfternoon, PreferredTimeEvening} {
		if strings.Contains(lower, string(t)) {
			return t
		}
	}
	return PreferredTimeAny
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
