// Package assistant is the rule-based engine behind the patient assistant.
//
// Every function in this package is pure: no I/O, no shared state, no
// retained conversation. The caller owns the accumulated symptom list and
// threads it through turns:
//
//	turn := assistant.Process(text, prior)
//	prior = turn.Symptoms
//
// The output is a non-clinical suggestion, not a medical determination.
package assistant

// Process runs one conversation turn over text and the caller's prior
// symptoms: extract, merge, diagnose, route, compose.
func Process(text string, prior []Symptom) Turn {
	extracted := Extract(text)
	symptoms := MergeSymptoms(prior, extracted)
	diagnosis := Diagnose(symptoms)
	appointment := RouteAppointment(text, diagnosis)

	return Turn{
		Response:    Compose(text, extracted, diagnosis, appointment),
		Symptoms:    symptoms,
		Extracted:   extracted,
		Diagnosis:   diagnosis,
		Appointment: appointment,
	}
}
