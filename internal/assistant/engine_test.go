package assistant

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	t.Run("fallback", func(t *testing.T) {
		resp := Compose("hello", nil, nil, nil)
		assert.Equal(t, ReplyFallback, resp.Text)
		assert.Equal(t, IntentUnknown, resp.Intent)
		assert.Equal(t, ConfidenceUnknown, resp.Confidence)
		assert.Equal(t, Actions{}, resp.Actions)
	})

	t.Run("provider hand-off", func(t *testing.T) {
		resp := Compose("Connect me with my doctor", nil, nil, nil)
		assert.Equal(t, ReplyConnectProvider, resp.Text)
		assert.Equal(t, IntentConnectToProvider, resp.Intent)
		assert.True(t, resp.Actions.ConnectToProvider)
		assert.False(t, resp.Actions.ScheduleAppointment)
	})

	t.Run("noted symptoms without diagnosis", func(t *testing.T) {
		extracted := Extract("a cough and nausea")
		resp := Compose("a cough and nausea", extracted, nil, nil)
		assert.Equal(t,
			"I've noted your symptoms: cough, nausea. Please tell me more about how you're feeling or any other symptoms you're experiencing.",
			resp.Text)
		assert.Equal(t, IntentSymptomAnalysis, resp.Intent)
	})

	t.Run("appointment takes precedence over diagnosis", func(t *testing.T) {
		d := Diagnose(Extract("fever and cough"))
		appt := RouteAppointment("book an evening appointment", d)
		resp := Compose("book an evening appointment", nil, d, appt)

		assert.Equal(t, fmt.Sprintf(ReplyAppointment, PreferredTimeEvening), resp.Text)
		assert.True(t, resp.Actions.ScheduleAppointment)
		assert.Equal(t, IntentScheduleAppointment, resp.Intent)
	})

	t.Run("diagnosis narrative", func(t *testing.T) {
		d := Diagnose(Extract("fever and cough"))
		resp := Compose("fever and cough", Extract("fever and cough"), d, nil)

		want := "Based on your symptoms (fever, cough), you may have Common cold or Flu. " +
			"I recommend: Rest and stay hydrated. Over-the-counter pain relievers for fever and aches. " +
			"Warm liquids like tea with honey for sore throat. " +
			"If symptoms persist for more than 3 days or worsen, consult with your healthcare provider. " +
			"Your condition appears to be mild. " +
			"Would you like me to schedule an appointment with your healthcare provider?"
		assert.Equal(t, want, resp.Text)
		assert.False(t, resp.Actions.ScheduleAppointment)
	})
}

func TestProcess_HeadacheAndFeverAfterCough(t *testing.T) {
	prior := []Symptom{{Name: "cough", Description: "respiratory irritation"}}

	turn := Process("I have a headache and fever", prior)

	assert.Equal(t, []string{"headache", "fever"}, symptomNames(turn.Extracted))
	assert.Equal(t, []string{"cough", "headache", "fever"}, symptomNames(turn.Symptoms))

	require.NotNil(t, turn.Diagnosis)
	for _, c := range []string{ConditionTensionHeadache, ConditionCommonCold, ConditionFlu} {
		assert.Contains(t, turn.Diagnosis.PossibleConditions, c)
		assert.Contains(t, turn.Response.Text, c)
	}
	assert.Equal(t, SeverityMild, turn.Diagnosis.Severity)
	assert.True(t, strings.HasSuffix(turn.Response.Text, ReplyScheduleQuestion))

	assert.Nil(t, turn.Appointment)
	assert.Equal(t, IntentSymptomAnalysis, turn.Response.Intent)
	assert.Equal(t, ConfidenceSymptomAnalysis, turn.Response.Confidence)
	assert.Equal(t, Actions{}, turn.Response.Actions)
}

func TestProcess_HeadacheAndFeverFirstTurn(t *testing.T) {
	turn := Process("I have a headache and fever", nil)

	require.NotNil(t, turn.Diagnosis)
	assert.Equal(t, []string{ConditionTensionHeadache}, turn.Diagnosis.PossibleConditions)
	assert.Equal(t, SeverityMild, turn.Diagnosis.Severity)
}

func TestProcess_ScheduleWithoutSymptoms(t *testing.T) {
	turn := Process("I need to schedule an appointment", nil)

	require.NotNil(t, turn.Appointment)
	assert.Equal(t, ReasonHealthConsult, turn.Appointment.Reason)
	assert.Equal(t, UrgencyRoutine, turn.Appointment.Urgency)
	assert.Nil(t, turn.Diagnosis)
	assert.Empty(t, turn.Symptoms)

	assert.True(t, turn.Response.Actions.ScheduleAppointment)
	assert.False(t, turn.Response.Actions.ConnectToProvider)
	assert.Equal(t, fmt.Sprintf(ReplyAppointment, PreferredTimeAny), turn.Response.Text)
	assert.Equal(t, IntentScheduleAppointment, turn.Response.Intent)
	assert.Equal(t, ConfidenceScheduleAppointment, turn.Response.Confidence)
}

func TestProcess_ScheduleWithAccumulatedSymptoms(t *testing.T) {
	first := Process("fever, cough and a sore throat", nil)
	second := Process("please book an appointment tomorrow morning", first.Symptoms)

	require.NotNil(t, second.Appointment)
	assert.Equal(t, PreferredTimeMorning, second.Appointment.PreferredTime)
	assert.Equal(t, string(SeverityModerate), second.Appointment.Urgency)
	assert.Equal(t, "Possible Common cold or Flu or Strep throat", second.Appointment.Reason)
	assert.Equal(t, symptomNames(first.Symptoms), symptomNames(second.Symptoms))
}

func TestProcess_Deterministic(t *testing.T) {
	prior := Extract("fatigue and nausea")
	snapshot := append([]Symptom(nil), prior...)

	a := Process("now a headache too", prior)
	b := Process("now a headache too", prior)

	assert.Equal(t, a, b)
	assert.Equal(t, snapshot, prior)
}

func TestProcess_SymptomsAccumulateAcrossTurns(t *testing.T) {
	var state []Symptom
	for _, text := range []string{"I have a cough", "and a fever", "cough is worse", "feeling some fatigue and nausea"} {
		state = Process(text, state).Symptoms
	}

	assert.Equal(t, []string{"cough", "fever", "fatigue", "nausea"}, symptomNames(state))

	d := Diagnose(state)
	require.NotNil(t, d)
	assert.Equal(t, SeverityModerate, d.Severity)
}
