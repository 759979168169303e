package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnose_Empty(t *testing.T) {
	assert.Nil(t, Diagnose(nil))
	assert.Nil(t, Diagnose([]Symptom{}))
}

func TestDiagnose_FeverAndCough(t *testing.T) {
	d := Diagnose(Extract("I've had a Fever and a bad COUGH since Monday"))
	require.NotNil(t, d)

	assert.Equal(t, []string{ConditionCommonCold, ConditionFlu}, d.PossibleConditions)
	assert.Equal(t, []string{
		RecommendRest,
		RecommendPainRelieverFever,
		RecommendWarmLiquids,
		RecommendConsultProvider,
	}, d.Recommendations)
	assert.Equal(t, SeverityMild, d.Severity)
}

func TestDiagnose_SoreThroatAddsStrep(t *testing.T) {
	d := Diagnose(Extract("fever, cough and a sore throat"))
	require.NotNil(t, d)

	assert.Equal(t, []string{ConditionCommonCold, ConditionFlu, ConditionStrepThroat}, d.PossibleConditions)
	assert.Equal(t, SeverityModerate, d.Severity)
}

func TestDiagnose_Headache(t *testing.T) {
	t.Run("tension headache alone", func(t *testing.T) {
		d := Diagnose(Extract("just a headache"))
		require.NotNil(t, d)
		assert.Equal(t, []string{ConditionTensionHeadache}, d.PossibleConditions)
		assert.Equal(t, SeverityMild, d.Severity)
	})

	t.Run("nausea adds migraine", func(t *testing.T) {
		d := Diagnose(Extract("headache with nausea"))
		require.NotNil(t, d)
		assert.Equal(t, []string{ConditionTensionHeadache, ConditionMigraine}, d.PossibleConditions)
		assert.Contains(t, d.Recommendations, RecommendDarkRoom)
		assert.Contains(t, d.Recommendations, RecommendMigraineMedicine)
		assert.Equal(t, SeverityModerate, d.Severity)
	})

	t.Run("dizzy adds migraine", func(t *testing.T) {
		d := Diagnose(Extract("headache and I feel dizzy"))
		require.NotNil(t, d)
		assert.Contains(t, d.PossibleConditions, ConditionMigraine)
	})
}

func TestDiagnose_ConditionsAccumulate(t *testing.T) {
	d := Diagnose(Extract("fever, cough and a headache"))
	require.NotNil(t, d)

	assert.Equal(t, []string{ConditionCommonCold, ConditionFlu, ConditionTensionHeadache}, d.PossibleConditions)
	assert.Equal(t, []string{
		RecommendRest,
		RecommendPainRelieverFever,
		RecommendWarmLiquids,
		RecommendPainReliever,
		RecommendStressReduction,
		RecommendConsultProvider,
	}, d.Recommendations)
}

func TestDiagnose_GeneralDiscomfort(t *testing.T) {
	d := Diagnose(Extract("so much fatigue"))
	require.NotNil(t, d)

	assert.Equal(t, []string{ConditionGeneralDiscomfort}, d.PossibleConditions)
	assert.Equal(t, []string{RecommendRest, RecommendConsultProvider}, d.Recommendations)
	assert.Equal(t, SeverityMild, d.Severity)
}

func TestDiagnose_ModerateAboveThreeSymptoms(t *testing.T) {
	d := Diagnose(Extract("fatigue, pain, vomiting and a runny nose"))
	require.NotNil(t, d)

	assert.Len(t, d.Symptoms, 4)
	assert.Equal(t, []string{ConditionGeneralDiscomfort}, d.PossibleConditions)
	assert.Equal(t, SeverityModerate, d.Severity)
}

func TestDiagnose_Allergies(t *testing.T) {
	t.Run("unreachable from extracted text", func(t *testing.T) {
		d := Diagnose(Extract("runny nose and sneezing all day"))
		require.NotNil(t, d)
		assert.NotContains(t, d.PossibleConditions, ConditionAllergies)
	})

	t.Run("fires when sneezing is supplied directly", func(t *testing.T) {
		d := Diagnose([]Symptom{
			{Name: "runny nose", Description: "nasal discharge"},
			{Name: "sneezing"},
		})
		require.NotNil(t, d)
		assert.Equal(t, []string{ConditionAllergies}, d.PossibleConditions)
		assert.Contains(t, d.Recommendations, RecommendAntihistamines)
		assert.Contains(t, d.Recommendations, RecommendAvoidAllergens)
	})
}

func TestDiagnose_DoesNotAliasInput(t *testing.T) {
	symptoms := Extract("headache")
	d := Diagnose(symptoms)
	require.NotNil(t, d)

	d.Symptoms[0].Name = "changed"
	assert.Equal(t, "headache", symptoms[0].Name)
}

func TestConditions(t *testing.T) {
	assert.Equal(t, []string{}, Conditions("nothing relevant here"))
	assert.Equal(t, []string{ConditionCommonCold, ConditionFlu}, Conditions("fever and cough"))
}
