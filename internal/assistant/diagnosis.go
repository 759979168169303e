package assistant

import "slices"

// conditionRule adds zero or more conditions for a symptom set.
// Rules are evaluated in order and their conditions accumulate.
type conditionRule struct {
	id    string
	apply func(set symptomSet) []string
}

var conditionRules = []conditionRule{
	{
		id: "respiratory",
		apply: func(set symptomSet) []string {
			if !set.has("fever", "cough") {
				return nil
			}
			conditions := []string{ConditionCommonCold, ConditionFlu}
			if set.has("sore throat") {
				conditions = append(conditions, ConditionStrepThroat)
			}
			return conditions
		},
	},
	{
		id: "headache",
		apply: func(set symptomSet) []string {
			if !set.has("headache") {
				return nil
			}
			conditions := []string{ConditionTensionHeadache}
			if set.hasAny("nausea", "dizzy") {
				conditions = append(conditions, ConditionMigraine)
			}
			return conditions
		},
	},
	{
		// "sneezing" is not in the extractor table, so this never fires for
		// extracted input. Kept until the product decides on the keyword.
		id: "allergies",
		apply: func(set symptomSet) []string {
			if set.has("runny nose", "sneezing") {
				return []string{ConditionAllergies}
			}
			return nil
		},
	},
}

// conditionAdvice maps conditions to the advice appended when any of them matched.
var conditionAdvice = []struct {
	conditions []string
	advice     []string
}{
	{[]string{ConditionCommonCold, ConditionFlu}, []string{RecommendPainRelieverFever, RecommendWarmLiquids}},
	{[]string{ConditionTensionHeadache}, []string{RecommendPainReliever, RecommendStressReduction}},
	{[]string{ConditionMigraine}, []string{RecommendDarkRoom, RecommendMigraineMedicine}},
	{[]string{ConditionAllergies}, []string{RecommendAntihistamines, RecommendAvoidAllergens}},
}

// Diagnose applies the condition rules to the accumulated symptom set.
// It returns nil when symptoms is empty.
func Diagnose(symptoms []Symptom) *Diagnosis {
	if len(symptoms) == 0 {
		return nil
	}

	set := newSymptomSet(symptoms)

	conditions := make([]string, 0)
	for _, rule := range conditionRules {
		conditions = append(conditions, rule.apply(set)...)
	}
	if len(conditions) == 0 {
		conditions = append(conditions, ConditionGeneralDiscomfort)
	}

	return &Diagnosis{
		Symptoms:           slices.Clone(symptoms),
		PossibleConditions: conditions,
		Recommendations:    recommend(conditions),
		Severity:           assessSeverity(symptoms, conditions),
	}
}

func recommend(conditions []string) []string {
	recommendations := []string{RecommendRest}

	for _, entry := range conditionAdvice {
		for _, c := range entry.conditions {
			if slices.Contains(conditions, c) {
				recommendations = append(recommendations, entry.advice...)
				break
			}
		}
	}

	if len(conditions) > 0 {
		recommendations = append(recommendations, RecommendConsultProvider)
	}
	return recommendations
}

func assessSeverity(symptoms []Symptom, conditions []string) Severity {
	if len(symptoms) > moderateSymptomCount {
		return SeverityModerate
	}
	if slices.Contains(conditions, ConditionStrepThroat) || slices.Contains(conditions, ConditionMigraine) {
		return SeverityModerate
	}
	return SeverityMild
}

// Conditions returns the possible conditions for free text without any
// prior conversation state.
func Conditions(text string) []string {
	d := Diagnose(Extract(text))
	if d == nil {
		return []string{}
	}
	return d.PossibleConditions
}
