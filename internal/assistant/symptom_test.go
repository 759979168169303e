package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty text", text: "", want: []string{}},
		{name: "whitespace only", text: "   \n\t", want: []string{}},
		{name: "no keywords", text: "Hello, how are you today?", want: []string{}},
		{name: "case insensitive", text: "I have a HEADACHE and Fever", want: []string{"headache", "fever"}},
		{name: "table order not text order", text: "fever first, then a headache", want: []string{"headache", "fever"}},
		{name: "multi word keywords", text: "My sore throat hurts and I have a runny nose", want: []string{"sore throat", "runny nose"}},
		{name: "substring match", text: "it is painful and I feel dizzy", want: []string{"pain", "dizzy"}},
		{name: "sneezing is not a keyword", text: "constant sneezing", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, symptomNames(got))
		})
	}
}

func TestExtract_Descriptions(t *testing.T) {
	got := Extract("fever")
	require.Len(t, got, 1)
	assert.Equal(t, Symptom{Name: "fever", Description: "elevated body temperature"}, got[0])
}

func TestKnownSymptom(t *testing.T) {
	got, ok := KnownSymptom("  Sore Throat ")
	require.True(t, ok)
	assert.Equal(t, Symptom{Name: "sore throat", Description: "throat pain or irritation"}, got)

	for _, name := range []string{"sneezing", "", "throat"} {
		_, ok := KnownSymptom(name)
		assert.False(t, ok, name)
	}
}

func TestMergeSymptoms(t *testing.T) {
	cough := Symptom{Name: "cough", Description: "respiratory irritation"}
	fever := Symptom{Name: "fever", Description: "elevated body temperature"}
	nausea := Symptom{Name: "nausea", Description: "feeling of sickness"}

	t.Run("dedupes by name and keeps first-seen order", func(t *testing.T) {
		prior := []Symptom{cough, fever}
		next := []Symptom{fever, nausea}

		merged := MergeSymptoms(prior, next)

		assert.Equal(t, []string{"cough", "fever", "nausea"}, symptomNames(merged))
	})

	t.Run("does not modify inputs", func(t *testing.T) {
		prior := make([]Symptom, 1, 4)
		prior[0] = cough
		next := []Symptom{fever}

		merged := MergeSymptoms(prior, next)
		merged[0].Name = "changed"

		assert.Len(t, prior, 1)
		assert.Equal(t, "cough", prior[0].Name)
		assert.Equal(t, "fever", next[0].Name)
	})

	t.Run("nil inputs", func(t *testing.T) {
		merged := MergeSymptoms(nil, nil)
		assert.NotNil(t, merged)
		assert.Empty(t, merged)
	})
}
