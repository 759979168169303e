package usecase

import (
	"context"
	"strings"

	"patient-portal-assistant/internal/assistant"
	"patient-portal-assistant/internal/interaction"
	repo "patient-portal-assistant/internal/interaction/repository"
	"patient-portal-assistant/internal/model"
)

// ProcessVoice runs one assistant turn for the caller and persists it.
// Session state is written back only after the interaction is stored.
func (uc *implUseCase) ProcessVoice(ctx context.Context, sc model.Scope, input interaction.ProcessVoiceInput) (interaction.ProcessVoiceOutput, error) {
	if sc.UserID == "" {
		return interaction.ProcessVoiceOutput{}, interaction.ErrMissingUser
	}
	if strings.TrimSpace(input.Text) == "" {
		return interaction.ProcessVoiceOutput{}, interaction.ErrEmptyInput
	}

	known, err := knownSymptoms(input.PriorSymptoms)
	if err != nil {
		return interaction.ProcessVoiceOutput{}, err
	}
	input.PriorSymptoms = known

	sessionID, prior := uc.resolveSession(sc, input)

	turn := assistant.Process(input.Text, prior)
	uc.l.Debugf(ctx, "uc.ProcessVoice session=%s intent=%s symptoms=%d",
		sessionID, turn.Response.Intent, len(turn.Symptoms))

	it, err := uc.repo.CreateInteraction(ctx, repo.CreateInteractionOptions{
		UserID:                     sc.UserID,
		SessionID:                  sessionID,
		InputText:                  input.Text,
		ResponseText:               turn.Response.Text,
		DetectedIntent:             string(turn.Response.Intent),
		ConfidenceScore:            turn.Response.Confidence,
		ResultedInAppointment:      turn.Response.Actions.ScheduleAppointment,
		ResultedInProviderTransfer: turn.Response.Actions.ConnectToProvider,
		InteractionTimestamp:       uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ProcessVoice CreateInteraction: %v", err)
		uc.metrics.RecordPersistFailure()
		return interaction.ProcessVoiceOutput{}, err
	}

	uc.sessions.Save(sc.UserID, sessionID, turn.Symptoms)
	uc.metrics.RecordTurn(
		string(turn.Response.Intent),
		turn.Response.Actions.ScheduleAppointment,
		turn.Response.Actions.ConnectToProvider,
		len(turn.Symptoms),
	)

	return interaction.ProcessVoiceOutput{
		Interaction: it,
		SessionID:   sessionID,
		Turn:        turn,
	}, nil
}

// resolveSession picks the prior symptoms for this turn: explicit request
// state first, then the session store, then an empty conversation.
func (uc *implUseCase) resolveSession(sc model.Scope, input interaction.ProcessVoiceInput) (string, []assistant.Symptom) {
	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = uc.newSessionID()
	}

	if input.PriorSymptoms != nil {
		uc.metrics.RecordSessionSource(interaction.SessionSourceRequest)
		return sessionID, input.PriorSymptoms
	}

	if input.SessionID != "" {
		if prior, ok := uc.sessions.Get(sc.UserID, sessionID); ok {
			uc.metrics.RecordSessionSource(interaction.SessionSourceStore)
			return sessionID, prior
		}
	}

	uc.metrics.RecordSessionSource(interaction.SessionSourceNew)
	return sessionID, nil
}

// knownSymptoms replaces each caller-supplied symptom with its extractor
// table entry. A nil slice stays nil.
func knownSymptoms(prior []assistant.Symptom) ([]assistant.Symptom, error) {
	if prior == nil {
		return nil, nil
	}
	out := make([]assistant.Symptom, len(prior))
	for i, s := range prior {
		known, ok := assistant.KnownSymptom(s.Name)
		if !ok {
			return nil, interaction.ErrUnknownSymptom
		}
		out[i] = known
	}
	return out, nil
}
