// Command cli is a local REPL over the assistant engine. It keeps the
// accumulated symptoms itself and passes them back on every turn, the same
// way an HTTP client would with priorSymptoms.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"patient-portal-assistant/internal/assistant"
	"patient-portal-assistant/pkg/log"
)

const prompt = "you> "

func main() {
	verbose := flag.Bool("v", false, "print extracted symptoms, diagnosis and actions after each reply")
	logLevel := flag.String("log-level", log.LevelWarn, "log level (debug, info, warn, error)")
	flag.Parse()

	logger := log.Init(log.ZapConfig{
		Level:        *logLevel,
		Mode:         log.ModeDebug,
		Encoding:     log.EncodingConsole,
		ColorEnabled: true,
	})

	if err := run(context.Background(), logger, os.Stdin, os.Stdout, *verbose); err != nil {
		logger.Error(context.Background(), "cli: ", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, l log.Logger, in io.Reader, out io.Writer, verbose bool) error {
	fmt.Fprintln(out, "Patient assistant. Describe how you feel; /reset clears symptoms, /quit exits.")

	var symptoms []assistant.Symptom
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		case "/reset":
			symptoms = nil
			fmt.Fprintln(out, "assistant> Conversation cleared.")
			continue
		}

		turn := assistant.Process(line, symptoms)
		symptoms = turn.Symptoms
		l.Debugf(ctx, "intent=%s confidence=%.2f symptoms=%d", turn.Response.Intent, turn.Response.Confidence, len(symptoms))

		fmt.Fprintf(out, "assistant> %s\n", turn.Response.Text)
		if verbose {
			printDetails(out, turn)
		}
	}
}

func printDetails(out io.Writer, turn assistant.Turn) {
	names := make([]string, len(turn.Symptoms))
	for i, s := range turn.Symptoms {
		names[i] = s.Name
	}
	fmt.Fprintf(out, "  intent:   %s (%.2f)\n", turn.Response.Intent, turn.Response.Confidence)
	fmt.Fprintf(out, "  symptoms: [%s]\n", strings.Join(names, ", "))
	if turn.Diagnosis != nil {
		fmt.Fprintf(out, "  severity: %s\n", turn.Diagnosis.Severity)
	}
	if turn.Appointment != nil {
		fmt.Fprintf(out, "  appointment: %s, urgency %s\n", turn.Appointment.PreferredTime, turn.Appointment.Urgency)
	}
	fmt.Fprintf(out, "  actions:  schedule=%t provider=%t\n",
		turn.Response.Actions.ScheduleAppointment, turn.Response.Actions.ConnectToProvider)
}
