package main

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"lifemap/internal/service"
)

func TestAskQuestions_NumbersAndFreeText(t *testing.T) {
	questions := service.NewAssessmentService(nil, nil, nil).Questions()
	input := strings.Join([]string{"1", "", "Science and research", "9", "2", "5", "4"}, "\n") + "\n"
	var out bytes.Buffer

	responses := askQuestions(&out, bufio.NewReader(strings.NewReader(input)), questions)

	if responses["strengths"] != questions[0].Options[0] {
		t.Fatalf("numeric answer not mapped: %q", responses["strengths"])
	}
	if responses["interests"] != "Science and research" {
		t.Fatalf("blank line should re-prompt, got %q", responses["interests"])
	}
	if responses["challenges"] != "9" {
		t.Fatalf("out of range number kept as free text, got %q", responses["challenges"])
	}
	if responses["learning"] != questions[5].Options[3] {
		t.Fatalf("unexpected last answer %q", responses["learning"])
	}
}

func TestAskQuestions_EOF(t *testing.T) {
	questions := service.NewAssessmentService(nil, nil, nil).Questions()
	var out bytes.Buffer
	responses := askQuestions(&out, bufio.NewReader(strings.NewReader("")), questions)
	if len(responses) != len(questions) {
		t.Fatalf("expected an entry per question, got %d", len(responses))
	}
}

func TestRunOffline_PrintsRecommendation(t *testing.T) {
	input := strings.Repeat("5\n", 6)
	var out bytes.Buffer
	if err := runOffline(&out, bufio.NewReader(strings.NewReader(input))); err != nil {
		t.Fatalf("offline run failed: %v", err)
	}
	if !strings.Contains(out.String(), "Top resources") {
		t.Fatalf("missing resources section: %s", out.String())
	}
}

func TestHandleSubmitError_LogsUnsavedResult(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logger := zap.New(core)

	saveErr := errors.New("db down")
	if err := handleSubmitError(logger, "u1", &service.PersistenceError{Err: saveErr}); err != nil {
		t.Fatalf("unsaved result should not abort, got %v", err)
	}
	entries := logs.All()
	if len(entries) != 1 || entries[0].Message != "assessment result not saved" {
		t.Fatalf("expected one warning, got %+v", entries)
	}
	fields := entries[0].ContextMap()
	if fields["user_id"] != "u1" || fields["error"] != "db down" {
		t.Fatalf("unexpected fields %+v", fields)
	}

	other := errors.New("rate limited")
	if err := handleSubmitError(logger, "u1", other); !errors.Is(err, other) {
		t.Fatalf("expected other errors to pass through, got %v", err)
	}
	if err := handleSubmitError(logger, "u1", nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
