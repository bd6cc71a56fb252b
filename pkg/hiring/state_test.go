package hiring

import (
	"testing"
	"time"
)

func TestInterviewState(t *testing.T) {
	at := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	resp := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		app  Application
		want PipelineState
	}{
		{"пустая заявка", Application{}, StateNoInterview},
		{"назначено интервью", Application{ScheduledInterviewAt: &at}, StateScheduled},
		{"анкета отправлена", Application{ScheduledInterviewAt: &at, ResponseSubmittedAt: &resp}, StateResponseSubmitted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InterviewState(&tt.app); got != tt.want {
				t.Errorf("InterviewState() = %v, want %v", got, tt.want)
			}
			// Без итога и найма полное состояние совпадает с состоянием этапа
			if got := StateOf(&tt.app, false, false); got != tt.want {
				t.Errorf("StateOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStateOf(t *testing.T) {
	at := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	resp := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		app       Application
		hasResult bool
		hired     bool
		want      PipelineState
	}{
		{
			name: "пустая заявка",
			app:  Application{},
			want: StateNoInterview,
		},
		{
			name: "назначено интервью",
			app:  Application{ScheduledInterviewAt: &at},
			want: StateScheduled,
		},
		{
			name: "анкета отправлена",
			app:  Application{ScheduledInterviewAt: &at, ResponseSubmittedAt: &resp},
			want: StateResponseSubmitted,
		},
		{
			name:      "итог записан важнее анкеты",
			app:       Application{ScheduledInterviewAt: &at, ResponseSubmittedAt: &resp},
			hasResult: true,
			want:      StateResultRecorded,
		},
		{
			name:      "нанят — терминальное состояние",
			app:       Application{ScheduledInterviewAt: &at, ResponseSubmittedAt: &resp},
			hasResult: true,
			hired:     true,
			want:      StateHired,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StateOf(&tt.app, tt.hasResult, tt.hired); got != tt.want {
				t.Errorf("StateOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to PipelineState
		want     bool
	}{
		{StateNoInterview, StateScheduled, true},
		{StateNoInterview, StateResultRecorded, false},
		{StateScheduled, StateNoInterview, true},
		{StateScheduled, StateResponseSubmitted, true},
		{StateScheduled, StateResultRecorded, true},
		{StateResponseSubmitted, StateScheduled, true},
		{StateResponseSubmitted, StateResultRecorded, true},
		{StateResponseSubmitted, StateNoInterview, false},
		{StateResultRecorded, StateHired, true},
		{StateResultRecorded, StateScheduled, false},
		{StateHired, StateScheduled, false},
		{StateHired, StateNoInterview, false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
