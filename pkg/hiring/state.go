// Пайплайн найма хранится плоскими nullable-колонками заявки.
// Логическое состояние выводится из них ровно одной функцией (StateOf),
// а не пересчитывается по месту в каждом обработчике.
//
// Граф состояний:
//
//	NO_INTERVIEW ⇄ SCHEDULED ⇄ RESPONSE_SUBMITTED
//	                   │                │
//	                   └──► RESULT_RECORDED ──► HIRED
//
// HIRED — терминальное, достижимо только через конвертацию в сотрудника.
package hiring

// PipelineState — логическое состояние заявки на этапе собеседования.
type PipelineState string

const (
	StateNoInterview       PipelineState = "NO_INTERVIEW"
	StateScheduled         PipelineState = "SCHEDULED"
	StateResponseSubmitted PipelineState = "RESPONSE_SUBMITTED"
	StateResultRecorded    PipelineState = "RESULT_RECORDED"
	StateHired             PipelineState = "HIRED"
)

// validTransitions перечисляет все допустимые пары (from → to).
var validTransitions = map[PipelineState][]PipelineState{
	StateNoInterview:       {StateScheduled},
	StateScheduled:         {StateNoInterview, StateResponseSubmitted, StateResultRecorded},
	StateResponseSubmitted: {StateScheduled, StateResultRecorded},
	StateResultRecorded:    {StateHired},
	// HIRED — терминальное
}

// InterviewState — каноническая функция вывода состояния этапа
// собеседования из nullable-полей заявки. Все операции этапа выводят
// состояние только через неё, по месту nullable-поля не проверяются.
// Итог и найм в колонках заявки не хранятся, их учитывает StateOf.
func InterviewState(app *Application) PipelineState {
	switch {
	case app.ResponseSubmittedAt != nil:
		return StateResponseSubmitted
	case app.ScheduledInterviewAt != nil:
		return StateScheduled
	default:
		return StateNoInterview
	}
}

// StateOf — полное состояние пайплайна.
// hasResult — существует ли InterviewResult; hired — существует ли Staff.
func StateOf(app *Application, hasResult, hired bool) PipelineState {
	switch {
	case hired:
		return StateHired
	case hasResult:
		return StateResultRecorded
	default:
		return InterviewState(app)
	}
}

// CanTransition returns true when moving from → to is permitted by the state machine.
func CanTransition(from, to PipelineState) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
