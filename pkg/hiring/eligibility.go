package hiring

// HireBlock — причина, по которой заявку нельзя конвертировать в сотрудника.
// Проверки здесь чисто вычислительные: вызывающая сторона сама читает
// записи и перепроверяет перед записью. Последний арбитр гонок —
// уникальные ограничения в хранилище, а не этот предикат.
type HireBlock string

const (
	HireBlockNone         HireBlock = ""
	HireBlockNotEligible  HireBlock = "not found/not eligible"
	HireBlockNotPassed    HireBlock = "has not passed interview"
	HireBlockAlreadyHired HireBlock = "already hired"
)

// EligibleForScheduling — можно ли открывать заявке этап собеседования.
func EligibleForScheduling(app *Application) bool {
	return app != nil && app.Status == StatusAccepted
}

// EvaluateHire решает, можно ли конвертировать заявку в сотрудника.
// Найм — переход RESULT_RECORDED → HIRED, поэтому состояние выводится
// через StateOf и проверяется машиной состояний.
// alreadyHired — существует ли Staff с совпадающим email ИЛИ телефоном.
// Первый непройденный критерий определяет причину отказа.
func EvaluateHire(app *Application, result *InterviewResult, alreadyHired bool) HireBlock {
	if app == nil || app.Status != StatusAccepted || app.ScheduledInterviewAt == nil {
		return HireBlockNotEligible
	}
	state := StateOf(app, result != nil, alreadyHired)
	if state != StateHired && !CanTransition(state, StateHired) {
		// Итога собеседования ещё нет
		return HireBlockNotPassed
	}
	if result == nil || result.Result != ResultPassed {
		return HireBlockNotPassed
	}
	if state == StateHired {
		return HireBlockAlreadyHired
	}
	return HireBlockNone
}
