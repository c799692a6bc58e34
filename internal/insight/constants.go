package insight

// Тексты, которые видит пользователь
const (
	MsgNotConfigured       = "Please configure API_KEY to use AI features."
	MsgDescriptionFailed   = "Failed to generate description. Please try again."
	MsgDescriptionNotFound = "Description unavailable."
)

// Операции и исходы для метрик
const (
	OperationDescribe  = "describe_service"
	OperationSummarize = "summarize_trend"

	OutcomeOK       = "ok"
	OutcomeEmpty    = "empty"
	OutcomeError    = "error"
	OutcomeDisabled = "disabled"
)
