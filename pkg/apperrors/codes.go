package apperrors

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// Общие, не-доменные коды ошибок
const (
	// Системные и неизвестные ошибки
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
	CodeUnknownError  ErrorCode = "UNKNOWN_ERROR"

	// Общие ошибки бизнес-логики (используются фабриками)
	CodeNotFound             ErrorCode = "NOT_FOUND"
	CodeAlreadyExists        ErrorCode = "ALREADY_EXISTS"
	CodeDuplicateID          ErrorCode = "DUPLICATE_ID"
	CodeDuplicateApplication ErrorCode = "DUPLICATE_APPLICATION"
	CodeValidationFailed     ErrorCode = "VALIDATION_FAILED"
	CodeConflict             ErrorCode = "CONFLICT"
	CodeInvalidAmount        ErrorCode = "INVALID_AMOUNT"
	CodeInvalidOperation     ErrorCode = "INVALID_OPERATION"
	CodeAlreadyInitialized   ErrorCode = "ALREADY_INITIALIZED"

	// Аутентификация и Авторизация (они сквозные)
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"
	CodeInvalidToken ErrorCode = "INVALID_TOKEN"
)
