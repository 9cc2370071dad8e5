package apperrors

import (
	"net/http"
)

/*
Этот файл содержит фабрики и предопределенные переменные
для общих ошибок бизнес-логики и домена.
*/

// =========================================================================
// Фабричные ФУНКЦИИ (Используются для оборачивания ошибок, напр. из репозитория)
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404)
// Используется, когда ошибка репозитория (типа repositories.ErrNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrDuplicateID - фабрика: клиентский id записи уже занят (409).
// Сторы обязаны детерминированно отклонять коллизии id, а не перезаписывать.
func ErrDuplicateID(domain, id string) *AppError {
	return New(CodeDuplicateID, domain, "Record id already exists: "+id, http.StatusConflict)
}

// =========================================================================
// Предопределенные ПЕРЕМЕННЫЕ (Для частых, статичных ошибок)
// =========================================================================

// ErrInsufficientPermissions - используется, когда не-админ пытается выполнить админ-действие.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrNotOwner - вызывающий не владеет записью, которую пытается изменить/читать.
var ErrNotOwner = New(
	CodeForbidden,
	"auth",
	"Caller does not own this record",
	http.StatusForbidden,
)

// ErrAnonymousCaller - мутация без установленной личности вызывающего.
var ErrAnonymousCaller = New(
	CodeUnauthorized,
	"auth",
	"Anonymous callers cannot perform this operation",
	http.StatusUnauthorized,
)

// ErrInvalidToken - неверный или просроченный токен.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// --- Access control ---

// ErrAlreadyInitialized - повторный bootstrap реестра ролей другим вызывающим.
var ErrAlreadyInitialized = New(
	CodeAlreadyInitialized,
	"access",
	"Access control is already initialized",
	http.StatusConflict,
)

// --- Profiles ---

// ErrCompanyProfileExists - у вызывающего уже есть профиль компании.
var ErrCompanyProfileExists = New(
	CodeAlreadyExists,
	"company",
	"Caller already has a company profile",
	http.StatusConflict,
)

// ErrCompanyProfileRequired - операция доступна только владельцам профиля компании.
var ErrCompanyProfileRequired = New(
	CodeForbidden,
	"company",
	"A company profile is required for this operation",
	http.StatusForbidden,
)

// --- Applications ---

// ErrDuplicateApplication - пара (jobId, applicant) уже имеет отклик.
var ErrDuplicateApplication = New(
	CodeDuplicateApplication,
	"application",
	"Caller has already applied for this job",
	http.StatusConflict,
)

// --- Payments ---

// ErrInvalidAmount - отрицательная сумма платежа.
var ErrInvalidAmount = New(
	CodeInvalidAmount,
	"payment",
	"Payment amount cannot be negative",
	http.StatusBadRequest,
)
