package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

// PrincipalContextKey - ключ, по которому middleware кладет principal вызывающего
const PrincipalContextKey = contextKey("principal")
