package types

// ContextKey - тип ключей контекста команд.
type ContextKey string

// ClientAppKey - ключ, под которым приложение кладется в контекст команды.
const ClientAppKey ContextKey = "client_app"
