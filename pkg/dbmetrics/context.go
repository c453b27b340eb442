package dbmetrics

import "context"

type contextKey struct{}

var executorKey = contextKey{}

// WithExecutor кладет исполнитель транзакции в контекст
// Репозитории используют его вместо базового соединения, что позволяет
// выполнять несколько repository-вызовов в одной транзакции
func WithExecutor(ctx context.Context, executor TxExecutor) context.Context {
	return context.WithValue(ctx, executorKey, executor)
}

// GetExecutor возвращает исполнитель из контекста или fallback
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if executor, ok := ctx.Value(executorKey).(TxExecutor); ok {
		return executor
	}
	return fallback
}

// IsInTransaction проверяет, привязана ли к контексту активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(executorKey).(TxExecutor)
	return ok
}
