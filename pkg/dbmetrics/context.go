package dbmetrics

import "context"

type txContextKey struct{}

// WithExecutor кладет транзакционный исполнитель в контекст
// Используется transaction manager'ами, репозитории достают его через GetExecutor
func WithExecutor(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// GetExecutor возвращает исполнитель из контекста (активную транзакцию),
// либо переданный fallback, если транзакции в контексте нет
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txContextKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}
