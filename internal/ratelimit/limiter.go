package ratelimit

import (
	"context"
	"time"
)

// Limiter решает, пропускать ли очередной запрос для ключа
// (обычно это IP клиента). Реализации: in-memory скользящее окно
// для одного инстанса и Redis для multi-instance деплоя.
type Limiter interface {
	// Allow возвращает true если запрос укладывается в лимит
	Allow(ctx context.Context, key string) (bool, error)
}

// Window - размер окна лимитирования
const Window = time.Minute
