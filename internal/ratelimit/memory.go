package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter - скользящее окно в памяти процесса.
// Не разделяется между инстансами; старые записи вытесняются при обращении,
// замолчавшие клиенты выметаются целиком раз в окно.
type MemoryLimiter struct {
	mu        sync.Mutex
	limit     int
	clock     func() time.Time
	history   map[string][]time.Time
	lastSweep time.Time
}

func NewMemoryLimiter(requestsPerWindow int) *MemoryLimiter {
	return &MemoryLimiter{
		limit:   requestsPerWindow,
		clock:   time.Now,
		history: make(map[string][]time.Time),
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock()
	cutoff := now.Add(-Window)

	if now.Sub(l.lastSweep) >= Window {
		l.sweep(cutoff)
		l.lastSweep = now
	}

	// Отбрасываем запросы старше окна
	timestamps := l.history[key]
	keep := timestamps[:0]
	for _, ts := range timestamps {
		if ts.After(cutoff) {
			keep = append(keep, ts)
		}
	}

	if len(keep) >= l.limit {
		l.history[key] = keep
		return false, nil
	}

	l.history[key] = append(keep, now)
	return true, nil
}

// sweep удаляет ключи, у которых все записи старше окна;
// метки добавляются по возрастанию, достаточно взглянуть на последнюю.
func (l *MemoryLimiter) sweep(cutoff time.Time) {
	for key, timestamps := range l.history {
		if len(timestamps) == 0 || !timestamps[len(timestamps)-1].After(cutoff) {
			delete(l.history, key)
		}
	}
}
