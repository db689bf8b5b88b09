package syncedclock

import (
	"context"
	"sync/atomic"
	"time"
)

// ServerTimeFetcher источник доверенного серверного времени
type ServerTimeFetcher interface {
	GetServerTime(ctx context.Context) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Provider provides "now" corrected by a cached client/server offset so that
// time-window decisions are immune to local clock skew. The offset is resolved
// once by Sync; if the fetch fails the offset stays 0 and the provider
// degrades to the local clock.
type Provider struct {
	fetcher  ServerTimeFetcher
	log      Logger
	offsetMs atomic.Int64
}

// NewProvider создает провайдер времени с нулевым смещением (локальные часы)
func NewProvider(fetcher ServerTimeFetcher, log Logger) *Provider {
	return &Provider{fetcher: fetcher, log: log}
}

// Sync однократно запрашивает серверное время и кеширует смещение
// offsetMs = serverTimeMs - localTimeMs
// Ошибка не возвращается наружу: при недоступности источника остаёмся на локальных часах
func (p *Provider) Sync(ctx context.Context) {
	localBefore := time.Now().UnixMilli()

	serverMs, err := p.fetcher.GetServerTime(ctx)
	if err != nil {
		p.log.Warn("syncedclock: server time fetch failed, falling back to local clock: %v", err)
		return
	}

	// Компенсируем половину времени round-trip
	localAfter := time.Now().UnixMilli()
	localMid := localBefore + (localAfter-localBefore)/2

	offset := serverMs - localMid
	p.offsetMs.Store(offset)
	p.log.Info("syncedclock: synchronized with server time, offset=%dms", offset)
}

// Now возвращает текущее время с учетом кешированного смещения
func (p *Provider) Now() time.Time {
	return time.Now().Add(time.Duration(p.offsetMs.Load()) * time.Millisecond)
}

// NowMillis возвращает текущее время в миллисекундах epoch с учетом смещения
func (p *Provider) NowMillis() int64 {
	return time.Now().UnixMilli() + p.offsetMs.Load()
}

// OffsetMillis возвращает текущее кешированное смещение
func (p *Provider) OffsetMillis() int64 {
	return p.offsetMs.Load()
}
