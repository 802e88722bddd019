package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Availability guarda listas de horários calculadas, invalidadas por um
// contador de versão por profissional+dia (qualquer escrita de agendamento
// incrementa a versão, tornando as entradas antigas inalcançáveis).
//
// Opcional: com REDIS_ADDR vazio o ponteiro é nil e todos os métodos viram
// no-op: a API funciona igual, só sem cache.
type Availability struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(addr string) *Availability {
	if addr == "" {
		return nil
	}
	return &Availability{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: 60 * time.Second,
	}
}

func (a *Availability) enabled() bool {
	return a != nil && a.rdb != nil
}

func (a *Availability) versionKey(professionalID uint, date string) string {
	return fmt.Sprintf("availver:%d:%s", professionalID, date)
}

func (a *Availability) version(ctx context.Context, professionalID uint, date string) int64 {
	v, err := a.rdb.Get(ctx, a.versionKey(professionalID, date)).Int64()
	if err != nil {
		return 0
	}
	return v
}

func (a *Availability) slotsKey(professionalID uint, date, variant string) string {
	v := a.version(context.Background(), professionalID, date)
	return fmt.Sprintf("slots:%d:%d:%s:%s", v, professionalID, date, variant)
}

func (a *Availability) GetSlots(
	ctx context.Context,
	professionalID uint,
	date string,
	variant string,
) ([]string, bool) {
	if !a.enabled() {
		return nil, false
	}

	raw, err := a.rdb.Get(ctx, a.slotsKey(professionalID, date, variant)).Result()
	if err != nil {
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (a *Availability) PutSlots(
	ctx context.Context,
	professionalID uint,
	date string,
	variant string,
	slots []string,
) {
	if !a.enabled() {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	a.rdb.Set(ctx, a.slotsKey(professionalID, date, variant), raw, a.ttl)
}

// Invalidate marca o dia como sujo após qualquer escrita de agendamento.
func (a *Availability) Invalidate(ctx context.Context, professionalID uint, date string) {
	if !a.enabled() {
		return
	}
	a.rdb.Incr(ctx, a.versionKey(professionalID, date))
	a.rdb.Expire(ctx, a.versionKey(professionalID, date), 24*time.Hour)
}
