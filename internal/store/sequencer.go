package store

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/semaphore"
)

var (
	seqWait = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_sequencer_wait_seconds",
			Help:    "Time an action waited for exclusive access to its collection",
			Buckets: prometheus.DefBuckets,
		}, []string{"collection"},
	)
	seqPending = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Name: "store_sequencer_pending", Help: "Actions queued or running per collection"},
		[]string{"collection"},
	)
)

func init() { prometheus.MustRegister(seqWait, seqPending) }

// Sequencer 单槽信号量：同一集合的 读-改-写 严格按提交顺序（FIFO）逐个执行。
// 不同集合各自一个实例，互不阻塞。只保护本进程内的交错。
type Sequencer struct {
	name string
	sem  *semaphore.Weighted
}

func NewSequencer(collection string) *Sequencer {
	return &Sequencer{name: collection, sem: semaphore.NewWeighted(1)}
}

func (s *Sequencer) Name() string { return s.name }

// WithExclusiveAccess 排队执行 action，返回其结果/错误。
// 一旦提交不可取消：排队与执行都忽略 ctx 的取消，action 拿到的是 WithoutCancel 的 ctx。
// action 出错或 panic 都会释放槽位，后续动作照常执行。
func WithExclusiveAccess[T any](ctx context.Context, s *Sequencer, action func(ctx context.Context) (T, error)) (T, error) {
	ctx = context.WithoutCancel(ctx)
	pending := seqPending.WithLabelValues(s.name)
	pending.Inc()
	defer pending.Dec()

	start := time.Now()
	if err := s.sem.Acquire(ctx, 1); err != nil {
		var zero T
		return zero, err
	}
	defer s.sem.Release(1)
	seqWait.WithLabelValues(s.name).Observe(time.Since(start).Seconds())

	return action(ctx)
}
