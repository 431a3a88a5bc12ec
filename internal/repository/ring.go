package repository

// Емкости кольцевых буферов истории
const (
	AlertHistoryCap = 100
	SentLogCap      = 50
)

// ring — кольцевой буфер фиксированной емкости: вставка в голову за O(1),
// записи за пределами емкости молча вытесняются, начиная с самых старых
type ring[T any] struct {
	buf  []T
	head int
	size int
}

func newRing[T any](capacity int) *ring[T] {
	return &ring[T]{buf: make([]T, capacity)}
}

// push вставляет запись в голову буфера
func (r *ring[T]) push(v T) {
	r.head = (r.head + len(r.buf) - 1) % len(r.buf)
	r.buf[r.head] = v
	if r.size < len(r.buf) {
		r.size++
	}
}

// items возвращает записи от новых к старым
func (r *ring[T]) items() []T {
	out := make([]T, 0, r.size)
	for i := 0; i < r.size; i++ {
		out = append(out, r.buf[(r.head+i)%len(r.buf)])
	}
	return out
}
