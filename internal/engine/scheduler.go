package engine

import (
	"container/heap"
)

// Job: отложенное действие. Вызывается на потоке цикла с текущим тиком.
type Job func(tick uint64)

// entry: элемент очереди ожидания
type entry struct {
	tick     uint64 // когда выполнить
	seq      uint64 // порядок постановки внутри одного тика
	owner    uint64 // владелец (обычно NodeID), для отмены
	name     string
	fn       Job
	interval uint64 // >0 у повторяющейся задачи
	index    int    // индекс в куче
	dead     bool
}

// waitQueue реализует heap.Interface: min-heap по (tick, seq).
type waitQueue []*entry

func (q waitQueue) Len() int { return len(q) }

func (q waitQueue) Less(i, j int) bool {
	if q[i].tick != q[j].tick {
		return q[i].tick < q[j].tick
	}
	return q[i].seq < q[j].seq
}

func (q waitQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *waitQueue) Push(x interface{}) {
	e := x.(*entry)
	e.index = len(*q)
	*q = append(*q, e)
}

func (q *waitQueue) Pop() interface{} {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*q = old[:n-1]
	return e
}

// Scheduler: очередь ожидания с монотонным счётчиком тиков. Не
// потокобезопасен: вызывается только из цикла.
type Scheduler struct {
	now     uint64
	seq     uint64
	queue   waitQueue
	current *entry // выполняемая сейчас задача
}

// NewScheduler создаёт планировщик на тике 0.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// NewSchedulerAt создаёт пустой планировщик, продолжающий счёт с тика start,
// например после восстановления из снимка.
func NewSchedulerAt(start uint64) *Scheduler {
	return &Scheduler{now: start}
}

// Now: текущий тик.
func (s *Scheduler) Now() uint64 { return s.now }

// Pending: число ожидающих задач.
func (s *Scheduler) Pending() int {
	n := 0
	for _, e := range s.queue {
		if !e.dead {
			n++
		}
	}
	return n
}

func (s *Scheduler) push(e *entry) {
	// Внутри прохода всё новое откладывается минимум на следующий тик.
	if e.tick <= s.now {
		e.tick = s.now + 1
	}
	s.seq++
	e.seq = s.seq
	heap.Push(&s.queue, e)
}

// At ставит fn на тик tick. Прошедшие тики сдвигаются на следующий.
func (s *Scheduler) At(tick uint64, owner uint64, name string, fn Job) {
	s.push(&entry{tick: tick, owner: owner, name: name, fn: fn})
}

// After ставит fn через delay тиков от текущего.
func (s *Scheduler) After(delay uint64, owner uint64, name string, fn Job) {
	s.At(s.now+delay, owner, name, fn)
}

// Every выполняет fn каждые interval тиков, начиная со следующего кратного.
func (s *Scheduler) Every(interval uint64, owner uint64, name string, fn Job) {
	if interval == 0 {
		interval = 1
	}
	s.push(&entry{tick: s.now + interval, owner: owner, name: name, fn: fn, interval: interval})
}

// Cancel снимает задачи владельца. Пустое name: все задачи владельца.
// Возвращает число снятых задач.
func (s *Scheduler) Cancel(owner uint64, name string) int {
	match := func(e *entry) bool {
		return e != nil && !e.dead && e.owner == owner && (name == "" || e.name == name)
	}
	n := 0
	for _, e := range s.queue {
		if match(e) {
			e.dead = true
			n++
		}
	}
	if match(s.current) && s.current.interval > 0 {
		s.current.dead = true
		n++
	}
	return n
}

// Advance сдвигает время на один тик и выполняет всё, что к нему созрело,
// в порядке (tick, seq). Возвращает число выполненных задач.
func (s *Scheduler) Advance() int {
	s.now++
	defer func() { s.current = nil }()

	ran := 0
	for s.queue.Len() > 0 && s.queue[0].tick <= s.now {
		e := heap.Pop(&s.queue).(*entry)
		if e.dead {
			continue
		}
		s.current = e
		e.fn(s.now)
		ran++
		if e.interval > 0 && !e.dead {
			e.tick = s.now + e.interval
			s.seq++
			e.seq = s.seq
			heap.Push(&s.queue, e)
		}
	}
	return ran
}
