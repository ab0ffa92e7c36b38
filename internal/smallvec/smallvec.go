// Package smallvec реализует растущий массив с встроенным буфером для
// нескольких элементов. Списки связей узлов обычно содержат 0–3 элемента,
// и для них не нужна отдельная аллокация.
package smallvec

import "iter"

// Inline описывает встроенный буфер: указатель на массив фиксированного
// размера, умеющий отдавать себя как срез. Размер массива: это ёмкость C,
// известная на этапе компиляции.
type Inline[A any, T any] interface {
	*A
	Slice() []T
}

// Inline3: встроенный буфер на 3 элемента (минимально допустимая ёмкость).
type Inline3[T any] [3]T

func (a *Inline3[T]) Slice() []T { return a[:] }

// Inline4: встроенный буфер на 4 элемента.
type Inline4[T any] [4]T

func (a *Inline4[T]) Slice() []T { return a[:] }

// Inline8: встроенный буфер на 8 элементов.
type Inline8[T any] [8]T

func (a *Inline8[T]) Slice() []T { return a[:] }

// Vec: последовательность с встроенным буфером A. Нулевое значение готово
// к работе: Len()==0, Cap()==C.
//
// Пока элементов не больше C, они лежат во встроенном массиве. При переполнении
// элементы переезжают в отдельный буфер, ёмкость которого округляется вверх
// до степени двойки и дальше только удваивается. Ёмкость не уменьшается,
// кроме Take.
//
// Vec нельзя копировать после начала использования в куче: копия разделит
// внешний буфер с оригиналом.
type Vec[T comparable, A any, PA Inline[A, T]] struct {
	inline A
	heap   []T // nil, пока данные во встроенном буфере; len(heap) == cap
	n      int
}

func (v *Vec[T, A, PA]) inlineSlice() []T {
	return PA(&v.inline).Slice()
}

func (v *Vec[T, A, PA]) buf() []T {
	if v.heap != nil {
		return v.heap
	}
	return v.inlineSlice()
}

// Len возвращает число элементов.
func (v *Vec[T, A, PA]) Len() int { return v.n }

// Cap возвращает текущую ёмкость.
func (v *Vec[T, A, PA]) Cap() int { return len(v.buf()) }

// InlineCap возвращает встроенную ёмкость C.
func (v *Vec[T, A, PA]) InlineCap() int { return len(v.inlineSlice()) }

// OnHeap сообщает, вынесены ли данные во внешний буфер.
func (v *Vec[T, A, PA]) OnHeap() bool { return v.heap != nil }

// nextPow2 возвращает наименьшую степень двойки >= n.
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func (v *Vec[T, A, PA]) grow(need int) {
	cur := v.Cap()
	if need <= cur {
		return
	}
	newCap := nextPow2(need)
	if v.heap != nil && newCap < cur*2 {
		newCap = cur * 2
	}
	next := make([]T, newCap)
	copy(next, v.buf()[:v.n])
	if v.heap == nil {
		var zero A
		v.inline = zero
	}
	v.heap = next
}

// Append добавляет элемент в конец.
func (v *Vec[T, A, PA]) Append(x T) {
	v.grow(v.n + 1)
	v.buf()[v.n] = x
	v.n++
}

// Insert вставляет элемент в позицию i (0 <= i <= Len): добавление в конец
// и сдвиг хвоста.
func (v *Vec[T, A, PA]) Insert(i int, x T) {
	if i < 0 || i > v.n {
		panic("smallvec: индекс вставки вне диапазона")
	}
	v.Append(x)
	b := v.buf()
	copy(b[i+1:v.n], b[i:v.n-1])
	b[i] = x
}

// Delete удаляет элемент i, сдвигая хвост, и укорачивает массив на один.
func (v *Vec[T, A, PA]) Delete(i int) {
	b := v.buf()[:v.n]
	_ = b[i]
	copy(b[i:], b[i+1:])
	v.Truncate(v.n - 1)
}

// Pop удаляет и возвращает последний элемент.
func (v *Vec[T, A, PA]) Pop() (T, bool) {
	var zero T
	if v.n == 0 {
		return zero, false
	}
	x := v.buf()[v.n-1]
	v.Truncate(v.n - 1)
	return x, true
}

// Truncate укорачивает массив до n элементов. Ёмкость не меняется.
func (v *Vec[T, A, PA]) Truncate(n int) {
	if n < 0 || n > v.n {
		panic("smallvec: длина вне диапазона")
	}
	var zero T
	b := v.buf()
	for i := n; i < v.n; i++ {
		b[i] = zero
	}
	v.n = n
}

// Clear удаляет все элементы, сохраняя ёмкость.
func (v *Vec[T, A, PA]) Clear() { v.Truncate(0) }

// Take забирает содержимое в новый срез и возвращает Vec во встроенный режим.
func (v *Vec[T, A, PA]) Take() []T {
	out := make([]T, v.n)
	copy(out, v.buf()[:v.n])
	var zero A
	v.inline = zero
	v.heap = nil
	v.n = 0
	return out
}

// At возвращает элемент i.
func (v *Vec[T, A, PA]) At(i int) T {
	return v.buf()[:v.n][i]
}

// Set заменяет элемент i.
func (v *Vec[T, A, PA]) Set(i int, x T) {
	v.buf()[:v.n][i] = x
}

// Front возвращает первый элемент.
func (v *Vec[T, A, PA]) Front() (T, bool) {
	var zero T
	if v.n == 0 {
		return zero, false
	}
	return v.buf()[0], true
}

// Back возвращает последний элемент.
func (v *Vec[T, A, PA]) Back() (T, bool) {
	var zero T
	if v.n == 0 {
		return zero, false
	}
	return v.buf()[v.n-1], true
}

// Index возвращает позицию первого вхождения x или -1.
func (v *Vec[T, A, PA]) Index(x T) int {
	for i, y := range v.buf()[:v.n] {
		if y == x {
			return i
		}
	}
	return -1
}

// Contains сообщает, есть ли x среди элементов.
func (v *Vec[T, A, PA]) Contains(x T) bool { return v.Index(x) >= 0 }

// Equal сравнивает содержимое поэлементно; ёмкость не учитывается.
func (v *Vec[T, A, PA]) Equal(o *Vec[T, A, PA]) bool {
	if v.n != o.n {
		return false
	}
	a, b := v.buf()[:v.n], o.buf()[:o.n]
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Slice возвращает элементы без копирования. Срез действителен до
// следующего изменения Vec.
func (v *Vec[T, A, PA]) Slice() []T {
	return v.buf()[:v.n]
}

// All возвращает итератор по элементам.
func (v *Vec[T, A, PA]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.buf()[:v.n] {
			if !yield(i, x) {
				return
			}
		}
	}
}
