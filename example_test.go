package jtkparallel_test

import (
	"errors"
	"fmt"

	"github.com/exascience/jtkparallel"
)

func ExampleDo() {
	var fib func(int) (int, error)

	fib = func(n int) (result int, err error) {
		if n < 0 {
			err = errors.New("invalid argument")
		} else if n < 2 {
			result = n
		} else {
			var n1, n2 int
			n1, err = fib(n - 1)
			if err != nil {
				return
			}
			n2, err = fib(n - 2)
			result = n1 + n2
		}
		return
	}

	type intErr struct {
		n   int
		err error
	}

	var parallelFib func(int) intErr

	parallelFib = func(n int) (result intErr) {
		if n < 0 {
			result.err = errors.New("invalid argument")
		} else if n < 20 {
			result.n, result.err = fib(n)
		} else {
			var n1, n2 intErr
			jtkparallel.Do(
				func() { n1 = parallelFib(n - 1) },
				func() { n2 = parallelFib(n - 2) },
			)
			result.n = n1.n + n2.n
			if n1.err != nil {
				result.err = n1.err
			} else {
				result.err = n2.err
			}
		}
		return
	}

	if result := parallelFib(-1); result.err != nil {
		fmt.Println(result.err)
	} else {
		fmt.Println(result.n)
	}

	// Output:
	// invalid argument
}

func ExampleLoop() {
	a := []float64{1, 2, 3, 4, 5}
	b := make([]float64, len(a))

	jtkparallel.Loop(len(a), jtkparallel.LoopFunc(func(i int) {
		b[i] = a[i] * a[i]
	}))

	fmt.Println(b)

	// Output:
	// [1 4 9 16 25]
}

func ExampleReduce() {
	a := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	sum := jtkparallel.Reduce[float64](len(a), jtkparallel.ReduceFuncs[float64]{
		ComputeFunc: func(i int) float64 { return a[i] },
		CombineFunc: func(v1, v2 float64) float64 { return v1 + v2 },
	})

	fmt.Println(sum)

	// Output:
	// 55
}

func numDivisors(n int) int {
	return jtkparallel.Reduce[int](n, jtkparallel.ReduceFuncs[int]{
		ComputeFunc: func(i int) int {
			if n%(i+1) == 0 {
				return 1
			}
			return 0
		},
		CombineFunc: func(v1, v2 int) int { return v1 + v2 },
	})
}

func ExampleReduce_numDivisors() {
	fmt.Println(numDivisors(12))

	// Output:
	// 6
}

func ExampleLoopChunked() {
	a := make([]int, 32)

	jtkparallel.LoopChunked(0, len(a), 1, 1, jtkparallel.LoopFunc(func(i int) {
		a[i] = i * i
	}))

	fmt.Println(a[0], a[1], a[len(a)-1])

	// Output:
	// 0 1 961
}
