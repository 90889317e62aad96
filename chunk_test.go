package jtkparallel

import "testing"

// TestMidpointInvariants checks the three properties the splitter must
// hold for recursion to terminate and stay balanced: the left half is
// never empty, the split point stays aligned to step, and the left half
// is never smaller than the right half.
func TestMidpointInvariants(t *testing.T) {
	for _, step := range []int{1, 2, 3, 5, 11} {
		for begin := 0; begin < 50; begin += 7 {
			for length := step + 1; length < 2000; length += 13 {
				end := begin + length*step
				m := midpoint(begin, end, step)
				if m <= begin || m > end {
					t.Fatalf("step=%d begin=%d end=%d: midpoint %d out of (begin,end]", step, begin, end, m)
				}
				if (m-begin)%step != 0 {
					t.Fatalf("step=%d begin=%d end=%d: midpoint %d not step-aligned", step, begin, end, m)
				}
				left, right := m-begin, end-m
				if left < right {
					t.Fatalf("step=%d begin=%d end=%d: left half %d smaller than right half %d", step, begin, end, left, right)
				}
			}
		}
	}
}

func TestEffectiveChunkExplicit(t *testing.T) {
	if got := effectiveChunk(0, 100, 1, 5); got != 5 {
		t.Fatalf("effectiveChunk with explicit chunk = %d, want 5", got)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for chunk<=0")
		}
	}()
	effectiveChunk(0, 100, 1, 0)
}

func TestSplitChunk(t *testing.T) {
	cases := []struct{ in, want int }{
		{-5, 1},
		{0, 1},
		{1, 1},
		{42, 42},
	}
	for _, c := range cases {
		if got := splitChunk(c.in); got != c.want {
			t.Errorf("splitChunk(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
