// File: number_test.go
// Title: Unit Tests for Numeric Helpers
// Description: Tests for Abs, Ceil, Floor, Round, Sign, Times and Mod in both
//              method and function form, including the domain errors.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial test implementation

package numx

import (
	"math"
	"sync"
	"testing"

	mdwerror "github.com/msto63/numx/foundation/core/error"
	mdwerrors "github.com/msto63/numx/foundation/core/errors"
)

func TestAbs(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{5, 5},
		{4.2, 4.2},
		{-1.2, 1.2},
		{0, 0},
		{math.Copysign(0, -1), 0},
		{math.Inf(-1), math.Inf(1)},
	}

	for _, tt := range tests {
		if got := Number(tt.input).Abs(); got != Number(tt.want) {
			t.Errorf("Number(%v).Abs() = %v, want %v", tt.input, got, tt.want)
		}
		if got := Abs(tt.input); got != tt.want {
			t.Errorf("Abs(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if math.Signbit(Abs(math.Copysign(0, -1))) {
		t.Error("Abs(-0) should be +0")
	}
}

func TestCeil(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{4.9, 5},
		{4.2, 5},
		{-1.2, -1},
		{3, 3},
		{-3, -3},
		{0.0001, 1},
	}

	for _, tt := range tests {
		if got := Number(tt.input).Ceil(); got != Number(tt.want) {
			t.Errorf("Number(%v).Ceil() = %v, want %v", tt.input, got, tt.want)
		}
		if got := Ceil(tt.input); got != tt.want {
			t.Errorf("Ceil(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFloor(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{4.9, 4},
		{4.2, 4},
		{-1.2, -2},
		{3, 3},
		{-3, -3},
		{-0.0001, -1},
	}

	for _, tt := range tests {
		if got := Number(tt.input).Floor(); got != Number(tt.want) {
			t.Errorf("Number(%v).Floor() = %v, want %v", tt.input, got, tt.want)
		}
		if got := Floor(tt.input); got != tt.want {
			t.Errorf("Floor(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"tie rounds up", 4.5, 5},
		{"below half rounds down", 4.4, 4},
		{"above half rounds up", 4.6, 5},
		{"negative tie rounds toward positive infinity", -4.5, -4},
		{"negative below half", -4.4, -4},
		{"negative above half", -4.6, -5},
		{"integral", 7, 7},
		{"largest double below one half", 0.49999999999999994, 0},
		{"large integral", 1 << 60, 1 << 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Number(tt.input).Round(); got != Number(tt.want) {
				t.Errorf("Number(%v).Round() = %v, want %v", tt.input, got, tt.want)
			}
			if got := Round(tt.input); got != tt.want {
				t.Errorf("Round(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRoundNonFinite(t *testing.T) {
	if got := Round(math.Inf(1)); !math.IsInf(got, 1) {
		t.Errorf("Round(+Inf) = %v, want +Inf", got)
	}
	if got := Round(math.NaN()); !math.IsNaN(got) {
		t.Errorf("Round(NaN) = %v, want NaN", got)
	}
}

func TestSign(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  int
	}{
		{"positive", 5, 1},
		{"negative", -3, -1},
		{"zero", 0, 0},
		{"negative zero", math.Copysign(0, -1), 0},
		{"smallest positive", math.SmallestNonzeroFloat64, 1},
		{"positive infinity", math.Inf(1), 1},
		{"NaN", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Number(tt.input).Sign(); got != tt.want {
				t.Errorf("Number(%v).Sign() = %d, want %d", tt.input, got, tt.want)
			}
			if got := Sign(tt.input); got != tt.want {
				t.Errorf("Sign(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestTimes(t *testing.T) {
	t.Run("returns n", func(t *testing.T) {
		n := Number(5)
		got, err := n.Times(func() {})
		if err != nil {
			t.Fatalf("Times() unexpected error: %v", err)
		}
		if got != n {
			t.Errorf("Times() = %v, want %v", got, n)
		}
	})

	t.Run("called correct amount", func(t *testing.T) {
		n := Number(5)
		count := 0
		n.MustTimes(func() { count++ })
		if Number(count) != n {
			t.Errorf("callback called %d times, want %v", count, n)
		}
	})

	t.Run("zero never calls", func(t *testing.T) {
		called := false
		got, err := Times(0, func() { called = true })
		if err != nil || got != 0 {
			t.Errorf("Times(0) = %v, %v", got, err)
		}
		if called {
			t.Error("Times(0) invoked the callback")
		}
	})

	t.Run("sequential order", func(t *testing.T) {
		var order []int
		active := false
		_, err := Times(4, func() {
			if active {
				t.Error("callback invoked while a previous call was running")
			}
			active = true
			order = append(order, len(order))
			active = false
		})
		if err != nil {
			t.Fatalf("Times() unexpected error: %v", err)
		}
		for i, v := range order {
			if v != i {
				t.Fatalf("order = %v, want ascending", order)
			}
		}
		if len(order) != 4 {
			t.Errorf("len(order) = %d, want 4", len(order))
		}
	})
}

func TestTimesDomainErrors(t *testing.T) {
	tests := []struct {
		name  string
		count float64
		fn    func()
		code  string
	}{
		{"negative", -1, func() {}, mdwerrors.CodeNumxInvalidCount},
		{"fractional", 2.5, func() {}, mdwerrors.CodeNumxInvalidCount},
		{"NaN", math.NaN(), func() {}, mdwerrors.CodeNumxInvalidCount},
		{"infinite", math.Inf(1), func() {}, mdwerrors.CodeNumxInvalidCount},
		{"above MaxCount", MaxCount * 2, func() {}, mdwerrors.CodeNumxInvalidCount},
		{"nil callback", 3, nil, mdwerrors.CodeNumxNilCallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			fn := tt.fn
			if fn != nil {
				fn = func() { calls++ }
			}

			got, err := Times(tt.count, fn)
			if err == nil {
				t.Fatalf("Times(%v) expected error", tt.count)
			}
			if !mdwerror.HasCode(err, mdwerror.Code(tt.code)) {
				t.Errorf("Times(%v) code = %v, want %s", tt.count, mdwerror.GetCode(err), tt.code)
			}
			if calls != 0 {
				t.Errorf("callback invoked %d times on error", calls)
			}
			if !(got == tt.count || (math.IsNaN(got) && math.IsNaN(tt.count))) {
				t.Errorf("Times(%v) returned %v, want receiver unchanged", tt.count, got)
			}
		})
	}
}

func TestMustTimesPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustTimes(-1) expected panic")
		}
	}()
	Number(-1).MustTimes(func() {})
}

func TestMod(t *testing.T) {
	tests := []struct {
		x    float64
		base float64
		want float64
	}{
		{-3, 8, 5},
		{3, 8, 3},
		{8, 8, 0},
		{-8, 8, 0},
		{-16, 8, 0},
		{13, 5, 3},
		{-13, 5, 2},
		{-0.5, 2, 1.5},
		{7.5, 2, 1.5},
		{0, 3, 0},
	}

	for _, tt := range tests {
		got, err := Number(tt.x).Mod(Number(tt.base))
		if err != nil {
			t.Errorf("Number(%v).Mod(%v) unexpected error: %v", tt.x, tt.base, err)
			continue
		}
		if got != Number(tt.want) {
			t.Errorf("Number(%v).Mod(%v) = %v, want %v", tt.x, tt.base, got, tt.want)
		}

		if got, _ := Mod(tt.x, tt.base); got != tt.want {
			t.Errorf("Mod(%v, %v) = %v, want %v", tt.x, tt.base, got, tt.want)
		}
	}
}

func TestModRange(t *testing.T) {
	bases := []float64{1, 3, 8, 0.25, 1e9}
	inputs := []float64{-1e-20, -1e-300, -7.25, -1, 0, 1e-20, 5, 123456.789, -1e15}

	for _, base := range bases {
		for _, x := range inputs {
			r := Number(x).MustMod(Number(base))
			if !(r >= 0 && r < Number(base)) {
				t.Errorf("Mod(%v, %v) = %v, want in [0, %v)", x, base, r, base)
			}
		}
	}
}

func TestModDomainErrors(t *testing.T) {
	bases := []float64{0, -8, math.Inf(1), math.Inf(-1), math.NaN()}

	for _, base := range bases {
		got, err := Mod(5, base)
		if !mdwerror.HasCode(err, mdwerrors.CodeNumxInvalidBase) {
			t.Errorf("Mod(5, %v) error = %v, want %s", base, err, mdwerrors.CodeNumxInvalidBase)
		}
		if got != 0 {
			t.Errorf("Mod(5, %v) = %v, want 0 on error", base, got)
		}
	}

	if got, err := Mod(math.Inf(1), 8); err != nil || !math.IsNaN(got) {
		t.Errorf("Mod(+Inf, 8) = %v, %v; want NaN, nil", got, err)
	}
}

func TestMustModPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustMod(0) expected panic")
		}
	}()
	Number(5).MustMod(0)
}

func TestNumberString(t *testing.T) {
	tests := []struct {
		input Number
		want  string
	}{
		{5, "5"},
		{4.2, "4.2"},
		{-1.2, "-1.2"},
		{1e21, "1e+21"},
	}

	for _, tt := range tests {
		if got := tt.input.String(); got != tt.want {
			t.Errorf("Number(%v).String() = %q, want %q", float64(tt.input), got, tt.want)
		}
	}
	if Number(2.5).Float64() != 2.5 {
		t.Error("Float64() should return the underlying value")
	}
}

func TestConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			count := 0
			Number(i).MustTimes(func() { count++ })
			if count != i {
				t.Errorf("goroutine %d: count = %d", i, count)
			}
			if r := Number(-i).MustMod(8); r < 0 || r >= 8 {
				t.Errorf("goroutine %d: Mod = %v", i, r)
			}
		}(i)
	}
	wg.Wait()
}
