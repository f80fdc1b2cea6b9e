// Package easing provides easing curves that map linear progress in [0,1]
// to shaped progress in [0,1].
package easing

import (
	"fmt"
	"sort"

	"github.com/chewxy/math32"
)

// Func maps normalized progress to eased progress.
type Func func(t float32) float32

// Curve names accepted by Lookup.
const (
	NameLinear    = "linear"
	NameOutQuad   = "out-quad"
	NameOutExpo   = "out-expo"
	NameInOutQuad = "in-out-quad"
)

var registry = map[string]Func{
	NameLinear:    Linear,
	NameOutQuad:   OutQuad,
	NameOutExpo:   OutExpo,
	NameInOutQuad: InOutQuad,
}

// Linear returns t unchanged.
func Linear(t float32) float32 {
	return t
}

// OutQuad starts fast and decelerates: 1 - (1-t)^2.
func OutQuad(t float32) float32 {
	u := 1 - t
	return 1 - u*u
}

// OutExpo is a sharper out-curve: 1 - 2^(-10t).
// The curve only approaches 1, so t >= 1 is pinned to exactly 1.
func OutExpo(t float32) float32 {
	if t >= 1 {
		return 1
	}
	return 1 - math32.Pow(2, -10*t)
}

// InOutQuad accelerates through the first half and decelerates through the second.
func InOutQuad(t float32) float32 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}

// Lookup returns the curve registered under name.
func Lookup(name string) (Func, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q (want one of %v)", name, Names())
	}
	return fn, nil
}

// Names returns the registered curve names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
