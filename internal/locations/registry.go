// Package locations SPDX-License-Identifier: Apache-2.0
//
// Package locations builds and validates the location registry an FCMC
// program needs before it can run: every name mentioned by a Pop or
// Push, classified once as a stack or a channel by its spelling.
package locations

import (
	"fmt"

	"calculi/internal/fcmcterm"
)

// Registry records every location name an FCMC program references,
// split by the classification fixed by its leading character.
type Registry struct {
	stacks   map[string]bool
	channels map[string]bool
}

// Scan builds a Registry from t's pre-execution location scan.
func Scan(t fcmcterm.Term) *Registry {
	r := &Registry{stacks: make(map[string]bool), channels: make(map[string]bool)}
	for _, loc := range fcmcterm.LocationScan(t) {
		if fcmcterm.IsChannel(loc) {
			r.channels[loc] = true
		} else {
			r.stacks[loc] = true
		}
	}
	return r
}

// IsChannel reports whether loc was seen and classified as a channel.
func (r *Registry) IsChannel(loc string) bool {
	return r.channels[loc]
}

// IsStack reports whether loc was seen and classified as a stack.
func (r *Registry) IsStack(loc string) bool {
	return r.stacks[loc]
}

// Known reports whether loc was seen at all by the scan.
func (r *Registry) Known(loc string) bool {
	return r.stacks[loc] || r.channels[loc]
}

// Names returns every known location name, stacks first then channels;
// within each group the order follows Go map iteration and can differ
// from one call to the next.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.stacks)+len(r.channels))
	for name := range r.stacks {
		out = append(out, name)
	}
	for name := range r.channels {
		out = append(out, name)
	}
	return out
}

// Validate walks t a second time and reports an error on the first
// Pop/Push whose location the registry does not know about. This should
// be unreachable for a registry built from the same term's own scan; it
// exists to catch a registry built from one term being reused against a
// different one.
func (r *Registry) Validate(t fcmcterm.Term) error {
	var walk func(fcmcterm.Term) error
	walk = func(t fcmcterm.Term) error {
		switch n := t.(type) {
		case fcmcterm.Skip, fcmcterm.Variable:
			return nil
		case fcmcterm.Pop:
			if !r.Known(n.Location) {
				return fmt.Errorf("unknown_location: %s", n.Location)
			}
			return walk(n.Next)
		case fcmcterm.Push:
			if !r.Known(n.Location) {
				return fmt.Errorf("unknown_location: %s", n.Location)
			}
			if err := walk(n.Pushed); err != nil {
				return err
			}
			return walk(n.Next)
		case fcmcterm.Seq:
			if err := walk(n.First); err != nil {
				return err
			}
			return walk(n.Next)
		case fcmcterm.Fork:
			if err := walk(n.Forked); err != nil {
				return err
			}
			return walk(n.Cont)
		}
		return nil
	}
	return walk(t)
}
