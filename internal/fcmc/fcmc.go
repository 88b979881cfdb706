// Package fcmc SPDX-License-Identifier: Apache-2.0
//
// Package fcmc implements the Functional Concurrent Machine Calculus:
// SAM generalized to many named locations shared across goroutine-backed
// threads, with Fork spawning new threads and channel locations
// providing blocking, FIFO, multi-producer/multi-consumer handoff.
package fcmc

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/sasha-s/go-deadlock"
	"github.com/segmentio/ksuid"

	"calculi/internal/env"
	"calculi/internal/errors"
	"calculi/internal/fcmcterm"
	"calculi/internal/locations"
)

// Closure pairs an FCMC term with the environment it runs in.
type Closure struct {
	Term fcmcterm.Term
	Env  env.Env[Closure]
}

// Logger receives trace lines for thread lifecycle events. Tests
// typically pass nil; the CLI wires this to a small stderr writer.
type Logger interface {
	Printf(format string, args ...any)
}

type stackLoc struct {
	mu    deadlock.Mutex
	items []Closure
}

// channelLoc is an unbounded, blocking, multi-producer/multi-consumer
// FIFO queue. It is shared by reference across every thread that forks
// from a common ancestor, per the calculus's "channels are shared,
// stacks are not" rule.
type channelLoc struct {
	mu    deadlock.Mutex
	cond  *sync.Cond
	items []Closure
}

// sharedState is the part of memory that survives Fork unchanged:
// the channel dictionary and the live/blocked thread counters used for
// cooperative deadlock detection.
type sharedState struct {
	channels map[string]*channelLoc
	live     int32
	blocked  int32
}

// Memory is per-thread stacks plus a shared reference to channels and
// the thread-counting state. Cloning a Memory for a forked child keeps
// the shared reference but hands the child a fresh, empty stack map.
type Memory struct {
	shared *sharedState
	stacks map[string]*stackLoc
}

// NewMemory pre-allocates one dictionary entry per location found by a
// location scan, classified stack-vs-channel by name alone.
func NewMemory(locations []string) *Memory {
	m := &Memory{
		shared: &sharedState{channels: make(map[string]*channelLoc)},
		stacks: make(map[string]*stackLoc),
	}
	for _, loc := range locations {
		if fcmcterm.IsChannel(loc) {
			ch := &channelLoc{}
			ch.cond = sync.NewCond(&ch.mu)
			m.shared.channels[loc] = ch
		} else {
			m.stacks[loc] = &stackLoc{}
		}
	}
	return m
}

// Clone returns the memory a forked child thread should see: channels
// shared by reference (both endpoints), stacks re-created empty.
func (m *Memory) Clone() *Memory {
	child := &Memory{shared: m.shared, stacks: make(map[string]*stackLoc, len(m.stacks))}
	for loc := range m.stacks {
		child.stacks[loc] = &stackLoc{}
	}
	return child
}

// Push stores c at loc: appended to the stack, or enqueued and signaled
// if loc is a channel.
func (m *Memory) Push(loc string, c Closure) error {
	if fcmcterm.IsChannel(loc) {
		ch, ok := m.shared.channels[loc]
		if !ok {
			return errors.NewUnknownLocation(loc)
		}
		ch.mu.Lock()
		ch.items = append(ch.items, c)
		ch.cond.Signal()
		ch.mu.Unlock()
		return nil
	}
	st, ok := m.stacks[loc]
	if !ok {
		return errors.NewUnknownLocation(loc)
	}
	st.mu.Lock()
	st.items = append(st.items, c)
	st.mu.Unlock()
	return nil
}

// Pop removes and returns a value from loc. Stack pops are LIFO and
// never block: an empty stack is a StackUnderflow. Channel pops are
// FIFO and block until a value is available, unless every other live
// thread is already blocked, in which case Pop reports a Deadlock
// rather than waiting forever.
func (m *Memory) Pop(loc string) (Closure, error) {
	if fcmcterm.IsChannel(loc) {
		return m.popChannel(loc)
	}
	st, ok := m.stacks[loc]
	if !ok {
		return Closure{}, errors.NewUnknownLocation(loc)
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if len(st.items) == 0 {
		return Closure{}, errors.NewStackUnderflow(loc)
	}
	top := st.items[len(st.items)-1]
	st.items = st.items[:len(st.items)-1]
	return top, nil
}

func (m *Memory) popChannel(loc string) (Closure, error) {
	ch, ok := m.shared.channels[loc]
	if !ok {
		return Closure{}, errors.NewUnknownLocation(loc)
	}
	ch.mu.Lock()
	defer ch.mu.Unlock()
	for len(ch.items) == 0 {
		blocked := atomic.AddInt32(&m.shared.blocked, 1)
		if blocked >= atomic.LoadInt32(&m.shared.live) {
			atomic.AddInt32(&m.shared.blocked, -1)
			return Closure{}, errors.NewDeadlock(
				fmt.Sprintf("every live thread is blocked awaiting %s", loc))
		}
		ch.cond.Wait()
		atomic.AddInt32(&m.shared.blocked, -1)
	}
	top := ch.items[0]
	ch.items = ch.items[1:]
	return top, nil
}

// LocationResult is one drained (location, term) pair from a final
// readback.
type LocationResult struct {
	Location string
	Term     fcmcterm.Term
}

// Drain reads back every stack and channel, last-pushed-first for
// stacks and FIFO for channels, with ~out sorted first by convention and
// every other location following in name order. It is destructive: the
// buffers are emptied as they are read.
func (m *Memory) Drain() []LocationResult {
	var out []LocationResult

	var stackLocs []string
	for loc := range m.stacks {
		stackLocs = append(stackLocs, loc)
	}
	sort.Strings(stackLocs)
	for _, loc := range stackLocs {
		st := m.stacks[loc]
		st.mu.Lock()
		for i := len(st.items) - 1; i >= 0; i-- {
			out = append(out, LocationResult{Location: loc, Term: Readback(st.items[i])})
		}
		st.items = nil
		st.mu.Unlock()
	}

	var chanLocs []string
	for loc := range m.shared.channels {
		chanLocs = append(chanLocs, loc)
	}
	sort.Strings(chanLocs)
	for _, loc := range chanLocs {
		ch := m.shared.channels[loc]
		ch.mu.Lock()
		for _, c := range ch.items {
			out = append(out, LocationResult{Location: loc, Term: Readback(c)})
		}
		ch.items = nil
		ch.mu.Unlock()
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Location == "~out" {
			return out[j].Location != "~out"
		}
		return false
	})
	return out
}

// Thread is one FCMC thread's running state: focus closure, the
// continuation stack, and the memory it shares with (some of) its
// relatives.
type Thread struct {
	ID    ksuid.KSUID
	Focus Closure
	K     []Closure
	Mem   *Memory
}

func newThread(focus Closure, mem *Memory) *Thread {
	return &Thread{ID: ksuid.New(), Focus: focus, Mem: mem}
}

// Final reports term == Skip with an empty continuation stack, same
// predicate as SAM.
func (th *Thread) Final() bool {
	_, isSkip := th.Focus.Term.(fcmcterm.Skip)
	return isSkip && len(th.K) == 0
}

// spawner is how Step hands a freshly forked thread back to its caller,
// which decides how to actually run it (as a goroutine, in Run's case).
type spawner func(*Thread)

// Step performs one transition. spawn is invoked synchronously for a
// Fork node; it does not itself need to run the child.
func (th *Thread) Step(spawn spawner) (done bool, err error) {
	if th.Final() {
		return true, nil
	}
	switch t := th.Focus.Term.(type) {
	case fcmcterm.Skip:
		top := th.K[len(th.K)-1]
		th.K = th.K[:len(th.K)-1]
		th.Focus = top
		return false, nil
	case fcmcterm.Variable:
		if th.Focus.Env.Empty() {
			return true, nil
		}
		value, shorter, found := th.Focus.Env.Lookup(t.Name)
		if found {
			th.Focus = value
		} else {
			th.Focus = Closure{Term: t, Env: shorter}
		}
		return false, nil
	case fcmcterm.Pop:
		val, err := th.Mem.Pop(t.Location)
		if err != nil {
			return true, err
		}
		th.Focus = Closure{Term: t.Next, Env: th.Focus.Env.Extend(t.Arg, val)}
		return false, nil
	case fcmcterm.Push:
		pushed := Closure{Term: t.Pushed, Env: th.Focus.Env}
		if err := th.Mem.Push(t.Location, pushed); err != nil {
			return true, err
		}
		th.Focus = Closure{Term: t.Next, Env: th.Focus.Env}
		return false, nil
	case fcmcterm.Seq:
		cont := Closure{Term: t.Next, Env: th.Focus.Env}
		th.K = append(th.K, cont)
		th.Focus = Closure{Term: t.First, Env: th.Focus.Env}
		return false, nil
	case fcmcterm.Fork:
		childMem := th.Mem.Clone()
		child := newThread(Closure{Term: t.Forked, Env: th.Focus.Env}, childMem)
		atomic.AddInt32(&th.Mem.shared.live, 1)
		spawn(child)
		th.Focus = Closure{Term: t.Cont, Env: th.Focus.Env}
		return false, nil
	default:
		return true, nil
	}
}

// Readback turns a closure back into a plain FCMC term by applying its
// environment as a substitution, same shape as sam.Readback generalized
// with location-carrying Pop/Push and Fork.
func Readback(c Closure) fcmcterm.Term {
	switch t := c.Term.(type) {
	case fcmcterm.Skip:
		return t
	case fcmcterm.Variable:
		if c.Env.Empty() {
			return t
		}
		value, shorter, found := c.Env.Lookup(t.Name)
		if found {
			return Readback(value)
		}
		return Readback(Closure{Term: t, Env: shorter})
	case fcmcterm.Pop:
		self := Closure{Term: fcmcterm.Variable{Name: t.Arg}}
		inner := Closure{Term: t.Next, Env: c.Env.Extend(t.Arg, self)}
		return fcmcterm.Pop{Location: t.Location, Arg: t.Arg, Next: Readback(inner)}
	case fcmcterm.Push:
		return fcmcterm.Push{
			Location: t.Location,
			Pushed:   Readback(Closure{Term: t.Pushed, Env: c.Env}),
			Next:     Readback(Closure{Term: t.Next, Env: c.Env}),
		}
	case fcmcterm.Seq:
		return fcmcterm.Seq{
			First: Readback(Closure{Term: t.First, Env: c.Env}),
			Next:  Readback(Closure{Term: t.Next, Env: c.Env}),
		}
	case fcmcterm.Fork:
		return fcmcterm.Fork{
			Forked: Readback(Closure{Term: t.Forked, Env: c.Env}),
			Cont:   Readback(Closure{Term: t.Cont, Env: c.Env}),
		}
	default:
		return fcmcterm.Skip{}
	}
}

// Result is the outcome of a completed Run: every drained location.
type Result struct {
	Locations []LocationResult
}

// Run lifts t into an FCMC start state, scans its locations, and drives
// the main thread to completion, spawning a goroutine per Fork. Forked
// threads are fire-and-forget, exactly like the calculus's own thread
// primitive: Run returns as soon as the main thread is final, without
// joining any still-running child. Locks around every location give the
// memory fence the spec requires before Drain observes child writes
// that had already landed.
func Run(t fcmcterm.Term, logger Logger) (*Result, error) {
	registry := locations.Scan(t)
	mem := NewMemory(registry.Names())
	mem.shared.live = 1

	main := newThread(Closure{Term: t}, mem)
	logf(logger, "thread %s started (main)", main.ID)

	var spawn spawner
	spawn = func(th *Thread) {
		logf(logger, "thread %s forked", th.ID)
		go runThread(th, spawn, logger)
	}

	err := runThread(main, spawn, logger)
	if err != nil {
		return nil, err
	}
	return &Result{Locations: mem.Drain()}, nil
}

func runThread(th *Thread, spawn spawner, logger Logger) error {
	defer atomic.AddInt32(&th.Mem.shared.live, -1)
	for {
		done, err := th.Step(spawn)
		if err != nil {
			logf(logger, "thread %s failed: %v", th.ID, err)
			return err
		}
		if done {
			logf(logger, "thread %s finished", th.ID)
			return nil
		}
	}
}

func logf(logger Logger, format string, args ...any) {
	if logger != nil {
		logger.Printf(format, args...)
	}
}
