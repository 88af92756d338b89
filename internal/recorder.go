package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

// recorders holds one recording stack per goroutine. The graph itself is
// confined to a single goroutine; this registry is the only structure shared
// between them, so reads from a goroutine other than the recording one
// register nothing.
var recorders sync.Map

type recorderStack struct {
	// currently recording dependency sets, innermost last.
	// A nil frame suspends recording (see Untracked).
	frames []*Dependencies
}

func pushFrame(ds *Dependencies) {
	gid := goid.Get()

	var s *recorderStack
	if v, ok := recorders.Load(gid); ok {
		s = v.(*recorderStack)
	} else {
		s = &recorderStack{}
		recorders.Store(gid, s)
	}

	s.frames = append(s.frames, ds)
}

func popFrame() {
	gid := goid.Get()

	v, ok := recorders.Load(gid)
	if !ok {
		return
	}

	s := v.(*recorderStack)
	s.frames = s.frames[:len(s.frames)-1]

	if len(s.frames) == 0 {
		recorders.Delete(gid)
	}
}

func currentRecording() *Dependencies {
	v, ok := recorders.Load(goid.Get())
	if !ok {
		return nil
	}

	s := v.(*recorderStack)
	if len(s.frames) == 0 {
		return nil
	}

	return s.frames[len(s.frames)-1]
}

// Register adds the producer to the dependency set currently recording on
// this goroutine, if any.
func Register(producer Value) {
	if ds := currentRecording(); ds != nil {
		ds.Touch(producer)
	}
}

// Untracked runs fn with recording suspended, so reads inside it do not
// register dependencies.
func Untracked(fn func() any) any {
	pushFrame(nil)
	defer popFrame()

	return fn()
}
