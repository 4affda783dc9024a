package composer

import (
	"fmt"

	pf "github.com/npillmayer/pointfree"
	"github.com/npillmayer/pointfree/result"
	tp "github.com/xlab/treeprint"
)

// Stage is a named step of a Pipeline.
type Stage struct {
	Name string
	Fn   Fn
}

// Step creates a pipeline stage.
func Step(name string, fn Fn) Stage {
	return Stage{Name: name, Fn: fn}
}

// Pipeline is an ordered sequence of stages, where the output of each stage
// feeds the input of the next. The first stage receives all arguments the
// pipeline is called with, every other stage receives exactly one argument.
//
// Pipelines are immutable: Append and Prepend return new pipelines and leave
// the receiver untouched. The zero value is an empty pipeline.
type Pipeline struct {
	stages []Stage
}

// NewPipeline creates a pipeline from stages, first stage first.
func NewPipeline(stages ...Stage) Pipeline {
	return Pipeline{stages: append([]Stage(nil), stages...)}
}

// Len returns the number of stages.
func (p Pipeline) Len() int {
	return len(p.stages)
}

// Append returns a copy of p with stages added at the end.
func (p Pipeline) Append(stages ...Stage) Pipeline {
	s := make([]Stage, 0, len(p.stages)+len(stages))
	s = append(s, p.stages...)
	return Pipeline{stages: append(s, stages...)}
}

// Prepend returns a copy of p with stages added in front.
func (p Pipeline) Prepend(stages ...Stage) Pipeline {
	s := make([]Stage, 0, len(p.stages)+len(stages))
	s = append(s, stages...)
	return Pipeline{stages: append(s, p.stages...)}
}

// Func returns the pipeline as a single Fn. An empty pipeline results in
// an *pointfree.ArityError.
func (p Pipeline) Func() (Fn, error) {
	return p.compile("pipeline")
}

// Run calls the pipeline with args.
func (p Pipeline) Run(args ...any) (any, error) {
	fn, err := p.Func()
	if err != nil {
		return nil, err
	}
	return fn(args...)
}

// Try calls the pipeline with args and wraps the outcome into a Result.
func (p Pipeline) Try(args ...any) result.Result[any] {
	return result.FromPair(p.Run(args...))
}

// String renders the stages of p as a tree.
func (p Pipeline) String() string {
	printer := tp.New()
	branch := printer.AddBranch(fmt.Sprintf("pipeline (%d stages)", len(p.stages)))
	for i, s := range p.stages {
		branch.AddNode(fmt.Sprintf("%d: %s", i+1, s.Name))
	}
	return printer.String()
}

func (p Pipeline) compile(op string) (Fn, error) {
	if len(p.stages) == 0 {
		return nil, pf.NoFunctions(op)
	}
	for i, s := range p.stages {
		if s.Fn == nil {
			return nil, &pf.TypeMismatchError{Op: op, Index: i, Want: "composer.Fn", Got: "nil"}
		}
	}
	stages := p.stages // p is never modified in place, sharing is safe
	return func(args ...any) (any, error) {
		v, err := stages[0].Fn(args...)
		for i := 1; err == nil && i < len(stages); i++ {
			tracer().Debugf("%s: stage %d (%s) ⇒ %v", op, i, stages[i-1].Name, v)
			v, err = stages[i].Fn(v)
		}
		if err != nil {
			tracer().Debugf("%s: aborted with error: %v", op, err)
			return nil, err
		}
		return v, nil
	}, nil
}

// --- Pipe & Compose --------------------------------------------------------

// Pipe composes fns left to right: Pipe(f1, f2, …, fn)(x) = fn(…f2(f1(x))).
// f1 receives all arguments the result is called with; every downstream
// function is called with exactly one argument, the prior result.
//
// Pipe returns an *pointfree.ArityError if fns is empty.
func Pipe(fns ...Fn) (Fn, error) {
	return stagesOf(fns, false).compile("pipe")
}

// Compose composes fns right to left: Compose(f1, f2, …, fn)(x) = f1(f2(…fn(x))).
// The right-most function receives all arguments.
//
// Compose returns an *pointfree.ArityError if fns is empty.
func Compose(fns ...Fn) (Fn, error) {
	return stagesOf(fns, true).compile("compose")
}

// MustPipe is like Pipe, but panics if fns is empty.
func MustPipe(fns ...Fn) Fn {
	fn, err := Pipe(fns...)
	if err != nil {
		panic(err)
	}
	return fn
}

// MustCompose is like Compose, but panics if fns is empty.
func MustCompose(fns ...Fn) Fn {
	fn, err := Compose(fns...)
	if err != nil {
		panic(err)
	}
	return fn
}

func stagesOf(fns []Fn, reverse bool) Pipeline {
	stages := make([]Stage, len(fns))
	for i, fn := range fns {
		j := i
		if reverse {
			j = len(fns) - 1 - i
		}
		stages[j] = Stage{Name: funcName(fn), Fn: fn}
	}
	return Pipeline{stages: stages}
}
