package composer_test

import (
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	pf "github.com/npillmayer/pointfree"
	"github.com/npillmayer/pointfree/composer"
	"github.com/npillmayer/pointfree/numparse"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	inc    = composer.MustLift(func(n int) int { return n + 1 })
	double = composer.MustLift(func(n int) int { return n * 2 })
	add3   = composer.MustLift(func(a, b, c int) int { return a + b + c })
)

func TestPipeSingleFunction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pointfree.composer")
	defer teardown()
	//
	p, err := composer.Pipe(inc)
	require.NoError(t, err)
	for _, x := range []int{-1, 0, 41} {
		want, _ := inc(x)
		got, err := p(x)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestPipeAndComposeOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pointfree.composer")
	defer teardown()
	//
	p := composer.MustPipe(inc, double)
	c := composer.MustCompose(inc, double)
	v, err := p(5)
	require.NoError(t, err)
	assert.Equal(t, 12, v, "pipe(inc, double)(5) = double(inc(5))")
	v, err = c(5)
	require.NoError(t, err)
	assert.Equal(t, 11, v, "compose(inc, double)(5) = inc(double(5))")
}

func TestEmptyCompositionIsArityError(t *testing.T) {
	_, err := composer.Pipe()
	assert.ErrorIs(t, err, pf.ErrArity)
	_, err = composer.Compose()
	var arityErr *pf.ArityError
	require.ErrorAs(t, err, &arityErr)
	assert.Equal(t, "compose", arityErr.Op)
	_, err = composer.NewPipeline().Run(1)
	assert.ErrorIs(t, err, pf.ErrArity)
	assert.Panics(t, func() { composer.MustPipe() })
}

func TestFirstStageReceivesAllArguments(t *testing.T) {
	p := composer.MustPipe(add3, double)
	v, err := p(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 12, v)
	c := composer.MustCompose(double, add3)
	v, err = c(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 12, v)
}

func TestCurryGroupings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pointfree.composer")
	defer teardown()
	//
	add, err := composer.Curry(add3, composer.Arity(3), composer.Name("add3"))
	require.NoError(t, err)
	all, err := add(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, all)

	groupings := [][][]any{
		{{1}, {2}, {3}},
		{{1}, {2, 3}},
		{{1, 2}, {3}},
		{{}, {1, 2}, {}, {3}},
	}
	for _, grouping := range groupings {
		var f any = add
		var err error
		for _, args := range grouping {
			f, err = composer.Call(f, args...)
			require.NoError(t, err)
		}
		assert.Equal(t, 6, f, "grouping %v", grouping)
	}
}

func TestCurriedPartialsAreIndependent(t *testing.T) {
	add, _ := composer.Curry(add3, composer.Arity(3))
	one, _ := add(1)
	oneTwo, _ := composer.Call(one, 2)
	oneTen, _ := composer.Call(one, 10)
	a, _ := composer.Call(oneTwo, 3)
	b, _ := composer.Call(oneTen, 3)
	assert.Equal(t, 6, a)
	assert.Equal(t, 14, b)
}

func TestCurryRequiresArity(t *testing.T) {
	_, err := composer.Curry(add3)
	assert.ErrorIs(t, err, pf.ErrArity)
	_, err = composer.Curry(add3, composer.Arity(-2))
	assert.ErrorIs(t, err, pf.ErrArity)
	_, err = composer.Curry(nil, composer.Arity(1))
	assert.ErrorIs(t, err, pf.ErrTypeMismatch)
}

func TestCurryFunc(t *testing.T) {
	defaultTo, err := composer.CurryFunc(func(def, val string) string {
		if val == "" {
			return def
		}
		return val
	})
	require.NoError(t, err)
	orGuest, err := defaultTo("guest")
	require.NoError(t, err)
	v, err := composer.Call(orGuest, "")
	require.NoError(t, err)
	assert.Equal(t, "guest", v)
	v, err = composer.Call(orGuest, "Jane")
	require.NoError(t, err)
	assert.Equal(t, "Jane", v)
}

func TestCurryFuncVariadic(t *testing.T) {
	sum := func(ns ...int) int {
		s := 0
		for _, n := range ns {
			s += n
		}
		return s
	}
	_, err := composer.CurryFunc(sum)
	assert.ErrorIs(t, err, pf.ErrArity)
	c, err := composer.CurryFunc(sum, composer.Arity(2))
	require.NoError(t, err)
	partial, _ := c(4)
	v, err := composer.Call(partial, 5)
	require.NoError(t, err)
	assert.Equal(t, 9, v)
	_, err = composer.CurryFunc("not a function")
	assert.ErrorIs(t, err, pf.ErrTypeMismatch)
}

func TestCurryZeroArity(t *testing.T) {
	called := 0
	f, err := composer.Curry(func(args ...any) (any, error) {
		called++
		return len(args), nil
	}, composer.Arity(0))
	require.NoError(t, err)
	v, err := f()
	require.NoError(t, err)
	assert.Equal(t, 0, v)
	assert.Equal(t, 1, called)
}

func TestUnaryParseInt(t *testing.T) {
	xs := []any{"1", "12", "123"}
	plain, err := composer.MapIndexed(numparse.Fn, xs)
	require.NoError(t, err)
	assert.Equal(t, 1.0, plain[0])
	assert.True(t, math.IsNaN(plain[1].(float64)), "radix 1 is invalid")
	assert.Equal(t, 1.0, plain[2], "radix 2 parses the prefix \"1\" only")

	unary, err := composer.MapIndexed(composer.Unary(numparse.Fn), xs)
	require.NoError(t, err)
	assert.Equal(t, []any{1.0, 12.0, 123.0}, unary)
}

func TestUnaryWithoutArguments(t *testing.T) {
	count := composer.Unary(func(args ...any) (any, error) { return len(args), nil })
	v, _ := count()
	assert.Equal(t, 0, v)
	v, _ = count("a", "b", "c")
	assert.Equal(t, 1, v)
}

func TestLiftTypeMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pointfree.composer")
	defer teardown()
	//
	p := composer.MustPipe(composer.MustLift(strings.ToUpper), inc)
	_, err := p("bobo")
	var mismatch *pf.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 0, mismatch.Index)
	assert.Equal(t, "int", mismatch.Want)
	assert.Equal(t, "string", mismatch.Got)

	_, err = inc()
	assert.ErrorIs(t, err, pf.ErrArity)
	_, err = inc(1, 2)
	assert.ErrorIs(t, err, pf.ErrArity)
	_, err = inc(nil)
	assert.ErrorIs(t, err, pf.ErrTypeMismatch)
}

func TestLiftShapes(t *testing.T) {
	_, err := composer.Lift(func() (int, int) { return 1, 2 })
	assert.ErrorIs(t, err, pf.ErrArity)
	_, err = composer.Lift(42)
	assert.ErrorIs(t, err, pf.ErrTypeMismatch)
	var nilFunc func(int) int
	_, err = composer.Lift(nilFunc)
	assert.ErrorIs(t, err, pf.ErrTypeMismatch)

	var seen []string
	record := composer.MustLift(func(s string) { seen = append(seen, s) })
	v, err := record("x")
	require.NoError(t, err)
	assert.Nil(t, v)
	assert.Equal(t, []string{"x"}, seen)

	length := composer.MustLift(func(xs []int) int { return len(xs) })
	v, err = length(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	join := composer.MustLift(func(sep string, parts ...string) string { return strings.Join(parts, sep) })
	v, err = join("-", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "a-b", v)
}

func TestErrorsPropagateUnchanged(t *testing.T) {
	boom := errors.New("boom")
	calledAfter := false
	fail := composer.MustLift(func(n int) (int, error) { return 0, boom })
	after := composer.Fn(func(args ...any) (any, error) {
		calledAfter = true
		return args[0], nil
	})
	_, err := composer.MustPipe(inc, fail, after)(1)
	assert.Same(t, boom, err)
	assert.False(t, calledAfter, "stages after a failing stage must not run")
	r := composer.NewPipeline(composer.Step("fail", fail)).Try(1)
	assert.False(t, r.IsOk())
}

func TestPipelineIsImmutable(t *testing.T) {
	base := composer.NewPipeline(composer.Step("inc", inc))
	longer := base.Append(composer.Step("double", double))
	wrapped := longer.Prepend(composer.Step("double", double))
	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, longer.Len())
	assert.Equal(t, 3, wrapped.Len())
	v, _ := base.Run(3)
	assert.Equal(t, 4, v)
	v, _ = longer.Run(3)
	assert.Equal(t, 8, v)
	v, _ = wrapped.Run(3)
	assert.Equal(t, 14, v)

	r := longer.Try(1)
	n, err := r.Unwrap()
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestPipelineString(t *testing.T) {
	p := composer.NewPipeline(composer.Step("sortBy", composer.Identity), composer.Step("last", composer.Identity))
	s := p.String()
	t.Logf("pipeline =\n%s", s)
	assert.Contains(t, s, "pipeline (2 stages)")
	assert.Contains(t, s, "1: sortBy")
	assert.Contains(t, s, "2: last")
}

func TestPipelineNilStage(t *testing.T) {
	_, err := composer.NewPipeline(composer.Step("nil", nil)).Func()
	assert.ErrorIs(t, err, pf.ErrTypeMismatch)
}

func TestTraceIsIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pointfree.composer")
	defer teardown()
	//
	p := composer.MustPipe(inc, composer.Trace("after inc"), double)
	v, err := p(1)
	require.NoError(t, err)
	assert.Equal(t, 4, v)
}

func TestCallNonFunction(t *testing.T) {
	_, err := composer.Call(7, 1)
	assert.ErrorIs(t, err, pf.ErrTypeMismatch)
	v, err := composer.Call(func(s string) int { return len(s) }, "abc")
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestThen(t *testing.T) {
	v, err := inc.Then(double).Call(2)
	require.NoError(t, err)
	assert.Equal(t, 6, v)
}

func TestConcurrentCalls(t *testing.T) {
	p := composer.MustPipe(add3, double, inc)
	var wg sync.WaitGroup
	results := make([]any, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = p(i, i, i)
		}(i)
	}
	wg.Wait()
	for i, r := range results {
		assert.Equal(t, 6*i+1, r)
	}
}
