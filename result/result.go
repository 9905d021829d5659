/*
Package result implements a generic result type for computations that may fail.

A Result is either Ok(value) or Err(error). Clients inspect a result with
pattern matching:

	switch m := r.Match(); m {
	case m.Ok(&v):
		...
	case m.Err(&err):
		...
	}

or unwrap it into Go's usual two-value form with Get.
*/
package result

/*
{-| A `Result` is the result of a computation that may fail. This is a great
way to manage errors in Elm.

# Type and Constructors
@docs Result

# Mapping
@docs map

# Chaining
@docs andThen

# Handling Errors
@docs withDefault, mapError
-}
*/

import "fmt"

// Result is the outcome of a computation that may fail.
type Result[T any] interface {
	Match() Matcher[T]
	Get() (T, error)
	WithDefault(T) T
	Unwrap() T
	IsOk() bool
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps an error. Err panics if err is nil.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic("result: Err() called with nil error")
	}
	return result[T]{err: err}
}

// Of wraps Go's two-value return convention into a Result.
func Of[T any](x T, err error) Result[T] {
	if err != nil {
		return result[T]{err: err}
	}
	return result[T]{value: x}
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

func (r result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r result[T]) IsOk() bool {
	return r.err == nil
}

func (r result[T]) WithDefault(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// Unwrap returns the value of an Ok result and panics for Err results.
func (r result[T]) Unwrap() T {
	if r.err != nil {
		panic(fmt.Sprintf("result: unwrap of error result: %v", r.err))
	}
	return r.value
}

// Map applies f to the value of an Ok result. Err results pass through.
func Map[T, S any](f func(T) S, r Result[T]) Result[S] {
	v, err := r.Get()
	if err != nil {
		return result[S]{err: err}
	}
	return Ok(f(v))
}

// AndThen chains a computation which may fail on the value of an Ok result.
func AndThen[T, S any](f func(T) Result[S], r Result[T]) Result[S] {
	v, err := r.Get()
	if err != nil {
		return result[S]{err: err}
	}
	return f(v)
}

// MapError transforms the error of an Err result. Ok results pass through.
func MapError[T any](f func(error) error, r Result[T]) Result[T] {
	v, err := r.Get()
	if err != nil {
		return Err[T](f(err))
	}
	return Ok(v)
}

// --- Matching --------------------------------------------------------------

// Matcher is used for pattern matching a result. Its methods return nil
// if the result is not of the variant asked for.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		if v != nil {
			*v = rm.r.value
		}
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		if err != nil {
			*err = rm.r.err
		}
		return rm
	}
	return nil
}
