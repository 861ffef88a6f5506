package solo

import (
	"github.com/zeebo/errs"

	"github.com/ib-77/ex/pkg/ex"
)

func Succeed[T any](input T) ex.Result[T] {
	return ex.Success(input)
}

func Fail[T any](err error) ex.Result[T] {
	return ex.Fail[T](err)
}

// Map applies onSuccess to a successful value. A failure passes through, a
// panic in onSuccess becomes a failure.
func Map[In, Out any](input ex.Result[In], onSuccess func(r In) Out) ex.Result[Out] {
	if input.IsFailure() {
		return ex.FailFrom[In, Out](input)
	}
	return ex.OfWith(input.Value(), onSuccess)
}

// Bind switches a successful value onto another Result-producing function and
// returns its result as is.
func Bind[In, Out any](input ex.Result[In], onSuccess func(r In) ex.Result[Out]) ex.Result[Out] {
	if input.IsFailure() {
		return ex.FailFrom[In, Out](input)
	}
	return ex.OfResult(func() ex.Result[Out] { return onSuccess(input.Value()) })
}

func Try[In, Out any](input ex.Result[In], onTryExecute func(r In) Out) ex.Result[Out] {
	return Map(input, onTryExecute)
}

// TryValue lifts a bare value into a Result by running onTryExecute under
// capture.
func TryValue[In, Out any](input In, onTryExecute func(r In) Out) ex.Result[Out] {
	return ex.OfWith(input, onTryExecute)
}

// TryErr calls a function returning (Out, error) and converts the error to a
// failure.
func TryErr[In, Out any](input ex.Result[In], onTryExecute func(r In) (Out, error)) ex.Result[Out] {
	if input.IsFailure() {
		return ex.FailFrom[In, Out](input)
	}
	return ex.OfErrWith(input.Value(), onTryExecute)
}

func TryBind[In, Out any](input ex.Result[In], onSuccess func(r In) ex.Result[Out]) ex.Result[Out] {
	return Bind(input, onSuccess)
}

// TryBool runs probe for its effect and reports Success(true) if it completed.
func TryBool[T any](input ex.Result[T], probe func(r T)) ex.Result[bool] {
	if input.IsFailure() {
		return ex.FailFrom[T, bool](input)
	}
	return TryBoolValue(input.Value(), probe)
}

func TryBoolValue[T any](input T, probe func(r T)) ex.Result[bool] {
	return ex.Do(func() { probe(input) })
}

// Apply refines a successful value with a function of the same type. If
// refine panics the original input is returned unchanged: a refinement step
// cannot invalidate an already valid value. Compare Bind, where the panic
// becomes the result.
func Apply[T any](input ex.Result[T], refine func(r T) ex.Result[T]) (res ex.Result[T]) {
	if input.IsFailure() {
		return input
	}

	defer func() {
		if p := recover(); p != nil {
			res = input
		}
	}()

	return refine(input.Value())
}

// ApplyWith is Apply with an extra argument passed ahead of the value.
func ApplyWith[A, T any](input ex.Result[T], arg A, refine func(a A, r T) ex.Result[T]) ex.Result[T] {
	return Apply(input, func(r T) ex.Result[T] { return refine(arg, r) })
}

// ApplyDo runs sideEffect on a successful value and re-wraps the value. Unlike
// Apply, a panic in sideEffect becomes a failure.
func ApplyDo[T any](input ex.Result[T], sideEffect func(r T)) ex.Result[T] {
	return Map(input, func(r T) T {
		sideEffect(r)
		return r
	})
}

// Match invokes exactly one handler. When the handler for the active branch is
// nil the zero value of Out is returned.
func Match[In, Out any](input ex.Result[In],
	onSuccess func(r In) Out,
	onError func(err error) Out) Out {

	if input.IsSuccess() && onSuccess != nil {
		return onSuccess(input.Value())
	}

	if input.IsFailure() && onError != nil {
		return onError(input.Err())
	}

	var zero Out
	return zero
}

// MatchDo is the effect-only form of Match. A nil handler does nothing.
func MatchDo[T any](input ex.Result[T],
	onSuccess func(r T),
	onError func(err error)) {

	if input.IsSuccess() {
		if onSuccess != nil {
			onSuccess(input.Value())
		}
	} else if onError != nil {
		onError(input.Err())
	}
}

func GetOrElse[T any](input ex.Result[T], def T) T {
	return input.GetOrElse(def)
}

// IsTrue reports whether condition holds for a successful value. Failures and
// panics in condition report false.
func IsTrue[T any](input ex.Result[T], condition func(r T) bool) bool {
	if input.IsFailure() {
		return false
	}
	return ex.OfWith(input.Value(), condition).GetOrElse(false)
}

func Validate[T any](input T, validate func(in T) (isValid bool, errMsg string)) ex.Result[T] {
	return AndValidate(Succeed(input), validate)
}

func AndValidate[T any](input ex.Result[T], validate func(in T) (valid bool, errMsg string)) ex.Result[T] {
	if input.IsFailure() {
		return input
	}

	return ex.OfResult(func() ex.Result[T] {
		if isValid, errMsg := validate(input.Value()); !isValid {
			return ex.Fail[T](errs.New("%s", errMsg))
		}
		return input
	})
}

// Tee runs onSuccess for its effect and returns input unchanged. A panic in
// onSuccess is discarded.
func Tee[T any](input ex.Result[T], onSuccess func(r T)) ex.Result[T] {
	if input.IsSuccess() {
		ex.Do(func() { onSuccess(input.Value()) })
	}
	return input
}

func FailOnError[T any](input ex.Result[T], maybeErr func(in T) error) ex.Result[T] {
	if input.IsFailure() {
		return input
	}

	return ex.OfResult(func() ex.Result[T] {
		if err := maybeErr(input.Value()); err != nil {
			return ex.Fail[T](err)
		}
		return input
	})
}
