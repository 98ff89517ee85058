// Package result provides the uniform outcome type every asynchronous
// operation in gomovie resolves to. A pipeline delivers exactly one Loading
// followed by exactly one terminal Success or Error on its channel, then
// closes it.
package result

// Status tags the active variant of a Result.
type Status int

const (
	StatusLoading Status = iota + 1
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// Result is a tagged union of {Loading, Success(data), Error(message)}.
// Exactly one variant is active; Success always carries a payload and Error
// always carries a non-empty human-readable message.
type Result[T any] struct {
	Status  Status
	Data    T
	Message string
}

// Loading returns the initial emission of a pipeline.
func Loading[T any]() Result[T] {
	return Result[T]{Status: StatusLoading}
}

// Success returns a terminal Result carrying data.
func Success[T any](data T) Result[T] {
	return Result[T]{Status: StatusSuccess, Data: data}
}

// Error returns a terminal Result carrying a user-facing message. An empty
// message is replaced with a generic one so consumers can always render it.
func Error[T any](message string) Result[T] {
	if message == "" {
		message = "unexpected error"
	}
	return Result[T]{Status: StatusError, Message: message}
}

// IsLoading reports whether r is the Loading variant.
func (r Result[T]) IsLoading() bool { return r.Status == StatusLoading }

// IsSuccess reports whether r is the Success variant.
func (r Result[T]) IsSuccess() bool { return r.Status == StatusSuccess }

// IsError reports whether r is the Error variant.
func (r Result[T]) IsError() bool { return r.Status == StatusError }

// IsTerminal reports whether r ends its pipeline invocation.
func (r Result[T]) IsTerminal() bool {
	return r.Status == StatusSuccess || r.Status == StatusError
}

// Map converts the payload type of a Result, preserving status and message.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	switch r.Status {
	case StatusSuccess:
		return Success(fn(r.Data))
	case StatusError:
		return Error[U](r.Message)
	default:
		return Loading[U]()
	}
}
