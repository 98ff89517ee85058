// Package repository implements the request pipelines behind every gomovie
// operation. Each invocation follows the same sequence: emit Loading, attach
// the stored bearer credential, issue the call, classify the outcome, emit
// exactly one terminal Result and close the channel. The classification is
// centralized here so every operation resolves failures through the same
// branches with the same fallback ordering: structured error body first,
// resource-specific generic message second.
package repository

import (
	"context"

	"github.com/goccy/go-json"

	"github.com/patrickmoura/gomovie/internal/api"
	"github.com/patrickmoura/gomovie/internal/models"
	"github.com/patrickmoura/gomovie/internal/result"
	"github.com/patrickmoura/gomovie/internal/session"
	"github.com/patrickmoura/gomovie/internal/util"
)

// Unit is the payload of operations whose success carries no data.
type Unit = struct{}

// base wires the collaborators shared by the backend-facing repositories.
type base struct {
	backend *api.BackendClient
	store   *session.Store
}

// bearer reads the current access token as the first value of the store's
// token observable. A missing token yields an empty bearer that the server
// rejects; there is deliberately no local short-circuit. The subscription
// lives only for the read: it is cancelled as soon as the first value
// arrives, so repeated calls on a long-lived scope do not pile up
// subscribers on the store.
func (b *base) bearer(ctx context.Context) string {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	token, _ := session.First(ctx, b.store.AccessTokens(ctx))
	return token
}

// run executes one pipeline invocation: Loading first, then the terminal
// Result produced by fn. Cancellation drops the pending emission silently.
func run[T any](ctx context.Context, fn func(context.Context) result.Result[T]) <-chan result.Result[T] {
	ch := make(chan result.Result[T], 2)
	go func() {
		defer close(ch)
		if !send(ctx, ch, result.Loading[T]()) {
			return
		}
		terminal := fn(ctx)
		if ctx.Err() != nil {
			return
		}
		send(ctx, ch, terminal)
	}()
	return ch
}

func send[T any](ctx context.Context, ch chan<- result.Result[T], r result.Result[T]) bool {
	select {
	case ch <- r:
		return true
	case <-ctx.Done():
		return false
	}
}

// classify resolves a backend reply into a terminal Result.
//
// Transport failure -> Error(fallback). Non-2xx -> the structured error
// body's message when one parses, else fallback. 2xx with success=false or
// absent data -> the envelope message when present, else fallback. Otherwise
// Success with the envelope payload.
func classify[T any](reply *api.Reply, err error, fallback string) result.Result[T] {
	if err != nil {
		util.Debug("pipeline transport failure", "error", err)
		return result.Error[T](fallback)
	}
	if !reply.OK() {
		return result.Error[T](errorMessage(reply.Body, fallback))
	}

	var envelope models.Envelope[T]
	if err := json.Unmarshal(reply.Body, &envelope); err != nil {
		util.Debug("pipeline envelope parse failure", "error", err)
		return result.Error[T](fallback)
	}
	if !envelope.Success || envelope.Data == nil {
		if envelope.Message != "" {
			return result.Error[T](envelope.Message)
		}
		return result.Error[T](fallback)
	}
	return result.Success(*envelope.Data)
}

// classifyEmpty resolves replies for mutations whose success carries no
// payload: any 2xx is Success, everything else goes through the two-tier
// message fallback.
func classifyEmpty(reply *api.Reply, err error, fallback string) result.Result[Unit] {
	if err != nil {
		util.Debug("pipeline transport failure", "error", err)
		return result.Error[Unit](fallback)
	}
	if !reply.OK() {
		return result.Error[Unit](errorMessage(reply.Body, fallback))
	}
	return result.Success(Unit{})
}

// classifyBool degrades every failure path of an existence check to
// Success(false): the caller cannot usefully distinguish "not present" from
// "could not check", and a hard Error would block unrelated state.
func classifyBool(reply *api.Reply, err error) result.Result[bool] {
	if err != nil || !reply.OK() {
		return result.Success(false)
	}
	var envelope models.Envelope[bool]
	if err := json.Unmarshal(reply.Body, &envelope); err != nil {
		return result.Success(false)
	}
	if !envelope.Success || envelope.Data == nil {
		return result.Success(false)
	}
	return result.Success(*envelope.Data)
}

// errorMessage extracts the structured error body's message, falling back to
// the resource-specific generic message. A raw parse failure never reaches
// the caller.
func errorMessage(body []byte, fallback string) string {
	var parsed models.ErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	return fallback
}

// classifyValue resolves a metadata-provider call, which has no envelope:
// a transport or protocol failure becomes Error(fallback), anything parsed
// is Success.
func classifyValue[T any](value *T, err error, fallback string) result.Result[T] {
	if err != nil {
		util.Debug("metadata call failure", "error", err)
		return result.Error[T](fallback)
	}
	return result.Success(*value)
}
