package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"crmviewer/domain"
	"crmviewer/interfaces"
)

var errNoCause = errors.New("request failed without a cause")

type sendResult struct {
	response domain.Response
	err      error
}

// bridgeCallback resolves a pending Send exactly once, whichever callback fires first.
type bridgeCallback struct {
	once    sync.Once
	results chan<- sendResult
}

func (b *bridgeCallback) OnSuccess(_ domain.Query, response domain.Response) {
	b.resolve(sendResult{response: response})
}

func (b *bridgeCallback) OnError(err error) {
	if err == nil {
		err = errNoCause
	}
	b.resolve(sendResult{err: err})
}

func (b *bridgeCallback) resolve(r sendResult) {
	b.once.Do(func() {
		b.results <- r
	})
}

// Send issues query through client and waits for its single outcome.
//
// Returns: (response, nil) for a 2xx answer; no_session when client is nil;
// transport_error when the request failed, ctx ended first, or the backend
// answered with a non-2xx status (the response is returned alongside). No retries.
func Send(ctx context.Context, client interfaces.RestClient, query domain.Query) (domain.Response, error) {
	if client == nil {
		return domain.Response{}, NewNoSessionError()
	}

	results := make(chan sendResult, 1)
	client.SendAsync(ctx, query, &bridgeCallback{results: results})

	select {
	case r := <-results:
		if r.err != nil {
			return domain.Response{}, NewTransportError(r.err.Error(), fmt.Errorf("%s %s: %w", query.Method, query.Path, r.err))
		}
		if !r.response.Success {
			detail := r.response.Detail
			if detail == "" {
				detail = fmt.Sprintf("request failed with status %d", r.response.StatusCode)
			}
			return r.response, NewTransportError(detail, nil)
		}
		return r.response, nil
	case <-ctx.Done():
		return domain.Response{}, NewTransportError("request cancelled", ctx.Err())
	}
}
