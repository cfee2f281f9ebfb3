package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"crmviewer/domain"
	"crmviewer/interfaces"
	"crmviewer/interfaces/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testQuery = domain.NewGetQuery("/services/data/v61.0/sobjects/")

func TestSend(t *testing.T) {
	tests := []struct {
		name         string
		sendAsync    func(ctx context.Context, query domain.Query, callback interfaces.AsyncRequestCallback)
		expectedResp domain.Response
		expectedCode string
		expectedMsg  string
	}{
		{
			name: "success",
			sendAsync: func(ctx context.Context, query domain.Query, callback interfaces.AsyncRequestCallback) {
				go callback.OnSuccess(query, domain.Response{StatusCode: http.StatusOK, Success: true, Payload: []byte(`{}`)})
			},
			expectedResp: domain.Response{StatusCode: http.StatusOK, Success: true, Payload: []byte(`{}`)},
		},
		{
			name: "synchronous callback",
			sendAsync: func(ctx context.Context, query domain.Query, callback interfaces.AsyncRequestCallback) {
				callback.OnSuccess(query, domain.Response{StatusCode: http.StatusOK, Success: true})
			},
			expectedResp: domain.Response{StatusCode: http.StatusOK, Success: true},
		},
		{
			name: "network error",
			sendAsync: func(ctx context.Context, query domain.Query, callback interfaces.AsyncRequestCallback) {
				go callback.OnError(errors.New("connection refused"))
			},
			expectedCode: ErrTransport,
			expectedMsg:  "connection refused",
		},
		{
			name: "nil error",
			sendAsync: func(ctx context.Context, query domain.Query, callback interfaces.AsyncRequestCallback) {
				go callback.OnError(nil)
			},
			expectedCode: ErrTransport,
			expectedMsg:  errNoCause.Error(),
		},
		{
			name: "non success status",
			sendAsync: func(ctx context.Context, query domain.Query, callback interfaces.AsyncRequestCallback) {
				go callback.OnSuccess(query, domain.Response{StatusCode: http.StatusUnauthorized, Detail: "401 Unauthorized: INVALID_SESSION_ID"})
			},
			expectedResp: domain.Response{StatusCode: http.StatusUnauthorized, Detail: "401 Unauthorized: INVALID_SESSION_ID"},
			expectedCode: ErrTransport,
			expectedMsg:  "401 Unauthorized: INVALID_SESSION_ID",
		},
		{
			name: "non success status without detail",
			sendAsync: func(ctx context.Context, query domain.Query, callback interfaces.AsyncRequestCallback) {
				go callback.OnSuccess(query, domain.Response{StatusCode: http.StatusServiceUnavailable})
			},
			expectedResp: domain.Response{StatusCode: http.StatusServiceUnavailable},
			expectedCode: ErrTransport,
			expectedMsg:  "request failed with status 503",
		},
		{
			name: "double resolution keeps first outcome",
			sendAsync: func(ctx context.Context, query domain.Query, callback interfaces.AsyncRequestCallback) {
				callback.OnSuccess(query, domain.Response{StatusCode: http.StatusOK, Success: true})
				callback.OnError(errors.New("late error"))
				callback.OnSuccess(query, domain.Response{StatusCode: http.StatusTeapot})
			},
			expectedResp: domain.Response{StatusCode: http.StatusOK, Success: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mock.RestClientMock{SendAsyncFunc: tt.sendAsync}

			resp, err := Send(context.Background(), client, testQuery)

			require.Len(t, client.SendAsyncCalls(), 1)
			assert.Equal(t, testQuery, client.SendAsyncCalls()[0].Query)
			assert.Equal(t, tt.expectedResp, resp)
			if tt.expectedCode == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.expectedCode, ToMyErrorCode(err))
			assert.Equal(t, tt.expectedMsg, UserMessage(err))
		})
	}
}

func TestSend_NilClient(t *testing.T) {
	_, err := Send(context.Background(), nil, testQuery)
	require.Error(t, err)
	assert.True(t, IsNoSessionError(err))
}

func TestSend_ContextDone(t *testing.T) {
	client := &mock.RestClientMock{
		SendAsyncFunc: func(ctx context.Context, query domain.Query, callback interfaces.AsyncRequestCallback) {},
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := Send(ctx, client, testQuery)
	require.Error(t, err)
	assert.True(t, IsTransportError(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
