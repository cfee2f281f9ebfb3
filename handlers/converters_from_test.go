package handlers

import (
	"testing"

	"crmviewer/domain"
	"crmviewer/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSessionRequest(t *testing.T) {
	tests := []struct {
		name          string
		request       SessionRequest
		expected      domain.Session
		expectedError string
	}{
		{
			name: "valid",
			request: SessionRequest{
				InstanceUrl: "https://acme.my.salesforce.com/",
				AccessToken: "00D-token",
				UserId:      strPtr("005xx"),
			},
			expected: domain.Session{
				InstanceURL: "https://acme.my.salesforce.com",
				AccessToken: "00D-token",
				UserID:      "005xx",
			},
		},
		{
			name: "without user id",
			request: SessionRequest{
				InstanceUrl: " https://acme.my.salesforce.com ",
				AccessToken: "00D-token",
			},
			expected: domain.Session{
				InstanceURL: "https://acme.my.salesforce.com",
				AccessToken: "00D-token",
			},
		},
		{
			name:          "empty instance_url",
			request:       SessionRequest{InstanceUrl: "  ", AccessToken: "00D-token"},
			expectedError: "instance_url is required",
		},
		{
			name:          "empty access_token",
			request:       SessionRequest{InstanceUrl: "https://acme.my.salesforce.com"},
			expectedError: "access_token is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fromSessionRequest(tt.request)
			if tt.expectedError != "" {
				require.Error(t, err)
				assert.True(t, service.IsBadParameterError(err))
				assert.Equal(t, tt.expectedError, service.UserMessage(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFromQueryRequest(t *testing.T) {
	soql, err := fromQueryRequest(QueryRequest{Soql: "  SELECT Name FROM Lead "})
	require.NoError(t, err)
	assert.Equal(t, "SELECT Name FROM Lead", soql)

	_, err = fromQueryRequest(QueryRequest{Soql: " "})
	require.Error(t, err)
	assert.True(t, service.IsBadParameterError(err))
}
