package handlers

import (
	"crmviewer/domain"
)

// toStateResponse converts the UI state to API response. Data is never null.
func toStateResponse(state domain.UIState) StateResponse {
	data := state.Data
	if data == nil {
		data = []string{}
	}
	resp := StateResponse{
		Data:    data,
		Loading: state.Loading,
	}
	if state.Error != "" {
		msg := state.Error
		resp.Error = &msg
	}
	return resp
}

// toSessionResponse converts a session to API response. The access token is never returned.
func toSessionResponse(session domain.Session) SessionResponse {
	resp := SessionResponse{InstanceUrl: session.InstanceURL}
	if session.UserID != "" {
		userID := session.UserID
		resp.UserId = &userID
	}
	return resp
}
