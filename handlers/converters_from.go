package handlers

import (
	"strings"

	"crmviewer/domain"
	"crmviewer/service"
)

// fromSessionRequest converts SessionRequest to domain.Session.
// Returns service.BadParameterError on validation failure.
func fromSessionRequest(req SessionRequest) (domain.Session, error) {
	instanceURL := strings.TrimSpace(req.InstanceUrl)
	if instanceURL == "" {
		return domain.Session{}, service.NewBadParameterError("instance_url is required", nil)
	}
	if req.AccessToken == "" {
		return domain.Session{}, service.NewBadParameterError("access_token is required", nil)
	}

	session := domain.Session{
		InstanceURL: strings.TrimRight(instanceURL, "/"),
		AccessToken: req.AccessToken,
	}
	if req.UserId != nil {
		session.UserID = *req.UserId
	}
	return session, nil
}

// fromQueryRequest returns the SOQL text of QueryRequest.
// Returns service.BadParameterError when it is blank.
func fromQueryRequest(req QueryRequest) (string, error) {
	soql := strings.TrimSpace(req.Soql)
	if soql == "" {
		return "", service.NewBadParameterError("soql is required", nil)
	}
	return soql, nil
}
