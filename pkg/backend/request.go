package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// request describes a single exchange with the backend; `Output`
// receives the decoded response body when the call succeeds
type request struct {
	Method  string
	Path    string
	Query   url.Values
	Data    any
	Output  any
	Context context.Context
}

type response struct {
	http.Response

	// Message holds the server-provided `message` field from an
	// error body when one was present
	Message string
}

func (r *response) GetResponse() http.Response {
	return r.Response
}

func (r *response) GetMessage() string {
	return r.Message
}

type errorBody struct {
	Message string `json:"message"`
}

func (c Client) do(req request) (*response, error) {
	backendUrl := *c.BackendUrl
	backendUrl.Path = req.Path
	query := url.Values{}
	if req.Query != nil {
		query = req.Query
	}
	if c.AdminId != "" && !query.Has("adminId") {
		query.Set("adminId", c.AdminId)
	}
	backendUrl.RawQuery = query.Encode()

	var requestBody io.Reader
	isJsonBody := false
	if req.Data != nil {
		requestBodyData, err := json.Marshal(req.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal data: %s", err)
		}
		requestBody = bytes.NewBuffer(requestBodyData)
		isJsonBody = true
	}

	requestContext := req.Context
	if requestContext == nil {
		requestContext = context.Background()
	}
	httpRequest, err := http.NewRequestWithContext(
		requestContext,
		req.Method,
		backendUrl.String(),
		requestBody,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request to %s: %s", req.Path, err)
	}
	httpRequest.Header.Add("Accept", "application/json")
	if isJsonBody {
		httpRequest.Header.Add("Content-Type", "application/json")
	}
	httpRequest.Header.Add("User-Agent", fmt.Sprintf("procounsel/admin-sdk/client-%s", c.Id))
	if c.BearerAuth != nil {
		httpRequest.Header.Add("Authorization", fmt.Sprintf("Bearer %s", c.BearerAuth.Token))
	}

	httpResponse, err := c.HttpClient.Do(httpRequest)
	if err != nil {
		return nil, fmt.Errorf("failed to execute http request to %s: %s", req.Path, err)
	}
	defer httpResponse.Body.Close()
	responseBody, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %s", err)
	}

	output := &response{Response: *httpResponse}

	// a non-200 is a failure even when the transport didn't complain
	if !isSuccessResponse(httpResponse) {
		var serverError errorBody
		if err := json.Unmarshal(responseBody, &serverError); err == nil && serverError.Message != "" {
			output.Message = serverError.Message
			return output, fmt.Errorf("%s", serverError.Message)
		}
		return output, fmt.Errorf("failed to receive a successful response (status code: %v): %s", httpResponse.StatusCode, string(responseBody))
	}

	if req.Output != nil && len(responseBody) > 0 {
		if err := json.Unmarshal(responseBody, req.Output); err != nil {
			return output, fmt.Errorf("failed to parse response from backend: %s", err)
		}
	}
	return output, nil
}
