package backend

import (
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultCollectionFetchTimeout bounds the collection listing calls
// which transfer the full counsellor/withdrawal datasets; mutations
// run on the client-level timeout instead
const DefaultCollectionFetchTimeout = 10 * time.Second

type NewClientOpts struct {
	// BackendUrl is the URL where the ProCounsel backend API is
	// accessible at
	BackendUrl string

	// AdminId is the administrator identifier included as the
	// `adminId` query parameter on all admin operations
	AdminId string

	BearerAuth *NewClientBearerAuthOpts

	// Id will be included in the user-agent for identification
	Id string

	// Timeout applies to all requests made by this client, defaults
	// to no client-level timeout when left unset
	Timeout time.Duration
}

type NewClientBearerAuthOpts struct {
	Token string
}

func NewClient(opts NewClientOpts) (*Client, error) {
	client := &Client{
		AdminId:    opts.AdminId,
		BearerAuth: opts.BearerAuth,
		HttpClient: &http.Client{Timeout: opts.Timeout},
		Id:         opts.Id,
	}

	backendUrl, err := url.Parse(opts.BackendUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse provided backendUrl[%s]: %s", opts.BackendUrl, err)
	}
	if backendUrl.Scheme == "" {
		return nil, fmt.Errorf("failed to determine url scheme of backendUrl[%s]", opts.BackendUrl)
	}
	client.BackendUrl = backendUrl

	return client, nil
}

type Client struct {
	// BackendUrl is the URL where the ProCounsel backend API is
	// accessible at
	BackendUrl *url.URL

	// AdminId identifies the acting administrator to the backend
	AdminId string

	BearerAuth *NewClientBearerAuthOpts

	// HttpClient is the HTTP client
	HttpClient *http.Client

	// Id will be included in the user-agent for identification
	Id string
}
