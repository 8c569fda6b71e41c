package backend

import (
	"context"
	"net/http"
	"net/url"
)

type ListCounsellorsV1Output struct {
	Data []Counsellor

	http.Response
}

// ListCounsellorsV1 fetches the full counsellor collection; the
// backend returns a bare JSON array
func (c Client) ListCounsellorsV1(ctx context.Context) (*ListCounsellorsV1Output, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, DefaultCollectionFetchTimeout)
	defer cancel()
	var outputData []Counsellor
	outputClient, err := c.do(request{
		Method:  http.MethodGet,
		Path:    "/api/admin/getAllCounsellors",
		Output:  &outputData,
		Context: ctx,
	})
	if outputClient == nil {
		return nil, err
	}
	return &ListCounsellorsV1Output{
		Data:     outputData,
		Response: outputClient.GetResponse(),
	}, err
}

type VerifyCounsellorV1Input struct {
	CounsellorId string
}

type VerifyCounsellorV1Output struct {
	http.Response
}

// VerifyCounsellorV1 approves a counsellor profile
func (c Client) VerifyCounsellorV1(ctx context.Context, input VerifyCounsellorV1Input) (*VerifyCounsellorV1Output, error) {
	outputClient, err := c.do(request{
		Method: http.MethodPatch,
		Path:   "/api/admin/verifyCounsellor",
		Query: url.Values{
			"counsellorId": []string{input.CounsellorId},
		},
		Context: ctx,
	})
	if outputClient == nil {
		return nil, err
	}
	return &VerifyCounsellorV1Output{
		Response: outputClient.GetResponse(),
	}, err
}

type UpdateCounsellorV1Input struct {
	CounsellorId string
	Rates        Rates
}

type UpdateCounsellorV1Output struct {
	http.Response
}

// UpdateCounsellorV1 patches the numeric pricing fields of a
// counsellor; only the non-nil fields of `Rates` are sent
func (c Client) UpdateCounsellorV1(ctx context.Context, input UpdateCounsellorV1Input) (*UpdateCounsellorV1Output, error) {
	outputClient, err := c.do(request{
		Method: http.MethodPatch,
		Path:   "/api/admin/updateCounsellor",
		Query: url.Values{
			"counsellorId": []string{input.CounsellorId},
		},
		Data:    input.Rates,
		Context: ctx,
	})
	if outputClient == nil {
		return nil, err
	}
	return &UpdateCounsellorV1Output{
		Response: outputClient.GetResponse(),
	}, err
}
