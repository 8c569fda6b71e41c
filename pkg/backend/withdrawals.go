package backend

import (
	"context"
	"net/http"
	"net/url"
)

type ListWithdrawalsV1Output struct {
	Data []Withdrawal

	http.Response
}

// ListWithdrawalsV1 fetches the full withdrawal-request collection;
// the backend returns a bare JSON array
func (c Client) ListWithdrawalsV1(ctx context.Context) (*ListWithdrawalsV1Output, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, DefaultCollectionFetchTimeout)
	defer cancel()
	var outputData []Withdrawal
	outputClient, err := c.do(request{
		Method:  http.MethodGet,
		Path:    "/api/admin/getAllWithdrawals",
		Output:  &outputData,
		Context: ctx,
	})
	if outputClient == nil {
		return nil, err
	}
	return &ListWithdrawalsV1Output{
		Data:     outputData,
		Response: outputClient.GetResponse(),
	}, err
}

type MarkRequestAsTransferredV1Input struct {
	PaymentId string
}

type MarkRequestAsTransferredV1Output struct {
	http.Response
}

// MarkRequestAsTransferredV1 settles a withdrawal request; the
// backend offers no further transition after this one
func (c Client) MarkRequestAsTransferredV1(ctx context.Context, input MarkRequestAsTransferredV1Input) (*MarkRequestAsTransferredV1Output, error) {
	outputClient, err := c.do(request{
		Method: http.MethodPost,
		Path:   "/api/admin/markRequestAsTransferred",
		Query: url.Values{
			"paymentId": []string{input.PaymentId},
		},
		Context: ctx,
	})
	if outputClient == nil {
		return nil, err
	}
	return &MarkRequestAsTransferredV1Output{
		Response: outputClient.GetResponse(),
	}, err
}
