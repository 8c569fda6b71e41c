package backend

import (
	"context"
	"net/http"
)

type BroadcastNotificationV1Input struct {
	Notification Notification
}

type BroadcastNotificationV1Output struct {
	http.Response
}

// BroadcastNotificationV1 pushes a notification to all ProCounsel
// platforms; the payload is submitted once and not persisted locally
func (c Client) BroadcastNotificationV1(ctx context.Context, input BroadcastNotificationV1Input) (*BroadcastNotificationV1Output, error) {
	outputClient, err := c.do(request{
		Method:  http.MethodPost,
		Path:    "/api/admin/broadcastNotification",
		Data:    input.Notification,
		Context: ctx,
	})
	if outputClient == nil {
		return nil, err
	}
	return &BroadcastNotificationV1Output{
		Response: outputClient.GetResponse(),
	}, err
}
