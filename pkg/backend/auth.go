package backend

import (
	"context"
	"net/http"
	"net/url"
)

type AdminSigninV1Input struct {
	Email    string
	Password string
}

type AdminSigninV1Output struct {
	Data AdminSigninV1OutputData

	// Message holds the server-provided failure reason when the
	// signin was rejected with a structured body
	Message string

	http.Response
}

type AdminSigninV1OutputData struct {
	UserId              string `json:"userId"`
	JwtToken            string `json:"jwtToken"`
	FirebaseCustomToken string `json:"firebaseCustomToken"`
}

// AdminSigninV1 exchanges admin credentials for session tokens; the
// backend takes the credentials as query parameters
func (c Client) AdminSigninV1(ctx context.Context, input AdminSigninV1Input) (*AdminSigninV1Output, error) {
	var outputData AdminSigninV1OutputData
	outputClient, err := c.do(request{
		Method: http.MethodPost,
		Path:   "/api/auth/adminSignin",
		Query: url.Values{
			"email":    []string{input.Email},
			"password": []string{input.Password},
		},
		Output:  &outputData,
		Context: ctx,
	})
	if outputClient == nil {
		return nil, err
	}
	if err != nil {
		switch outputClient.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			err = ErrorInvalidCredentials
		}
	}
	return &AdminSigninV1Output{
		Data:     outputData,
		Message:  outputClient.GetMessage(),
		Response: outputClient.GetResponse(),
	}, err
}
