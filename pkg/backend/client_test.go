package backend

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := NewClient(NewClientOpts{
		BackendUrl: server.URL,
		AdminId:    "admin@procounsel.co.in",
		Id:         "backend/test",
	})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return client
}

func TestNewClientRequiresScheme(t *testing.T) {
	if _, err := NewClient(NewClientOpts{BackendUrl: "localhost:8080"}); err == nil {
		t.Fatalf("expected an error for a backendUrl without a scheme")
	}
}

func TestListCounsellorsV1DecodesBareArray(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/admin/getAllCounsellors" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("adminId"); got != "admin@procounsel.co.in" {
			t.Errorf("expected adminId query parameter, got %q", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("expected Accept: application/json, got %q", got)
		}
		w.Write([]byte(`[{"userName":"jdoe","firstName":"Jane","lastName":"Doe","verified":true}]`))
	})

	output, err := client.ListCounsellorsV1(context.Background())
	if err != nil {
		t.Fatalf("ListCounsellorsV1 returned error: %v", err)
	}
	if len(output.Data) != 1 {
		t.Fatalf("expected 1 counsellor, got %d", len(output.Data))
	}
	if output.Data[0].UserName != "jdoe" || !output.Data[0].Verified {
		t.Errorf("counsellor fields not decoded: %+v", output.Data[0])
	}
}

func TestNonOkStatusIsAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"message":"upstream unavailable"}`))
	})

	output, err := client.ListWithdrawalsV1(context.Background())
	if err == nil {
		t.Fatalf("expected an error for a 502 response")
	}
	if !strings.Contains(err.Error(), "upstream unavailable") {
		t.Errorf("expected the server message to be surfaced, got: %v", err)
	}
	if output.StatusCode != http.StatusBadGateway {
		t.Errorf("expected the response to be captured, got status %d", output.StatusCode)
	}
}

func TestAdminSigninV1(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		query := r.URL.Query()
		if query.Get("email") != "staff@procounsel.co.in" || query.Get("password") != "hunter22" {
			t.Errorf("credentials not passed as query parameters: %v", query)
		}
		w.Write([]byte(`{"userId":"staff@procounsel.co.in","jwtToken":"jwt","firebaseCustomToken":"fb"}`))
	})

	output, err := client.AdminSigninV1(context.Background(), AdminSigninV1Input{
		Email:    "staff@procounsel.co.in",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("AdminSigninV1 returned error: %v", err)
	}
	if output.Data.UserId != "staff@procounsel.co.in" || output.Data.JwtToken != "jwt" {
		t.Errorf("signin fields not decoded: %+v", output.Data)
	}
}

func TestAdminSigninV1InvalidCredentials(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"bad credentials"}`))
	})

	output, err := client.AdminSigninV1(context.Background(), AdminSigninV1Input{
		Email:    "staff@procounsel.co.in",
		Password: "wrong",
	})
	if err != ErrorInvalidCredentials {
		t.Fatalf("expected ErrorInvalidCredentials, got: %v", err)
	}
	if output.Message != "bad credentials" {
		t.Errorf("expected server message to be captured, got %q", output.Message)
	}
}

func TestUpdateCounsellorV1SendsPartialBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("expected PATCH, got %s", r.Method)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("expected Content-Type: application/json, got %q", got)
		}
		if got := r.URL.Query().Get("counsellorId"); got != "jdoe" {
			t.Errorf("expected counsellorId query parameter, got %q", got)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"ratePerMinute":12}` {
			t.Errorf("expected only the set field in the body, got %s", string(body))
		}
		w.WriteHeader(http.StatusOK)
	})

	ratePerMinute := float64(12)
	_, err := client.UpdateCounsellorV1(context.Background(), UpdateCounsellorV1Input{
		CounsellorId: "jdoe",
		Rates:        Rates{RatePerMinute: &ratePerMinute},
	})
	if err != nil {
		t.Fatalf("UpdateCounsellorV1 returned error: %v", err)
	}
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestCollectionFetchesCarryDeadline(t *testing.T) {
	var deadline time.Time
	var hasDeadline bool
	client, err := NewClient(NewClientOpts{
		BackendUrl: "http://backend.local",
		AdminId:    "admin@procounsel.co.in",
		Id:         "backend/test",
	})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	client.HttpClient.Transport = roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		deadline, hasDeadline = r.Context().Deadline()
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader("[]")),
		}, nil
	})

	before := time.Now()
	if _, err := client.ListCounsellorsV1(context.Background()); err != nil {
		t.Fatalf("ListCounsellorsV1 returned error: %v", err)
	}
	if !hasDeadline {
		t.Fatalf("expected the counsellor listing to carry a deadline")
	}
	if remaining := deadline.Sub(before); remaining > DefaultCollectionFetchTimeout {
		t.Errorf("counsellor listing deadline of %s exceeds the collection fetch timeout", remaining)
	}

	hasDeadline = false
	if _, err := client.ListWithdrawalsV1(context.Background()); err != nil {
		t.Fatalf("ListWithdrawalsV1 returned error: %v", err)
	}
	if !hasDeadline {
		t.Fatalf("expected the withdrawal listing to carry a deadline")
	}

	hasDeadline = false
	if _, err := client.VerifyCounsellorV1(context.Background(), VerifyCounsellorV1Input{CounsellorId: "jdoe"}); err != nil {
		t.Fatalf("VerifyCounsellorV1 returned error: %v", err)
	}
	if hasDeadline {
		t.Errorf("expected mutations to stay on the client-level timeout")
	}
}
