package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xroadkit/csadmin/internal/config"
	"github.com/xroadkit/csadmin/internal/registry/domain"
	"go.uber.org/zap"
)

func newTestService(url string) *Service {
	return New(config.APIConfig{
		URL:            url,
		Key:            "d8e1498a-ae27-4872-8b3e-1cd5b9d76dcb",
		TimeoutSeconds: 2,
	}, zap.NewNop())
}

func TestAddMemberForwardsRequest(t *testing.T) {
	var got memberPayload
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/members", r.URL.Path)
		assert.Equal(t, "X-Road-ApiKey token=d8e1498a-ae27-4872-8b3e-1cd5b9d76dcb", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()

	svc := newTestService(ts.URL)
	err := svc.AddMember(context.Background(), domain.AddMemberRequest{
		MemberClass: "GOV",
		MemberCode:  "00000000",
		MemberName:  "Acme",
	})
	assert.NoError(t, err)
	assert.Equal(t, memberPayload{
		MemberName: "Acme",
		MemberID:   memberID{MemberClass: "GOV", MemberCode: "00000000"},
	}, got)
}

func TestAddMemberConflict(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer ts.Close()

	err := newTestService(ts.URL).AddMember(context.Background(), domain.AddMemberRequest{
		MemberClass: "GOV",
		MemberCode:  "00000000",
		MemberName:  "Acme",
	})
	assert.ErrorIs(t, err, domain.ErrMemberExists)
}

func TestAddMemberUpstreamFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	err := newTestService(ts.URL).AddMember(context.Background(), domain.AddMemberRequest{
		MemberClass: "GOV",
		MemberCode:  "00000000",
		MemberName:  "Acme",
	})
	assert.ErrorIs(t, err, domain.ErrUpstreamAPI)
}

func TestAddMemberUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	err := newTestService(ts.URL).AddMember(context.Background(), domain.AddMemberRequest{
		MemberClass: "GOV",
		MemberCode:  "00000000",
		MemberName:  "Acme",
	})
	assert.ErrorIs(t, err, domain.ErrUpstreamAPI)
}

func TestAddSubsystemForwardsRequest(t *testing.T) {
	var got subsystemPayload
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/subsystems", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()

	err := newTestService(ts.URL).AddSubsystem(context.Background(), domain.AddSubsystemRequest{
		MemberClass:   "GOV",
		MemberCode:    "00000000",
		SubsystemCode: "Billing",
	})
	assert.NoError(t, err)
	assert.Equal(t, subsystemPayload{
		SubsystemID: subsystemID{
			MemberClass:   "GOV",
			MemberCode:    "00000000",
			SubsystemCode: "Billing",
		},
	}, got)
}

func TestAddSubsystemConflict(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer ts.Close()

	err := newTestService(ts.URL).AddSubsystem(context.Background(), domain.AddSubsystemRequest{
		MemberClass:   "GOV",
		MemberCode:    "00000000",
		SubsystemCode: "Billing",
	})
	assert.ErrorIs(t, err, domain.ErrSubsystemExists)
}

func TestStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/system/status", r.URL.Path)
		assert.Equal(t, "X-Road-ApiKey token=d8e1498a-ae27-4872-8b3e-1cd5b9d76dcb", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	result, err := newTestService(ts.URL).Status(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "API is ready", result.Msg)
}

func TestStatusUpstreamFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	_, err := newTestService(ts.URL).Status(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstreamAPI)
}

func TestBaseURLTrailingSlash(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/system/status", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	_, err := newTestService(ts.URL + "/").Status(context.Background())
	assert.NoError(t, err)
}
