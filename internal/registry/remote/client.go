package remote

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/xroadkit/csadmin/internal/config"
	"github.com/xroadkit/csadmin/internal/registry/domain"
	"go.uber.org/zap"
)

type memberPayload struct {
	MemberName string   `json:"member_name"`
	MemberID   memberID `json:"member_id"`
}

type memberID struct {
	MemberClass string `json:"member_class"`
	MemberCode  string `json:"member_code"`
}

type subsystemPayload struct {
	SubsystemID subsystemID `json:"subsystem_id"`
}

type subsystemID struct {
	MemberClass   string `json:"member_class"`
	MemberCode    string `json:"member_code"`
	SubsystemCode string `json:"subsystem_code"`
}

// Service forwards provisioning calls to the central server management API
// instead of writing to the registry database directly.
type Service struct {
	baseURL string
	apiKey  string
	log     *zap.Logger
	client  *http.Client
}

func New(cfg config.APIConfig, log *zap.Logger) *Service {
	client := &http.Client{Timeout: cfg.Timeout()}

	if cfg.CAFile != "" {
		if pem, err := os.ReadFile(cfg.CAFile); err == nil {
			pool := x509.NewCertPool()
			if pool.AppendCertsFromPEM(pem) {
				client.Transport = &http.Transport{
					TLSClientConfig: &tls.Config{RootCAs: pool},
				}
			}
		} else {
			log.Warn("cannot read API CA bundle, using system roots",
				zap.String("ca_file", cfg.CAFile),
				zap.Error(err))
		}
	}

	return &Service{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		apiKey:  cfg.Key,
		log:     log.Named("registry.remote"),
		client:  client,
	}
}

func (s *Service) AddMember(ctx context.Context, req domain.AddMemberRequest) error {
	payload := memberPayload{
		MemberName: req.MemberName,
		MemberID: memberID{
			MemberClass: req.MemberClass,
			MemberCode:  req.MemberCode,
		},
	}

	status, err := s.post(ctx, "/members", payload)
	if err != nil {
		return s.apiError(err)
	}
	if status == http.StatusConflict {
		s.log.Warn("member already exists",
			zap.String("member_class", req.MemberClass),
			zap.String("member_code", req.MemberCode),
		)
		return domain.ErrMemberExists
	}
	if status < 200 || status > 299 {
		return s.apiError(fmt.Errorf("unexpected status %d from /members", status))
	}

	s.log.Info("added new member",
		zap.String("member_code", req.MemberCode),
		zap.String("member_name", req.MemberName),
		zap.String("member_class", req.MemberClass),
	)
	return nil
}

func (s *Service) AddSubsystem(ctx context.Context, req domain.AddSubsystemRequest) error {
	payload := subsystemPayload{
		SubsystemID: subsystemID{
			MemberClass:   req.MemberClass,
			MemberCode:    req.MemberCode,
			SubsystemCode: req.SubsystemCode,
		},
	}

	status, err := s.post(ctx, "/subsystems", payload)
	if err != nil {
		return s.apiError(err)
	}
	if status == http.StatusConflict {
		s.log.Warn("subsystem already exists",
			zap.String("member_class", req.MemberClass),
			zap.String("member_code", req.MemberCode),
			zap.String("subsystem_code", req.SubsystemCode),
		)
		return domain.ErrSubsystemExists
	}
	if status < 200 || status > 299 {
		return s.apiError(fmt.Errorf("unexpected status %d from /subsystems", status))
	}

	s.log.Info("added new subsystem",
		zap.String("member_class", req.MemberClass),
		zap.String("member_code", req.MemberCode),
		zap.String("subsystem_code", req.SubsystemCode),
	)
	return nil
}

func (s *Service) Status(ctx context.Context) (domain.StatusResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/system/status", nil)
	if err != nil {
		return domain.StatusResult{}, s.apiError(err)
	}
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return domain.StatusResult{}, s.apiError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.StatusResult{}, s.apiError(fmt.Errorf("unexpected status %d from /system/status", resp.StatusCode))
	}

	return domain.StatusResult{Msg: "API is ready"}, nil
}

func (s *Service) post(ctx context.Context, endpoint string, payload any) (int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}

func (s *Service) authorize(req *http.Request) {
	req.Header.Set("Authorization", fmt.Sprintf("X-Road-ApiKey token=%s", s.apiKey))
}

func (s *Service) apiError(err error) error {
	s.log.Error("unclassified API error", zap.Error(err))
	return domain.ErrUpstreamAPI
}
