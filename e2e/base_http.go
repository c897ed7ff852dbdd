package e2e

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
)

type BaseHTTPSuite struct {
	suite.Suite
	Config Config
	client *http.Client
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseHTTPSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.ServerAddr == "" || s.Config.BaseDir == "" {
		s.T().Skip("E2E_SERVER_ADDR and E2E_BASE_DIR are required")
	}
	s.client = &http.Client{Timeout: 30 * time.Second}
}

// Download calls GET /download with name and returns the response and its body.
func (s *BaseHTTPSuite) Download(step, name string) (*http.Response, []byte) {
	header := fmt.Sprintf("  ====== %s ======", step)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	start := time.Now()
	resp, err := s.client.Get(s.Config.ServerAddr + "/download?name=" + url.QueryEscape(name))
	s.Require().NoError(err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.T().Logf("GET /download?name=%q [%d] %d bytes in %v", name, resp.StatusCode, len(body), time.Since(start))
	return resp, body
}
