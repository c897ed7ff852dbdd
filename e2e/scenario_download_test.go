package e2e

import (
	"crypto/rand"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type testDownloadSuite struct {
	BaseHTTPSuite
}

func TestDownloadSuite(t *testing.T) {
	suite.Run(t, &testDownloadSuite{})
}

func (s *testDownloadSuite) TestFullDownloadFlow() {
	name := uuid.NewString() + ".bin"
	content := make([]byte, 256*1024)
	_, err := rand.Read(content)
	s.Require().NoError(err)

	path := filepath.Join(s.Config.BaseDir, name)
	s.Require().NoError(os.WriteFile(path, content, 0o644))
	defer os.Remove(path)

	s.Run("Step 1: Download an existing file", func() {
		resp, body := s.Download("Existing file", name)
		s.Equal(http.StatusOK, resp.StatusCode)
		s.Equal("application/octet-stream", resp.Header.Get("Content-Type"))
		s.Equal(content, body)
	})

	s.Run("Step 2: Same request, same bytes", func() {
		_, first := s.Download("First download", name)
		_, second := s.Download("Second download", name)
		s.Equal(first, second)
	})

	s.Run("Step 3: Traversal attempt", func() {
		resp, body := s.Download("Traversal", "../../etc/passwd")
		s.Equal(http.StatusBadRequest, resp.StatusCode)
		s.JSONEq(`{"detail":"invalid filename"}`, string(body))
	})

	s.Run("Step 4: Blank name", func() {
		resp, body := s.Download("Blank name", "")
		s.Equal(http.StatusBadRequest, resp.StatusCode)
		s.JSONEq(`{"detail":"name parameter required"}`, string(body))
	})

	s.Run("Step 5: Missing file", func() {
		resp, body := s.Download("Missing file", uuid.NewString()+".txt")
		s.Equal(http.StatusNotFound, resp.StatusCode)
		s.JSONEq(`{"detail":"file not found"}`, string(body))
	})
}

func (s *testDownloadSuite) TestSymlinkEscape() {
	link := filepath.Join(s.Config.BaseDir, uuid.NewString()+".txt")
	if err := os.Symlink("/etc/passwd", link); err != nil {
		s.T().Skipf("symlinks not supported: %v", err)
	}
	defer os.Remove(link)

	resp, body := s.Download("Symlink to /etc/passwd", filepath.Base(link))
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.JSONEq(`{"detail":"invalid filename"}`, string(body))
}
