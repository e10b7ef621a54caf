package template

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spurkit/spur/internal/errors"
	"github.com/spurkit/spur/internal/logging"
)

const (
	// githubAPI is the default tarball endpoint; overridable for tests.
	githubAPI = "https://api.github.com"

	userAgent = "spur-cli"

	// maxTarballSize caps the download; template repos are small and an
	// unbounded read from a remote is not acceptable.
	maxTarballSize = 128 << 20
)

// Provider fetches project templates from GitHub.
type Provider struct {
	client  *http.Client
	baseURL string
	logger  logging.Logger
}

// NewProvider creates a template provider with a sane HTTP timeout.
func NewProvider(logger logging.Logger) *Provider {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Provider{
		client:  &http.Client{Timeout: 60 * time.Second},
		baseURL: githubAPI,
		logger:  logger.WithComponent("template"),
	}
}

// NewProviderForTest creates a provider pointed at a test server.
func NewProviderForTest(client *http.Client, baseURL string) *Provider {
	return &Provider{client: client, baseURL: baseURL, logger: logging.NewNopLogger()}
}

// Fetch downloads the repository tarball for branch, extracts it, and copies
// the named template subdirectory into dest. dest must already exist.
func (p *Provider) Fetch(ctx context.Context, repoURL, branch, templateName, dest string) error {
	owner, name, err := ParseRepo(repoURL)
	if err != nil {
		return err
	}

	p.logger.Debug(ctx, "downloading template",
		"owner", owner, "repo", name, "branch", branch, "template", templateName)

	tarball, err := p.download(ctx, owner, name, branch)
	if err != nil {
		return err
	}

	tmpDir, err := os.MkdirTemp("", "spur-template-*")
	if err != nil {
		return errors.New(errors.CategoryIO, "create temp directory", err)
	}
	defer os.RemoveAll(tmpDir)

	if err := extractTarball(tarball, tmpDir); err != nil {
		return err
	}

	return copyTemplate(tmpDir, templateName, dest)
}

// download fetches the tarball bytes from the GitHub API.
func (p *Provider) download(ctx context.Context, owner, repo, branch string) ([]byte, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/tarball/%s", p.baseURL, owner, repo, branch)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.New(errors.CategoryTemplate, "download template", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.New(errors.CategoryTemplate, "download template", err).
			WithSuggestion("check your network connection")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New(errors.CategoryTemplate, "download template",
			fmt.Errorf("HTTP %d from %s/%s@%s", resp.StatusCode, owner, repo, branch)).
			WithSuggestion("make sure the repository and branch exist")
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxTarballSize))
	if err != nil {
		return nil, errors.New(errors.CategoryTemplate, "download template", err)
	}
	return data, nil
}
