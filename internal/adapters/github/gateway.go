// Package github implements the deployment gateway on the GitHub REST API and GitHub Pages.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	gh "github.com/google/go-github/v66/github"
	"go.trai.ch/courier/internal/core/domain"
	"go.trai.ch/courier/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DeploymentGateway = (*Gateway)(nil)

const (
	fileMode = "100644"

	// refRetries bounds how often the branch head is re-read while a fresh repository initialises.
	refRetries = 5
)

// Gateway implements ports.DeploymentGateway.
//
// Files are committed through the Git data API, so every deployment is exactly one commit
// and its SHA is the one reported to the evaluator.
type Gateway struct {
	client *gh.Client
	logger ports.Logger
	owner  string
	branch string
}

// NewGateway creates a gateway from its settings.
func NewGateway(s domain.GitHubSettings, logger ports.Logger) *Gateway {
	return newGatewayWithClient(s, logger, &http.Client{Timeout: s.Timeout})
}

func newGatewayWithClient(s domain.GitHubSettings, logger ports.Logger, httpClient *http.Client) *Gateway {
	branch := s.PagesBranch
	if branch == "" {
		branch = "main"
	}

	client := gh.NewClient(httpClient)
	if s.Token != "" {
		client = client.WithAuthToken(s.Token)
	}
	if s.APIURL != "" {
		base, err := url.Parse(strings.TrimRight(s.APIURL, "/") + "/")
		if err != nil {
			logger.Warn("invalid github api url, using the public api", "url", s.APIURL, "error", err.Error())
		} else {
			client.BaseURL = base
		}
	}

	return &Gateway{
		client: client,
		logger: logger,
		owner:  s.Username,
		branch: branch,
	}
}

// Create provisions a public repository called name, commits files and enables Pages.
func (g *Gateway) Create(ctx context.Context, name string, files domain.Files) (domain.DeploymentResult, error) {
	repo, _, err := g.client.Repositories.Create(ctx, "", &gh.Repository{
		Name:        gh.String(name),
		Description: gh.String("Auto-generated application: " + name),
		Private:     gh.Bool(false),
		AutoInit:    gh.Bool(true),
	})
	if err != nil {
		return domain.DeploymentResult{}, deployErr(err, "create repository", name)
	}

	sha, err := g.commit(ctx, name, files, "Initial commit: generated application")
	if err != nil {
		return domain.DeploymentResult{}, deployErr(err, "commit files", name)
	}

	g.enablePages(ctx, name)

	pagesURL, err := g.PublishedURL(ctx, name)
	if err != nil {
		return domain.DeploymentResult{}, err
	}

	return domain.DeploymentResult{
		RepoURL:      repo.GetHTMLURL(),
		CommitSHA:    sha,
		PublishedURL: pagesURL,
	}, nil
}

// Update commits files to the existing repository called name.
// A missing repository fails with domain.ErrDeploymentNotFound in the chain.
func (g *Gateway) Update(ctx context.Context, name string, files domain.Files) (string, string, error) {
	repo, resp, err := g.client.Repositories.Get(ctx, g.owner, name)
	if statusOf(resp) == http.StatusNotFound {
		return "", "", zerr.With(zerr.Wrap(domain.ErrDeploymentNotFound, "update repository"), "repo", name)
	}
	if err != nil {
		return "", "", deployErr(err, "get repository", name)
	}

	sha, err := g.commit(ctx, name, files, "Update: revised application")
	if err != nil {
		return "", "", deployErr(err, "commit files", name)
	}
	return repo.GetHTMLURL(), sha, nil
}

// PublishedURL returns the Pages URL of the repository called name.
func (g *Gateway) PublishedURL(_ context.Context, name string) (string, error) {
	if g.owner == "" {
		return "", zerr.Wrap(domain.ErrDeploymentFailed, "github username is not configured")
	}
	return "https://" + strings.ToLower(g.owner) + ".github.io/" + name + "/", nil
}

// enablePages turns on Pages for the branch root. Failure is logged, not returned:
// the site may already be configured and verification reports whether it is served.
func (g *Gateway) enablePages(ctx context.Context, name string) {
	_, resp, err := g.client.Repositories.EnablePages(ctx, g.owner, name, &gh.Pages{
		Source: &gh.PagesSource{Branch: gh.String(g.branch), Path: gh.String("/")},
	})
	switch status := statusOf(resp); {
	case status == http.StatusConflict:
		g.logger.Info("pages already enabled", "repo", name)
	case err != nil:
		g.logger.Warn("enabling pages failed", "repo", name, "status", status, "error", err.Error())
	}
}

// commit writes files as a single commit on top of the branch head and moves the branch to it.
func (g *Gateway) commit(ctx context.Context, name string, files domain.Files, message string) (string, error) {
	parent, err := g.head(ctx, name)
	if err != nil {
		return "", err
	}

	parentCommit, _, err := g.client.Git.GetCommit(ctx, g.owner, name, parent)
	if err != nil {
		return "", err
	}

	entries := make([]*gh.TreeEntry, 0, len(files))
	for _, path := range files.Names() {
		entries = append(entries, &gh.TreeEntry{
			Path:    gh.String(path),
			Mode:    gh.String(fileMode),
			Type:    gh.String("blob"),
			Content: gh.String(files[path]),
		})
	}

	tree, _, err := g.client.Git.CreateTree(ctx, g.owner, name, parentCommit.GetTree().GetSHA(), entries)
	if err != nil {
		return "", err
	}

	created, _, err := g.client.Git.CreateCommit(ctx, g.owner, name, &gh.Commit{
		Message: gh.String(message),
		Tree:    &gh.Tree{SHA: tree.SHA},
		Parents: []*gh.Commit{{SHA: gh.String(parent)}},
	}, nil)
	if err != nil {
		return "", err
	}

	if _, _, err := g.client.Git.UpdateRef(ctx, g.owner, name, &gh.Reference{
		Ref:    gh.String("refs/heads/" + g.branch),
		Object: &gh.GitObject{SHA: created.SHA},
	}, false); err != nil {
		return "", err
	}

	return created.GetSHA(), nil
}

// head reads the branch head, retrying while a just-created repository has no refs yet.
func (g *Gateway) head(ctx context.Context, name string) (string, error) {
	var sha string

	operation := func() error {
		ref, resp, err := g.client.Git.GetRef(ctx, g.owner, name, "refs/heads/"+g.branch)
		if err == nil {
			sha = ref.GetObject().GetSHA()
			return nil
		}
		if status := statusOf(resp); status == http.StatusNotFound || status == http.StatusConflict {
			return err
		}
		return backoff.Permanent(err)
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = 500 * time.Millisecond
	b := backoff.WithContext(backoff.WithMaxRetries(eb, refRetries), ctx)
	if err := backoff.Retry(operation, b); err != nil {
		return "", err
	}
	return sha, nil
}

func statusOf(resp *gh.Response) int {
	if resp == nil || resp.Response == nil {
		return 0
	}
	return resp.StatusCode
}

// deployErr wraps err so both domain.ErrDeploymentFailed and the API error stay matchable.
func deployErr(err error, op, name string) error {
	wrapped := zerr.With(fmt.Errorf("%w: %s: %w", domain.ErrDeploymentFailed, op, err), "repo", name)
	var apiErr *gh.ErrorResponse
	if errors.As(err, &apiErr) && apiErr.Response != nil {
		wrapped = zerr.With(wrapped, "status", apiErr.Response.StatusCode)
	}
	return wrapped
}
