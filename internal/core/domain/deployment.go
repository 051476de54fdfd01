package domain

import "sort"

// Files maps a file name to its text content.
type Files map[string]string

// Names returns the file names in lexical order.
func (f Files) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DeploymentResult describes a published artifact.
type DeploymentResult struct {
	RepoURL      string `json:"repo_url"`
	CommitSHA    string `json:"commit_sha"`
	PublishedURL string `json:"pages_url"`
}

// SubmissionPayload is the completion report sent to the evaluator.
// It carries the full identity so the receiver can deduplicate.
type SubmissionPayload struct {
	Email     string `json:"email"`
	Task      string `json:"task"`
	Round     int    `json:"round"`
	Nonce     string `json:"nonce"`
	RepoURL   string `json:"repo_url"`
	CommitSHA string `json:"commit_sha"`
	PagesURL  string `json:"pages_url"`
}

// NewSubmissionPayload builds the report for a request and its deployment.
func NewSubmissionPayload(req TaskRequest, res DeploymentResult) SubmissionPayload {
	return SubmissionPayload{
		Email:     req.Email,
		Task:      req.Task,
		Round:     req.Round,
		Nonce:     req.Nonce,
		RepoURL:   res.RepoURL,
		CommitSHA: res.CommitSHA,
		PagesURL:  res.PublishedURL,
	}
}

// DeliveryOutcome is the result of reporting a completion.
type DeliveryOutcome string

const (
	// Delivered means the evaluator acknowledged the report with a 2xx.
	Delivered DeliveryOutcome = "delivered"
	// Exhausted means every attempt failed.
	Exhausted DeliveryOutcome = "exhausted"
)
