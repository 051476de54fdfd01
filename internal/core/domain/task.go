package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// TaskIdentity identifies one logical task delivery.
// Two deliveries with an equal (Task, Round, Nonce) triple are the same delivery.
type TaskIdentity struct {
	Task  string `json:"task"`
	Round int    `json:"round"`
	Nonce string `json:"nonce"`
}

// Key renders the identity in the "<task>-<round>-<nonce>" form used by the key store.
// Dashes and percent signs in round and nonce are percent-escaped, so the last two
// unescaped dashes always delimit the fields and distinct triples never share a key.
func (id TaskIdentity) Key() string {
	round := keyEscaper.Replace(strconv.Itoa(id.Round))
	nonce := keyEscaper.Replace(id.Nonce)

	var b strings.Builder
	b.Grow(len(id.Task) + len(round) + len(nonce) + 2)
	b.WriteString(id.Task)
	b.WriteByte('-')
	b.WriteString(round)
	b.WriteByte('-')
	b.WriteString(nonce)
	return b.String()
}

var keyEscaper = strings.NewReplacer("%", "%25", "-", "%2D")

// String implements fmt.Stringer.
func (id TaskIdentity) String() string {
	return id.Key()
}

// RepoName returns the deployment target name for the given round.
// Characters the hosting side rejects are replaced with '-'.
func (id TaskIdentity) RepoName(round int) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-', r == '_', r == '.':
			return r
		default:
			return '-'
		}
	}, id.Task)
	return name + "-r" + strconv.Itoa(round)
}

// Attachment is a named content reference sent along with a task.
type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// TaskRequest is a task delivery as received from the sender.
type TaskRequest struct {
	Email         string       `json:"email"`
	Secret        string       `json:"secret"`
	Task          string       `json:"task"`
	Round         int          `json:"round"`
	Nonce         string       `json:"nonce"`
	Brief         string       `json:"brief"`
	Checks        []string     `json:"checks"`
	EvaluationURL string       `json:"evaluation_url"`
	Attachments   []Attachment `json:"attachments"`
}

// Identity returns the identity triple of the request.
func (r *TaskRequest) Identity() TaskIdentity {
	return TaskIdentity{Task: r.Task, Round: r.Round, Nonce: r.Nonce}
}

// Validate checks the fields the pipeline cannot run without.
func (r *TaskRequest) Validate() error {
	switch {
	case strings.TrimSpace(r.Task) == "":
		return missingField("task")
	case strings.TrimSpace(r.Nonce) == "":
		return missingField("nonce")
	case r.Round < 1:
		return zerr.With(zerr.Wrap(ErrInvalidRequest, "round must be at least 1"), "round", r.Round)
	case strings.TrimSpace(r.EvaluationURL) == "":
		return missingField("evaluation_url")
	}
	return nil
}

func missingField(name string) error {
	return zerr.With(zerr.Wrap(ErrInvalidRequest, "missing field"), "field", name)
}

// Decision is the synchronous answer of the intake gate to an authenticated delivery.
type Decision string

const (
	// Accepted means the identity was new and a run was scheduled.
	Accepted Decision = "accepted"
	// Duplicate means the identity was already processed; nothing was scheduled.
	Duplicate Decision = "duplicate"
)
