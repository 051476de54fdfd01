package domain

import (
	"runtime"
	"time"
)

// Settings is the complete service configuration.
type Settings struct {
	Identity   IdentitySettings   `yaml:"identity"`
	Server     ServerSettings     `yaml:"server"`
	Store      StoreSettings      `yaml:"store"`
	Pipeline   PipelineSettings   `yaml:"pipeline"`
	Scheduler  SchedulerSettings  `yaml:"scheduler"`
	Probe      ProbeSettings      `yaml:"probe"`
	Submission SubmissionSettings `yaml:"submission"`
	Generator  GeneratorSettings  `yaml:"generator"`
	GitHub     GitHubSettings     `yaml:"github"`
	Log        LogSettings        `yaml:"log"`
}

// IdentitySettings holds the shared secret and the identity deliveries must address.
type IdentitySettings struct {
	Email  string `yaml:"email"`
	Secret string `yaml:"secret"`
}

// ServerSettings configures the inbound HTTP listener.
type ServerSettings struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// StoreSettings configures durable state.
type StoreSettings struct {
	Path        string `yaml:"path"`
	JournalPath string `yaml:"journal_path"`
	Watch       *bool  `yaml:"watch"`
}

// WatchEnabled reports whether external rewrites of the store should be reloaded.
func (s StoreSettings) WatchEnabled() bool {
	return s.Watch == nil || *s.Watch
}

// PipelineSettings bounds a single run.
type PipelineSettings struct {
	Deadline      time.Duration `yaml:"deadline"`
	VerifyTimeout time.Duration `yaml:"verify_timeout"`
}

// SchedulerSettings sizes the worker pool.
type SchedulerSettings struct {
	Workers   int `yaml:"workers"`
	QueueSize int `yaml:"queue_size"`
}

// ProbeSettings configures the verification poller.
type ProbeSettings struct {
	Interval       time.Duration `yaml:"interval"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// SubmissionSettings configures the submission retrier.
type SubmissionSettings struct {
	MaxAttempts    int             `yaml:"max_attempts"`
	Schedule       []time.Duration `yaml:"schedule"`
	RequestTimeout time.Duration   `yaml:"request_timeout"`
}

// GeneratorSettings configures the chat completions client.
type GeneratorSettings struct {
	BaseURL   string        `yaml:"base_url"`
	Model     string        `yaml:"model"`
	APIKey    string        `yaml:"api_key"`
	Timeout   time.Duration `yaml:"timeout"`
	EntryFile string        `yaml:"entry_file"`
}

// GitHubSettings configures the deployment gateway.
type GitHubSettings struct {
	APIURL      string        `yaml:"api_url"`
	Token       string        `yaml:"token"`
	Username    string        `yaml:"username"`
	PagesBranch string        `yaml:"pages_branch"`
	Timeout     time.Duration `yaml:"timeout"`
}

// LogSettings selects the log output format.
type LogSettings struct {
	Format string `yaml:"format"`
}

const (
	// LogFormatAuto picks pretty output on an interactive terminal and JSON otherwise.
	LogFormatAuto = "auto"
	// LogFormatPretty renders human readable, colourised lines.
	LogFormatPretty = "pretty"
	// LogFormatJSON renders one JSON object per line.
	LogFormatJSON = "json"
)

// DefaultSubmissionSchedule is the wait applied after each failed submission attempt.
func DefaultSubmissionSchedule() []time.Duration {
	return []time.Duration{
		1 * time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		16 * time.Second,
	}
}

// DefaultSettings returns the configuration used when nothing overrides it.
func DefaultSettings() Settings {
	return Settings{
		Server: ServerSettings{
			Addr:            ":8000",
			ShutdownTimeout: 30 * time.Second,
		},
		Store: StoreSettings{
			Path:        DefaultKeyStorePath(),
			JournalPath: DefaultJournalPath(),
		},
		Pipeline: PipelineSettings{
			Deadline:      600 * time.Second,
			VerifyTimeout: 120 * time.Second,
		},
		Scheduler: SchedulerSettings{
			Workers:   runtime.NumCPU(),
			QueueSize: 64,
		},
		Probe: ProbeSettings{
			Interval:       5 * time.Second,
			RequestTimeout: 10 * time.Second,
		},
		Submission: SubmissionSettings{
			MaxAttempts:    5,
			Schedule:       DefaultSubmissionSchedule(),
			RequestTimeout: 30 * time.Second,
		},
		Generator: GeneratorSettings{
			BaseURL:   "https://api.openai.com/v1",
			Model:     "gpt-4o-mini",
			Timeout:   180 * time.Second,
			EntryFile: EntryFileName,
		},
		GitHub: GitHubSettings{
			APIURL:      "https://api.github.com",
			PagesBranch: "main",
			Timeout:     30 * time.Second,
		},
		Log: LogSettings{
			Format: LogFormatAuto,
		},
	}
}
