package action

import (
	"context"
	"fmt"
	"sync"

	"github.com/certdesk/certdesk/internal/logger"
	"github.com/certdesk/certdesk/models"
)

// Status enumerates the phases of one certificate download.
type Status string

const (
	StatusIdle        Status = "idle"
	StatusDownloading Status = "downloading"
	StatusCompleted   Status = "completed"
	StatusError       Status = "error"
)

// Progress checkpoints of a download run. A fully successful run passes
// through exactly 0, 25, 50, 75, 100.
const (
	progressStarted  = 0
	progressGotURL   = 25
	progressFetched  = 50
	progressBuffered = 75
	progressSaved    = 100
)

const errNotAuthenticated = "User not authenticated"

// DownloadState is the observable state of the download machine.
// IsDownloading is true exactly when Status is [StatusDownloading]; Progress
// is monotonically non-decreasing within one run and resets to 0 when a new
// run starts.
type DownloadState struct {
	IsDownloading bool
	Progress      int
	FileName      string
	Status        Status
	ErrorMessage  string
}

// Downloader drives the two-hop certificate download: exchange
// (learner, course, token) for a signed object URL, fetch the object, save
// it locally. State transitions are reported through an optional OnChange
// callback.
//
// Reset cancels the in-flight run's context and returns the state to idle; a
// run that resolves after being superseded or reset never mutates observable
// state again.
type Downloader struct {
	mu         sync.Mutex
	state      DownloadState
	generation uint64
	cancel     context.CancelFunc

	urls     CertificateURLProvider
	fetcher  ObjectFetcher
	saver    FileSaver
	notifier Notifier
	onChange func(DownloadState)
	logger   *logger.Logger
}

// NewDownloader constructs a Downloader. onChange may be nil; when set it is
// invoked outside the internal lock after every state transition.
func NewDownloader(urls CertificateURLProvider, fetcher ObjectFetcher, saver FileSaver, notifier Notifier, log *logger.Logger, onChange func(DownloadState)) *Downloader {
	return &Downloader{
		state:    DownloadState{Status: StatusIdle},
		urls:     urls,
		fetcher:  fetcher,
		saver:    saver,
		notifier: notifier,
		onChange: onChange,
		logger:   log,
	}
}

// State returns a copy of the current observable state.
func (d *Downloader) State() DownloadState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Download runs one certificate download to completion. A missing session
// token is an immediate error transition with no backend call. displayName
// is the caller's fallback file name, used when the backend suggests none.
//
// Starting a new run supersedes any previous one: the old run's context is
// cancelled and its late transitions are discarded.
func (d *Downloader) Download(ctx context.Context, session models.Session, learnerEmail, courseID, displayName string) {
	if session.Token == "" {
		d.failStart(errNotAuthenticated)
		return
	}

	gen, runCtx := d.begin(ctx)
	defer d.endRun(gen)

	data, err := d.urls.DownloadCertificateURL(runCtx, session, learnerEmail, courseID)
	if err != nil {
		ne := Classify(err)
		d.logger.Error().
			Str("learner", learnerEmail).
			Str("course", courseID).
			Str("code", ne.Code).
			Msg("certificate url exchange failed")
		d.fail(gen, ne.Message)
		return
	}
	d.advance(gen, progressGotURL)

	payload, serverName, err := d.fetcher.Fetch(runCtx, data.URL)
	if err != nil {
		ne := Classify(err)
		d.logger.Error().
			Str("learner", learnerEmail).
			Str("course", courseID).
			Str("code", ne.Code).
			Msg("certificate fetch failed")
		d.fail(gen, ne.Message)
		return
	}
	d.advance(gen, progressFetched)

	fileName := firstNonEmpty(data.FileName, serverName, displayName)
	if fileName == "" {
		fileName = fmt.Sprintf("%s_%s.pdf", learnerEmail, courseID)
	}
	d.advance(gen, progressBuffered)

	path, err := d.saver.Save(fileName, payload)
	if err != nil {
		d.logger.Error().
			Str("learner", learnerEmail).
			Str("course", courseID).
			Err(err).
			Msg("certificate save failed")
		d.fail(gen, "Could not save the certificate")
		return
	}

	d.complete(gen, fileName)
	d.logger.Info().
		Str("learner", learnerEmail).
		Str("course", courseID).
		Str("path", path).
		Msg("certificate downloaded")
}

// Reset cancels any in-flight run and returns the machine to idle.
func (d *Downloader) Reset() {
	d.mu.Lock()

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.generation++
	d.state = DownloadState{Status: StatusIdle}

	d.notifyLocked()
}

// failStart rejects a run before it enters the downloading state: any
// previous run is superseded and the machine transitions straight to error.
func (d *Downloader) failStart(message string) {
	d.mu.Lock()

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.generation++
	d.state = DownloadState{Status: StatusError, ErrorMessage: message}

	d.notifyLocked()

	d.notifier.ShowError("Download failed", message)
}

// begin starts a new run: supersedes the previous one, resets the state to
// downloading with zero progress, and returns the run's generation and
// cancellable context.
func (d *Downloader) begin(ctx context.Context) (uint64, context.Context) {
	d.mu.Lock()

	if d.cancel != nil {
		d.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	d.generation++
	gen := d.generation
	d.state = DownloadState{
		IsDownloading: true,
		Progress:      progressStarted,
		Status:        StatusDownloading,
	}

	d.notifyLocked()
	return gen, runCtx
}

// endRun releases the run's cancel func if the run is still current.
func (d *Downloader) endRun(gen uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if gen == d.generation && d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

func (d *Downloader) advance(gen uint64, progress int) {
	d.mu.Lock()

	if gen != d.generation {
		d.mu.Unlock()
		return
	}
	if progress > d.state.Progress {
		d.state.Progress = progress
	}

	d.notifyLocked()
}

func (d *Downloader) fail(gen uint64, message string) {
	d.mu.Lock()

	if gen != d.generation {
		d.mu.Unlock()
		return
	}
	d.state.IsDownloading = false
	d.state.Status = StatusError
	d.state.ErrorMessage = message

	d.notifyLocked()

	d.notifier.ShowError("Download failed", message)
}

func (d *Downloader) complete(gen uint64, fileName string) {
	d.mu.Lock()

	if gen != d.generation {
		d.mu.Unlock()
		return
	}
	d.state.IsDownloading = false
	d.state.Progress = progressSaved
	d.state.Status = StatusCompleted
	d.state.FileName = fileName

	d.notifyLocked()
}

// notifyLocked releases the lock and invokes onChange with a state copy.
// Callers must hold d.mu and must not touch state after calling it.
func (d *Downloader) notifyLocked() {
	state := d.state
	d.mu.Unlock()

	if d.onChange != nil {
		d.onChange(state)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
