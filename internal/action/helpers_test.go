package action

import (
	"context"
	"sync"

	"github.com/certdesk/certdesk/models"
)

type recordedToast struct {
	Title   string
	Message string
}

// fakeNotifier records toasts instead of presenting them.
type fakeNotifier struct {
	mu        sync.Mutex
	successes []recordedToast
	errors    []recordedToast
}

func (n *fakeNotifier) ShowSuccess(title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, recordedToast{Title: title, Message: message})
}

func (n *fakeNotifier) ShowError(title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, recordedToast{Title: title, Message: message})
}

func (n *fakeNotifier) successCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.successes)
}

func (n *fakeNotifier) errorCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.errors)
}

// fakeResender is a scriptable Resender that counts calls and can block
// until released to simulate a slow backend.
type fakeResender struct {
	mu      sync.Mutex
	calls   int
	result  models.ActionResult
	err     error
	started chan struct{}
	release chan struct{}
}

func (r *fakeResender) ResendCertificate(ctx context.Context, session models.Session, learnerEmail, courseID string) (models.ActionResult, error) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()

	if r.started != nil {
		r.started <- struct{}{}
	}
	if r.release != nil {
		<-r.release
	}

	return r.result, r.err
}

func (r *fakeResender) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

// fakeURLProvider is a scriptable CertificateURLProvider.
type fakeURLProvider struct {
	mu    sync.Mutex
	calls int
	data  models.DownloadCertificateData
	err   error
}

func (p *fakeURLProvider) DownloadCertificateURL(ctx context.Context, session models.Session, learnerEmail, courseID string) (models.DownloadCertificateData, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	return p.data, p.err
}

func (p *fakeURLProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// fakeFetcher is a scriptable ObjectFetcher.
type fakeFetcher struct {
	mu    sync.Mutex
	calls int
	data  []byte
	name  string
	err   error
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.data, f.name, f.err
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeSaver records the last save instead of touching the disk.
type fakeSaver struct {
	mu       sync.Mutex
	fileName string
	data     []byte
	err      error
}

func (s *fakeSaver) Save(fileName string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	s.fileName = fileName
	s.data = data
	return "downloads/" + fileName, nil
}

func (s *fakeSaver) savedName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fileName
}
