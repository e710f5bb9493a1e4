package mockrouter

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/certdesk/certdesk/models"
)

// account is a seeded console login.
type account struct {
	Email          string
	Password       string
	Role           string
	OrganizationID string
}

// object is one downloadable certificate blob reachable through a short-lived
// signed URL.
type object struct {
	FileName  string
	Data      []byte
	ExpiresAt time.Time
}

// memoryStore is the in-memory world the mock router serves: accounts,
// learners, courses, and issued object URLs. Everything resets on restart;
// this backend exists for console development only.
type memoryStore struct {
	mu       sync.Mutex
	accounts map[string]account
	learners map[string][]models.Learner
	courses  map[string]models.Course
	objects  map[string]object
}

const objectTTL = 5 * time.Minute

func newMemoryStore() *memoryStore {
	s := &memoryStore{
		accounts: make(map[string]account),
		learners: make(map[string][]models.Learner),
		courses:  make(map[string]models.Course),
		objects:  make(map[string]object),
	}
	s.seed()
	return s
}

// seed loads the fixtures the console team develops against.
func (s *memoryStore) seed() {
	s.accounts["admin@certdesk.local"] = account{
		Email:          "admin@certdesk.local",
		Password:       "admin",
		Role:           models.RoleAdmin,
		OrganizationID: "org-acme",
	}
	s.accounts["poc@acme.example"] = account{
		Email:          "poc@acme.example",
		Password:       "poc",
		Role:           models.RolePOC,
		OrganizationID: "org-acme",
	}

	lastActive := time.Now().Add(-26 * time.Hour)
	s.learners["org-acme"] = []models.Learner{
		{Email: "alice@acme.example", Name: "Alice Cooper", OrganizationID: "org-acme", Courses: []string{"go-101", "go-201"}, CertificatesIssued: 2, LastActivityAt: &lastActive},
		{Email: "bob@acme.example", Name: "Bob Martin", OrganizationID: "org-acme", Courses: []string{"go-101"}, CertificatesIssued: 1},
		{Email: "carol@acme.example", Name: "Carol Danvers", OrganizationID: "org-acme", Courses: nil, CertificatesIssued: 0},
	}

	for _, c := range []models.Course{
		{ID: "go-101", Title: "Go Basics", OrganizationID: "org-acme", CertificateTemplate: "classic"},
		{ID: "go-201", Title: "Concurrent Go", OrganizationID: "org-acme", CertificateTemplate: "classic"},
	} {
		s.courses[c.ID] = c
	}
}

func (s *memoryStore) findAccount(email, password string) (account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[email]
	if !ok || acc.Password != password {
		return account{}, false
	}
	return acc, true
}

func (s *memoryStore) organizationLearners(organizationID string) []models.Learner {
	s.mu.Lock()
	defer s.mu.Unlock()

	learners := s.learners[organizationID]
	out := make([]models.Learner, len(learners))
	copy(out, learners)
	return out
}

func (s *memoryStore) statistics(organizationID string) models.LearnerStatistics {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := models.LearnerStatistics{}
	cutoff := time.Now().Add(-30 * 24 * time.Hour)
	for _, l := range s.learners[organizationID] {
		stats.TotalLearners++
		stats.CertificatesIssued += l.CertificatesIssued
		stats.CoursesInProgress += len(l.Courses)
		if l.LastActivityAt != nil && l.LastActivityAt.After(cutoff) {
			stats.ActiveLearners++
		}
		if l.CertificatesIssued > 0 && l.LastActivityAt != nil && l.LastActivityAt.After(cutoff) {
			stats.CompletedThisMonth++
		}
	}
	return stats
}

// learnerHasCourse reports whether the learner exists and is enrolled in the
// course.
func (s *memoryStore) learnerHasCourse(learnerEmail, courseID string) (models.Learner, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, learners := range s.learners {
		for _, l := range learners {
			if l.Email != learnerEmail {
				continue
			}
			for _, c := range l.Courses {
				if c == courseID {
					return l, true
				}
			}
			return l, false
		}
	}
	return models.Learner{}, false
}

func (s *memoryStore) updateLearner(update models.LearnerUpdate) (models.Learner, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for orgID, learners := range s.learners {
		for i, l := range learners {
			if l.Email != update.Email {
				continue
			}
			if update.Name != nil {
				l.Name = *update.Name
			}
			if update.Courses != nil {
				l.Courses = *update.Courses
			}
			s.learners[orgID][i] = l
			return l, true
		}
	}
	return models.Learner{}, false
}

func (s *memoryStore) createCourse(course models.Course) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.courses[course.ID]; exists {
		return models.Course{}, fmt.Errorf("course %s already exists", course.ID)
	}
	s.courses[course.ID] = course
	return course, nil
}

// issueObject registers a certificate blob and returns its object ID. The
// blob is a placeholder PDF naming the learner and course.
func (s *memoryStore) issueObject(learnerEmail, courseID string) (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	fileName := fmt.Sprintf("certificate_%s_%s.pdf", learnerEmail, courseID)
	body := fmt.Sprintf("%%PDF-1.7\n%% certdesk dev certificate for %s / %s\n", learnerEmail, courseID)
	s.objects[id] = object{
		FileName:  fileName,
		Data:      []byte(body),
		ExpiresAt: time.Now().Add(objectTTL),
	}
	return id, fileName
}

func (s *memoryStore) takeObject(id string) (object, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj, ok := s.objects[id]
	if !ok {
		return object{}, false
	}
	if time.Now().After(obj.ExpiresAt) {
		delete(s.objects, id)
		return object{}, false
	}
	return obj, true
}
