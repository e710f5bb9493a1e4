package tui

import (
	"time"

	"github.com/certdesk/certdesk/internal/service"
	"github.com/certdesk/certdesk/models"
)

type sessionRestoredMsg struct {
	session models.Session
	err     error
}

type loginDoneMsg struct {
	session models.Session
	err     error
}

type logoutDoneMsg struct {
	err error
}

type overviewLoadedMsg struct {
	overview service.LearnerOverview
	ok       bool
}

type learnerUpdatedMsg struct {
	learner models.Learner
	ok      bool
}

type courseSavedMsg struct {
	course models.Course
	ok     bool
}

type resendDoneMsg struct{}

type downloadDoneMsg struct{}

type copiedMsg struct{}

type clearStatusMsg struct{}

type tickMsg time.Time
