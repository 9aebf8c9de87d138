package workflow

import (
	"sync"

	"github.com/jonathan/cv-tailor/internal/types"
)

// Session holds the state of one tailoring session: the two document buffers,
// the job fields, and the presentation state driven by the coordinator.
// User edits and operation results both go through its accessors; the last write wins.
type Session struct {
	mu sync.RWMutex

	buffers        map[types.DocumentKind]string
	companyProfile string
	jobDescription string
	otherDetails   string
	jobDetails     *types.JobDetails

	status    types.OperationStatus
	activeTab types.DocumentKind
	viewMode  types.ViewMode
}

// Snapshot is a point-in-time copy of a Session
type Snapshot struct {
	Resume         string
	CoverLetter    string
	CompanyProfile string
	JobDescription string
	OtherDetails   string
	JobDetails     *types.JobDetails
	Status         types.OperationStatus
	ActiveTab      types.DocumentKind
	ViewMode       types.ViewMode
}

// NewSession creates an idle session with empty buffers, the résumé tab active, in edit mode
func NewSession() *Session {
	return &Session{
		buffers: map[types.DocumentKind]string{
			types.KindResume:      "",
			types.KindCoverLetter: "",
		},
		status:    types.StatusIdle,
		activeTab: types.KindResume,
		viewMode:  types.ViewEditing,
	}
}

// Snapshot returns a copy of the current state
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Resume:         s.buffers[types.KindResume],
		CoverLetter:    s.buffers[types.KindCoverLetter],
		CompanyProfile: s.companyProfile,
		JobDescription: s.jobDescription,
		OtherDetails:   s.otherDetails,
		Status:         s.status,
		ActiveTab:      s.activeTab,
		ViewMode:       s.viewMode,
	}
	if s.jobDetails != nil {
		details := *s.jobDetails
		snap.JobDetails = &details
	}
	return snap
}

// Buffer returns the named document buffer
func (s *Session) Buffer(kind types.DocumentKind) types.Buffer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return types.Buffer{Kind: kind, Content: s.buffers[kind]}
}

// SetBuffer overwrites a buffer's content. Unknown kinds are ignored.
func (s *Session) SetBuffer(kind types.DocumentKind, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.buffers[kind]; ok {
		s.buffers[kind] = content
	}
}

// SetCompanyProfile records a user edit of the company profile field
func (s *Session) SetCompanyProfile(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.companyProfile = text
}

// SetJobDescription records a user edit of the job description field
func (s *Session) SetJobDescription(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobDescription = text
}

// SetOtherDetails records a user edit of the other-details field
func (s *Session) SetOtherDetails(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.otherDetails = text
}

// Status returns the current operation status
func (s *Session) Status() types.OperationStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// ActiveTab returns the buffer kind shown to the user
func (s *Session) ActiveTab() types.DocumentKind {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeTab
}

// ViewMode returns whether the active buffer is edited or previewed
func (s *Session) ViewMode() types.ViewMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewMode
}

// ActiveBuffer returns the buffer behind the active tab
func (s *Session) ActiveBuffer() types.Buffer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return types.Buffer{Kind: s.activeTab, Content: s.buffers[s.activeTab]}
}

func (s *Session) setStatus(status types.OperationStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

func (s *Session) setActiveTab(kind types.DocumentKind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.buffers[kind]; !ok {
		return false
	}
	s.activeTab = kind
	return true
}

func (s *Session) setViewMode(mode types.ViewMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewMode = mode
}

func (s *Session) toggleViewMode() types.ViewMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.viewMode == types.ViewEditing {
		s.viewMode = types.ViewPreviewing
	} else {
		s.viewMode = types.ViewEditing
	}
	return s.viewMode
}

// applyJobDetails overwrites the job fields with an extraction result
func (s *Session) applyJobDetails(details *types.JobDetails) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *details
	s.jobDetails = &copied
	s.companyProfile = details.CompanyProfile
	s.jobDescription = details.JobDescription
	s.otherDetails = details.OtherDetails()
}

// applyDocument replaces a buffer wholesale and focuses it in the given mode
func (s *Session) applyDocument(kind types.DocumentKind, content string, mode types.ViewMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buffers[kind] = content
	s.activeTab = kind
	s.viewMode = mode
}
