package leave_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"go-leave/internal/audit"
	"go-leave/internal/leave"
	"go-leave/internal/leavetype"
	"go-leave/internal/userrole"

	"gorm.io/gorm"
)

// memRepository keeps leave requests in memory and mirrors the gorm repository semantics.
type memRepository struct {
	mu    sync.Mutex
	rows  map[string]leave.LeaveRequest
	order []string

	createErr error
	updateErr error
	countErr  error
	existsErr error
	// lostUpdate makes UpdateDecision succeed without changing the row.
	lostUpdate bool
	// staleRead, when set, replaces the status FindByID reports.
	staleRead string
}

func newMemRepository() *memRepository {
	return &memRepository{rows: map[string]leave.LeaveRequest{}}
}

func (r *memRepository) put(l leave.LeaveRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[l.ID]; !ok {
		r.order = append(r.order, l.ID)
	}
	r.rows[l.ID] = l
}

func (r *memRepository) get(id string) leave.LeaveRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows[id]
}

func (r *memRepository) Create(_ context.Context, l *leave.LeaveRequest) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[l.ID]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.rows[l.ID] = *l
	r.order = append(r.order, l.ID)
	return nil
}

func (r *memRepository) FindByID(_ context.Context, id string) (*leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if r.staleRead != "" {
		l.Status = r.staleRead
	}
	return &l, nil
}

func (r *memRepository) filter(keep func(leave.LeaveRequest) bool) []leave.LeaveRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []leave.LeaveRequest{}
	for _, id := range r.order {
		if l := r.rows[id]; keep(l) {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	return out
}

func (r *memRepository) FindByEmployee(_ context.Context, employeeEmail string) ([]leave.LeaveRequest, error) {
	return r.filter(func(l leave.LeaveRequest) bool { return l.EmployeeEmail == employeeEmail }), nil
}

func (r *memRepository) FindByManager(_ context.Context, managerEmail, status string) ([]leave.LeaveRequest, error) {
	return r.filter(func(l leave.LeaveRequest) bool {
		return l.ManagerEmail == managerEmail && (status == "" || l.Status == status)
	}), nil
}

func (r *memRepository) FindAll(_ context.Context) ([]leave.LeaveRequest, error) {
	return r.filter(func(leave.LeaveRequest) bool { return true }), nil
}

func (r *memRepository) Count(_ context.Context) (int64, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.rows)), nil
}

func (r *memRepository) ExistsID(_ context.Context, id string) (bool, error) {
	if r.existsErr != nil {
		return false, r.existsErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.rows[id]
	return ok, nil
}

func (r *memRepository) UpdateDecision(_ context.Context, id, status, comment string, decidedAt time.Time) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if r.lostUpdate {
		return nil
	}
	l.Status = status
	l.ManagerComment = comment
	l.DecidedAt = &decidedAt
	r.rows[id] = l
	return nil
}

func (r *memRepository) HasOverlappingPeriod(_ context.Context, employeeEmail string, startDate, endDate time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.rows {
		if l.EmployeeEmail != employeeEmail || l.Status == leave.StatusRejected {
			continue
		}
		if !l.StartDate.After(endDate) && !l.EndDate.Before(startDate) {
			return true, nil
		}
	}
	return false, nil
}

type fakeUsers struct {
	users map[string]userrole.UserRole
	err   error
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*userrole.UserRole, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (f *fakeUsers) FindAll(_ context.Context) ([]userrole.UserRole, error) {
	out := make([]userrole.UserRole, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUsers) Upsert(_ context.Context, u *userrole.UserRole) error {
	f.users[u.Email] = *u
	return nil
}

type fakeLeaveTypes struct {
	types []leavetype.LeaveType
	err   error
}

func (f *fakeLeaveTypes) ListDefinitions(_ context.Context) ([]leavetype.LeaveType, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.types, nil
}

func (f *fakeLeaveTypes) GetAll(_ context.Context) ([]leavetype.LeaveTypeResponse, error) {
	return nil, errors.New("not used")
}

func (f *fakeLeaveTypes) Upsert(_ context.Context, _ string, _ leavetype.UpsertLeaveTypeRequest) (leavetype.LeaveTypeResponse, error) {
	return leavetype.LeaveTypeResponse{}, errors.New("not used")
}

type auditRecord struct {
	Actor   string
	Action  string
	Details string
	LeaveID string
}

type recordingAudit struct {
	mu      sync.Mutex
	entries []auditRecord
	// failAction makes Record fail for that action.
	failAction string
}

func (a *recordingAudit) Record(_ context.Context, actorEmail, action, details, leaveID string) error {
	if a.failAction != "" && action == a.failAction {
		return errors.New("audit store unavailable")
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, auditRecord{actorEmail, action, details, leaveID})
	return nil
}

func (a *recordingAudit) ListRecent(_ context.Context, _ int) ([]audit.EntryResponse, error) {
	return nil, nil
}

func (a *recordingAudit) ListByLeaveID(_ context.Context, _ string) ([]audit.EntryResponse, error) {
	return nil, nil
}

func (a *recordingAudit) withAction(action string) []auditRecord {
	a.mu.Lock()
	defer a.mu.Unlock()
	var out []auditRecord
	for _, e := range a.entries {
		if e.Action == action {
			out = append(out, e)
		}
	}
	return out
}

type sentMail struct {
	Recipient string
	Subject   string
}

type recordingNotifier struct {
	sent []sentMail
	err  error
}

func (n *recordingNotifier) Send(_ context.Context, recipient, subject, _ string) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, sentMail{recipient, subject})
	return nil
}
