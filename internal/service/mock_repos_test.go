package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/model"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users  map[int64]*model.User
	nextID int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int64]*model.User), nextID: 1}
}

func (m *mockUserRepo) emailTaken(email string, except int64) bool {
	for id, u := range m.users {
		if id != except && u.Email == email {
			return true
		}
	}
	return false
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if m.emailTaken(user.Email, 0) {
		return gorm.ErrDuplicatedKey
	}
	if user.ID == 0 {
		user.ID = m.nextID
		m.nextID++
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	cp.Password = ""
	return &cp, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		cp := *u
		cp.Password = ""
		result = append(result, cp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockUserRepo) Update(_ context.Context, id int64, fields map[string]interface{}) (int64, error) {
	u, ok := m.users[id]
	if !ok {
		return 0, nil
	}
	if email, ok := fields["email"].(string); ok && m.emailTaken(email, id) {
		return 0, gorm.ErrDuplicatedKey
	}
	for k, v := range fields {
		s, _ := v.(string)
		switch k {
		case "title":
			u.Title = s
		case "first_name":
			u.FirstName = s
		case "last_name":
			u.LastName = s
		case "email":
			u.Email = s
		case "phone_number":
			u.PhoneNumber = s
		}
	}
	return 1, nil
}

func (m *mockUserRepo) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := m.users[id]; !ok {
		return 0, nil
	}
	delete(m.users, id)
	return 1, nil
}

// ── Mock RoleRepository ──

type mockRoleRepo struct {
	roles     map[int64]*model.Role
	nextID    int64
	lookupErr error
}

func newMockRoleRepo() *mockRoleRepo {
	return &mockRoleRepo{roles: make(map[int64]*model.Role), nextID: 1}
}

func (m *mockRoleRepo) nameTaken(name string, except int64) bool {
	for id, r := range m.roles {
		if id != except && r.Name == name {
			return true
		}
	}
	return false
}

func (m *mockRoleRepo) Create(_ context.Context, role *model.Role) error {
	if m.nameTaken(role.Name, 0) {
		return gorm.ErrDuplicatedKey
	}
	if role.ID == 0 {
		role.ID = m.nextID
		m.nextID++
	}
	cp := *role
	m.roles[role.ID] = &cp
	return nil
}

func (m *mockRoleRepo) GetByID(_ context.Context, id int64) (*model.Role, error) {
	r, ok := m.roles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *mockRoleRepo) GetByName(_ context.Context, name string) (*model.Role, error) {
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	for _, r := range m.roles {
		if r.Name == name {
			cp := *r
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRoleRepo) List(_ context.Context) ([]model.Role, error) {
	var result []model.Role
	for _, r := range m.roles {
		result = append(result, *r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockRoleRepo) Update(_ context.Context, id int64, fields map[string]interface{}) (int64, error) {
	r, ok := m.roles[id]
	if !ok {
		return 0, nil
	}
	if name, ok := fields["name"].(string); ok {
		if m.nameTaken(name, id) {
			return 0, gorm.ErrDuplicatedKey
		}
		r.Name = name
	}
	if d, ok := fields["description"].(string); ok {
		r.Description = d
	}
	return 1, nil
}

func (m *mockRoleRepo) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := m.roles[id]; !ok {
		return 0, nil
	}
	delete(m.roles, id)
	return 1, nil
}

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	courses  map[int64]*model.Course
	nextID   int64
	batchErr error
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[int64]*model.Course), nextID: 1}
}

func (m *mockCourseRepo) codeTaken(code string, except int64) bool {
	for id, c := range m.courses {
		if id != except && c.CourseCode == code {
			return true
		}
	}
	return false
}

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	if m.codeTaken(course.CourseCode, 0) {
		return gorm.ErrDuplicatedKey
	}
	if course.ID == 0 {
		course.ID = m.nextID
		m.nextID++
	}
	cp := *course
	m.courses[course.ID] = &cp
	return nil
}

func (m *mockCourseRepo) CreateBatch(ctx context.Context, courses []model.Course) error {
	if m.batchErr != nil {
		return m.batchErr
	}
	for i := range courses {
		if err := m.Create(ctx, &courses[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockCourseRepo) ExistingCodes(_ context.Context, codes []string) ([]string, error) {
	var existing []string
	for _, code := range codes {
		if m.codeTaken(code, 0) {
			existing = append(existing, code)
		}
	}
	return existing, nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, id int64) (*model.Course, error) {
	c, ok := m.courses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockCourseRepo) List(_ context.Context) ([]model.Course, error) {
	var result []model.Course
	for _, c := range m.courses {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockCourseRepo) Update(_ context.Context, id int64, fields map[string]interface{}) (int64, error) {
	c, ok := m.courses[id]
	if !ok {
		return 0, nil
	}
	if code, ok := fields["course_code"].(string); ok {
		if m.codeTaken(code, id) {
			return 0, gorm.ErrDuplicatedKey
		}
		c.CourseCode = code
	}
	if v, ok := fields["course_title"].(string); ok {
		c.CourseTitle = v
	}
	if v, ok := fields["course_unit"].(int); ok {
		c.CourseUnit = v
	}
	if v, ok := fields["level"].(int); ok {
		c.Level = v
	}
	return 1, nil
}

func (m *mockCourseRepo) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := m.courses[id]; !ok {
		return 0, nil
	}
	delete(m.courses, id)
	return 1, nil
}

// ── Mock SessionRepository ──

type mockSessionRepo struct {
	sessions map[int64]*model.Session
	nextID   int64
	locks    int
	clearErr error
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{sessions: make(map[int64]*model.Session), nextID: 1}
}

func (m *mockSessionRepo) LockCurrency(_ context.Context) error {
	m.locks++
	return nil
}

func (m *mockSessionRepo) Create(_ context.Context, session *model.Session) error {
	for _, s := range m.sessions {
		if s.Date == session.Date {
			return gorm.ErrDuplicatedKey
		}
	}
	if session.ID == 0 {
		session.ID = m.nextID
		m.nextID++
	}
	cp := *session
	m.sessions[session.ID] = &cp
	return nil
}

func (m *mockSessionRepo) GetByID(_ context.Context, id int64) (*model.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *mockSessionRepo) GetForUpdate(ctx context.Context, id int64) (*model.Session, error) {
	return m.GetByID(ctx, id)
}

func (m *mockSessionRepo) GetCurrent(_ context.Context) (*model.Session, error) {
	for _, s := range m.sessions {
		if s.Current {
			cp := *s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSessionRepo) List(_ context.Context) ([]model.Session, error) {
	var result []model.Session
	for _, s := range m.sessions {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date > result[j].Date })
	return result, nil
}

func (m *mockSessionRepo) UpdateDate(_ context.Context, id int64, date string) (int64, error) {
	s, ok := m.sessions[id]
	if !ok {
		return 0, nil
	}
	for other, o := range m.sessions {
		if other != id && o.Date == date {
			return 0, gorm.ErrDuplicatedKey
		}
	}
	s.Date = date
	return 1, nil
}

func (m *mockSessionRepo) ClearCurrent(_ context.Context) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	for _, s := range m.sessions {
		s.Current = false
	}
	return nil
}

func (m *mockSessionRepo) MarkCurrent(_ context.Context, id int64) (int64, error) {
	s, ok := m.sessions[id]
	if !ok {
		return 0, nil
	}
	s.Current = true
	return 1, nil
}

func (m *mockSessionRepo) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := m.sessions[id]; !ok {
		return 0, nil
	}
	delete(m.sessions, id)
	return 1, nil
}

func (m *mockSessionRepo) currentIDs() []int64 {
	var ids []int64
	for id, s := range m.sessions {
		if s.Current {
			ids = append(ids, id)
		}
	}
	return ids
}

// ── Mock AllocationRepository ──

type pair struct{ parent, user int64 }

type mockAllocationRepo struct {
	parentExists func(id int64) bool
	users        *mockUserRepo
	pairs        map[pair]bool
	insertCalls  int
}

func newMockAllocationRepo(parentExists func(id int64) bool, users *mockUserRepo) *mockAllocationRepo {
	return &mockAllocationRepo{parentExists: parentExists, users: users, pairs: make(map[pair]bool)}
}

func (m *mockAllocationRepo) ParentExists(_ context.Context, parentID int64) (bool, error) {
	return m.parentExists(parentID), nil
}

func (m *mockAllocationRepo) UserExists(_ context.Context, userID int64) (bool, error) {
	_, ok := m.users.users[userID]
	return ok, nil
}

func (m *mockAllocationRepo) CountUsers(_ context.Context, ids []int64) (int64, error) {
	var n int64
	for _, id := range ids {
		if _, ok := m.users.users[id]; ok {
			n++
		}
	}
	return n, nil
}

func (m *mockAllocationRepo) Insert(_ context.Context, parentID int64, userIDs []int64) (int64, error) {
	m.insertCalls++
	var n int64
	for _, uid := range userIDs {
		p := pair{parentID, uid}
		if !m.pairs[p] {
			m.pairs[p] = true
			n++
		}
	}
	return n, nil
}

func (m *mockAllocationRepo) DeleteAll(_ context.Context, parentID int64) (int64, error) {
	var n int64
	for p := range m.pairs {
		if p.parent == parentID {
			delete(m.pairs, p)
			n++
		}
	}
	return n, nil
}

func (m *mockAllocationRepo) Delete(_ context.Context, parentID, userID int64) (int64, error) {
	p := pair{parentID, userID}
	if !m.pairs[p] {
		return 0, nil
	}
	delete(m.pairs, p)
	return 1, nil
}

// ── mock aggregate ──

type mockRepos struct {
	users          *mockUserRepo
	roles          *mockRoleRepo
	courses        *mockCourseRepo
	sessions       *mockSessionRepo
	courseLecturer *mockAllocationRepo
	userRole       *mockAllocationRepo
}

func newMockRepository() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		users:    newMockUserRepo(),
		roles:    newMockRoleRepo(),
		courses:  newMockCourseRepo(),
		sessions: newMockSessionRepo(),
	}
	m.courseLecturer = newMockAllocationRepo(func(id int64) bool {
		_, ok := m.courses.courses[id]
		return ok
	}, m.users)
	m.userRole = newMockAllocationRepo(func(id int64) bool {
		_, ok := m.roles.roles[id]
		return ok
	}, m.users)

	repo := &repository.Repository{
		User:           m.users,
		Role:           m.roles,
		Course:         m.courses,
		Session:        m.sessions,
		CourseLecturer: m.courseLecturer,
		UserRole:       m.userRole,
	}
	return repo, m
}
