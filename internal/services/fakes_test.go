package services

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"pmportal/internship-matcher/internal/models"
	"pmportal/internship-matcher/internal/repositories"
)

// In-memory repository fakes for engine and status-machine tests.

type fakeStudentRepo struct {
	students map[uuid.UUID]*models.Student
	failIDs  map[uuid.UUID]bool
}

func newFakeStudentRepo(students ...*models.Student) *fakeStudentRepo {
	repo := &fakeStudentRepo{
		students: make(map[uuid.UUID]*models.Student),
		failIDs:  make(map[uuid.UUID]bool),
	}
	for _, s := range students {
		if s.ID == uuid.Nil {
			s.ID = uuid.New()
		}
		repo.students[s.ID] = s
	}
	return repo
}

func (r *fakeStudentRepo) Create(student *models.Student) error {
	if student.ID == uuid.Nil {
		student.ID = uuid.New()
	}
	r.students[student.ID] = student
	return nil
}

func (r *fakeStudentRepo) FindByID(id uuid.UUID) (*models.Student, error) {
	if r.failIDs[id] {
		return nil, errors.New("lookup failed")
	}
	student, ok := r.students[id]
	if !ok {
		return nil, fmt.Errorf("student %s: %w", id, repositories.ErrNotFound)
	}
	return student, nil
}

func (r *fakeStudentRepo) FindAll() ([]models.Student, error) {
	ids := make([]uuid.UUID, 0, len(r.students))
	for id := range r.students {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	students := make([]models.Student, 0, len(ids))
	for _, id := range ids {
		students = append(students, *r.students[id])
	}
	return students, nil
}

type fakeInternshipRepo struct {
	internships map[uuid.UUID]*models.Internship
}

func newFakeInternshipRepo(internships ...*models.Internship) *fakeInternshipRepo {
	repo := &fakeInternshipRepo{internships: make(map[uuid.UUID]*models.Internship)}
	for _, i := range internships {
		if i.ID == uuid.Nil {
			i.ID = uuid.New()
		}
		repo.internships[i.ID] = i
	}
	return repo
}

func (r *fakeInternshipRepo) Create(internship *models.Internship) error {
	if internship.ID == uuid.Nil {
		internship.ID = uuid.New()
	}
	r.internships[internship.ID] = internship
	return nil
}

func (r *fakeInternshipRepo) FindByID(id uuid.UUID) (*models.Internship, error) {
	internship, ok := r.internships[id]
	if !ok {
		return nil, fmt.Errorf("internship %s: %w", id, repositories.ErrNotFound)
	}
	copied := *internship
	return &copied, nil
}

func (r *fakeInternshipRepo) FindActive() ([]models.Internship, error) {
	ids := make([]uuid.UUID, 0, len(r.internships))
	for id := range r.internships {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	var active []models.Internship
	for _, id := range ids {
		if r.internships[id].IsActive {
			active = append(active, *r.internships[id])
		}
	}
	return active, nil
}

type fakeMatchRepo struct {
	pairs      map[string]bool
	created    []models.Match
	failCreate bool
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{pairs: make(map[string]bool)}
}

func pairKey(studentID, internshipID uuid.UUID) string {
	return studentID.String() + "/" + internshipID.String()
}

func (r *fakeMatchRepo) CreateBatch(matches []*models.Match) error {
	if r.failCreate {
		return errors.New("commit failed")
	}
	for _, m := range matches {
		key := pairKey(m.StudentID, m.InternshipID)
		if r.pairs[key] {
			return errors.New("duplicate match pair")
		}
	}
	for _, m := range matches {
		r.pairs[pairKey(m.StudentID, m.InternshipID)] = true
		r.created = append(r.created, *m)
	}
	return nil
}

func (r *fakeMatchRepo) ExistsForPair(studentID, internshipID uuid.UUID) (bool, error) {
	return r.pairs[pairKey(studentID, internshipID)], nil
}

func (r *fakeMatchRepo) FindByStudent(studentID uuid.UUID) ([]models.Match, error) {
	var matches []models.Match
	for _, m := range r.created {
		if m.StudentID == studentID {
			matches = append(matches, m)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].OverallScore > matches[j].OverallScore
	})
	return matches, nil
}

type fakeApplicationRepo struct {
	applications map[uuid.UUID]*models.Application
	internships  *fakeInternshipRepo
	saveCalls    int
	failSave     bool
}

func newFakeApplicationRepo(internships *fakeInternshipRepo, applications ...*models.Application) *fakeApplicationRepo {
	repo := &fakeApplicationRepo{
		applications: make(map[uuid.UUID]*models.Application),
		internships:  internships,
	}
	for _, a := range applications {
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		repo.applications[a.ID] = a
	}
	return repo
}

func (r *fakeApplicationRepo) Create(application *models.Application) error {
	if application.ID == uuid.Nil {
		application.ID = uuid.New()
	}
	r.applications[application.ID] = application
	return nil
}

func (r *fakeApplicationRepo) FindByID(id uuid.UUID) (*models.Application, error) {
	application, ok := r.applications[id]
	if !ok {
		return nil, fmt.Errorf("application %s: %w", id, repositories.ErrNotFound)
	}
	copied := *application
	return &copied, nil
}

func (r *fakeApplicationRepo) ExistsForPair(studentID, internshipID uuid.UUID) (bool, error) {
	for _, a := range r.applications {
		if a.StudentID == studentID && a.InternshipID == internshipID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) FindByStudent(studentID uuid.UUID) ([]models.Application, error) {
	var applications []models.Application
	for _, a := range r.applications {
		if a.StudentID == studentID {
			applications = append(applications, *a)
		}
	}
	return applications, nil
}

func (r *fakeApplicationRepo) FindByInternship(internshipID uuid.UUID) ([]models.Application, error) {
	var applications []models.Application
	for _, a := range r.applications {
		if a.InternshipID == internshipID {
			applications = append(applications, *a)
		}
	}
	return applications, nil
}

func (r *fakeApplicationRepo) SaveStatusChange(application *models.Application, internship *models.Internship) error {
	r.saveCalls++
	if r.failSave {
		return errors.New("commit failed")
	}
	stored, ok := r.applications[application.ID]
	if !ok {
		return fmt.Errorf("application %s: %w", application.ID, repositories.ErrNotFound)
	}
	*stored = *application
	if existing, ok := r.internships.internships[internship.ID]; ok {
		existing.FilledPositions = internship.FilledPositions
	}
	return nil
}
