package services

import (
	"context"
	"strings"

	"github.com/marcotte/inscripto/internal/app/models"
	"github.com/marcotte/inscripto/internal/app/repositories"
	"github.com/marcotte/inscripto/internal/pkg/apperrors"
)

// In-memory fakes for the storage ports. They keep just enough behavior for
// the services under test: filtering mirrors the repository queries.

type fakeStudentStore struct {
	students map[string]*models.Student
	err      error
}

func (f *fakeStudentStore) GetByCode(_ context.Context, code string) (*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	if s, ok := f.students[code]; ok {
		return s, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) GetAll(_ context.Context) ([]*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*models.Student, 0, len(f.students))
	for _, s := range f.students {
		out = append(out, s)
	}
	return out, nil
}

type fakeCourseStore struct {
	courses map[string]*models.Course
	err     error
}

func (f *fakeCourseStore) GetBySigle(_ context.Context, sigle string) (*models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	if c, ok := f.courses[sigle]; ok {
		return c, nil
	}
	return nil, apperrors.ErrCourseNotFound
}

func (f *fakeCourseStore) List(_ context.Context, filter repositories.CourseFilter) ([]*models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.Course
	for _, c := range f.courses {
		if filter.Text == "" && filter.DepartmentPrefix == "" {
			out = append(out, c)
			continue
		}
		lowered := strings.ToLower(filter.Text)
		if lowered != "" && (strings.Contains(strings.ToLower(c.Title), lowered) ||
			strings.HasPrefix(strings.ToLower(c.Sigle), lowered)) {
			out = append(out, c)
			continue
		}
		if filter.DepartmentPrefix != "" && c.Department == filter.DepartmentPrefix {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeCurriculumStore struct {
	entries map[string]*models.CurriculumEntry // keyed programCode+"/"+sigle
	courses map[string][]*models.Course        // keyed programCode
	err     error
}

func (f *fakeCurriculumStore) GetEntry(_ context.Context, programCode, sigle string) (*models.CurriculumEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.entries[programCode+"/"+sigle], nil
}

func (f *fakeCurriculumStore) ListCourses(_ context.Context, programCode string) ([]*models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.courses[programCode], nil
}

type fakeOfferingStore struct {
	offerings []*models.Offering
	err       error
}

func (f *fakeOfferingStore) GetBySigleAndTerm(_ context.Context, sigle, term string) (*models.Offering, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, o := range f.offerings {
		if o.Sigle == sigle && o.Term == term {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOfferingStore) ListByTerm(_ context.Context, term string) ([]*models.Offering, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.Offering
	for _, o := range f.offerings {
		if o.Term == term {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakeEnrollmentStore struct {
	enrollments []*models.Enrollment
	nextID      int64
	deleted     []int64
	findErr     error
	createErr   error
	deleteErr   error
}

func (f *fakeEnrollmentStore) Find(_ context.Context, filter repositories.EnrollmentFilter) ([]*models.Enrollment, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []*models.Enrollment
	for _, e := range f.enrollments {
		if filter.CodePermanent != "" && e.CodePermanent != filter.CodePermanent {
			continue
		}
		if filter.Sigle != "" && e.Sigle != filter.Sigle {
			continue
		}
		if filter.Term != "" && e.Term != filter.Term {
			continue
		}
		if filter.Year != 0 && e.Year != filter.Year {
			continue
		}
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEnrollmentStore) Create(_ context.Context, enrollment *models.Enrollment) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, e := range f.enrollments {
		if e.CodePermanent == enrollment.CodePermanent && e.Sigle == enrollment.Sigle &&
			e.Term == enrollment.Term && e.Year == enrollment.Year && e.Status == models.StatusEnrolled {
			return apperrors.ErrAlreadyEnrolled
		}
	}
	f.nextID++
	enrollment.ID = f.nextID
	f.enrollments = append(f.enrollments, enrollment)
	return nil
}

func (f *fakeEnrollmentStore) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, e := range f.enrollments {
		if e.ID == id {
			f.enrollments = append(f.enrollments[:i], f.enrollments[i+1:]...)
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return apperrors.ErrEnrollmentNotFound
}
