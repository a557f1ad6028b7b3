package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	academicClient "gradebook_backend/internals/features/academic/client"
	academicDTO "gradebook_backend/internals/features/academic/dto"
	noteModel "gradebook_backend/internals/features/notes/model"

	"github.com/google/uuid"
)

/* =========================================================
   In-memory NoteRepository
   ========================================================= */

type memoryNoteRepo struct {
	mu    sync.Mutex
	notes map[uuid.UUID]noteModel.NoteModel
}

func newMemoryNoteRepo() *memoryNoteRepo {
	return &memoryNoteRepo{notes: map[uuid.UUID]noteModel.NoteModel{}}
}

func (r *memoryNoteRepo) FindByID(_ context.Context, id uuid.UUID) (*noteModel.NoteModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.notes[id]; ok {
		n := m
		return &n, nil
	}
	return nil, nil
}

func (r *memoryNoteRepo) FindByStatus(_ context.Context, status string) ([]noteModel.NoteModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []noteModel.NoteModel
	for _, m := range r.notes {
		if m.NoteStatus == status {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memoryNoteRepo) FindByStudentID(_ context.Context, studentID string) ([]noteModel.NoteModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []noteModel.NoteModel
	for _, m := range r.notes {
		if m.NoteStudentID == studentID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memoryNoteRepo) FindByClassroomID(_ context.Context, classroomID string) ([]noteModel.NoteModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []noteModel.NoteModel
	for _, m := range r.notes {
		if m.NoteClassroomID == classroomID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memoryNoteRepo) FindByStudentAndCapacity(_ context.Context, studentID, capacityID string) (*noteModel.NoteModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.notes {
		if m.NoteStudentID == studentID && m.NoteCapacityID == capacityID {
			n := m
			return &n, nil
		}
	}
	return nil, nil
}

func (r *memoryNoteRepo) Create(_ context.Context, note *noteModel.NoteModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if note.NoteID == uuid.Nil {
		note.NoteID = uuid.New()
	}
	r.notes[note.NoteID] = *note
	return nil
}

func (r *memoryNoteRepo) Save(_ context.Context, note *noteModel.NoteModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes[note.NoteID] = *note
	return nil
}

/* =========================================================
   Fake academic backend (one server, prefixed per service)
   ========================================================= */

type academicFixture struct {
	mu sync.Mutex

	classrooms   map[string]academicDTO.ClassroomDto
	students     map[string]academicDTO.StudentDto
	units        map[string]academicDTO.DidacticUnitDto
	competencies map[string]academicDTO.CompetenceDto
	capacities   map[string]academicDTO.CapacityDto

	competenciesByUnit     map[string][]academicDTO.CompetenceDto
	capacitiesByCompetence map[string][]academicDTO.CapacityDto
	classroomsByUnit       map[string][]academicDTO.ClassroomDto
	unitsByClassroom       map[string][]academicDTO.DidacticUnitDto

	emailDown    bool
	emailSuccess bool
	sentEmails   []academicDTO.Email
}

func newAcademicFixture() *academicFixture {
	return &academicFixture{
		classrooms:             map[string]academicDTO.ClassroomDto{},
		students:               map[string]academicDTO.StudentDto{},
		units:                  map[string]academicDTO.DidacticUnitDto{},
		competencies:           map[string]academicDTO.CompetenceDto{},
		capacities:             map[string]academicDTO.CapacityDto{},
		competenciesByUnit:     map[string][]academicDTO.CompetenceDto{},
		capacitiesByCompetence: map[string][]academicDTO.CapacityDto{},
		classroomsByUnit:       map[string][]academicDTO.ClassroomDto{},
		unitsByClassroom:       map[string][]academicDTO.DidacticUnitDto{},
		emailSuccess:           true,
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func lookupJSON[T any](w http.ResponseWriter, r *http.Request, m map[string]T, id string) {
	if v, ok := m[id]; ok {
		writeJSON(w, v)
		return
	}
	http.NotFound(w, r)
}

func (fx *academicFixture) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/classroom/findById/", func(w http.ResponseWriter, r *http.Request) {
		fx.mu.Lock()
		defer fx.mu.Unlock()
		lookupJSON(w, r, fx.classrooms, strings.TrimPrefix(r.URL.Path, "/classroom/findById/"))
	})
	mux.HandleFunc("/classroom/didactic-unit/", func(w http.ResponseWriter, r *http.Request) {
		fx.mu.Lock()
		defer fx.mu.Unlock()
		unitID := strings.TrimPrefix(r.URL.Path, "/classroom/didactic-unit/")
		writeJSON(w, fx.classroomsByUnit[unitID])
	})
	mux.HandleFunc("/classroom/", func(w http.ResponseWriter, r *http.Request) {
		fx.mu.Lock()
		defer fx.mu.Unlock()
		rest := strings.TrimPrefix(r.URL.Path, "/classroom/")
		if classroomID, ok := strings.CutSuffix(rest, "/didactic-units"); ok {
			writeJSON(w, fx.unitsByClassroom[classroomID])
			return
		}
		http.NotFound(w, r)
	})
	mux.HandleFunc("/student/list/", func(w http.ResponseWriter, r *http.Request) {
		fx.mu.Lock()
		defer fx.mu.Unlock()
		lookupJSON(w, r, fx.students, strings.TrimPrefix(r.URL.Path, "/student/list/"))
	})
	mux.HandleFunc("/unit/", func(w http.ResponseWriter, r *http.Request) {
		fx.mu.Lock()
		defer fx.mu.Unlock()
		lookupJSON(w, r, fx.units, strings.TrimPrefix(r.URL.Path, "/unit/"))
	})
	mux.HandleFunc("/competence/didactic-unit/", func(w http.ResponseWriter, r *http.Request) {
		fx.mu.Lock()
		defer fx.mu.Unlock()
		unitID := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/competence/didactic-unit/"), "/competencies")
		writeJSON(w, fx.competenciesByUnit[unitID])
	})
	mux.HandleFunc("/competence/", func(w http.ResponseWriter, r *http.Request) {
		fx.mu.Lock()
		defer fx.mu.Unlock()
		lookupJSON(w, r, fx.competencies, strings.TrimPrefix(r.URL.Path, "/competence/"))
	})
	mux.HandleFunc("/capacity/list/", func(w http.ResponseWriter, r *http.Request) {
		fx.mu.Lock()
		defer fx.mu.Unlock()
		lookupJSON(w, r, fx.capacities, strings.TrimPrefix(r.URL.Path, "/capacity/list/"))
	})
	mux.HandleFunc("/capacity/competency/", func(w http.ResponseWriter, r *http.Request) {
		fx.mu.Lock()
		defer fx.mu.Unlock()
		competenceID := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/capacity/competency/"), "/capacities")
		writeJSON(w, fx.capacitiesByCompetence[competenceID])
	})
	mux.HandleFunc("/program/list/active", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []academicDTO.StudyProgramDto{})
	})
	mux.HandleFunc("/email/send", func(w http.ResponseWriter, r *http.Request) {
		fx.mu.Lock()
		defer fx.mu.Unlock()
		if fx.emailDown {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		var email academicDTO.Email
		json.NewDecoder(r.Body).Decode(&email)
		fx.sentEmails = append(fx.sentEmails, email)
		writeJSON(w, academicDTO.EmailResponse{Success: fx.emailSuccess, Message: "queued"})
	})

	return mux
}

func newAcademicServer(t *testing.T, fx *academicFixture) *academicClient.Client {
	t.Helper()
	srv := httptest.NewServer(fx.handler())
	t.Cleanup(srv.Close)

	return academicClient.New(academicClient.Config{
		ClassroomURL:    srv.URL + "/classroom",
		StudentURL:      srv.URL + "/student",
		DidacticUnitURL: srv.URL + "/unit",
		CompetenceURL:   srv.URL + "/competence",
		CapacityURL:     srv.URL + "/capacity",
		StudyProgramURL: srv.URL + "/program",
		EmailURL:        srv.URL + "/email",
		CallTimeout:     2 * time.Second,
	})
}

/* =========================================================
   Shared fixture data
   ========================================================= */

// seedHappyPath loads the C1/S1/U1/K1/P1 world used by the create
// workflow tests: S1 enrolled in C1 taking U1, K1 under U1, P1 under K1.
func seedHappyPath(fx *academicFixture) {
	s1 := academicDTO.StudentDto{ID: "S1", Names: "Maria", LastNamePaternal: "Quispe", LastNameMaternal: "Huaman", Email: "maria@example.edu"}
	s2 := academicDTO.StudentDto{ID: "S2", Names: "Jose", LastNamePaternal: "Rojas", LastNameMaternal: "Paredes"}
	fx.students["S1"] = s1
	fx.students["S2"] = s2

	fx.classrooms["C1"] = academicDTO.ClassroomDto{
		ClassroomID: "C1",
		Name:        "Room 101",
		Status:      "A",
		EnrollmentDetail: []academicDTO.EnrollmentDetailDto{
			{ID: "E1", Student: s1, DidacticUnit: []academicDTO.DidacticUnitRef{{DidacticID: "U1", Name: "Algebra"}}, Status: "A"},
			{ID: "E2", Student: s2, DidacticUnit: []academicDTO.DidacticUnitRef{{DidacticID: "U1", Name: "Algebra"}}, Status: "A"},
		},
	}

	fx.units["U1"] = academicDTO.DidacticUnitDto{DidacticID: "U1", Name: "Algebra", Status: "A", StudyProgramID: "SP1"}
	fx.competencies["K1"] = academicDTO.CompetenceDto{CompetencyID: "K1", Name: "Solves equations", DidacticUnitID: "U1", Status: "A"}
	fx.capacities["P1"] = academicDTO.CapacityDto{CapacityID: "P1", Name: "Linear systems", CompetencyID: "K1", Status: "A"}

	fx.competenciesByUnit["U1"] = []academicDTO.CompetenceDto{fx.competencies["K1"]}
	fx.capacitiesByCompetence["K1"] = []academicDTO.CapacityDto{fx.capacities["P1"]}
	fx.unitsByClassroom["C1"] = []academicDTO.DidacticUnitDto{fx.units["U1"]}
}

func newNote(grade float64) noteModel.NoteModel {
	return noteModel.NoteModel{
		NoteStudentID:      "S1",
		NoteClassroomID:    "C1",
		NoteDidacticUnitID: "U1",
		NoteCompetenceID:   "K1",
		NoteCapacityID:     "P1",
		NoteGrade:          grade,
	}
}
