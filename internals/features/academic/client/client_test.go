package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	academicClient "gradebook_backend/internals/features/academic/client"
	academicDTO "gradebook_backend/internals/features/academic/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(srv *httptest.Server) *academicClient.Client {
	return academicClient.New(academicClient.Config{
		ClassroomURL:    srv.URL + "/classroom",
		StudentURL:      srv.URL + "/student",
		DidacticUnitURL: srv.URL + "/unit",
		CompetenceURL:   srv.URL + "/competence",
		CapacityURL:     srv.URL + "/capacity",
		StudyProgramURL: srv.URL + "/program",
		EmailURL:        srv.URL + "/email",
		CallTimeout:     time.Second,
	})
}

func TestFindStudentByID_Found(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/student/list/S1", r.URL.Path)
		json.NewEncoder(w).Encode(academicDTO.StudentDto{ID: "S1", Names: "Maria"})
	}))
	defer srv.Close()

	got := newClient(srv).FindStudentByID(context.Background(), "S1")
	require.True(t, got.Found())
	assert.Equal(t, "Maria", got.Value.Names)
}

func TestFindStudentByID_NotFoundVsUnavailable(t *testing.T) {
	status := http.StatusNotFound
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	defer srv.Close()
	c := newClient(srv)

	got := c.FindStudentByID(context.Background(), "S1")
	assert.Equal(t, academicClient.LookupNotFound, got.State)
	assert.True(t, got.Absent())
	assert.Nil(t, got.Value)

	status = http.StatusInternalServerError
	got = c.FindStudentByID(context.Background(), "S1")
	assert.Equal(t, academicClient.LookupUnavailable, got.State)
	assert.True(t, got.Absent())
}

func TestFindStudentByID_DecodeFailureIsAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not-json"))
	}))
	defer srv.Close()

	got := newClient(srv).FindStudentByID(context.Background(), "S1")
	assert.True(t, got.Absent())
}

func TestFindStudentByID_UnreachableServiceIsAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from now on

	got := newClient(srv).FindStudentByID(context.Background(), "S1")
	assert.Equal(t, academicClient.LookupUnavailable, got.State)
}

func TestListCompetencies_ErrorYieldsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	got := newClient(srv).ListCompetenciesByDidacticUnit(context.Background(), "U1")
	assert.Empty(t, got)
}

func TestListStudentsByClassroom_TraversesRoster(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/classroom/findById/C1", r.URL.Path)
		json.NewEncoder(w).Encode(academicDTO.ClassroomDto{
			ClassroomID: "C1",
			EnrollmentDetail: []academicDTO.EnrollmentDetailDto{
				{Student: academicDTO.StudentDto{ID: "S1"}},
				{Student: academicDTO.StudentDto{ID: "S2"}},
			},
		})
	}))
	defer srv.Close()

	students := newClient(srv).ListStudentsByClassroom(context.Background(), "C1")
	require.Len(t, students, 2)
	assert.Equal(t, "S1", students[0].ID)
	assert.Equal(t, "S2", students[1].ID)
}

func TestListDidacticUnitsByClassroom(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/classroom/C1/didactic-units", r.URL.Path)
		json.NewEncoder(w).Encode([]academicDTO.DidacticUnitDto{{DidacticID: "U1", Name: "Algebra"}})
	}))
	defer srv.Close()

	units := newClient(srv).ListDidacticUnitsByClassroom(context.Background(), "C1")
	require.Len(t, units, 1)
	assert.Equal(t, "Algebra", units[0].Name)
}

func TestSendEmail(t *testing.T) {
	var received academicDTO.Email
	success := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/email/send", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		json.NewDecoder(r.Body).Decode(&received)
		json.NewEncoder(w).Encode(academicDTO.EmailResponse{Success: success})
	}))
	defer srv.Close()
	c := newClient(srv)

	email := academicDTO.Email{To: "s1@example.edu", Subject: "Your grades summary", MainMessage: "hi"}
	require.NoError(t, c.SendEmail(context.Background(), email))
	assert.Equal(t, "s1@example.edu", received.To)

	// a success=false result is a delivery failure, not a silent ok
	success = false
	assert.Error(t, c.SendEmail(context.Background(), email))
}

func TestSendEmail_TransportFailureSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	err := newClient(srv).SendEmail(context.Background(), academicDTO.Email{To: "x@example.edu"})
	assert.Error(t, err)
}

func TestFetch_RespectsCallerCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	got := newClient(srv).FindStudentByID(ctx, "S1")
	assert.True(t, got.Absent())
	assert.Less(t, time.Since(start), 500*time.Millisecond, "cancellation must abandon the in-flight call")
}
