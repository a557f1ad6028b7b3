// file: internals/features/academic/client/client.go
//
// Typed gateway to the sibling academic services. Reads follow the
// fetch-or-absent policy: a failed single read settles as an absent
// Lookup, a failed list read settles as an empty slice. Only the email
// send propagates its failure, because delivery has a user-visible
// side effect.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"gradebook_backend/internals/configs"
	academicDTO "gradebook_backend/internals/features/academic/dto"
)

type Config struct {
	ClassroomURL    string
	StudentURL      string
	DidacticUnitURL string
	CompetenceURL   string
	CapacityURL     string
	StudyProgramURL string
	EmailURL        string

	// CallTimeout bounds every single outbound call; it nests under the
	// caller's context so an abandoned request cancels in-flight calls.
	CallTimeout time.Duration
}

type Client struct {
	cfg  Config
	http *http.Client
}

func New(cfg Config) *Client {
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = 5 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.CallTimeout},
	}
}

// NewFromEnv builds the client from the loaded configs package.
func NewFromEnv() *Client {
	return New(Config{
		ClassroomURL:    configs.ClassroomServiceURL,
		StudentURL:      configs.StudentServiceURL,
		DidacticUnitURL: configs.DidacticUnitServiceURL,
		CompetenceURL:   configs.CompetenceServiceURL,
		CapacityURL:     configs.CapacityServiceURL,
		StudyProgramURL: configs.StudyProgramServiceURL,
		EmailURL:        configs.EmailServiceURL,
		CallTimeout:     configs.HTTPClientTimeout,
	})
}

/* =========================================================
   Fetch core (single attempt, per-call deadline)
   ========================================================= */

func (c *Client) getJSON(ctx context.Context, url string, out any) (status int, err error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.CallTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("build request %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, fmt.Errorf("GET %s: HTTP %d", url, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("decode %s: %w", url, err)
	}
	return resp.StatusCode, nil
}

// fetchOne swallows every failure into an absent Lookup; callers must
// treat absence as a normal outcome, not an exception.
func fetchOne[T any](c *Client, ctx context.Context, url string) Lookup[T] {
	var v T
	status, err := c.getJSON(ctx, url, &v)
	if err != nil {
		log.Printf("[GATEWAY] fetch %s failed: %v", url, err)
		if status == http.StatusNotFound {
			return notFound[T]()
		}
		return unavailable[T]()
	}
	return found(&v)
}

// fetchList degrades to an empty slice on any failure.
func fetchList[T any](c *Client, ctx context.Context, url string) []T {
	var vs []T
	if _, err := c.getJSON(ctx, url, &vs); err != nil {
		log.Printf("[GATEWAY] list %s failed: %v", url, err)
		return nil
	}
	return vs
}

/* =========================================================
   Single-item fetches
   ========================================================= */

func (c *Client) FindStudentByID(ctx context.Context, studentID string) Lookup[academicDTO.StudentDto] {
	return fetchOne[academicDTO.StudentDto](c, ctx, c.cfg.StudentURL+"/list/"+studentID)
}

func (c *Client) FindClassroomByID(ctx context.Context, classroomID string) Lookup[academicDTO.ClassroomDto] {
	return fetchOne[academicDTO.ClassroomDto](c, ctx, c.cfg.ClassroomURL+"/findById/"+classroomID)
}

func (c *Client) FindDidacticUnitByID(ctx context.Context, didacticUnitID string) Lookup[academicDTO.DidacticUnitDto] {
	return fetchOne[academicDTO.DidacticUnitDto](c, ctx, c.cfg.DidacticUnitURL+"/"+didacticUnitID)
}

func (c *Client) FindCompetencyByID(ctx context.Context, competencyID string) Lookup[academicDTO.CompetenceDto] {
	return fetchOne[academicDTO.CompetenceDto](c, ctx, c.cfg.CompetenceURL+"/"+competencyID)
}

func (c *Client) FindCapacityByID(ctx context.Context, capacityID string) Lookup[academicDTO.CapacityDto] {
	return fetchOne[academicDTO.CapacityDto](c, ctx, c.cfg.CapacityURL+"/list/"+capacityID)
}

/* =========================================================
   Collection fetches
   ========================================================= */

func (c *Client) ListActiveStudyPrograms(ctx context.Context) []academicDTO.StudyProgramDto {
	return fetchList[academicDTO.StudyProgramDto](c, ctx, c.cfg.StudyProgramURL+"/list/active")
}

func (c *Client) ListDidacticUnitsByProgram(ctx context.Context, programID string) []academicDTO.DidacticUnitDto {
	return fetchList[academicDTO.DidacticUnitDto](c, ctx, c.cfg.DidacticUnitURL+"/program/"+programID)
}

func (c *Client) ListClassroomsByDidacticUnit(ctx context.Context, didacticUnitID string) []academicDTO.ClassroomDto {
	return fetchList[academicDTO.ClassroomDto](c, ctx, c.cfg.ClassroomURL+"/didactic-unit/"+didacticUnitID)
}

func (c *Client) ListClassroomsByStudyProgram(ctx context.Context, studyProgramID string) []academicDTO.ClassroomDto {
	return fetchList[academicDTO.ClassroomDto](c, ctx, c.cfg.ClassroomURL+"/study-program/"+studyProgramID+"/classrooms")
}

func (c *Client) ListDidacticUnitsByClassroom(ctx context.Context, classroomID string) []academicDTO.DidacticUnitDto {
	return fetchList[academicDTO.DidacticUnitDto](c, ctx, c.cfg.ClassroomURL+"/"+classroomID+"/didactic-units")
}

func (c *Client) ListCompetenciesByDidacticUnit(ctx context.Context, didacticUnitID string) []academicDTO.CompetenceDto {
	return fetchList[academicDTO.CompetenceDto](c, ctx, c.cfg.CompetenceURL+"/didactic-unit/"+didacticUnitID+"/competencies")
}

func (c *Client) ListCapacitiesByCompetence(ctx context.Context, competenceID string) []academicDTO.CapacityDto {
	return fetchList[academicDTO.CapacityDto](c, ctx, c.cfg.CapacityURL+"/competency/"+competenceID+"/capacities")
}

// ListStudentsByClassroom traverses the classroom roster: one classroom
// fetch, then the students unwrapped from its enrollment entries.
func (c *Client) ListStudentsByClassroom(ctx context.Context, classroomID string) []academicDTO.StudentDto {
	classroom := c.FindClassroomByID(ctx, classroomID)
	if classroom.Absent() {
		return nil
	}
	students := make([]academicDTO.StudentDto, 0, len(classroom.Value.EnrollmentDetail))
	for _, detail := range classroom.Value.EnrollmentDetail {
		students = append(students, detail.Student)
	}
	return students
}

/* =========================================================
   Email send (failures always surface)
   ========================================================= */

func (c *Client) SendEmail(ctx context.Context, email academicDTO.Email) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.CallTimeout)
	defer cancel()

	payload, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.EmailURL+"/send", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("email service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("email service answered HTTP %d", resp.StatusCode)
	}

	var result academicDTO.EmailResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode email response: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("email delivery rejected: %s", result.Message)
	}
	log.Printf("[GATEWAY] email sent to %s", email.To)
	return nil
}
