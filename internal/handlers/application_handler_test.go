package handlers

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"jobboard/internal/dtos"
	"jobboard/internal/models"
)

func TestApplyFlow(t *testing.T) {
	env := newTestEnv(t)
	company, _ := env.seedUser(t, "Acme", "acme@example.com", models.RoleCompany)
	_, candidateToken := env.seedUser(t, "Jane", "jane@example.com", models.RoleCandidate)
	job := env.seedJob(t, company.ID, "Backend Engineer")

	body, contentType := cvUpload(t, "resume.pdf", []byte("%PDF cv"))
	w := env.do(t, http.MethodPost, "/api/applications/"+job.ID, candidateToken, body, contentType)
	if w.Code != http.StatusCreated {
		t.Fatalf("apply status = %d, body %s", w.Code, w.Body.String())
	}

	var count int64
	env.db.Model(&models.Application{}).Count(&count)
	if count != 1 {
		t.Fatalf("store has %d applications, want 1", count)
	}

	// Second submission for the same job is rejected and adds nothing.
	body, contentType = cvUpload(t, "resume.pdf", []byte("%PDF cv"))
	w = env.do(t, http.MethodPost, "/api/applications/"+job.ID, candidateToken, body, contentType)
	if w.Code != http.StatusBadRequest {
		t.Errorf("duplicate apply status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "already applied") {
		t.Errorf("duplicate apply body = %s", w.Body.String())
	}
	env.db.Model(&models.Application{}).Count(&count)
	if count != 1 {
		t.Errorf("store has %d applications after duplicate, want 1", count)
	}
}

func TestApplyWithoutCV(t *testing.T) {
	env := newTestEnv(t)
	company, _ := env.seedUser(t, "Acme", "acme@example.com", models.RoleCompany)
	_, candidateToken := env.seedUser(t, "Jane", "jane@example.com", models.RoleCandidate)
	job := env.seedJob(t, company.ID, "Backend Engineer")

	w := env.do(t, http.MethodPost, "/api/applications/"+job.ID, candidateToken,
		&bytes.Buffer{}, "application/json")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "CV file is required") {
		t.Errorf("body = %s", w.Body.String())
	}

	var count int64
	env.db.Model(&models.Application{}).Count(&count)
	if count != 0 {
		t.Errorf("store has %d applications, want 0", count)
	}
}

func TestApplyRequiresAuth(t *testing.T) {
	env := newTestEnv(t)
	company, _ := env.seedUser(t, "Acme", "acme@example.com", models.RoleCompany)
	job := env.seedJob(t, company.ID, "Backend Engineer")

	body, contentType := cvUpload(t, "resume.pdf", []byte("%PDF cv"))
	w := env.do(t, http.MethodPost, "/api/applications/"+job.ID, "", body, contentType)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestMyApplications(t *testing.T) {
	env := newTestEnv(t)
	company, _ := env.seedUser(t, "Acme", "acme@example.com", models.RoleCompany)
	_, candidateToken := env.seedUser(t, "Jane", "jane@example.com", models.RoleCandidate)
	job := env.seedJob(t, company.ID, "Backend Engineer")

	// Empty before any submissions.
	w := env.do(t, http.MethodGet, "/api/applications", candidateToken, nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var mine []dtos.MyApplication
	decodeJSON(t, w, &mine)
	if len(mine) != 0 {
		t.Errorf("got %d applications, want 0", len(mine))
	}

	body, contentType := cvUpload(t, "resume.pdf", []byte("%PDF cv"))
	if w := env.do(t, http.MethodPost, "/api/applications/"+job.ID, candidateToken, body, contentType); w.Code != http.StatusCreated {
		t.Fatalf("apply status = %d", w.Code)
	}

	w = env.do(t, http.MethodGet, "/api/applications", candidateToken, nil, "")
	decodeJSON(t, w, &mine)
	if len(mine) != 1 {
		t.Fatalf("got %d applications, want 1", len(mine))
	}
	if mine[0].Job.Title != "Backend Engineer" || mine[0].Job.Company != company.ID {
		t.Errorf("job projection = %+v", mine[0].Job)
	}
	if mine[0].Status != models.StatusPending {
		t.Errorf("status = %q, want pending", mine[0].Status)
	}
}

func TestJobApplications(t *testing.T) {
	env := newTestEnv(t)
	company, companyToken := env.seedUser(t, "Acme", "acme@example.com", models.RoleCompany)
	_, otherToken := env.seedUser(t, "Globex", "globex@example.com", models.RoleCompany)
	_, candidateToken := env.seedUser(t, "Jane", "jane@example.com", models.RoleCandidate)
	job := env.seedJob(t, company.ID, "Backend Engineer")

	body, contentType := cvUpload(t, "resume.pdf", []byte("%PDF cv"))
	if w := env.do(t, http.MethodPost, "/api/applications/"+job.ID, candidateToken, body, contentType); w.Code != http.StatusCreated {
		t.Fatalf("apply status = %d", w.Code)
	}

	w := env.do(t, http.MethodGet, "/api/applications/job/"+job.ID, companyToken, nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var got []dtos.JobApplication
	decodeJSON(t, w, &got)
	if len(got) != 1 {
		t.Fatalf("got %d applications, want 1", len(got))
	}
	if got[0].User.Name != "Jane" || got[0].User.Email != "jane@example.com" {
		t.Errorf("applicant projection = %+v", got[0].User)
	}

	// Another company may not read them; a candidate is blocked by the
	// role gate before the handler runs.
	if w := env.do(t, http.MethodGet, "/api/applications/job/"+job.ID, otherToken, nil, ""); w.Code != http.StatusForbidden {
		t.Errorf("other company status = %d, want 403", w.Code)
	}
	if w := env.do(t, http.MethodGet, "/api/applications/job/"+job.ID, candidateToken, nil, ""); w.Code != http.StatusForbidden {
		t.Errorf("candidate status = %d, want 403", w.Code)
	}
}

func TestDownloadCV(t *testing.T) {
	env := newTestEnv(t)
	company, _ := env.seedUser(t, "Acme", "acme@example.com", models.RoleCompany)
	_, candidateToken := env.seedUser(t, "Jane", "jane@example.com", models.RoleCandidate)
	job := env.seedJob(t, company.ID, "Backend Engineer")

	content := []byte("%PDF exact bytes")
	body, contentType := cvUpload(t, "resume.pdf", content)
	if w := env.do(t, http.MethodPost, "/api/applications/"+job.ID, candidateToken, body, contentType); w.Code != http.StatusCreated {
		t.Fatalf("apply status = %d", w.Code)
	}

	var application models.Application
	if err := env.db.First(&application).Error; err != nil {
		t.Fatalf("load application: %v", err)
	}

	w := env.do(t, http.MethodGet, "/api/applications/download/"+application.CV, candidateToken, nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("download status = %d, body %s", w.Code, w.Body.String())
	}
	if !bytes.Equal(w.Body.Bytes(), content) {
		t.Errorf("downloaded bytes differ from stored bytes")
	}

	if w := env.do(t, http.MethodGet, "/api/applications/download/doesnotexist.pdf", candidateToken, nil, ""); w.Code != http.StatusNotFound {
		t.Errorf("missing file status = %d, want 404", w.Code)
	}
	if w := env.do(t, http.MethodGet, "/api/applications/download/"+application.CV, "", nil, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated download status = %d, want 401", w.Code)
	}
}
