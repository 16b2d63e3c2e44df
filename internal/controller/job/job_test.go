package job

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusjobs-backend/internal/auth"
	"campusjobs-backend/internal/jobservice"
	"campusjobs-backend/internal/memstore"
	"campusjobs-backend/internal/middleware"
	"campusjobs-backend/internal/model"
	"campusjobs-backend/internal/testutil"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type fixture struct {
	store  *memstore.Store
	tokens *auth.TokenManager
	router *gin.Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memstore.New()
	tokens := auth.NewTokenManager("secret", "campusjobs", time.Hour)
	jc := NewJobController(jobservice.New(store, nil, nil))

	r := gin.New()
	jobs := r.Group("/jobs", middleware.RequireAuth(store, tokens))
	posters := middleware.CheckRole(model.RoleAlumni, model.RoleFaculty, model.RoleAdmin)
	jobs.POST("", posters, jc.CreateJob)
	jobs.GET("", jc.ListJobs)
	jobs.GET("/my/posted", posters, jc.MyPostedJobs)
	jobs.GET("/:id", jc.GetJob)
	jobs.POST("/:id/apply", jc.ApplyJob)
	jobs.GET("/:id/applicants", jc.GetApplicants)
	jobs.PATCH("/:id/status", middleware.CheckRole(model.RoleAdmin), jc.UpdateJobStatus)
	jobs.PATCH("/:id/applicants/:user_id/status", jc.UpdateApplicantStatus)

	return &fixture{store: store, tokens: tokens, router: r}
}

// user creates an account and returns its id and an access token.
func (f *fixture) user(t *testing.T, role model.Role, skills ...string) (uuid.UUID, string) {
	t.Helper()
	u := model.User{Username: uuid.NewString(), Role: role, Name: string(role), Skills: skills}
	require.NoError(t, f.store.CreateUser(context.Background(), &u))
	token, _, err := f.tokens.Generate(u.ID)
	require.NoError(t, err)
	return u.ID, token
}

func jobBody(title string, skills ...string) gin.H {
	return gin.H{
		"title":           title,
		"company":         "TechNova",
		"location":        "Bangkok",
		"employment_type": "Internship",
		"mode":            "Hybrid",
		"description":     "<p>Build and run our Go services.</p><script>alert(1)</script>",
		"required_skills": skills,
	}
}

func (f *fixture) postJob(t *testing.T, token, title string, skills ...string) uint {
	t.Helper()
	rec, resp := testutil.MakeJSONRequest(jobBody(title, skills...), token, f.router, "/jobs", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return uint(resp["id"].(float64))
}

func (f *fixture) openJob(t *testing.T, title string, skills ...string) uint {
	t.Helper()
	_, admin := f.user(t, model.RoleAdmin)
	return f.postJob(t, admin, title, skills...)
}

func TestCreateJob(t *testing.T) {
	f := newFixture(t)
	_, alumni := f.user(t, model.RoleAlumni)

	rec, resp := testutil.MakeJSONRequest(jobBody("Backend Intern", " Go ", "SQL", "go"), alumni, f.router, "/jobs", http.MethodPost)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "pending", resp["status"])
	assert.Equal(t, "alumni", resp["posted_by_role"])
	assert.Equal(t, []interface{}{"go", "sql"}, resp["required_skills"])
	assert.NotContains(t, resp["description"], "<script>")
}

func TestCreateJob_admin(t *testing.T) {
	f := newFixture(t)
	_, admin := f.user(t, model.RoleAdmin)

	rec, resp := testutil.MakeJSONRequest(jobBody("Backend Intern", "go"), admin, f.router, "/jobs", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "open", resp["status"])
}

func TestCreateJob_rejects(t *testing.T) {
	f := newFixture(t)
	_, student := f.user(t, model.RoleStudent)
	_, faculty := f.user(t, model.RoleFaculty)

	rec, _ := testutil.MakeJSONRequest(jobBody("Backend Intern", "go"), student, f.router, "/jobs", http.MethodPost)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	unknown := jobBody("Backend Intern", "go")
	unknown["salary"] = 100
	rec, resp := testutil.MakeJSONRequest(unknown, faculty, f.router, "/jobs", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp["error"], "Invalid request body")

	noSkills := jobBody("Backend Intern")
	rec, _ = testutil.MakeJSONRequest(noSkills, faculty, f.router, "/jobs", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	badMode := jobBody("Backend Intern", "go")
	badMode["mode"] = "Underwater"
	rec, _ = testutil.MakeJSONRequest(badMode, faculty, f.router, "/jobs", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = testutil.MakeJSONRequest(jobBody("Backend Intern", "go"), "", f.router, "/jobs", http.MethodPost)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListJobs_studentRanking(t *testing.T) {
	f := newFixture(t)
	f.openJob(t, "React Dev", "react")
	f.openJob(t, "Go Dev", "go", "sql")
	_, alumni := f.user(t, model.RoleAlumni)
	f.postJob(t, alumni, "Pending Dev", "go")
	_, student := f.user(t, model.RoleStudent, "go", "sql")

	rec, resp := testutil.MakeJSONRequest(nil, student, f.router, "/jobs", http.MethodGet)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.EqualValues(t, 2, resp["total"])
	assert.EqualValues(t, 2, resp["count"])
	assert.EqualValues(t, 1, resp["page"])
	assert.EqualValues(t, 20, resp["limit"])

	data := testutil.Items(resp, "data")
	require.Len(t, data, 2)
	first := data[0]
	assert.Equal(t, "Go Dev", first["title"])
	assert.EqualValues(t, 80, first["recommendation"].(map[string]interface{})["match_score"])
}

func TestListJobs_filters(t *testing.T) {
	f := newFixture(t)
	f.openJob(t, "React Dev", "react")
	f.openJob(t, "Go Dev", "go", "sql")
	_, faculty := f.user(t, model.RoleFaculty)

	rec, resp := testutil.MakeJSONRequest(nil, faculty, f.router, "/jobs?requiredSkills[]=SQL&requiredSkills[]=rust", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, resp["total"])

	rec, resp = testutil.MakeJSONRequest(nil, faculty, f.router, "/jobs?requiredSkills=react,rust", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, resp["total"])

	rec, resp = testutil.MakeJSONRequest(nil, faculty, f.router, "/jobs?search=go%20dev&mode=Hybrid&employmentType=Internship", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, resp["total"])

	for _, q := range []string{"limit=51", "limit=abc", "limit=0", "page=0", "page=-1", "mode=Underwater"} {
		rec, _ = testutil.MakeJSONRequest(nil, faculty, f.router, "/jobs?"+q, http.MethodGet)
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestMyPostedJobs(t *testing.T) {
	f := newFixture(t)
	_, alumni := f.user(t, model.RoleAlumni)
	f.postJob(t, alumni, "Mine", "go")
	f.openJob(t, "Not mine", "go")

	rec, resp := testutil.MakeJSONRequest(nil, alumni, f.router, "/jobs/my/posted", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, resp["total"])

	_, student := f.user(t, model.RoleStudent)
	rec, _ = testutil.MakeJSONRequest(nil, student, f.router, "/jobs/my/posted", http.MethodGet)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetJob(t *testing.T) {
	f := newFixture(t)
	id := f.openJob(t, "Go Dev", "go", "sql")
	_, student := f.user(t, model.RoleStudent, "go")
	path := fmt.Sprintf("/jobs/%d", id)

	rec, resp := testutil.MakeJSONRequest(nil, student, f.router, path, http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, resp["views_count"])
	assert.EqualValues(t, 40, resp["recommendation"].(map[string]interface{})["match_score"])
	assert.Equal(t, false, resp["user_apply"])
	assert.NotNil(t, resp["posted_by"])

	rec, _ = testutil.MakeJSONRequest(nil, student, f.router, "/jobs/999", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = testutil.MakeJSONRequest(nil, student, f.router, "/jobs/abc", http.MethodGet)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApplyJob(t *testing.T) {
	f := newFixture(t)
	id := f.openJob(t, "Go Dev", "go")
	_, student := f.user(t, model.RoleStudent, "go")
	path := fmt.Sprintf("/jobs/%d/apply", id)

	rec, resp := testutil.MakeJSONRequest(gin.H{"resume": "https://cdn.example.com/cv.pdf"}, student, f.router, path, http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.EqualValues(t, 1, resp["applicants_count"])

	rec, resp = testutil.MakeJSONRequest(nil, student, f.router, path, http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "You have already applied for this job", resp["error"])

	rec, resp = testutil.MakeJSONRequest(nil, student, f.router, fmt.Sprintf("/jobs/%d", id), http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, resp["user_apply"])
}

func TestApplyJob_emptyBody(t *testing.T) {
	f := newFixture(t)
	id := f.openJob(t, "Go Dev", "go")
	_, student := f.user(t, model.RoleStudent)

	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/jobs/%d/apply", id), bytes.NewReader(nil))
	req.Header.Set("Authorization", "Bearer "+student)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestApplyJob_rejects(t *testing.T) {
	f := newFixture(t)
	id := f.openJob(t, "Go Dev", "go")
	_, alumni := f.user(t, model.RoleAlumni)
	_, student := f.user(t, model.RoleStudent)

	rec, _ := testutil.MakeJSONRequest(nil, alumni, f.router, fmt.Sprintf("/jobs/%d/apply", id), http.MethodPost)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = testutil.MakeJSONRequest(gin.H{"resume": "not a url"}, student, f.router, fmt.Sprintf("/jobs/%d/apply", id), http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	pending := f.postJob(t, alumni, "Pending", "go")
	rec, _ = testutil.MakeJSONRequest(nil, student, f.router, fmt.Sprintf("/jobs/%d/apply", pending), http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApplicantsAndStatus(t *testing.T) {
	f := newFixture(t)
	_, owner := f.user(t, model.RoleFaculty)
	_, admin := f.user(t, model.RoleAdmin)
	id := f.postJob(t, owner, "Research Assistant", "python")

	rec, resp := testutil.MakeJSONRequest(gin.H{"status": "open"}, admin, f.router, fmt.Sprintf("/jobs/%d/status", id), http.MethodPatch)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "open", resp["status"])

	rec, _ = testutil.MakeJSONRequest(gin.H{"status": "closed"}, owner, f.router, fmt.Sprintf("/jobs/%d/status", id), http.MethodPatch)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = testutil.MakeJSONRequest(gin.H{"status": "archived"}, admin, f.router, fmt.Sprintf("/jobs/%d/status", id), http.MethodPatch)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	studentID, student := f.user(t, model.RoleStudent, "python")
	rec, _ = testutil.MakeJSONRequest(nil, student, f.router, fmt.Sprintf("/jobs/%d/apply", id), http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, resp = testutil.MakeJSONRequest(nil, owner, f.router, fmt.Sprintf("/jobs/%d/applicants", id), http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	applicants := testutil.Items(resp, "applicants")
	require.Len(t, applicants, 1)
	assert.Equal(t, studentID.String(), applicants[0]["user_id"])

	_, stranger := f.user(t, model.RoleFaculty)
	rec, _ = testutil.MakeJSONRequest(nil, stranger, f.router, fmt.Sprintf("/jobs/%d/applicants", id), http.MethodGet)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	statusPath := fmt.Sprintf("/jobs/%d/applicants/%s/status", id, studentID)
	rec, resp = testutil.MakeJSONRequest(gin.H{"status": "shortlisted"}, owner, f.router, statusPath, http.MethodPatch)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "shortlisted", resp["status"])

	rec, _ = testutil.MakeJSONRequest(gin.H{"status": "hired"}, stranger, f.router, statusPath, http.MethodPatch)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = testutil.MakeJSONRequest(gin.H{"status": "hired"}, owner, f.router, fmt.Sprintf("/jobs/%d/applicants/not-a-uuid/status", id), http.MethodPatch)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = testutil.MakeJSONRequest(gin.H{}, owner, f.router, statusPath, http.MethodPatch)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
