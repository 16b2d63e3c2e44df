// Package job provides HTTP handlers for job related operations.
package job

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"

	"campusjobs-backend/internal/jobservice"
	"campusjobs-backend/internal/query"
	"campusjobs-backend/internal/utilities"
)

// JobController handles job related endpoints
type JobController struct {
	Jobs *jobservice.Service
}

// NewJobController creates a new instance of JobController
func NewJobController(jobs *jobservice.Service) *JobController {
	return &JobController{
		Jobs: jobs,
	}
}

type applyInfo struct {
	Resume string `json:"resume"`
}

type statusInfo struct {
	Status string `json:"status" binding:"required"`
}

// CreateJob handles the creation of a new job.
// @Summary Create job based on given json structure
// @Description Alumni and faculty jobs wait for approval, admin jobs are open right away
// @Tags Job
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Job body jobservice.JobInput true "Input job information"
// @Success 201 {object} model.Job "Successfully create job"
// @Failure 400 {object} utilities.ErrorResponse "Invalid job struct"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Students cannot post jobs"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs [post]
func (jc *JobController) CreateJob(c *gin.Context) {
	var in jobservice.JobInput
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&in); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}
	if err := binding.Validator.ValidateStruct(&in); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	job, err := jc.Jobs.PostJob(c.Request.Context(), utilities.ExtractActor(c), in)
	if err != nil {
		utilities.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

// ListJobs returns one page of the jobs visible to the requester. Students
// get the page ordered by skill match.
// @Summary Get jobs based on query
// @Description Every query are optional. Students see open jobs only, alumni and faculty also see their own jobs, admins see everything
// @Tags Job
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param search query string false "Substring of title or company, case insensitive"
// @Param employmentType query string false "Full-Time, Internship, Part-Time, Contract or Freelance"
// @Param mode query string false "Onsite, Remote or Hybrid"
// @Param location query string false "Substring of location, case insensitive"
// @Param requiredSkills[] query []string false "Jobs requiring at least one of these skills" collectionFormat(multi)
// @Param page query int false "Page number, default 1"
// @Param limit query int false "Page size, default 20, max 50"
// @Success 200 {object} jobservice.ListResult
// @Failure 400 {object} utilities.ErrorResponse "Invalid query"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs [get]
func (jc *JobController) ListJobs(c *gin.Context) {
	page, err := utilities.IntQuery(c, "page")
	if err != nil {
		utilities.AbortWithError(c, err)
		return
	}
	limit, err := utilities.IntQuery(c, "limit")
	if err != nil {
		utilities.AbortWithError(c, err)
		return
	}

	criteria := query.Criteria{
		Search:         c.Query("search"),
		EmploymentType: c.Query("employmentType"),
		Mode:           c.Query("mode"),
		Location:       c.Query("location"),
		RequiredSkills: skillsQuery(c),
		Page:           page,
		Limit:          limit,
	}

	result, err := jc.Jobs.ListJobs(c.Request.Context(), utilities.ExtractActor(c), criteria)
	if err != nil {
		utilities.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// MyPostedJobs returns the newest jobs posted by the requester.
// @Summary Get jobs posted by current user
// @Tags Job
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} jobservice.ListResult
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Students do not post jobs"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/my/posted [get]
func (jc *JobController) MyPostedJobs(c *gin.Context) {
	result, err := jc.Jobs.MyPostedJobs(c.Request.Context(), utilities.ExtractActor(c))
	if err != nil {
		utilities.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetJob returns a job and counts the view.
// @Summary Get job by id
// @Description Students also get their match score and whether they applied
// @Tags Job
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Job ID"
// @Success 200 {object} jobservice.JobView
// @Failure 400 {object} utilities.ErrorResponse "Invalid job id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id} [get]
func (jc *JobController) GetJob(c *gin.Context) {
	id, err := jobID(c)
	if err != nil {
		utilities.AbortWithError(c, err)
		return
	}

	view, err := jc.Jobs.GetJobDetails(c.Request.Context(), utilities.ExtractActor(c), id)
	if err != nil {
		utilities.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// ApplyJob applies the requesting student to a job.
// @Summary Apply to a job
// @Description Only students can apply, once per job, while the job is open
// @Tags Job
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Job ID"
// @Param Application body applyInfo false "Optional resume URL"
// @Success 200 {object} model.Job
// @Failure 400 {object} utilities.ErrorResponse "Job not open, already applied or invalid resume"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Only students can apply"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id}/apply [post]
func (jc *JobController) ApplyJob(c *gin.Context) {
	id, err := jobID(c)
	if err != nil {
		utilities.AbortWithError(c, err)
		return
	}

	var info applyInfo
	if err := c.ShouldBindJSON(&info); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	job, err := jc.Jobs.ApplyJob(c.Request.Context(), utilities.ExtractActor(c), id, info.Resume)
	if err != nil {
		utilities.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// GetApplicants lists the applicants of a job.
// @Summary Get applicants of a job
// @Description Only the job owner and admins have access
// @Tags Job
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Job ID"
// @Success 200 {object} jobservice.ApplicantsView
// @Failure 400 {object} utilities.ErrorResponse "Invalid job id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not the owner"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id}/applicants [get]
func (jc *JobController) GetApplicants(c *gin.Context) {
	id, err := jobID(c)
	if err != nil {
		utilities.AbortWithError(c, err)
		return
	}

	view, err := jc.Jobs.GetApplicants(c.Request.Context(), utilities.ExtractActor(c), id)
	if err != nil {
		utilities.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// UpdateJobStatus moves a job to another status.
// @Summary Update job status
// @Description Admin only, status must be draft, pending, open or closed
// @Tags Job
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Job ID"
// @Param Status body statusInfo true "New status"
// @Success 200 {object} model.Job
// @Failure 400 {object} utilities.ErrorResponse "Invalid status"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not an admin"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id}/status [patch]
func (jc *JobController) UpdateJobStatus(c *gin.Context) {
	id, err := jobID(c)
	if err != nil {
		utilities.AbortWithError(c, err)
		return
	}

	var info statusInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Status must be provided"})
		return
	}

	job, err := jc.Jobs.UpdateJobStatus(c.Request.Context(), utilities.ExtractActor(c), id, info.Status)
	if err != nil {
		utilities.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// UpdateApplicantStatus changes the review status of one application.
// @Summary Update applicant status
// @Description Only the job owner and admins, status must be applied, shortlisted, rejected or hired
// @Tags Job
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Job ID"
// @Param user_id path string true "Applicant user ID"
// @Param Status body statusInfo true "New status"
// @Success 200 {object} model.Applicant
// @Failure 400 {object} utilities.ErrorResponse "Invalid status or id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not the owner"
// @Failure 404 {object} utilities.ErrorResponse "Job or applicant not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id}/applicants/{user_id}/status [patch]
func (jc *JobController) UpdateApplicantStatus(c *gin.Context) {
	id, err := jobID(c)
	if err != nil {
		utilities.AbortWithError(c, err)
		return
	}

	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid user id"})
		return
	}

	var info statusInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Status must be provided"})
		return
	}

	applicant, err := jc.Jobs.UpdateApplicantStatus(c.Request.Context(), utilities.ExtractActor(c), id, userID, info.Status)
	if err != nil {
		utilities.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, applicant)
}

// skillsQuery accepts both requiredSkills[]=a&requiredSkills[]=b and
// requiredSkills=a,b.
func skillsQuery(c *gin.Context) []string {
	skills := c.QueryArray("requiredSkills[]")
	for _, raw := range c.QueryArray("requiredSkills") {
		skills = append(skills, strings.Split(raw, ",")...)
	}
	return skills
}
