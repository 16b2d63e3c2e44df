package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"campusjobs-backend/internal/config"
	m "campusjobs-backend/internal/model"
	"campusjobs-backend/internal/utilities"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context) error

// Exported test users & jobs
var (
	TestAdminUser   m.User
	TestAlumniUser  m.User
	TestFacultyUser m.User
	TestStudent1    m.User
	TestStudent2    m.User

	// Add exported plain password
	TestSeedPassword = "SeedPass123!"

	// TestOpenJob is posted by the admin, TestPendingJob by the alumni
	TestOpenJob    m.Job
	TestPendingJob m.Job
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}
	terminate := func(ctx context.Context) error { return dbContainer.Terminate(ctx) }

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return terminate, nil, err
	}

	cfg := config.DB{
		UseConnStr: true,
		ConnStr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(cfg, zap.NewNop())
	if err != nil {
		return terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = terminate

	return terminate, db, nil
}

// seedTestData inserts one user per role, a second student and two jobs.
func seedTestData(db *DBinstanceStruct) error {
	ctx := context.Background()

	// Pre-hash shared password for all seeded users
	hashedPwd, errHash := utilities.HashPassword(TestSeedPassword)
	if errHash != nil {
		return errHash
	}

	userSpecs := []struct {
		username string
		role     m.Role
		name     string
		skills   []string
		dest     *m.User
	}{
		{"admin_user", m.RoleAdmin, "Admin", nil, &TestAdminUser},
		{"alumni_user", m.RoleAlumni, "Alice Alumni", nil, &TestAlumniUser},
		{"faculty_user", m.RoleFaculty, "Frank Faculty", nil, &TestFacultyUser},
		{"student_1", m.RoleStudent, "Sam Student", []string{"go", "sql"}, &TestStudent1},
		{"student_2", m.RoleStudent, "Sue Student", []string{"react"}, &TestStudent2},
	}
	for _, s := range userSpecs {
		u := m.User{
			ID:       uuid.New(),
			Username: s.username,
			Password: hashedPwd,
			Role:     s.role,
			Name:     s.name,
			Batch:    "2024",
			Skills:   pq.StringArray(append([]string{}, s.skills...)),
		}
		if err := db.CreateUser(ctx, &u); err != nil {
			return err
		}
		*s.dest = u
	}

	deadline := time.Now().AddDate(0, 1, 0)
	TestOpenJob = m.Job{
		Title:          "Backend Engineer Intern",
		Company:        "TechNova",
		Location:       "Bangkok (Hybrid)",
		EmploymentType: m.EmploymentInternship,
		Mode:           m.ModeHybrid,
		Description:    "Work on Go microservices and database layers.",
		RequiredSkills: pq.StringArray{"go", "sql"},
		OptionalSkills: pq.StringArray{"docker"},
		SalaryRange:    m.SalaryRange{Min: 15000, Max: 20000, Currency: "THB"},
		Deadline:       &deadline,
		PostedByID:     TestAdminUser.ID,
		PostedByRole:   m.RoleAdmin,
		Status:         m.JobStatusOpen,
	}
	if err := db.CreateJob(ctx, &TestOpenJob); err != nil {
		return err
	}

	TestPendingJob = m.Job{
		Title:          "Frontend Developer",
		Company:        "DataForge",
		Location:       "Remote",
		EmploymentType: m.EmploymentFullTime,
		Mode:           m.ModeRemote,
		Description:    "Assist building component library in React.",
		RequiredSkills: pq.StringArray{"react", "typescript"},
		OptionalSkills: pq.StringArray{},
		PostedByID:     TestAlumniUser.ID,
		PostedByRole:   m.RoleAlumni,
		Status:         m.JobStatusPending,
	}
	return db.CreateJob(ctx, &TestPendingJob)
}
