package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/molcom/timeclock-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a regular (non-admin) user. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, false)
}

// SeedAdmin creates an admin user. Returns a filled domain.User.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, true)
}

func seedUser(t *testing.T, pool *pgxpool.Pool, isAdmin bool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Username:     "testuser-" + suffix,
		PasswordHash: "$2a$10$testhashtesthashtesthashtesthashtesthashtesthashtestha",
		FullName:     "Test User " + suffix,
		IsAdmin:      isAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, password_hash, full_name, is_admin, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Username, user.PasswordHash, user.FullName, user.IsAdmin, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedWorksite creates a worksite owned by the given user. Returns a filled domain.Worksite.
func SeedWorksite(t *testing.T, pool *pgxpool.Pool, createdBy uuid.UUID) domain.Worksite {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	site := domain.Worksite{
		ID:        uuid.New(),
		Name:      "Site " + suffix,
		Address:   "1 Main St " + suffix,
		Latitude:  52.37,
		Longitude: 4.89,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO worksites (id, name, address, latitude, longitude, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		site.ID, site.Name, site.Address, site.Latitude, site.Longitude, site.CreatedBy, site.CreatedAt, site.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWorksite insert worksite: %v", err)
	}

	return site
}

// SeedProject creates an active project at the given worksite. Returns a filled domain.Project.
func SeedProject(t *testing.T, pool *pgxpool.Pool, worksiteID uuid.UUID) domain.Project {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	project := domain.Project{
		ID:         uuid.New(),
		WorksiteID: worksiteID,
		Name:       "Project " + suffix,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO projects (id, worksite_id, name, description, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		project.ID, project.WorksiteID, project.Name, project.Description, project.IsActive, project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProject insert project: %v", err)
	}

	return project
}

// SeedTask creates a task owned by the given user. Returns a filled domain.Task.
func SeedTask(t *testing.T, pool *pgxpool.Pool, createdBy uuid.UUID) domain.Task {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	task := domain.Task{
		ID:        uuid.New(),
		Name:      "Task " + suffix,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO tasks (id, name, description, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		task.ID, task.Name, task.Description, task.CreatedBy, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTask insert task: %v", err)
	}

	return task
}

// SeedClosedEntry creates a completed timed entry from start to end with no break.
// Returns a filled domain.TimeEntry.
func SeedClosedEntry(t *testing.T, pool *pgxpool.Pool, userID, worksiteID uuid.UUID, start, end time.Time) domain.TimeEntry {
	t.Helper()

	entry := domain.TimeEntry{
		ID:         uuid.New(),
		UserID:     userID,
		WorksiteID: worksiteID,
		EntryType:  domain.EntryTypeTimed,
		StartTime:  &start,
		EndTime:    &end,
	}
	entry.Derive()

	insertEntry(t, pool, &entry)
	return entry
}

// SeedOpenEntry creates a running timed entry started at the given time.
// Returns a filled domain.TimeEntry with IsActive set.
func SeedOpenEntry(t *testing.T, pool *pgxpool.Pool, userID, worksiteID uuid.UUID, start time.Time) domain.TimeEntry {
	t.Helper()

	entry := domain.TimeEntry{
		ID:         uuid.New(),
		UserID:     userID,
		WorksiteID: worksiteID,
		EntryType:  domain.EntryTypeTimed,
		StartTime:  &start,
	}
	entry.Derive()

	insertEntry(t, pool, &entry)
	return entry
}

func insertEntry(t *testing.T, pool *pgxpool.Pool, entry *domain.TimeEntry) {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	entry.CreatedAt = now
	entry.UpdatedAt = now

	_, err := pool.Exec(ctx,
		`INSERT INTO time_entries
		 (id, user_id, worksite_id, project_id, entry_type, entry_date, start_time, end_time,
		  break_minutes, total_hours, notes, photo_path, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		entry.ID, entry.UserID, entry.WorksiteID, entry.ProjectID, string(entry.EntryType),
		entry.EntryDate, entry.StartTime, entry.EndTime, entry.BreakMinutes, entry.TotalHours,
		entry.Notes, entry.PhotoPath, entry.IsActive, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: insert time_entry: %v", err)
	}
}
