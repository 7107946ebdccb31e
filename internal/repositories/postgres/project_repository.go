package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"changemakers-go/internal/model"
	"changemakers-go/internal/repositories"
)

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const projectColumns = `id, title, description, location, category, progress,
	funding_raised, funding_goal, volunteers, image_url, members`

const listProjects = `SELECT ` + projectColumns + ` FROM projects ORDER BY seq`

const getProject = `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

const lockProject = `SELECT ` + projectColumns + ` FROM projects WHERE id = $1 FOR UPDATE`

const insertProject = `INSERT INTO projects (` + projectColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (id) DO NOTHING`

const upsertProject = `INSERT INTO projects (` + projectColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (id) DO UPDATE SET
	title = EXCLUDED.title,
	description = EXCLUDED.description,
	location = EXCLUDED.location,
	category = EXCLUDED.category,
	progress = EXCLUDED.progress,
	funding_raised = EXCLUDED.funding_raised,
	funding_goal = EXCLUDED.funding_goal,
	volunteers = EXCLUDED.volunteers,
	image_url = EXCLUDED.image_url,
	members = EXCLUDED.members,
	updated_at = NOW()`

type ProjectRepository struct {
	db DBTX
}

func NewProjectRepository(db DBTX) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	rows, err := r.db.Query(ctx, listProjects)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	projects, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Project, error) {
		return scanProject(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (r *ProjectRepository) Get(ctx context.Context, id string) (model.Project, error) {
	project, err := scanProject(r.db.QueryRow(ctx, getProject, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Project{}, fmt.Errorf("project %s: %w", id, repositories.ErrNotFound)
	}
	if err != nil {
		return model.Project{}, fmt.Errorf("get project %s: %w", id, err)
	}
	return project, nil
}

func (r *ProjectRepository) Create(ctx context.Context, p model.Project) error {
	tag, err := r.db.Exec(ctx, insertProject,
		p.ID, p.Title, p.Description, p.Location, p.Category, p.Progress,
		p.FundingRaised, p.FundingGoal, p.Volunteers, p.ImageURL, p.Members,
	)
	if err != nil {
		return fmt.Errorf("create project %s: %w", p.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", p.ID, repositories.ErrAlreadyExists)
	}
	return nil
}

func (r *ProjectRepository) Upsert(ctx context.Context, p model.Project) (*model.Project, bool, error) {
	var previous *model.Project
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		existing, err := scanProject(tx.QueryRow(ctx, lockProject, p.ID))
		switch {
		case errors.Is(err, pgx.ErrNoRows):
		case err != nil:
			return err
		default:
			previous = &existing
		}

		_, err = tx.Exec(ctx, upsertProject,
			p.ID, p.Title, p.Description, p.Location, p.Category, p.Progress,
			p.FundingRaised, p.FundingGoal, p.Volunteers, p.ImageURL, p.Members,
		)
		return err
	})
	if err != nil {
		return nil, false, fmt.Errorf("upsert project %s: %w", p.ID, err)
	}
	return previous, previous == nil, nil
}

func scanProject(row pgx.Row) (model.Project, error) {
	var p model.Project
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Location, &p.Category, &p.Progress,
		&p.FundingRaised, &p.FundingGoal, &p.Volunteers, &p.ImageURL, &p.Members,
	)
	return p, err
}
