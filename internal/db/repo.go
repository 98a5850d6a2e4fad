package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

// ErrNotFound is returned by updates that matched no row.
var ErrNotFound = errors.New("record not found")

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// Events returns all events ordered by date ascending.
func (r *Repository) Events(ctx context.Context) ([]Event, error) {
	var events []Event
	err := r.db.ModelContext(ctx, &events).
		OrderExpr(`"t"."date" ASC, "t"."id" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}

	return events, nil
}

func (r *Repository) EventByID(ctx context.Context, id int) (*Event, error) {
	event := &Event{}
	err := r.db.ModelContext(ctx, event).
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get event by id: %w", err)
	}

	return event, nil
}

func (r *Repository) AddEvent(ctx context.Context, event *Event) (*Event, error) {
	if _, err := r.db.ModelContext(ctx, event).Returning("*").Insert(); err != nil {
		return nil, fmt.Errorf("failed to insert event: %w", err)
	}

	return event, nil
}

func (r *Repository) UpdateEvent(ctx context.Context, event *Event) error {
	res, err := r.db.ModelContext(ctx, event).WherePK().Update()
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	return affected(res)
}

func (r *Repository) DeleteEvent(ctx context.Context, id int) error {
	_, err := r.db.ModelContext(ctx, (*Event)(nil)).
		Where(`"t"."id" = ?`, id).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}

// Announcements returns all announcements, newest first.
func (r *Repository) Announcements(ctx context.Context) ([]Announcement, error) {
	var announcements []Announcement
	err := r.db.ModelContext(ctx, &announcements).
		OrderExpr(`"t"."date" DESC, "t"."id" DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query announcements: %w", err)
	}

	return announcements, nil
}

func (r *Repository) AnnouncementByID(ctx context.Context, id int) (*Announcement, error) {
	announcement := &Announcement{}
	err := r.db.ModelContext(ctx, announcement).
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get announcement by id: %w", err)
	}

	return announcement, nil
}

func (r *Repository) AddAnnouncement(ctx context.Context, announcement *Announcement) (*Announcement, error) {
	if _, err := r.db.ModelContext(ctx, announcement).Returning("*").Insert(); err != nil {
		return nil, fmt.Errorf("failed to insert announcement: %w", err)
	}

	return announcement, nil
}

func (r *Repository) UpdateAnnouncement(ctx context.Context, announcement *Announcement) error {
	res, err := r.db.ModelContext(ctx, announcement).WherePK().Update()
	if err != nil {
		return fmt.Errorf("failed to update announcement: %w", err)
	}

	return affected(res)
}

func (r *Repository) DeleteAnnouncement(ctx context.Context, id int) error {
	_, err := r.db.ModelContext(ctx, (*Announcement)(nil)).
		Where(`"t"."id" = ?`, id).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}

	return nil
}

// Programs returns all service programs, newest first, without items.
func (r *Repository) Programs(ctx context.Context) ([]ServiceProgram, error) {
	var programs []ServiceProgram
	err := r.db.ModelContext(ctx, &programs).
		OrderExpr(`"t"."date" DESC, "t"."id" DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query programs: %w", err)
	}

	return programs, nil
}

func (r *Repository) ProgramsCount(ctx context.Context) (int, error) {
	count, err := r.db.ModelContext(ctx, (*ServiceProgram)(nil)).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get programs count: %w", err)
	}

	return count, nil
}

func (r *Repository) ProgramByID(ctx context.Context, id int) (*ServiceProgram, error) {
	program := &ServiceProgram{}
	err := r.db.ModelContext(ctx, program).
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get program by id: %w", err)
	}

	return program, nil
}

func (r *Repository) AddProgram(ctx context.Context, program *ServiceProgram) (*ServiceProgram, error) {
	if _, err := r.db.ModelContext(ctx, program).Returning("*").Insert(); err != nil {
		return nil, fmt.Errorf("failed to insert program: %w", err)
	}

	return program, nil
}

func (r *Repository) UpdateProgram(ctx context.Context, program *ServiceProgram) error {
	res, err := r.db.ModelContext(ctx, program).WherePK().Update()
	if err != nil {
		return fmt.Errorf("failed to update program: %w", err)
	}

	return affected(res)
}

// DeleteProgram removes the program items first and then the program itself in one transaction.
func (r *Repository) DeleteProgram(ctx context.Context, id int) error {
	return r.inTx(ctx, func(tx *pg.Tx) error {
		_, err := tx.ModelContext(ctx, (*ProgramItem)(nil)).
			Where(`"t"."program_id" = ?`, id).
			Delete()
		if err != nil {
			return fmt.Errorf("failed to delete program items: %w", err)
		}

		_, err = tx.ModelContext(ctx, (*ServiceProgram)(nil)).
			Where(`"t"."id" = ?`, id).
			Delete()
		if err != nil {
			return fmt.Errorf("failed to delete program: %w", err)
		}

		return nil
	})
}

// ProgramItems returns the items of a program in display order.
func (r *Repository) ProgramItems(ctx context.Context, programID int) ([]ProgramItem, error) {
	var items []ProgramItem
	err := r.db.ModelContext(ctx, &items).
		Where(`"t"."program_id" = ?`, programID).
		OrderExpr(`"t"."order" ASC, "t"."id" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query program items: %w", err)
	}

	return items, nil
}

func (r *Repository) ProgramItemByID(ctx context.Context, id int) (*ProgramItem, error) {
	item := &ProgramItem{}
	err := r.db.ModelContext(ctx, item).
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get program item by id: %w", err)
	}

	return item, nil
}

// MaxItemOrder returns the highest order value among the program items, 0 for an empty program.
func (r *Repository) MaxItemOrder(ctx context.Context, programID int) (int, error) {
	var maxOrder int
	_, err := r.db.QueryOneContext(ctx, pg.Scan(&maxOrder),
		`SELECT COALESCE(MAX("order"), 0) FROM "program_items" WHERE "program_id" = ?`, programID)
	if err != nil {
		return 0, fmt.Errorf("failed to get max item order: %w", err)
	}

	return maxOrder, nil
}

func (r *Repository) AddProgramItem(ctx context.Context, item *ProgramItem) (*ProgramItem, error) {
	if _, err := r.db.ModelContext(ctx, item).Returning("*").Insert(); err != nil {
		return nil, fmt.Errorf("failed to insert program item: %w", err)
	}

	return item, nil
}

func (r *Repository) UpdateProgramItem(ctx context.Context, item *ProgramItem) error {
	res, err := r.db.ModelContext(ctx, item).WherePK().Update()
	if err != nil {
		return fmt.Errorf("failed to update program item: %w", err)
	}

	return affected(res)
}

func (r *Repository) DeleteProgramItem(ctx context.Context, id int) error {
	_, err := r.db.ModelContext(ctx, (*ProgramItem)(nil)).
		Where(`"t"."id" = ?`, id).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete program item: %w", err)
	}

	return nil
}

// inTx runs fn inside the current transaction when the repository is already bound to one.
func (r *Repository) inTx(ctx context.Context, fn func(tx *pg.Tx) error) error {
	if tx, ok := r.db.(*pg.Tx); ok {
		return fn(tx)
	}

	return r.db.RunInTransaction(ctx, fn)
}

func affected(res orm.Result) error {
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
