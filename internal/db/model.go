// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Announcement struct {
		ID, Title, Content, Date string
	}
	Event struct {
		ID, Title, Description, Date, Location, ImageURL string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
	ProgramItem struct {
		ID, ProgramID, Title, Description, Presenter, Time, Order string

		Program string
	}
	ServiceProgram struct {
		ID, Title, Date, Theme, ImageURL string
	}
}{
	Announcement: struct {
		ID, Title, Content, Date string
	}{
		ID:      "id",
		Title:   "title",
		Content: "content",
		Date:    "date",
	},
	Event: struct {
		ID, Title, Description, Date, Location, ImageURL string
	}{
		ID:          "id",
		Title:       "title",
		Description: "description",
		Date:        "date",
		Location:    "location",
		ImageURL:    "image_url",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
	ProgramItem: struct {
		ID, ProgramID, Title, Description, Presenter, Time, Order string

		Program string
	}{
		ID:          "id",
		ProgramID:   "program_id",
		Title:       "title",
		Description: "description",
		Presenter:   "presenter",
		Time:        "time",
		Order:       "order",

		Program: "Program",
	},
	ServiceProgram: struct {
		ID, Title, Date, Theme, ImageURL string
	}{
		ID:       "id",
		Title:    "title",
		Date:     "date",
		Theme:    "theme",
		ImageURL: "image_url",
	},
}

var Tables = struct {
	Announcement struct {
		Name, Alias string
	}
	Event struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
	ProgramItem struct {
		Name, Alias string
	}
	ServiceProgram struct {
		Name, Alias string
	}
}{
	Announcement: struct {
		Name, Alias string
	}{
		Name:  "announcements",
		Alias: "t",
	},
	Event: struct {
		Name, Alias string
	}{
		Name:  "events",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
	ProgramItem: struct {
		Name, Alias string
	}{
		Name:  "program_items",
		Alias: "t",
	},
	ServiceProgram: struct {
		Name, Alias string
	}{
		Name:  "service_programs",
		Alias: "t",
	},
}

type Announcement struct {
	tableName struct{} `pg:"announcements,alias:t,discard_unknown_columns"`

	ID      int       `pg:"id,pk"`
	Title   string    `pg:"title,use_zero"`
	Content string    `pg:"content,use_zero"`
	Date    time.Time `pg:"date,use_zero"`
}

type Event struct {
	tableName struct{} `pg:"events,alias:t,discard_unknown_columns"`

	ID          int       `pg:"id,pk"`
	Title       string    `pg:"title,use_zero"`
	Description string    `pg:"description,use_zero"`
	Date        time.Time `pg:"date,use_zero"`
	Location    string    `pg:"location,use_zero"`
	ImageURL    *string   `pg:"image_url"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}

type ProgramItem struct {
	tableName struct{} `pg:"program_items,alias:t,discard_unknown_columns"`

	ID          int     `pg:"id,pk"`
	ProgramID   int     `pg:"program_id,use_zero"`
	Title       string  `pg:"title,use_zero"`
	Description *string `pg:"description"`
	Presenter   *string `pg:"presenter"`
	Time        *string `pg:"time"`
	Order       int     `pg:"order,use_zero"`

	Program *ServiceProgram `pg:"fk:program_id,rel:has-one"`
}

type ServiceProgram struct {
	tableName struct{} `pg:"service_programs,alias:t,discard_unknown_columns"`

	ID       int       `pg:"id,pk"`
	Title    string    `pg:"title,use_zero"`
	Date     time.Time `pg:"date,use_zero"`
	Theme    *string   `pg:"theme"`
	ImageURL *string   `pg:"image_url"`
}
