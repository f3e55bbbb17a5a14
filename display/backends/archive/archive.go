// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package archive provides a display surface that records every frame in
// a SQLite database.
//
// Each scene made active on the surface is one frame, stored as a row
// keyed by a UUID. Shapes appended to the scene update the row in place,
// so the table holds the final state of every picture in display order.
//
//	import _ "github.com/gogpu/sketch/display/backends/archive"
//
//	surf, _ := display.Open("archive", display.Options{Width: 320, Height: 240, Output: "frames.db"})
//
// An empty Output keeps the archive in memory.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/display"
	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by Frame for an unknown id.
var ErrNotFound = errors.New("archive: frame not found")

const schema = `
CREATE TABLE IF NOT EXISTS frames (
    id TEXT PRIMARY KEY,
    seq INTEGER NOT NULL,
    version INTEGER NOT NULL,
    width INTEGER NOT NULL,
    height INTEGER NOT NULL,
    created_at INTEGER NOT NULL,     -- UnixNano
    updated_at INTEGER NOT NULL,     -- UnixNano
    shapes TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_frames_seq ON frames(seq);
`

const upsertFrame = `
INSERT INTO frames (id, seq, version, width, height, created_at, updated_at, shapes)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    version = excluded.version,
    updated_at = excluded.updated_at,
    shapes = excluded.shapes`

const selectFrames = `SELECT id, seq, version, width, height, created_at, updated_at, shapes FROM frames`

func init() {
	display.Register("archive", func(opts display.Options) (display.Surface, error) {
		return Open(context.Background(), opts)
	})
}

// Frame is one recorded scene.
type Frame struct {
	ID      string
	Seq     int64
	Version uint64
	Width   int
	Height  int
	Created time.Time
	Updated time.Time
	Shapes  sketch.ShapeList
}

// Scene rebuilds the recorded scene.
func (f Frame) Scene() *sketch.Scene {
	s := sketch.NewScene()
	for _, sh := range f.Shapes {
		s.Append(sh)
	}
	return s
}

// Surface records scenes into SQLite.
type Surface struct {
	db   *sql.DB
	opts display.Options

	scene   *sketch.Scene
	frame   string
	seq     int64
	version uint64
	closed  bool
}

var (
	_ display.Surface  = (*Surface)(nil)
	_ sketch.Refresher = (*Surface)(nil)
)

// Open opens or creates the archive at opts.Output. New frames are
// numbered after the ones already stored.
func Open(ctx context.Context, opts display.Options) (*Surface, error) {
	dsn := ":memory:"
	if opts.Output != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Output), 0o755); err != nil {
			return nil, fmt.Errorf("archive: %w", err)
		}
		dsn = opts.Output + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("archive: open database: %w", err)
	}
	// One connection keeps an in-memory database alive and serializes
	// writers.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("archive: connect: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("archive: create schema: %w", err)
	}

	s := &Surface{db: db, opts: opts}
	if err := db.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) FROM frames`).Scan(&s.seq); err != nil {
		db.Close()
		return nil, fmt.Errorf("archive: read sequence: %w", err)
	}
	return s, nil
}

// SetScene starts a new frame for sc and records it.
func (s *Surface) SetScene(sc *sketch.Scene) error {
	if s.closed {
		return display.ErrClosed
	}
	if sc == s.scene {
		return s.Refresh()
	}
	s.scene = sc
	s.frame = uuid.NewString()
	s.seq++
	return s.record(time.Now())
}

// Refresh updates the current frame if the scene grew.
func (s *Surface) Refresh() error {
	if s.closed {
		return display.ErrClosed
	}
	if s.scene == nil || s.scene.Version() == s.version {
		return nil
	}
	return s.record(time.Now())
}

func (s *Surface) record(now time.Time) error {
	shapes, err := json.Marshal(sketch.ShapeList(s.scene.Shapes()))
	if err != nil {
		return fmt.Errorf("archive: encode frame: %w", err)
	}
	version := s.scene.Version()
	_, err = s.db.Exec(upsertFrame,
		s.frame, s.seq, int64(version), s.opts.Width, s.opts.Height,
		now.UnixNano(), now.UnixNano(), string(shapes))
	if err != nil {
		return fmt.Errorf("archive: record frame %s: %w", s.frame, err)
	}
	s.version = version
	sketch.Logger().Debug("archive: recorded frame", "frame", s.frame, "version", version)
	return nil
}

// Current returns the id of the frame being recorded, or "" before the
// first SetScene.
func (s *Surface) Current() string {
	return s.frame
}

// Frames returns all recorded frames in display order.
func (s *Surface) Frames(ctx context.Context) ([]Frame, error) {
	rows, err := s.db.QueryContext(ctx, selectFrames+` ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("archive: query frames: %w", err)
	}
	defer rows.Close()

	var frames []Frame
	for rows.Next() {
		f, err := scanFrame(rows)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("archive: query frames: %w", err)
	}
	return frames, nil
}

// Frame returns the frame with the given id.
func (s *Surface) Frame(ctx context.Context, id string) (Frame, error) {
	f, err := scanFrame(s.db.QueryRowContext(ctx, selectFrames+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Frame{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return f, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFrame(row scanner) (Frame, error) {
	var (
		f                Frame
		version          int64
		created, updated int64
		shapes           string
	)
	if err := row.Scan(&f.ID, &f.Seq, &version, &f.Width, &f.Height, &created, &updated, &shapes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return f, err
		}
		return f, fmt.Errorf("archive: scan frame: %w", err)
	}
	if err := json.Unmarshal([]byte(shapes), &f.Shapes); err != nil {
		return f, fmt.Errorf("archive: frame %s: %w", f.ID, err)
	}
	f.Version = uint64(version)
	f.Created = time.Unix(0, created)
	f.Updated = time.Unix(0, updated)
	return f, nil
}

// Close closes the database. Later calls are no-ops.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("archive: %w", err)
	}
	return nil
}
