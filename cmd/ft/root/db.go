package root

import (
	"context"
	"database/sql"
	"time"

	"flavortown/internal/engine"
	"flavortown/internal/storage"
)

func (a *app) openDB(ctx context.Context) (*sql.DB, func(), error) {
	db, err := storage.Open(ctx, a.cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

// openService opens the state store and a Service over it. cleanup waits for
// background work before closing the database.
func (a *app) openService(ctx context.Context) (*engine.Service, *storage.SQLiteStore, func(), error) {
	loc, err := a.cfg.Location()
	if err != nil {
		return nil, nil, nil, err
	}
	db, closeDB, err := a.openDB(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	store := storage.NewSQLiteStore(db, a.cfg.DBPath)
	sess := engine.NewSession(time.Now())
	sess.IdleTimeout = a.cfg.SessionIdle
	svc := engine.NewService(engine.Options{
		Store:    store,
		Session:  &sess,
		Location: loc,
		Logger:   a.log,
	})
	cleanup := func() {
		svc.Wait()
		closeDB()
	}
	return svc, store, cleanup, nil
}
