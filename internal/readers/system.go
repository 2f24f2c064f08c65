package readers

import (
	"context"
	"log/slog"

	"github.com/gridcrm/gridcrm-backend/internal/cache"
	"github.com/gridcrm/gridcrm-backend/internal/models"
	"github.com/gridcrm/gridcrm-backend/internal/sheets"
)

// Config tab layout: key in column A, value in column B.
const (
	configColKey = iota
	configColValue
)

// Users tab layout.
const (
	userColEmail = iota
	userColName
	userColRole
	userColActive
)

const (
	SystemConfigKey = "systemConfig"
	UsersKey        = "users"
)

var (
	ConfigRange = sheets.Range{Sheet: "Config", Cells: "A2:B"}
	UsersRange  = sheets.Range{Sheet: "Users", Cells: "A2:D"}
)

// System reads the Config and Users tabs.
type System struct {
	store *cache.Store
	src   sheets.Source
	log   *slog.Logger
}

func NewSystem(store *cache.Store, src sheets.Source, log *slog.Logger) *System {
	return &System{store: store, src: src, log: log}
}

// Config returns the config table as a key/value map. Duplicate keys keep
// the first row, same as every other join in the system.
func (r *System) Config(ctx context.Context) map[string]string {
	recs, err := cache.FetchAndCache(ctx, r.store, SystemConfigKey, r.src, ConfigRange, parseConfigEntry, nil)
	if err != nil {
		r.log.Error("config fetch failed", "error", err)
		return map[string]string{}
	}
	out := make(map[string]string, len(recs))
	for _, e := range recs {
		if e.Key == "" {
			continue
		}
		if _, ok := out[e.Key]; ok {
			continue
		}
		out[e.Key] = e.Value
	}
	return out
}

// Users returns the user table.
func (r *System) Users(ctx context.Context) []models.User {
	recs, err := cache.FetchAndCache(ctx, r.store, UsersKey, r.src, UsersRange, parseUser, nil)
	if err != nil {
		r.log.Error("users fetch failed", "error", err)
		return nil
	}
	return recs
}

func parseConfigEntry(row []string, idx int) models.ConfigEntry {
	return models.ConfigEntry{
		Key:   col(row, configColKey),
		Value: col(row, configColValue),
		Row:   idx + 1,
	}
}

func parseUser(row []string, idx int) models.User {
	return models.User{
		Email:  col(row, userColEmail),
		Name:   col(row, userColName),
		Role:   col(row, userColRole),
		Active: colBool(row, userColActive),
		Row:    idx + 1,
	}
}
