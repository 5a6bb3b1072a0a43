package scorecarddb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	scorecardtypes "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/domain/types"
	"github.com/google/uuid"
)

const (
	playersDir    = "players"
	scorecardsDir = "scorecards"
)

// FileRepository stores one pretty-printed JSON file per entity:
//
//	<base>/players/<id>.json
//	<base>/scorecards/<round_id>.json
//
// Writes overwrite in place; there is no locking or versioning.
type FileRepository struct {
	base string
}

// NewFileRepository creates base and its subdirectories if needed.
func NewFileRepository(base string) (*FileRepository, error) {
	for _, dir := range []string{base, filepath.Join(base, playersDir), filepath.Join(base, scorecardsDir)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, persistenceError("create data directory", err)
		}
	}
	return &FileRepository{base: base}, nil
}

// Dir returns the repository's base directory.
func (r *FileRepository) Dir() string { return r.base }

func (r *FileRepository) playerPath(id uuid.UUID) string {
	return filepath.Join(r.base, playersDir, id.String()+".json")
}

func (r *FileRepository) scorecardPath(roundID uuid.UUID) string {
	return filepath.Join(r.base, scorecardsDir, roundID.String()+".json")
}

func (r *FileRepository) SavePlayer(_ context.Context, player scorecardtypes.Player) error {
	return writeJSON(r.playerPath(player.ID), player)
}

func (r *FileRepository) GetPlayer(_ context.Context, id uuid.UUID) (scorecardtypes.Player, error) {
	var p scorecardtypes.Player
	if err := readJSON(r.playerPath(id), &p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return scorecardtypes.Player{}, fmt.Errorf("player %s: %w", id, ErrNotFound)
		}
		return scorecardtypes.Player{}, err
	}
	return p, nil
}

func (r *FileRepository) FindPlayerByName(ctx context.Context, name string) (scorecardtypes.Player, error) {
	players, err := r.ListPlayers(ctx)
	if err != nil {
		return scorecardtypes.Player{}, err
	}
	for _, p := range players {
		if scorecardtypes.SameName(p.Name, name) {
			return p, nil
		}
	}
	return scorecardtypes.Player{}, fmt.Errorf("player %q: %w", name, ErrNotFound)
}

func (r *FileRepository) ListPlayers(_ context.Context) ([]scorecardtypes.Player, error) {
	var players []scorecardtypes.Player
	err := r.each(playersDir, func(path string) error {
		var p scorecardtypes.Player
		if err := readJSON(path, &p); err != nil {
			return err
		}
		players = append(players, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortPlayers(players)
	return players, nil
}

func (r *FileRepository) SaveScorecard(_ context.Context, scorecard *scorecardtypes.Scorecard) error {
	return writeJSON(r.scorecardPath(scorecard.RoundID()), scorecard.Data())
}

func (r *FileRepository) GetScorecard(_ context.Context, roundID uuid.UUID) (*scorecardtypes.Scorecard, error) {
	sc, err := loadScorecard(r.scorecardPath(roundID))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("scorecard %s: %w", roundID, ErrNotFound)
	}
	return sc, err
}

func (r *FileRepository) ListScorecards(_ context.Context) ([]*scorecardtypes.Scorecard, error) {
	return r.listScorecards(func(*scorecardtypes.Scorecard) bool { return true })
}

func (r *FileRepository) ListScorecardsByPlayer(_ context.Context, playerID uuid.UUID) ([]*scorecardtypes.Scorecard, error) {
	return r.listScorecards(func(sc *scorecardtypes.Scorecard) bool { return sc.PlayerID() == playerID })
}

func (r *FileRepository) listScorecards(keep func(*scorecardtypes.Scorecard) bool) ([]*scorecardtypes.Scorecard, error) {
	var cards []*scorecardtypes.Scorecard
	err := r.each(scorecardsDir, func(path string) error {
		sc, err := loadScorecard(path)
		if err != nil {
			return err
		}
		if keep(sc) {
			cards = append(cards, sc)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortScorecards(cards)
	return cards, nil
}

// each calls fn for every .json file in the named subdirectory.
func (r *FileRepository) each(sub string, fn func(path string) error) error {
	entries, err := os.ReadDir(filepath.Join(r.base, sub))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return persistenceError("read "+sub, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		if err := fn(filepath.Join(r.base, sub, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

func loadScorecard(path string) (*scorecardtypes.Scorecard, error) {
	var d scorecardtypes.ScorecardData
	if err := readJSON(path, &d); err != nil {
		return nil, err
	}
	sc, err := scorecardtypes.ScorecardFromData(d)
	if err != nil {
		return nil, persistenceError("decode "+filepath.Base(path), err)
	}
	return sc, nil
}

func writeJSON(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return persistenceError("encode "+filepath.Base(path), err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return persistenceError("create "+filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, append(raw, '\n'), 0o644); err != nil {
		return persistenceError("write "+filepath.Base(path), err)
	}
	return nil
}

// readJSON passes fs.ErrNotExist through untouched so callers can map it to
// ErrNotFound.
func readJSON(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return persistenceError("read "+filepath.Base(path), err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return persistenceError("decode "+filepath.Base(path), err)
	}
	return nil
}

var _ Repository = (*FileRepository)(nil)
