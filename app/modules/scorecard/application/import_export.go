package scorecardservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/domain/courses"
	scorecardtypes "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/domain/types"
	"github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/infrastructure/parsers"
	"github.com/Black-And-White-Club/golf-tracker/app/shared/results"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// ImportScorecards turns every player row of a CSV or XLSX grid into a
// scorecard for the same course and date. Rows with every hole filled are
// completed. Nothing is saved unless every row is valid.
func (s *ScorecardService) ImportScorecards(ctx context.Context, req ImportRequest) (results.OperationResult[ImportSummary, error], error) {
	return withTelemetry(s, ctx, "ImportScorecards", []attribute.KeyValue{
		attribute.String("file_name", req.FileName),
		attribute.String("course", req.Course),
	}, func(ctx context.Context) (results.OperationResult[ImportSummary, error], error) {
		parser, err := s.files.GetParser(req.FileName)
		if err != nil {
			return fail[ImportSummary](fmt.Errorf("%w: %w", ErrUnsupportedFormat, err))
		}
		sheet, err := parser.Parse(req.Data)
		if err != nil {
			return fail[ImportSummary](err)
		}
		playedOn, err := s.dates.Parse(req.Date, s.clock.Now())
		if err != nil {
			return fail[ImportSummary](err)
		}

		layout := courses.Lookup(req.Course, sheet.HoleCount())
		if len(sheet.Pars) > 0 {
			layout.Pars = sheet.Pars
		}

		var (
			summary ImportSummary
			cards   []*scorecardtypes.Scorecard
			players []scorecardtypes.Player
			created = make(map[string]scorecardtypes.Player)
		)
		for _, row := range sheet.Players {
			player, err := s.importPlayer(ctx, row.Name, req.CreatePlayers, created)
			if err != nil {
				if isDomainFailure(err) {
					return fail[ImportSummary](fmt.Errorf("row %q: %w", row.Name, err))
				}
				return results.OperationResult[ImportSummary, error]{}, err
			}

			sc, err := buildImportedCard(player.ID, scorecardtypes.NewRound(layout.Name, playedOn), layout.Pars, row.Strokes)
			if err != nil {
				return fail[ImportSummary](fmt.Errorf("row %q: %w", row.Name, err))
			}
			cards = append(cards, sc)
			players = append(players, player)
		}

		for _, row := range sheet.Players {
			if p, ok := created[strings.ToLower(row.Name)]; ok {
				if err := s.repo.SavePlayer(ctx, p); err != nil {
					return results.OperationResult[ImportSummary, error]{}, err
				}
				summary.CreatedPlayers = append(summary.CreatedPlayers, p)
				delete(created, strings.ToLower(row.Name))
			}
		}
		for i, sc := range cards {
			if err := s.repo.SaveScorecard(ctx, sc); err != nil {
				return results.OperationResult[ImportSummary, error]{}, err
			}
			if sc.IsComplete() {
				toPar, _ := sc.ToPar()
				s.metrics.RecordRoundCompleted(ctx, sc.Round().Course, sc.Total(), toPar)
			}
			summary.Scorecards = append(summary.Scorecards, newView(players[i], sc))
		}

		return results.SuccessResult[ImportSummary, error](summary), nil
	})
}

// importPlayer resolves a row's player by name, staging a new one in created
// when allowed. Staged players are keyed by lower-cased name.
func (s *ScorecardService) importPlayer(ctx context.Context, name string, create bool, created map[string]scorecardtypes.Player) (scorecardtypes.Player, error) {
	if p, ok := created[strings.ToLower(name)]; ok {
		return p, nil
	}
	player, err := s.repo.FindPlayerByName(ctx, name)
	if err == nil || !errors.Is(err, scorecardtypes.ErrNotFound) || !create {
		return player, err
	}
	player, err = scorecardtypes.NewPlayer(name, nil)
	if err != nil {
		return scorecardtypes.Player{}, err
	}
	created[strings.ToLower(name)] = player
	return player, nil
}

func buildImportedCard(playerID uuid.UUID, round scorecardtypes.Round, pars, strokes []int) (*scorecardtypes.Scorecard, error) {
	sc, err := scorecardtypes.NewScorecard(playerID, round, pars)
	if err != nil {
		return nil, err
	}
	for i, v := range strokes {
		if v == 0 {
			continue
		}
		if err := sc.RecordScore(i+1, v); err != nil {
			return nil, err
		}
	}
	if sc.AllHolesRecorded() {
		if err := sc.Complete(); err != nil {
			return nil, err
		}
	}
	return sc, nil
}

// ExportScorecard renders one scorecard as a single-player grid that
// ImportScorecards reads back.
func (s *ScorecardService) ExportScorecard(ctx context.Context, roundID uuid.UUID, format string) (results.OperationResult[ExportedFile, error], error) {
	return withTelemetry(s, ctx, "ExportScorecard", []attribute.KeyValue{
		attribute.String("round_id", roundID.String()),
		attribute.String("format", format),
	}, func(ctx context.Context) (results.OperationResult[ExportedFile, error], error) {
		writer, err := s.files.GetWriter(format)
		if err != nil {
			return fail[ExportedFile](fmt.Errorf("%w: %w", ErrUnsupportedFormat, err))
		}
		sc, err := s.repo.GetScorecard(ctx, roundID)
		if err != nil {
			return fail[ExportedFile](err)
		}
		player, err := s.playerFor(ctx, sc.PlayerID())
		if err != nil {
			return results.OperationResult[ExportedFile, error]{}, err
		}

		d := sc.Data()
		name := player.Name
		if name == "" {
			name = player.ID.String()
		}
		data, err := writer.Write(&parsers.ParsedScorecard{
			Pars:    d.Pars,
			Players: []parsers.PlayerScores{{Name: name, Strokes: d.Strokes}},
		})
		if err != nil {
			return results.OperationResult[ExportedFile, error]{}, err
		}

		return results.SuccessResult[ExportedFile, error](ExportedFile{
			FileName: exportFileName(name, d, writer.Extension()),
			Data:     data,
		}), nil
	})
}

func exportFileName(player string, d scorecardtypes.ScorecardData, ext string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, strings.TrimSpace(player))
	return fmt.Sprintf("%s_%s_%s.%s", slug, d.PlayedOn.Format("2006-01-02"), d.RoundID.String()[:8], ext)
}
