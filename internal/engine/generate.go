package engine

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DailyTimeLimitMinutes is the fixed lifetime of a generated daily quest.
const DailyTimeLimitMinutes = 24 * 60

// Category unlock levels. The unlocked set only ever grows with level.
const (
	LevelNearby      = 1
	LevelInteraction = 2
	LevelCourage     = 3
	LevelSocial      = 4
)

// AvailableCategories returns the categories unlocked at the given level.
func AvailableCategories(userLevel int) []Category {
	cats := []Category{CategoryNearby}
	if userLevel >= LevelInteraction {
		cats = append(cats, CategoryInteraction)
	}
	if userLevel >= LevelCourage {
		cats = append(cats, CategoryCourage)
	}
	if userLevel >= LevelSocial {
		cats = append(cats, CategorySocial)
	}
	return cats
}

// PlaceFinder resolves nearby places for a place type. Implementations fail
// with an error; the generator treats every failure as soft.
type PlaceFinder interface {
	FindNearbyPlaces(ctx context.Context, origin Location, placeType string, radiusMeters int) ([]Location, error)
}

// Generator builds daily quest sets. The rand source is injected so tests can
// fix the seed and assert exact output.
type Generator struct {
	rng    *rand.Rand
	places PlaceFinder
	log    *zap.Logger
}

// NewGenerator constructs a Generator. places may be nil when no location
// lookup is configured; log may be nil.
func NewGenerator(rng *rand.Rand, places PlaceFinder, log *zap.Logger) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{rng: rng, places: places, log: log}
}

// GenerateDailyQuests produces at most one quest per unlocked category. A
// category whose pool has no template of suitable difficulty contributes
// nothing. Repeated calls produce fresh, unrelated sets; callers decide
// whether to replace or append.
func (g *Generator) GenerateDailyQuests(ctx context.Context, userLevel int, current *Location) []Quest {
	var quests []Quest
	for _, cat := range AvailableCategories(userLevel) {
		if q, ok := g.generateForCategory(ctx, cat, userLevel, current); ok {
			quests = append(quests, q)
		}
	}
	return quests
}

func (g *Generator) generateForCategory(ctx context.Context, cat Category, userLevel int, current *Location) (Quest, bool) {
	maxDiff := Difficulty(userLevel)
	if maxDiff > MaxDifficulty {
		maxDiff = MaxDifficulty
	}

	var suitable []Template
	for _, t := range TemplatesForCategory(cat) {
		if t.Difficulty <= maxDiff {
			suitable = append(suitable, t)
		}
	}
	if len(suitable) == 0 {
		return Quest{}, false
	}

	tpl := suitable[g.rng.Intn(len(suitable))]

	loc := g.resolvePlace(ctx, tpl, current)
	desc := tpl.Description
	if loc != nil {
		name := loc.PlaceName
		if name == "" {
			name = loc.Address
		}
		desc = desc + "\n📍 " + name
	}

	return Quest{
		ID:               uuid.NewString(),
		Title:            tpl.Title,
		Description:      desc,
		Category:         cat,
		Difficulty:       tpl.Difficulty,
		Location:         loc,
		Reward:           tpl.Reward,
		Completed:        false,
		TimeLimitMinutes: DailyTimeLimitMinutes,
	}, true
}

// resolvePlace attaches a nearby place when possible. Lookup failure is soft:
// the quest is still generated, just without a location.
func (g *Generator) resolvePlace(ctx context.Context, tpl Template, current *Location) *Location {
	if current == nil || g.places == nil || len(tpl.PlaceTypes) == 0 {
		return nil
	}
	places, err := g.places.FindNearbyPlaces(ctx, *current, tpl.PlaceTypes[0], 1000)
	if err != nil {
		g.log.Warn("nearby place lookup failed",
			zap.String("place_type", tpl.PlaceTypes[0]),
			zap.Error(err))
		return nil
	}
	if len(places) == 0 {
		return nil
	}
	p := places[0]
	return &p
}
