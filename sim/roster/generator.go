// Package roster builds the randomized teams, skaters and officiating crew a
// bout is played with. Every draw comes from the supplied stream, so a seeded
// stream yields the same rosters every time.
package roster

import (
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/derbysim/derbysim/sim"
)

const (
	MinRosterSize = 8
	MaxRosterSize = 15

	minSpeed         = 15.0
	maxSpeed         = 20.0
	minPenaltyChance = 1.0 / 2000.0
	maxPenaltyChance = 1.0 / 1000.0
	maxNumberDigits  = 4
)

// Generator draws teams, skaters and officials.
type Generator struct {
	rng   sim.Stream
	ids   io.Reader
	title cases.Caser
}

// NewGenerator returns a generator drawing from rng. Identifiers come from
// ids; a nil reader uses crypto/rand and makes ids non-reproducible.
func NewGenerator(rng sim.Stream, ids io.Reader) *Generator {
	return &Generator{
		rng:   rng,
		ids:   ids,
		title: cases.Title(language.English),
	}
}

func (g *Generator) newID() uuid.UUID {
	if g.ids == nil {
		return uuid.New()
	}
	id, err := uuid.NewRandomFromReader(g.ids)
	if err != nil {
		return uuid.New()
	}
	return id
}

func pick[T any](rng sim.Stream, items []T) T {
	return items[rng.IntN(len(items))]
}

// Team draws a team with 8–15 skaters whose numbers are unique, sorted by number.
func (g *Generator) Team() sim.Team {
	team := sim.Team{
		ID:   g.newID(),
		Name: pick(g.rng, placeNames) + " Roller Derby",
	}

	size := MinRosterSize + g.rng.IntN(MaxRosterSize-MinRosterSize+1)
	numbers := make(map[string]bool, size)
	for len(team.Roster) < size {
		skater := g.Skater()
		if numbers[skater.Number] {
			continue
		}
		numbers[skater.Number] = true
		team.Roster = append(team.Roster, skater)
	}
	slices.SortFunc(team.Roster, func(a, b sim.Skater) int {
		return strings.Compare(a.Number, b.Number)
	})

	team.Color = pick(g.rng, colors)
	return team
}

// Skater draws one skater.
func (g *Generator) Skater() sim.Skater {
	return sim.Skater{
		ID:              g.newID(),
		Name:            g.name(),
		Number:          g.number(),
		FavoredPosition: sim.Position(g.rng.IntN(3)),
		BaseSpeed:       g.rng.Float64Range(minSpeed, maxSpeed),
		PenaltyChance:   g.rng.Float64Range(minPenaltyChance, maxPenaltyChance),
	}
}

func (g *Generator) name() string {
	return g.title.String(pick(g.rng, nameAdjectives) + " " + pick(g.rng, nameNouns))
}

func (g *Generator) number() string {
	digits := 1 + g.rng.IntN(maxNumberDigits)
	var b strings.Builder
	for range digits {
		b.WriteString(strconv.Itoa(g.rng.IntN(10)))
	}
	return b.String()
}

// crewPositions is the standard 18-person crew: a head NSO (penalty lineup
// tracker) and a head referee (inside pack referee) lead it.
var crewPositions = []struct {
	role   sim.OfficialRole
	isHead bool
}{
	{sim.RolePenaltyLineupTracker, true},
	{sim.RolePenaltyLineupTracker, false},
	{sim.RolePenaltyWrangler, false},
	{sim.RoleInsideWhiteboard, false},
	{sim.RoleJamTimer, false},
	{sim.RoleScorekeeper, false},
	{sim.RoleScorekeeper, false},
	{sim.RoleScoreboardOperator, false},
	{sim.RolePenaltyBoxManager, false},
	{sim.RolePenaltyBoxTimer, false},
	{sim.RolePenaltyBoxTimer, false},
	{sim.RoleInsidePackReferee, true},
	{sim.RoleInsidePackReferee, false},
	{sim.RoleOutsidePackReferee, false},
	{sim.RoleOutsidePackReferee, false},
	{sim.RoleOutsidePackReferee, false},
	{sim.RoleJammerReferee, false},
	{sim.RoleJammerReferee, false},
}

// Crew draws a full officiating crew.
func (g *Generator) Crew() []sim.Official {
	crew := make([]sim.Official, 0, len(crewPositions))
	for _, p := range crewPositions {
		crew = append(crew, sim.Official{
			ID:     g.newID(),
			Name:   g.name(),
			Role:   p.role,
			IsHead: p.isHead,
		})
	}
	return crew
}

// HeadNSO returns the crew's head non-skating official.
func HeadNSO(crew []sim.Official) (sim.Official, bool) {
	for _, o := range crew {
		if o.IsHead && !o.Role.IsReferee() {
			return o, true
		}
	}
	return sim.Official{}, false
}

// HeadReferee returns the crew's head referee.
func HeadReferee(crew []sim.Official) (sim.Official, bool) {
	for _, o := range crew {
		if o.IsHead && o.Role == sim.RoleInsidePackReferee {
			return o, true
		}
	}
	return sim.Official{}, false
}
