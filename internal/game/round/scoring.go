package round

import "shengji-tractor/internal/game/domain"

// rankStep describes one band of the attacker-threshold table: an
// attacker point total in [Min, Max] advances AdvancingTeam by Ranks.
type rankStep struct {
	Min, Max      int
	AdvancingTeam domain.TeamID
	Ranks         int
}

// rankTable is the well-known Shengji/Tractor scoring ladder: the
// defending (declaring) team holds the trump rank hostage, and the
// attackers' cumulative point-card haul out of a possible 200 decides
// who advances and by how much.
var rankTable = []rankStep{
	{Min: 0, Max: 0, AdvancingTeam: domain.TeamDefenders, Ranks: 3},
	{Min: 1, Max: 39, AdvancingTeam: domain.TeamDefenders, Ranks: 2},
	{Min: 40, Max: 79, AdvancingTeam: domain.TeamDefenders, Ranks: 1},
	{Min: 80, Max: 119, AdvancingTeam: domain.TeamDefenders, Ranks: 0},
	{Min: 120, Max: 159, AdvancingTeam: domain.TeamAttackers, Ranks: 1},
	{Min: 160, Max: 199, AdvancingTeam: domain.TeamAttackers, Ranks: 2},
	{Min: 200, Max: 200, AdvancingTeam: domain.TeamAttackers, Ranks: 3},
}

// RoundResult summarizes how a completed round scored.
type RoundResult struct {
	AttackerPoints int           `json:"attacker_points"`
	AdvancingTeam  domain.TeamID `json:"advancing_team"`
	RanksAdvanced  int           `json:"ranks_advanced"`
	KittyDoubled   bool          `json:"kitty_doubled"`
}

// ScoreRound tallies every completed trick's point value for the
// attacking team, doubles the kitty's points onto that total if the
// attackers won the last trick, and looks up the resulting rank
// advancement (spec §4.6 and the Open Question decision in DESIGN.md).
func ScoreRound(g domain.GameState) RoundResult {
	attackerPoints := 0
	for i, tr := range g.CompletedTricks {
		if i >= len(g.TrickWinners) {
			break
		}
		winnerSeat := g.SeatOf(g.TrickWinners[i])
		if winnerSeat == -1 {
			continue
		}
		if g.TeamOf(winnerSeat) == domain.TeamAttackers {
			attackerPoints += tr.PointValue()
		}
	}

	kittyDoubled := false
	if lastTrickWonByAttackers(g) {
		attackerPoints += KittyPointValue(g) * 2
		kittyDoubled = true
	}

	for _, step := range rankTable {
		if attackerPoints >= step.Min && attackerPoints <= step.Max {
			return RoundResult{
				AttackerPoints: attackerPoints,
				AdvancingTeam:  step.AdvancingTeam,
				RanksAdvanced:  step.Ranks,
				KittyDoubled:   kittyDoubled,
			}
		}
	}
	// Above the table: a doubled kitty can lift the total past 200. The
	// attackers keep advancing one rank for every further 40 points.
	return RoundResult{AttackerPoints: attackerPoints, AdvancingTeam: domain.TeamAttackers, RanksAdvanced: (attackerPoints - 80) / 40, KittyDoubled: kittyDoubled}
}

func lastTrickWonByAttackers(g domain.GameState) bool {
	if len(g.TrickWinners) == 0 {
		return false
	}
	last := g.TrickWinners[len(g.TrickWinners)-1]
	seat := g.SeatOf(last)
	return seat != -1 && g.TeamOf(seat) == domain.TeamAttackers
}

// NextTrumpRank advances the given team's trump rank by ranks steps,
// skipping over ranks that are never used as trump (jokers have no
// rank, so this simply wraps Ace back to Two).
func NextTrumpRank(current domain.Rank, ranks int) domain.Rank {
	r := current
	for i := 0; i < ranks; i++ {
		if r == domain.Ace {
			r = domain.Two
		} else {
			r++
		}
	}
	return r
}

// AdvanceRank advances a single team's own trump rank by ranks steps
// and reports whether the advance passed Ace - the win condition for
// that team's side of the table. Each side's rank is tracked and
// advanced independently (spec §3), so the wrap this reports is never
// masked by the other team's rank the way a single shared counter
// would mask it.
func AdvanceRank(current domain.Rank, ranks int) (domain.Rank, bool) {
	next := NextTrumpRank(current, ranks)
	wrapped := ranks > 0 && int(current)+ranks > int(domain.Ace)
	return next, wrapped
}
