package game

// Player is one of the two participants. Identity is fixed at construction;
// only the cumulative across-games win counter mutates.
type Player struct {
	name    string
	marking Marking
	wins    int
}

func NewPlayer(name string, marking Marking) *Player {
	return &Player{
		name:    name,
		marking: marking,
	}
}

func (p *Player) Name() string { return p.name }

func (p *Player) Marking() Marking { return p.marking }

// Wins returns the number of games this player has won this session.
func (p *Player) Wins() int { return p.wins }

// RecordWin increments the win counter on a completed game.
func (p *Player) RecordWin() { p.wins++ }
