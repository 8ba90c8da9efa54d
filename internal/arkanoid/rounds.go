package arkanoid

// GridCols is the brick grid width. Layout rows are exactly this many
// characters wide.
const GridCols = 13

// Layout characters:
//
//	'.' empty      'w' white   's' silver   'o' orange   'c' cyan
//	'g' green      'r' red     'b' blue     'p' pink     'y' yellow
//	'G' gold (indestructible)
type Round struct {
	Number     int
	Name       string
	Layout     []string
	PowerUps   []PowerUpKind // scattered over random destructible bricks
	EnemyCount int           // total enemies released during the round
	EnemyGlyph rune
}

// builtinRounds holds the five built-in rounds.
var builtinRounds = []Round{
	{
		Number: 1,
		Name:   "Ramparts",
		Layout: []string{
			"sssssssssssss",
			"rrrrrrrrrrrrr",
			"yyyyyyyyyyyyy",
			"bbbbbbbbbbbbb",
			"ggggggggggggg",
		},
		PowerUps: []PowerUpKind{
			PowerCatch, PowerCatch,
			PowerExpand, PowerExpand, PowerExpand,
			PowerExtraLife, PowerExtraLife,
			PowerSlowBall, PowerSlowBall,
			PowerLaser, PowerLaser, PowerLaser,
		},
		EnemyCount: 3,
		EnemyGlyph: '∆',
	},
	{
		Number: 2,
		Name:   "Staircase",
		Layout: []string{
			"w............",
			"ow...........",
			"cow..........",
			"gcow.........",
			"rgcow........",
			"brgcow.......",
			"pbrgcow......",
			"ypbrgcow.....",
			"wypbrgcow....",
			"owypbrgcow...",
			"cowypbrgcow..",
			"gcowypbrgcow.",
			"sssssssssssss",
		},
		PowerUps: []PowerUpKind{
			PowerExtraLife, PowerSlowBall, PowerCatch, PowerExpand,
			PowerLaser, PowerDuplicate, PowerSlowBall, PowerExpand,
			PowerLaser, PowerCatch,
		},
		EnemyCount: 4,
		EnemyGlyph: '◆',
	},
	{
		Number: 3,
		Name:   "Vaults",
		Layout: []string{
			".............",
			"GGG.GGG.GGG.G",
			"rrr.yyy.bbb.r",
			"GGG.GGG.GGG.G",
			"ggg.ccc.ppp.g",
			"GGG.GGG.GGG.G",
			"sss.www.ooo.s",
		},
		PowerUps: []PowerUpKind{
			PowerDuplicate, PowerExtraLife, PowerCatch,
			PowerLaser, PowerExpand, PowerSlowBall,
		},
		EnemyCount: 5,
		EnemyGlyph: '∆',
	},
	{
		Number: 4,
		Name:   "Columns",
		Layout: []string{
			"wocgrb.brgcow",
			"wocgrb.brgcow",
			"wocgrb.brgcow",
			"wocgrb.brgcow",
			"wocgrb.brgcow",
			"wocgrb.brgcow",
			"wocgrb.brgcow",
			"wocgrb.brgcow",
		},
		PowerUps: []PowerUpKind{
			PowerSlowBall, PowerSlowBall, PowerCatch, PowerCatch,
			PowerExpand, PowerExpand, PowerLaser, PowerLaser,
			PowerExtraLife, PowerDuplicate,
		},
		EnemyCount: 4,
		EnemyGlyph: '◆',
	},
	{
		Number: 5,
		Name:   "Visage",
		Layout: []string{
			"......o......",
			".....sss.....",
			"....sssss....",
			"...sssssss...",
			"..ss.r.r.ss..",
			".sssssssssss.",
			"..sss...sss..",
			"...sssssss...",
			"....sssss....",
		},
		PowerUps: []PowerUpKind{
			PowerExpand, PowerLaser, PowerSlowBall,
			PowerCatch, PowerDuplicate, PowerExtraLife,
		},
		EnemyCount: 6,
		EnemyGlyph: '✶',
	},
}

// RoundCount returns the number of built-in rounds.
func RoundCount() int {
	return len(builtinRounds)
}

// GetRound returns a round by index, wrapping for out-of-range values.
func GetRound(index int) *Round {
	if len(builtinRounds) == 0 {
		return nil
	}
	if index < 0 {
		index = 0
	}
	return &builtinRounds[index%len(builtinRounds)]
}
