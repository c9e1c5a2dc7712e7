package invaders

// Score is the accumulated point total. It never decreases during a run.
type Score int

// PointsGained returns the points awarded for killing an enemy of type t.
func PointsGained(t EnemyType) int {
	return t.Stats().Points
}

// OnKill adds the points for an enemy whose alive flag has just gone from
// true to false. RetireEnemies reports each such enemy exactly once.
func (s Score) OnKill(e Enemy) Score {
	return s + Score(PointsGained(e.Type))
}
