package confidence

import (
	"github.com/WeakCookie/fit-path-hackathon/internal/store"
)

const (
	BadgeLongTermPlanning = "Eligible for Long-term Planning"
	BadgeSuggestions      = "Eligible for Suggestions"

	// badges are granted strictly above this cumulative score
	BadgeThreshold = 2.0
)

// Point is the cumulative confidence of a research paper on a given day.
type Point struct {
	Date    string  `json:"date"`
	PaperID string  `json:"paperId"`
	Score   float64 `json:"score"`
}

func (p Point) DateKey() string {
	return p.Date
}

type Store struct {
	*store.Store[Point]
}

func NewStore(seed []Point) *Store {
	return &Store{
		Store: store.New(seed),
	}
}

// LatestScoreForPaper returns the last point of the paper in date order,
// or nil when the paper has none.
func (s *Store) LatestScoreForPaper(paperID string) *Point {
	points := s.ForPaper(paperID)
	if len(points) == 0 {
		return nil
	}
	latest := points[len(points)-1]
	return &latest
}

// ForPaper returns the points of a paper, ascending by date.
func (s *Store) ForPaper(paperID string) []Point {
	return s.Filter(func(p Point) bool {
		return p.PaperID == paperID
	})
}

// Accumulate adds delta to the latest cumulative score of the paper
// (zero when there is none) and stores the sum as a new point.
func (s *Store) Accumulate(date, paperID string, delta float64) Point {
	var point Point
	s.Update(func(items []Point) []Point {
		// items are kept ascending by date, the last match is the latest
		var prior float64
		for _, p := range items {
			if p.PaperID == paperID {
				prior = p.Score
			}
		}
		point = Point{
			Date:    date,
			PaperID: paperID,
			Score:   prior + delta,
		}
		return append(items, point)
	})
	return point
}

// Badges lists the badges earned by a cumulative score; nil score earns none.
func Badges(latest *Point) []string {
	if latest == nil || latest.Score <= BadgeThreshold {
		return []string{}
	}
	return []string{BadgeLongTermPlanning, BadgeSuggestions}
}

// Papers returns the distinct paper ids in order of first appearance.
func (s *Store) Papers() []string {
	var ids []string
	seen := make(map[string]bool)
	for _, p := range s.GetAll() {
		if !seen[p.PaperID] {
			seen[p.PaperID] = true
			ids = append(ids, p.PaperID)
		}
	}
	return ids
}
