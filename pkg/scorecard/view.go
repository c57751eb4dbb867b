package scorecard

import (
	"fmt"

	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/aggregate"
	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/chart"
	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/models"
)

// ViewMode is the aggregation level of a view.
type ViewMode string

const (
	// ViewStudent shows one student's scores.
	ViewStudent ViewMode = "student"
	// ViewClassAverage shows the mean of one class.
	ViewClassAverage ViewMode = "class"
	// ViewOverall shows the mean of every selected student.
	ViewOverall ViewMode = "overall"
)

// ParseViewMode validates a view mode name.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case ViewStudent, ViewClassAverage, ViewOverall:
		return ViewMode(s), nil
	default:
		return "", fmt.Errorf("invalid view mode: %s (must be student, class, or overall)", s)
	}
}

// ViewRequest selects what to show.
type ViewRequest struct {
	Mode ViewMode
	// Student picks the student of ViewStudent; empty picks the first.
	Student string
	// Class picks the class of ViewClassAverage when no class filter is
	// active; empty picks the first.
	Class string
}

// View is a computed chart/table view.
type View struct {
	Mode     ViewMode                 `json:"mode"`
	Title    string                   `json:"title"`
	Student  string                   `json:"student,omitempty"`
	Class    string                   `json:"class,omitempty"`
	Scores   []models.ScoreRecord     `json:"scores,omitempty"`
	Averages []models.AggregateRecord `json:"averages,omitempty"`
	Pivot    models.PivotTable        `json:"pivot"`
}

// View computes the requested view over the filtered records.
func (s *Session) View(req ViewRequest) (*View, error) {
	filtered := s.Filtered()
	prefix := s.opts.TitlePrefix

	v := &View{Mode: req.Mode}
	var points []models.Point

	switch req.Mode {
	case ViewStudent:
		students := aggregate.Students(filtered)
		if len(students) == 0 {
			return nil, ErrNoStudents
		}
		name := req.Student
		if name == "" {
			name = students[0]
		} else if !contains(students, name) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownStudent, name)
		}
		v.Student = name
		v.Title = chart.StudentTitle(prefix, name)
		v.Scores = aggregate.FilterStudent(filtered, name)
		points = aggregate.PointsFromScores(v.Scores)

	case ViewClassAverage:
		aggs := aggregate.AvgView(filtered, aggregate.LevelClass)
		class := s.classFilter
		if class == "" {
			classes := aggregate.Classes(filtered)
			if len(classes) == 0 {
				return nil, ErrNoStudents
			}
			class = req.Class
			if class == "" {
				class = classes[0]
			} else if !contains(classes, class) {
				return nil, fmt.Errorf("%w: %s", ErrUnknownClass, class)
			}
		}
		v.Class = class
		v.Title = chart.ClassTitle(prefix, class)
		v.Averages = aggregate.FilterAggregateClass(aggs, class)
		points = aggregate.PointsFromAggregates(v.Averages)

	case ViewOverall:
		v.Title = chart.OverallTitle(prefix)
		v.Averages = aggregate.AvgView(filtered, aggregate.LevelOverall)
		points = aggregate.PointsFromAggregates(v.Averages)

	default:
		return nil, fmt.Errorf("invalid view mode: %q", req.Mode)
	}

	v.Pivot = aggregate.Pivot(points, s.workbook.Areas, s.workbook.Periods)
	return v, nil
}

// RenderView renders a view's chart as an HTML page. Interactive charts
// carry no embedded footer.
func (s *Session) RenderView(v *View, kind chart.Kind) ([]byte, error) {
	return chart.RenderHTML(kind, v.Pivot, chart.Options{
		Title:      v.Title,
		AssetsHost: s.opts.AssetsHost,
	})
}
