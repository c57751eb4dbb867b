package export

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/aggregate"
	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/chart"
	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{" O/Sz Ács ", "OSz_Ács"},
		{"Kiss   Anna", "Kiss_Anna"},
		{"5.a", "5.a"},
		{"Árvíztűrő tükörfúrógép", "Árvíztűrő_tükörfúrógép"},
		{"a-b_c", "a-b_c"},
		{"   ", NoName},
		{"", NoName},
		{"?!/", NoName},
		{"e\u0301", "\u00e9"}, // decomposed accent is composed first
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, SafeFilename(tt.input), "SafeFilename(%q)", tt.input)
	}
}

func TestReportName(t *testing.T) {
	assert.Equal(t, "5.a__Kiss_Anna__radar.png", ReportName("5.a", "Kiss Anna", "radar", "png"))
	assert.Equal(t, "no_name__no_name__oszlopdiagram.html", ReportName("", " ", "oszlopdiagram", "html"))
}

func TestPairs(t *testing.T) {
	records := []models.ScoreRecord{
		{Name: "Nagy Béla", Class: "5.b"},
		{Name: "Kiss Anna", Class: "5.b"},
		{Name: "Kiss Anna", Class: "5.b"},
		{Name: "Kiss Anna", Class: "5.a"},
		{Name: "", Class: "5.a"},
		{Name: "Tóth Ede", Class: ""},
	}

	assert.Equal(t, []Pair{
		{Name: "Kiss Anna", Class: "5.a"},
		{Name: "Kiss Anna", Class: "5.b"},
		{Name: "Nagy Béla", Class: "5.b"},
	}, Pairs(records))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("png")
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, f)
	assert.Equal(t, "png", f.Ext())

	_, err = ParseFormat("pdf")
	assert.Error(t, err)
}

func TestWriteArchive_UniqueNames(t *testing.T) {
	data, err := WriteArchive([]File{
		{Name: "a__b__radar.html", Data: []byte("1")},
		{Name: "a__b__radar.html", Data: []byte("2")},
		{Name: "a__b__radar.html", Data: []byte("3")},
	})
	require.NoError(t, err)

	names, err := archiveNames(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"a__b__radar.html", "a__b__radar_2.html", "a__b__radar_3.html"}, names)
}

type fakeRasterizer struct {
	calls int
	fail  error
}

func (f *fakeRasterizer) Rasterize(_ context.Context, page []byte, width, height int, scale float64) ([]byte, error) {
	f.calls++
	if f.fail != nil {
		return nil, f.fail
	}
	return []byte("\x89PNG fake"), nil
}

func sampleRecords() []models.ScoreRecord {
	p1 := &models.PeriodTable{
		Period: "Ősz",
		Areas:  []string{"Önismeret", "Empátia"},
		Rows: []models.StudentRecord{
			{Name: "Kiss Anna", Class: "5.a", Scores: []string{"35", "70"}},
			{Name: "Nagy Béla", Class: "5.b", Scores: []string{"14", "N/A"}},
			{Name: "Kovács/Éva", Class: "5.b", Scores: []string{"7", "7"}},
		},
	}
	p2 := p1.Select(p1.Areas)
	p2.Period = "Tavasz"
	return aggregate.Concat(
		aggregate.ToLongPercent(p1, "Ősz", p1.Areas),
		aggregate.ToLongPercent(&p2, "Tavasz", p1.Areas),
	)
}

func newBuilder(format Format, r Rasterizer) *Builder {
	return &Builder{
		Format:      format,
		Areas:       []string{"Önismeret", "Empátia"},
		Periods:     []string{"Ősz", "Tavasz"},
		TitlePrefix: "Személyes és társas kompetencia",
		Chart:       chart.Options{Footer: "Lábjegyzet", Width: 1400, Height: 950},
		Scale:       2,
		Rasterizer:  r,
	}
}

func readZip(t *testing.T, data []byte) map[string][]byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	out := make(map[string][]byte)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		out[f.Name] = body
	}
	return out
}

func TestBuild_HTML(t *testing.T) {
	b := newBuilder(FormatHTML, nil)
	var progress []int
	b.Progress = func(done, total int, p Pair) {
		assert.Equal(t, 3, total)
		progress = append(progress, done)
	}

	res, err := b.Build(context.Background(), sampleRecords())
	require.NoError(t, err)

	assert.Equal(t, 3, res.Pairs)
	assert.Equal(t, []int{1, 2, 3}, progress)
	assert.Equal(t, []string{
		"5.a__Kiss_Anna__oszlopdiagram.html",
		"5.a__Kiss_Anna__radar.html",
		"5.b__KovácsÉva__oszlopdiagram.html",
		"5.b__KovácsÉva__radar.html",
		"5.b__Nagy_Béla__oszlopdiagram.html",
		"5.b__Nagy_Béla__radar.html",
	}, res.Files)

	entries := readZip(t, res.Data)
	assert.Len(t, entries, 2*res.Pairs+1)
	assert.Contains(t, string(entries[ReadmeName]), "böngészőben")
	assert.Contains(t, string(entries["5.a__Kiss_Anna__radar.html"]), "<html")
}

func TestBuild_PNG(t *testing.T) {
	r := &fakeRasterizer{}
	res, err := newBuilder(FormatPNG, r).Build(context.Background(), sampleRecords())
	require.NoError(t, err)

	assert.Equal(t, 6, r.calls)
	entries := readZip(t, res.Data)
	assert.Len(t, entries, 7)
	assert.Equal(t, []byte("\x89PNG fake"), entries["5.b__Nagy_Béla__radar.png"])
	assert.Contains(t, string(entries[ReadmeName]), "PNG")
}

func TestBuild_RasterizeFailureAborts(t *testing.T) {
	cause := errors.New("chrome crashed")
	_, err := newBuilder(FormatPNG, &fakeRasterizer{fail: cause}).Build(context.Background(), sampleRecords())
	require.Error(t, err)

	var f *Failure
	require.True(t, errors.As(err, &f))
	assert.Equal(t, StageRasterize, f.Stage)
	assert.Equal(t, "5.a__Kiss_Anna__oszlopdiagram.png", f.File)
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsFailure(err))
}

func TestBuild_PNGWithoutRasterizer(t *testing.T) {
	_, err := newBuilder(FormatPNG, nil).Build(context.Background(), sampleRecords())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRendererUnavailable)
}

func TestBuild_EmptyScope(t *testing.T) {
	res, err := newBuilder(FormatHTML, nil).Build(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, res.Files)
	assert.Len(t, readZip(t, res.Data), 1)
}
