package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/edu-analytics/courserec/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	data := "id,title,description\n" +
		"1,A,machine learning basics\n" +
		"2,\"B, the sequel\",\"deep learning, \"\"intro\"\"\"\n" +
		"3.0,C,\n"

	courses, err := ReadCSV(context.Background(), strings.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, []models.Course{
		{ID: 1, Title: "A", Description: "machine learning basics"},
		{ID: 2, Title: "B, the sequel", Description: `deep learning, "intro"`},
		{ID: 3, Title: "C", Description: ""},
	}, courses)
}

func TestReadCSV_ColumnOrderAndMissingDescription(t *testing.T) {
	courses, err := ReadCSV(context.Background(), strings.NewReader("\ufefftitle,ID,level\nGo,7,beginner\n"))
	require.NoError(t, err)
	assert.Equal(t, []models.Course{{ID: 7, Title: "Go"}}, courses)
}

func TestReadCSV_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":         "",
		"no id column":  "title,description\nA,x\n",
		"no title":      "id,description\n1,x\n",
		"bad id":        "id,title\nabc,A\n",
		"fractional id": "id,title\n1.5,A\n",
		"empty id":      "id,title\n,A\n",
		"short row":     "id,title\n1\n",
		"bad quoting":   "id,title\n1,\"A\n",
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ReadCSV(context.Background(), strings.NewReader(data))
			assert.Error(t, err)
		})
	}
}

func TestCSVSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "courses.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,title,description\n1,A,x\n2,B,y\n"), 0o644))

	cat, err := Load(context.Background(), NewCSVSource(path))
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())

	_, err = Load(context.Background(), NewCSVSource(filepath.Join(t.TempDir(), "missing.csv")))
	assert.Error(t, err)
}

func TestNew_IndexAndDuplicates(t *testing.T) {
	cat, err := New([]models.Course{
		{ID: 10, Title: "A", Description: "a"},
		{ID: 20, Title: "B"},
	})
	require.NoError(t, err)

	pos, ok := cat.Position(20)
	assert.True(t, ok)
	assert.Equal(t, 1, pos)
	_, ok = cat.Position(99)
	assert.False(t, ok)

	assert.Equal(t, []models.CourseSummary{{ID: 10, Title: "A"}, {ID: 20, Title: "B"}}, cat.Summaries())
	assert.Equal(t, []string{"a", ""}, cat.Descriptions())

	_, err = New([]models.Course{{ID: 1, Title: "A"}, {ID: 1, Title: "B"}})
	assert.Error(t, err)
}

type fakeCourseRepo struct {
	rows []models.CourseRow
	err  error
}

func (f *fakeCourseRepo) GetAll() ([]models.CourseRow, error)      { return f.rows, f.err }
func (f *fakeCourseRepo) ReplaceAll(rows []models.CourseRow) error { f.rows = rows; return nil }
func (f *fakeCourseRepo) Count() (int64, error)                    { return int64(len(f.rows)), f.err }

func TestDBSource_Load(t *testing.T) {
	repo := &fakeCourseRepo{rows: []models.CourseRow{
		{CourseID: 5, Position: 0, Title: "Go", Description: "gophers"},
		{CourseID: 3, Position: 1, Title: "SQL"},
	}}

	cat, err := Load(context.Background(), NewDBSource(repo))
	require.NoError(t, err)
	assert.Equal(t, models.Course{ID: 5, Title: "Go", Description: "gophers"}, cat.At(0))
	assert.Equal(t, 3, cat.At(1).ID)

	repo.err = errors.New("connection refused")
	_, err = Load(context.Background(), NewDBSource(repo))
	assert.ErrorContains(t, err, "connection refused")
}
