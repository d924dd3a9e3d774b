package timetable

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/schedule.html")
	require.NoError(t, err)
	return data
}

func TestBuild(t *testing.T) {
	result, err := Build(bytes.NewReader(readFixture(t)), "ІКНІ", "ПЗ-11")
	require.NoError(t, err)

	assert.Equal(t, "ІКНІ", result.Faculty)
	assert.Equal(t, "ПЗ-11", result.Group)
	assert.Equal(t, []int{1, 2, 3, 4}, result.LessonTimes)

	// the repeated "Історія України" container is a source duplicate
	require.Len(t, result.Lessons, 5)

	assert.Equal(t, Lesson{
		Name:   "Вища математика",
		Format: FormatLecture,
		Teachers: []Teacher{
			{FullName: "Іваненко І.П.", LastName: "Іваненко", FirstInitial: "І.", MiddleInitial: "П."},
			{FullName: "Петренко О.", LastName: "Петренко", FirstInitial: "О."},
		},
		RoomData:   &Room{Building: "ГК", RoomNumber: "204"},
		Day:        1,
		LessonTime: 1,
		Weeks:      WeekFull,
		Subgroup:   0,
	}, result.Lessons[0])

	physical := result.Lessons[3]
	assert.Equal(t, "Фізкультура", physical.Name)
	assert.Equal(t, FormatPractical, physical.Format)
	assert.Equal(t, 3, physical.Day)
	assert.Nil(t, physical.RoomData)
	assert.Empty(t, physical.Teachers)

	history := result.Lessons[4]
	assert.Equal(t, FormatUnknown, history.Format)
	assert.Equal(t, &Room{Building: "IV", RoomNumber: "301"}, history.RoomData)

	assert.Equal(t, []string{"Smith J.", "Іваненко І.П.", "Петренко О."}, teacherNames(result.Teachers))
	assert.Equal(t, []Theme{
		{Name: "Історія України", Format: FormatUnknown},
		{Name: "Вища математика", Format: FormatLecture},
		{Name: "Програмування", Format: FormatLab},
		{Name: "Фізкультура", Format: FormatPractical},
	}, result.Themes)
}

func TestBuild_Idempotent(t *testing.T) {
	data := readFixture(t)

	first, err := Build(bytes.NewReader(data), "ІКНІ", "ПЗ-11")
	require.NoError(t, err)
	second, err := Build(bytes.NewReader(data), "ІКНІ", "ПЗ-11")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuild_ScenarioWithEnglishVocabulary(t *testing.T) {
	vocab := DefaultVocabulary()
	vocab.Formats = []string{"Lecture", "Seminar", "Practical", "Lab"}
	p := NewParser(vocab)

	page := daySection("Пн", `<h3>3</h3><div class="stud_schedule"><div id="group_full">`+
		`<div class="group_content">Algorithms I<br>Smith J.<br>204 B&nbsp;Lecture</div></div></div>`)

	result, err := p.Build(strings.NewReader(page), "inst", "grp")
	require.NoError(t, err)
	require.Len(t, result.Lessons, 1)

	assert.Equal(t, Lesson{
		Name:       "Algorithms I",
		Format:     FormatLecture,
		Teachers:   []Teacher{{FullName: "Smith J.", LastName: "Smith", FirstInitial: "J."}},
		RoomData:   &Room{Building: "B", RoomNumber: "204"},
		Day:        1,
		LessonTime: 3,
		Weeks:      WeekFull,
		Subgroup:   0,
	}, result.Lessons[0])
}

func TestBuild_UnknownDay(t *testing.T) {
	page := daySection("Нд", `<h3>1</h3><div class="stud_schedule"><div id="group_full">`+
		`<div class="group_content">A<br>B C.<br>1 A&nbsp;Лекція</div></div></div>`)

	_, err := Build(strings.NewReader(page), "inst", "grp")
	assert.True(t, errors.Is(err, ErrUnknownDay), "got %v", err)
}

func TestResult_JSONFieldNames(t *testing.T) {
	result, err := Build(bytes.NewReader(readFixture(t)), "ІКНІ", "ПЗ-11")
	require.NoError(t, err)

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"faculty", "group", "teachers", "themes", "lesson_times", "lessons"} {
		assert.Contains(t, raw, key)
	}

	var lessons []map[string]any
	require.NoError(t, json.Unmarshal(raw["lessons"], &lessons))
	assert.Equal(t, map[string]any{"building": "ГК", "room_number": "204"}, lessons[0]["room_data"])
	assert.Nil(t, lessons[3]["room_data"])
	assert.Contains(t, lessons[3], "room_data")
	assert.Equal(t, []any{}, lessons[3]["teachers"])
}

func teacherNames(teachers []Teacher) []string {
	names := make([]string, 0, len(teachers))
	for _, t := range teachers {
		names = append(names, t.FullName)
	}
	return names
}
