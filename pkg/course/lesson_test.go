package course_test

import (
	"testing"

	"github.com/germanamz/promptour/pkg/course"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEmbeddedLessons(t *testing.T) {
	metas := course.List()
	require.NotEmpty(t, metas)

	// File-name order keeps the walkthrough progression stable.
	names := make([]string, len(metas))
	for i, m := range metas {
		names[i] = m.Name
		assert.NotEmpty(t, m.Title)
		assert.NotEmpty(t, m.Description)
	}

	assert.Equal(t, []string{"basics", "templates", "roles"}, names)
}

func TestGet(t *testing.T) {
	l, err := course.Get("templates")
	require.NoError(t, err)

	assert.Equal(t, "templates", l.Meta.Name)
	assert.NotEmpty(t, l.Sections)
	require.NoError(t, l.Validate())
}

func TestGetUnknown(t *testing.T) {
	_, err := course.Get("does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestEmbeddedLessonsValidate(t *testing.T) {
	for _, m := range course.List() {
		l, err := course.Get(m.Name)
		require.NoError(t, err)
		assert.NoError(t, l.Validate(), "lesson %q", m.Name)
	}
}

func TestSectionValidate(t *testing.T) {
	assert.Error(t, course.Section{}.Validate())
	assert.NoError(t, course.Section{Prose: "hi"}.Validate())
	assert.NoError(t, course.Section{Example: &course.Example{Prompt: "p"}}.Validate())

	both := course.Section{
		Prose:   "hi",
		Example: &course.Example{Prompt: "p"},
	}
	assert.Error(t, both.Validate())
}

func TestLessonValidateRequiresName(t *testing.T) {
	l := course.Lesson{Sections: []course.Section{{Prose: "x"}}}
	assert.Error(t, l.Validate())
}
